// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
	"fmt"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InitialisedError GenericError
type InsufficientError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type UnauthorisedError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised     = InitialisedError("already initialised")
	ErrCannotDecodeAccount    = InvalidError("cannot decode account")
	ErrCertificateFileExists  = ExistsError("certificate file already exists")
	ErrChecksumMismatch       = InvalidError("checksum mismatch")
	ErrConfigurationNotLoaded = ProcessError("configuration not loaded")
	ErrDatabaseIsNewer        = ProcessError("database version is newer than program")
	ErrDuplicateLayoutField   = InvalidError("duplicate layout field")
	ErrIdentityFileExists     = ExistsError("identity file already exists")
	ErrIncompatibleLayout     = InvalidError("incompatible storage layout")
	ErrInsufficientBalance    = InsufficientError("insufficient balance")
	ErrInsufficientShares     = InsufficientError("insufficient shares")
	ErrInvalidCount           = InvalidError("invalid count")
	ErrInvalidCursor          = InvalidError("invalid cursor")
	ErrInvalidIPAddress       = InvalidError("invalid IP address")
	ErrInvalidKeyLength       = InvalidError("invalid key length")
	ErrInvalidKeyType         = InvalidError("invalid key type")
	ErrInvalidLayout          = InvalidError("invalid storage layout")
	ErrInvalidLoggerChannel   = InvalidError("invalid logger channel")
	ErrInvalidPortNumber      = InvalidError("invalid port number")
	ErrInvalidPrivateKeyFile  = InvalidError("invalid private key file")
	ErrInvalidPublicKeyFile   = InvalidError("invalid public key file")
	ErrInvalidRecipient       = InvalidError("invalid recipient")
	ErrInvalidStructPointer   = InvalidError("invalid struct pointer")
	ErrKeyFileAlreadyExists   = ExistsError("key file already exists")
	ErrLengthMismatch         = InvalidError("array lengths do not match")
	ErrLogicNotFound          = NotFoundError("logic address not found")
	ErrMissingCaller          = InvalidError("missing caller")
	ErrMissingParameters      = InvalidError("missing parameters")
	ErrNotAdministrator       = UnauthorisedError("caller is not the administrator")
	ErrNotInitialised         = NotFoundError("not initialised")
	ErrNotMinter              = UnauthorisedError("caller is not an authorised minter")
	ErrNotOperator            = UnauthorisedError("caller is not owner nor approved operator")
	ErrNotOwner               = UnauthorisedError("caller is not the owner")
	ErrNotPropertyOwner       = UnauthorisedError("caller is not the property owner")
	ErrNotPublicKey           = InvalidError("not a public key")
	ErrNotSupported           = ProcessError("operation not supported by active logic")
	ErrPropertyAlreadyExists  = ExistsError("property already exists")
	ErrPropertyNotFound       = NotFoundError("property not found")
	ErrQuantityOverflow       = InvalidError("quantity overflow")
	ErrRateLimiting           = ProcessError("rate limiting")
	ErrReadOnlyRegion         = ProcessError("storage region is read only")
	ErrRegionClosed           = ProcessError("storage region is closed")
	ErrReservedPrefix         = InvalidError("reserved storage prefix")
	ErrSelfApproval           = InvalidError("cannot approve self as operator")
	ErrSupplyAlreadyExists    = ExistsError("ledger supply already exists")
	ErrTransactionFinished    = ProcessError("transaction already finished")
	ErrTransactionInUse       = ProcessError("transaction already in use")
	ErrUnknownInvocation      = InvalidError("unknown invocation")
	ErrUnsupportedLayoutKind  = InvalidError("unsupported layout kind")
	ErrZeroShares             = InvalidError("total shares must be greater than zero")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string       { return string(e) }
func (e InitialisedError) Error() string  { return string(e) }
func (e InsufficientError) Error() string { return string(e) }
func (e InvalidError) Error() string      { return string(e) }
func (e NotFoundError) Error() string     { return string(e) }
func (e ProcessError) Error() string      { return string(e) }
func (e UnauthorisedError) Error() string { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool       { var x ExistsError; return errors.As(e, &x) }
func IsErrInitialised(e error) bool  { var x InitialisedError; return errors.As(e, &x) }
func IsErrInsufficient(e error) bool { var x InsufficientError; return errors.As(e, &x) }
func IsErrInvalid(e error) bool      { var x InvalidError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool     { var x NotFoundError; return errors.As(e, &x) }
func IsErrProcess(e error) bool      { var x ProcessError; return errors.As(e, &x) }
func IsErrUnauthorised(e error) bool { var x UnauthorisedError; return errors.As(e, &x) }

// Annotated - an error instance together with the inputs that
// triggered it
type Annotated struct {
	Err    error
	Detail string
}

// Error - message with detail appended
func (a *Annotated) Error() string {
	return a.Err.Error() + ": " + a.Detail
}

// Unwrap - give errors.Is/errors.As access to the base error
func (a *Annotated) Unwrap() error {
	return a.Err
}

// With - annotate an error with a formatted description of its inputs
func With(err error, format string, arguments ...interface{}) error {
	if nil == err {
		return nil
	}
	return &Annotated{
		Err:    err,
		Detail: fmt.Sprintf(format, arguments...),
	}
}
