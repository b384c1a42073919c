// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - identities of participants
//
// An account is an ed25519 public key together with a network flag.
// Accounts only identify callers and holders; no signature is ever
// checked by this system.
package account

import (
	"bytes"
	"crypto/rand"

	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/propertyd/fault"
	"github.com/bitmark-inc/propertyd/util"
)

// enumeration of supported key algorithms
const (
	ED25519 = 1
)

// miscellaneous constants
const (
	checksumLength = 4

	// bits in key code starting from LSB
	publicKeyCode = 0x01
	testKeyCode   = 0x02

	algorithmShift = 4 // shift 4 bits to get algorithm

	// key variant byte ++ public key
	EncodedLength = 1 + ed25519.PublicKeySize
)

// Account - a participant identity
type Account struct {
	Test      bool
	PublicKey []byte
}

// New - account from a raw ed25519 public key
func New(publicKey []byte, test bool) (*Account, error) {
	if ed25519.PublicKeySize != len(publicKey) {
		return nil, fault.ErrInvalidKeyLength
	}
	pk := make([]byte, len(publicKey))
	copy(pk, publicKey)
	return &Account{
		Test:      test,
		PublicKey: pk,
	}, nil
}

// Generate - create a new random account and return its private key
func Generate(test bool) (*Account, ed25519.PrivateKey, error) {
	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		return nil, nil, err
	}
	return &Account{
		Test:      test,
		PublicKey: publicKey,
	}, privateKey, nil
}

// FromBase58 - convert a Base58 encoded string to an account
func FromBase58(accountBase58Encoded string) (*Account, error) {
	decoded := util.FromBase58(accountBase58Encoded)
	if 0 == len(decoded) {
		return nil, fault.ErrCannotDecodeAccount
	}
	if len(decoded) <= checksumLength {
		return nil, fault.ErrInvalidKeyLength
	}

	checksumStart := len(decoded) - checksumLength
	checksum := sha3.Sum256(decoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], decoded[checksumStart:]) {
		return nil, fault.ErrChecksumMismatch
	}

	return FromBytes(decoded[:checksumStart])
}

// FromBytes - convert the binary form (as stored in database keys)
// to an account
func FromBytes(accountBytes []byte) (*Account, error) {
	keyVariant, keyVariantLength := util.FromVarint64(accountBytes)

	if 0 == keyVariantLength || keyVariant&publicKeyCode != publicKeyCode {
		return nil, fault.ErrNotPublicKey
	}

	if ED25519 != keyVariant>>algorithmShift {
		return nil, fault.ErrInvalidKeyType
	}

	publicKey := accountBytes[keyVariantLength:]
	if ed25519.PublicKeySize != len(publicKey) {
		return nil, fault.ErrInvalidKeyLength
	}

	return New(publicKey, 0 != keyVariant&testKeyCode)
}

// Bytes - binary form: key variant ++ public key
func (account *Account) Bytes() []byte {
	keyVariant := byte(ED25519<<algorithmShift) | publicKeyCode
	if account.Test {
		keyVariant |= testKeyCode
	}
	return append([]byte{keyVariant}, account.PublicKey...)
}

// String - base58 encoding of the binary form with a checksum
func (account *Account) String() string {
	if nil == account {
		return "<nil>"
	}
	buffer := account.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return util.ToBase58(buffer)
}

// Equal - same network and key
func (account *Account) Equal(other *Account) bool {
	if nil == account || nil == other {
		return account == other
	}
	return account.Test == other.Test && bytes.Equal(account.PublicKey, other.PublicKey)
}

// MarshalText - convert an account to its Base58 JSON form
func (account Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// UnmarshalText - convert from Base58 JSON form
func (account *Account) UnmarshalText(s []byte) error {
	a, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*account = *a
	return nil
}
