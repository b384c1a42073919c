// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package logic

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/propertyd/fault"
)

// AddressLength - bytes in an address
const AddressLength = 32

// Address - identifies a logic version
type Address [AddressLength]byte

// AddressOf - SHA3-256 of the version name
func AddressOf(name string) Address {
	return Address(sha3.Sum256([]byte(name)))
}

// AddressFromBytes - convert a stored address
func AddressFromBytes(buffer []byte) (Address, error) {
	var a Address
	if AddressLength != len(buffer) {
		return a, fault.With(fault.ErrInvalidKeyLength, "address length: %d", len(buffer))
	}
	copy(a[:], buffer)
	return a, nil
}

// IsZero - true for the unset address
func (a Address) IsZero() bool {
	return Address{} == a
}

// String - hex form
func (a Address) String() string {
	return hex.EncodeToString(a[:])
}

// MarshalText - convert an address to its hex JSON form
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - convert from hex JSON form
func (a *Address) UnmarshalText(s []byte) error {
	buffer, err := hex.DecodeString(string(s))
	if nil != err {
		return err
	}
	decoded, err := AddressFromBytes(buffer)
	if nil != err {
		return err
	}
	*a = decoded
	return nil
}
