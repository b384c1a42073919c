// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package access - single transferable owner plus a set of minters
//
// Role checks take the caller explicitly; nothing here reads an
// ambient identity.
package access

import (
	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/propertyd/account"
	"github.com/bitmark-inc/propertyd/fault"
	"github.com/bitmark-inc/propertyd/storage"
)

var (
	ownerKey   = []byte{}
	minterFlag = []byte{0x01}
)

// Access - the owner and minter pools
type Access struct {
	owner   *storage.PoolHandle // (empty)    → account
	minters *storage.PoolHandle // account    → flag
}

// New - controller over the given pools
func New(owner *storage.PoolHandle, minters *storage.PoolHandle) *Access {
	return &Access{
		owner:   owner,
		minters: minters,
	}
}

// Initialise - set the first owner
func (a *Access) Initialise(trx storage.Transaction, owner *account.Account) error {
	if nil == owner {
		return fault.ErrMissingCaller
	}
	trx.Put(a.owner, ownerKey, owner.Bytes())
	return nil
}

// Owner - current owner, nil before initialisation
func (a *Access) Owner(reader storage.Reader) *account.Account {
	buffer := reader.Get(a.owner, ownerKey)
	if nil == buffer {
		return nil
	}
	owner, err := account.FromBytes(buffer)
	if nil != err {
		logger.Panicf("access: corrupt owner record: %x  error: %s", buffer, err)
	}
	return owner
}

// RequireOwner - fail unless caller is the owner
func (a *Access) RequireOwner(reader storage.Reader, caller *account.Account) error {
	if nil == caller {
		return fault.ErrMissingCaller
	}
	if !caller.Equal(a.Owner(reader)) {
		return fault.With(fault.ErrNotOwner, "caller: %s", caller)
	}
	return nil
}

// RequireMinter - fail unless caller is the owner or an authorised
// minter
func (a *Access) RequireMinter(reader storage.Reader, caller *account.Account) error {
	if nil == caller {
		return fault.ErrMissingCaller
	}
	if caller.Equal(a.Owner(reader)) || a.IsMinter(reader, caller) {
		return nil
	}
	return fault.With(fault.ErrNotMinter, "caller: %s", caller)
}

// TransferOwnership - hand the owner role to newOwner
func (a *Access) TransferOwnership(trx storage.Transaction, caller *account.Account, newOwner *account.Account) error {
	if err := a.RequireOwner(trx, caller); nil != err {
		return err
	}
	if nil == newOwner {
		return fault.ErrInvalidRecipient
	}
	trx.Put(a.owner, ownerKey, newOwner.Bytes())
	return nil
}

// AuthoriseMinter - add to the minter set; idempotent
func (a *Access) AuthoriseMinter(trx storage.Transaction, caller *account.Account, minter *account.Account) error {
	if err := a.RequireOwner(trx, caller); nil != err {
		return err
	}
	if nil == minter {
		return fault.ErrInvalidRecipient
	}
	trx.Put(a.minters, minter.Bytes(), minterFlag)
	return nil
}

// RevokeMinter - remove from the minter set; idempotent
func (a *Access) RevokeMinter(trx storage.Transaction, caller *account.Account, minter *account.Account) error {
	if err := a.RequireOwner(trx, caller); nil != err {
		return err
	}
	if nil == minter {
		return fault.ErrInvalidRecipient
	}
	trx.Delete(a.minters, minter.Bytes())
	return nil
}

// IsMinter - true if in the minter set
func (a *Access) IsMinter(reader storage.Reader, minter *account.Account) bool {
	if nil == minter {
		return false
	}
	return reader.Has(a.minters, minter.Bytes())
}
