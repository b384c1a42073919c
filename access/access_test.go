// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package access_test

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/propertyd/access"
	"github.com/bitmark-inc/propertyd/account"
	"github.com/bitmark-inc/propertyd/fault"
	"github.com/bitmark-inc/propertyd/storage"
)

const (
	databaseFileName = "test.leveldb"
)

type pools struct {
	Owner   *storage.PoolHandle `prefix:"d" kind:"account"`
	Minters *storage.PoolHandle `prefix:"e" kind:"flag"`
}

func setup(t *testing.T) (*storage.Region, *access.Access) {
	os.RemoveAll(databaseFileName)
	region, err := storage.Open(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	p := &pools{}
	if err := region.Bind(p); nil != err {
		t.Fatalf("bind error: %s", err)
	}
	return region, access.New(p.Owner, p.Minters)
}

func teardown(region *storage.Region) {
	region.Close()
	os.RemoveAll(databaseFileName)
}

func run(t *testing.T, region *storage.Region, fn func(trx storage.Transaction) error) error {
	trx, err := region.Begin()
	if nil != err {
		t.Fatalf("begin error: %s", err)
	}
	if err := fn(trx); nil != err {
		trx.Abort()
		return err
	}
	return trx.Commit()
}

func newAccount(t *testing.T) *account.Account {
	acc, _, err := account.Generate(true)
	if nil != err {
		t.Fatalf("generate account error: %s", err)
	}
	return acc
}

func isMinter(t *testing.T, region *storage.Region, a *access.Access, who *account.Account) bool {
	view, err := region.View()
	if nil != err {
		t.Fatalf("view error: %s", err)
	}
	defer view.Release()
	return a.IsMinter(view, who)
}

func TestMinterSet(t *testing.T) {
	region, a := setup(t)
	defer teardown(region)

	owner := newAccount(t)
	minter := newAccount(t)
	stranger := newAccount(t)

	assert.Nil(t, run(t, region, func(trx storage.Transaction) error {
		return a.Initialise(trx, owner)
	}), "initialise")

	// idempotent
	for i := 0; i < 2; i += 1 {
		assert.Nil(t, run(t, region, func(trx storage.Transaction) error {
			return a.AuthoriseMinter(trx, owner, minter)
		}), "authorise: %d", i)
	}
	assert.True(t, isMinter(t, region, a, minter), "not authorised")

	// non-owner cannot change the set in either direction
	err := run(t, region, func(trx storage.Transaction) error {
		return a.RevokeMinter(trx, stranger, minter)
	})
	assert.True(t, errors.Is(err, fault.ErrNotOwner), "stranger revoke")
	assert.True(t, fault.IsErrUnauthorised(err), "stranger revoke class")
	assert.True(t, isMinter(t, region, a, minter), "stranger revoke mutated set")

	err = run(t, region, func(trx storage.Transaction) error {
		return a.AuthoriseMinter(trx, minter, stranger)
	})
	assert.True(t, errors.Is(err, fault.ErrNotOwner), "minter authorise")
	assert.False(t, isMinter(t, region, a, stranger), "minter authorise mutated set")

	for i := 0; i < 2; i += 1 {
		assert.Nil(t, run(t, region, func(trx storage.Transaction) error {
			return a.RevokeMinter(trx, owner, minter)
		}), "revoke: %d", i)
	}
	assert.False(t, isMinter(t, region, a, minter), "not revoked")
}

func TestRoles(t *testing.T) {
	region, a := setup(t)
	defer teardown(region)

	owner := newAccount(t)
	minter := newAccount(t)
	next := newAccount(t)

	assert.Nil(t, run(t, region, func(trx storage.Transaction) error {
		if err := a.Initialise(trx, owner); nil != err {
			return err
		}
		return a.AuthoriseMinter(trx, owner, minter)
	}), "setup")

	view, _ := region.View()
	assert.Nil(t, a.RequireMinter(view, owner), "owner may mint")
	assert.Nil(t, a.RequireMinter(view, minter), "minter may mint")
	assert.True(t, errors.Is(a.RequireMinter(view, next), fault.ErrNotMinter), "stranger may mint")
	assert.Equal(t, fault.ErrMissingCaller, a.RequireOwner(view, nil), "nil caller")
	view.Release()

	err := run(t, region, func(trx storage.Transaction) error {
		return a.TransferOwnership(trx, minter, next)
	})
	assert.True(t, fault.IsErrUnauthorised(err), "minter transfer ownership")

	err = run(t, region, func(trx storage.Transaction) error {
		return a.TransferOwnership(trx, owner, nil)
	})
	assert.Equal(t, fault.ErrInvalidRecipient, err, "nil owner")

	assert.Nil(t, run(t, region, func(trx storage.Transaction) error {
		return a.TransferOwnership(trx, owner, next)
	}), "transfer ownership")

	view, _ = region.View()
	defer view.Release()
	assert.True(t, next.Equal(a.Owner(view)), "owner not changed")
	assert.True(t, errors.Is(a.RequireOwner(view, owner), fault.ErrNotOwner), "old owner kept role")
}
