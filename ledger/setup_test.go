// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/propertyd/account"
	"github.com/bitmark-inc/propertyd/ledger"
	"github.com/bitmark-inc/propertyd/storage"
)

const (
	databaseFileName = "test.leveldb"
)

type pools struct {
	Balances  *storage.PoolHandle `prefix:"f" kind:"uint64"`
	Supply    *storage.PoolHandle `prefix:"g" kind:"uint64"`
	Operators *storage.PoolHandle `prefix:"h" kind:"flag"`
}

type fixture struct {
	region *storage.Region
	pools  *pools
	ledger *ledger.Ledger
}

func setup(t *testing.T) *fixture {
	os.RemoveAll(databaseFileName)
	region, err := storage.Open(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	p := &pools{}
	if err := region.Bind(p); nil != err {
		t.Fatalf("bind error: %s", err)
	}
	return &fixture{
		region: region,
		pools:  p,
		ledger: ledger.New(p.Balances, p.Supply, p.Operators),
	}
}

func (f *fixture) teardown() {
	f.region.Close()
	os.RemoveAll(databaseFileName)
}

// run fn in a transaction: commit on success, abort on error
func (f *fixture) run(t *testing.T, fn func(trx storage.Transaction) error) error {
	trx, err := f.region.Begin()
	if nil != err {
		t.Fatalf("begin error: %s", err)
	}
	if err := fn(trx); nil != err {
		trx.Abort()
		return err
	}
	return trx.Commit()
}

func (f *fixture) balance(t *testing.T, owner *account.Account, id uint64) uint64 {
	view, err := f.region.View()
	if nil != err {
		t.Fatalf("view error: %s", err)
	}
	defer view.Release()
	return f.ledger.BalanceOf(view, owner, id)
}

func (f *fixture) supply(t *testing.T, id uint64) uint64 {
	view, err := f.region.View()
	if nil != err {
		t.Fatalf("view error: %s", err)
	}
	defer view.Release()
	return f.ledger.TotalSupply(view, id)
}

func newAccount(t *testing.T) *account.Account {
	acc, _, err := account.Generate(true)
	if nil != err {
		t.Fatalf("generate account error: %s", err)
	}
	return acc
}
