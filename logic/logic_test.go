// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package logic_test

import (
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/propertyd/account"
	"github.com/bitmark-inc/propertyd/fault"
	"github.com/bitmark-inc/propertyd/logic"
	"github.com/bitmark-inc/propertyd/storage"
)

const (
	databaseFileName = "test.leveldb"
)

type fixture struct {
	region *storage.Region
	logic  logic.Logic
	view   *storage.Snapshot
}

func setup(t *testing.T, d logic.Definition) *fixture {
	os.RemoveAll(databaseFileName)
	region, err := storage.Open(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	l, err := d.Instantiate(region)
	if nil != err {
		t.Fatalf("instantiate error: %s", err)
	}
	return &fixture{
		region: region,
		logic:  l,
	}
}

func (f *fixture) teardown() {
	f.release()
	f.region.Close()
	os.RemoveAll(databaseFileName)
}

// run fn as caller; commit on success
func (f *fixture) run(t *testing.T, caller *account.Account, fn func(call *logic.Call) error) ([]logic.Event, error) {
	trx, err := f.region.Begin()
	if nil != err {
		t.Fatalf("begin error: %s", err)
	}
	call := logic.NewCall(trx, caller)
	if err := fn(call); nil != err {
		trx.Abort()
		return nil, err
	}
	return call.Events(), trx.Commit()
}

func (f *fixture) reader(t *testing.T) storage.Reader {
	f.release()
	view, err := f.region.View()
	if nil != err {
		t.Fatalf("view error: %s", err)
	}
	f.view = view
	return view
}

func (f *fixture) release() {
	if nil != f.view {
		f.view.Release()
		f.view = nil
	}
}

func initialise(t *testing.T, f *fixture, caller *account.Account, baseURI string) {
	args, _ := json.Marshal(logic.InitialiseArguments{
		BaseURI: baseURI,
		Ledger:  "ledger-1",
	})
	_, err := f.run(t, caller, func(call *logic.Call) error {
		return f.logic.Invoke(call, logic.Invocation{
			Method:    logic.MethodInitialise,
			Arguments: args,
		})
	})
	if nil != err {
		t.Fatalf("initialise error: %s", err)
	}
}

func newAccount(t *testing.T) *account.Account {
	acc, _, err := account.Generate(false)
	if nil != err {
		t.Fatalf("generate account error: %s", err)
	}
	return acc
}

func TestInitialise(t *testing.T) {
	f := setup(t, logic.VersionOne())
	defer f.teardown()

	owner := newAccount(t)

	_, err := f.run(t, owner, func(call *logic.Call) error {
		return f.logic.CreateProperty(call, 1, 10)
	})
	assert.Equal(t, fault.ErrNotInitialised, err, "before initialise")

	initialise(t, f, owner, "https://example.com/{id}.json")

	r := f.reader(t)
	assert.Equal(t, logic.Status{
		Initialised:   1,
		BaseURI:       "https://example.com/{id}.json",
		LedgerAddress: "ledger-1",
	}, f.logic.Status(r), "status")
	assert.True(t, owner.Equal(f.logic.Owner(r)), "owner defaults to caller")
	assert.Equal(t, "https://example.com/0000000000000000000000000000000000000000000000000000000000000001.json", f.logic.URI(r, 1), "uri")

	_, err = f.run(t, owner, func(call *logic.Call) error {
		return f.logic.Invoke(call, logic.Invocation{Method: logic.MethodInitialise})
	})
	assert.True(t, errors.Is(err, fault.ErrAlreadyInitialised), "double initialise")
	assert.True(t, fault.IsErrInitialised(err), "double initialise class")

	_, err = f.run(t, owner, func(call *logic.Call) error {
		return f.logic.Invoke(call, logic.Invocation{Method: "self_destruct"})
	})
	assert.True(t, errors.Is(err, fault.ErrUnknownInvocation), "unknown method")

	_, err = f.run(t, owner, func(call *logic.Call) error {
		return f.logic.Invoke(call, logic.Invocation{Method: logic.MethodInitialise, Arguments: []byte("{")})
	})
	assert.True(t, errors.Is(err, fault.ErrMissingParameters), "bad arguments")
}

func TestInitialiseExplicitOwner(t *testing.T) {
	f := setup(t, logic.VersionOne())
	defer f.teardown()

	deployer := newAccount(t)
	owner := newAccount(t)

	args, _ := json.Marshal(logic.InitialiseArguments{Owner: owner})
	_, err := f.run(t, deployer, func(call *logic.Call) error {
		return f.logic.Invoke(call, logic.Invocation{Method: logic.MethodInitialise, Arguments: args})
	})
	assert.Nil(t, err, "initialise")
	assert.True(t, owner.Equal(f.logic.Owner(f.reader(t))), "explicit owner")
}

func TestMintRequiresMinter(t *testing.T) {
	f := setup(t, logic.VersionOne())
	defer f.teardown()

	owner := newAccount(t)
	minter := newAccount(t)
	stranger := newAccount(t)
	initialise(t, f, owner, "")

	_, err := f.run(t, stranger, func(call *logic.Call) error {
		return f.logic.Mint(call, stranger, 4, 10)
	})
	assert.True(t, errors.Is(err, fault.ErrNotMinter), "stranger mint")

	_, err = f.run(t, stranger, func(call *logic.Call) error {
		return f.logic.AuthoriseMinter(call, stranger)
	})
	assert.True(t, fault.IsErrUnauthorised(err), "stranger authorise")
	assert.False(t, f.logic.IsMinter(f.reader(t), stranger), "stranger authorised")

	_, err = f.run(t, owner, func(call *logic.Call) error {
		return f.logic.AuthoriseMinter(call, minter)
	})
	assert.Nil(t, err, "authorise")

	events, err := f.run(t, minter, func(call *logic.Call) error {
		return f.logic.Mint(call, stranger, 4, 10)
	})
	assert.Nil(t, err, "minter mint")
	assert.Equal(t, 1, len(events), "mint events")
	assert.Equal(t, logic.EventTransferSingle, events[0].Kind, "mint event kind")

	r := f.reader(t)
	assert.Equal(t, uint64(10), f.logic.BalanceOf(r, stranger, 4), "minted balance")
	assert.Equal(t, uint64(10), f.logic.TotalSupply(r, 4), "minted supply")
	assert.Equal(t, "4", f.logic.URI(r, 4), "uri without template")
}

func TestPropertyLifecycle(t *testing.T) {
	f := setup(t, logic.VersionOne())
	defer f.teardown()

	owner := newAccount(t)
	creator := newAccount(t)
	buyer := newAccount(t)
	initialise(t, f, owner, "")

	_, err := f.run(t, owner, func(call *logic.Call) error {
		return f.logic.AuthoriseMinter(call, creator)
	})
	assert.Nil(t, err, "authorise creator")

	events, err := f.run(t, creator, func(call *logic.Call) error {
		return f.logic.CreateProperty(call, 1, 1000)
	})
	assert.Nil(t, err, "create")
	assert.Equal(t, logic.EventPropertyCreated, events[0].Kind, "create event")

	for _, caller := range []*account.Account{owner, creator, buyer} {
		_, err = f.run(t, caller, func(call *logic.Call) error {
			return f.logic.CreateProperty(call, 1, 1)
		})
		assert.True(t, errors.Is(err, fault.ErrPropertyAlreadyExists), "duplicate create by: %s", caller)
	}

	_, err = f.run(t, buyer, func(call *logic.Call) error {
		return f.logic.PurchaseShares(call, 1, 250)
	})
	assert.Nil(t, err, "purchase")

	r := f.reader(t)
	p := f.logic.Property(r, 1)
	assert.Equal(t, uint64(1000), p.TotalShares, "total")
	assert.Equal(t, uint64(750), p.AvailableShares, "available")
	assert.True(t, creator.Equal(p.Owner), "property owner")
	assert.Equal(t, uint64(250), f.logic.ShareholderShares(r, 1, buyer), "allocation")
	assert.Equal(t, uint64(250), f.logic.UserInvestment(r, buyer, 1), "investment")
	assert.Equal(t, []uint64{1}, f.logic.UserProperties(r, creator), "owned")
	assert.Equal(t, uint64(1000), f.logic.BalanceOf(r, creator, 1), "ledger untouched by purchase")

	_, err = f.run(t, buyer, func(call *logic.Call) error {
		return f.logic.SellShares(call, 1, 250)
	})
	assert.Nil(t, err, "sell")
	assert.Equal(t, uint64(1000), f.logic.Property(f.reader(t), 1).AvailableShares, "round trip")
}

func TestCreatePropertyRequiresMinter(t *testing.T) {
	f := setup(t, logic.VersionOne())
	defer f.teardown()

	owner := newAccount(t)
	stranger := newAccount(t)
	initialise(t, f, owner, "")

	_, err := f.run(t, stranger, func(call *logic.Call) error {
		return f.logic.CreateProperty(call, 3, 1000000)
	})
	assert.True(t, errors.Is(err, fault.ErrNotMinter), "stranger create")
	assert.True(t, fault.IsErrUnauthorised(err), "stranger create class")

	r := f.reader(t)
	assert.Equal(t, uint64(0), f.logic.TotalSupply(r, 3), "supply after stranger create")
	assert.Equal(t, uint64(0), f.logic.BalanceOf(r, stranger, 3), "stranger balance")
	assert.Equal(t, uint64(0), f.logic.Property(r, 3).TotalShares, "no record")

	// shares minted directly on the ledger block a later create
	_, err = f.run(t, owner, func(call *logic.Call) error {
		return f.logic.Mint(call, owner, 7, 100)
	})
	assert.Nil(t, err, "mint")

	_, err = f.run(t, stranger, func(call *logic.Call) error {
		return f.logic.CreateProperty(call, 7, 1000000)
	})
	assert.True(t, errors.Is(err, fault.ErrNotMinter), "stranger create over minted supply")

	_, err = f.run(t, owner, func(call *logic.Call) error {
		return f.logic.CreateProperty(call, 7, 1000000)
	})
	assert.True(t, errors.Is(err, fault.ErrSupplyAlreadyExists), "owner create over minted supply")
	assert.True(t, fault.IsErrExists(err), "owner create over minted supply class")

	r = f.reader(t)
	assert.Equal(t, uint64(100), f.logic.TotalSupply(r, 7), "supply unchanged")
	assert.Equal(t, uint64(0), f.logic.BalanceOf(r, stranger, 7), "stranger holds nothing")
	assert.Equal(t, uint64(0), f.logic.Property(r, 7).TotalShares, "still no record")

	_, err = f.run(t, owner, func(call *logic.Call) error {
		return f.logic.CreateProperty(call, 8, 10)
	})
	assert.Nil(t, err, "owner create")
	assert.Equal(t, uint64(10), f.logic.BalanceOf(f.reader(t), owner, 8), "owner balance")
}

func TestTransferAndBatch(t *testing.T) {
	f := setup(t, logic.VersionOne())
	defer f.teardown()

	alice := newAccount(t)
	bob := newAccount(t)
	initialise(t, f, alice, "")

	_, err := f.run(t, alice, func(call *logic.Call) error {
		if err := f.logic.CreateProperty(call, 1, 100); nil != err {
			return err
		}
		return f.logic.CreateProperty(call, 2, 100)
	})
	assert.Nil(t, err, "create")

	_, err = f.run(t, alice, func(call *logic.Call) error {
		return f.logic.BatchTransfer(call, alice, bob, []uint64{1, 2}, []uint64{1})
	})
	assert.True(t, fault.IsErrInvalid(err), "mismatch")

	_, err = f.run(t, bob, func(call *logic.Call) error {
		return f.logic.Transfer(call, alice, bob, 1, 1)
	})
	assert.True(t, fault.IsErrUnauthorised(err), "not operator")

	_, err = f.run(t, alice, func(call *logic.Call) error {
		return f.logic.SetApprovalForAll(call, bob, true)
	})
	assert.Nil(t, err, "approve")

	events, err := f.run(t, bob, func(call *logic.Call) error {
		return f.logic.BatchTransfer(call, alice, bob, []uint64{1, 2}, []uint64{40, 60})
	})
	assert.Nil(t, err, "operator batch")
	assert.Equal(t, logic.EventTransferBatch, events[0].Kind, "batch event")

	r := f.reader(t)
	balances, err := f.logic.BalanceOfBatch(r, []*account.Account{alice, alice, bob, bob}, []uint64{1, 2, 1, 2})
	assert.Nil(t, err, "balances")
	assert.Equal(t, []uint64{60, 40, 40, 60}, balances, "balances after batch")
	assert.True(t, f.logic.IsApprovedForAll(r, alice, bob), "approval")

	_, err = f.run(t, bob, func(call *logic.Call) error {
		return f.logic.Burn(call, bob, 1, 40)
	})
	assert.Nil(t, err, "burn")
	assert.Equal(t, uint64(60), f.logic.TotalSupply(f.reader(t), 1), "supply after burn")
}
