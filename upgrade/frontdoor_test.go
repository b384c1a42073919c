// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package upgrade_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/propertyd/account"
	"github.com/bitmark-inc/propertyd/fault"
	"github.com/bitmark-inc/propertyd/logic"
	"github.com/bitmark-inc/propertyd/registry"
	"github.com/bitmark-inc/propertyd/storage"
	"github.com/bitmark-inc/propertyd/upgrade"
)

var (
	v1 = logic.AddressOf(logic.VersionOneName)
	v2 = logic.AddressOf(logic.VersionTwoName)
)

type snapshot struct {
	balanceA  uint64
	balanceB  uint64
	property  registry.Property
	supply    uint64
	allocated uint64
	owned     []uint64
	owner     *account.Account
	uri       string
}

func capture(t *testing.T, d *upgrade.FrontDoor, a *account.Account, b *account.Account) snapshot {
	s := snapshot{}
	err := d.Query(func(l logic.Logic, r storage.Reader) error {
		s.balanceA = l.BalanceOf(r, a, 1)
		s.balanceB = l.BalanceOf(r, b, 1)
		s.property = l.Property(r, 1)
		s.supply = l.TotalSupply(r, 1)
		s.allocated = l.ShareholderShares(r, 1, b)
		s.owned = l.UserProperties(r, a)
		s.owner = l.Owner(r)
		s.uri = l.URI(r, 1)
		return nil
	})
	if nil != err {
		t.Fatalf("query error: %s", err)
	}
	return s
}

// create id=1 with 1000 shares as A, transfer 400 to B, upgrade:
// everything readable under version one reads the same under version two
func TestUpgradePreservesState(t *testing.T) {
	removeFiles()
	defer removeFiles()
	region := openRegion(t)
	defer region.Close()

	admin := newAccount(t)
	a := newAccount(t)
	b := newAccount(t)
	events := &sink{}

	d, err := upgrade.Deploy(region, logic.Standard(), events, admin, v1, initialiseV1(t, "https://example.com/{id}"))
	if nil != err {
		t.Fatalf("deploy error: %s", err)
	}
	authoriseMinter(t, d, admin, a)

	err = d.Execute(a, func(l logic.Logic, call *logic.Call) error {
		return l.CreateProperty(call, 1, 1000)
	})
	assert.Nil(t, err, "create")

	err = d.Execute(a, func(l logic.Logic, call *logic.Call) error {
		return l.Transfer(call, a, b, 1, 400)
	})
	assert.Nil(t, err, "transfer")

	before := capture(t, d, a, b)
	assert.Equal(t, uint64(600), before.balanceA, "A before")
	assert.Equal(t, uint64(400), before.balanceB, "B before")
	assert.Equal(t, uint64(1000), before.property.AvailableShares, "available before")

	err = d.UpgradeAndCall(admin, v2, logic.Invocation{Method: logic.MethodInitialiseV2})
	assert.Nil(t, err, "upgrade")

	after := capture(t, d, a, b)
	assert.Equal(t, before, after, "state changed across upgrade")
	assert.Equal(t, uint64(600), after.balanceA, "A after")
	assert.Equal(t, uint64(400), after.balanceB, "B after")
	assert.Equal(t, uint64(1000), after.property.AvailableShares, "available after")
	assert.True(t, a.Equal(after.property.Owner), "property owner after")

	implementation, err := d.Implementation(admin)
	assert.Nil(t, err, "implementation")
	assert.Equal(t, v2, implementation.Address, "implementation address")
	assert.Equal(t, uint64(2), implementation.Version, "implementation version")

	// version two operations are now reachable
	err = d.Execute(a, func(l logic.Logic, call *logic.Call) error {
		pricing, ok := l.(logic.Pricing)
		if !ok {
			return fault.ErrNotSupported
		}
		return pricing.SetSharePrice(call, 1, 25)
	})
	assert.Nil(t, err, "set price after upgrade")

	err = d.Query(func(l logic.Logic, r storage.Reader) error {
		assert.Equal(t, uint64(2), l.Status(r).Initialised, "initialised version")
		return nil
	})
	assert.Nil(t, err, "query")

	kinds := events.Kinds()
	assert.Equal(t, logic.EventUpgraded, kinds[0], "first event")
	assert.Contains(t, kinds, logic.EventPropertyCreated, "create event")
	assert.Contains(t, kinds, logic.EventSharePriceSet, "price event")
}

func TestUpgradeRequiresAdmin(t *testing.T) {
	removeFiles()
	defer removeFiles()
	region := openRegion(t)
	defer region.Close()

	admin := newAccount(t)
	stranger := newAccount(t)

	d, err := upgrade.Deploy(region, logic.Standard(), nil, admin, v1, initialiseV1(t, ""))
	if nil != err {
		t.Fatalf("deploy error: %s", err)
	}

	err = d.UpgradeAndCall(stranger, v2, logic.Invocation{Method: logic.MethodInitialiseV2})
	assert.True(t, errors.Is(err, fault.ErrNotAdministrator), "stranger upgrade")
	assert.True(t, fault.IsErrUnauthorised(err), "stranger upgrade class")

	_, err = d.Admin(stranger)
	assert.True(t, fault.IsErrUnauthorised(err), "stranger admin read")
	_, err = d.Implementation(stranger)
	assert.True(t, fault.IsErrUnauthorised(err), "stranger implementation read")
	_, err = d.History(stranger)
	assert.True(t, fault.IsErrUnauthorised(err), "stranger history read")
	assert.True(t, fault.IsErrUnauthorised(d.ChangeAdmin(stranger, stranger)), "stranger change admin")

	who, err := d.Admin(admin)
	assert.Nil(t, err, "admin read")
	assert.True(t, admin.Equal(who), "admin")

	implementation, err := d.Implementation(admin)
	assert.Nil(t, err, "implementation read")
	assert.Equal(t, v1, implementation.Address, "still version one")

	err = d.UpgradeAndCall(admin, logic.AddressOf("unknown"), logic.Invocation{})
	assert.True(t, fault.IsErrNotFound(err), "unknown logic")
}

func TestFailedUpgradeRollsBack(t *testing.T) {
	removeFiles()
	defer removeFiles()
	region := openRegion(t)
	defer region.Close()

	admin := newAccount(t)

	d, err := upgrade.Deploy(region, logic.Standard(), nil, admin, v1, initialiseV1(t, ""))
	if nil != err {
		t.Fatalf("deploy error: %s", err)
	}

	// re-running the version one initialiser fails after the install
	err = d.UpgradeAndCall(admin, v2, initialiseV1(t, "x"))
	assert.True(t, errors.Is(err, fault.ErrAlreadyInitialised), "migration error")

	implementation, _ := d.Implementation(admin)
	assert.Equal(t, v1, implementation.Address, "implementation changed by failed upgrade")
	history, _ := d.History(admin)
	assert.Equal(t, 1, len(history), "history changed by failed upgrade")

	err = d.Query(func(l logic.Logic, r storage.Reader) error {
		assert.Equal(t, uint64(1), l.Status(r).Initialised, "initialised changed")
		_, ok := l.(logic.Pricing)
		assert.False(t, ok, "active logic swapped")
		return nil
	})
	assert.Nil(t, err, "query")

	// and the region can still be upgraded properly
	assert.Nil(t, d.UpgradeAndCall(admin, v2, logic.Invocation{Method: logic.MethodInitialiseV2}), "upgrade")

	// a version whose layout does not extend the installed one is refused
	err = d.UpgradeAndCall(admin, v1, logic.Invocation{})
	assert.True(t, errors.Is(err, fault.ErrIncompatibleLayout), "downgrade")

	history, _ = d.History(admin)
	if assert.Equal(t, 2, len(history), "history") {
		assert.Equal(t, v1, history[0].Address, "first install")
		assert.Equal(t, uint64(2), history[1].Version, "second install")
	}
}

func TestDeployOnce(t *testing.T) {
	removeFiles()
	defer removeFiles()
	region := openRegion(t)
	defer region.Close()

	admin := newAccount(t)

	_, err := upgrade.Load(region, logic.Standard(), nil)
	assert.Equal(t, fault.ErrNotInitialised, err, "load empty region")

	_, err = upgrade.Deploy(region, logic.Standard(), nil, admin, v1, logic.Invocation{Method: "bogus"})
	assert.True(t, errors.Is(err, fault.ErrUnknownInvocation), "bad deploy")

	// failed deploy left nothing behind
	_, err = upgrade.Load(region, logic.Standard(), nil)
	assert.Equal(t, fault.ErrNotInitialised, err, "load after failed deploy")

	_, err = upgrade.Deploy(region, logic.Standard(), nil, admin, v1, initialiseV1(t, ""))
	assert.Nil(t, err, "deploy")

	_, err = upgrade.Deploy(region, logic.Standard(), nil, admin, v2, initialiseV1(t, ""))
	assert.True(t, errors.Is(err, fault.ErrAlreadyInitialised), "second deploy")
	assert.True(t, fault.IsErrInitialised(err), "second deploy class")
}

func TestChangeAdmin(t *testing.T) {
	removeFiles()
	defer removeFiles()
	region := openRegion(t)
	defer region.Close()

	admin := newAccount(t)
	next := newAccount(t)

	d, err := upgrade.Deploy(region, logic.Standard(), nil, admin, v1, initialiseV1(t, ""))
	if nil != err {
		t.Fatalf("deploy error: %s", err)
	}

	assert.Equal(t, fault.ErrInvalidRecipient, d.ChangeAdmin(admin, nil), "nil admin")
	assert.Nil(t, d.ChangeAdmin(admin, next), "change admin")

	_, err = d.Admin(admin)
	assert.True(t, fault.IsErrUnauthorised(err), "old admin")

	who, err := d.Admin(next)
	assert.Nil(t, err, "new admin")
	assert.True(t, next.Equal(who), "admin value")
}

func TestStateSurvivesReopen(t *testing.T) {
	removeFiles()
	defer removeFiles()

	admin := newAccount(t)
	a := newAccount(t)
	b := newAccount(t)

	region := openRegion(t)
	d, err := upgrade.Deploy(region, logic.Standard(), nil, admin, v1, initialiseV1(t, ""))
	if nil != err {
		t.Fatalf("deploy error: %s", err)
	}
	authoriseMinter(t, d, admin, a)
	assert.Nil(t, d.Execute(a, func(l logic.Logic, call *logic.Call) error {
		if err := l.CreateProperty(call, 1, 1000); nil != err {
			return err
		}
		return l.Transfer(call, a, b, 1, 400)
	}), "create and transfer")
	assert.Nil(t, d.UpgradeAndCall(admin, v2, logic.Invocation{Method: logic.MethodInitialiseV2}), "upgrade")
	before := capture(t, d, a, b)
	region.Close()

	region = openRegion(t)
	defer region.Close()

	d, err = upgrade.Load(region, logic.Standard(), nil)
	if nil != err {
		t.Fatalf("load error: %s", err)
	}
	assert.Equal(t, before, capture(t, d, a, b), "state changed across reopen")

	implementation, err := d.Implementation(admin)
	assert.Nil(t, err, "implementation")
	assert.Equal(t, v2, implementation.Address, "implementation after reopen")

	// a program that only knows version one cannot run this region
	_, err = upgrade.Load(region, logic.NewCatalogue(logic.VersionOne()), nil)
	assert.True(t, fault.IsErrNotFound(err), "unknown implementation")
}

func TestExecuteIsAtomic(t *testing.T) {
	removeFiles()
	defer removeFiles()
	region := openRegion(t)
	defer region.Close()

	admin := newAccount(t)
	a := newAccount(t)
	b := newAccount(t)

	d, err := upgrade.Deploy(region, logic.Standard(), nil, admin, v1, initialiseV1(t, ""))
	if nil != err {
		t.Fatalf("deploy error: %s", err)
	}
	authoriseMinter(t, d, admin, a)
	assert.Nil(t, d.Execute(a, func(l logic.Logic, call *logic.Call) error {
		return l.CreateProperty(call, 1, 1000)
	}), "create")

	err = d.Execute(a, func(l logic.Logic, call *logic.Call) error {
		return l.BatchTransfer(call, a, b, []uint64{1, 1}, []uint64{10})
	})
	assert.True(t, errors.Is(err, fault.ErrLengthMismatch), "mismatch")

	// a later failure undoes earlier work in the same operation
	err = d.Execute(a, func(l logic.Logic, call *logic.Call) error {
		if err := l.Transfer(call, a, b, 1, 100); nil != err {
			return err
		}
		return l.PurchaseShares(call, 1, 5000)
	})
	assert.True(t, errors.Is(err, fault.ErrInsufficientShares), "second step")

	s := capture(t, d, a, b)
	assert.Equal(t, uint64(1000), s.balanceA, "A changed")
	assert.Equal(t, uint64(0), s.balanceB, "B changed")

	assert.Equal(t, fault.ErrMissingCaller, d.Execute(nil, func(l logic.Logic, call *logic.Call) error {
		return nil
	}), "nil caller")
}

// operations racing an upgrade never run the old logic against the
// upgraded state, and the reported implementation always agrees
// with itself
func TestExecuteDuringUpgrade(t *testing.T) {
	removeFiles()
	defer removeFiles()
	region := openRegion(t)
	defer region.Close()

	admin := newAccount(t)
	user := newAccount(t)

	d, err := upgrade.Deploy(region, logic.Standard(), nil, admin, v1, initialiseV1(t, ""))
	if nil != err {
		t.Fatalf("deploy error: %s", err)
	}

	const workers = 4
	stop := make(chan struct{})
	started := sync.WaitGroup{}
	finished := sync.WaitGroup{}
	var calls uint64
	var stale uint64
	var failed uint64

	for i := 0; i < workers; i += 1 {
		started.Add(1)
		finished.Add(1)
		go func() {
			defer finished.Done()
			first := true
			for {
				select {
				case <-stop:
					return
				default:
				}
				err := d.Execute(user, func(l logic.Logic, call *logic.Call) error {
					if 1 == l.Version() && 2 == l.Status(call.Trx).Initialised {
						atomic.AddUint64(&stale, 1)
					}
					return nil
				})
				if nil != err {
					atomic.AddUint64(&failed, 1)
				}
				atomic.AddUint64(&calls, 1)
				if first {
					started.Done()
					first = false
				}
			}
		}()
	}
	started.Wait()

	err = d.UpgradeAndCall(admin, v2, logic.Invocation{Method: logic.MethodInitialiseV2})
	assert.Nil(t, err, "upgrade")

	// let the workers run against the upgraded region for a while
	for mark := atomic.LoadUint64(&calls) + workers*10; atomic.LoadUint64(&calls) < mark; {
		implementation, err := d.Implementation(admin)
		assert.Nil(t, err, "implementation")
		assert.Equal(t, v2, implementation.Address, "implementation address")
		assert.Equal(t, logic.VersionTwoName, implementation.Name, "implementation name")
		assert.Equal(t, uint64(2), implementation.Version, "implementation version")
	}
	close(stop)
	finished.Wait()

	assert.Equal(t, uint64(0), atomic.LoadUint64(&stale), "version one ran on version two state")
	assert.Equal(t, uint64(0), atomic.LoadUint64(&failed), "execute errors")

	err = d.Query(func(l logic.Logic, r storage.Reader) error {
		assert.Equal(t, uint64(2), l.Version(), "active version")
		assert.Equal(t, uint64(2), l.Status(r).Initialised, "initialised version")
		return nil
	})
	assert.Nil(t, err, "query")
}
