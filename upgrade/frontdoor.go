// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package upgrade

import (
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/propertyd/account"
	"github.com/bitmark-inc/propertyd/fault"
	"github.com/bitmark-inc/propertyd/logic"
	"github.com/bitmark-inc/propertyd/storage"
)

// Sink - destination of committed events
type Sink interface {
	Send(from string, item interface{}) bool
}

// Handle - what the outer layers need from a front door
type Handle interface {
	Execute(caller *account.Account, operation func(logic.Logic, *logic.Call) error) error
	Query(operation func(logic.Logic, storage.Reader) error) error
	UpgradeAndCall(caller *account.Account, address logic.Address, invocation logic.Invocation) error
	Admin(caller *account.Account) (*account.Account, error)
	Implementation(caller *account.Account) (Implementation, error)
	ChangeAdmin(caller *account.Account, newAdmin *account.Account) error
	History(caller *account.Account) ([]Record, error)
}

// Implementation - the active logic version
type Implementation struct {
	Address logic.Address `json:"address"`
	Name    string        `json:"name"`
	Version uint64        `json:"version,string"`
}

// Upgraded - event emitted when a logic version is installed
type Upgraded struct {
	Implementation
	Admin *account.Account `json:"admin"`
}

// AdminChanged - event emitted when the administrator changes
type AdminChanged struct {
	Previous *account.Account `json:"previous"`
	Admin    *account.Account `json:"admin"`
}

// FrontDoor - stable entry point holding a swappable logic version
type FrontDoor struct {
	sync.RWMutex // guards active

	log       *logger.L
	region    *storage.Region
	catalogue *logic.Catalogue
	sink      Sink
	active    logic.Logic
}

// Deploy - install the first logic version into an empty region
//
// admin becomes the administrator and also the caller of the
// initialisation invocation; everything happens in one transaction
func Deploy(region *storage.Region, catalogue *logic.Catalogue, sink Sink, admin *account.Account, address logic.Address, invocation logic.Invocation) (*FrontDoor, error) {
	if nil == admin {
		return nil, fault.ErrMissingCaller
	}

	d := newFrontDoor(region, catalogue, sink)

	trx, err := region.Begin()
	if nil != err {
		return nil, err
	}
	defer trx.Abort()

	if current, ok := readImplementation(trx, region); ok {
		return nil, fault.With(fault.ErrAlreadyInitialised, "implementation: %s", current)
	}

	l, err := d.install(trx, address)
	if nil != err {
		return nil, err
	}
	writeAdmin(trx, region, admin)

	call := logic.NewCall(trx, admin)
	if err := l.Invoke(call, invocation); nil != err {
		d.log.Warnf("deploy: %s  invocation: %q  error: %s", l.Name(), invocation.Method, err)
		return nil, err
	}
	if err := trx.Commit(); nil != err {
		return nil, err
	}

	d.active = l
	d.log.Infof("deployed: %s  address: %s  admin: %s", l.Name(), l.Address(), admin)

	d.publish(upgradedEvent(l, admin))
	d.publish(call.Events()...)
	return d, nil
}

// Load - open a region that was deployed earlier
func Load(region *storage.Region, catalogue *logic.Catalogue, sink Sink) (*FrontDoor, error) {
	d := newFrontDoor(region, catalogue, sink)

	view, err := region.View()
	if nil != err {
		return nil, err
	}
	defer view.Release()

	address, ok := readImplementation(view, region)
	if !ok {
		return nil, fault.ErrNotInitialised
	}
	definition, err := catalogue.Lookup(address)
	if nil != err {
		return nil, err
	}

	installed, ok, err := region.InstalledLayout(view)
	if nil != err {
		return nil, err
	}
	layout, err := definition.Layout()
	if nil != err {
		return nil, err
	}
	if !ok || len(installed.Fields) != len(layout.Fields) {
		return nil, fault.With(fault.ErrIncompatibleLayout, "%s: does not match installed layout", definition.Name)
	}
	if err := layout.Extends(installed); nil != err {
		return nil, err
	}

	l, err := definition.Instantiate(region)
	if nil != err {
		return nil, err
	}
	d.active = l
	d.log.Infof("loaded: %s  address: %s", l.Name(), l.Address())
	return d, nil
}

func newFrontDoor(region *storage.Region, catalogue *logic.Catalogue, sink Sink) *FrontDoor {
	return &FrontDoor{
		log:       logger.New("upgrade"),
		region:    region,
		catalogue: catalogue,
		sink:      sink,
	}
}

// check and persist the layout of the version at address, record it
// as the implementation and bind it to the region
func (d *FrontDoor) install(trx storage.Transaction, address logic.Address) (logic.Logic, error) {
	definition, err := d.catalogue.Lookup(address)
	if nil != err {
		return nil, err
	}
	layout, err := definition.Layout()
	if nil != err {
		return nil, err
	}
	if err := d.region.InstallLayout(trx, layout); nil != err {
		return nil, err
	}
	l, err := definition.Instantiate(d.region)
	if nil != err {
		return nil, err
	}
	writeImplementation(trx, d.region, address, definition.Version)
	return l, nil
}

// Execute - run one mutating operation against the active logic
//
// the operation runs in its own transaction: it is committed if the
// operation succeeds and discarded otherwise; events are published
// only after commit
func (d *FrontDoor) Execute(caller *account.Account, operation func(logic.Logic, *logic.Call) error) error {
	if nil == caller {
		return fault.ErrMissingCaller
	}

	trx, err := d.region.Begin()
	if nil != err {
		return err
	}
	defer trx.Abort()

	// active only changes while an upgrade holds the region, so it
	// cannot move between here and commit
	d.RLock()
	l := d.active
	d.RUnlock()

	call := logic.NewCall(trx, caller)
	if err := operation(l, call); nil != err {
		d.log.Debugf("execute: caller: %s  error: %s", caller, err)
		return err
	}
	if err := trx.Commit(); nil != err {
		d.log.Errorf("execute: commit error: %s", err)
		return err
	}

	d.publish(call.Events()...)
	return nil
}

// Query - run a read-only operation on a snapshot of committed state
func (d *FrontDoor) Query(operation func(logic.Logic, storage.Reader) error) error {
	d.RLock()
	l := d.active
	view, err := d.region.View()
	d.RUnlock()
	if nil != err {
		return err
	}
	defer view.Release()

	return operation(l, view)
}

// UpgradeAndCall - administrator replaces the active logic and runs a
// migration invocation, all in one transaction
func (d *FrontDoor) UpgradeAndCall(caller *account.Account, address logic.Address, invocation logic.Invocation) error {
	trx, err := d.region.Begin()
	if nil != err {
		return err
	}
	defer trx.Abort()

	if err := d.requireAdmin(trx, caller); nil != err {
		return err
	}

	l, err := d.install(trx, address)
	if nil != err {
		d.log.Warnf("upgrade: address: %s  error: %s", address, err)
		return err
	}

	call := logic.NewCall(trx, caller)
	if err := l.Invoke(call, invocation); nil != err {
		d.log.Warnf("upgrade: %s  invocation: %q  error: %s", l.Name(), invocation.Method, err)
		return err
	}

	// swap while the region is still held so no Execute can see the
	// committed state through the previous logic
	d.Lock()
	if err := trx.Commit(); nil != err {
		d.Unlock()
		d.log.Errorf("upgrade: commit error: %s", err)
		return err
	}
	previous := d.active
	d.active = l
	d.Unlock()

	d.log.Infof("upgraded: %s → %s  address: %s", previous.Name(), l.Name(), l.Address())

	d.publish(upgradedEvent(l, caller))
	d.publish(call.Events()...)
	return nil
}

// Admin - the administrator; administrator only
func (d *FrontDoor) Admin(caller *account.Account) (*account.Account, error) {
	var admin *account.Account
	err := d.controllerQuery(caller, func(reader storage.Reader) {
		admin = readAdmin(reader, d.region)
	})
	return admin, err
}

// Implementation - the active logic version; administrator only
func (d *FrontDoor) Implementation(caller *account.Account) (Implementation, error) {
	var implementation Implementation
	var lookupErr error
	err := d.controllerQuery(caller, func(reader storage.Reader) {
		address, _ := readImplementation(reader, d.region)
		definition, err := d.catalogue.Lookup(address)
		if nil != err {
			lookupErr = err
			return
		}
		implementation = Implementation{
			Address: address,
			Name:    definition.Name,
			Version: definition.Version,
		}
	})
	if nil != err {
		return Implementation{}, err
	}
	return implementation, lookupErr
}

// History - every installed version in order; administrator only
func (d *FrontDoor) History(caller *account.Account) ([]Record, error) {
	var history []Record
	err := d.controllerQuery(caller, func(reader storage.Reader) {
		history = readHistory(reader, d.region)
	})
	return history, err
}

// ChangeAdmin - hand the administrator role to newAdmin
func (d *FrontDoor) ChangeAdmin(caller *account.Account, newAdmin *account.Account) error {
	if nil == newAdmin {
		return fault.ErrInvalidRecipient
	}

	trx, err := d.region.Begin()
	if nil != err {
		return err
	}
	defer trx.Abort()

	if err := d.requireAdmin(trx, caller); nil != err {
		return err
	}
	writeAdmin(trx, d.region, newAdmin)
	if err := trx.Commit(); nil != err {
		return err
	}

	d.log.Infof("admin changed: %s → %s", caller, newAdmin)
	d.publish(logic.Event{
		Kind: logic.EventAdminChanged,
		Data: AdminChanged{
			Previous: caller,
			Admin:    newAdmin,
		},
	})
	return nil
}

func (d *FrontDoor) requireAdmin(reader storage.Reader, caller *account.Account) error {
	if nil == caller {
		return fault.ErrMissingCaller
	}
	if !caller.Equal(readAdmin(reader, d.region)) {
		return fault.With(fault.ErrNotAdministrator, "caller: %s", caller)
	}
	return nil
}

// run f on a snapshot once caller is confirmed as administrator
func (d *FrontDoor) controllerQuery(caller *account.Account, f func(storage.Reader)) error {
	view, err := d.region.View()
	if nil != err {
		return err
	}
	defer view.Release()

	if err := d.requireAdmin(view, caller); nil != err {
		return err
	}
	f(view)
	return nil
}

func upgradedEvent(l logic.Logic, admin *account.Account) logic.Event {
	return logic.Event{
		Kind: logic.EventUpgraded,
		Data: Upgraded{
			Implementation: Implementation{
				Address: l.Address(),
				Name:    l.Name(),
				Version: l.Version(),
			},
			Admin: admin,
		},
	}
}

func (d *FrontDoor) publish(events ...logic.Event) {
	if nil == d.sink {
		return
	}
	for _, e := range events {
		if !d.sink.Send("upgrade", e) {
			d.log.Warnf("event queue full, dropped: %s", e.Kind)
		}
	}
}
