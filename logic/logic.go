// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package logic

import (
	"github.com/bitmark-inc/propertyd/account"
	"github.com/bitmark-inc/propertyd/fault"
	"github.com/bitmark-inc/propertyd/registry"
	"github.com/bitmark-inc/propertyd/storage"
)

// Logic - the operations every version provides
//
// mutations take a *Call; reads take any storage.Reader, so they work
// inside a transaction or on a snapshot
type Logic interface {
	Name() string
	Version() uint64
	Address() Address
	Layout() storage.Layout

	// initialisation and migration
	Invoke(call *Call, invocation Invocation) error
	Status(reader storage.Reader) Status

	// ledger
	Mint(call *Call, to *account.Account, id uint64, amount uint64) error
	Burn(call *Call, from *account.Account, id uint64, amount uint64) error
	Transfer(call *Call, from *account.Account, to *account.Account, id uint64, amount uint64) error
	BatchTransfer(call *Call, from *account.Account, to *account.Account, ids []uint64, amounts []uint64) error
	SetApprovalForAll(call *Call, operator *account.Account, approved bool) error
	IsApprovedForAll(reader storage.Reader, owner *account.Account, operator *account.Account) bool
	BalanceOf(reader storage.Reader, owner *account.Account, id uint64) uint64
	BalanceOfBatch(reader storage.Reader, owners []*account.Account, ids []uint64) ([]uint64, error)
	TotalSupply(reader storage.Reader, id uint64) uint64
	URI(reader storage.Reader, id uint64) string

	// registry
	CreateProperty(call *Call, id uint64, totalShares uint64) error
	PurchaseShares(call *Call, id uint64, amount uint64) error
	SellShares(call *Call, id uint64, amount uint64) error
	Property(reader storage.Reader, id uint64) registry.Property
	ShareholderShares(reader storage.Reader, id uint64, holder *account.Account) uint64
	UserProperties(reader storage.Reader, owner *account.Account) []uint64
	UserInvestment(reader storage.Reader, holder *account.Account, id uint64) uint64

	// access
	Owner(reader storage.Reader) *account.Account
	TransferOwnership(call *Call, newOwner *account.Account) error
	AuthoriseMinter(call *Call, minter *account.Account) error
	RevokeMinter(call *Call, minter *account.Account) error
	IsMinter(reader storage.Reader, minter *account.Account) bool
}

// Pricing - share prices, from version two
//
// prices are informative: nothing here collects payment
type Pricing interface {
	SetSharePrice(call *Call, id uint64, price uint64) error
	SharePrice(reader storage.Reader, id uint64) uint64
	Quote(reader storage.Reader, id uint64, amount uint64) (uint64, error)
}

// Status - the initialisation state of the region as seen by a version
type Status struct {
	Initialised   uint64 `json:"initialised,string"`
	BaseURI       string `json:"baseURI"`
	LedgerAddress string `json:"ledgerAddress"`
}

// PricingOf - the pricing operations of l, if its version has them
func PricingOf(l Logic) (Pricing, error) {
	p, ok := l.(Pricing)
	if !ok {
		return nil, fault.With(fault.ErrNotSupported, "%s: share pricing", l.Name())
	}
	return p, nil
}
