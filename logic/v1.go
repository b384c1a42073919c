// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package logic

import (
	"github.com/bitmark-inc/propertyd/access"
	"github.com/bitmark-inc/propertyd/account"
	"github.com/bitmark-inc/propertyd/fault"
	"github.com/bitmark-inc/propertyd/ledger"
	"github.com/bitmark-inc/propertyd/registry"
	"github.com/bitmark-inc/propertyd/storage"
)

// names of the shipped versions
const (
	VersionOneName = "property-logic-v1"
	VersionTwoName = "property-logic-v2"
)

// invocation methods
const (
	MethodInitialise   = "initialise"
	MethodInitialiseV2 = "initialise_v2"
)

var singleKey = []byte{}

// InitialiseArguments - arguments of the "initialise" invocation
type InitialiseArguments struct {
	BaseURI string           `json:"base_uri"`
	Ledger  string           `json:"ledger"`
	Owner   *account.Account `json:"owner"`
}

type versionOne struct {
	pools    *PoolsV1
	layout   storage.Layout
	ledger   *ledger.Ledger
	registry *registry.Registry
	access   *access.Access
}

// VersionOne - the first logic version
func VersionOne() Definition {
	return Definition{
		Name:    VersionOneName,
		Version: 1,
		newPools: func() interface{} {
			return &PoolsV1{}
		},
		build: func(pools interface{}, layout storage.Layout) Logic {
			return newVersionOne(pools.(*PoolsV1), layout)
		},
	}
}

func newVersionOne(pools *PoolsV1, layout storage.Layout) *versionOne {
	l := ledger.New(pools.Balances, pools.Supply, pools.Operators)
	return &versionOne{
		pools:  pools,
		layout: layout,
		ledger: l,
		registry: registry.New(registry.Pools{
			TotalShares:     pools.TotalShares,
			AvailableShares: pools.AvailableShares,
			PropertyOwner:   pools.PropertyOwner,
			Shareholders:    pools.Shareholders,
			OwnedCount:      pools.OwnedCount,
			OwnedList:       pools.OwnedList,
			Investments:     pools.Investments,
		}, l),
		access: access.New(pools.Owner, pools.Minters),
	}
}

func (v *versionOne) Name() string           { return VersionOneName }
func (v *versionOne) Version() uint64        { return 1 }
func (v *versionOne) Address() Address       { return AddressOf(VersionOneName) }
func (v *versionOne) Layout() storage.Layout { return v.layout }

// Invoke - run an initialisation or migration method
//
// an empty method does nothing
func (v *versionOne) Invoke(call *Call, invocation Invocation) error {
	switch invocation.Method {
	case "":
		return nil
	case MethodInitialise:
		args := InitialiseArguments{}
		if err := invocation.decode(&args); nil != err {
			return fault.With(fault.ErrMissingParameters, "%s: %s", invocation.Method, err)
		}
		return v.initialise(call, args, 1)
	default:
		return fault.With(fault.ErrUnknownInvocation, "method: %q  version: %d", invocation.Method, v.Version())
	}
}

// initialise a fresh region, marking it with version
func (v *versionOne) initialise(call *Call, args InitialiseArguments, version uint64) error {
	if initialised := v.initialised(call.Trx); 0 != initialised {
		return fault.With(fault.ErrAlreadyInitialised, "version: %d", initialised)
	}
	owner := args.Owner
	if nil == owner {
		owner = call.Caller
	}
	if err := v.access.Initialise(call.Trx, owner); nil != err {
		return err
	}
	call.Trx.Put(v.pools.BaseURI, singleKey, []byte(args.BaseURI))
	call.Trx.Put(v.pools.LedgerAddress, singleKey, []byte(args.Ledger))
	call.Trx.PutN(v.pools.Initialised, singleKey, version)

	call.Emit(EventInitialised, Initialised{Version: version})
	return nil
}

func (v *versionOne) initialised(reader storage.Reader) uint64 {
	n, _ := reader.GetN(v.pools.Initialised, singleKey)
	return n
}

func (v *versionOne) requireInitialised(reader storage.Reader) error {
	if 0 == v.initialised(reader) {
		return fault.ErrNotInitialised
	}
	return nil
}

// Status - initialisation state and settings
func (v *versionOne) Status(reader storage.Reader) Status {
	return Status{
		Initialised:   v.initialised(reader),
		BaseURI:       string(reader.Get(v.pools.BaseURI, singleKey)),
		LedgerAddress: string(reader.Get(v.pools.LedgerAddress, singleKey)),
	}
}

// Mint - owner or minter creates units
func (v *versionOne) Mint(call *Call, to *account.Account, id uint64, amount uint64) error {
	if err := v.requireInitialised(call.Trx); nil != err {
		return err
	}
	if err := v.access.RequireMinter(call.Trx, call.Caller); nil != err {
		return err
	}
	if err := v.ledger.Mint(call.Trx, to, id, amount); nil != err {
		return err
	}
	call.Emit(EventTransferSingle, TransferSingle{
		Operator: call.Caller,
		To:       to,
		ID:       id,
		Amount:   amount,
	})
	return nil
}

// Burn - holder or approved operator destroys units
func (v *versionOne) Burn(call *Call, from *account.Account, id uint64, amount uint64) error {
	if err := v.requireInitialised(call.Trx); nil != err {
		return err
	}
	if err := v.ledger.Burn(call.Trx, call.Caller, from, id, amount); nil != err {
		return err
	}
	call.Emit(EventTransferSingle, TransferSingle{
		Operator: call.Caller,
		From:     from,
		ID:       id,
		Amount:   amount,
	})
	return nil
}

// Transfer - holder or approved operator moves units
func (v *versionOne) Transfer(call *Call, from *account.Account, to *account.Account, id uint64, amount uint64) error {
	if err := v.requireInitialised(call.Trx); nil != err {
		return err
	}
	if err := v.ledger.Transfer(call.Trx, call.Caller, from, to, id, amount); nil != err {
		return err
	}
	call.Emit(EventTransferSingle, TransferSingle{
		Operator: call.Caller,
		From:     from,
		To:       to,
		ID:       id,
		Amount:   amount,
	})
	return nil
}

// BatchTransfer - all-or-nothing multi-id transfer
func (v *versionOne) BatchTransfer(call *Call, from *account.Account, to *account.Account, ids []uint64, amounts []uint64) error {
	if err := v.requireInitialised(call.Trx); nil != err {
		return err
	}
	if err := v.ledger.BatchTransfer(call.Trx, call.Caller, from, to, ids, amounts); nil != err {
		return err
	}
	call.Emit(EventTransferBatch, TransferBatch{
		Operator: call.Caller,
		From:     from,
		To:       to,
		IDs:      ids,
		Amounts:  amounts,
	})
	return nil
}

// SetApprovalForAll - caller grants or revokes an operator
func (v *versionOne) SetApprovalForAll(call *Call, operator *account.Account, approved bool) error {
	if err := v.requireInitialised(call.Trx); nil != err {
		return err
	}
	if err := v.ledger.SetApprovalForAll(call.Trx, call.Caller, operator, approved); nil != err {
		return err
	}
	call.Emit(EventApprovalForAll, ApprovalForAll{
		Owner:    call.Caller,
		Operator: operator,
		Approved: approved,
	})
	return nil
}

func (v *versionOne) IsApprovedForAll(reader storage.Reader, owner *account.Account, operator *account.Account) bool {
	return v.ledger.IsApprovedForAll(reader, owner, operator)
}

func (v *versionOne) BalanceOf(reader storage.Reader, owner *account.Account, id uint64) uint64 {
	return v.ledger.BalanceOf(reader, owner, id)
}

func (v *versionOne) BalanceOfBatch(reader storage.Reader, owners []*account.Account, ids []uint64) ([]uint64, error) {
	return v.ledger.BalanceOfBatch(reader, owners, ids)
}

func (v *versionOne) TotalSupply(reader storage.Reader, id uint64) uint64 {
	return v.ledger.TotalSupply(reader, id)
}

// URI - metadata address of id from the stored template
func (v *versionOne) URI(reader storage.Reader, id uint64) string {
	return ledger.URI(string(reader.Get(v.pools.BaseURI, singleKey)), id)
}

// CreateProperty - owner or authorised minter only; caller becomes the
// property owner
//
// a duplicate id fails as already existing whoever the caller is
func (v *versionOne) CreateProperty(call *Call, id uint64, totalShares uint64) error {
	if err := v.requireInitialised(call.Trx); nil != err {
		return err
	}
	if existing := v.registry.TotalShares(call.Trx, id); 0 != existing {
		return fault.With(fault.ErrPropertyAlreadyExists, "id: %d  total shares: %d", id, existing)
	}
	if err := v.access.RequireMinter(call.Trx, call.Caller); nil != err {
		return err
	}
	if supply := v.ledger.TotalSupply(call.Trx, id); 0 != supply {
		return fault.With(fault.ErrSupplyAlreadyExists, "id: %d  total supply: %d", id, supply)
	}
	if err := v.registry.CreateProperty(call.Trx, id, totalShares, call.Caller); nil != err {
		return err
	}
	call.Emit(EventPropertyCreated, PropertyCreated{
		ID:          id,
		TotalShares: totalShares,
		Owner:       call.Caller,
	})
	call.Emit(EventTransferSingle, TransferSingle{
		Operator: call.Caller,
		To:       call.Caller,
		ID:       id,
		Amount:   totalShares,
	})
	return nil
}

// PurchaseShares - allocation only, no ledger movement or payment
func (v *versionOne) PurchaseShares(call *Call, id uint64, amount uint64) error {
	if err := v.requireInitialised(call.Trx); nil != err {
		return err
	}
	if err := v.registry.PurchaseShares(call.Trx, id, amount, call.Caller); nil != err {
		return err
	}
	call.Emit(EventSharesPurchased, SharesAllocated{
		ID:     id,
		Holder: call.Caller,
		Amount: amount,
	})
	return nil
}

// SellShares - reverse of PurchaseShares
func (v *versionOne) SellShares(call *Call, id uint64, amount uint64) error {
	if err := v.requireInitialised(call.Trx); nil != err {
		return err
	}
	if err := v.registry.SellShares(call.Trx, id, amount, call.Caller); nil != err {
		return err
	}
	call.Emit(EventSharesSold, SharesAllocated{
		ID:     id,
		Holder: call.Caller,
		Amount: amount,
	})
	return nil
}

func (v *versionOne) Property(reader storage.Reader, id uint64) registry.Property {
	return v.registry.Property(reader, id)
}

func (v *versionOne) ShareholderShares(reader storage.Reader, id uint64, holder *account.Account) uint64 {
	return v.registry.ShareholderShares(reader, id, holder)
}

func (v *versionOne) UserProperties(reader storage.Reader, owner *account.Account) []uint64 {
	return v.registry.UserProperties(reader, owner)
}

func (v *versionOne) UserInvestment(reader storage.Reader, holder *account.Account, id uint64) uint64 {
	return v.registry.UserInvestment(reader, holder, id)
}

func (v *versionOne) Owner(reader storage.Reader) *account.Account {
	return v.access.Owner(reader)
}

// TransferOwnership - owner hands over the owner role
func (v *versionOne) TransferOwnership(call *Call, newOwner *account.Account) error {
	if err := v.requireInitialised(call.Trx); nil != err {
		return err
	}
	if err := v.access.TransferOwnership(call.Trx, call.Caller, newOwner); nil != err {
		return err
	}
	call.Emit(EventOwnershipTransferred, RoleChanged{
		Caller:  call.Caller,
		Account: newOwner,
	})
	return nil
}

// AuthoriseMinter - owner only
func (v *versionOne) AuthoriseMinter(call *Call, minter *account.Account) error {
	if err := v.requireInitialised(call.Trx); nil != err {
		return err
	}
	if err := v.access.AuthoriseMinter(call.Trx, call.Caller, minter); nil != err {
		return err
	}
	call.Emit(EventMinterAuthorised, RoleChanged{
		Caller:  call.Caller,
		Account: minter,
	})
	return nil
}

// RevokeMinter - owner only
func (v *versionOne) RevokeMinter(call *Call, minter *account.Account) error {
	if err := v.requireInitialised(call.Trx); nil != err {
		return err
	}
	if err := v.access.RevokeMinter(call.Trx, call.Caller, minter); nil != err {
		return err
	}
	call.Emit(EventMinterRevoked, RoleChanged{
		Caller:  call.Caller,
		Account: minter,
	})
	return nil
}

func (v *versionOne) IsMinter(reader storage.Reader, minter *account.Account) bool {
	return v.access.IsMinter(reader, minter)
}
