// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/propertyd/account"
	"github.com/bitmark-inc/propertyd/fault"
	"github.com/bitmark-inc/propertyd/storage"
	"github.com/bitmark-inc/propertyd/util"
)

// Minter - creates ledger units for a new property
type Minter interface {
	Mint(trx storage.Transaction, owner *account.Account, id uint64, amount uint64) error
}

// Pools - the storage used by the registry
type Pools struct {
	TotalShares     *storage.PoolHandle // id                  → count
	AvailableShares *storage.PoolHandle // id                  → count
	PropertyOwner   *storage.PoolHandle // id                  → account
	Shareholders    *storage.PoolHandle // id ++ holder        → count
	OwnedCount      *storage.PoolHandle // owner               → count
	OwnedList       *storage.PoolHandle // owner ++ count      → id
	Investments     *storage.PoolHandle // holder ++ id        → count
}

// Registry - property records and their indices
type Registry struct {
	pools  Pools
	minter Minter
}

// Property - projection of a property record
type Property struct {
	ID              uint64           `json:"id,string"`
	TotalShares     uint64           `json:"totalShares,string"`
	AvailableShares uint64           `json:"availableShares,string"`
	Owner           *account.Account `json:"owner"`
}

// New - registry over the given pools minting through minter
func New(pools Pools, minter Minter) *Registry {
	return &Registry{
		pools:  pools,
		minter: minter,
	}
}

// CreateProperty - record a new property and mint all of its shares
// to the creator
func (r *Registry) CreateProperty(trx storage.Transaction, id uint64, totalShares uint64, creator *account.Account) error {
	idBytes := util.Uint64ToBytes(id)

	if existing, _ := trx.GetN(r.pools.TotalShares, idBytes); 0 != existing {
		return fault.With(fault.ErrPropertyAlreadyExists, "id: %d  total shares: %d", id, existing)
	}
	if nil == creator {
		return fault.ErrMissingCaller
	}
	if 0 == totalShares {
		return fault.With(fault.ErrZeroShares, "id: %d", id)
	}

	trx.PutN(r.pools.TotalShares, idBytes, totalShares)
	trx.PutN(r.pools.AvailableShares, idBytes, totalShares)
	trx.Put(r.pools.PropertyOwner, idBytes, creator.Bytes())

	if err := r.minter.Mint(trx, creator, id, totalShares); nil != err {
		return err
	}

	// append to the creator's owned list
	creatorBytes := creator.Bytes()
	count, _ := trx.GetN(r.pools.OwnedCount, creatorBytes)
	trx.PutN(r.pools.OwnedList, util.Concat(creatorBytes, util.Uint64ToBytes(count)), id)
	trx.PutN(r.pools.OwnedCount, creatorBytes, count+1)

	return nil
}

// PurchaseShares - allocate shares from the available pool to buyer
func (r *Registry) PurchaseShares(trx storage.Transaction, id uint64, amount uint64, buyer *account.Account) error {
	if nil == buyer {
		return fault.ErrMissingCaller
	}
	idBytes := util.Uint64ToBytes(id)

	if total, _ := trx.GetN(r.pools.TotalShares, idBytes); 0 == total {
		return fault.With(fault.ErrPropertyNotFound, "id: %d", id)
	}

	available, _ := trx.GetN(r.pools.AvailableShares, idBytes)
	if amount > available {
		return fault.With(fault.ErrInsufficientShares, "id: %d  available: %d  amount: %d", id, available, amount)
	}

	holderKey := util.Concat(idBytes, buyer.Bytes())
	investmentKey := util.Concat(buyer.Bytes(), idBytes)

	// allocations never exceed total shares so neither sum can overflow
	allocated, _ := trx.GetN(r.pools.Shareholders, holderKey)
	invested, _ := trx.GetN(r.pools.Investments, investmentKey)

	trx.PutN(r.pools.AvailableShares, idBytes, available-amount)
	trx.PutN(r.pools.Shareholders, holderKey, allocated+amount)
	trx.PutN(r.pools.Investments, investmentKey, invested+amount)
	return nil
}

// SellShares - return shares from seller's allocation to the available
// pool
func (r *Registry) SellShares(trx storage.Transaction, id uint64, amount uint64, seller *account.Account) error {
	if nil == seller {
		return fault.ErrMissingCaller
	}
	idBytes := util.Uint64ToBytes(id)

	if total, _ := trx.GetN(r.pools.TotalShares, idBytes); 0 == total {
		return fault.With(fault.ErrPropertyNotFound, "id: %d", id)
	}

	holderKey := util.Concat(idBytes, seller.Bytes())
	investmentKey := util.Concat(seller.Bytes(), idBytes)

	allocated, _ := trx.GetN(r.pools.Shareholders, holderKey)
	if allocated < amount {
		return fault.With(fault.ErrInsufficientShares, "id: %d  holder: %s  allocated: %d  amount: %d", id, seller, allocated, amount)
	}

	available, _ := trx.GetN(r.pools.AvailableShares, idBytes)
	// kept in lockstep with the allocation
	invested, _ := trx.GetN(r.pools.Investments, investmentKey)

	trx.PutN(r.pools.AvailableShares, idBytes, available+amount)
	putOrDelete(trx, r.pools.Shareholders, holderKey, allocated-amount)
	putOrDelete(trx, r.pools.Investments, investmentKey, invested-amount)
	return nil
}

// TotalShares - zero for an unknown id
func (r *Registry) TotalShares(reader storage.Reader, id uint64) uint64 {
	n, _ := reader.GetN(r.pools.TotalShares, util.Uint64ToBytes(id))
	return n
}

// AvailableShares - zero for an unknown id
func (r *Registry) AvailableShares(reader storage.Reader, id uint64) uint64 {
	n, _ := reader.GetN(r.pools.AvailableShares, util.Uint64ToBytes(id))
	return n
}

// PropertyOwner - nil for an unknown id
func (r *Registry) PropertyOwner(reader storage.Reader, id uint64) *account.Account {
	return readAccount(reader, r.pools.PropertyOwner, util.Uint64ToBytes(id))
}

// Property - all scalar fields of a record, zero valued if unknown
func (r *Registry) Property(reader storage.Reader, id uint64) Property {
	return Property{
		ID:              id,
		TotalShares:     r.TotalShares(reader, id),
		AvailableShares: r.AvailableShares(reader, id),
		Owner:           r.PropertyOwner(reader, id),
	}
}

// ShareholderShares - holder's allocation of id
func (r *Registry) ShareholderShares(reader storage.Reader, id uint64, holder *account.Account) uint64 {
	if nil == holder {
		return 0
	}
	n, _ := reader.GetN(r.pools.Shareholders, util.Concat(util.Uint64ToBytes(id), holder.Bytes()))
	return n
}

// UserProperties - ids created by owner in creation order
func (r *Registry) UserProperties(reader storage.Reader, owner *account.Account) []uint64 {
	ids := []uint64{}
	if nil == owner {
		return ids
	}
	ownerBytes := owner.Bytes()
	count, _ := reader.GetN(r.pools.OwnedCount, ownerBytes)
	for i := uint64(0); i < count; i += 1 {
		id, ok := reader.GetN(r.pools.OwnedList, util.Concat(ownerBytes, util.Uint64ToBytes(i)))
		if ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// UserInvestment - shares of id purchased by holder and not sold
func (r *Registry) UserInvestment(reader storage.Reader, holder *account.Account, id uint64) uint64 {
	if nil == holder {
		return 0
	}
	n, _ := reader.GetN(r.pools.Investments, util.Concat(holder.Bytes(), util.Uint64ToBytes(id)))
	return n
}

func putOrDelete(trx storage.Transaction, pool *storage.PoolHandle, key []byte, n uint64) {
	if 0 == n {
		trx.Delete(pool, key)
	} else {
		trx.PutN(pool, key, n)
	}
}

func readAccount(reader storage.Reader, pool *storage.PoolHandle, key []byte) *account.Account {
	buffer := reader.Get(pool, key)
	if nil == buffer {
		return nil
	}
	acc, err := account.FromBytes(buffer)
	if nil != err {
		logger.Panicf("registry: corrupt account record: %x  error: %s", buffer, err)
	}
	return acc
}
