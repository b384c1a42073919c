// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package logic

import (
	"github.com/bitmark-inc/propertyd/fault"
	"github.com/bitmark-inc/propertyd/storage"
	"github.com/bitmark-inc/propertyd/util"
)

// InitialiseV2Arguments - arguments of the "initialise_v2" invocation
//
// an empty base URI keeps the current template
type InitialiseV2Arguments struct {
	BaseURI string `json:"base_uri"`
}

// version one plus share prices
type versionTwo struct {
	*versionOne
	pools  *PoolsV2
	layout storage.Layout
}

// VersionTwo - the second logic version
func VersionTwo() Definition {
	return Definition{
		Name:    VersionTwoName,
		Version: 2,
		newPools: func() interface{} {
			return &PoolsV2{}
		},
		build: func(pools interface{}, layout storage.Layout) Logic {
			p := pools.(*PoolsV2)
			return &versionTwo{
				versionOne: newVersionOne(&p.PoolsV1, layout),
				pools:      p,
				layout:     layout,
			}
		},
	}
}

func (v *versionTwo) Name() string           { return VersionTwoName }
func (v *versionTwo) Version() uint64        { return 2 }
func (v *versionTwo) Address() Address       { return AddressOf(VersionTwoName) }
func (v *versionTwo) Layout() storage.Layout { return v.layout }

// Invoke - "initialise" for a fresh region, or "initialise_v2" to
// migrate a region initialised by version one
func (v *versionTwo) Invoke(call *Call, invocation Invocation) error {
	switch invocation.Method {
	case MethodInitialise:
		args := InitialiseArguments{}
		if err := invocation.decode(&args); nil != err {
			return fault.With(fault.ErrMissingParameters, "%s: %s", invocation.Method, err)
		}
		return v.initialise(call, args, 2)

	case MethodInitialiseV2:
		args := InitialiseV2Arguments{}
		if err := invocation.decode(&args); nil != err {
			return fault.With(fault.ErrMissingParameters, "%s: %s", invocation.Method, err)
		}
		initialised := v.initialised(call.Trx)
		if 0 == initialised {
			return fault.ErrNotInitialised
		}
		if 1 != initialised {
			return fault.With(fault.ErrAlreadyInitialised, "version: %d", initialised)
		}
		if "" != args.BaseURI {
			call.Trx.Put(v.pools.BaseURI, singleKey, []byte(args.BaseURI))
		}
		call.Trx.PutN(v.pools.Initialised, singleKey, 2)
		call.Emit(EventInitialised, Initialised{Version: 2})
		return nil

	default:
		return v.versionOne.Invoke(call, invocation)
	}
}

// SetSharePrice - property owner sets the price of one share
func (v *versionTwo) SetSharePrice(call *Call, id uint64, price uint64) error {
	if err := v.requireInitialised(call.Trx); nil != err {
		return err
	}
	owner := v.registry.PropertyOwner(call.Trx, id)
	if nil == owner {
		return fault.With(fault.ErrPropertyNotFound, "id: %d", id)
	}
	if !owner.Equal(call.Caller) {
		return fault.With(fault.ErrNotPropertyOwner, "id: %d  caller: %s", id, call.Caller)
	}

	call.Trx.PutN(v.pools.SharePrices, util.Uint64ToBytes(id), price)
	call.Emit(EventSharePriceSet, SharePriceSet{
		ID:    id,
		Price: price,
	})
	return nil
}

// SharePrice - zero if never set
func (v *versionTwo) SharePrice(reader storage.Reader, id uint64) uint64 {
	price, _ := reader.GetN(v.pools.SharePrices, util.Uint64ToBytes(id))
	return price
}

// Quote - cost of amount shares at the current price
func (v *versionTwo) Quote(reader storage.Reader, id uint64, amount uint64) (uint64, error) {
	if 0 == v.registry.TotalShares(reader, id) {
		return 0, fault.With(fault.ErrPropertyNotFound, "id: %d", id)
	}
	price := v.SharePrice(reader, id)
	if 0 != amount && price > ^uint64(0)/amount {
		return 0, fault.With(fault.ErrQuantityOverflow, "id: %d  price: %d  amount: %d", id, price, amount)
	}
	return price * amount, nil
}
