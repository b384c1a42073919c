// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package logic

import (
	"github.com/bitmark-inc/propertyd/storage"
)

// PoolsV1 - storage layout of version one
//
// field order is the layout: never reorder, retype or remove
type PoolsV1 struct {
	Initialised     *storage.PoolHandle `prefix:"a" kind:"uint64" name:"initialised"`
	BaseURI         *storage.PoolHandle `prefix:"b" kind:"bytes" name:"base_uri"`
	LedgerAddress   *storage.PoolHandle `prefix:"c" kind:"bytes" name:"ledger_address"`
	Owner           *storage.PoolHandle `prefix:"d" kind:"account" name:"owner"`
	Minters         *storage.PoolHandle `prefix:"e" kind:"flag" name:"minters"`
	Balances        *storage.PoolHandle `prefix:"f" kind:"uint64" name:"balances"`
	Supply          *storage.PoolHandle `prefix:"g" kind:"uint64" name:"supply"`
	Operators       *storage.PoolHandle `prefix:"h" kind:"flag" name:"operators"`
	TotalShares     *storage.PoolHandle `prefix:"i" kind:"uint64" name:"total_shares"`
	AvailableShares *storage.PoolHandle `prefix:"j" kind:"uint64" name:"available_shares"`
	PropertyOwner   *storage.PoolHandle `prefix:"k" kind:"account" name:"property_owner"`
	Shareholders    *storage.PoolHandle `prefix:"l" kind:"uint64" name:"shareholders"`
	OwnedCount      *storage.PoolHandle `prefix:"m" kind:"uint64" name:"owned_count"`
	OwnedList       *storage.PoolHandle `prefix:"n" kind:"uint64" name:"owned_list"`
	Investments     *storage.PoolHandle `prefix:"o" kind:"uint64" name:"investments"`
}

// PoolsV2 - storage layout of version two
type PoolsV2 struct {
	PoolsV1
	SharePrices *storage.PoolHandle `prefix:"p" kind:"uint64" name:"share_prices"`
}
