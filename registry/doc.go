// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - property share accounting
//
// A property is created once with a fixed number of shares; its id is
// also a ledger asset id and creation mints every share to the creator
// as ledger units.
//
// Purchase and sale only move shares between the property's available
// pool and a holder's allocation.  Allocations are the subscription
// book of the primary offering: they never move ledger units, never
// take payment and are never reconciled with ledger balances, which
// stay freely transferable.  So for any property:
//
//   total shares == available shares + sum of allocations
//
// while ledger balances of the same id are governed only by the
// ledger.
package registry
