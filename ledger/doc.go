// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - multi-asset balances
//
// Each asset id is a separate fungible pool of units.  For every id
// the sum of all owner balances equals the recorded supply, which is
// the total minted less the total burned.
//
// Operations take a storage transaction and leave any cleanup on error
// to the caller: a failed operation may have staged partial writes, so
// the transaction must be aborted, never committed.
package ledger
