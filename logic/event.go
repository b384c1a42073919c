// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package logic

import (
	"github.com/bitmark-inc/propertyd/account"
)

// Event - a notification of a committed change
type Event struct {
	Kind string      `json:"kind"`
	Data interface{} `json:"data"`
}

// event kinds
const (
	EventAdminChanged         = "adminChanged"
	EventApprovalForAll       = "approvalForAll"
	EventInitialised          = "initialised"
	EventMinterAuthorised     = "minterAuthorised"
	EventMinterRevoked        = "minterRevoked"
	EventOwnershipTransferred = "ownershipTransferred"
	EventPropertyCreated      = "propertyCreated"
	EventSharePriceSet        = "sharePriceSet"
	EventSharesPurchased      = "sharesPurchased"
	EventSharesSold           = "sharesSold"
	EventTransferBatch        = "transferBatch"
	EventTransferSingle       = "transferSingle"
	EventUpgraded             = "upgraded"
)

// TransferSingle - units moved, minted (From nil) or burned (To nil)
type TransferSingle struct {
	Operator *account.Account `json:"operator"`
	From     *account.Account `json:"from"`
	To       *account.Account `json:"to"`
	ID       uint64           `json:"id,string"`
	Amount   uint64           `json:"amount,string"`
}

// TransferBatch - several ids moved together
type TransferBatch struct {
	Operator *account.Account `json:"operator"`
	From     *account.Account `json:"from"`
	To       *account.Account `json:"to"`
	IDs      []uint64         `json:"ids"`
	Amounts  []uint64         `json:"amounts"`
}

// ApprovalForAll - operator approval changed
type ApprovalForAll struct {
	Owner    *account.Account `json:"owner"`
	Operator *account.Account `json:"operator"`
	Approved bool             `json:"approved"`
}

// PropertyCreated - a new property record
type PropertyCreated struct {
	ID          uint64           `json:"id,string"`
	TotalShares uint64           `json:"totalShares,string"`
	Owner       *account.Account `json:"owner"`
}

// SharesAllocated - purchase or sale of shares
type SharesAllocated struct {
	ID     uint64           `json:"id,string"`
	Holder *account.Account `json:"holder"`
	Amount uint64           `json:"amount,string"`
}

// RoleChanged - owner or minter set change
type RoleChanged struct {
	Caller  *account.Account `json:"caller"`
	Account *account.Account `json:"account"`
}

// Initialised - a logic version completed its initialisation
type Initialised struct {
	Version uint64 `json:"version,string"`
}

// SharePriceSet - version two price change
type SharePriceSet struct {
	ID    uint64 `json:"id,string"`
	Price uint64 `json:"price,string"`
}
