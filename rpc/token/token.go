// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/propertyd/account"
	"github.com/bitmark-inc/propertyd/fault"
	"github.com/bitmark-inc/propertyd/logic"
	"github.com/bitmark-inc/propertyd/rpc/ratelimit"
	"github.com/bitmark-inc/propertyd/storage"
	"github.com/bitmark-inc/propertyd/upgrade"
)

// Token
// -----

const (
	rateLimitToken = 200
	rateBurstToken = 100

	// MaximumBatchCount - limit on ids in one batch request
	MaximumBatchCount = 100
)

// Token - type for RPC
type Token struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Handle  upgrade.Handle
}

// New - create token RPC handler
func New(log *logger.L, handle upgrade.Handle) *Token {
	return &Token{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitToken, rateBurstToken),
		Handle:  handle,
	}
}

// WriteReply - events of a committed change
type WriteReply struct {
	Events []logic.Event `json:"events"`
}

// Mint
// ----

// MintArguments - arguments for RPC
type MintArguments struct {
	Caller *account.Account `json:"caller"`
	To     *account.Account `json:"to"`
	ID     uint64           `json:"id,string"`
	Amount uint64           `json:"amount,string"`
}

// Mint - authorised minter creates units of an id
func (token *Token) Mint(arguments *MintArguments, reply *WriteReply) error {
	if err := ratelimit.Limit(token.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.To {
		return fault.ErrMissingParameters
	}

	token.Log.Infof("Token.Mint: %+v", arguments)

	events, err := upgrade.Apply(token.Handle, arguments.Caller, func(l logic.Logic, call *logic.Call) error {
		return l.Mint(call, arguments.To, arguments.ID, arguments.Amount)
	})
	if nil != err {
		return err
	}
	reply.Events = events
	return nil
}

// Burn
// ----

// BurnArguments - arguments for RPC
type BurnArguments struct {
	Caller *account.Account `json:"caller"`
	From   *account.Account `json:"from"`
	ID     uint64           `json:"id,string"`
	Amount uint64           `json:"amount,string"`
}

// Burn - holder or operator destroys units
func (token *Token) Burn(arguments *BurnArguments, reply *WriteReply) error {
	if err := ratelimit.Limit(token.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.From {
		return fault.ErrMissingParameters
	}

	token.Log.Infof("Token.Burn: %+v", arguments)

	events, err := upgrade.Apply(token.Handle, arguments.Caller, func(l logic.Logic, call *logic.Call) error {
		return l.Burn(call, arguments.From, arguments.ID, arguments.Amount)
	})
	if nil != err {
		return err
	}
	reply.Events = events
	return nil
}

// Transfer
// --------

// TransferArguments - arguments for RPC
type TransferArguments struct {
	Caller *account.Account `json:"caller"`
	From   *account.Account `json:"from"`
	To     *account.Account `json:"to"`
	ID     uint64           `json:"id,string"`
	Amount uint64           `json:"amount,string"`
}

// Transfer - move units of one id
func (token *Token) Transfer(arguments *TransferArguments, reply *WriteReply) error {
	if err := ratelimit.Limit(token.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.From || nil == arguments.To {
		return fault.ErrMissingParameters
	}

	token.Log.Infof("Token.Transfer: %+v", arguments)

	events, err := upgrade.Apply(token.Handle, arguments.Caller, func(l logic.Logic, call *logic.Call) error {
		return l.Transfer(call, arguments.From, arguments.To, arguments.ID, arguments.Amount)
	})
	if nil != err {
		return err
	}
	reply.Events = events
	return nil
}

// BatchTransferArguments - arguments for RPC
type BatchTransferArguments struct {
	Caller  *account.Account `json:"caller"`
	From    *account.Account `json:"from"`
	To      *account.Account `json:"to"`
	IDs     []uint64         `json:"ids"`
	Amounts []uint64         `json:"amounts"`
}

// BatchTransfer - move units of several ids in one operation
func (token *Token) BatchTransfer(arguments *BatchTransferArguments, reply *WriteReply) error {
	if nil == arguments {
		return fault.ErrMissingParameters
	}

	if err := ratelimit.LimitN(token.Limiter, len(arguments.IDs), MaximumBatchCount); nil != err {
		return err
	}

	if nil == arguments.From || nil == arguments.To {
		return fault.ErrMissingParameters
	}

	token.Log.Infof("Token.BatchTransfer: %+v", arguments)

	events, err := upgrade.Apply(token.Handle, arguments.Caller, func(l logic.Logic, call *logic.Call) error {
		return l.BatchTransfer(call, arguments.From, arguments.To, arguments.IDs, arguments.Amounts)
	})
	if nil != err {
		return err
	}
	reply.Events = events
	return nil
}

// Operator approval
// -----------------

// SetApprovalArguments - arguments for RPC
type SetApprovalArguments struct {
	Caller   *account.Account `json:"caller"`
	Operator *account.Account `json:"operator"`
	Approved bool             `json:"approved"`
}

// SetApprovalForAll - caller grants or revokes an operator
func (token *Token) SetApprovalForAll(arguments *SetApprovalArguments, reply *WriteReply) error {
	if err := ratelimit.Limit(token.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Operator {
		return fault.ErrMissingParameters
	}

	token.Log.Infof("Token.SetApprovalForAll: %+v", arguments)

	events, err := upgrade.Apply(token.Handle, arguments.Caller, func(l logic.Logic, call *logic.Call) error {
		return l.SetApprovalForAll(call, arguments.Operator, arguments.Approved)
	})
	if nil != err {
		return err
	}
	reply.Events = events
	return nil
}

// IsApprovedArguments - arguments for RPC
type IsApprovedArguments struct {
	Owner    *account.Account `json:"owner"`
	Operator *account.Account `json:"operator"`
}

// IsApprovedReply - result of approval query
type IsApprovedReply struct {
	Approved bool `json:"approved"`
}

// IsApprovedForAll - check operator approval
func (token *Token) IsApprovedForAll(arguments *IsApprovedArguments, reply *IsApprovedReply) error {
	if err := ratelimit.Limit(token.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Owner || nil == arguments.Operator {
		return fault.ErrMissingParameters
	}

	return token.Handle.Query(func(l logic.Logic, reader storage.Reader) error {
		reply.Approved = l.IsApprovedForAll(reader, arguments.Owner, arguments.Operator)
		return nil
	})
}

// Balances
// --------

// BalanceArguments - arguments for RPC
type BalanceArguments struct {
	Owner *account.Account `json:"owner"`
	ID    uint64           `json:"id,string"`
}

// BalanceReply - a single balance
type BalanceReply struct {
	Balance uint64 `json:"balance,string"`
}

// Balance - units of one id held by an account
func (token *Token) Balance(arguments *BalanceArguments, reply *BalanceReply) error {
	if err := ratelimit.Limit(token.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Owner {
		return fault.ErrMissingParameters
	}

	return token.Handle.Query(func(l logic.Logic, reader storage.Reader) error {
		reply.Balance = l.BalanceOf(reader, arguments.Owner, arguments.ID)
		return nil
	})
}

// BalanceBatchArguments - arguments for RPC
type BalanceBatchArguments struct {
	Owners []*account.Account `json:"owners"`
	IDs    []uint64           `json:"ids"`
}

// BalanceBatchReply - balances in request order
type BalanceBatchReply struct {
	Balances []uint64 `json:"balances"`
}

// BalanceBatch - pairwise balances of owners and ids
func (token *Token) BalanceBatch(arguments *BalanceBatchArguments, reply *BalanceBatchReply) error {
	if nil == arguments {
		return fault.ErrMissingParameters
	}

	if err := ratelimit.LimitN(token.Limiter, len(arguments.IDs), MaximumBatchCount); nil != err {
		return err
	}

	for _, owner := range arguments.Owners {
		if nil == owner {
			return fault.ErrMissingParameters
		}
	}

	return token.Handle.Query(func(l logic.Logic, reader storage.Reader) error {
		balances, err := l.BalanceOfBatch(reader, arguments.Owners, arguments.IDs)
		if nil != err {
			return err
		}
		reply.Balances = balances
		return nil
	})
}

// IDArguments - arguments for RPC calls on a single id
type IDArguments struct {
	ID uint64 `json:"id,string"`
}

// SupplyReply - total supply of an id
type SupplyReply struct {
	Supply uint64 `json:"supply,string"`
}

// Supply - total units in existence for an id
func (token *Token) Supply(arguments *IDArguments, reply *SupplyReply) error {
	if err := ratelimit.Limit(token.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	return token.Handle.Query(func(l logic.Logic, reader storage.Reader) error {
		reply.Supply = l.TotalSupply(reader, arguments.ID)
		return nil
	})
}

// URIReply - metadata URI of an id
type URIReply struct {
	URI string `json:"uri"`
}

// URI - metadata URI template for an id
func (token *Token) URI(arguments *IDArguments, reply *URIReply) error {
	if err := ratelimit.Limit(token.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	return token.Handle.Query(func(l logic.Logic, reader storage.Reader) error {
		reply.URI = l.URI(reader, arguments.ID)
		return nil
	})
}
