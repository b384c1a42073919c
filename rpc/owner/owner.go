// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package owner

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

// Owner
// -----

const (
	rateLimitOwner = 100
	rateBurstOwner = 50
)

// Owner - type for RPC
type Owner struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Handle  upgrade.Handle
}

// New - create owner RPC handler
func New(log *logger.L, handle upgrade.Handle) *Owner {
	return &Owner{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitOwner, rateBurstOwner),
		Handle:  handle,
	}
}

// WriteReply - events of a committed change
type WriteReply struct {
	Events []logic.Event `json:"events"`
}

// GetArguments - empty arguments for RPC
type GetArguments struct{}

// GetReply - the current owner
type GetReply struct {
	Owner *account.Account `json:"owner"`
}

// Get - the contract owner, nil before initialisation
func (owner *Owner) Get(arguments *GetArguments, reply *GetReply) error {
	if err := ratelimit.Limit(owner.Limiter); nil != err {
		return err
	}

	return owner.Handle.Query(func(l logic.Logic, reader storage.Reader) error {
		reply.Owner = l.Owner(reader)
		return nil
	})
}

// AccountArguments - arguments for RPC calls naming one account
type AccountArguments struct {
	Caller  *account.Account `json:"caller"`
	Account *account.Account `json:"account"`
}

// Transfer - owner hands ownership to Account
func (owner *Owner) Transfer(arguments *AccountArguments, reply *WriteReply) error {
	return owner.execute("Transfer", arguments, reply, func(l logic.Logic, call *logic.Call) error {
		return l.TransferOwnership(call, arguments.Account)
	})
}

// AuthoriseMinter - owner adds Account to the minter set
func (owner *Owner) AuthoriseMinter(arguments *AccountArguments, reply *WriteReply) error {
	return owner.execute("AuthoriseMinter", arguments, reply, func(l logic.Logic, call *logic.Call) error {
		return l.AuthoriseMinter(call, arguments.Account)
	})
}

// RevokeMinter - owner removes Account from the minter set
func (owner *Owner) RevokeMinter(arguments *AccountArguments, reply *WriteReply) error {
	return owner.execute("RevokeMinter", arguments, reply, func(l logic.Logic, call *logic.Call) error {
		return l.RevokeMinter(call, arguments.Account)
	})
}

func (owner *Owner) execute(name string, arguments *AccountArguments, reply *WriteReply, operation func(logic.Logic, *logic.Call) error) error {
	if err := ratelimit.Limit(owner.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Account {
		return fault.ErrMissingParameters
	}

	owner.Log.Infof("Owner.%s: %+v", name, arguments)

	events, err := upgrade.Apply(owner.Handle, arguments.Caller, operation)
	if nil != err {
		return err
	}
	reply.Events = events
	return nil
}

// IsMinterArguments - arguments for RPC
type IsMinterArguments struct {
	Account *account.Account `json:"account"`
}

// IsMinterReply - minter membership
type IsMinterReply struct {
	Minter bool `json:"minter"`
}

// IsMinter - check minter membership
func (owner *Owner) IsMinter(arguments *IsMinterArguments, reply *IsMinterReply) error {
	if err := ratelimit.Limit(owner.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Account {
		return fault.ErrMissingParameters
	}

	return owner.Handle.Query(func(l logic.Logic, reader storage.Reader) error {
		reply.Minter = l.IsMinter(reader, arguments.Account)
		return nil
	})
}
