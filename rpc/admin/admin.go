// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package admin

import (
	"encoding/json"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/propertyd/account"
	"github.com/bitmark-inc/propertyd/fault"
	"github.com/bitmark-inc/propertyd/logic"
	"github.com/bitmark-inc/propertyd/rpc/ratelimit"
	"github.com/bitmark-inc/propertyd/upgrade"
)

// Admin
// -----

const (
	rateLimitAdmin = 10
	rateBurstAdmin = 5
)

// Admin - type for RPC
type Admin struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Handle  upgrade.Handle
}

// New - create admin RPC handler
func New(log *logger.L, handle upgrade.Handle) *Admin {
	return &Admin{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitAdmin, rateBurstAdmin),
		Handle:  handle,
	}
}

// CallerArguments - arguments for administrator queries
type CallerArguments struct {
	Caller *account.Account `json:"caller"`
}

// Upgrade
// -------

// UpgradeArguments - arguments for RPC
type UpgradeArguments struct {
	Caller    *account.Account `json:"caller"`
	Address   logic.Address    `json:"address"`
	Method    string           `json:"method"`
	Arguments json.RawMessage  `json:"arguments,omitempty"`
}

// ImplementationReply - the active logic version
type ImplementationReply struct {
	Implementation upgrade.Implementation `json:"implementation"`
}

// Upgrade - install the logic at Address and run Method as its
// migration
func (admin *Admin) Upgrade(arguments *UpgradeArguments, reply *ImplementationReply) error {
	if err := ratelimit.Limit(admin.Limiter); nil != err {
		return err
	}

	if nil == arguments || "" == arguments.Method {
		return fault.ErrMissingParameters
	}

	admin.Log.Infof("Admin.Upgrade: address: %s  method: %q", arguments.Address, arguments.Method)

	invocation := logic.Invocation{
		Method:    arguments.Method,
		Arguments: arguments.Arguments,
	}
	err := admin.Handle.UpgradeAndCall(arguments.Caller, arguments.Address, invocation)
	if nil != err {
		admin.Log.Warnf("Admin.Upgrade: error: %s", err)
		return err
	}

	implementation, err := admin.Handle.Implementation(arguments.Caller)
	if nil != err {
		return err
	}
	reply.Implementation = implementation
	return nil
}

// Introspection
// -------------

// GetReply - the administrator
type GetReply struct {
	Admin *account.Account `json:"admin"`
}

// Get - the administrator account
func (admin *Admin) Get(arguments *CallerArguments, reply *GetReply) error {
	if err := ratelimit.Limit(admin.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	a, err := admin.Handle.Admin(arguments.Caller)
	if nil != err {
		return err
	}
	reply.Admin = a
	return nil
}

// Implementation - the active logic version
func (admin *Admin) Implementation(arguments *CallerArguments, reply *ImplementationReply) error {
	if err := ratelimit.Limit(admin.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	implementation, err := admin.Handle.Implementation(arguments.Caller)
	if nil != err {
		return err
	}
	reply.Implementation = implementation
	return nil
}

// HistoryReply - installed versions, oldest first
type HistoryReply struct {
	History []upgrade.Record `json:"history"`
}

// History - every version installed so far
func (admin *Admin) History(arguments *CallerArguments, reply *HistoryReply) error {
	if err := ratelimit.Limit(admin.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	history, err := admin.Handle.History(arguments.Caller)
	if nil != err {
		return err
	}
	reply.History = history
	return nil
}

// ChangeAdminArguments - arguments for RPC
type ChangeAdminArguments struct {
	Caller *account.Account `json:"caller"`
	Admin  *account.Account `json:"admin"`
}

// ChangeAdminReply - result of RPC
type ChangeAdminReply struct {
	Admin *account.Account `json:"admin"`
}

// ChangeAdmin - hand the administrator role to another account
func (admin *Admin) ChangeAdmin(arguments *ChangeAdminArguments, reply *ChangeAdminReply) error {
	if err := ratelimit.Limit(admin.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Admin {
		return fault.ErrMissingParameters
	}

	admin.Log.Infof("Admin.ChangeAdmin: %+v", arguments)

	err := admin.Handle.ChangeAdmin(arguments.Caller, arguments.Admin)
	if nil != err {
		return err
	}
	reply.Admin = arguments.Admin
	return nil
}
