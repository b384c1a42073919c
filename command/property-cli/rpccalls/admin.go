// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"encoding/json"

	"github.com/bitmark-inc/propertyd/account"
	"github.com/bitmark-inc/propertyd/logic"
	"github.com/bitmark-inc/propertyd/rpc/admin"
)

// UpgradeData - parameters for an upgrade
type UpgradeData struct {
	Caller    *account.Account
	Address   logic.Address
	Method    string
	Arguments json.RawMessage
}

// Upgrade - switch to a new logic version and run its migration
func (c *Client) Upgrade(data *UpgradeData) (*admin.ImplementationReply, error) {
	arguments := admin.UpgradeArguments{
		Caller:    data.Caller,
		Address:   data.Address,
		Method:    data.Method,
		Arguments: data.Arguments,
	}
	var reply admin.ImplementationReply
	if err := c.call("Admin.Upgrade", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetAdmin - the current administrator
func (c *Client) GetAdmin(caller *account.Account) (*admin.GetReply, error) {
	var reply admin.GetReply
	if err := c.call("Admin.Get", &admin.CallerArguments{Caller: caller}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetImplementation - the active logic version
func (c *Client) GetImplementation(caller *account.Account) (*admin.ImplementationReply, error) {
	var reply admin.ImplementationReply
	if err := c.call("Admin.Implementation", &admin.CallerArguments{Caller: caller}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetHistory - every upgrade applied so far
func (c *Client) GetHistory(caller *account.Account) (*admin.HistoryReply, error) {
	var reply admin.HistoryReply
	if err := c.call("Admin.History", &admin.CallerArguments{Caller: caller}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// ChangeAdmin - hand the administrator role to newAdmin
func (c *Client) ChangeAdmin(caller *account.Account, newAdmin *account.Account) (*admin.ChangeAdminReply, error) {
	arguments := admin.ChangeAdminArguments{
		Caller: caller,
		Admin:  newAdmin,
	}
	var reply admin.ChangeAdminReply
	if err := c.call("Admin.ChangeAdmin", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
