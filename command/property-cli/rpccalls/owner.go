// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/propertyd/account"
	"github.com/bitmark-inc/propertyd/rpc/owner"
)

// GetOwner - the current contract owner
func (c *Client) GetOwner() (*owner.GetReply, error) {
	var reply owner.GetReply
	if err := c.call("Owner.Get", &owner.GetArguments{}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// TransferOwnership - hand the owner role to acc
func (c *Client) TransferOwnership(caller *account.Account, acc *account.Account) (*owner.WriteReply, error) {
	return c.ownerWrite("Owner.Transfer", caller, acc)
}

// AuthoriseMinter - add acc to the minter set
func (c *Client) AuthoriseMinter(caller *account.Account, acc *account.Account) (*owner.WriteReply, error) {
	return c.ownerWrite("Owner.AuthoriseMinter", caller, acc)
}

// RevokeMinter - remove acc from the minter set
func (c *Client) RevokeMinter(caller *account.Account, acc *account.Account) (*owner.WriteReply, error) {
	return c.ownerWrite("Owner.RevokeMinter", caller, acc)
}

func (c *Client) ownerWrite(method string, caller *account.Account, acc *account.Account) (*owner.WriteReply, error) {
	arguments := owner.AccountArguments{
		Caller:  caller,
		Account: acc,
	}
	var reply owner.WriteReply
	if err := c.call(method, &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// IsMinter - check minter membership
func (c *Client) IsMinter(acc *account.Account) (*owner.IsMinterReply, error) {
	var reply owner.IsMinterReply
	if err := c.call("Owner.IsMinter", &owner.IsMinterArguments{Account: acc}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
