// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/propertyd/account"
	"github.com/bitmark-inc/propertyd/fault"
	"github.com/bitmark-inc/propertyd/rpc/token"
)

// TokenData - parameters for the single id token writes
type TokenData struct {
	Caller *account.Account
	From   *account.Account
	To     *account.Account
	ID     uint64
	Amount uint64
}

// Mint - create units of an id for To
func (c *Client) Mint(data *TokenData) (*token.WriteReply, error) {
	arguments := token.MintArguments{
		Caller: data.Caller,
		To:     data.To,
		ID:     data.ID,
		Amount: data.Amount,
	}
	var reply token.WriteReply
	if err := c.call("Token.Mint", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Burn - destroy units of an id held by From
func (c *Client) Burn(data *TokenData) (*token.WriteReply, error) {
	arguments := token.BurnArguments{
		Caller: data.Caller,
		From:   data.From,
		ID:     data.ID,
		Amount: data.Amount,
	}
	var reply token.WriteReply
	if err := c.call("Token.Burn", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Transfer - move units of an id from From to To
func (c *Client) Transfer(data *TokenData) (*token.WriteReply, error) {
	arguments := token.TransferArguments{
		Caller: data.Caller,
		From:   data.From,
		To:     data.To,
		ID:     data.ID,
		Amount: data.Amount,
	}
	var reply token.WriteReply
	if err := c.call("Token.Transfer", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// BatchData - parameters for a batch transfer
type BatchData struct {
	Caller  *account.Account
	From    *account.Account
	To      *account.Account
	IDs     []uint64
	Amounts []uint64
}

// BatchTransfer - move units of several ids in one operation
func (c *Client) BatchTransfer(data *BatchData) (*token.WriteReply, error) {
	if len(data.IDs) != len(data.Amounts) {
		return nil, fault.With(fault.ErrLengthMismatch, "ids: %d  amounts: %d", len(data.IDs), len(data.Amounts))
	}
	arguments := token.BatchTransferArguments{
		Caller:  data.Caller,
		From:    data.From,
		To:      data.To,
		IDs:     data.IDs,
		Amounts: data.Amounts,
	}
	var reply token.WriteReply
	if err := c.call("Token.BatchTransfer", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// SetApproval - grant or revoke an operator for the caller
func (c *Client) SetApproval(caller *account.Account, operator *account.Account, approved bool) (*token.WriteReply, error) {
	arguments := token.SetApprovalArguments{
		Caller:   caller,
		Operator: operator,
		Approved: approved,
	}
	var reply token.WriteReply
	if err := c.call("Token.SetApprovalForAll", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// IsApproved - check whether operator may act for owner
func (c *Client) IsApproved(owner *account.Account, operator *account.Account) (*token.IsApprovedReply, error) {
	arguments := token.IsApprovedArguments{
		Owner:    owner,
		Operator: operator,
	}
	var reply token.IsApprovedReply
	if err := c.call("Token.IsApprovedForAll", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetBalance - units of one id held by owner
func (c *Client) GetBalance(owner *account.Account, id uint64) (*token.BalanceReply, error) {
	arguments := token.BalanceArguments{
		Owner: owner,
		ID:    id,
	}
	var reply token.BalanceReply
	if err := c.call("Token.Balance", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetSupply - total units of an id
func (c *Client) GetSupply(id uint64) (*token.SupplyReply, error) {
	var reply token.SupplyReply
	if err := c.call("Token.Supply", &token.IDArguments{ID: id}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetURI - metadata URI of an id
func (c *Client) GetURI(id uint64) (*token.URIReply, error) {
	var reply token.URIReply
	if err := c.call("Token.URI", &token.IDArguments{ID: id}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
