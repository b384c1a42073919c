// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/propertyd/account"
	"github.com/bitmark-inc/propertyd/rpc/property"
)

// CreateProperty - register a new property owned by caller
func (c *Client) CreateProperty(caller *account.Account, id uint64, totalShares uint64) (*property.WriteReply, error) {
	arguments := property.CreateArguments{
		Caller:      caller,
		ID:          id,
		TotalShares: totalShares,
	}
	var reply property.WriteReply
	if err := c.call("Property.Create", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// PurchaseShares - caller takes shares from the available pool
func (c *Client) PurchaseShares(caller *account.Account, id uint64, amount uint64) (*property.WriteReply, error) {
	return c.shares("Property.Purchase", caller, id, amount)
}

// SellShares - caller returns shares to the available pool
func (c *Client) SellShares(caller *account.Account, id uint64, amount uint64) (*property.WriteReply, error) {
	return c.shares("Property.Sell", caller, id, amount)
}

func (c *Client) shares(method string, caller *account.Account, id uint64, amount uint64) (*property.WriteReply, error) {
	arguments := property.SharesArguments{
		Caller: caller,
		ID:     id,
		Amount: amount,
	}
	var reply property.WriteReply
	if err := c.call(method, &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetProperty - registry record of a property
func (c *Client) GetProperty(id uint64) (*property.GetReply, error) {
	var reply property.GetReply
	if err := c.call("Property.Get", &property.IDArguments{ID: id}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetShareholder - shares of a property allocated to holder
func (c *Client) GetShareholder(holder *account.Account, id uint64) (*property.SharesReply, error) {
	return c.holder("Property.Shareholder", holder, id)
}

// GetInvestment - shares of a property bought by holder
func (c *Client) GetInvestment(holder *account.Account, id uint64) (*property.SharesReply, error) {
	return c.holder("Property.Investment", holder, id)
}

func (c *Client) holder(method string, holder *account.Account, id uint64) (*property.SharesReply, error) {
	arguments := property.HolderArguments{
		Holder: holder,
		ID:     id,
	}
	var reply property.SharesReply
	if err := c.call(method, &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetOwned - properties created by owner
func (c *Client) GetOwned(owner *account.Account) (*property.OwnedReply, error) {
	var reply property.OwnedReply
	if err := c.call("Property.Owned", &property.OwnedArguments{Owner: owner}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// SetPrice - property owner sets the price of one share
func (c *Client) SetPrice(caller *account.Account, id uint64, price uint64) (*property.WriteReply, error) {
	arguments := property.SetPriceArguments{
		Caller: caller,
		ID:     id,
		Price:  price,
	}
	var reply property.WriteReply
	if err := c.call("Property.SetPrice", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetQuote - cost of amount shares at the current price
func (c *Client) GetQuote(id uint64, amount uint64) (*property.QuoteReply, error) {
	arguments := property.QuoteArguments{
		ID:     id,
		Amount: amount,
	}
	var reply property.QuoteReply
	if err := c.call("Property.Quote", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
