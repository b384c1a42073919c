// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/propertyd/command/property-cli/rpccalls"
)

func runCreate(c *cli.Context) error {

	shares := c.Uint64("shares")
	if err := positive("shares", shares); nil != err {
		return err
	}

	return withClient(c, func(m *metadata, client *rpccalls.Client) (interface{}, error) {
		return client.CreateProperty(m.caller, c.Uint64("id"), shares)
	})
}

func runPurchase(c *cli.Context) error {

	amount := c.Uint64("amount")
	if err := positive("amount", amount); nil != err {
		return err
	}

	return withClient(c, func(m *metadata, client *rpccalls.Client) (interface{}, error) {
		return client.PurchaseShares(m.caller, c.Uint64("id"), amount)
	})
}

func runSell(c *cli.Context) error {

	amount := c.Uint64("amount")
	if err := positive("amount", amount); nil != err {
		return err
	}

	return withClient(c, func(m *metadata, client *rpccalls.Client) (interface{}, error) {
		return client.SellShares(m.caller, c.Uint64("id"), amount)
	})
}

func runProperty(c *cli.Context) error {
	return withClient(c, func(_ *metadata, client *rpccalls.Client) (interface{}, error) {
		return client.GetProperty(c.Uint64("id"))
	})
}

type sharesReply struct {
	Shareholder uint64 `json:"shareholder,string"`
	Investment  uint64 `json:"investment,string"`
}

func runShares(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	holder, err := accountOrCaller(m, "owner", c.String("owner"))
	if nil != err {
		return err
	}
	id := c.Uint64("id")

	return withClient(c, func(_ *metadata, client *rpccalls.Client) (interface{}, error) {
		allocated, err := client.GetShareholder(holder, id)
		if nil != err {
			return nil, err
		}
		invested, err := client.GetInvestment(holder, id)
		if nil != err {
			return nil, err
		}
		return sharesReply{
			Shareholder: allocated.Shares,
			Investment:  invested.Shares,
		}, nil
	})
}

func runOwned(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := accountOrCaller(m, "owner", c.String("owner"))
	if nil != err {
		return err
	}

	return withClient(c, func(_ *metadata, client *rpccalls.Client) (interface{}, error) {
		return client.GetOwned(owner)
	})
}

func runSetPrice(c *cli.Context) error {
	return withClient(c, func(m *metadata, client *rpccalls.Client) (interface{}, error) {
		return client.SetPrice(m.caller, c.Uint64("id"), c.Uint64("price"))
	})
}

func runQuote(c *cli.Context) error {
	return withClient(c, func(_ *metadata, client *rpccalls.Client) (interface{}, error) {
		return client.GetQuote(c.Uint64("id"), c.Uint64("amount"))
	})
}
