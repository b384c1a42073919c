// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/propertyd/command/property-cli/rpccalls"
)

func runMint(c *cli.Context) error {

	to, err := requiredAccount("to", c.String("to"))
	if nil != err {
		return err
	}
	amount := c.Uint64("amount")
	if err := positive("amount", amount); nil != err {
		return err
	}

	return withClient(c, func(m *metadata, client *rpccalls.Client) (interface{}, error) {
		return client.Mint(&rpccalls.TokenData{
			Caller: m.caller,
			To:     to,
			ID:     c.Uint64("id"),
			Amount: amount,
		})
	})
}

func runBurn(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	from, err := accountOrCaller(m, "from", c.String("from"))
	if nil != err {
		return err
	}
	amount := c.Uint64("amount")
	if err := positive("amount", amount); nil != err {
		return err
	}

	return withClient(c, func(m *metadata, client *rpccalls.Client) (interface{}, error) {
		return client.Burn(&rpccalls.TokenData{
			Caller: m.caller,
			From:   from,
			ID:     c.Uint64("id"),
			Amount: amount,
		})
	})
}

func runTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	from, err := accountOrCaller(m, "from", c.String("from"))
	if nil != err {
		return err
	}
	to, err := requiredAccount("to", c.String("to"))
	if nil != err {
		return err
	}

	return withClient(c, func(m *metadata, client *rpccalls.Client) (interface{}, error) {
		return client.Transfer(&rpccalls.TokenData{
			Caller: m.caller,
			From:   from,
			To:     to,
			ID:     c.Uint64("id"),
			Amount: c.Uint64("amount"),
		})
	})
}

func runBatchTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	from, err := accountOrCaller(m, "from", c.String("from"))
	if nil != err {
		return err
	}
	to, err := requiredAccount("to", c.String("to"))
	if nil != err {
		return err
	}
	ids, err := parseList("ids", c.String("ids"))
	if nil != err {
		return err
	}
	amounts, err := parseList("amounts", c.String("amounts"))
	if nil != err {
		return err
	}

	return withClient(c, func(m *metadata, client *rpccalls.Client) (interface{}, error) {
		return client.BatchTransfer(&rpccalls.BatchData{
			Caller:  m.caller,
			From:    from,
			To:      to,
			IDs:     ids,
			Amounts: amounts,
		})
	})
}

func runApprove(c *cli.Context) error {

	operator, err := requiredAccount("operator", c.String("operator"))
	if nil != err {
		return err
	}
	approved := !c.Bool("revoke")

	return withClient(c, func(m *metadata, client *rpccalls.Client) (interface{}, error) {
		return client.SetApproval(m.caller, operator, approved)
	})
}

func runApproved(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := accountOrCaller(m, "owner", c.String("owner"))
	if nil != err {
		return err
	}
	operator, err := requiredAccount("operator", c.String("operator"))
	if nil != err {
		return err
	}

	return withClient(c, func(_ *metadata, client *rpccalls.Client) (interface{}, error) {
		return client.IsApproved(owner, operator)
	})
}

func runBalance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := accountOrCaller(m, "owner", c.String("owner"))
	if nil != err {
		return err
	}

	return withClient(c, func(_ *metadata, client *rpccalls.Client) (interface{}, error) {
		return client.GetBalance(owner, c.Uint64("id"))
	})
}

func runSupply(c *cli.Context) error {
	return withClient(c, func(_ *metadata, client *rpccalls.Client) (interface{}, error) {
		return client.GetSupply(c.Uint64("id"))
	})
}

func runURI(c *cli.Context) error {
	return withClient(c, func(_ *metadata, client *rpccalls.Client) (interface{}, error) {
		return client.GetURI(c.Uint64("id"))
	})
}
