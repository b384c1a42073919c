// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/propertyd/account"
	"github.com/bitmark-inc/propertyd/command/property-cli/rpccalls"
	"github.com/bitmark-inc/propertyd/rpc/owner"
)

func runOwner(c *cli.Context) error {
	return withClient(c, func(_ *metadata, client *rpccalls.Client) (interface{}, error) {
		return client.GetOwner()
	})
}

func runTransferOwnership(c *cli.Context) error {
	return ownerCommand(c, (*rpccalls.Client).TransferOwnership)
}

func runAuthoriseMinter(c *cli.Context) error {
	return ownerCommand(c, (*rpccalls.Client).AuthoriseMinter)
}

func runRevokeMinter(c *cli.Context) error {
	return ownerCommand(c, (*rpccalls.Client).RevokeMinter)
}

type ownerRequest func(*rpccalls.Client, *account.Account, *account.Account) (*owner.WriteReply, error)

func ownerCommand(c *cli.Context, request ownerRequest) error {

	acc, err := requiredAccount("account", c.String("account"))
	if nil != err {
		return err
	}

	return withClient(c, func(m *metadata, client *rpccalls.Client) (interface{}, error) {
		return request(client, m.caller, acc)
	})
}

func runIsMinter(c *cli.Context) error {

	acc, err := requiredAccount("account", c.String("account"))
	if nil != err {
		return err
	}

	return withClient(c, func(_ *metadata, client *rpccalls.Client) (interface{}, error) {
		return client.IsMinter(acc)
	})
}
