// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/propertyd/command/property-cli/rpccalls"
	"github.com/bitmark-inc/propertyd/logic"
)

// the logic address from either a version name or hex
func logicAddress(name string, hexAddress string) (logic.Address, error) {
	var address logic.Address
	switch {
	case "" != name && "" != hexAddress:
		return address, fmt.Errorf("only one of logic or address may be given")
	case "" != name:
		return logic.AddressOf(name), nil
	case "" != hexAddress:
		err := address.UnmarshalText([]byte(hexAddress))
		return address, err
	default:
		return address, fmt.Errorf("logic or address is required")
	}
}

func runUpgrade(c *cli.Context) error {

	address, err := logicAddress(c.String("logic"), c.String("address"))
	if nil != err {
		return err
	}

	method := c.String("method")
	if "" == method {
		return fmt.Errorf("method is required")
	}

	var arguments json.RawMessage
	if s := c.String("arguments"); "" != s {
		if !json.Valid([]byte(s)) {
			return fmt.Errorf("arguments: invalid JSON: %q", s)
		}
		arguments = json.RawMessage(s)
	}

	return withClient(c, func(m *metadata, client *rpccalls.Client) (interface{}, error) {
		return client.Upgrade(&rpccalls.UpgradeData{
			Caller:    m.caller,
			Address:   address,
			Method:    method,
			Arguments: arguments,
		})
	})
}

func runAdmin(c *cli.Context) error {
	return withClient(c, func(m *metadata, client *rpccalls.Client) (interface{}, error) {
		return client.GetAdmin(m.caller)
	})
}

func runImplementation(c *cli.Context) error {
	return withClient(c, func(m *metadata, client *rpccalls.Client) (interface{}, error) {
		return client.GetImplementation(m.caller)
	})
}

func runHistory(c *cli.Context) error {
	return withClient(c, func(m *metadata, client *rpccalls.Client) (interface{}, error) {
		return client.GetHistory(m.caller)
	})
}

func runChangeAdmin(c *cli.Context) error {

	newAdmin, err := requiredAccount("account", c.String("account"))
	if nil != err {
		return err
	}

	return withClient(c, func(m *metadata, client *rpccalls.Client) (interface{}, error) {
		return client.ChangeAdmin(m.caller, newAdmin)
	})
}
