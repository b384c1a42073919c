// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/propertyd/account"
	"github.com/bitmark-inc/propertyd/command/property-cli/rpccalls"
	"github.com/bitmark-inc/propertyd/fault"
)

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}

// empty string is a nil account
func optionalAccount(s string) (*account.Account, error) {
	if "" == s {
		return nil, nil
	}
	return account.FromBase58(s)
}

func requiredAccount(name string, s string) (*account.Account, error) {
	if "" == s {
		return nil, fmt.Errorf("%s is required", name)
	}
	acc, err := account.FromBase58(s)
	if nil != err {
		return nil, fmt.Errorf("%s: %q  error: %s", name, s, err)
	}
	return acc, nil
}

// an account flag that falls back to the declared caller
func accountOrCaller(m *metadata, name string, s string) (*account.Account, error) {
	if "" == s {
		if nil == m.caller {
			return nil, fmt.Errorf("%s or caller is required", name)
		}
		return m.caller, nil
	}
	return requiredAccount(name, s)
}

// comma separated list of decimal integers
func parseList(name string, s string) ([]uint64, error) {
	s = strings.TrimSpace(s)
	if "" == s {
		return nil, fmt.Errorf("%s is required", name)
	}
	items := strings.Split(s, ",")
	values := make([]uint64, 0, len(items))
	for _, item := range items {
		n, err := strconv.ParseUint(strings.TrimSpace(item), 10, 64)
		if nil != err {
			return nil, fault.With(fault.ErrInvalidCount, "%s: %q", name, item)
		}
		values = append(values, n)
	}
	return values, nil
}

func positive(name string, n uint64) error {
	if 0 == n {
		return fmt.Errorf("%s must be greater than zero", name)
	}
	return nil
}

// connect and run one request, printing its reply as JSON
func withClient(c *cli.Context, request func(m *metadata, client *rpccalls.Client) (interface{}, error)) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := request(m, client)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
