// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/propertyd/command/property-cli/rpccalls"
)

func runInfo(c *cli.Context) error {
	return withClient(c, func(_ *metadata, client *rpccalls.Client) (interface{}, error) {
		return client.GetNodeInfo()
	})
}
