// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/propertyd/account"
)

type generateReply struct {
	Account    *account.Account `json:"account"`
	PublicKey  string           `json:"publicKey"`
	PrivateKey string           `json:"privateKey"`
	Testnet    bool             `json:"testnet"`
}

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	testnet := c.Bool("testnet")

	acc, privateKey, err := account.Generate(testnet)
	if nil != err {
		return err
	}

	return printJson(m.w, generateReply{
		Account:    acc,
		PublicKey:  hex.EncodeToString(acc.PublicKey),
		PrivateKey: hex.EncodeToString(privateKey),
		Testnet:    testnet,
	})
}
