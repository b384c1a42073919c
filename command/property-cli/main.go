// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/propertyd/account"
)

type metadata struct {
	connect string
	caller  *account.Account
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)
	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "property-cli"
	app.Usage = "client for the propertyd token and property registry"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "connect, c",
			Value: "127.0.0.1:2130",
			Usage: " propertyd client RPC `HOST:PORT`",
		},
		cli.StringFlag{
			Name:  "caller, a",
			Value: "",
			Usage: " declared calling `ACCOUNT`",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate an account and its private key",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "testnet, t",
					Usage: " create a test network account",
				},
			},
			Action: runGenerate,
		},
		{
			Name:   "info",
			Usage:  "display propertyd status",
			Action: runInfo,
		},

		// token ledger
		{
			Name:      "mint",
			Usage:     "create units of a token id (authorised minter)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				toFlag,
				idFlag,
				amountFlag,
			},
			Action: runMint,
		},
		{
			Name:      "burn",
			Usage:     "destroy units of a token id",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				fromFlag,
				idFlag,
				amountFlag,
			},
			Action: runBurn,
		},
		{
			Name:      "transfer",
			Usage:     "transfer units of a token id to another account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				fromFlag,
				toFlag,
				idFlag,
				amountFlag,
			},
			Action: runTransfer,
		},
		{
			Name:      "batch-transfer",
			Usage:     "transfer units of several token ids in one operation",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				fromFlag,
				toFlag,
				cli.StringFlag{
					Name:  "ids, i",
					Value: "",
					Usage: "*comma separated token `IDS`",
				},
				cli.StringFlag{
					Name:  "amounts, n",
					Value: "",
					Usage: "*comma separated `AMOUNTS` matching ids",
				},
			},
			Action: runBatchTransfer,
		},
		{
			Name:      "approve",
			Usage:     "grant or revoke an operator for the caller",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				operatorFlag,
				cli.BoolFlag{
					Name:  "revoke, r",
					Usage: " revoke instead of grant",
				},
			},
			Action: runApprove,
		},
		{
			Name:      "approved",
			Usage:     "check whether an operator may act for an owner",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				ownerFlag,
				operatorFlag,
			},
			Action: runApproved,
		},
		{
			Name:      "balance",
			Usage:     "units of a token id held by an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				ownerFlag,
				idFlag,
			},
			Action: runBalance,
		},
		{
			Name:      "supply",
			Usage:     "total units of a token id",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				idFlag,
			},
			Action: runSupply,
		},
		{
			Name:      "uri",
			Usage:     "metadata URI of a token id",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				idFlag,
			},
			Action: runURI,
		},

		// property registry
		{
			Name:      "create",
			Usage:     "register a property owned by the caller (owner or minter)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				idFlag,
				cli.Uint64Flag{
					Name:  "shares, s",
					Value: 0,
					Usage: "*total shares `COUNT`",
				},
			},
			Action: runCreate,
		},
		{
			Name:      "purchase",
			Usage:     "buy shares of a property",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				idFlag,
				amountFlag,
			},
			Action: runPurchase,
		},
		{
			Name:      "sell",
			Usage:     "return shares of a property",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				idFlag,
				amountFlag,
			},
			Action: runSell,
		},
		{
			Name:      "property",
			Usage:     "show a property record, zero valued if absent",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				idFlag,
			},
			Action: runProperty,
		},
		{
			Name:      "shares",
			Usage:     "shares of a property allocated to and bought by a holder",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				ownerFlag,
				idFlag,
			},
			Action: runShares,
		},
		{
			Name:      "owned",
			Usage:     "properties created by an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				ownerFlag,
			},
			Action: runOwned,
		},
		{
			Name:      "set-price",
			Usage:     "set the price of one share (property owner)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				idFlag,
				cli.Uint64Flag{
					Name:  "price, p",
					Value: 0,
					Usage: "*share `PRICE`",
				},
			},
			Action: runSetPrice,
		},
		{
			Name:      "quote",
			Usage:     "cost of a number of shares",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				idFlag,
				amountFlag,
			},
			Action: runQuote,
		},

		// ownership and minters
		{
			Name:   "owner",
			Usage:  "show the contract owner",
			Action: runOwner,
		},
		{
			Name:      "transfer-ownership",
			Usage:     "hand the owner role to another account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				accountFlag,
			},
			Action: runTransferOwnership,
		},
		{
			Name:      "authorise-minter",
			Usage:     "add an account to the minters",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				accountFlag,
			},
			Action: runAuthoriseMinter,
		},
		{
			Name:      "revoke-minter",
			Usage:     "remove an account from the minters",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				accountFlag,
			},
			Action: runRevokeMinter,
		},
		{
			Name:      "minter",
			Usage:     "check minter membership",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				accountFlag,
			},
			Action: runIsMinter,
		},

		// administration
		{
			Name:      "upgrade",
			Usage:     "switch to a new logic version (administrator)",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "logic, l",
					Value: "",
					Usage: "+logic version `NAME`",
				},
				cli.StringFlag{
					Name:  "address, d",
					Value: "",
					Usage: "+logic `ADDRESS` in hex",
				},
				cli.StringFlag{
					Name:  "method, m",
					Value: "",
					Usage: "*migration `METHOD`",
				},
				cli.StringFlag{
					Name:  "arguments, j",
					Value: "",
					Usage: " migration arguments as `JSON`",
				},
			},
			Action: runUpgrade,
		},
		{
			Name:   "admin",
			Usage:  "show the administrator (administrator)",
			Action: runAdmin,
		},
		{
			Name:   "implementation",
			Usage:  "show the active logic version (administrator)",
			Action: runImplementation,
		},
		{
			Name:   "history",
			Usage:  "list every upgrade applied (administrator)",
			Action: runHistory,
		},
		{
			Name:      "change-admin",
			Usage:     "hand the administrator role to another account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				accountFlag,
			},
			Action: runChangeAdmin,
		},
		{
			Name:   "version",
			Usage:  "display property-cli version",
			Action: runVersion,
		},
	}

	app.Before = func(c *cli.Context) error {

		caller, err := optionalAccount(c.GlobalString("caller"))
		if nil != err {
			return err
		}

		m := &metadata{
			connect: c.GlobalString("connect"),
			caller:  caller,
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		c.App.Metadata = map[string]interface{}{
			"config": m,
		}

		if m.verbose {
			fmt.Fprintf(m.e, "connect: %s\n", m.connect)
			fmt.Fprintf(m.e, "caller: %s\n", m.caller)
		}
		return nil
	}

	return app
}

// common command flags
var (
	idFlag = cli.Uint64Flag{
		Name:  "id, i",
		Value: 0,
		Usage: "*token or property `ID`",
	}
	amountFlag = cli.Uint64Flag{
		Name:  "amount, n",
		Value: 0,
		Usage: "*unit or share `COUNT`",
	}
	fromFlag = cli.StringFlag{
		Name:  "from, f",
		Value: "",
		Usage: " source `ACCOUNT` [caller]",
	}
	toFlag = cli.StringFlag{
		Name:  "to, t",
		Value: "",
		Usage: "*receiving `ACCOUNT`",
	}
	ownerFlag = cli.StringFlag{
		Name:  "owner, o",
		Value: "",
		Usage: " holder `ACCOUNT` [caller]",
	}
	operatorFlag = cli.StringFlag{
		Name:  "operator, p",
		Value: "",
		Usage: "*operator `ACCOUNT`",
	}
	accountFlag = cli.StringFlag{
		Name:  "account, u",
		Value: "",
		Usage: "*target `ACCOUNT`",
	}
)

func runVersion(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "%s\n", version)
	return nil
}
