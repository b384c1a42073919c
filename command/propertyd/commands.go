// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/propertyd/account"
	"github.com/bitmark-inc/propertyd/logic"
	"github.com/bitmark-inc/propertyd/messagebus"
	"github.com/bitmark-inc/propertyd/storage"
	"github.com/bitmark-inc/propertyd/upgrade"
	"github.com/bitmark-inc/propertyd/zmqutil"
)

const (
	publishPublicKeyFilename  = "publish.public"
	publishPrivateKeyFilename = "publish.private"

	rpcCertificateKeyFilename = "rpc.crt"
	rpcPrivateKeyFilename     = "rpc.key"
)

// setup command handler
//
// commands that run to create key and certificate files these
// commands cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-rpc-cert", "rpc":
		certificateFilename := getFilenameWithDirectory(arguments, rpcCertificateKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, rpcPrivateKeyFilename)

		addresses := []string{}
		if len(arguments) >= 2 {
			for _, a := range arguments[1:] {
				if "" != a {
					addresses = append(addresses, a)
				}
			}
		}

		err := makeSelfSignedCertificate("rpc", certificateFilename, privateKeyFilename, 0 != len(addresses), addresses)
		if nil != err {
			fmt.Printf("generate RPC key: %q and certificate: %q error: %s\n", privateKeyFilename, certificateFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)

	case "gen-publish-keys", "publish":
		publicKeyFilename := getFilenameWithDirectory(arguments, publishPublicKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, publishPrivateKeyFilename)
		err := zmqutil.MakeKeyPair(publicKeyFilename, privateKeyFilename)
		if nil != err {
			fmt.Printf("generate private key: %q and public key: %q error: %s\n", privateKeyFilename, publicKeyFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated private key: %q and public key: %q\n", privateKeyFilename, publicKeyFilename)

	case "gen-account", "account":
		testnet := len(arguments) > 0 && "test" == arguments[0]
		acc, privateKey, err := account.Generate(testnet)
		if nil != err {
			fmt.Printf("generate account error: %s\n", err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("account:     %s\n", acc)
		fmt.Printf("private key: %s\n", hex.EncodeToString(privateKey))

	case "start", "run":
		return false // continue processing

	case "deploy", "status", "layout":
		return false // defer processing until database is loaded

	case "config-test", "cfg":
		return false

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)       - display this message\n\n")
		fmt.Printf("  version                    (v)       - display version sting\n\n")

		fmt.Printf("  gen-rpc-cert [DIR] [IPs...] (rpc)    - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                         and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-publish-keys [DIR]     (publish) - create private key in: %q\n", "DIR/"+publishPrivateKeyFilename)
		fmt.Printf("                                         and the public key in: %q\n", "DIR/"+publishPublicKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-account [test]         (account) - create an account and print its private key\n")
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)     - just run the program, same as no arguments\n")
		fmt.Printf("                                         for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)     - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  deploy                               - install the configured logic into an empty database\n")
		fmt.Printf("\n")

		fmt.Printf("  status                               - display the installed logic and layout\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// configuration commands
//
// these commands can read the configuration file but cannot access
// the database
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		text, err := json.MarshalIndent(options, "", "  ")
		if nil != err {
			exitwithstatus.Message("configuration error: %s", err)
		}
		fmt.Printf("configuration: %s\n", text)

	default:
		return false
	}
	return true
}

// data command handler
//
// the internal database is open and the command can run against it
func processDataCommand(log *logger.L, arguments []string, options *Configuration, region *storage.Region) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "deploy":
		_, err := deploy(region, options, messagebus.New(1))
		if nil != err {
			log.Criticalf("deploy error: %s", err)
			exitwithstatus.Message("deploy error: %s", err)
		}
		fmt.Printf("deployed: %s\n", options.Deploy.Logic)

	case "status", "layout":
		view, err := region.View()
		if nil != err {
			exitwithstatus.Message("status error: %s", err)
		}
		defer view.Release()

		layout, ok, err := region.InstalledLayout(view)
		if nil != err {
			exitwithstatus.Message("status error: %s", err)
		}
		if !ok {
			fmt.Printf("not deployed\n")
			return true
		}
		text, err := json.MarshalIndent(layout, "", "  ")
		if nil != err {
			exitwithstatus.Message("status error: %s", err)
		}
		fmt.Printf("layout: %s\n", text)

	default:
		return false
	}
	return true
}

// install the configured logic into an empty region
func deploy(region *storage.Region, options *Configuration, sink upgrade.Sink) (*upgrade.FrontDoor, error) {
	if "" == options.Deploy.Admin {
		return nil, fmt.Errorf("deploy: missing admin account")
	}
	admin, err := account.FromBase58(options.Deploy.Admin)
	if nil != err {
		return nil, err
	}

	arguments := logic.InitialiseArguments{
		BaseURI: options.Deploy.BaseURI,
		Ledger:  options.Deploy.Ledger,
	}
	if "" != options.Deploy.Owner {
		arguments.Owner, err = account.FromBase58(options.Deploy.Owner)
		if nil != err {
			return nil, err
		}
	}
	packed, err := json.Marshal(arguments)
	if nil != err {
		return nil, err
	}

	invocation := logic.Invocation{
		Method:    logic.MethodInitialise,
		Arguments: packed,
	}
	return upgrade.Deploy(region, logic.Standard(), sink, admin, logic.AddressOf(options.Deploy.Logic), invocation)
}

// get the working directory; if not set in the arguments
// it's set to the current working directory
func getFilenameWithDirectory(arguments []string, name string) string {
	dir := "."
	if len(arguments) >= 1 {
		dir = arguments[0]
	}

	directory, err := filepath.Abs(filepath.Clean(dir))
	if err != nil {
		fmt.Printf("path: %q error: %s\n", dir, err)
		exitwithstatus.Exit(1)
	}

	if err := os.MkdirAll(directory, 0700); nil != err {
		fmt.Printf("path: %q error: %s\n", dir, err)
		exitwithstatus.Exit(1)
	}

	return filepath.Join(directory, name)
}
