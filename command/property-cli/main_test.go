// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/propertyd/account"
	"github.com/bitmark-inc/propertyd/fault"
	"github.com/bitmark-inc/propertyd/logic"
)

func runApp(arguments ...string) (string, string, error) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	app := newApp(stdout, stderr)
	err := app.Run(append([]string{"property-cli"}, arguments...))
	return stdout.String(), stderr.String(), err
}

func TestGenerate(t *testing.T) {
	stdout, _, err := runApp("generate", "--testnet")
	if nil != err {
		t.Fatalf("generate error: %s", err)
	}

	var reply struct {
		Account    *account.Account `json:"account"`
		PrivateKey string           `json:"privateKey"`
		Testnet    bool             `json:"testnet"`
	}
	err = json.Unmarshal([]byte(stdout), &reply)
	if nil != err {
		t.Fatalf("unmarshal: %q  error: %s", stdout, err)
	}
	assert.True(t, reply.Testnet, "wrong network flag")
	assert.True(t, reply.Account.Test, "not a test account")
	assert.Equal(t, 128, len(reply.PrivateKey), "wrong private key length")
}

func TestVersion(t *testing.T) {
	stdout, _, err := runApp("version")
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, version+"\n", stdout, "wrong version")
}

func TestBadCaller(t *testing.T) {
	_, _, err := runApp("--caller", "not-an-account", "version")
	assert.NotNil(t, err, "invalid caller accepted")
}

// these fail before any connection is made
func TestMissingParameters(t *testing.T) {
	acc, _, err := account.Generate(true)
	if nil != err {
		t.Fatalf("generate error: %s", err)
	}

	_, _, err = runApp("mint", "--id", "1", "--amount", "5")
	assert.EqualError(t, err, "to is required", "mint without recipient")

	_, _, err = runApp("mint", "--to", acc.String(), "--id", "1")
	assert.EqualError(t, err, "amount must be greater than zero", "mint zero")

	_, _, err = runApp("balance", "--id", "1")
	assert.EqualError(t, err, "owner or caller is required", "balance without owner")

	_, _, err = runApp("create", "--id", "1")
	assert.EqualError(t, err, "shares must be greater than zero", "create zero shares")

	_, _, err = runApp("upgrade", "--logic", "v2")
	assert.EqualError(t, err, "method is required", "upgrade without method")

	_, _, err = runApp("upgrade", "--logic", "v2", "--method", "m", "--arguments", "{")
	assert.NotNil(t, err, "invalid JSON accepted")
}

func TestAccountOrCaller(t *testing.T) {
	caller, _, _ := account.Generate(false)
	other, _, _ := account.Generate(false)

	m := &metadata{caller: caller}

	acc, err := accountOrCaller(m, "owner", "")
	assert.Nil(t, err, "wrong error")
	assert.True(t, caller.Equal(acc), "caller not used")

	acc, err = accountOrCaller(m, "owner", other.String())
	assert.Nil(t, err, "wrong error")
	assert.True(t, other.Equal(acc), "explicit account not used")

	_, err = accountOrCaller(&metadata{}, "owner", "")
	assert.EqualError(t, err, "owner or caller is required", "wrong error")
}

func TestParseList(t *testing.T) {
	values, err := parseList("ids", "1, 2,30")
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, []uint64{1, 2, 30}, values, "wrong values")

	_, err = parseList("ids", "")
	assert.EqualError(t, err, "ids is required", "wrong error")

	_, err = parseList("ids", "1,x")
	assert.True(t, fault.IsErrInvalid(err), "wrong error: %v", err)
}

func TestLogicAddress(t *testing.T) {
	expected := logic.AddressOf("property-logic-v2")

	address, err := logicAddress("property-logic-v2", "")
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, expected, address, "wrong address from name")

	address, err = logicAddress("", expected.String())
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, expected, address, "wrong address from hex")

	_, err = logicAddress("a", expected.String())
	assert.NotNil(t, err, "both accepted")

	_, err = logicAddress("", "")
	assert.NotNil(t, err, "neither accepted")
}
