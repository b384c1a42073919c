// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared setup for the rpc tests
package fixtures

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/propertyd/account"
	"github.com/bitmark-inc/propertyd/logic"
	"github.com/bitmark-inc/propertyd/storage"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

var (
	certificateOnce sync.Once
	certificatePEM  []byte
	keyPEM          []byte
)

// SetupTestLogger - start a file logger in a fresh directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}

// Certificate - PEM of a self signed test certificate
func Certificate() string {
	makeCertificate()
	return string(certificatePEM)
}

// Key - PEM private key matching Certificate
func Key() string {
	makeCertificate()
	return string(keyPEM)
}

func makeCertificate() {
	certificateOnce.Do(func() {
		var err error
		certificatePEM, keyPEM, err = certgen.NewTLSCertPair("propertyd test certificate", time.Now().Add(24*time.Hour), false, []string{"127.0.0.1"})
		if nil != err {
			panic(err)
		}
	})
}

// Account - a fresh test network account
func Account() *account.Account {
	acc, _, err := account.Generate(true)
	if nil != err {
		panic(err)
	}
	return acc
}

// ExecuteOn - a DoAndReturn body for Handle.Execute that runs the
// operation against l with a call that has no transaction
func ExecuteOn(l logic.Logic) func(*account.Account, func(logic.Logic, *logic.Call) error) error {
	return func(caller *account.Account, operation func(logic.Logic, *logic.Call) error) error {
		return operation(l, logic.NewCall(nil, caller))
	}
}

// QueryOn - a DoAndReturn body for Handle.Query that runs the
// operation against l with no reader
func QueryOn(l logic.Logic) func(func(logic.Logic, storage.Reader) error) error {
	return func(operation func(logic.Logic, storage.Reader) error) error {
		return operation(l, nil)
	}
}
