// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package publish - broadcast committed events over a ZeroMQ PUB socket
//
// each event is sent as two frames: the event kind (for subscription
// filtering) followed by the JSON encoded envelope
package publish

import (
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/propertyd/background"
	"github.com/bitmark-inc/propertyd/fault"
	"github.com/bitmark-inc/propertyd/messagebus"
	"github.com/bitmark-inc/propertyd/zmqutil"
)

// Configuration - a block of configuration data
// this is read from the Lua configuration file
type Configuration struct {
	Broadcast  []string `gluamapper:"broadcast" json:"broadcast"`
	PrivateKey string   `gluamapper:"private_key" json:"private_key"`
	PublicKey  string   `gluamapper:"public_key" json:"public_key"`
}

// globals for background proccess
type publishData struct {
	sync.RWMutex // to allow locking

	log *logger.L

	brdc broadcaster

	background *background.T

	// set once during initialise
	initialised bool
}

// global data
var globalData publishData

// Initialise - start publishing the events arriving on queue
//
// with an empty broadcast list events are consumed and discarded
func Initialise(configuration *Configuration, queue *messagebus.Queue) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	globalData.log = logger.New("publish")
	globalData.log.Info("starting…")

	var privateKey []byte
	var publicKey []byte
	if 0 != len(configuration.Broadcast) {
		var err error
		privateKey, err = zmqutil.ReadPrivateKeyFile(configuration.PrivateKey)
		if nil != err {
			globalData.log.Errorf("read private key file: %q  error: %s", configuration.PrivateKey, err)
			return err
		}
		publicKey, err = zmqutil.ReadPublicKeyFile(configuration.PublicKey)
		if nil != err {
			globalData.log.Errorf("read public key file: %q  error: %s", configuration.PublicKey, err)
			return err
		}
		globalData.log.Tracef("public key:  %x", publicKey)

		if err := zmqutil.StartAuthentication(globalData.log); nil != err {
			return err
		}
	} else {
		globalData.log.Warn("no broadcast addresses: events will be discarded")
	}

	if err := globalData.brdc.initialise(privateKey, publicKey, configuration.Broadcast, queue); nil != err {
		return err
	}

	// all data initialised
	globalData.initialised = true

	globalData.log.Info("start background…")

	processes := background.Processes{
		&globalData.brdc,
	}

	globalData.background = background.Start(processes, globalData.log)

	return nil
}

// Finalise - stop all background tasks
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.background.Stop()
	zmqutil.StopAuthentication(globalData.log)

	// finally...
	globalData.initialised = false

	globalData.log.Infof("finished  published: %d", globalData.brdc.Sequence())
	globalData.log.Flush()

	return nil
}

// Sequence - number of events published so far
func Sequence() uint64 {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.brdc.Sequence()
}
