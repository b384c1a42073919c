// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil

import (
	"sync"

	"github.com/bitmark-inc/logger"
	zmq "github.com/pebbe/zmq4"
)

// ZAP handler state shared by every CURVE server socket in the process
var authentication struct {
	sync.Mutex
	running bool
}

// StartAuthentication - start the ZAP handler if it is not running
//
// a failed start is not remembered, so a later call retries
func StartAuthentication(log *logger.L) error {
	authentication.Lock()
	defer authentication.Unlock()

	if authentication.running {
		return nil
	}

	zmq.AuthSetVerbose(false)
	if err := zmq.AuthStart(); nil != err {
		log.Errorf("zmq authentication start error: %s", err)
		return err
	}
	authentication.running = true
	log.Debug("zmq authentication started")
	return nil
}

// StopAuthentication - stop the ZAP handler once its sockets are closed
func StopAuthentication(log *logger.L) {
	authentication.Lock()
	defer authentication.Unlock()

	if !authentication.running {
		return
	}
	zmq.AuthStop()
	authentication.running = false
	log.Debug("zmq authentication stopped")
}

// AuthenticationRunning - true between a successful start and a stop
func AuthenticationRunning() bool {
	authentication.Lock()
	defer authentication.Unlock()
	return authentication.running
}
