// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/propertyd/background"
	"github.com/bitmark-inc/propertyd/counter"
	"github.com/bitmark-inc/propertyd/fault"
	"github.com/bitmark-inc/propertyd/logic"
	"github.com/bitmark-inc/propertyd/rpc/certificate"
	"github.com/bitmark-inc/propertyd/rpc/handler"
	"github.com/bitmark-inc/propertyd/rpc/listeners"
	"github.com/bitmark-inc/propertyd/rpc/server"
	"github.com/bitmark-inc/propertyd/storage"
	"github.com/bitmark-inc/propertyd/upgrade"
)

const (
	rpcName   = "client_rpc"
	httpsName = "https_rpc"
)

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	listeners []listeners.Listener

	// certificate reloaders
	background *background.T

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

var connectionCountRPC counter.Counter

// Initialise - start the JSON-RPC and HTTPS listeners serving handle
func Initialise(rpcConfiguration *listeners.RPCConfiguration, httpsConfiguration *listeners.HTTPSConfiguration, handle upgrade.Handle, version string) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	rpcCertificate, err := certificate.NewWatcher(log, rpcName, rpcConfiguration.Certificate, rpcConfiguration.PrivateKey)
	if nil != err {
		return err
	}
	processes := background.Processes{rpcCertificate}

	rpcListener, err := listeners.NewRPC(
		rpcConfiguration,
		log,
		&connectionCountRPC,
		server.Create(log, version, handle, &connectionCountRPC),
		rpcCertificate.TLSConfig(),
		rpcCertificate.Fingerprint(),
	)
	if nil != err {
		rpcCertificate.Close()
		return err
	}

	httpsListener, httpsCertificate, err := newHTTPS(httpsConfiguration, log, handle, version)
	if nil != err {
		rpcCertificate.Close()
		return err
	}
	if nil != httpsCertificate {
		processes = append(processes, httpsCertificate)
	}

	// watchers own their file notifiers from here on
	globalData.background = background.Start(processes, nil)

	started := make([]listeners.Listener, 0, 2)
	for _, l := range []listeners.Listener{rpcListener, httpsListener} {
		if nil == l {
			continue
		}
		if err := l.Serve(); nil != err {
			for _, s := range started {
				s.Stop()
			}
			globalData.background.Stop()
			return err
		}
		started = append(started, l)
	}
	globalData.listeners = started

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop all listeners
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	for _, l := range globalData.listeners {
		l.Stop()
	}
	globalData.listeners = nil

	globalData.background.Stop()

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// the HTTPS listener and its certificate, both nil if disabled
func newHTTPS(configuration *listeners.HTTPSConfiguration, log *logger.L, handle upgrade.Handle, version string) (listeners.Listener, *certificate.Watcher, error) {
	if 0 == len(configuration.Listen) {
		log.Infof("disable: %s", httpsName)
		return nil, nil, nil
	}

	httpsCertificate, err := certificate.NewWatcher(log, httpsName, configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		return nil, nil, err
	}

	hdlr := handler.New(
		log,
		server.Create(log, version, handle, &connectionCountRPC),
		time.Now(),
		version,
		configuration.MaximumConnections,
		statusOf(handle),
	)

	l, err := listeners.NewHTTPS(configuration, log, httpsCertificate.TLSConfig(), hdlr)
	if nil != err {
		httpsCertificate.Close()
		return nil, nil, err
	}
	return l, httpsCertificate, nil
}

// details of the active logic for the HTTPS details page
func statusOf(handle upgrade.Handle) handler.StatusFunc {
	type status struct {
		Name    string       `json:"name"`
		Version uint64       `json:"version,string"`
		Status  logic.Status `json:"status"`
	}
	return func() (interface{}, error) {
		var s status
		err := handle.Query(func(l logic.Logic, reader storage.Reader) error {
			s = status{
				Name:    l.Name(),
				Version: l.Version(),
				Status:  l.Status(reader),
			}
			return nil
		})
		return s, err
	}
}
