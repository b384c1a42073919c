// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"crypto/tls"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/propertyd/counter"
	"github.com/bitmark-inc/propertyd/fault"
)

const (
	logName = "client_rpc"
)

// RPCConfiguration - configuration file data for RPC setup
type RPCConfiguration struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
}

type rpcListener struct {
	sync.Mutex
	log             *logger.L
	listeners       []net.Listener
	count           *counter.Counter
	server          *rpc.Server
	maxConnections  uint64
	tlsConfig       *tls.Config
	ipType          []string
	listenIPAndPort []string
	done            sync.WaitGroup
}

// NewRPC - JSON-RPC over TLS listener
func NewRPC(
	configuration *RPCConfiguration,
	log *logger.L,
	count *counter.Counter,
	server *rpc.Server,
	tlsConfig *tls.Config,
	certificateFingerprint [32]byte,
) (Listener, error) {
	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", logName, configuration.MaximumConnections)
		return nil, fault.ErrMissingParameters
	}

	if 0 == len(configuration.Listen) {
		log.Errorf("missing %s listen", logName)
		return nil, fault.ErrMissingParameters
	}

	ipType, addresses, err := parseListenAddress(configuration.Listen, log)
	if nil != err {
		return nil, err
	}

	log.Infof("%s: SHA3-256 fingerprint: %x", logName, certificateFingerprint)

	r := &rpcListener{
		log:             log,
		maxConnections:  configuration.MaximumConnections,
		listenIPAndPort: addresses,
		ipType:          ipType,
		server:          server,
		count:           count,
		tlsConfig:       tlsConfig,
	}
	return r, nil
}

// Serve - start accepting on every listen address
func (r *rpcListener) Serve() error {
	r.Lock()
	defer r.Unlock()

	for i, listen := range r.listenIPAndPort {
		r.log.Infof("starting RPC server: %s", listen)
		l, err := tls.Listen(r.ipType[i], listen, r.tlsConfig)
		if err != nil {
			r.log.Errorf("rpc server listen error: %s", err)
			for _, opened := range r.listeners {
				_ = opened.Close()
			}
			r.listeners = nil
			return err
		}
		r.listeners = append(r.listeners, l)

		r.done.Add(1)
		go func() {
			defer r.done.Done()
			doServeRPC(l, r.server, r.maxConnections, r.log, r.count)
		}()
	}
	return nil
}

// Stop - close every listener and wait for the accept loops
//
// connections already accepted finish on their own
func (r *rpcListener) Stop() {
	r.Lock()
	defer r.Unlock()

	for _, l := range r.listeners {
		_ = l.Close()
	}
	r.listeners = nil
	r.done.Wait()
}

func doServeRPC(listen net.Listener, server *rpc.Server, maximumConnections uint64, log *logger.L, count *counter.Counter) {
	for {
		conn, err := listen.Accept()
		if err != nil {
			log.Infof("rpc server stopped: %s", err)
			break
		}
		if count.Acquire(maximumConnections) {
			go func() {
				server.ServeCodec(jsonrpc.NewServerCodec(conn))
				_ = conn.Close()
				count.Release()
			}()
		} else {
			log.Warnf("connection limit: %d reached, rejected: %s", maximumConnections, conn.RemoteAddr())
			_ = conn.Close()
		}
	}
	_ = listen.Close()
}
