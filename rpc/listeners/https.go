// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"context"
	"crypto/tls"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/propertyd/fault"
	"github.com/bitmark-inc/propertyd/rpc/handler"
)

const (
	httpsLogName     = "https_rpc"
	readWriteTimeout = 10 * time.Second
	shutdownTimeout  = 5 * time.Second
)

// HTTPSConfiguration - configuration file data for HTTPS setup
type HTTPSConfiguration struct {
	MaximumConnections uint64              `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string            `gluamapper:"listen" json:"listen"`
	Certificate        string              `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string              `gluamapper:"private_key" json:"private_key"`
	Allow              map[string][]string `gluamapper:"allow" json:"allow"`
}

type httpsListener struct {
	sync.Mutex
	log             *logger.L
	ipType          []string
	listenIPAndPort []string
	tlsConfig       *tls.Config
	mux             *http.ServeMux
	servers         []*http.Server
	done            sync.WaitGroup
}

// NewHTTPS - HTTPS listener serving the handler
//
// returns nil, nil if no listen addresses are configured
func NewHTTPS(
	configuration *HTTPSConfiguration,
	log *logger.L,
	tlsConfig *tls.Config,
	hdlr handler.Handler,
) (Listener, error) {
	if 0 == len(configuration.Listen) {
		log.Infof("disable: %s", httpsLogName)
		return nil, nil
	}

	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", httpsLogName, configuration.MaximumConnections)
		return nil, fault.ErrMissingParameters
	}

	ipType, addresses, err := parseListenAddress(configuration.Listen, log)
	if nil != err {
		return nil, err
	}

	// create access control and format strings to match http.Request.RemoteAddr
	local := make(map[string][]*net.IPNet)
	for path, allowed := range configuration.Allow {
		set := make([]*net.IPNet, len(allowed))
		local[path] = set
		for i, ip := range allowed {
			_, cidr, err := net.ParseCIDR(strings.Trim(ip, " "))
			if nil != err {
				return nil, fault.With(fault.ErrInvalidIPAddress, "allow: %s  cidr: %q", path, ip)
			}
			set[i] = cidr
		}
	}
	hdlr.SetAllow(local)

	cfg := tlsConfig.Clone()
	cfg.NextProtos = []string{"http/1.1"}

	h := &httpsListener{
		log:             log,
		ipType:          ipType,
		listenIPAndPort: addresses,
		tlsConfig:       cfg,
		mux:             http.NewServeMux(),
	}

	h.mux.HandleFunc("/propertyd/rpc", hdlr.RPC)
	h.mux.HandleFunc("/propertyd/details", hdlr.Details)
	h.mux.HandleFunc("/", hdlr.Root)

	return h, nil
}

// Serve - start a server on every listen address
func (h *httpsListener) Serve() error {
	h.Lock()
	defer h.Unlock()

	for i, listen := range h.listenIPAndPort {
		h.log.Infof("starting server: %s on: %q", httpsLogName, listen)

		ln, err := net.Listen(h.ipType[i], listen)
		if nil != err {
			h.log.Errorf("%s listen error: %s", httpsLogName, err)
			h.closeAll()
			return err
		}

		s := &http.Server{
			Addr:           listen,
			Handler:        h.mux,
			ReadTimeout:    readWriteTimeout,
			WriteTimeout:   readWriteTimeout,
			MaxHeaderBytes: 1 << 20,
		}
		h.servers = append(h.servers, s)

		tlsListener := tls.NewListener(tcpKeepAliveListener{ln.(*net.TCPListener)}, h.tlsConfig)

		h.done.Add(1)
		go func() {
			defer h.done.Done()
			err := s.Serve(tlsListener)
			if http.ErrServerClosed != err {
				h.log.Errorf("%s serve error: %s", httpsLogName, err)
			}
		}()
	}
	return nil
}

// Stop - shut down every server
func (h *httpsListener) Stop() {
	h.Lock()
	defer h.Unlock()
	h.closeAll()
}

func (h *httpsListener) closeAll() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	for _, s := range h.servers {
		if err := s.Shutdown(ctx); nil != err {
			h.log.Warnf("%s shutdown error: %s", httpsLogName, err)
		}
	}
	h.servers = nil
	h.done.Wait()
}

type tcpKeepAliveListener struct {
	*net.TCPListener
}

func (ln tcpKeepAliveListener) Accept() (net.Conn, error) {
	tc, err := ln.AcceptTCP()
	if nil != err {
		return nil, err
	}
	_ = tc.SetKeepAlive(true)
	_ = tc.SetKeepAlivePeriod(3 * time.Minute)
	return tc, nil
}
