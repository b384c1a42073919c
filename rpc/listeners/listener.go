// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package listeners - TLS listeners for JSON-RPC over raw TCP and HTTPS
package listeners

import (
	"net"
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/propertyd/fault"
)

const (
	minConnectionCount = 1
)

// Listener - a started or startable server
type Listener interface {
	Serve() error
	Stop()
}

// convert listen addresses into network types for net.Listen
//
//   "*:PORT"    → tcp on [::]:PORT
//   "[IP]:PORT" → tcp6
//   "IP:PORT"   → tcp4
func parseListenAddress(addrs []string, log *logger.L) ([]string, []string, error) {
	networks := make([]string, len(addrs))
	addresses := make([]string, len(addrs))
	for i, listen := range addrs {
		if "" == listen {
			return nil, nil, fault.ErrInvalidIPAddress
		}
		ip := ""
		port := ""
		if '*' == listen[0] {
			parts := strings.Split(listen, ":")
			if 2 != len(parts) {
				return nil, nil, fault.ErrInvalidIPAddress
			}
			ip = "::"
			port = parts[1]
			addresses[i] = "[::]:" + port
			networks[i] = "tcp"
		} else {
			host, p, err := net.SplitHostPort(listen)
			if nil != err {
				log.Errorf("listen: %q  error: %s", listen, err)
				return nil, nil, fault.ErrInvalidIPAddress
			}
			ip = host
			port = p
			addresses[i] = listen
			if '[' == listen[0] {
				networks[i] = "tcp6"
			} else {
				networks[i] = "tcp4"
			}
		}

		if nil == net.ParseIP(ip) {
			err := fault.ErrInvalidIPAddress
			log.Errorf("listen: %q  error: %s", listen, err)
			return nil, nil, err
		}
		if "" == port {
			return nil, nil, fault.ErrInvalidPortNumber
		}
	}

	return networks, addresses, nil
}
