// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package zmqutil - CURVE secured ZeroMQ sockets and key files
package zmqutil

import (
	"time"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/propertyd/util"
)

const (
	heartbeatInterval = 15 * time.Second
	heartbeatTimeout  = 60 * time.Second
	heartbeatTTL      = 120 * time.Second
)

// ServerKeys - CURVE key pair of the binding side
type ServerKeys struct {
	Private []byte
	Public  []byte
}

// NewBind - bind every listen address
//
// IPv4 and IPv6 addresses are bound on separate sockets, so either
// result may be nil when no address of that family was given
func NewBind(log *logger.L, socketType zmq.Type, zapDomain string, privateKey []byte, publicKey []byte, listen []*util.Connection) (*zmq.Socket, *zmq.Socket, error) {

	keys := ServerKeys{
		Private: privateKey,
		Public:  publicKey,
	}

	// index 0: IPv4, index 1: IPv6
	sockets := [2]*zmq.Socket{}

	closeAll := func() {
		for _, s := range sockets {
			if nil != s {
				s.Close()
			}
		}
	}

	for i, address := range listen {
		bindTo, v6 := address.CanonicalIPandPort("tcp://")

		family := 0
		if v6 {
			family = 1
		}

		if nil == sockets[family] {
			socket, err := NewServerSocket(socketType, zapDomain, keys, v6)
			if nil != err {
				closeAll()
				return nil, nil, err
			}
			sockets[family] = socket
		}

		if err := sockets[family].Bind(bindTo); nil != err {
			log.Errorf("cannot bind[%d]: %q  error: %s", i, bindTo, err)
			closeAll()
			return nil, nil, err
		}
		log.Infof("bind[%d]: %q  IPv6: %t", i, bindTo, v6)
	}

	return sockets[0], sockets[1], nil
}

// NewServerSocket - a CURVE server socket accepting any client key
func NewServerSocket(socketType zmq.Type, zapDomain string, keys ServerKeys, v6 bool) (*zmq.Socket, error) {

	socket, err := zmq.NewSocket(socketType)
	if nil != err {
		return nil, err
	}

	zmq.AuthCurveAdd(zapDomain, zmq.CURVE_ALLOW_ANY)

	settings := []error{
		socket.SetCurveServer(1),
		socket.SetCurveSecretkey(string(keys.Private)),
		socket.SetZapDomain(zapDomain),
		socket.SetIdentity(string(keys.Public)),
		socket.SetIpv6(v6),
		socket.SetLinger(0),
		socket.SetHeartbeatIvl(heartbeatInterval),
		socket.SetHeartbeatTimeout(heartbeatTimeout),
		socket.SetHeartbeatTtl(heartbeatTTL),
	}
	for _, err := range settings {
		if nil != err {
			socket.Close()
			return nil, err
		}
	}

	return socket, nil
}
