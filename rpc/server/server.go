// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/propertyd/counter"
	"github.com/bitmark-inc/propertyd/rpc/admin"
	"github.com/bitmark-inc/propertyd/rpc/node"
	"github.com/bitmark-inc/propertyd/rpc/owner"
	"github.com/bitmark-inc/propertyd/rpc/property"
	"github.com/bitmark-inc/propertyd/rpc/token"
	"github.com/bitmark-inc/propertyd/upgrade"
)

// Create - an rpc server with every service registered against handle
func Create(log *logger.L, version string, handle upgrade.Handle, rpcCount *counter.Counter) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(token.New(log, handle))
	_ = server.Register(property.New(log, handle))
	_ = server.Register(owner.New(log, handle))
	_ = server.Register(admin.New(log, handle))
	_ = server.Register(node.New(log, handle, start, version, rpcCount))

	return server
}
