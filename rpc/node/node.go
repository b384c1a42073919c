// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/propertyd/counter"
	"github.com/bitmark-inc/propertyd/fault"
	"github.com/bitmark-inc/propertyd/logic"
	"github.com/bitmark-inc/propertyd/rpc/ratelimit"
	"github.com/bitmark-inc/propertyd/storage"
	"github.com/bitmark-inc/propertyd/upgrade"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	Handle  upgrade.Handle
	counter *counter.Counter
}

// New - create node RPC handler
func New(log *logger.L, handle upgrade.Handle, start time.Time, version string, counter *counter.Counter) *Node {
	return &Node{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:   start,
		Version: version,
		Handle:  handle,
		counter: counter,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// LogicInfo - the active logic version as seen by clients
type LogicInfo struct {
	Address logic.Address `json:"address"`
	Name    string        `json:"name"`
	Version uint64        `json:"version,string"`
	Status  logic.Status  `json:"status"`
}

// InfoReply - results from info request
type InfoReply struct {
	Logic   LogicInfo `json:"logic"`
	RPCs    uint64    `json:"rpcs"`
	Version string    `json:"version"`
	Uptime  string    `json:"uptime"`
}

// Info - return some information about this node
// only enough for clients to determine node state
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	if nil == node.Handle {
		return fault.ErrNotInitialised
	}

	err := node.Handle.Query(func(l logic.Logic, reader storage.Reader) error {
		reply.Logic = LogicInfo{
			Address: l.Address(),
			Name:    l.Name(),
			Version: l.Version(),
			Status:  l.Status(reader),
		}
		return nil
	})
	if nil != err {
		return err
	}

	reply.RPCs = node.counter.Uint64()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	return nil
}
