// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node_test

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/propertyd/counter"
	"github.com/bitmark-inc/propertyd/fault"
	"github.com/bitmark-inc/propertyd/logic"
	"github.com/bitmark-inc/propertyd/rpc/fixtures"
	"github.com/bitmark-inc/propertyd/rpc/mocks"
	"github.com/bitmark-inc/propertyd/rpc/node"
)

func TestNodeInfo(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	h := mocks.NewMockHandle(ctl)
	l := mocks.NewMockLogic(ctl)

	var c counter.Counter
	c.Increment()
	c.Increment()

	n := node.New(logger.New(fixtures.LogCategory), h, time.Now().Add(-time.Minute), "1.0", &c)

	status := logic.Status{
		Initialised:   1,
		BaseURI:       "https://example.com/{id}.json",
		LedgerAddress: "ledger-1",
	}

	h.EXPECT().Query(gomock.Any()).DoAndReturn(fixtures.QueryOn(l)).Times(1)
	l.EXPECT().Address().Return(logic.AddressOf(logic.VersionOneName)).Times(1)
	l.EXPECT().Name().Return(logic.VersionOneName).Times(1)
	l.EXPECT().Version().Return(uint64(1)).Times(1)
	l.EXPECT().Status(gomock.Any()).Return(status).Times(1)

	var reply node.InfoReply
	err := n.Info(&node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Info")
	assert.Equal(t, logic.VersionOneName, reply.Logic.Name, "wrong name")
	assert.Equal(t, uint64(1), reply.Logic.Version, "wrong version")
	assert.Equal(t, status, reply.Logic.Status, "wrong status")
	assert.Equal(t, uint64(2), reply.RPCs, "wrong rpc count")
	assert.Equal(t, "1.0", reply.Version, "wrong node version")
	assert.NotEqual(t, "", reply.Uptime, "empty uptime")
}

func TestNodeInfoWithoutHandle(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	var c counter.Counter
	n := node.New(logger.New(fixtures.LogCategory), nil, time.Now(), "1.0", &c)

	var reply node.InfoReply
	err := n.Info(&node.InfoArguments{}, &reply)
	assert.Equal(t, fault.ErrNotInitialised, err, "wrong error")
}
