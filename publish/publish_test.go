// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/propertyd/fault"
	"github.com/bitmark-inc/propertyd/logic"
	"github.com/bitmark-inc/propertyd/messagebus"
)

const logDirectory = "testing"

func TestMain(m *testing.M) {
	os.RemoveAll(logDirectory)
	_ = os.Mkdir(logDirectory, 0700)

	_ = logger.Initialise(logger.Configuration{
		Directory: logDirectory,
		File:      "publish.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})

	rc := m.Run()

	logger.Finalise()
	os.RemoveAll(logDirectory)
	os.Exit(rc)
}

func TestEncode(t *testing.T) {
	item := messagebus.Message{
		From: "upgrade",
		Item: logic.Event{
			Kind: logic.EventSharePriceSet,
			Data: logic.SharePriceSet{ID: 7, Price: 25},
		},
	}
	topic, payload, err := encode(3, item)
	assert.Nil(t, err, "encode")
	assert.Equal(t, logic.EventSharePriceSet, topic, "topic")

	var decoded map[string]interface{}
	err = json.Unmarshal(payload, &decoded)
	assert.Nil(t, err, "unmarshal")
	assert.Equal(t, "3", decoded["sequence"], "sequence")
	assert.Equal(t, "upgrade", decoded["from"], "from")
	assert.Equal(t, logic.EventSharePriceSet, decoded["kind"], "kind")
	data := decoded["data"].(map[string]interface{})
	assert.Equal(t, "7", data["id"], "id")

	topic, _, err = encode(4, messagebus.Message{From: "x", Item: "text"})
	assert.Nil(t, err, "encode other")
	assert.Equal(t, unknownTopic, topic, "other topic")
}

func TestLifecycle(t *testing.T) {
	queue := messagebus.New(10)
	configuration := &Configuration{}

	err := Initialise(configuration, queue)
	assert.Nil(t, err, "initialise")
	assert.Equal(t, fault.ErrAlreadyInitialised, Initialise(configuration, queue), "second initialise")

	for i := 0; i < 5; i += 1 {
		assert.True(t, queue.Send("test", logic.Event{Kind: logic.EventInitialised}), "send")
	}
	deadline := time.Now().Add(2 * time.Second)
	for globalData.brdc.Sequence() < 5 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	assert.Equal(t, uint64(5), globalData.brdc.Sequence(), "events consumed")

	assert.Nil(t, Finalise(), "finalise")
	assert.Equal(t, fault.ErrNotInitialised, Finalise(), "second finalise")
}

func TestMissingKeys(t *testing.T) {
	configuration := &Configuration{
		Broadcast:  []string{"127.0.0.1:2139"},
		PrivateKey: "testing/none.private",
		PublicKey:  "testing/none.public",
	}
	err := Initialise(configuration, messagebus.New(1))
	assert.NotNil(t, err, "missing key files")
	assert.Equal(t, fault.ErrNotInitialised, Finalise(), "not started")
}
