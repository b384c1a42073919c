// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/propertyd/messagebus"
)

func TestQueue(t *testing.T) {

	items := []messagebus.Message{
		{From: "f1", Item: "c1"},
		{From: "f2", Item: 2},
		{From: "f3", Item: nil},
	}

	queue := messagebus.New(5)
	for _, item := range items {
		assert.True(t, queue.Send(item.From, item.Item), "send: %s", item.From)
	}

	c := queue.Chan()
	for _, item := range items {
		received := <-c
		if received.From != item.From || received.Item != item.Item {
			t.Errorf("actual: %+v  expected: %+v", received, item)
		}
	}
}

func TestFullQueueDrops(t *testing.T) {
	queue := messagebus.New(2)

	assert.True(t, queue.Send("a", 1), "first")
	assert.True(t, queue.Send("a", 2), "second")
	assert.False(t, queue.Send("a", 3), "third should drop")
	assert.Equal(t, uint64(1), queue.Dropped(), "dropped count")

	received := <-queue.Chan()
	assert.Equal(t, 1, received.Item, "order")
}

func TestBus(t *testing.T) {
	assert.NotNil(t, messagebus.Bus.Events, "events queue")
}
