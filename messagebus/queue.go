// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"sync/atomic"
)

// internal constants
const (
	queueSize = 1000
)

// Message - an item and where it came from
type Message struct {
	From string
	Item interface{}
}

// Queue - buffered channel of messages
//
// sending never blocks: when the queue is full the message is dropped
// and counted
type Queue struct {
	c       chan Message
	dropped uint64
}

// BusType - all of the queues
type BusType struct {
	Events *Queue // committed events for the publisher
}

// Bus - the global queues
var Bus = BusType{
	Events: New(queueSize),
}

// New - a queue holding up to size messages
func New(size int) *Queue {
	return &Queue{
		c: make(chan Message, size),
	}
}

// Send - queue an item; false if it was dropped
func (queue *Queue) Send(from string, item interface{}) bool {
	select {
	case queue.c <- Message{From: from, Item: item}:
		return true
	default:
		atomic.AddUint64(&queue.dropped, 1)
		return false
	}
}

// Chan - channel to read from
func (queue *Queue) Chan() <-chan Message {
	return queue.c
}

// Dropped - number of messages lost to a full queue
func (queue *Queue) Dropped() uint64 {
	return atomic.LoadUint64(&queue.dropped)
}
