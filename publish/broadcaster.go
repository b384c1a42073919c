// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"encoding/json"
	"sync/atomic"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/propertyd/fault"
	"github.com/bitmark-inc/propertyd/logic"
	"github.com/bitmark-inc/propertyd/messagebus"
	"github.com/bitmark-inc/propertyd/util"
	"github.com/bitmark-inc/propertyd/zmqutil"
)

const (
	broadcasterZapDomain = "broadcaster"
	unknownTopic         = "unknown"
)

type broadcaster struct {
	log      *logger.L
	queue    *messagebus.Queue
	socket4  *zmq.Socket
	socket6  *zmq.Socket
	sequence uint64
}

// envelope - the published form of an event
type envelope struct {
	Sequence uint64      `json:"sequence,string"`
	From     string      `json:"from"`
	Kind     string      `json:"kind"`
	Data     interface{} `json:"data"`
}

func (brdc *broadcaster) initialise(privateKey []byte, publicKey []byte, broadcast []string, queue *messagebus.Queue) error {

	log := logger.New("broadcaster")
	if nil == log {
		return fault.ErrInvalidLoggerChannel
	}
	brdc.log = log
	brdc.queue = queue
	brdc.socket4 = nil
	brdc.socket6 = nil

	log.Info("initialising…")

	if 0 == len(broadcast) {
		return nil
	}

	c, err := util.NewConnections(broadcast)
	if nil != err {
		log.Errorf("ip and port error: %s", err)
		return err
	}

	// allocate IPv4 and IPv6 sockets
	brdc.socket4, brdc.socket6, err = zmqutil.NewBind(log, zmq.PUB, broadcasterZapDomain, privateKey, publicKey, c)
	if nil != err {
		log.Errorf("bind error: %s", err)
		return err
	}

	return nil
}

// Run - wait for committed events and send them to subscribers
func (brdc *broadcaster) Run(args interface{}, shutdown <-chan struct{}) {

	log := brdc.log

	log.Info("starting…")

	queue := brdc.queue.Chan()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case item := <-queue:
			sequence := atomic.AddUint64(&brdc.sequence, 1)
			topic, payload, err := encode(sequence, item)
			if nil != err {
				log.Errorf("encode from: %s  error: %s", item.From, err)
				continue
			}
			log.Debugf("sending: %s  data: %s", topic, payload)
			brdc.process(brdc.socket4, topic, payload)
			brdc.process(brdc.socket6, topic, payload)
		}
	}
	if nil != brdc.socket4 {
		brdc.socket4.Close()
	}
	if nil != brdc.socket6 {
		brdc.socket6.Close()
	}
	log.Info("stopped")
}

// Sequence - number of events taken from the queue
func (brdc *broadcaster) Sequence() uint64 {
	return atomic.LoadUint64(&brdc.sequence)
}

// send one event; a slow subscriber loses messages rather than
// blocking the publisher
func (brdc *broadcaster) process(socket *zmq.Socket, topic string, payload []byte) {
	if nil == socket {
		return
	}

	_, err := socket.Send(topic, zmq.SNDMORE|zmq.DONTWAIT)
	if nil == err {
		_, err = socket.SendBytes(payload, zmq.DONTWAIT)
	}
	if nil != err {
		brdc.log.Warnf("send: %s  error: %s", topic, err)
	}
}

func encode(sequence uint64, item messagebus.Message) (string, []byte, error) {
	e := envelope{
		Sequence: sequence,
		From:     item.From,
		Kind:     unknownTopic,
		Data:     item.Item,
	}
	if event, ok := item.Item.(logic.Event); ok {
		e.Kind = event.Kind
		e.Data = event.Data
	}
	payload, err := json.Marshal(e)
	if nil != err {
		return "", nil, err
	}
	return e.Kind, payload, nil
}
