// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package logic

import (
	"encoding/json"

	"github.com/bitmark-inc/propertyd/account"
	"github.com/bitmark-inc/propertyd/storage"
)

// Call - the context of one mutating operation
//
// all writes go to Trx; events are held until the caller commits
type Call struct {
	Trx    storage.Transaction
	Caller *account.Account
	events []Event
}

// NewCall - context for caller writing to trx
func NewCall(trx storage.Transaction, caller *account.Account) *Call {
	return &Call{
		Trx:    trx,
		Caller: caller,
	}
}

// Emit - record an event to be published after commit
func (c *Call) Emit(kind string, data interface{}) {
	c.events = append(c.events, Event{
		Kind: kind,
		Data: data,
	})
}

// Events - everything emitted so far
func (c *Call) Events() []Event {
	return c.events
}

// Invocation - a named call with JSON arguments, used for
// initialisation and migration
type Invocation struct {
	Method    string          `json:"method"`
	Arguments json.RawMessage `json:"arguments,omitempty"`
}

// decode the arguments into v; absent arguments leave v unchanged
func (inv Invocation) decode(v interface{}) error {
	if 0 == len(inv.Arguments) {
		return nil
	}
	return json.Unmarshal(inv.Arguments, v)
}
