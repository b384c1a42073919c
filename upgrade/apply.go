// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package upgrade

import (
	"github.com/bitmark-inc/propertyd/account"
	"github.com/bitmark-inc/propertyd/logic"
)

// Apply - Execute an operation and return the events it emitted
//
// events are only returned if the operation committed
func Apply(h Handle, caller *account.Account, operation func(logic.Logic, *logic.Call) error) ([]logic.Event, error) {
	var events []logic.Event
	err := h.Execute(caller, func(l logic.Logic, call *logic.Call) error {
		if err := operation(l, call); nil != err {
			return err
		}
		events = call.Events()
		return nil
	})
	if nil != err {
		return nil, err
	}
	return events, nil
}
