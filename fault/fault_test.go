// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/propertyd/fault"
)

var (
	ErrExistsOne       = fault.ExistsError("exists one")
	ErrInitialisedOne  = fault.InitialisedError("initialised one")
	ErrInsufficientOne = fault.InsufficientError("insufficient one")
	ErrInvalidOne      = fault.InvalidError("invalid one")
	ErrInvalidTwo      = fault.InvalidError("invalid two")
	ErrNotFoundOne     = fault.NotFoundError("not found one")
	ErrProcessOne      = fault.ProcessError("process one")
	ErrUnauthorisedOne = fault.UnauthorisedError("unauthorised one")
)

// test that the various errors can be classified
func TestClasses(t *testing.T) {
	errorList := []struct {
		err          error
		exists       bool
		initialised  bool
		insufficient bool
		invalid      bool
		notFound     bool
		process      bool
		unauthorised bool
	}{
		{ErrExistsOne, true, false, false, false, false, false, false},
		{ErrInitialisedOne, false, true, false, false, false, false, false},
		{ErrInsufficientOne, false, false, true, false, false, false, false},
		{ErrInvalidOne, false, false, false, true, false, false, false},
		{ErrInvalidTwo, false, false, false, true, false, false, false},
		{ErrNotFoundOne, false, false, false, false, true, false, false},
		{ErrProcessOne, false, false, false, false, false, true, false},
		{ErrUnauthorisedOne, false, false, false, false, false, false, true},
		{fault.With(ErrInsufficientOne, "amount: %d", 5), false, false, true, false, false, false, false},
		{errors.New("plain"), false, false, false, false, false, false, false},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInitialised(err) != e.initialised {
			t.Errorf("%d: expected 'initialised' == %v for err = %v", i, e.initialised, err)
		}
		if fault.IsErrInsufficient(err) != e.insufficient {
			t.Errorf("%d: expected 'insufficient' == %v for err = %v", i, e.insufficient, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
		if fault.IsErrUnauthorised(err) != e.unauthorised {
			t.Errorf("%d: expected 'unauthorised' == %v for err = %v", i, e.unauthorised, err)
		}
	}
}

func TestWith(t *testing.T) {
	err := fault.With(fault.ErrInsufficientBalance, "owner: %s  id: %d  amount: %d", "abc", 7, 99)

	assert.True(t, errors.Is(err, fault.ErrInsufficientBalance), "lost base error")
	assert.False(t, errors.Is(err, fault.ErrInsufficientShares), "matched wrong error")
	assert.Equal(t, "insufficient balance: owner: abc  id: 7  amount: 99", err.Error(), "wrong message")

	assert.Nil(t, fault.With(nil, "ignored"), "nil should stay nil")
}
