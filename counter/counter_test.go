// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/bitmark-inc/propertyd/counter"
)

// test incrementing/decrementing a counter
func TestCounter(t *testing.T) {

	var c1 counter.Counter

	if !c1.IsZero() {
		t.Errorf("counter is not zero at start: %d", c1.Uint64())
	}

	c1.Increment()
	c1.Increment()
	c1.Increment()
	c1.Increment()
	c1.Increment()

	if 5 != c1.Uint64() {
		t.Errorf("counter is not 5 after iincrementing: %d", c1.Uint64())
	}

	c1.Decrement()

	if 4 != c1.Uint64() {
		t.Errorf("counter is not 5 after iincrementing: %d", c1.Uint64())
	}

	c1.Decrement()
	c1.Decrement()
	c1.Decrement()
	c1.Decrement()

	if !c1.IsZero() {
		t.Errorf("counter did not return to zero: %d", c1.Uint64())
	}

	c1.Decrement()

	// check against underflow, i.e. twos complement -1
	if ^uint64(0) != c1.Uint64() {
		t.Errorf("counter did not underflow: %d", c1.Uint64())
	}
}

// concurrent connections must balance out
func TestCounterConcurrent(t *testing.T) {
	var c counter.Counter
	var wg sync.WaitGroup
	for i := 0; i < 50; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Increment()
			c.Decrement()
		}()
	}
	wg.Wait()
	if !c.IsZero() {
		t.Errorf("counter not zero: %d", c.Uint64())
	}
}

func TestAcquire(t *testing.T) {
	var c counter.Counter

	for i := 0; i < 3; i += 1 {
		if !c.Acquire(3) {
			t.Fatalf("acquire %d refused", i)
		}
	}
	if c.Acquire(3) {
		t.Errorf("acquire beyond maximum accepted")
	}
	if 3 != c.Uint64() {
		t.Errorf("refused acquire changed the count: %d", c.Uint64())
	}

	c.Release()
	if !c.Acquire(3) {
		t.Errorf("acquire after release refused")
	}
}

// racing acquirers never take more than the maximum
func TestAcquireConcurrent(t *testing.T) {
	const maximum = 10

	var c counter.Counter
	var taken counter.Counter
	var wg sync.WaitGroup
	for i := 0; i < 100; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if c.Acquire(maximum) {
				taken.Increment()
			}
		}()
	}
	wg.Wait()

	if maximum != taken.Uint64() {
		t.Errorf("slots taken: %d  expected: %d", taken.Uint64(), maximum)
	}
	if maximum != c.Uint64() {
		t.Errorf("count: %d  expected: %d", c.Uint64(), maximum)
	}
}
