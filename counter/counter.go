// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - lock free counts shared by rpc handlers
package counter

import (
	"sync/atomic"
)

// Counter - a 64 bit unsigned count safe for concurrent use
type Counter uint64

func (c *Counter) pointer() *uint64 {
	return (*uint64)(c)
}

// Increment - add one, returning the new value
func (c *Counter) Increment() uint64 {
	return atomic.AddUint64(c.pointer(), 1)
}

// Decrement - subtract one, returning the new value
func (c *Counter) Decrement() uint64 {
	return atomic.AddUint64(c.pointer(), ^uint64(0))
}

// Acquire - take one slot if fewer than maximum are in use
//
// unlike Increment the count never passes maximum, so a refused
// request is not seen by concurrent readers
func (c *Counter) Acquire(maximum uint64) bool {
	for {
		current := atomic.LoadUint64(c.pointer())
		if current >= maximum {
			return false
		}
		if atomic.CompareAndSwapUint64(c.pointer(), current, current+1) {
			return true
		}
	}
}

// Release - give back a slot taken by Acquire
func (c *Counter) Release() {
	c.Decrement()
}

// Uint64 - current value
func (c *Counter) Uint64() uint64 {
	return atomic.LoadUint64(c.pointer())
}

// IsZero - true when nothing is counted
func (c *Counter) IsZero() bool {
	return 0 == c.Uint64()
}
