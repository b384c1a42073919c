// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ratelimit - token bucket throttling for rpc methods
package ratelimit

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/propertyd/fault"
)

// Limit - wait for one token
func Limit(limiter *rate.Limiter) error {
	return wait(limiter.Reserve())
}

// LimitN - wait for one token per item of a batch request
//
// an empty or oversize batch still costs one token before it is
// rejected
func LimitN(limiter *rate.Limiter, count int, maximumCount int) error {
	if count <= 0 || count > maximumCount {
		if err := wait(limiter.Reserve()); nil != err {
			return err
		}
		return fault.With(fault.ErrInvalidCount, "count: %d  maximum: %d", count, maximumCount)
	}
	return wait(limiter.ReserveN(time.Now(), count))
}

// a reservation larger than the burst can never be met
func wait(r *rate.Reservation) error {
	if !r.OK() {
		return fault.ErrRateLimiting
	}
	time.Sleep(r.Delay())
	return nil
}
