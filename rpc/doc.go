// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - this is to setup and handle all of the incoming JSON RPC requests
// from clients requiring propertyd services
//
// standard golang RPC services can be used on the client side to
// access these services
package rpc

//go:generate mockgen -destination=mocks/upgrade.go -package=mocks github.com/bitmark-inc/propertyd/upgrade Handle
//go:generate mockgen -destination=mocks/logic.go -package=mocks github.com/bitmark-inc/propertyd/logic Logic,Pricing
