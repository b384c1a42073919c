// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package logic - replaceable versions of the business logic
//
// A logic version owns no storage: it declares its pools as a tagged
// struct (its layout) and is bound to the region of the front door
// that runs it.  Each version's layout must extend the previous one;
// version two embeds the version one pools and appends its own.
//
// Versions are identified by an address derived from their name and
// are looked up in a catalogue when installed or reloaded.
package logic
