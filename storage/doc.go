// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk storage region
//
// The region is a single LevelDB database split into a series of
// pools.  Each pool is identified by a single byte prefix that is
// obtained from the prefix tag of a struct field.  A logic version
// declares its pools as such a struct and the ordered list of
// (prefix, kind) pairs is its layout.  Layouts are append-only: a
// later version must keep every earlier field at the same position
// with the same prefix and kind, and may only add fields at the end.
//
// Notes:
// 1. each separate pool has a single byte prefix
// 2. ++       = concatenation of byte data
// 3. id       = big endian uint64 (8 bytes)
// 4. account  = key variant ++ public key (33 bytes)
// 5. count    = successive index value as big endian uint64 (8 bytes)
//
// Reserved:
//
//   0x00 ++ "VERSION"          - database format version (big endian uint32)
//   0x00 ++ "LAYOUT"           - packed layout of the installed logic version
//   0x01 ++ name               - upgrade controller slots
//
// Logic version one (see logic/layout.go):
//
//   a                          - initialised version             data: count
//   b                          - base URI template               data: bytes
//   c                          - ledger address                  data: bytes
//   d                          - owner                           data: account
//   e ++ account               - authorised minters              data: 0x01
//   f ++ account ++ id         - balances                        data: count
//   g ++ id                    - total supply                    data: count
//   h ++ account ++ account    - operator approvals              data: 0x01
//   i ++ id                    - total shares                    data: count
//   j ++ id                    - available shares                data: count
//   k ++ id                    - property owner                  data: account
//   l ++ id ++ account         - shareholder allocation          data: count
//   m ++ account               - next owned property count       data: count
//   n ++ account ++ count      - owned property list             data: id
//   o ++ account ++ id         - user investment                 data: count
//
// Logic version two appends:
//
//   p ++ id                    - share price                     data: count
//
// Testing:
//   Z ++ key                   - testing data
package storage
