// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package upgrade - the front door of a storage region
//
// The front door holds the region and forwards every operation to the
// active logic version.  Only the administrator may replace the active
// version, and only with one whose storage layout extends the
// installed layout.
//
// Controller slots (region controller pool):
//
//   "admin"                     - administrator account
//   "implementation"            - address of the active logic
//   "history"                   - number of installs               data: count
//   "history" ++ count          - one install                      data: address ++ version
//
// States: uninitialised (no implementation slot) → initialised by
// Deploy → re-initialised by each UpgradeAndCall.
package upgrade
