// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/propertyd/fault"
)

// Snapshot - a consistent read-only view of committed state
type Snapshot struct {
	snapshot *leveldb.Snapshot
}

// View - take a snapshot of the committed region
//
// the snapshot must be released
func (r *Region) View() (*Snapshot, error) {
	r.dbLock.RLock()
	defer r.dbLock.RUnlock()

	if nil == r.db {
		return nil, fault.ErrRegionClosed
	}
	snapshot, err := r.db.GetSnapshot()
	if nil != err {
		return nil, err
	}
	return &Snapshot{
		snapshot: snapshot,
	}, nil
}

// Release - free the snapshot
func (s *Snapshot) Release() {
	s.snapshot.Release()
}

// Get - read a value, nil if absent
func (s *Snapshot) Get(handle *PoolHandle, key []byte) []byte {
	value, err := s.snapshot.Get(handle.prefixKey(key), nil)
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("snapshot.Get", err)
	return value
}

// GetN - read a big endian uint64 record
func (s *Snapshot) GetN(handle *PoolHandle, key []byte) (uint64, bool) {
	return decodeN(key, s.Get(handle, key))
}

// Has - check if a key exists
func (s *Snapshot) Has(handle *PoolHandle, key []byte) bool {
	value, err := s.snapshot.Has(handle.prefixKey(key), nil)
	logger.PanicIfError("snapshot.Has", err)
	return value
}

// NewFetchCursor - cursor over one pool of the snapshot
func (s *Snapshot) NewFetchCursor(handle *PoolHandle) *FetchCursor {
	return newFetchCursor(handle, s.snapshot)
}
