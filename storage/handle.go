// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/propertyd/util"
)

// PoolHandle - a single prefix pool of the region
type PoolHandle struct {
	prefix byte
	limit  []byte
	region *Region
}

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

// Prefix - the pool's single byte prefix
func (p *PoolHandle) Prefix() byte {
	return p.prefix
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// Get - read a committed value for a given key
//
// nil if the key is absent or the region is closed
func (p *PoolHandle) Get(key []byte) []byte {
	r := p.region
	r.dbLock.RLock()
	defer r.dbLock.RUnlock()

	if nil == r.db {
		return nil
	}
	value, err := r.db.Get(p.prefixKey(key), nil)
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("pool.Get", err)
	return value
}

// GetN - read a committed record and decode first 8 bytes as big
// endian uint64
//
// second parameter is false if record was not found
// panics if not 8 (or more) bytes in the record
func (p *PoolHandle) GetN(key []byte) (uint64, bool) {
	return decodeN(key, p.Get(key))
}

// Has - check if a committed key exists
func (p *PoolHandle) Has(key []byte) bool {
	r := p.region
	r.dbLock.RLock()
	defer r.dbLock.RUnlock()

	if nil == r.db {
		return false
	}
	value, err := r.db.Has(p.prefixKey(key), nil)
	logger.PanicIfError("pool.Has", err)
	return value
}

func decodeN(key []byte, buffer []byte) (uint64, bool) {
	if nil == buffer {
		return 0, false
	}
	n, ok := util.BytesToUint64(buffer)
	if !ok {
		logger.Panicf("pool.GetN truncated record for: %x: %x", key, buffer)
	}
	return n, true
}
