// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/propertyd/fault"
	"github.com/bitmark-inc/propertyd/util"
)

// Reader - read access to the region
type Reader interface {
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
}

// Transaction - all-or-nothing set of writes to the region
//
// reads see the transaction's own writes; nothing is visible outside
// until Commit, and Abort discards everything
type Transaction interface {
	Reader
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Commit() error
	Abort()
}

type transactionImpl struct {
	region   *Region
	batch    *leveldb.Batch
	cache    overlay
	finished bool
}

// Begin - start the only write transaction of the region
//
// blocks until any other transaction finishes
func (r *Region) Begin() (Transaction, error) {
	r.Lock()
	if nil == r.db {
		r.Unlock()
		return nil, fault.ErrRegionClosed
	}
	if r.readOnly {
		r.Unlock()
		return nil, fault.ErrReadOnlyRegion
	}

	return &transactionImpl{
		region: r,
		batch:  new(leveldb.Batch),
		cache:  newCache(),
	}, nil
}

func (t *transactionImpl) check(op string) {
	if t.finished {
		logger.Panicf("transaction.%s: %s", op, fault.ErrTransactionFinished)
	}
}

func (t *transactionImpl) Put(handle *PoolHandle, key []byte, value []byte) {
	t.check("Put")
	prefixedKey := handle.prefixKey(key)
	stored := make([]byte, len(value))
	copy(stored, value)
	t.batch.Put(prefixedKey, stored)
	t.cache.Set(dbPut, string(prefixedKey), stored)
}

func (t *transactionImpl) PutN(handle *PoolHandle, key []byte, value uint64) {
	t.Put(handle, key, util.Uint64ToBytes(value))
}

func (t *transactionImpl) Delete(handle *PoolHandle, key []byte) {
	t.check("Delete")
	prefixedKey := handle.prefixKey(key)
	t.batch.Delete(prefixedKey)
	t.cache.Set(dbDelete, string(prefixedKey), nil)
}

func (t *transactionImpl) Get(handle *PoolHandle, key []byte) []byte {
	t.check("Get")
	prefixedKey := handle.prefixKey(key)
	if value, present, staged := t.cache.Get(string(prefixedKey)); staged {
		if !present {
			return nil
		}
		return value
	}

	// the region lock is held so db cannot be closed underneath
	value, err := t.region.db.Get(prefixedKey, nil)
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("transaction.Get", err)
	return value
}

func (t *transactionImpl) GetN(handle *PoolHandle, key []byte) (uint64, bool) {
	return decodeN(key, t.Get(handle, key))
}

func (t *transactionImpl) Has(handle *PoolHandle, key []byte) bool {
	return nil != t.Get(handle, key)
}

// Commit - write the whole batch atomically and release the region
func (t *transactionImpl) Commit() error {
	if t.finished {
		return fault.ErrTransactionFinished
	}
	defer t.finish()

	return t.region.db.Write(t.batch, nil)
}

// Abort - discard all writes and release the region
//
// harmless after Commit, so it can be deferred
func (t *transactionImpl) Abort() {
	if t.finished {
		return
	}
	t.finish()
}

func (t *transactionImpl) finish() {
	t.finished = true
	t.batch.Reset()
	t.cache.Clear()
	t.region.Unlock()
}
