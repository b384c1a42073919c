// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb/iterator"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/propertyd/fault"
)

// both *leveldb.DB and *leveldb.Snapshot
type iterable interface {
	NewIterator(slice *util.Range, ro *opt.ReadOptions) iterator.Iterator
}

// FetchCursor - cursor structure
type FetchCursor struct {
	pool     *PoolHandle
	source   iterable // nil => committed state of the region
	maxRange util.Range
}

// NewFetchCursor - initialise a cursor to the start of the committed
// pool
func (p *PoolHandle) NewFetchCursor() *FetchCursor {
	return newFetchCursor(p, nil)
}

func newFetchCursor(p *PoolHandle, source iterable) *FetchCursor {
	return &FetchCursor{
		pool:   p,
		source: source,
		maxRange: util.Range{
			Start: []byte{p.prefix}, // Start of key range, included in the range
			Limit: p.limit,          // Limit of key range, excluded from the range
		},
	}
}

// Prefix - restrict the cursor to keys starting with prefix
func (cursor *FetchCursor) Prefix(prefix []byte) *FetchCursor {
	cursor.maxRange = *util.BytesPrefix(cursor.pool.prefixKey(prefix))
	return cursor
}

// Seek - move cursor to specific key position
func (cursor *FetchCursor) Seek(key []byte) *FetchCursor {
	cursor.maxRange.Start = cursor.pool.prefixKey(key)
	return cursor
}

// Fetch - return up to count elements starting from the cursor and
// advance past them
func (cursor *FetchCursor) Fetch(count int) ([]Element, error) {
	if nil == cursor {
		return nil, fault.ErrInvalidCursor
	}
	if count <= 0 {
		return nil, fault.ErrInvalidCount
	}

	results := make([]Element, 0, count)
	err := cursor.iterate(func(key []byte, value []byte) bool {
		results = append(results, Element{
			Key:   key,
			Value: value,
		})
		return len(results) < count
	})

	if n := len(results); n > 0 {
		// smallest key after the last one returned
		lastKey := results[n-1].Key
		start := make([]byte, 0, len(lastKey)+2)
		start = append(start, cursor.pool.prefix)
		start = append(start, lastKey...)
		cursor.maxRange.Start = append(start, 0x00)
	}
	return results, err
}

// Map - run a function on all elements in the range
//
// stops at the first error returned by f
func (cursor *FetchCursor) Map(f func(key []byte, value []byte) error) error {
	if nil == cursor {
		return fault.ErrInvalidCursor
	}

	var err error
	iterErr := cursor.iterate(func(key []byte, value []byte) bool {
		err = f(key, value)
		return nil == err
	})
	if nil == err {
		err = iterErr
	}
	return err
}

// call f on copies of each key (prefix stripped) and value until it
// returns false
func (cursor *FetchCursor) iterate(f func(key []byte, value []byte) bool) error {
	source := cursor.source
	if nil == source {
		r := cursor.pool.region
		r.dbLock.RLock()
		defer r.dbLock.RUnlock()
		if nil == r.db {
			return nil
		}
		source = r.db
	}

	iter := source.NewIterator(&cursor.maxRange, nil)

iterating:
	for iter.Next() {

		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key)-1) // strip the prefix
		copy(dataKey, key[1:])              // ...

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		if !f(dataKey, dataValue) {
			break iterating
		}
	}
	iter.Release()
	return iter.Error()
}
