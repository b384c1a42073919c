// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	cache "github.com/patrickmn/go-cache"
)

// overlay - uncommitted writes of a transaction, so that reads inside
// the transaction see its own puts and deletes
type overlay interface {
	Get(string) ([]byte, bool, bool)
	Set(int, string, []byte)
	Clear()
}

const (
	dbPut = iota
	dbDelete
)

type dbCache struct {
	cache *cache.Cache
}

type cacheData struct {
	op    int
	value []byte
}

// entries live until the transaction finishes
func newCache() overlay {
	return &dbCache{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

// Get - value, present, staged
//
// staged is true if the transaction touched the key; present is false
// for a staged delete
func (c *dbCache) Get(key string) ([]byte, bool, bool) {
	obj, found := c.cache.Get(key)
	if !found {
		return nil, false, false
	}

	data := obj.(cacheData)
	if dbDelete == data.op {
		return nil, false, true
	}

	return data.value, true, true
}

func (c *dbCache) Set(op int, key string, value []byte) {
	cached := cacheData{
		op:    op,
		value: value,
	}
	c.cache.Set(key, cached, cache.NoExpiration)
}

func (c *dbCache) Clear() {
	c.cache.Flush()
}
