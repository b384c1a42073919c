// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package logic

import (
	"sort"

	"github.com/bitmark-inc/propertyd/fault"
	"github.com/bitmark-inc/propertyd/storage"
)

// Definition - how to build one logic version
type Definition struct {
	Name    string
	Version uint64

	newPools func() interface{}
	build    func(pools interface{}, layout storage.Layout) Logic
}

// Address - identity of the version
func (d Definition) Address() Address {
	return AddressOf(d.Name)
}

// Layout - the version's storage layout
func (d Definition) Layout() (storage.Layout, error) {
	return storage.LayoutOf(d.Version, d.newPools())
}

// Instantiate - bind the version's pools to region
func (d Definition) Instantiate(region *storage.Region) (Logic, error) {
	pools := d.newPools()
	layout, err := storage.LayoutOf(d.Version, pools)
	if nil != err {
		return nil, err
	}
	err = region.Bind(pools)
	if nil != err {
		return nil, err
	}
	return d.build(pools, layout), nil
}

// Catalogue - the logic versions known to this program
type Catalogue struct {
	definitions map[Address]Definition
}

// NewCatalogue - catalogue of the given definitions
func NewCatalogue(definitions ...Definition) *Catalogue {
	c := &Catalogue{
		definitions: make(map[Address]Definition),
	}
	for _, d := range definitions {
		c.definitions[d.Address()] = d
	}
	return c
}

// Standard - every version shipped with this program
func Standard() *Catalogue {
	return NewCatalogue(VersionOne(), VersionTwo())
}

// Lookup - find a version by address
func (c *Catalogue) Lookup(address Address) (Definition, error) {
	d, ok := c.definitions[address]
	if !ok {
		return Definition{}, fault.With(fault.ErrLogicNotFound, "address: %s", address)
	}
	return d, nil
}

// List - all versions in version order
func (c *Catalogue) List() []Definition {
	list := make([]Definition, 0, len(c.definitions))
	for _, d := range c.definitions {
		list = append(list, d)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Version < list[j].Version
	})
	return list
}
