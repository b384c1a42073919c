// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/bitmark-inc/propertyd/fault"
	"github.com/bitmark-inc/propertyd/util"
)

// Kind - the type of value held in a pool
type Kind byte

// enumeration of pool kinds
const (
	KindUint64  Kind = 1
	KindBytes   Kind = 2
	KindAccount Kind = 3
	KindFlag    Kind = 4
)

var kindNames = map[string]Kind{
	"uint64":  KindUint64,
	"bytes":   KindBytes,
	"account": KindAccount,
	"flag":    KindFlag,
}

// String - the tag form of a kind
func (k Kind) String() string {
	for s, v := range kindNames {
		if v == k {
			return s
		}
	}
	return fmt.Sprintf("kind(%d)", byte(k))
}

// Field - one entry of a layout
type Field struct {
	Name   string `json:"name"`
	Prefix byte   `json:"prefix"`
	Kind   Kind   `json:"kind"`
}

// Layout - ordered list of the pools used by one logic version
type Layout struct {
	Version uint64  `json:"version"`
	Fields  []Field `json:"fields"`
}

var poolHandleType = reflect.TypeOf((*PoolHandle)(nil))

// LayoutOf - derive a layout from the tags of a pools struct
//
// every field must be a *PoolHandle tagged with a single byte prefix
// and a kind; embedded structs are flattened in place, so a later
// version can embed the earlier one and append its own fields
func LayoutOf(version uint64, pools interface{}) (Layout, error) {
	t := reflect.TypeOf(pools)
	if nil == t {
		return Layout{}, fault.ErrInvalidStructPointer
	}
	if reflect.Ptr == t.Kind() {
		t = t.Elem()
	}
	if reflect.Struct != t.Kind() {
		return Layout{}, fault.ErrInvalidStructPointer
	}

	layout := Layout{
		Version: version,
	}
	err := appendFields(&layout, t)
	if nil != err {
		return Layout{}, err
	}

	seen := make(map[byte]string)
	for _, f := range layout.Fields {
		if metadataPrefix == f.Prefix || controllerPrefix == f.Prefix {
			return Layout{}, fault.With(fault.ErrReservedPrefix, "field: %s  prefix: 0x%02x", f.Name, f.Prefix)
		}
		if other, ok := seen[f.Prefix]; ok {
			return Layout{}, fault.With(fault.ErrDuplicateLayoutField, "prefix: %q used by: %s and: %s", f.Prefix, other, f.Name)
		}
		seen[f.Prefix] = f.Name
	}
	return layout, nil
}

func appendFields(layout *Layout, t reflect.Type) error {
	for i := 0; i < t.NumField(); i += 1 {
		fieldInfo := t.Field(i)

		if fieldInfo.Anonymous && reflect.Struct == fieldInfo.Type.Kind() {
			if err := appendFields(layout, fieldInfo.Type); nil != err {
				return err
			}
			continue
		}

		if poolHandleType != fieldInfo.Type {
			return fault.With(fault.ErrInvalidLayout, "field: %s  is not a pool handle", fieldInfo.Name)
		}

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return fault.With(fault.ErrInvalidLayout, "field: %s  prefix tag: %q", fieldInfo.Name, prefixTag)
		}

		kind, ok := kindNames[fieldInfo.Tag.Get("kind")]
		if !ok {
			return fault.With(fault.ErrUnsupportedLayoutKind, "field: %s  kind tag: %q", fieldInfo.Name, fieldInfo.Tag.Get("kind"))
		}

		name := fieldInfo.Tag.Get("name")
		if "" == name {
			name = strings.ToLower(fieldInfo.Name)
		}

		layout.Fields = append(layout.Fields, Field{
			Name:   name,
			Prefix: prefixTag[0],
			Kind:   kind,
		})
	}
	return nil
}

// Extends - check that every field of installed is present at the same
// position with the same prefix and kind
//
// names are informative and may change between versions
func (layout Layout) Extends(installed Layout) error {
	if len(layout.Fields) < len(installed.Fields) {
		return fault.With(fault.ErrIncompatibleLayout, "installed fields: %d  new fields: %d", len(installed.Fields), len(layout.Fields))
	}
	for i, f := range installed.Fields {
		n := layout.Fields[i]
		if n.Prefix != f.Prefix || n.Kind != f.Kind {
			return fault.With(fault.ErrIncompatibleLayout, "position: %d  installed: %s(%q, %s)  new: %s(%q, %s)", i, f.Name, f.Prefix, f.Kind, n.Name, n.Prefix, n.Kind)
		}
	}
	return nil
}

// Pack - binary form of a layout
//
//   varint(version) ++ varint(count) ++ count * (prefix ++ kind ++ varint(len) ++ name)
func (layout Layout) Pack() []byte {
	buffer := util.ToVarint64(layout.Version)
	buffer = append(buffer, util.ToVarint64(uint64(len(layout.Fields)))...)
	for _, f := range layout.Fields {
		buffer = append(buffer, f.Prefix, byte(f.Kind))
		buffer = append(buffer, util.ToVarint64(uint64(len(f.Name)))...)
		buffer = append(buffer, f.Name...)
	}
	return buffer
}

// UnpackLayout - decode the binary form of a layout
func UnpackLayout(buffer []byte) (Layout, error) {
	version, n := util.FromVarint64(buffer)
	if 0 == n {
		return Layout{}, fault.ErrInvalidLayout
	}
	buffer = buffer[n:]

	count, n := util.FromVarint64(buffer)
	if 0 == n {
		return Layout{}, fault.ErrInvalidLayout
	}
	buffer = buffer[n:]

	layout := Layout{
		Version: version,
		Fields:  make([]Field, 0, 16),
	}
	for i := uint64(0); i < count; i += 1 {
		if len(buffer) < 2 {
			return Layout{}, fault.ErrInvalidLayout
		}
		prefix := buffer[0]
		kind := Kind(buffer[1])
		buffer = buffer[2:]

		nameLength, n := util.FromVarint64(buffer)
		if 0 == n || uint64(len(buffer)-n) < nameLength {
			return Layout{}, fault.ErrInvalidLayout
		}
		buffer = buffer[n:]

		layout.Fields = append(layout.Fields, Field{
			Name:   string(buffer[:nameLength]),
			Prefix: prefix,
			Kind:   kind,
		})
		buffer = buffer[nameLength:]
	}
	if 0 != len(buffer) {
		return Layout{}, fault.ErrInvalidLayout
	}
	return layout, nil
}
