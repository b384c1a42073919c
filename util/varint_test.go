// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"bytes"
	"testing"

	"github.com/bitmark-inc/propertyd/util"
)

var varint64Tests = []struct {
	value   uint64
	encoded []byte
}{
	{0, []byte{0x00}},
	{1, []byte{0x01}},
	{127, []byte{0x7f}},
	{128, []byte{0x80, 0x01}},
	{255, []byte{0xff, 0x01}},
	{16383, []byte{0xff, 0x7f}},
	{16384, []byte{0x80, 0x80, 0x01}},
	{0x7fffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f}},
	{0x8000000000000000, []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80}},
	{0xffffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
}

var varint64TruncatedTests = [][]byte{
	{},
	{0x80},
	{0x80, 0x80},
	{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
}

func TestToVarint64(t *testing.T) {
	for i, item := range varint64Tests {
		if result := util.ToVarint64(item.value); !bytes.Equal(result, item.encoded) {
			t.Errorf("%d: ToVarint64(%x) -> %x  expected: %x", i, item.value, result, item.encoded)
		}
	}
}

func TestFromVarint64(t *testing.T) {
	suffix := []byte{0xff, 0x97, 0x23}

	for i, item := range varint64Tests {
		b := append(append([]byte{}, item.encoded...), suffix...)

		result, count := util.FromVarint64(b)
		if result != item.value || count != len(item.encoded) {
			t.Errorf("%d: FromVarint64(%x) -> %d, %d  expected: %d, %d", i, b, result, count, item.value, len(item.encoded))
		}
		if !bytes.Equal(suffix, b[count:]) {
			t.Errorf("%d: suffix: %x  expected: %x", i, b[count:], suffix)
		}
	}

	for i, item := range varint64TruncatedTests {
		result, count := util.FromVarint64(item)
		if 0 != result || 0 != count {
			t.Errorf("%d: FromVarint64(%x) -> %d, %d  expected: 0, 0", i, item, result, count)
		}
	}
}

func TestUint64Bytes(t *testing.T) {
	b := util.Uint64ToBytes(0x0102030405060708)
	if !bytes.Equal([]byte{1, 2, 3, 4, 5, 6, 7, 8}, b) {
		t.Fatalf("Uint64ToBytes: %x", b)
	}
	n, ok := util.BytesToUint64(b)
	if !ok || 0x0102030405060708 != n {
		t.Errorf("BytesToUint64: %x  ok: %v", n, ok)
	}
	if _, ok := util.BytesToUint64(b[:7]); ok {
		t.Error("BytesToUint64: accepted truncated buffer")
	}
}

func TestBase58(t *testing.T) {
	data := []byte{0x00, 0x13, 0x7f, 0xee, 0x01}
	if result := util.FromBase58(util.ToBase58(data)); !bytes.Equal(data, result) {
		t.Errorf("base58 round trip: %x  expected: %x", result, data)
	}
	if result := util.FromBase58("0OIl"); 0 != len(result) {
		t.Errorf("invalid base58 decoded to: %x", result)
	}
}
