// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"encoding/binary"
)

// Uint64ToBytes - 8 byte big endian, so that keys sort numerically
func Uint64ToBytes(n uint64) []byte {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, n)
	return buffer
}

// BytesToUint64 - decode the first 8 bytes as big endian
//
// second value is false if fewer than 8 bytes were given
func BytesToUint64(buffer []byte) (uint64, bool) {
	if len(buffer) < 8 {
		return 0, false
	}
	return binary.BigEndian.Uint64(buffer[:8]), true
}

// Concat - join key parts into a new slice
func Concat(parts ...[]byte) []byte {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	result := make([]byte, 0, n)
	for _, p := range parts {
		result = append(result, p...)
	}
	return result
}
