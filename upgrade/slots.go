// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package upgrade

import (
	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/propertyd/account"
	"github.com/bitmark-inc/propertyd/logic"
	"github.com/bitmark-inc/propertyd/storage"
	"github.com/bitmark-inc/propertyd/util"
)

var (
	adminKey          = []byte("admin")
	implementationKey = []byte("implementation")
	historyKey        = []byte("history")
)

// Record - one entry of the upgrade history
type Record struct {
	Sequence uint64        `json:"sequence,string"`
	Address  logic.Address `json:"address"`
	Version  uint64        `json:"version,string"`
}

func readAdmin(reader storage.Reader, region *storage.Region) *account.Account {
	buffer := reader.Get(region.Controller(), adminKey)
	if nil == buffer {
		return nil
	}
	admin, err := account.FromBytes(buffer)
	if nil != err {
		logger.Panicf("upgrade: corrupt admin slot: %x  error: %s", buffer, err)
	}
	return admin
}

func writeAdmin(trx storage.Transaction, region *storage.Region, admin *account.Account) {
	trx.Put(region.Controller(), adminKey, admin.Bytes())
}

// second value is false for an uninitialised region
func readImplementation(reader storage.Reader, region *storage.Region) (logic.Address, bool) {
	buffer := reader.Get(region.Controller(), implementationKey)
	if nil == buffer {
		return logic.Address{}, false
	}
	address, err := logic.AddressFromBytes(buffer)
	if nil != err {
		logger.Panicf("upgrade: corrupt implementation slot: %x  error: %s", buffer, err)
	}
	return address, true
}

// set the implementation and append it to the history
func writeImplementation(trx storage.Transaction, region *storage.Region, address logic.Address, version uint64) {
	pool := region.Controller()
	trx.Put(pool, implementationKey, address[:])

	count, _ := trx.GetN(pool, historyKey)
	trx.Put(pool, util.Concat(historyKey, util.Uint64ToBytes(count)), util.Concat(address[:], util.Uint64ToBytes(version)))
	trx.PutN(pool, historyKey, count+1)
}

func readHistory(reader storage.Reader, region *storage.Region) []Record {
	pool := region.Controller()
	count, _ := reader.GetN(pool, historyKey)

	records := make([]Record, 0, count)
	for i := uint64(0); i < count; i += 1 {
		buffer := reader.Get(pool, util.Concat(historyKey, util.Uint64ToBytes(i)))
		if logic.AddressLength+8 != len(buffer) {
			logger.Panicf("upgrade: corrupt history record: %d: %x", i, buffer)
		}
		address, _ := logic.AddressFromBytes(buffer[:logic.AddressLength])
		version, _ := util.BytesToUint64(buffer[logic.AddressLength:])
		records = append(records, Record{
			Sequence: i,
			Address:  address,
			Version:  version,
		})
	}
	return records
}
