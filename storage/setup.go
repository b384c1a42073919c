// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/propertyd/fault"
)

// reserved prefixes
const (
	metadataPrefix   = 0x00
	controllerPrefix = 0x01
)

// for database version
var (
	versionKey = []byte("VERSION")
	layoutKey  = []byte("LAYOUT")
)

const (
	currentDBVersion = 0x100
)

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Region - the storage region shared by every logic version
type Region struct {
	sync.Mutex // held for the whole of a write transaction

	dbLock   sync.RWMutex // guards db against Close
	db       *leveldb.DB
	readOnly bool

	metadata   *PoolHandle
	controller *PoolHandle
}

// Open - open up the database
//
// a new database is tagged with the current format version; a newer
// database than this program understands is refused
func Open(database string, readOnly bool) (*Region, error) {

	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(database, opt)
	if nil != err {
		return nil, err
	}

	region := &Region{
		db:       db,
		readOnly: readOnly,
	}
	region.metadata = region.newPool(metadataPrefix)
	region.controller = region.newPool(controllerPrefix)

	version, err := region.getVersion()
	if nil != err {
		db.Close()
		return nil, err
	}

	if version > currentDBVersion {
		db.Close()
		return nil, fault.With(fault.ErrDatabaseIsNewer, "database: %d  program: %d", version, currentDBVersion)
	}

	if 0 == version && !readOnly {
		if err := region.putVersion(currentDBVersion); nil != err {
			db.Close()
			return nil, err
		}
	}

	return region, nil
}

// Close - close the database connection
//
// waits for any write transaction in progress
func (r *Region) Close() {
	r.Lock()
	defer r.Unlock()

	r.dbLock.Lock()
	defer r.dbLock.Unlock()

	if nil != r.db {
		r.db.Close()
		r.db = nil
	}
}

// IsReadOnly - true if opened read only
func (r *Region) IsReadOnly() bool {
	return r.readOnly
}

// Controller - pool holding upgrade controller slots; not part of any
// logic layout
func (r *Region) Controller() *PoolHandle {
	return r.controller
}

// Bind - set every *PoolHandle field of the struct pointed to by
// pools to the pool named by its prefix tag
//
// the struct must be a valid layout (see LayoutOf)
func (r *Region) Bind(pools interface{}) error {

	rv := reflect.ValueOf(pools)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fault.ErrInvalidStructPointer
	}

	// validates tags and prefixes
	if _, err := LayoutOf(0, pools); nil != err {
		return err
	}

	r.bindStruct(rv.Elem())
	return nil
}

// fill in a struct, recursing into embedded structs
func (r *Region) bindStruct(v reflect.Value) {
	t := v.Type()
	for i := 0; i < t.NumField(); i += 1 {
		fieldInfo := t.Field(i)
		if fieldInfo.Anonymous && fieldInfo.Type.Kind() == reflect.Struct {
			r.bindStruct(v.Field(i))
			continue
		}
		prefix := fieldInfo.Tag.Get("prefix")[0]
		v.Field(i).Set(reflect.ValueOf(r.newPool(prefix)))
	}
}

func (r *Region) newPool(prefix byte) *PoolHandle {
	limit := []byte(nil)
	if prefix < 255 {
		limit = []byte{prefix + 1}
	}
	return &PoolHandle{
		prefix: prefix,
		limit:  limit,
		region: r,
	}
}

func (r *Region) getVersion() (int, error) {
	versionValue, err := r.db.Get(r.metadata.prefixKey(versionKey), nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	} else if nil != err {
		return 0, err
	}

	if 4 != len(versionValue) {
		return 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	return int(binary.BigEndian.Uint32(versionValue)), nil
}

func (r *Region) putVersion(version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return r.db.Put(r.metadata.prefixKey(versionKey), currentVersion, nil)
}

// InstalledLayout - the layout recorded by the last install, false if
// no logic was ever installed
func (r *Region) InstalledLayout(reader Reader) (Layout, bool, error) {
	packed := reader.Get(r.metadata, layoutKey)
	if nil == packed {
		return Layout{}, false, nil
	}
	layout, err := UnpackLayout(packed)
	if nil != err {
		return Layout{}, false, err
	}
	return layout, true, nil
}

// InstallLayout - record layout as the installed layout
//
// fails if layout does not extend the currently installed layout
func (r *Region) InstallLayout(trx Transaction, layout Layout) error {
	installed, ok, err := r.InstalledLayout(trx)
	if nil != err {
		return err
	}
	if ok {
		if err := layout.Extends(installed); nil != err {
			return err
		}
	}
	trx.Put(r.metadata, layoutKey, layout.Pack())
	return nil
}
