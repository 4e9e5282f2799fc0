// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Fractiond Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintains a single LevelDB database divided into prefixed pools,
// one pool per record class
package storage

import (
	"encoding/binary"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/fractiond/fractiond/fault"
)

// exported storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type pools struct {
	Assets       *PoolHandle `prefix:"A"`
	AssetControl *PoolHandle `prefix:"N"`
	Balances     *PoolHandle `prefix:"P"`
	Oracles      *PoolHandle `prefix:"O"`
	Vault        *PoolHandle `prefix:"V"`
	TestData     *PoolHandle `prefix:"Z"`
}

// Pool - the set of exported pools
var Pool pools

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const currentDBVersion = 0x100

// holds the database handle
var poolData struct {
	sync.RWMutex
	db *leveldb.DB
}

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Initialise - open up the database connection
//
// this must be called before any pool is accessed
func Initialise(database string, readOnly bool) error {
	poolData.Lock()
	defer poolData.Unlock()

	if nil != poolData.db {
		return fault.AlreadyInitialised
	}

	db, err := leveldb.OpenFile(database, &ldb_opt.Options{
		ErrorIfExist:   false,
		Strict:         ldb_opt.DefaultStrict,
		Compression:    ldb_opt.SnappyCompression,
		Filter:         nil,
		ReadOnly:       readOnly,
	})
	if nil != err {
		return err
	}

	// ensure no database downgrade
	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		if !readOnly {
			version := make([]byte, 4)
			binary.BigEndian.PutUint32(version, currentDBVersion)
			err = db.Put(versionKey, version, nil)
			if nil != err {
				db.Close()
				return err
			}
		}
	} else if nil != err {
		db.Close()
		return err
	} else {
		version := binary.BigEndian.Uint32(versionValue)
		if currentDBVersion != version {
			db.Close()
			return fault.OutOfDateDatabase
		}
	}

	poolData.db = db

	// this will be a struct type
	poolType := reflect.TypeOf(Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&Pool).Elem()

	// scan each field to locate the prefix tag and create its handle
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)
		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			db.Close()
			poolData.db = nil
			return fault.InvalidStructPointer
		}

		prefix := prefixTag[0]
		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			prefix: prefix,
			limit:  limit,
		}
		newPool := reflect.ValueOf(p)
		poolValue.Field(i).Set(newPool)
	}

	return nil
}

// Finalise - close the database connection
func Finalise() {
	poolData.Lock()
	defer poolData.Unlock()

	if nil == poolData.db {
		return
	}
	poolData.db.Close()
	poolData.db = nil
}

// IsInitialised - check the database is open
func IsInitialised() bool {
	poolData.RLock()
	defer poolData.RUnlock()
	return nil != poolData.db
}
