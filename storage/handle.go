// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Fractiond Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/logger"
)

// Handle - the interface to a pool, allows the store to be mocked in tests
type Handle interface {
	Put(key []byte, value []byte)
	Get(key []byte) []byte
	GetN(key []byte) (uint64, bool)
	PutN(key []byte, value uint64)
	Has(key []byte) bool
	Delete(key []byte)
}

// PoolHandle - the structure of a pool handle
type PoolHandle struct {
	prefix byte
	limit  []byte
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// Put - store a key/value bytes pair to the database
func (p *PoolHandle) Put(key []byte, value []byte) {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.db {
		logger.Panic("pool.Put nil database")
		return
	}
	err := poolData.db.Put(p.prefixKey(key), value, nil)
	logger.PanicIfError("pool.Put", err)
}

// Delete - remove a key from the database
func (p *PoolHandle) Delete(key []byte) {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.db {
		logger.Panic("pool.Delete nil database")
		return
	}
	err := poolData.db.Delete(p.prefixKey(key), nil)
	logger.PanicIfError("pool.Delete", err)
}

// Get - read a value for a given key
//
// returns nil if the key does not exist
func (p *PoolHandle) Get(key []byte) []byte {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.db {
		logger.Panic("pool.Get nil database")
		return nil
	}
	value, err := poolData.db.Get(p.prefixKey(key), nil)
	if nil != err {
		return nil
	}
	return value
}

// GetN - read a record as an unsigned 64 bit big endian integer
//
// second return value is false if the key does not exist
func (p *PoolHandle) GetN(key []byte) (uint64, bool) {
	buffer := p.Get(key)
	if 8 != len(buffer) {
		return 0, false
	}
	return binary.BigEndian.Uint64(buffer), true
}

// PutN - store an unsigned 64 bit big endian integer
func (p *PoolHandle) PutN(key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	p.Put(key, buffer)
}

// Has - check if a key exists
func (p *PoolHandle) Has(key []byte) bool {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.db {
		logger.Panic("pool.Has nil database")
		return false
	}
	value, err := poolData.db.Has(p.prefixKey(key), nil)
	if nil != err {
		return false
	}
	return value
}

// Range - iterate over all records of a pool in key order
func (p *PoolHandle) Range(f func(key []byte, value []byte) bool) {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.db {
		logger.Panic("pool.Range nil database")
		return
	}
	iter := poolData.db.NewIterator(&ldb_util.Range{
		Start: []byte{p.prefix},
		Limit: p.limit,
	}, nil)
	defer iter.Release()

	for iter.Next() {
		key := make([]byte, len(iter.Key())-1)
		copy(key, iter.Key()[1:])
		value := make([]byte, len(iter.Value()))
		copy(value, iter.Value())
		if !f(key, value) {
			break
		}
	}
}
