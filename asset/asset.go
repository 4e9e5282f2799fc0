// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Fractiond Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package asset - registry of custody assets
//
// tracks each wrapped asset's id, owner, custody state and whether it
// is currently fractionalised; records are stored in the assets pool
package asset

import (
	"encoding/binary"
	"encoding/json"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/fractiond/fractiond/fault"
	"github.com/fractiond/fractiond/storage"
)

// State - custody lifecycle state of an asset
type State byte

// custody states in lifecycle order
const (
	StateRegistered State = iota + 1
	StateCheckedIn
	StateVerified
)

// String - printable custody state
func (state State) String() string {
	switch state {
	case StateRegistered:
		return "Registered"
	case StateCheckedIn:
		return "CheckedIn"
	case StateVerified:
		return "Verified"
	default:
		return "*Unknown*"
	}
}

// Record - stored form of one asset
type Record struct {
	AssetId        uint64 `json:"assetId"`
	Owner          string `json:"owner"`
	Metadata       string `json:"metadata"`
	State          State  `json:"state"`
	Fractionalised bool   `json:"fractionalised"`
}

// key for the next asset id counter in the asset control pool
var nextIdKey = []byte("next-id")

// globals for this module
type globalDataType struct {
	sync.Mutex
	log             *logger.L
	protocolAccount string
	initialised     bool
}

var globalData globalDataType

// Initialise - open the registry
func Initialise(protocolAccount string) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("asset")
	globalData.log.Info("starting…")

	globalData.protocolAccount = protocolAccount
	globalData.initialised = true
	return nil
}

// Finalise - close the registry
func Finalise() error {
	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()
	globalData.initialised = false
	return nil
}

// Register - record a new asset, returns its id
func Register(owner string, metadata string) (uint64, error) {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return 0, fault.NotInitialised
	}

	assetId, _ := storage.Pool.AssetControl.GetN(nextIdKey)
	assetId += 1
	storage.Pool.AssetControl.PutN(nextIdKey, assetId)

	record := &Record{
		AssetId:  assetId,
		Owner:    owner,
		Metadata: metadata,
		State:    StateRegistered,
	}
	putRecord(record)

	globalData.log.Infof("registered asset: %d owner: %s", assetId, owner)
	return assetId, nil
}

// CheckIn - owner confirms the asset is delivered into custody
func CheckIn(assetId uint64, actor string) error {
	globalData.Lock()
	defer globalData.Unlock()

	record, err := getRecord(assetId)
	if nil != err {
		return err
	}
	if actor != record.Owner {
		return fault.NotAssetOwner
	}
	if StateRegistered != record.State {
		return fault.InvalidCustodyState
	}

	record.State = StateCheckedIn
	putRecord(record)
	return nil
}

// Verify - protocol account confirms custody inspection
func Verify(assetId uint64, actor string) error {
	globalData.Lock()
	defer globalData.Unlock()

	if actor != globalData.protocolAccount {
		return fault.NotProtocolAccount
	}

	record, err := getRecord(assetId)
	if nil != err {
		return err
	}
	if StateCheckedIn != record.State {
		return fault.InvalidCustodyState
	}

	record.State = StateVerified
	putRecord(record)
	return nil
}

// ProtocolAccount - the configured protocol operator account
func ProtocolAccount() string {
	globalData.Lock()
	defer globalData.Unlock()
	return globalData.protocolAccount
}

// Get - fetch one asset record
func Get(assetId uint64) (*Record, error) {
	globalData.Lock()
	defer globalData.Unlock()
	return getRecord(assetId)
}

// OwnerOf - current owner of an asset
func OwnerOf(assetId uint64) (string, error) {
	globalData.Lock()
	defer globalData.Unlock()

	record, err := getRecord(assetId)
	if nil != err {
		return "", err
	}
	return record.Owner, nil
}

// Transfer - move ownership of an asset
func Transfer(assetId uint64, from string, to string) error {
	globalData.Lock()
	defer globalData.Unlock()

	record, err := getRecord(assetId)
	if nil != err {
		return err
	}
	if from != record.Owner {
		return fault.NotAssetOwner
	}

	record.Owner = to
	putRecord(record)

	globalData.log.Infof("transferred asset: %d  %s → %s", assetId, from, to)
	return nil
}

// SetFractionalised - flag an asset as backing fractions or not
func SetFractionalised(assetId uint64, flag bool) error {
	globalData.Lock()
	defer globalData.Unlock()

	record, err := getRecord(assetId)
	if nil != err {
		return err
	}

	record.Fractionalised = flag
	putRecord(record)
	return nil
}

// IsFractionalised - check the fractionalised flag
func IsFractionalised(assetId uint64) (bool, error) {
	globalData.Lock()
	defer globalData.Unlock()

	record, err := getRecord(assetId)
	if nil != err {
		return false, err
	}
	return record.Fractionalised, nil
}

func assetKey(assetId uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, assetId)
	return key
}

func getRecord(assetId uint64) (*Record, error) {
	packed := storage.Pool.Assets.Get(assetKey(assetId))
	if nil == packed {
		return nil, fault.AssetNotFound
	}

	record := &Record{}
	err := json.Unmarshal(packed, record)
	if nil != err {
		return nil, err
	}
	return record, nil
}

func putRecord(record *Record) {
	packed, err := json.Marshal(record)
	if nil != err {
		globalData.log.Criticalf("marshal asset: %d error: %s", record.AssetId, err)
		logger.Panicf("asset: marshal error: %s", err)
	}
	storage.Pool.Assets.Put(assetKey(record.AssetId), packed)
}
