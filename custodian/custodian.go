// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Fractiond Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package custodian - per-asset escrow and custody fee accounts
//
// the auction engine settles with the vault at exactly two points:
// release when an auction starts and debt repayment when it finalizes
package custodian

import (
	"encoding/binary"
	"encoding/json"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/fractiond/fractiond/fault"
	"github.com/fractiond/fractiond/storage"
)

// Vault - the settlement operations consumed by the auction engine
type Vault interface {

	// ReleaseAtAuctionStart - settle the asset's account at auction
	// start; positive = escrow released to the auction pool,
	// negative = debt the pool owes the vault
	ReleaseAtAuctionStart(assetId uint64, auctionEnd time.Time) (int64, error)

	// RepayDebt - pay down debt recorded for an asset
	RepayDebt(assetId uint64, amount uint64) error
}

// account - stored form of one asset's vault account
type account struct {
	Escrow uint64 `json:"escrow"`
	Debt   uint64 `json:"debt"`
}

// globals for this module
type globalDataType struct {
	sync.Mutex
	log         *logger.L
	initialised bool
}

var globalData globalDataType

// the pool backed vault
type localVault struct{}

// Initialise - open the vault
func Initialise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("custodian")
	globalData.log.Info("starting…")

	globalData.initialised = true
	return nil
}

// Finalise - close the vault
func Finalise() error {
	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()
	globalData.initialised = false
	return nil
}

// Get - the vault backed by the storage pool
func Get() Vault {
	return localVault{}
}

// Deposit - add escrow to an asset's account
func Deposit(assetId uint64, amount uint64) error {
	if 0 == amount {
		return fault.InvalidAmount
	}

	globalData.Lock()
	defer globalData.Unlock()

	acc := getAccount(assetId)
	acc.Escrow += amount
	putAccount(assetId, acc)
	return nil
}

// ChargeFee - record a custody fee against an asset
//
// the fee consumes escrow first, any remainder becomes debt
func ChargeFee(assetId uint64, amount uint64) error {
	if 0 == amount {
		return fault.InvalidAmount
	}

	globalData.Lock()
	defer globalData.Unlock()

	acc := getAccount(assetId)
	if acc.Escrow >= amount {
		acc.Escrow -= amount
	} else {
		acc.Debt += amount - acc.Escrow
		acc.Escrow = 0
	}
	putAccount(assetId, acc)
	return nil
}

// Balance - escrow and debt recorded for an asset
func Balance(assetId uint64) (escrow uint64, debt uint64) {
	globalData.Lock()
	defer globalData.Unlock()

	acc := getAccount(assetId)
	return acc.Escrow, acc.Debt
}

// ReleaseAtAuctionStart - part of the Vault interface
func (localVault) ReleaseAtAuctionStart(assetId uint64, auctionEnd time.Time) (int64, error) {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return 0, fault.NotInitialised
	}

	acc := getAccount(assetId)

	// outstanding debt is paid from escrow first
	released := int64(acc.Escrow) - int64(acc.Debt)
	if released >= 0 {
		acc.Debt = 0
	} else {
		acc.Debt = uint64(-released)
	}
	acc.Escrow = 0
	putAccount(assetId, acc)

	globalData.log.Infof("release asset: %d amount: %d auction end: %s",
		assetId, released, auctionEnd.Format(time.RFC3339))
	return released, nil
}

// RepayDebt - part of the Vault interface
func (localVault) RepayDebt(assetId uint64, amount uint64) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	acc := getAccount(assetId)
	if amount > acc.Debt {
		return fault.InvalidAmount
	}

	acc.Debt -= amount
	putAccount(assetId, acc)

	globalData.log.Infof("repay asset: %d amount: %d remaining debt: %d",
		assetId, amount, acc.Debt)
	return nil
}

func vaultKey(assetId uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, assetId)
	return key
}

func getAccount(assetId uint64) account {
	acc := account{}
	packed := storage.Pool.Vault.Get(vaultKey(assetId))
	if nil != packed {
		_ = json.Unmarshal(packed, &acc)
	}
	return acc
}

func putAccount(assetId uint64, acc account) {
	packed, err := json.Marshal(acc)
	if nil != err {
		logger.Panicf("custodian: marshal error: %s", err)
	}
	storage.Pool.Vault.Put(vaultKey(assetId), packed)
}
