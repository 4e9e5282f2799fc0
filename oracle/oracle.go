// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Fractiond Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package oracle - registry of price oracle accounts
package oracle

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/fractiond/fractiond/fault"
	"github.com/fractiond/fractiond/storage"
)

// stored status byte
const (
	statusRegistered byte = 1
	statusApproved   byte = 2
)

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

	globalData.log = logger.New("oracle")
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

// Register - record a candidate oracle
func Register(oracleAccount string) error {
	globalData.Lock()
	defer globalData.Unlock()

	key := []byte(oracleAccount)
	if storage.Pool.Oracles.Has(key) {
		return fault.TransactionAlreadyExists
	}
	storage.Pool.Oracles.Put(key, []byte{statusRegistered})
	return nil
}

// Approve - protocol account approves a registered oracle
func Approve(oracleAccount string, actor string) error {
	globalData.Lock()
	defer globalData.Unlock()

	if actor != globalData.protocolAccount {
		return fault.NotProtocolAccount
	}

	key := []byte(oracleAccount)
	if !storage.Pool.Oracles.Has(key) {
		return fault.NotOracleAccount
	}
	storage.Pool.Oracles.Put(key, []byte{statusApproved})

	globalData.log.Infof("approved oracle: %s", oracleAccount)
	return nil
}

// IsApproved - check an oracle may submit prices
func IsApproved(oracleAccount string) bool {
	globalData.Lock()
	defer globalData.Unlock()

	status := storage.Pool.Oracles.Get([]byte(oracleAccount))
	return 1 == len(status) && statusApproved == status[0]
}
