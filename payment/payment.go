// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Fractiond Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package payment - exchange token balance accounts
//
// all monetary values are integers in the smallest unit of the
// configured exchange token; the auction engine only draws funds
// through ValidateIncomingPayment and returns them via TransferOut
package payment

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/fractiond/fractiond/fault"
	"github.com/fractiond/fractiond/storage"
)

// Payments - the transfer operations consumed by the auction engine
type Payments interface {

	// ValidateIncomingPayment - take exactly amount of the configured
	// exchange token from the payer's account
	ValidateIncomingPayment(payer string, token string, amount uint64) error

	// TransferOut - credit an account
	TransferOut(token string, recipient string, amount uint64) error

	// Balance - current balance of an account
	Balance(account string) uint64
}

// globals for this module
type globalDataType struct {
	sync.Mutex
	log           *logger.L
	exchangeToken string
	initialised   bool
}

var globalData globalDataType

// the pool backed implementation
type localPayments struct{}

// Initialise - open the balance table
func Initialise(exchangeToken string) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}
	if "" == exchangeToken {
		return fault.MissingParameters
	}

	globalData.log = logger.New("payment")
	globalData.log.Info("starting…")

	globalData.exchangeToken = exchangeToken
	globalData.initialised = true
	return nil
}

// Finalise - close the balance table
func Finalise() error {
	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()
	globalData.initialised = false
	return nil
}

// ExchangeToken - the configured token symbol
func ExchangeToken() string {
	globalData.Lock()
	defer globalData.Unlock()
	return globalData.exchangeToken
}

// Get - the payments implementation backed by the storage pool
func Get() Payments {
	return localPayments{}
}

// Deposit - credit an account
func Deposit(account string, amount uint64) error {
	if 0 == amount {
		return fault.InvalidAmount
	}

	globalData.Lock()
	defer globalData.Unlock()

	balance, _ := storage.Pool.Balances.GetN([]byte(account))
	storage.Pool.Balances.PutN([]byte(account), balance+amount)
	return nil
}

// Withdraw - debit an account
func Withdraw(account string, amount uint64) error {
	if 0 == amount {
		return fault.InvalidAmount
	}

	globalData.Lock()
	defer globalData.Unlock()

	return debit(account, amount)
}

// Balance - current balance of an account
func Balance(account string) uint64 {
	globalData.Lock()
	defer globalData.Unlock()

	balance, _ := storage.Pool.Balances.GetN([]byte(account))
	return balance
}

// ValidateIncomingPayment - part of the Payments interface
func (localPayments) ValidateIncomingPayment(payer string, token string, amount uint64) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}
	if token != globalData.exchangeToken {
		return fault.WrongExchangeToken
	}
	if 0 == amount {
		return fault.WrongPaymentAmount
	}
	return debit(payer, amount)
}

// TransferOut - part of the Payments interface
func (localPayments) TransferOut(token string, recipient string, amount uint64) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}
	if token != globalData.exchangeToken {
		return fault.WrongExchangeToken
	}
	if 0 == amount {
		// nothing owed
		return nil
	}

	balance, _ := storage.Pool.Balances.GetN([]byte(recipient))
	storage.Pool.Balances.PutN([]byte(recipient), balance+amount)

	globalData.log.Debugf("transfer out: %s amount: %d", recipient, amount)
	return nil
}

// Balance - part of the Payments interface
func (localPayments) Balance(account string) uint64 {
	return Balance(account)
}

// caller must hold the lock
func debit(account string, amount uint64) error {
	balance, _ := storage.Pool.Balances.GetN([]byte(account))
	if balance < amount {
		return fault.InsufficientFunds
	}
	storage.Pool.Balances.PutN([]byte(account), balance-amount)
	return nil
}
