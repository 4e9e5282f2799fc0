// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Fractiond Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package payment_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fractiond/fractiond/fault"
	"github.com/fractiond/fractiond/payment"
	"github.com/fractiond/fractiond/rpc/fixtures"
	"github.com/fractiond/fractiond/storage"
)

const (
	databaseFileName = "payment-test.leveldb"
	exchangeToken    = "USDT"
)

func setup(t *testing.T) {
	fixtures.SetupTestLogger()
	os.RemoveAll(databaseFileName)
	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	err = payment.Initialise(exchangeToken)
	if nil != err {
		t.Fatalf("payment initialise error: %s", err)
	}
}

func teardown(t *testing.T) {
	_ = payment.Finalise()
	storage.Finalise()
	os.RemoveAll(databaseFileName)
	fixtures.TeardownTestLogger()
}

func TestDepositWithdraw(t *testing.T) {
	setup(t)
	defer teardown(t)

	err := payment.Deposit("alice", 100)
	assert.Nil(t, err, "deposit error")
	assert.Equal(t, uint64(100), payment.Balance("alice"), "wrong balance")

	err = payment.Withdraw("alice", 150)
	assert.Equal(t, fault.InsufficientFunds, err, "overdraft accepted")

	err = payment.Withdraw("alice", 60)
	assert.Nil(t, err, "withdraw error")
	assert.Equal(t, uint64(40), payment.Balance("alice"), "wrong balance after withdraw")
}

func TestValidateIncomingPayment(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := payment.Get()
	_ = payment.Deposit("bob", 50)

	err := p.ValidateIncomingPayment("bob", "DOGE", 10)
	assert.Equal(t, fault.WrongExchangeToken, err, "wrong token accepted")

	err = p.ValidateIncomingPayment("bob", exchangeToken, 0)
	assert.Equal(t, fault.WrongPaymentAmount, err, "zero payment accepted")

	err = p.ValidateIncomingPayment("bob", exchangeToken, 60)
	assert.Equal(t, fault.InsufficientFunds, err, "unfunded payment accepted")

	err = p.ValidateIncomingPayment("bob", exchangeToken, 50)
	assert.Nil(t, err, "payment error")
	assert.Equal(t, uint64(0), payment.Balance("bob"), "payment not debited")
}

func TestTransferOut(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := payment.Get()

	err := p.TransferOut(exchangeToken, "carol", 30)
	assert.Nil(t, err, "transfer out error")
	assert.Equal(t, uint64(30), payment.Balance("carol"), "wrong credited balance")

	// a zero transfer is a no-op, not an error
	err = p.TransferOut(exchangeToken, "carol", 0)
	assert.Nil(t, err, "zero transfer rejected")
}
