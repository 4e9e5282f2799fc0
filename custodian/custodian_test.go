// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Fractiond Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package custodian_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fractiond/fractiond/custodian"
	"github.com/fractiond/fractiond/fault"
	"github.com/fractiond/fractiond/rpc/fixtures"
	"github.com/fractiond/fractiond/storage"
)

const databaseFileName = "custodian-test.leveldb"

func setup(t *testing.T) {
	fixtures.SetupTestLogger()
	os.RemoveAll(databaseFileName)
	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	err = custodian.Initialise()
	if nil != err {
		t.Fatalf("custodian initialise error: %s", err)
	}
}

func teardown(t *testing.T) {
	_ = custodian.Finalise()
	storage.Finalise()
	os.RemoveAll(databaseFileName)
	fixtures.TeardownTestLogger()
}

func TestReleaseWithEscrow(t *testing.T) {
	setup(t)
	defer teardown(t)

	_ = custodian.Deposit(1, 100)
	_ = custodian.ChargeFee(1, 30)

	released, err := custodian.Get().ReleaseAtAuctionStart(1, time.Now())
	assert.Nil(t, err, "release error")
	assert.Equal(t, int64(70), released, "wrong released amount")

	escrow, debt := custodian.Balance(1)
	assert.Equal(t, uint64(0), escrow, "escrow not cleared")
	assert.Equal(t, uint64(0), debt, "debt not cleared")
}

func TestReleaseWithDebt(t *testing.T) {
	setup(t)
	defer teardown(t)

	_ = custodian.Deposit(2, 20)
	_ = custodian.ChargeFee(2, 70)

	released, err := custodian.Get().ReleaseAtAuctionStart(2, time.Now())
	assert.Nil(t, err, "release error")
	assert.Equal(t, int64(-50), released, "wrong debt amount")

	err = custodian.Get().RepayDebt(2, 60)
	assert.Equal(t, fault.InvalidAmount, err, "over repayment accepted")

	err = custodian.Get().RepayDebt(2, 30)
	assert.Nil(t, err, "repay error")

	_, debt := custodian.Balance(2)
	assert.Equal(t, uint64(20), debt, "wrong remaining debt")
}

func TestZeroAmounts(t *testing.T) {
	setup(t)
	defer teardown(t)

	err := custodian.Deposit(3, 0)
	assert.Equal(t, fault.InvalidAmount, err, "zero deposit accepted")

	err = custodian.ChargeFee(3, 0)
	assert.Equal(t, fault.InvalidAmount, err, "zero fee accepted")
}
