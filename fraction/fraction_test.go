// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Fractiond Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fraction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fractiond/fractiond/fault"
	"github.com/fractiond/fractiond/fraction"
)

const (
	alice = "alice"
	bob   = "bob"
)

func TestMintAndBalance(t *testing.T) {
	ledger := fraction.NewLedger(1)

	err := ledger.Mint(alice, 100)
	assert.Nil(t, err, "mint error")

	assert.Equal(t, uint64(100), ledger.BalanceOf(alice), "wrong balance")
	assert.Equal(t, uint64(100), ledger.TotalSupply(), "wrong total supply")

	err = ledger.Mint(alice, 0)
	assert.Equal(t, fault.InvalidFractionAmount, err, "zero mint accepted")
}

func TestTransfer(t *testing.T) {
	ledger := fraction.NewLedger(1)
	_ = ledger.Mint(alice, 100)

	err := ledger.Transfer(alice, bob, 40)
	assert.Nil(t, err, "transfer error")
	assert.Equal(t, uint64(60), ledger.BalanceOf(alice), "wrong sender balance")
	assert.Equal(t, uint64(40), ledger.BalanceOf(bob), "wrong receiver balance")
	assert.Equal(t, uint64(100), ledger.TotalSupply(), "total supply changed")

	err = ledger.Transfer(alice, bob, 61)
	assert.Equal(t, fault.InsufficientBalance, err, "overdraft accepted")
}

func TestBurn(t *testing.T) {
	ledger := fraction.NewLedger(1)
	_ = ledger.Mint(alice, 100)

	err := ledger.Burn(alice, 100)
	assert.Nil(t, err, "burn error")
	assert.Equal(t, uint64(0), ledger.TotalSupply(), "supply not reduced")

	err = ledger.Burn(alice, 1)
	assert.Equal(t, fault.InsufficientBalance, err, "burn from empty account accepted")
}

func TestConservation(t *testing.T) {
	ledger := fraction.NewLedger(1)
	_ = ledger.Mint(alice, 75)
	_ = ledger.Mint(bob, 25)
	_ = ledger.Transfer(alice, bob, 10)
	_ = ledger.Burn(bob, 5)

	sum := uint64(0)
	for _, balance := range ledger.Holders() {
		sum += balance
	}
	assert.Equal(t, ledger.TotalSupply(), sum, "balances do not sum to total supply")
}

func TestHoldersDropsEmptied(t *testing.T) {
	ledger := fraction.NewLedger(1)
	_ = ledger.Mint(alice, 10)
	_ = ledger.Transfer(alice, bob, 10)

	holders := ledger.Holders()
	_, present := holders[alice]
	assert.False(t, present, "emptied account still listed")
}

func TestTransferHook(t *testing.T) {
	ledger := fraction.NewLedger(1)
	_ = ledger.Mint(alice, 10)

	hookFrom := ""
	hookRemaining := uint64(0)
	ledger.RegisterTransferHook(func(from string, to string, remaining uint64) {
		hookFrom = from
		hookRemaining = remaining
	})

	_ = ledger.Transfer(alice, bob, 7)
	assert.Equal(t, alice, hookFrom, "hook not called with sender")
	assert.Equal(t, uint64(3), hookRemaining, "hook not called with remaining balance")
}

func TestBurnFiresTransferHook(t *testing.T) {
	ledger := fraction.NewLedger(1)
	_ = ledger.Mint(alice, 100)

	calls := 0
	hookFrom := ""
	hookTo := "unset"
	hookRemaining := uint64(0)
	ledger.RegisterTransferHook(func(from string, to string, remaining uint64) {
		calls++
		hookFrom = from
		hookTo = to
		hookRemaining = remaining
	})

	err := ledger.Burn(alice, 60)
	assert.Nil(t, err, "burn error")
	assert.Equal(t, 1, calls, "hook not called on burn")
	assert.Equal(t, alice, hookFrom, "hook not called with burner")
	assert.Equal(t, "", hookTo, "burn must report an empty to account")
	assert.Equal(t, uint64(40), hookRemaining, "hook not called with remaining balance")

	// a failed burn must not fire the hook
	err = ledger.Burn(alice, 41)
	assert.Equal(t, fault.InsufficientBalance, err, "overdraft burn accepted")
	assert.Equal(t, 1, calls, "hook called on failed burn")
}

func TestSaveRestore(t *testing.T) {
	ledger := fraction.NewLedger(3)
	_ = ledger.Mint(alice, 60)
	_ = ledger.Mint(bob, 40)

	restored := fraction.RestoreLedger(ledger.Save())
	assert.Equal(t, uint64(3), restored.Epoch(), "wrong epoch")
	assert.Equal(t, uint64(100), restored.TotalSupply(), "wrong supply")
	assert.Equal(t, uint64(60), restored.BalanceOf(alice), "wrong balance")
}
