// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Fractiond Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fraction - per-epoch fungible balance ledger
//
// each fractionalisation epoch carries its own ledger so that
// balances from an ended epoch stay claimable while a new epoch
// accumulates independently
package fraction

import (
	"sync"

	"github.com/fractiond/fractiond/fault"
)

// TransferHook - called after a successful transfer or burn while
// the ledger lock is still held; hooks must not call back into the
// ledger
//
// remaining is the sender's post-operation balance, so governance
// ballots can be stripped down to fractions still actually held; a
// burn reports an empty to account
type TransferHook func(from string, to string, remaining uint64)

// Ledger - balances of one epoch
//
// accounts are keyed by their base58 representation
type Ledger struct {
	sync.RWMutex

	epoch       uint64
	totalSupply uint64
	balances    map[string]uint64
	hooks       []TransferHook
}

// NewLedger - create an empty ledger for an epoch
func NewLedger(epoch uint64) *Ledger {
	return &Ledger{
		epoch:    epoch,
		balances: make(map[string]uint64),
	}
}

// Epoch - the epoch this ledger belongs to
func (ledger *Ledger) Epoch() uint64 {
	return ledger.epoch
}

// RegisterTransferHook - add a hook run on every transfer and burn
func (ledger *Ledger) RegisterTransferHook(hook TransferHook) {
	ledger.Lock()
	ledger.hooks = append(ledger.hooks, hook)
	ledger.Unlock()
}

// Mint - create new fractions owned by an account
func (ledger *Ledger) Mint(to string, amount uint64) error {
	if 0 == amount {
		return fault.InvalidFractionAmount
	}

	ledger.Lock()
	defer ledger.Unlock()

	ledger.balances[to] += amount
	ledger.totalSupply += amount
	return nil
}

// Burn - destroy fractions owned by an account
func (ledger *Ledger) Burn(from string, amount uint64) error {
	if 0 == amount {
		return fault.InvalidFractionAmount
	}

	ledger.Lock()
	defer ledger.Unlock()

	balance := ledger.balances[from]
	if balance < amount {
		return fault.InsufficientBalance
	}

	ledger.setBalance(from, balance-amount)
	ledger.totalSupply -= amount

	remaining := ledger.balances[from]
	for _, hook := range ledger.hooks {
		hook(from, "", remaining)
	}
	return nil
}

// Transfer - move fractions between accounts
func (ledger *Ledger) Transfer(from string, to string, amount uint64) error {
	if 0 == amount {
		return fault.InvalidFractionAmount
	}

	ledger.Lock()
	defer ledger.Unlock()

	balance := ledger.balances[from]
	if balance < amount {
		return fault.InsufficientBalance
	}

	ledger.setBalance(from, balance-amount)
	ledger.balances[to] += amount

	remaining := ledger.balances[from]
	for _, hook := range ledger.hooks {
		hook(from, to, remaining)
	}
	return nil
}

// BalanceOf - current balance of an account
func (ledger *Ledger) BalanceOf(account string) uint64 {
	ledger.RLock()
	defer ledger.RUnlock()
	return ledger.balances[account]
}

// TotalSupply - sum of all balances
func (ledger *Ledger) TotalSupply() uint64 {
	ledger.RLock()
	defer ledger.RUnlock()
	return ledger.totalSupply
}

// Holders - snapshot of all non-zero balances
func (ledger *Ledger) Holders() map[string]uint64 {
	ledger.RLock()
	defer ledger.RUnlock()

	holders := make(map[string]uint64, len(ledger.balances))
	for account, balance := range ledger.balances {
		holders[account] = balance
	}
	return holders
}

// zero balances are removed so Holders never returns empty accounts
func (ledger *Ledger) setBalance(account string, balance uint64) {
	if 0 == balance {
		delete(ledger.balances, account)
	} else {
		ledger.balances[account] = balance
	}
}
