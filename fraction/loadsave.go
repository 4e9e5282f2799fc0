// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Fractiond Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fraction

// SavedLedger - serialisable snapshot of a ledger
type SavedLedger struct {
	Epoch    uint64            `json:"epoch"`
	Balances map[string]uint64 `json:"balances"`
}

// Save - snapshot the ledger for checkpointing
func (ledger *Ledger) Save() SavedLedger {
	return SavedLedger{
		Epoch:    ledger.epoch,
		Balances: ledger.Holders(),
	}
}

// RestoreLedger - rebuild a ledger from a snapshot
//
// transfer hooks are not restored and must be registered again
func RestoreLedger(saved SavedLedger) *Ledger {
	ledger := NewLedger(saved.Epoch)
	for account, balance := range saved.Balances {
		ledger.balances[account] = balance
		ledger.totalSupply += balance
	}
	return ledger
}
