// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Fractiond Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package votes - tally of fraction-weighted locks
//
// used both for auction start votes and for governance ballots; a
// vote is simply an amount of fractions locked by an account
package votes

import (
	"sync"
)

// Tracker - per-auction or per-proposal vote tally
type Tracker struct {
	lock   sync.RWMutex
	total  uint64
	locked map[string]uint64
}

// NewTracker - create an empty tally
func NewTracker() *Tracker {
	return &Tracker{
		locked: make(map[string]uint64),
	}
}

// Lock - add locked fractions for an account
func (tracker *Tracker) Lock(account string, amount uint64) {
	if 0 == amount {
		return
	}
	tracker.lock.Lock()
	tracker.locked[account] += amount
	tracker.total += amount
	tracker.lock.Unlock()
}

// Unlock - remove all locked fractions of an account
// returns the amount that was locked
func (tracker *Tracker) Unlock(account string) uint64 {
	tracker.lock.Lock()
	defer tracker.lock.Unlock()

	amount := tracker.locked[account]
	if 0 != amount {
		delete(tracker.locked, account)
		tracker.total -= amount
	}
	return amount
}

// Strip - reduce an account's lock down to a limit
// returns the amount removed
//
// used when fractions backing a ballot are transferred away
func (tracker *Tracker) Strip(account string, limit uint64) uint64 {
	tracker.lock.Lock()
	defer tracker.lock.Unlock()

	amount := tracker.locked[account]
	if amount <= limit {
		return 0
	}

	removed := amount - limit
	tracker.total -= removed
	if 0 == limit {
		delete(tracker.locked, account)
	} else {
		tracker.locked[account] = limit
	}
	return removed
}

// LockedBy - fractions locked by one account
func (tracker *Tracker) LockedBy(account string) uint64 {
	tracker.lock.RLock()
	defer tracker.lock.RUnlock()
	return tracker.locked[account]
}

// Total - sum of all locked fractions
func (tracker *Tracker) Total() uint64 {
	tracker.lock.RLock()
	defer tracker.lock.RUnlock()
	return tracker.total
}

// Holders - snapshot of all accounts with locked fractions
func (tracker *Tracker) Holders() map[string]uint64 {
	tracker.lock.RLock()
	defer tracker.lock.RUnlock()

	holders := make(map[string]uint64, len(tracker.locked))
	for account, amount := range tracker.locked {
		holders[account] = amount
	}
	return holders
}

// SavedTracker - serialisable snapshot of a tally
type SavedTracker struct {
	Locked map[string]uint64 `json:"locked"`
}

// Save - snapshot the tally for checkpointing
func (tracker *Tracker) Save() SavedTracker {
	return SavedTracker{
		Locked: tracker.Holders(),
	}
}

// RestoreTracker - rebuild a tally from a snapshot
func RestoreTracker(saved SavedTracker) *Tracker {
	tracker := NewTracker()
	for account, amount := range saved.Locked {
		tracker.locked[account] = amount
		tracker.total += amount
	}
	return tracker
}
