// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Fractiond Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package auction

import (
	"time"

	"github.com/fractiond/fractiond/fault"
	"github.com/fractiond/fractiond/votes"
)

// State - auction lifecycle state of one record
type State byte

// states in lifecycle order
const (
	StateNotStarted State = iota
	StateOngoing
	StateReserved
	StateFinalized
	StateRedeemed
)

// String - printable auction state
func (state State) String() string {
	switch state {
	case StateNotStarted:
		return "NotStarted"
	case StateOngoing:
		return "Ongoing"
	case StateReserved:
		return "Reserved"
	case StateFinalized:
		return "Finalized"
	case StateRedeemed:
		return "Redeemed"
	default:
		return "*Unknown*"
	}
}

// Record - one auction instance for one asset slot
//
// Timer holds the top bid lock expiry while NotStarted and the
// auction end time once Ongoing
type Record struct {
	Epoch   uint64
	AssetId uint64
	Index   int
	State   State

	MaxBid          uint64
	MaxBidder       string
	LockedFractions uint64
	LockedBidAmount uint64
	Timer           time.Time

	// frozen fraction denominator, zero until the auction starts
	TotalFractions uint64

	Votes *votes.Tracker

	// custodian settlement at start: negative = debt owed to the vault
	LockedProceeds int64

	// proceeds earmarked for non-winning voters, set at finalize
	FinalLockedAmount uint64
	FinalLockedSupply uint64
}

// latest auction record of an asset slot
// caller must hold the engine lock
func currentRecordLocked(assetId uint64) (*epochPool, *Record, error) {
	list := globalData.records[assetId]
	if 0 == len(list) {
		return nil, nil, fault.TokenNotFractionalised
	}

	rec := list[len(list)-1]
	pool, ok := globalData.epochs[rec.Epoch]
	if !ok {
		return nil, nil, fault.EpochNotFound
	}
	return pool, rec, nil
}

// the fraction denominator that applies to a record
// caller must hold the engine lock
func denominatorLocked(pool *epochPool, rec *Record) uint64 {
	if rec.TotalFractions > 0 {
		return rec.TotalFractions
	}
	return pool.fractionsPerAsset
}
