// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Fractiond Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package auction

import (
	"github.com/fractiond/fractiond/constants"
	"github.com/fractiond/fractiond/event"
	"github.com/fractiond/fractiond/fault"
)

// VoteToStartAuction - lock fractions to force an auction
//
// the requested amount is capped to the headroom left under the
// fraction denominator; crossing the unlock threshold starts the
// auction provided a bid already exists
func VoteToStartAuction(actor string, assetId uint64, amount uint64) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	pool, rec, err := currentRecordLocked(assetId)
	if nil != err {
		return err
	}

	switch rec.State {
	case StateNotStarted:
	case StateOngoing:
		return fault.AuctionOngoing
	case StateReserved:
		return fault.AuctionReserved
	default:
		return fault.AuctionEnded
	}

	if 0 == amount {
		return fault.InvalidAmount
	}
	if actor == rec.MaxBidder {
		return fault.MaxBidderCannotVote
	}

	denominator := denominatorLocked(pool, rec)
	committed := rec.Votes.Total() + rec.LockedFractions
	if committed >= denominator {
		return fault.NoFractionsAvailable
	}

	headroom := denominator - committed
	if amount > headroom {
		amount = headroom
	}

	// threshold crossing starts the auction, but never without a bid
	// to anchor the price; checked up front so a doomed call locks
	// nothing
	crossing := (rec.Votes.Total()+amount)*constants.BasisPoints >=
		denominator*pool.unlockThresholdBps
	if crossing && "" == rec.MaxBidder {
		return fault.NoBids
	}

	err = pool.ledger.Transfer(actor, escrowAccount(pool.epoch), amount)
	if nil != err {
		return err
	}
	rec.Votes.Lock(actor, amount)

	event.Send(event.Message{
		Kind:      event.VoteLocked,
		Epoch:     rec.Epoch,
		AssetId:   assetId,
		Account:   actor,
		Fractions: amount,
	})

	globalData.log.Infof("vote asset: %d holder: %s locked: %d total: %d",
		assetId, actor, amount, rec.Votes.Total())

	if crossing {
		return startLocked(pool, rec, timeNow())
	}
	return nil
}

// RemoveVoteToStartAuction - release previously locked vote fractions
//
// blocked once the auction is ongoing or later
func RemoveVoteToStartAuction(actor string, assetId uint64, amount uint64) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	pool, rec, err := currentRecordLocked(assetId)
	if nil != err {
		return err
	}

	if StateNotStarted != rec.State {
		return fault.AuctionOngoing
	}
	if 0 == amount {
		return fault.InvalidAmount
	}

	locked := rec.Votes.LockedBy(actor)
	if locked < amount {
		return fault.NotEnoughLockedVotes
	}

	removed := rec.Votes.Strip(actor, locked-amount)
	err = pool.ledger.Transfer(escrowAccount(pool.epoch), actor, removed)
	if nil != err {
		return err
	}

	event.Send(event.Message{
		Kind:      event.VoteUnlocked,
		Epoch:     rec.Epoch,
		AssetId:   assetId,
		Account:   actor,
		Fractions: removed,
	})
	return nil
}
