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

// Bid - place a bid on an asset
//
// the bidder may attach fractions; attached fractions and the
// bidder's earlier vote-locks reduce the payment owed since they
// already represent an economic claim on the asset
func Bid(actor string, assetId uint64, price uint64, fractionsToAdd uint64) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	pool, rec, err := currentRecordLocked(assetId)
	if nil != err {
		return err
	}

	now := timeNow()

	switch rec.State {
	case StateNotStarted:
	case StateOngoing:
		if now.After(rec.Timer) {
			return fault.AuctionEnded
		}
	case StateReserved:
		return fault.AuctionReserved
	default:
		return fault.AuctionEnded
	}

	// strict minimum increment over the previous bid, the +1 keeps
	// the inequality strict when rounding collapses it
	if "" == rec.MaxBidder {
		if 0 == price {
			return fault.InvalidBid
		}
	} else {
		minimumNext := rec.MaxBid * (constants.BasisPoints + globalData.minimumIncrementBps) /
			constants.BasisPoints
		if minimumNext <= rec.MaxBid {
			minimumNext = rec.MaxBid + 1
		}
		if price < minimumNext {
			return fault.InvalidBid
		}
	}

	denominator := denominatorLocked(pool, rec)
	voteLocks := rec.Votes.LockedBy(actor)

	// full coverage caps the attached fractions and reserves the slot
	reserved := false
	totalLocked := fractionsToAdd + voteLocks
	if totalLocked >= denominator {
		fractionsToAdd = denominator - voteLocks
		totalLocked = denominator
		reserved = true
	}

	bidAmount := (denominator - totalLocked) * price / denominator

	// all balances validated before any payout so a failed bid
	// leaves no partial effects
	availableFractions := pool.ledger.BalanceOf(actor)
	availableFunds := globalData.handles.Payments.Balance(actor)
	if actor == rec.MaxBidder {
		availableFractions += rec.LockedFractions
		availableFunds += rec.LockedBidAmount
	}
	if availableFractions < fractionsToAdd {
		return fault.InsufficientBalance
	}
	if availableFunds < bidAmount {
		return fault.InsufficientFunds
	}

	// previous bidder is made whole before the new bid is accepted
	err = payoutBidderLocked(pool, rec)
	if nil != err {
		return err
	}

	if bidAmount > 0 {
		err = globalData.handles.Payments.ValidateIncomingPayment(actor, globalData.exchangeToken, bidAmount)
		if nil != err {
			return err
		}
	}

	if fractionsToAdd > 0 {
		err = pool.ledger.Transfer(actor, escrowAccount(pool.epoch), fractionsToAdd)
		if nil != err {
			return err
		}
	}

	rec.MaxBid = price
	rec.MaxBidder = actor
	rec.LockedFractions = fractionsToAdd
	rec.LockedBidAmount = bidAmount

	switch {
	case reserved:
		err = reserveLocked(pool, rec, now)
		if nil != err {
			return err
		}
	case StateNotStarted == rec.State && price >= pool.exitPrice:
		err = startLocked(pool, rec, now)
		if nil != err {
			return err
		}
	case StateNotStarted == rec.State:
		rec.Timer = now.Add(pool.topBidLockTime)
	}

	event.Send(event.Message{
		Kind:      event.BidPlaced,
		Epoch:     rec.Epoch,
		AssetId:   assetId,
		Account:   actor,
		Amount:    price,
		Fractions: fractionsToAdd,
	})

	globalData.log.Infof("bid asset: %d price: %d payment: %d bidder: %s",
		assetId, price, bidAmount, actor)
	return nil
}

// RemoveBid - withdraw the top bid
//
// only the max bidder, only while the auction has not started and
// only after the top bid lock has expired
func RemoveBid(actor string, assetId uint64) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	pool, rec, err := currentRecordLocked(assetId)
	if nil != err {
		return err
	}

	if "" == rec.MaxBidder {
		return fault.NoBids
	}
	if actor != rec.MaxBidder {
		return fault.NotMaxBidder
	}
	if StateNotStarted != rec.State || timeNow().Before(rec.Timer) {
		return fault.BidRemovalNotAllowed
	}

	err = payoutBidderLocked(pool, rec)
	if nil != err {
		return err
	}

	rec.MaxBid = 0
	rec.MaxBidder = ""
	rec.LockedFractions = 0
	rec.LockedBidAmount = 0

	event.Send(event.Message{
		Kind:    event.BidRemoved,
		Epoch:   rec.Epoch,
		AssetId: assetId,
		Account: actor,
	})

	globalData.log.Infof("bid removed asset: %d bidder: %s", assetId, actor)
	return nil
}

// return the current max bidder's escrowed payment and bid-locked
// fractions; vote-locks stay in place
// caller must hold the engine lock
func payoutBidderLocked(pool *epochPool, rec *Record) error {
	if "" == rec.MaxBidder {
		return nil
	}

	if rec.LockedBidAmount > 0 {
		err := globalData.handles.Payments.TransferOut(
			globalData.exchangeToken, rec.MaxBidder, rec.LockedBidAmount)
		if nil != err {
			return err
		}
	}

	if rec.LockedFractions > 0 {
		err := pool.ledger.Transfer(escrowAccount(pool.epoch), rec.MaxBidder, rec.LockedFractions)
		if nil != err {
			return err
		}
	}
	return nil
}
