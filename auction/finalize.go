// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Fractiond Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package auction

import (
	"github.com/fractiond/fractiond/event"
	"github.com/fractiond/fractiond/fault"
)

// Redeem - the max bidder takes the underlying asset
//
// finalizes the auction first if necessary
func Redeem(actor string, assetId uint64) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	pool, rec, err := currentRecordLocked(assetId)
	if nil != err {
		return err
	}

	err = finalizeLocked(pool, rec)
	if nil != err {
		return err
	}

	if StateRedeemed == rec.State {
		return fault.AlreadyRedeemed
	}
	if actor != rec.MaxBidder {
		return fault.NotMaxBidder
	}

	err = globalData.handles.TransferAsset(assetId, actor)
	if nil != err {
		return err
	}
	rec.State = StateRedeemed

	event.Send(event.Message{
		Kind:    event.AuctionRedeemed,
		Epoch:   rec.Epoch,
		AssetId: assetId,
		Account: actor,
		Amount:  rec.MaxBid,
	})

	globalData.log.Infof("redeemed asset: %d by: %s", assetId, actor)
	return nil
}

// settle a finished auction, idempotent
//
// burns the winner's locked fractions, settles vault debt or release
// and splits the remaining proceeds between the voters' locked pool
// and the epoch's unrestricted pool
// caller must hold the engine lock
func finalizeLocked(pool *epochPool, rec *Record) error {
	switch rec.State {
	case StateFinalized, StateRedeemed:
		return nil
	case StateNotStarted:
		return fault.AuctionNotStarted
	case StateOngoing:
		if timeNow().Before(rec.Timer) {
			return fault.AuctionOngoing
		}
	case StateReserved:
		// finalizes immediately, regardless of timer
	}

	assetId := rec.AssetId
	denominator := rec.TotalFractions
	escrow := escrowAccount(pool.epoch)

	// the winner's vote-locks are theirs to lose: they bought
	// themselves out, so those fractions burn with the bid-locks
	winnerVotes := rec.Votes.Unlock(rec.MaxBidder)
	winnerLocked := rec.LockedFractions + winnerVotes

	if winnerLocked > 0 {
		err := pool.ledger.Burn(escrow, winnerLocked)
		if nil != err {
			return err
		}
	}

	proceeds := rec.LockedBidAmount

	if rec.LockedProceeds < 0 {
		// vault debt is paid first, capped at available proceeds
		debt := uint64(-rec.LockedProceeds)
		repay := debt
		if repay > proceeds {
			repay = proceeds
		}
		if repay > 0 {
			err := globalData.handles.Vault.RepayDebt(assetId, repay)
			if nil != err {
				return err
			}
			proceeds -= repay
		}
	} else if rec.LockedProceeds > 0 {
		// released escrow: the winner receives their locked share,
		// the remainder joins the proceeds
		released := uint64(rec.LockedProceeds)
		winnerShare := released * winnerLocked / denominator
		if winnerShare > 0 {
			err := globalData.handles.Payments.TransferOut(
				globalData.exchangeToken, rec.MaxBidder, winnerShare)
			if nil != err {
				return err
			}
		}
		proceeds += released - winnerShare
	}

	otherVotes := rec.Votes.Total()
	remaining := denominator - winnerLocked

	lockedAmount := uint64(0)
	if remaining > 0 && otherVotes > 0 {
		lockedAmount = proceeds * otherVotes / remaining
	}

	rec.FinalLockedAmount = lockedAmount
	rec.FinalLockedSupply = otherVotes

	pool.pendingSupply -= denominator
	pool.lockedSupply += otherVotes
	pool.unrestrictedSupply += remaining - otherVotes
	pool.unrestrictedAmount += proceeds - lockedAmount

	rec.State = StateFinalized

	err := globalData.handles.SetFractionalised(assetId, false)
	if nil != err {
		return err
	}

	event.Send(event.Message{
		Kind:      event.AuctionFinalized,
		Epoch:     rec.Epoch,
		AssetId:   assetId,
		Account:   rec.MaxBidder,
		Amount:    proceeds,
		Fractions: denominator,
	})

	globalData.log.Infof("finalized asset: %d proceeds: %d locked pool: %d voters: %d",
		assetId, proceeds, lockedAmount, otherVotes)
	return nil
}
