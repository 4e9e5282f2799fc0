// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Fractiond Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package auction

import (
	"time"

	"github.com/fractiond/fractiond/event"
	"github.com/fractiond/fractiond/fault"
)

// StartAuction - begin a timed auction once the existing top bid
// meets the exit price; callable by anyone
func StartAuction(actor string, assetId uint64) error {
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

	if "" == rec.MaxBidder {
		return fault.NoBids
	}
	if rec.MaxBid < pool.exitPrice {
		return fault.BidBelowExitPrice
	}

	err = startLocked(pool, rec, timeNow())
	if nil != err {
		return err
	}

	globalData.log.Infof("auction started by: %s asset: %d", actor, assetId)
	return nil
}

// transition a record to Ongoing
//
// freezes the fraction denominator, settles with the vault and moves
// the asset's share from liquid to pending
// caller must hold the engine lock
func startLocked(pool *epochPool, rec *Record, now time.Time) error {
	totalFractions := pool.liquidSupplyLocked() / pool.nftCount
	end := now.Add(pool.auctionDuration)

	released, err := globalData.handles.Vault.ReleaseAtAuctionStart(rec.AssetId, end)
	if nil != err {
		return err
	}

	rec.State = StateOngoing
	rec.TotalFractions = totalFractions
	rec.Timer = end
	rec.LockedProceeds = released

	pool.pendingSupply += totalFractions
	pool.nftCount -= 1

	event.Send(event.Message{
		Kind:      event.AuctionStarted,
		Epoch:     rec.Epoch,
		AssetId:   rec.AssetId,
		Account:   rec.MaxBidder,
		Amount:    rec.MaxBid,
		Fractions: totalFractions,
	})

	globalData.log.Infof("auction ongoing asset: %d denominator: %d proceeds: %d end: %s",
		rec.AssetId, totalFractions, released, end.Format(time.RFC3339))
	return nil
}

// transition a record to Reserved, starting it first if necessary
// caller must hold the engine lock
func reserveLocked(pool *epochPool, rec *Record, now time.Time) error {
	if StateNotStarted == rec.State {
		err := startLocked(pool, rec, now)
		if nil != err {
			return err
		}
	}

	rec.State = StateReserved

	event.Send(event.Message{
		Kind:      event.AuctionReserved,
		Epoch:     rec.Epoch,
		AssetId:   rec.AssetId,
		Account:   rec.MaxBidder,
		Amount:    rec.MaxBid,
		Fractions: rec.LockedFractions,
	})
	return nil
}
