// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Fractiond Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package auction

import (
	"fmt"
	"time"

	"github.com/fractiond/fractiond/constants"
	"github.com/fractiond/fractiond/event"
	"github.com/fractiond/fractiond/fault"
	"github.com/fractiond/fractiond/fraction"
	"github.com/fractiond/fractiond/votes"
)

// EpochParameters - fixed parameters of one fractionalisation round
type EpochParameters struct {
	FractionsPerAsset  uint64
	ExitPrice          uint64
	UnlockThresholdBps uint64
	AuctionDuration    time.Duration
	TopBidLockTime     time.Duration
}

// per-epoch counters and the epoch's fraction ledger
type epochPool struct {
	epoch uint64

	nftCount          uint64
	fractionsPerAsset uint64

	unrestrictedSupply uint64
	unrestrictedAmount uint64
	lockedSupply       uint64
	pendingSupply      uint64

	exitPrice          uint64
	unlockThresholdBps uint64
	auctionDuration    time.Duration
	topBidLockTime     time.Duration

	ledger *fraction.Ledger
}

// account holding all bid- and vote-locked fractions of an epoch
func escrowAccount(epoch uint64) string {
	return fmt.Sprintf("escrow.epoch.%d", epoch)
}

// fractions still backing un-auctioned assets
// caller must hold the engine lock
func (pool *epochPool) liquidSupplyLocked() uint64 {
	return pool.ledger.TotalSupply() -
		pool.unrestrictedSupply -
		pool.lockedSupply -
		pool.pendingSupply
}

// BeginEpoch - open the next fractionalisation round
//
// only allowed when the previous round is fully settled: no assets
// outstanding, nothing pending and no unclaimed voter pools
func BeginEpoch(params EpochParameters) (uint64, error) {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return 0, fault.NotInitialised
	}

	if 0 == params.FractionsPerAsset {
		return 0, fault.InvalidFractionAmount
	}
	if 0 == params.ExitPrice {
		return 0, fault.InvalidExitPrice
	}
	if 0 == params.UnlockThresholdBps || params.UnlockThresholdBps > constants.BasisPoints {
		return 0, fault.InvalidUnlockThreshold
	}
	if params.AuctionDuration <= 0 || params.TopBidLockTime <= 0 {
		return 0, fault.InvalidDuration
	}

	if current, ok := globalData.epochs[globalData.currentEpoch]; ok {
		if current.nftCount > 0 || current.pendingSupply > 0 || current.lockedSupply > 0 {
			return 0, fault.EpochNotSettled
		}
	}

	globalData.currentEpoch += 1
	epoch := globalData.currentEpoch

	globalData.epochs[epoch] = &epochPool{
		epoch:              epoch,
		fractionsPerAsset:  params.FractionsPerAsset,
		exitPrice:          params.ExitPrice,
		unlockThresholdBps: params.UnlockThresholdBps,
		auctionDuration:    params.AuctionDuration,
		topBidLockTime:     params.TopBidLockTime,
		ledger:             fraction.NewLedger(epoch),
	}

	globalData.log.Infof("epoch: %d  fractions per asset: %d  exit price: %d",
		epoch, params.FractionsPerAsset, params.ExitPrice)
	return epoch, nil
}

// Fractionalise - lock one asset into an epoch
//
// appends a fresh auction record to the asset's slot and mints the
// per-asset fraction amount to the owner
func Fractionalise(epoch uint64, assetId uint64, owner string) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	pool, ok := globalData.epochs[epoch]
	if !ok {
		return fault.EpochNotFound
	}

	list := globalData.records[assetId]
	if n := len(list); n > 0 && StateRedeemed != list[n-1].State {
		return fault.AlreadyFractionalised
	}

	rec := &Record{
		Epoch:   epoch,
		AssetId: assetId,
		Index:   len(list),
		State:   StateNotStarted,
		Votes:   votes.NewTracker(),
	}
	globalData.records[assetId] = append(list, rec)
	pool.nftCount += 1

	err := pool.ledger.Mint(owner, pool.fractionsPerAsset)
	if nil != err {
		return err
	}

	event.Send(event.Message{
		Kind:      event.Fractionalised,
		Epoch:     epoch,
		AssetId:   assetId,
		Account:   owner,
		Fractions: pool.fractionsPerAsset,
	})

	globalData.log.Infof("fractionalised asset: %d epoch: %d owner: %s", assetId, epoch, owner)
	return nil
}

// MintAdditional - increase the per-asset fraction denominator
//
// the amount must divide evenly over the outstanding assets so the
// fractions-per-asset ratio stays exact
func MintAdditional(epoch uint64, to string, amount uint64) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	pool, ok := globalData.epochs[epoch]
	if !ok {
		return fault.EpochNotFound
	}
	if 0 == amount {
		return fault.InvalidAmount
	}
	if 0 == pool.nftCount {
		return fault.TokenNotFractionalised
	}
	if 0 != amount%pool.nftCount {
		return fault.InvalidFractionAmount
	}

	pool.fractionsPerAsset += amount / pool.nftCount
	return pool.ledger.Mint(to, amount)
}
