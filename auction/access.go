// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Fractiond Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package auction

import (
	"time"

	"github.com/fractiond/fractiond/event"
	"github.com/fractiond/fractiond/fault"
	"github.com/fractiond/fractiond/fraction"
)

// Details - read-only view of one asset's current auction
type Details struct {
	Epoch           uint64    `json:"epoch"`
	Index           int       `json:"index"`
	State           string    `json:"state"`
	MaxBid          uint64    `json:"maxBid"`
	MaxBidder       string    `json:"maxBidder"`
	LockedFractions uint64    `json:"lockedFractions"`
	LockedBidAmount uint64    `json:"lockedBidAmount"`
	Timer           time.Time `json:"timer"`
	TotalFractions  uint64    `json:"totalFractions"`
	VotesTotal      uint64    `json:"votesTotal"`
	LockedProceeds  int64     `json:"lockedProceeds"`
	ExitPrice       uint64    `json:"exitPrice"`
}

// PoolInfo - read-only view of one epoch's counters
type PoolInfo struct {
	Epoch              uint64 `json:"epoch"`
	NftCount           uint64 `json:"nftCount"`
	FractionsPerAsset  uint64 `json:"fractionsPerAsset"`
	TotalSupply        uint64 `json:"totalSupply"`
	LiquidSupply       uint64 `json:"liquidSupply"`
	UnrestrictedSupply uint64 `json:"unrestrictedSupply"`
	UnrestrictedAmount uint64 `json:"unrestrictedAmount"`
	LockedSupply       uint64 `json:"lockedSupply"`
	PendingSupply      uint64 `json:"pendingSupply"`
	ExitPrice          uint64 `json:"exitPrice"`
	UnlockThresholdBps uint64 `json:"unlockThresholdBps"`
}

// AuctionDetails - current auction state of an asset
func AuctionDetails(assetId uint64) (Details, error) {
	globalData.Lock()
	defer globalData.Unlock()

	pool, rec, err := currentRecordLocked(assetId)
	if nil != err {
		return Details{}, err
	}

	return Details{
		Epoch:           rec.Epoch,
		Index:           rec.Index,
		State:           rec.State.String(),
		MaxBid:          rec.MaxBid,
		MaxBidder:       rec.MaxBidder,
		LockedFractions: rec.LockedFractions,
		LockedBidAmount: rec.LockedBidAmount,
		Timer:           rec.Timer,
		TotalFractions:  rec.TotalFractions,
		VotesTotal:      rec.Votes.Total(),
		LockedProceeds:  rec.LockedProceeds,
		ExitPrice:       pool.exitPrice,
	}, nil
}

// VotesOf - fractions a holder has vote-locked on an asset
func VotesOf(assetId uint64, holder string) (uint64, error) {
	globalData.Lock()
	defer globalData.Unlock()

	_, rec, err := currentRecordLocked(assetId)
	if nil != err {
		return 0, err
	}
	return rec.Votes.LockedBy(holder), nil
}

// PoolParameters - counters and parameters of an epoch
func PoolParameters(epoch uint64) (PoolInfo, error) {
	globalData.Lock()
	defer globalData.Unlock()

	pool, ok := globalData.epochs[epoch]
	if !ok {
		return PoolInfo{}, fault.EpochNotFound
	}

	return PoolInfo{
		Epoch:              pool.epoch,
		NftCount:           pool.nftCount,
		FractionsPerAsset:  pool.fractionsPerAsset,
		TotalSupply:        pool.ledger.TotalSupply(),
		LiquidSupply:       pool.liquidSupplyLocked(),
		UnrestrictedSupply: pool.unrestrictedSupply,
		UnrestrictedAmount: pool.unrestrictedAmount,
		LockedSupply:       pool.lockedSupply,
		PendingSupply:      pool.pendingSupply,
		ExitPrice:          pool.exitPrice,
		UnlockThresholdBps: pool.unlockThresholdBps,
	}, nil
}

// CurrentEpoch - the newest epoch, zero before the first mint
func CurrentEpoch() uint64 {
	globalData.Lock()
	defer globalData.Unlock()
	return globalData.currentEpoch
}

// BalanceOf - fraction balance of an account in an epoch
func BalanceOf(epoch uint64, account string) (uint64, error) {
	globalData.Lock()
	defer globalData.Unlock()

	pool, ok := globalData.epochs[epoch]
	if !ok {
		return 0, fault.EpochNotFound
	}
	return pool.ledger.BalanceOf(account), nil
}

// TransferFractions - move freely held fractions between accounts
func TransferFractions(epoch uint64, from string, to string, amount uint64) error {
	globalData.Lock()
	defer globalData.Unlock()

	pool, ok := globalData.epochs[epoch]
	if !ok {
		return fault.EpochNotFound
	}
	return pool.ledger.Transfer(from, to, amount)
}

// ExitPrice - the epoch's current exit price
func ExitPrice(epoch uint64) (uint64, error) {
	globalData.Lock()
	defer globalData.Unlock()

	pool, ok := globalData.epochs[epoch]
	if !ok {
		return 0, fault.EpochNotFound
	}
	return pool.exitPrice, nil
}

// SetExitPrice - write the epoch's exit price
//
// only the governance module calls this
func SetExitPrice(epoch uint64, price uint64) error {
	globalData.Lock()
	defer globalData.Unlock()

	pool, ok := globalData.epochs[epoch]
	if !ok {
		return fault.EpochNotFound
	}
	if 0 == price {
		return fault.InvalidExitPrice
	}

	pool.exitPrice = price

	event.Send(event.Message{
		Kind:   event.ExitPriceChanged,
		Epoch:  epoch,
		Amount: price,
	})

	globalData.log.Infof("exit price epoch: %d now: %d", epoch, price)
	return nil
}

// LiquidSupply - fractions still backing un-auctioned assets
func LiquidSupply(epoch uint64) (uint64, error) {
	globalData.Lock()
	defer globalData.Unlock()

	pool, ok := globalData.epochs[epoch]
	if !ok {
		return 0, fault.EpochNotFound
	}
	return pool.liquidSupplyLocked(), nil
}

// RegisterTransferHook - attach a hook to the epoch's ledger
func RegisterTransferHook(epoch uint64, hook fraction.TransferHook) error {
	globalData.Lock()
	defer globalData.Unlock()

	pool, ok := globalData.epochs[epoch]
	if !ok {
		return fault.EpochNotFound
	}
	pool.ledger.RegisterTransferHook(hook)
	return nil
}
