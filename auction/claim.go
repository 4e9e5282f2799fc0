// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Fractiond Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package auction

import (
	"github.com/fractiond/fractiond/event"
	"github.com/fractiond/fractiond/fault"
)

// Claim - burn freely held fractions against the epoch's
// unrestricted pool, returns the amount paid out
//
// the burned amount is capped to the holder's balance and to the
// remaining pool capacity
func Claim(actor string, epoch uint64, fractions uint64) (uint64, error) {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return 0, fault.NotInitialised
	}

	pool, ok := globalData.epochs[epoch]
	if !ok {
		return 0, fault.EpochNotFound
	}

	paid, err := claimUnrestrictedLocked(pool, actor, fractions)
	if nil != err {
		return 0, err
	}

	err = globalData.handles.Payments.TransferOut(globalData.exchangeToken, actor, paid)
	if nil != err {
		return 0, err
	}

	event.Send(event.Message{
		Kind:      event.ClaimPaid,
		Epoch:     epoch,
		Account:   actor,
		Amount:    paid,
		Fractions: fractions,
	})
	return paid, nil
}

// ClaimWithLockedFractions - withdraw a voter's share of one
// auction's locked proceeds, optionally burning additional freely
// held fractions against the unrestricted pool
func ClaimWithLockedFractions(actor string, assetId uint64, index int, additionalFractions uint64) (uint64, error) {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return 0, fault.NotInitialised
	}

	list := globalData.records[assetId]
	if index < 0 || index >= len(list) {
		return 0, fault.AuctionNotFound
	}
	rec := list[index]
	pool, ok := globalData.epochs[rec.Epoch]
	if !ok {
		return 0, fault.EpochNotFound
	}

	err := finalizeLocked(pool, rec)
	if nil != err {
		return 0, err
	}

	locked := rec.Votes.LockedBy(actor)
	if 0 == locked && 0 == additionalFractions {
		return 0, fault.NoFractions
	}

	paid := uint64(0)

	if locked > 0 {
		// share of the locked pool proportional to the recorded lock
		share := rec.FinalLockedAmount * locked / rec.FinalLockedSupply

		err = pool.ledger.Burn(escrowAccount(pool.epoch), locked)
		if nil != err {
			return 0, err
		}
		rec.Votes.Unlock(actor)
		rec.FinalLockedAmount -= share
		rec.FinalLockedSupply -= locked
		pool.lockedSupply -= locked
		paid += share
	}

	if additionalFractions > 0 {
		extra, err := claimUnrestrictedLocked(pool, actor, additionalFractions)
		switch {
		case nil == err:
			paid += extra
		case fault.NoFractions == err && locked > 0:
			// the cap collapsed to zero but the locked share above
			// was already consumed; it must still pay out
		default:
			return 0, err
		}
	}

	if paid > 0 {
		err = globalData.handles.Payments.TransferOut(globalData.exchangeToken, actor, paid)
		if nil != err {
			return 0, err
		}
	}

	event.Send(event.Message{
		Kind:      event.ClaimPaid,
		Epoch:     rec.Epoch,
		AssetId:   assetId,
		Account:   actor,
		Amount:    paid,
		Fractions: locked + additionalFractions,
	})

	globalData.log.Infof("locked claim asset: %d holder: %s paid: %d", assetId, actor, paid)
	return paid, nil
}

// FinalizeAndClaim - finalize an asset's auction then claim against
// the unrestricted pool in the same call
func FinalizeAndClaim(actor string, assetId uint64, fractions uint64) (uint64, error) {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return 0, fault.NotInitialised
	}

	pool, rec, err := currentRecordLocked(assetId)
	if nil != err {
		return 0, err
	}

	err = finalizeLocked(pool, rec)
	if nil != err {
		return 0, err
	}

	paid, err := claimUnrestrictedLocked(pool, actor, fractions)
	if nil != err {
		return 0, err
	}

	err = globalData.handles.Payments.TransferOut(globalData.exchangeToken, actor, paid)
	if nil != err {
		return 0, err
	}

	event.Send(event.Message{
		Kind:      event.ClaimPaid,
		Epoch:     rec.Epoch,
		AssetId:   assetId,
		Account:   actor,
		Amount:    paid,
		Fractions: fractions,
	})
	return paid, nil
}

// burn fractions against the unrestricted pool, pro-rata payout
// caller must hold the engine lock
func claimUnrestrictedLocked(pool *epochPool, actor string, fractions uint64) (uint64, error) {
	if 0 == fractions {
		return 0, fault.InvalidAmount
	}

	if balance := pool.ledger.BalanceOf(actor); fractions > balance {
		fractions = balance
	}
	if fractions > pool.unrestrictedSupply {
		fractions = pool.unrestrictedSupply
	}
	if 0 == fractions {
		return 0, fault.NoFractions
	}

	amount := pool.unrestrictedAmount * fractions / pool.unrestrictedSupply

	err := pool.ledger.Burn(actor, fractions)
	if nil != err {
		return 0, err
	}

	pool.unrestrictedSupply -= fractions
	pool.unrestrictedAmount -= amount
	return amount, nil
}
