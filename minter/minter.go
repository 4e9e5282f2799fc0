// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Fractiond Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package minter - locks custody assets into fractionalisation rounds
//
// validates custody state and fraction parameters, then drives the
// auction engine: one epoch per round, one auction record per asset
package minter

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/fractiond/fractiond/asset"
	"github.com/fractiond/fractiond/auction"
	"github.com/fractiond/fractiond/constants"
	"github.com/fractiond/fractiond/fault"
)

// Configuration - fraction band and the protocol account
type Configuration struct {
	MinimumFractionAmount uint64
	MaximumFractionAmount uint64
	ProtocolAccount       string
}

// MintRequest - parameters of an initial mint
//
// zero duration, lock time or threshold fall back to the configured
// defaults
type MintRequest struct {
	AssetIds           []uint64
	FractionsPerAsset  uint64
	ExitPrice          uint64
	UnlockThresholdBps uint64
	AuctionDuration    time.Duration
	TopBidLockTime     time.Duration
}

// globals for this module
type globalDataType struct {
	sync.Mutex
	log         *logger.L
	engine      auction.Auctioneer
	config      Configuration
	initialised bool
}

var globalData globalDataType

// Initialise - start the minter
func Initialise(engine auction.Auctioneer, config Configuration) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}
	if nil == engine {
		return fault.MissingParameters
	}
	if 0 == config.MinimumFractionAmount ||
		config.MaximumFractionAmount < config.MinimumFractionAmount {
		return fault.InvalidFractionAmount
	}

	globalData.log = logger.New("minter")
	globalData.log.Info("starting…")

	globalData.engine = engine
	globalData.config = config
	globalData.initialised = true
	return nil
}

// Finalise - stop the minter
func Finalise() error {
	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()
	globalData.initialised = false
	return nil
}

// MintFractions - open a new epoch and fractionalise a batch of
// assets, returns the new epoch
//
// the owner path requires assets checked in to custody; the forceful
// protocol path requires them fully verified
func MintFractions(actor string, request MintRequest) (uint64, error) {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return 0, fault.NotInitialised
	}

	count := len(request.AssetIds)
	if 0 == count || count > constants.MaximumAssetsPerMint {
		return 0, fault.InvalidCount
	}
	if request.FractionsPerAsset < globalData.config.MinimumFractionAmount ||
		request.FractionsPerAsset > globalData.config.MaximumFractionAmount {
		return 0, fault.InvalidFractionAmount
	}
	if 0 == request.ExitPrice {
		return 0, fault.InvalidExitPrice
	}
	if request.UnlockThresholdBps > constants.BasisPoints {
		return 0, fault.InvalidUnlockThreshold
	}

	owners, err := checkCustodyLocked(actor, request.AssetIds)
	if nil != err {
		return 0, err
	}

	params := auction.EpochParameters{
		FractionsPerAsset:  request.FractionsPerAsset,
		ExitPrice:          request.ExitPrice,
		UnlockThresholdBps: request.UnlockThresholdBps,
		AuctionDuration:    request.AuctionDuration,
		TopBidLockTime:     request.TopBidLockTime,
	}
	if 0 == params.UnlockThresholdBps {
		params.UnlockThresholdBps = constants.DefaultUnlockThresholdBps
	}
	if 0 == params.AuctionDuration {
		params.AuctionDuration = constants.DefaultAuctionDuration
	}
	if 0 == params.TopBidLockTime {
		params.TopBidLockTime = constants.DefaultTopBidLockTime
	}

	epoch, err := globalData.engine.BeginEpoch(params)
	if nil != err {
		return 0, err
	}

	err = fractionaliseLocked(epoch, request.AssetIds, owners)
	if nil != err {
		return 0, err
	}

	globalData.log.Infof("minted epoch: %d assets: %d by: %s", epoch, count, actor)
	return epoch, nil
}

// MintFractionsExisting - fractionalise further assets into the
// current epoch at the existing per-asset ratio
func MintFractionsExisting(actor string, firstId uint64, length uint64) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}
	if 0 == length || length > constants.MaximumAssetsPerMint {
		return fault.InvalidCount
	}

	epoch := globalData.engine.CurrentEpoch()
	info, err := globalData.engine.PoolParameters(epoch)
	if nil != err {
		return err
	}
	if 0 == info.NftCount {
		return fault.TokenNotFractionalised
	}

	assetIds := make([]uint64, length)
	for i := uint64(0); i < length; i += 1 {
		assetIds[i] = firstId + i
	}

	owners, err := checkCustodyLocked(actor, assetIds)
	if nil != err {
		return err
	}
	return fractionaliseLocked(epoch, assetIds, owners)
}

// MintAdditionalFractions - protocol account tops up the per-asset
// denominator of the current epoch
func MintAdditionalFractions(actor string, amount uint64) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}
	if actor != globalData.config.ProtocolAccount {
		return fault.NotProtocolAccount
	}
	if 0 == amount {
		return fault.InvalidAmount
	}

	epoch := globalData.engine.CurrentEpoch()
	info, err := globalData.engine.PoolParameters(epoch)
	if nil != err {
		return err
	}
	if 0 == info.NftCount {
		return fault.TokenNotFractionalised
	}
	if info.FractionsPerAsset+amount/info.NftCount > globalData.config.MaximumFractionAmount {
		return fault.InvalidFractionAmount
	}

	return globalData.engine.MintAdditional(epoch, actor, amount)
}

// validate custody state and ownership for every asset in a batch
// caller must hold the minter lock
func checkCustodyLocked(actor string, assetIds []uint64) ([]string, error) {
	forceful := actor == globalData.config.ProtocolAccount

	owners := make([]string, len(assetIds))
	for i, assetId := range assetIds {
		record, err := asset.Get(assetId)
		if nil != err {
			return nil, err
		}
		if record.Fractionalised {
			return nil, fault.AlreadyFractionalised
		}

		if forceful {
			if asset.StateVerified != record.State {
				return nil, fault.InvalidCustodyState
			}
		} else {
			if actor != record.Owner {
				return nil, fault.NotAssetOwner
			}
			if asset.StateCheckedIn != record.State {
				return nil, fault.InvalidCustodyState
			}
		}
		owners[i] = record.Owner
	}
	return owners, nil
}

// push one auction record per asset and flag each as fractionalised
// caller must hold the minter lock
func fractionaliseLocked(epoch uint64, assetIds []uint64, owners []string) error {
	for i, assetId := range assetIds {
		err := globalData.engine.Fractionalise(epoch, assetId, owners[i])
		if nil != err {
			return err
		}
		err = asset.SetFractionalised(assetId, true)
		if nil != err {
			return err
		}
	}
	return nil
}
