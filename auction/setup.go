// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Fractiond Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package auction - the buyout auction engine
//
// per-asset bidding state machine over per-epoch fraction ledgers;
// every public operation is one atomic step under the engine lock
package auction

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/fractiond/fractiond/background"
	"github.com/fractiond/fractiond/custodian"
	"github.com/fractiond/fractiond/fault"
	"github.com/fractiond/fractiond/fraction"
	"github.com/fractiond/fractiond/payment"
)

// Handles - the external collaborators the engine settles with
type Handles struct {
	Vault    custodian.Vault
	Payments payment.Payments

	// TransferAsset - move custody ownership to the redeemer
	TransferAsset func(assetId uint64, to string) error

	// SetFractionalised - clear or set an asset's fractionalised flag
	SetFractionalised func(assetId uint64, flag bool) error
}

// Parameters - engine wide configuration
type Parameters struct {
	ExchangeToken       string
	MinimumIncrementBps uint64
	CheckpointFile      string
}

// Auctioneer - the engine operations, mockable for the RPC layer
type Auctioneer interface {
	BeginEpoch(params EpochParameters) (uint64, error)
	Fractionalise(epoch uint64, assetId uint64, owner string) error
	MintAdditional(epoch uint64, to string, amount uint64) error
	CurrentEpoch() uint64

	Bid(actor string, assetId uint64, price uint64, fractionsToAdd uint64) error
	RemoveBid(actor string, assetId uint64) error
	StartAuction(actor string, assetId uint64) error
	VoteToStartAuction(actor string, assetId uint64, amount uint64) error
	RemoveVoteToStartAuction(actor string, assetId uint64, amount uint64) error
	Redeem(actor string, assetId uint64) error
	Claim(actor string, epoch uint64, fractions uint64) (uint64, error)
	ClaimWithLockedFractions(actor string, assetId uint64, index int, additionalFractions uint64) (uint64, error)
	FinalizeAndClaim(actor string, assetId uint64, fractions uint64) (uint64, error)

	AuctionDetails(assetId uint64) (Details, error)
	VotesOf(assetId uint64, holder string) (uint64, error)
	PoolParameters(epoch uint64) (PoolInfo, error)
	BalanceOf(epoch uint64, account string) (uint64, error)
	TransferFractions(epoch uint64, from string, to string, amount uint64) error
	ExitPrice(epoch uint64) (uint64, error)
	SetExitPrice(epoch uint64, price uint64) error
	LiquidSupply(epoch uint64) (uint64, error)
	RegisterTransferHook(epoch uint64, hook fraction.TransferHook) error
}

// globals for this module
type globalDataType struct {
	sync.Mutex
	log *logger.L

	handles             Handles
	exchangeToken       string
	minimumIncrementBps uint64
	checkpointFile      string

	currentEpoch uint64
	epochs       map[uint64]*epochPool

	// ordered auction records per asset slot, across epochs
	records map[uint64][]*Record

	background  *background.T
	initialised bool
}

var globalData globalDataType

// the Auctioneer implementation backed by globalData
type auctioneer struct{}

// Initialise - start the engine
func Initialise(handles Handles, parameters Parameters) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}
	if nil == handles.Vault || nil == handles.Payments ||
		nil == handles.TransferAsset || nil == handles.SetFractionalised {
		return fault.MissingParameters
	}
	if "" == parameters.ExchangeToken {
		return fault.MissingParameters
	}

	globalData.log = logger.New("auction")
	globalData.log.Info("starting…")

	globalData.handles = handles
	globalData.exchangeToken = parameters.ExchangeToken
	globalData.minimumIncrementBps = parameters.MinimumIncrementBps
	globalData.checkpointFile = parameters.CheckpointFile

	globalData.currentEpoch = 0
	globalData.epochs = make(map[uint64]*epochPool)
	globalData.records = make(map[uint64][]*Record)

	globalData.initialised = true

	if "" != parameters.CheckpointFile {
		processes := background.Processes{&checkpointSaver{}}
		globalData.background = background.Start(processes, globalData.log)
	}

	return nil
}

// Finalise - stop the engine
func Finalise() error {
	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.background.Stop()

	// final checkpoint
	if "" != globalData.checkpointFile {
		err := SaveToFile()
		if nil != err {
			globalData.log.Errorf("final checkpoint error: %s", err)
		}
	}

	globalData.log.Flush()
	globalData.initialised = false
	return nil
}

// Get - the engine as an Auctioneer
func Get() Auctioneer {
	return auctioneer{}
}

func (auctioneer) BeginEpoch(params EpochParameters) (uint64, error) {
	return BeginEpoch(params)
}
func (auctioneer) Fractionalise(epoch uint64, assetId uint64, owner string) error {
	return Fractionalise(epoch, assetId, owner)
}
func (auctioneer) MintAdditional(epoch uint64, to string, amount uint64) error {
	return MintAdditional(epoch, to, amount)
}
func (auctioneer) CurrentEpoch() uint64 {
	return CurrentEpoch()
}
func (auctioneer) Bid(actor string, assetId uint64, price uint64, fractionsToAdd uint64) error {
	return Bid(actor, assetId, price, fractionsToAdd)
}
func (auctioneer) RemoveBid(actor string, assetId uint64) error {
	return RemoveBid(actor, assetId)
}
func (auctioneer) StartAuction(actor string, assetId uint64) error {
	return StartAuction(actor, assetId)
}
func (auctioneer) VoteToStartAuction(actor string, assetId uint64, amount uint64) error {
	return VoteToStartAuction(actor, assetId, amount)
}
func (auctioneer) RemoveVoteToStartAuction(actor string, assetId uint64, amount uint64) error {
	return RemoveVoteToStartAuction(actor, assetId, amount)
}
func (auctioneer) Redeem(actor string, assetId uint64) error {
	return Redeem(actor, assetId)
}
func (auctioneer) Claim(actor string, epoch uint64, fractions uint64) (uint64, error) {
	return Claim(actor, epoch, fractions)
}
func (auctioneer) ClaimWithLockedFractions(actor string, assetId uint64, index int, additionalFractions uint64) (uint64, error) {
	return ClaimWithLockedFractions(actor, assetId, index, additionalFractions)
}
func (auctioneer) FinalizeAndClaim(actor string, assetId uint64, fractions uint64) (uint64, error) {
	return FinalizeAndClaim(actor, assetId, fractions)
}
func (auctioneer) AuctionDetails(assetId uint64) (Details, error) {
	return AuctionDetails(assetId)
}
func (auctioneer) VotesOf(assetId uint64, holder string) (uint64, error) {
	return VotesOf(assetId, holder)
}
func (auctioneer) PoolParameters(epoch uint64) (PoolInfo, error) {
	return PoolParameters(epoch)
}
func (auctioneer) BalanceOf(epoch uint64, account string) (uint64, error) {
	return BalanceOf(epoch, account)
}
func (auctioneer) TransferFractions(epoch uint64, from string, to string, amount uint64) error {
	return TransferFractions(epoch, from, to, amount)
}
func (auctioneer) ExitPrice(epoch uint64) (uint64, error) {
	return ExitPrice(epoch)
}
func (auctioneer) SetExitPrice(epoch uint64, price uint64) error {
	return SetExitPrice(epoch, price)
}
func (auctioneer) LiquidSupply(epoch uint64) (uint64, error) {
	return LiquidSupply(epoch)
}
func (auctioneer) RegisterTransferHook(epoch uint64, hook fraction.TransferHook) error {
	return RegisterTransferHook(epoch, hook)
}

// current time, one reference point per operation
func timeNow() time.Time {
	return time.Now()
}
