// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Fractiond Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fractions

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/fractiond/fractiond/account"
	"github.com/fractiond/fractiond/auction"
	"github.com/fractiond/fractiond/fault"
	"github.com/fractiond/fractiond/minter"
	"github.com/fractiond/fractiond/mode"
	"github.com/fractiond/fractiond/rpc/auth"
	"github.com/fractiond/fractiond/rpc/ratelimit"
)

// Fractions
// ---------

const (
	rateLimitFractions = 200
	rateBurstFractions = 100
)

// Fractions - type for RPC
type Fractions struct {
	Log           *logger.L
	Limiter       *rate.Limiter
	IsNormalMode  func(mode.Mode) bool
	Engine        auction.Auctioneer
	MintFraction  func(actor string, request minter.MintRequest) (uint64, error)
	MintExtra     func(actor string, amount uint64) error
	MintIntoEpoch func(actor string, firstId uint64, length uint64) error
}

func New(log *logger.L,
	isNormalMode func(mode.Mode) bool,
	engine auction.Auctioneer,
	mintFraction func(actor string, request minter.MintRequest) (uint64, error),
	mintExtra func(actor string, amount uint64) error,
	mintIntoEpoch func(actor string, firstId uint64, length uint64) error,
) *Fractions {
	return &Fractions{
		Log:           log,
		Limiter:       rate.NewLimiter(rateLimitFractions, rateBurstFractions),
		IsNormalMode:  isNormalMode,
		Engine:        engine,
		MintFraction:  mintFraction,
		MintExtra:     mintExtra,
		MintIntoEpoch: mintIntoEpoch,
	}
}

// Mint a batch of custody assets into fractions
// ----------------------------------------------

// MintArguments - arguments for RPC
type MintArguments struct {
	Owner              *account.Account  `json:"owner"` // base58
	AssetIds           []uint64          `json:"assetIds"`
	FractionsPerAsset  uint64            `json:"fractionsPerAsset"`
	ExitPrice          uint64            `json:"exitPrice"`
	UnlockThresholdBps uint64            `json:"unlockThresholdBps"`
	AuctionDuration    uint64            `json:"auctionDuration"`    // seconds
	TopBidLockTime     uint64            `json:"topBidLockTime"`     // seconds
	Signature          account.Signature `json:"signature"`
}

// MintReply - result from minting
type MintReply struct {
	Epoch uint64 `json:"epoch"`
}

// Mint - fractionalise a batch of assets into a new epoch
func (fractions *Fractions) Mint(arguments *MintArguments, reply *MintReply) error {

	if err := ratelimit.Limit(fractions.Limiter); nil != err {
		return err
	}

	log := fractions.Log

	if nil == arguments || nil == arguments.Owner {
		return fault.InvalidItem
	}

	log.Infof("Fractions.Mint: %+v", arguments)

	if !fractions.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringStartup
	}

	actor := arguments.Owner.String()
	err := auth.Verify(arguments.Owner, arguments.Signature, "fractions.mint",
		actor,
		arguments.AssetIds,
		arguments.FractionsPerAsset,
		arguments.ExitPrice,
		arguments.UnlockThresholdBps,
		arguments.AuctionDuration,
		arguments.TopBidLockTime,
	)
	if nil != err {
		return err
	}

	epoch, err := fractions.MintFraction(actor, minter.MintRequest{
		AssetIds:           arguments.AssetIds,
		FractionsPerAsset:  arguments.FractionsPerAsset,
		ExitPrice:          arguments.ExitPrice,
		UnlockThresholdBps: arguments.UnlockThresholdBps,
		AuctionDuration:    time.Duration(arguments.AuctionDuration) * time.Second,
		TopBidLockTime:     time.Duration(arguments.TopBidLockTime) * time.Second,
	})
	if nil != err {
		return err
	}

	reply.Epoch = epoch
	return nil
}

// Mint additional fractions into the current epoch
// -------------------------------------------------

// MintAdditionalArguments - arguments for RPC
type MintAdditionalArguments struct {
	Owner     *account.Account  `json:"owner"` // base58
	Amount    uint64            `json:"amount"`
	Signature account.Signature `json:"signature"`
}

// MintAdditionalReply - result of the additional mint
type MintAdditionalReply struct {
	Epoch uint64 `json:"epoch"`
}

// MintAdditional - mint extra fractions onto the current epoch
func (fractions *Fractions) MintAdditional(arguments *MintAdditionalArguments, reply *MintAdditionalReply) error {

	if err := ratelimit.Limit(fractions.Limiter); nil != err {
		return err
	}

	log := fractions.Log

	if nil == arguments || nil == arguments.Owner {
		return fault.InvalidItem
	}

	log.Infof("Fractions.MintAdditional: %+v", arguments)

	if !fractions.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringStartup
	}

	actor := arguments.Owner.String()
	err := auth.Verify(arguments.Owner, arguments.Signature, "fractions.mintAdditional",
		actor,
		arguments.Amount,
	)
	if nil != err {
		return err
	}

	err = fractions.MintExtra(actor, arguments.Amount)
	if nil != err {
		return err
	}

	reply.Epoch = fractions.Engine.CurrentEpoch()
	return nil
}

// Mint further assets into the current epoch
// ------------------------------------------

// MintExistingArguments - arguments for RPC
type MintExistingArguments struct {
	Owner     *account.Account  `json:"owner"` // base58
	FirstId   uint64            `json:"firstId"`
	Length    uint64            `json:"length"`
	Signature account.Signature `json:"signature"`
}

// MintExistingReply - result of the existing-ratio mint
type MintExistingReply struct {
	Epoch uint64 `json:"epoch"`
}

// MintExisting - fractionalise a contiguous run of further assets
// into the current epoch at the existing per-asset ratio
func (fractions *Fractions) MintExisting(arguments *MintExistingArguments, reply *MintExistingReply) error {

	if err := ratelimit.Limit(fractions.Limiter); nil != err {
		return err
	}

	log := fractions.Log

	if nil == arguments || nil == arguments.Owner {
		return fault.InvalidItem
	}

	log.Infof("Fractions.MintExisting: %+v", arguments)

	if !fractions.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringStartup
	}

	actor := arguments.Owner.String()
	err := auth.Verify(arguments.Owner, arguments.Signature, "fractions.mintExisting",
		actor,
		arguments.FirstId,
		arguments.Length,
	)
	if nil != err {
		return err
	}

	err = fractions.MintIntoEpoch(actor, arguments.FirstId, arguments.Length)
	if nil != err {
		return err
	}

	reply.Epoch = fractions.Engine.CurrentEpoch()
	return nil
}

// Get fraction balance
// --------------------

// BalanceArguments - arguments for RPC
type BalanceArguments struct {
	Owner *account.Account `json:"owner"` // base58
	Epoch uint64           `json:"epoch"`
}

// BalanceReply - fraction balance of an account
type BalanceReply struct {
	Epoch   uint64 `json:"epoch"`
	Balance uint64 `json:"balance"`
}

// Balance - fraction balance of an account in an epoch
func (fractions *Fractions) Balance(arguments *BalanceArguments, reply *BalanceReply) error {

	if err := ratelimit.Limit(fractions.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Owner {
		return fault.InvalidItem
	}

	epoch := arguments.Epoch
	if 0 == epoch {
		epoch = fractions.Engine.CurrentEpoch()
	}

	balance, err := fractions.Engine.BalanceOf(epoch, arguments.Owner.String())
	if nil != err {
		return err
	}

	reply.Epoch = epoch
	reply.Balance = balance
	return nil
}

// Transfer fractions
// ------------------

// TransferArguments - arguments for RPC
type TransferArguments struct {
	Owner     *account.Account  `json:"owner"`     // base58
	Recipient *account.Account  `json:"recipient"` // base58
	Epoch     uint64            `json:"epoch"`
	Amount    uint64            `json:"amount"`
	Signature account.Signature `json:"signature"`
}

// TransferReply - result of a fraction transfer
type TransferReply struct {
	Remaining uint64 `json:"remaining"`
}

// Transfer - move fractions to another account
func (fractions *Fractions) Transfer(arguments *TransferArguments, reply *TransferReply) error {

	if err := ratelimit.Limit(fractions.Limiter); nil != err {
		return err
	}

	log := fractions.Log

	if nil == arguments || nil == arguments.Owner || nil == arguments.Recipient {
		return fault.InvalidItem
	}

	log.Infof("Fractions.Transfer: %+v", arguments)

	if !fractions.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringStartup
	}

	actor := arguments.Owner.String()
	recipient := arguments.Recipient.String()
	err := auth.Verify(arguments.Owner, arguments.Signature, "fractions.transfer",
		actor,
		recipient,
		arguments.Epoch,
		arguments.Amount,
	)
	if nil != err {
		return err
	}

	err = fractions.Engine.TransferFractions(arguments.Epoch, actor, recipient, arguments.Amount)
	if nil != err {
		return err
	}

	remaining, err := fractions.Engine.BalanceOf(arguments.Epoch, actor)
	if nil != err {
		return err
	}

	reply.Remaining = remaining
	return nil
}
