// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Fractiond Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package auctions

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/fractiond/fractiond/account"
	"github.com/fractiond/fractiond/auction"
	"github.com/fractiond/fractiond/fault"
	"github.com/fractiond/fractiond/mode"
	"github.com/fractiond/fractiond/rpc/auth"
	"github.com/fractiond/fractiond/rpc/ratelimit"
)

// Auctions
// --------

const (
	rateLimitAuctions = 200
	rateBurstAuctions = 100
)

// Auctions - type for RPC
type Auctions struct {
	Log          *logger.L
	Limiter      *rate.Limiter
	IsNormalMode func(mode.Mode) bool
	Engine       auction.Auctioneer
}

func New(log *logger.L,
	isNormalMode func(mode.Mode) bool,
	engine auction.Auctioneer,
) *Auctions {
	return &Auctions{
		Log:          log,
		Limiter:      rate.NewLimiter(rateLimitAuctions, rateBurstAuctions),
		IsNormalMode: isNormalMode,
		Engine:       engine,
	}
}

// common argument/reply shapes
// ----------------------------

// AssetArguments - signed request naming only an asset
type AssetArguments struct {
	Owner     *account.Account  `json:"owner"` // base58
	AssetId   uint64            `json:"assetId"`
	Signature account.Signature `json:"signature"`
}

// AmountArguments - signed request naming an asset and an amount
type AmountArguments struct {
	Owner     *account.Account  `json:"owner"` // base58
	AssetId   uint64            `json:"assetId"`
	Amount    uint64            `json:"amount"`
	Signature account.Signature `json:"signature"`
}

// DetailsReply - state of one auction after the call
type DetailsReply struct {
	Details auction.Details `json:"details"`
}

// PaidReply - amount paid out by a claim
type PaidReply struct {
	Paid uint64 `json:"paid"`
}

// checked - common validation for signed mutating calls
func (auctions *Auctions) checked(owner *account.Account, signature account.Signature, operation string, parts ...interface{}) (string, error) {
	if err := ratelimit.Limit(auctions.Limiter); nil != err {
		return "", err
	}
	if nil == owner {
		return "", fault.InvalidItem
	}
	if !auctions.IsNormalMode(mode.Normal) {
		return "", fault.NotAvailableDuringStartup
	}

	actor := owner.String()
	err := auth.Verify(owner, signature, operation, append([]interface{}{actor}, parts...)...)
	if nil != err {
		return "", err
	}
	return actor, nil
}

// Start - start the auction on an asset from the highest bid
func (auctions *Auctions) Start(arguments *AssetArguments, reply *DetailsReply) error {
	if nil == arguments {
		return fault.InvalidItem
	}

	auctions.Log.Infof("Auctions.Start: %+v", arguments)

	actor, err := auctions.checked(arguments.Owner, arguments.Signature,
		"auctions.start", arguments.AssetId)
	if nil != err {
		return err
	}

	err = auctions.Engine.StartAuction(actor, arguments.AssetId)
	if nil != err {
		return err
	}
	return auctions.details(arguments.AssetId, reply)
}

// Bid
// ---

// BidArguments - arguments for RPC
type BidArguments struct {
	Owner     *account.Account  `json:"owner"` // base58
	AssetId   uint64            `json:"assetId"`
	Price     uint64            `json:"price"`
	Fractions uint64            `json:"fractions"`
	Signature account.Signature `json:"signature"`
}

// Bid - place or raise a bid on an asset
func (auctions *Auctions) Bid(arguments *BidArguments, reply *DetailsReply) error {
	if nil == arguments {
		return fault.InvalidItem
	}

	auctions.Log.Infof("Auctions.Bid: %+v", arguments)

	actor, err := auctions.checked(arguments.Owner, arguments.Signature,
		"auctions.bid", arguments.AssetId, arguments.Price, arguments.Fractions)
	if nil != err {
		return err
	}

	err = auctions.Engine.Bid(actor, arguments.AssetId, arguments.Price, arguments.Fractions)
	if nil != err {
		return err
	}
	return auctions.details(arguments.AssetId, reply)
}

// RemoveBid - withdraw a bid after its lock time
func (auctions *Auctions) RemoveBid(arguments *AssetArguments, reply *DetailsReply) error {
	if nil == arguments {
		return fault.InvalidItem
	}

	auctions.Log.Infof("Auctions.RemoveBid: %+v", arguments)

	actor, err := auctions.checked(arguments.Owner, arguments.Signature,
		"auctions.removeBid", arguments.AssetId)
	if nil != err {
		return err
	}

	err = auctions.Engine.RemoveBid(actor, arguments.AssetId)
	if nil != err {
		return err
	}
	return auctions.details(arguments.AssetId, reply)
}

// Vote - lock fractions in favour of starting the auction
func (auctions *Auctions) Vote(arguments *AmountArguments, reply *DetailsReply) error {
	if nil == arguments {
		return fault.InvalidItem
	}

	auctions.Log.Infof("Auctions.Vote: %+v", arguments)

	actor, err := auctions.checked(arguments.Owner, arguments.Signature,
		"auctions.vote", arguments.AssetId, arguments.Amount)
	if nil != err {
		return err
	}

	err = auctions.Engine.VoteToStartAuction(actor, arguments.AssetId, arguments.Amount)
	if nil != err {
		return err
	}
	return auctions.details(arguments.AssetId, reply)
}

// RemoveVote - unlock fractions while the auction has not started
func (auctions *Auctions) RemoveVote(arguments *AmountArguments, reply *DetailsReply) error {
	if nil == arguments {
		return fault.InvalidItem
	}

	auctions.Log.Infof("Auctions.RemoveVote: %+v", arguments)

	actor, err := auctions.checked(arguments.Owner, arguments.Signature,
		"auctions.removeVote", arguments.AssetId, arguments.Amount)
	if nil != err {
		return err
	}

	err = auctions.Engine.RemoveVoteToStartAuction(actor, arguments.AssetId, arguments.Amount)
	if nil != err {
		return err
	}
	return auctions.details(arguments.AssetId, reply)
}

// Redeem - winner takes custody of the asset
func (auctions *Auctions) Redeem(arguments *AssetArguments, reply *DetailsReply) error {
	if nil == arguments {
		return fault.InvalidItem
	}

	auctions.Log.Infof("Auctions.Redeem: %+v", arguments)

	actor, err := auctions.checked(arguments.Owner, arguments.Signature,
		"auctions.redeem", arguments.AssetId)
	if nil != err {
		return err
	}

	err = auctions.Engine.Redeem(actor, arguments.AssetId)
	if nil != err {
		return err
	}
	return auctions.details(arguments.AssetId, reply)
}

// Claims
// ------

// ClaimArguments - arguments for RPC
type ClaimArguments struct {
	Owner     *account.Account  `json:"owner"` // base58
	Epoch     uint64            `json:"epoch"`
	Fractions uint64            `json:"fractions"`
	Signature account.Signature `json:"signature"`
}

// Claim - burn unrestricted fractions for a proceeds share
func (auctions *Auctions) Claim(arguments *ClaimArguments, reply *PaidReply) error {
	if nil == arguments {
		return fault.InvalidItem
	}

	auctions.Log.Infof("Auctions.Claim: %+v", arguments)

	actor, err := auctions.checked(arguments.Owner, arguments.Signature,
		"auctions.claim", arguments.Epoch, arguments.Fractions)
	if nil != err {
		return err
	}

	paid, err := auctions.Engine.Claim(actor, arguments.Epoch, arguments.Fractions)
	if nil != err {
		return err
	}
	reply.Paid = paid
	return nil
}

// ClaimLockedArguments - arguments for RPC
type ClaimLockedArguments struct {
	Owner               *account.Account  `json:"owner"` // base58
	AssetId             uint64            `json:"assetId"`
	Index               int               `json:"index"`
	AdditionalFractions uint64            `json:"additionalFractions"`
	Signature           account.Signature `json:"signature"`
}

// ClaimWithLockedFractions - claim the vote-locked share of one auction
func (auctions *Auctions) ClaimWithLockedFractions(arguments *ClaimLockedArguments, reply *PaidReply) error {
	if nil == arguments {
		return fault.InvalidItem
	}

	auctions.Log.Infof("Auctions.ClaimWithLockedFractions: %+v", arguments)

	actor, err := auctions.checked(arguments.Owner, arguments.Signature,
		"auctions.claimLocked", arguments.AssetId, arguments.Index, arguments.AdditionalFractions)
	if nil != err {
		return err
	}

	paid, err := auctions.Engine.ClaimWithLockedFractions(actor, arguments.AssetId, arguments.Index, arguments.AdditionalFractions)
	if nil != err {
		return err
	}
	reply.Paid = paid
	return nil
}

// FinalizeAndClaim - settle an ended auction and claim in one call
func (auctions *Auctions) FinalizeAndClaim(arguments *AmountArguments, reply *PaidReply) error {
	if nil == arguments {
		return fault.InvalidItem
	}

	auctions.Log.Infof("Auctions.FinalizeAndClaim: %+v", arguments)

	actor, err := auctions.checked(arguments.Owner, arguments.Signature,
		"auctions.finalizeAndClaim", arguments.AssetId, arguments.Amount)
	if nil != err {
		return err
	}

	paid, err := auctions.Engine.FinalizeAndClaim(actor, arguments.AssetId, arguments.Amount)
	if nil != err {
		return err
	}
	reply.Paid = paid
	return nil
}

// read-only queries
// -----------------

// DetailsArguments - unsigned asset query
type DetailsArguments struct {
	AssetId uint64 `json:"assetId"`
}

// Details - current auction state of an asset
func (auctions *Auctions) Details(arguments *DetailsArguments, reply *DetailsReply) error {
	if err := ratelimit.Limit(auctions.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.InvalidItem
	}
	return auctions.details(arguments.AssetId, reply)
}

// VotesArguments - unsigned vote query
type VotesArguments struct {
	AssetId uint64           `json:"assetId"`
	Holder  *account.Account `json:"holder"` // base58
}

// VotesReply - fractions an account has vote-locked on an asset
type VotesReply struct {
	Votes uint64 `json:"votes"`
}

// Votes - vote-locked fractions of one holder on one asset
func (auctions *Auctions) Votes(arguments *VotesArguments, reply *VotesReply) error {
	if err := ratelimit.Limit(auctions.Limiter); nil != err {
		return err
	}
	if nil == arguments || nil == arguments.Holder {
		return fault.InvalidItem
	}

	votes, err := auctions.Engine.VotesOf(arguments.AssetId, arguments.Holder.String())
	if nil != err {
		return err
	}
	reply.Votes = votes
	return nil
}

// PoolArguments - unsigned epoch query
type PoolArguments struct {
	Epoch uint64 `json:"epoch"`
}

// PoolReply - pool counters of an epoch
type PoolReply struct {
	Pool auction.PoolInfo `json:"pool"`
}

// Pool - pool counters of an epoch, zero means the current epoch
func (auctions *Auctions) Pool(arguments *PoolArguments, reply *PoolReply) error {
	if err := ratelimit.Limit(auctions.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.InvalidItem
	}

	epoch := arguments.Epoch
	if 0 == epoch {
		epoch = auctions.Engine.CurrentEpoch()
	}

	info, err := auctions.Engine.PoolParameters(epoch)
	if nil != err {
		return err
	}
	reply.Pool = info
	return nil
}

func (auctions *Auctions) details(assetId uint64, reply *DetailsReply) error {
	details, err := auctions.Engine.AuctionDetails(assetId)
	if nil != err {
		return err
	}
	reply.Details = details
	return nil
}
