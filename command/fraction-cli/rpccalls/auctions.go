// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Fractiond Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/fractiond/fractiond/account"
	"github.com/fractiond/fractiond/rpc/auctions"
	"github.com/fractiond/fractiond/rpc/auth"
)

// StartAuction - open the buyout auction on an asset
func (client *Client) StartAuction(owner *account.PrivateKey, assetId uint64) (*auctions.DetailsReply, error) {

	arguments := auctions.AssetArguments{
		Owner:   owner.Account(),
		AssetId: assetId,
	}
	arguments.Signature = owner.Sign(auth.Message("auctions.start",
		arguments.Owner.String(), assetId))

	return client.callDetails("Auctions.Start", "Start", &arguments)
}

// BidData - data for a bid request
type BidData struct {
	Owner     *account.PrivateKey
	AssetId   uint64
	Price     uint64
	Fractions uint64
}

// Bid - place or raise a bid on an asset
func (client *Client) Bid(bidConfig *BidData) (*auctions.DetailsReply, error) {

	owner := bidConfig.Owner.Account()

	arguments := auctions.BidArguments{
		Owner:     owner,
		AssetId:   bidConfig.AssetId,
		Price:     bidConfig.Price,
		Fractions: bidConfig.Fractions,
	}
	arguments.Signature = bidConfig.Owner.Sign(auth.Message("auctions.bid",
		owner.String(),
		arguments.AssetId,
		arguments.Price,
		arguments.Fractions,
	))

	client.printJson("Bid Request", arguments)

	var reply auctions.DetailsReply
	err := client.client.Call("Auctions.Bid", &arguments, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Bid Reply", reply)

	return &reply, nil
}

// RemoveBid - withdraw a bid after its lock time
func (client *Client) RemoveBid(owner *account.PrivateKey, assetId uint64) (*auctions.DetailsReply, error) {

	arguments := auctions.AssetArguments{
		Owner:   owner.Account(),
		AssetId: assetId,
	}
	arguments.Signature = owner.Sign(auth.Message("auctions.removeBid",
		arguments.Owner.String(), assetId))

	return client.callDetails("Auctions.RemoveBid", "RemoveBid", &arguments)
}

// Vote - lock fractions in favour of starting the auction
func (client *Client) Vote(owner *account.PrivateKey, assetId uint64, amount uint64) (*auctions.DetailsReply, error) {

	arguments := auctions.AmountArguments{
		Owner:   owner.Account(),
		AssetId: assetId,
		Amount:  amount,
	}
	arguments.Signature = owner.Sign(auth.Message("auctions.vote",
		arguments.Owner.String(), assetId, amount))

	return client.callDetails("Auctions.Vote", "Vote", &arguments)
}

// RemoveVote - unlock fractions while the auction has not started
func (client *Client) RemoveVote(owner *account.PrivateKey, assetId uint64, amount uint64) (*auctions.DetailsReply, error) {

	arguments := auctions.AmountArguments{
		Owner:   owner.Account(),
		AssetId: assetId,
		Amount:  amount,
	}
	arguments.Signature = owner.Sign(auth.Message("auctions.removeVote",
		arguments.Owner.String(), assetId, amount))

	return client.callDetails("Auctions.RemoveVote", "RemoveVote", &arguments)
}

// Redeem - winner takes custody of the asset
func (client *Client) Redeem(owner *account.PrivateKey, assetId uint64) (*auctions.DetailsReply, error) {

	arguments := auctions.AssetArguments{
		Owner:   owner.Account(),
		AssetId: assetId,
	}
	arguments.Signature = owner.Sign(auth.Message("auctions.redeem",
		arguments.Owner.String(), assetId))

	return client.callDetails("Auctions.Redeem", "Redeem", &arguments)
}

// Claim - burn unrestricted fractions for a proceeds share
func (client *Client) Claim(owner *account.PrivateKey, epoch uint64, fractionCount uint64) (*auctions.PaidReply, error) {

	arguments := auctions.ClaimArguments{
		Owner:     owner.Account(),
		Epoch:     epoch,
		Fractions: fractionCount,
	}
	arguments.Signature = owner.Sign(auth.Message("auctions.claim",
		arguments.Owner.String(), epoch, fractionCount))

	client.printJson("Claim Request", arguments)

	var reply auctions.PaidReply
	err := client.client.Call("Auctions.Claim", &arguments, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Claim Reply", reply)

	return &reply, nil
}

// ClaimLockedData - data for a locked-fraction claim request
type ClaimLockedData struct {
	Owner               *account.PrivateKey
	AssetId             uint64
	Index               int
	AdditionalFractions uint64
}

// ClaimWithLockedFractions - claim the vote-locked share of one auction
func (client *Client) ClaimWithLockedFractions(claimConfig *ClaimLockedData) (*auctions.PaidReply, error) {

	owner := claimConfig.Owner.Account()

	arguments := auctions.ClaimLockedArguments{
		Owner:               owner,
		AssetId:             claimConfig.AssetId,
		Index:               claimConfig.Index,
		AdditionalFractions: claimConfig.AdditionalFractions,
	}
	arguments.Signature = claimConfig.Owner.Sign(auth.Message("auctions.claimLocked",
		owner.String(),
		arguments.AssetId,
		arguments.Index,
		arguments.AdditionalFractions,
	))

	client.printJson("ClaimLocked Request", arguments)

	var reply auctions.PaidReply
	err := client.client.Call("Auctions.ClaimWithLockedFractions", &arguments, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("ClaimLocked Reply", reply)

	return &reply, nil
}

// FinalizeAndClaim - settle an ended auction and claim in one call
func (client *Client) FinalizeAndClaim(owner *account.PrivateKey, assetId uint64, amount uint64) (*auctions.PaidReply, error) {

	arguments := auctions.AmountArguments{
		Owner:   owner.Account(),
		AssetId: assetId,
		Amount:  amount,
	}
	arguments.Signature = owner.Sign(auth.Message("auctions.finalizeAndClaim",
		arguments.Owner.String(), assetId, amount))

	client.printJson("FinalizeAndClaim Request", arguments)

	var reply auctions.PaidReply
	err := client.client.Call("Auctions.FinalizeAndClaim", &arguments, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("FinalizeAndClaim Reply", reply)

	return &reply, nil
}

// AuctionDetails - current auction state of an asset
func (client *Client) AuctionDetails(assetId uint64) (*auctions.DetailsReply, error) {

	arguments := auctions.DetailsArguments{
		AssetId: assetId,
	}

	client.printJson("Details Request", arguments)

	var reply auctions.DetailsReply
	err := client.client.Call("Auctions.Details", &arguments, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Details Reply", reply)

	return &reply, nil
}

// AuctionVotes - vote-locked fractions of one holder on one asset
func (client *Client) AuctionVotes(assetId uint64, holder *account.Account) (*auctions.VotesReply, error) {

	arguments := auctions.VotesArguments{
		AssetId: assetId,
		Holder:  holder,
	}

	client.printJson("Votes Request", arguments)

	var reply auctions.VotesReply
	err := client.client.Call("Auctions.Votes", &arguments, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Votes Reply", reply)

	return &reply, nil
}

// Pool - pool counters of an epoch, zero means the current epoch
func (client *Client) Pool(epoch uint64) (*auctions.PoolReply, error) {

	arguments := auctions.PoolArguments{
		Epoch: epoch,
	}

	client.printJson("Pool Request", arguments)

	var reply auctions.PoolReply
	err := client.client.Call("Auctions.Pool", &arguments, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Pool Reply", reply)

	return &reply, nil
}

func (client *Client) callDetails(method string, title string, arguments interface{}) (*auctions.DetailsReply, error) {

	client.printJson(title+" Request", arguments)

	var reply auctions.DetailsReply
	err := client.client.Call(method, arguments, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson(title+" Reply", reply)

	return &reply, nil
}
