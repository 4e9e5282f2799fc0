// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Fractiond Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package auctions_test

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/fractiond/fractiond/account"
	"github.com/fractiond/fractiond/auction"
	"github.com/fractiond/fractiond/fault"
	"github.com/fractiond/fractiond/mode"
	"github.com/fractiond/fractiond/rpc/auctions"
	"github.com/fractiond/fractiond/rpc/auth"
	"github.com/fractiond/fractiond/rpc/fixtures"
	"github.com/fractiond/fractiond/rpc/mocks"
)

func TestAuctionsBid(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	acct, key, err := account.NewAccount(true)
	assert.Nil(t, err, "NewAccount error")
	actor := acct.String()

	details := auction.Details{
		Epoch:     1,
		State:     "Not Started",
		MaxBid:    150,
		MaxBidder: actor,
	}

	engine := mocks.NewMockAuctioneer(ctl)
	engine.EXPECT().Bid(actor, uint64(7), uint64(150), uint64(0)).Return(nil).Times(1)
	engine.EXPECT().AuctionDetails(uint64(7)).Return(details, nil).Times(1)

	a := auctions.New(
		logger.New(fixtures.LogCategory),
		func(_ mode.Mode) bool { return true },
		engine,
	)

	arguments := auctions.BidArguments{
		Owner:   acct,
		AssetId: 7,
		Price:   150,
	}
	arguments.Signature = key.Sign(auth.Message("auctions.bid", actor, uint64(7), uint64(150), uint64(0)))

	var reply auctions.DetailsReply
	err = a.Bid(&arguments, &reply)
	assert.Nil(t, err, "Bid error")
	assert.Equal(t, details, reply.Details, "wrong details")
}

func TestAuctionsBidBadSignature(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	acct, key, err := account.NewAccount(true)
	assert.Nil(t, err, "NewAccount error")
	actor := acct.String()

	engine := mocks.NewMockAuctioneer(ctl)

	a := auctions.New(
		logger.New(fixtures.LogCategory),
		func(_ mode.Mode) bool { return true },
		engine,
	)

	arguments := auctions.BidArguments{
		Owner:   acct,
		AssetId: 7,
		Price:   150,
	}
	// signed over a different price
	arguments.Signature = key.Sign(auth.Message("auctions.bid", actor, uint64(7), uint64(151), uint64(0)))

	var reply auctions.DetailsReply
	err = a.Bid(&arguments, &reply)
	assert.Equal(t, fault.InvalidSignature, err, "forged bid accepted")
}

func TestAuctionsBidWhileRestoring(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	acct, key, err := account.NewAccount(true)
	assert.Nil(t, err, "NewAccount error")

	engine := mocks.NewMockAuctioneer(ctl)

	a := auctions.New(
		logger.New(fixtures.LogCategory),
		func(_ mode.Mode) bool { return false },
		engine,
	)

	arguments := auctions.BidArguments{
		Owner:   acct,
		AssetId: 7,
		Price:   150,
	}
	arguments.Signature = key.Sign(auth.Message("auctions.bid", acct.String(), uint64(7), uint64(150), uint64(0)))

	var reply auctions.DetailsReply
	err = a.Bid(&arguments, &reply)
	assert.Equal(t, fault.NotAvailableDuringStartup, err, "bid during startup accepted")
}

func TestAuctionsVoteAndRemoveVote(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	acct, key, err := account.NewAccount(true)
	assert.Nil(t, err, "NewAccount error")
	actor := acct.String()

	engine := mocks.NewMockAuctioneer(ctl)
	engine.EXPECT().VoteToStartAuction(actor, uint64(7), uint64(1000)).Return(nil).Times(1)
	engine.EXPECT().RemoveVoteToStartAuction(actor, uint64(7), uint64(400)).Return(nil).Times(1)
	engine.EXPECT().AuctionDetails(uint64(7)).Return(auction.Details{}, nil).Times(2)

	a := auctions.New(
		logger.New(fixtures.LogCategory),
		func(_ mode.Mode) bool { return true },
		engine,
	)

	vote := auctions.AmountArguments{
		Owner:   acct,
		AssetId: 7,
		Amount:  1000,
	}
	vote.Signature = key.Sign(auth.Message("auctions.vote", actor, uint64(7), uint64(1000)))

	var reply auctions.DetailsReply
	err = a.Vote(&vote, &reply)
	assert.Nil(t, err, "Vote error")

	remove := auctions.AmountArguments{
		Owner:   acct,
		AssetId: 7,
		Amount:  400,
	}
	remove.Signature = key.Sign(auth.Message("auctions.removeVote", actor, uint64(7), uint64(400)))

	err = a.RemoveVote(&remove, &reply)
	assert.Nil(t, err, "RemoveVote error")
}

func TestAuctionsClaim(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	acct, key, err := account.NewAccount(true)
	assert.Nil(t, err, "NewAccount error")
	actor := acct.String()

	engine := mocks.NewMockAuctioneer(ctl)
	engine.EXPECT().Claim(actor, uint64(2), uint64(500)).Return(uint64(125), nil).Times(1)

	a := auctions.New(
		logger.New(fixtures.LogCategory),
		func(_ mode.Mode) bool { return true },
		engine,
	)

	arguments := auctions.ClaimArguments{
		Owner:     acct,
		Epoch:     2,
		Fractions: 500,
	}
	arguments.Signature = key.Sign(auth.Message("auctions.claim", actor, uint64(2), uint64(500)))

	var reply auctions.PaidReply
	err = a.Claim(&arguments, &reply)
	assert.Nil(t, err, "Claim error")
	assert.Equal(t, uint64(125), reply.Paid, "wrong paid amount")
}

func TestAuctionsDetailsUnsigned(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	details := auction.Details{
		Epoch:  1,
		State:  "Ongoing",
		MaxBid: 99,
		Timer:  time.Now(),
	}

	engine := mocks.NewMockAuctioneer(ctl)
	engine.EXPECT().AuctionDetails(uint64(3)).Return(details, nil).Times(1)

	a := auctions.New(
		logger.New(fixtures.LogCategory),
		func(_ mode.Mode) bool { return true },
		engine,
	)

	var reply auctions.DetailsReply
	err := a.Details(&auctions.DetailsArguments{AssetId: 3}, &reply)
	assert.Nil(t, err, "Details error")
	assert.Equal(t, details, reply.Details, "wrong details")
}

func TestAuctionsPoolDefaultsToCurrentEpoch(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	info := auction.PoolInfo{
		Epoch:       4,
		TotalSupply: 1000000,
	}

	engine := mocks.NewMockAuctioneer(ctl)
	engine.EXPECT().CurrentEpoch().Return(uint64(4)).Times(1)
	engine.EXPECT().PoolParameters(uint64(4)).Return(info, nil).Times(1)

	a := auctions.New(
		logger.New(fixtures.LogCategory),
		func(_ mode.Mode) bool { return true },
		engine,
	)

	var reply auctions.PoolReply
	err := a.Pool(&auctions.PoolArguments{Epoch: 0}, &reply)
	assert.Nil(t, err, "Pool error")
	assert.Equal(t, info, reply.Pool, "wrong pool info")
}
