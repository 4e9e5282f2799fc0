// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Fractiond Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fractions_test

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/fractiond/fractiond/account"
	"github.com/fractiond/fractiond/fault"
	"github.com/fractiond/fractiond/minter"
	"github.com/fractiond/fractiond/mode"
	"github.com/fractiond/fractiond/rpc/auth"
	"github.com/fractiond/fractiond/rpc/fixtures"
	"github.com/fractiond/fractiond/rpc/fractions"
	"github.com/fractiond/fractiond/rpc/mocks"
)

func TestFractionsMint(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	acct, key, err := account.NewAccount(true)
	assert.Nil(t, err, "NewAccount error")
	actor := acct.String()

	engine := mocks.NewMockAuctioneer(ctl)

	var gotActor string
	var gotRequest minter.MintRequest
	f := fractions.New(
		logger.New(fixtures.LogCategory),
		func(_ mode.Mode) bool { return true },
		engine,
		func(a string, request minter.MintRequest) (uint64, error) {
			gotActor = a
			gotRequest = request
			return 2, nil
		},
		func(string, uint64) error { return nil },
		func(string, uint64, uint64) error { return nil },
	)

	arguments := fractions.MintArguments{
		Owner:              acct,
		AssetIds:           []uint64{1, 2},
		FractionsPerAsset:  1000000,
		ExitPrice:          100,
		UnlockThresholdBps: 5000,
		AuctionDuration:    3600,
		TopBidLockTime:     600,
	}
	arguments.Signature = key.Sign(auth.Message("fractions.mint",
		actor, []uint64{1, 2}, uint64(1000000), uint64(100), uint64(5000), uint64(3600), uint64(600)))

	var reply fractions.MintReply
	err = f.Mint(&arguments, &reply)
	assert.Nil(t, err, "Mint error")
	assert.Equal(t, uint64(2), reply.Epoch, "wrong epoch")
	assert.Equal(t, actor, gotActor, "wrong actor")
	assert.Equal(t, minter.MintRequest{
		AssetIds:           []uint64{1, 2},
		FractionsPerAsset:  1000000,
		ExitPrice:          100,
		UnlockThresholdBps: 5000,
		AuctionDuration:    time.Hour,
		TopBidLockTime:     10 * time.Minute,
	}, gotRequest, "wrong mint request")
}

func TestFractionsMintBadSignature(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	acct, key, err := account.NewAccount(true)
	assert.Nil(t, err, "NewAccount error")

	engine := mocks.NewMockAuctioneer(ctl)

	f := fractions.New(
		logger.New(fixtures.LogCategory),
		func(_ mode.Mode) bool { return true },
		engine,
		func(string, minter.MintRequest) (uint64, error) {
			t.Fatal("mint must not run")
			return 0, nil
		},
		func(string, uint64) error { return nil },
		func(string, uint64, uint64) error { return nil },
	)

	arguments := fractions.MintArguments{
		Owner:             acct,
		AssetIds:          []uint64{1},
		FractionsPerAsset: 1000000,
		ExitPrice:         100,
	}
	// signed over a different asset list
	arguments.Signature = key.Sign(auth.Message("fractions.mint",
		acct.String(), []uint64{2}, uint64(1000000), uint64(100), uint64(0), uint64(0), uint64(0)))

	var reply fractions.MintReply
	err = f.Mint(&arguments, &reply)
	assert.Equal(t, fault.InvalidSignature, err, "forged mint accepted")
}

func TestFractionsBalanceDefaultsToCurrentEpoch(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	acct, _, err := account.NewAccount(true)
	assert.Nil(t, err, "NewAccount error")

	engine := mocks.NewMockAuctioneer(ctl)
	engine.EXPECT().CurrentEpoch().Return(uint64(3)).Times(1)
	engine.EXPECT().BalanceOf(uint64(3), acct.String()).Return(uint64(12345), nil).Times(1)

	f := fractions.New(
		logger.New(fixtures.LogCategory),
		func(_ mode.Mode) bool { return true },
		engine,
		nil,
		nil,
		nil,
	)

	var reply fractions.BalanceReply
	err = f.Balance(&fractions.BalanceArguments{Owner: acct}, &reply)
	assert.Nil(t, err, "Balance error")
	assert.Equal(t, uint64(3), reply.Epoch, "wrong epoch")
	assert.Equal(t, uint64(12345), reply.Balance, "wrong balance")
}

func TestFractionsTransfer(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	acct, key, err := account.NewAccount(true)
	assert.Nil(t, err, "NewAccount error")
	recipient, _, err := account.NewAccount(true)
	assert.Nil(t, err, "NewAccount error")

	actor := acct.String()
	to := recipient.String()

	engine := mocks.NewMockAuctioneer(ctl)
	engine.EXPECT().TransferFractions(uint64(2), actor, to, uint64(700)).Return(nil).Times(1)
	engine.EXPECT().BalanceOf(uint64(2), actor).Return(uint64(300), nil).Times(1)

	f := fractions.New(
		logger.New(fixtures.LogCategory),
		func(_ mode.Mode) bool { return true },
		engine,
		nil,
		nil,
		nil,
	)

	arguments := fractions.TransferArguments{
		Owner:     acct,
		Recipient: recipient,
		Epoch:     2,
		Amount:    700,
	}
	arguments.Signature = key.Sign(auth.Message("fractions.transfer", actor, to, uint64(2), uint64(700)))

	var reply fractions.TransferReply
	err = f.Transfer(&arguments, &reply)
	assert.Nil(t, err, "Transfer error")
	assert.Equal(t, uint64(300), reply.Remaining, "wrong remaining balance")
}

func TestFractionsMintExisting(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	acct, key, err := account.NewAccount(true)
	assert.Nil(t, err, "NewAccount error")
	actor := acct.String()

	engine := mocks.NewMockAuctioneer(ctl)
	engine.EXPECT().CurrentEpoch().Return(uint64(4)).Times(1)

	var gotActor string
	var gotFirstId, gotLength uint64
	f := fractions.New(
		logger.New(fixtures.LogCategory),
		func(_ mode.Mode) bool { return true },
		engine,
		nil,
		nil,
		func(a string, firstId uint64, length uint64) error {
			gotActor = a
			gotFirstId = firstId
			gotLength = length
			return nil
		},
	)

	arguments := fractions.MintExistingArguments{
		Owner:   acct,
		FirstId: 10,
		Length:  3,
	}
	arguments.Signature = key.Sign(auth.Message("fractions.mintExisting", actor, uint64(10), uint64(3)))

	var reply fractions.MintExistingReply
	err = f.MintExisting(&arguments, &reply)
	assert.Nil(t, err, "MintExisting error")
	assert.Equal(t, uint64(4), reply.Epoch, "wrong epoch")
	assert.Equal(t, actor, gotActor, "wrong actor")
	assert.Equal(t, uint64(10), gotFirstId, "wrong first id")
	assert.Equal(t, uint64(3), gotLength, "wrong asset count")
}
