// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Fractiond Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package minter_test

import (
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/fractiond/fractiond/asset"
	"github.com/fractiond/fractiond/auction"
	"github.com/fractiond/fractiond/constants"
	"github.com/fractiond/fractiond/fault"
	"github.com/fractiond/fractiond/minter"
	"github.com/fractiond/fractiond/rpc/fixtures"
	"github.com/fractiond/fractiond/rpc/mocks"
	"github.com/fractiond/fractiond/storage"
)

const (
	databaseFileName = "minter-test.leveldb"
	protocolAccount  = "protocol"
	owner            = "owner"
)

func setup(t *testing.T, engine auction.Auctioneer) {
	fixtures.SetupTestLogger()
	os.RemoveAll(databaseFileName)
	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	err = asset.Initialise(protocolAccount)
	if nil != err {
		t.Fatalf("asset initialise error: %s", err)
	}
	err = minter.Initialise(engine, minter.Configuration{
		MinimumFractionAmount: 1000,
		MaximumFractionAmount: 10000000,
		ProtocolAccount:       protocolAccount,
	})
	if nil != err {
		t.Fatalf("minter initialise error: %s", err)
	}
}

func teardown(t *testing.T) {
	_ = minter.Finalise()
	_ = asset.Finalise()
	storage.Finalise()
	os.RemoveAll(databaseFileName)
	fixtures.TeardownTestLogger()
}

// register an asset and drive it to the requested custody state
func registerAsset(t *testing.T, state asset.State) uint64 {
	assetId, err := asset.Register(owner, "digest")
	if nil != err {
		t.Fatalf("register error: %s", err)
	}
	if state >= asset.StateCheckedIn {
		_ = asset.CheckIn(assetId, owner)
	}
	if state >= asset.StateVerified {
		_ = asset.Verify(assetId, protocolAccount)
	}
	return assetId
}

func TestMintFractionsOwnerPath(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	engine := mocks.NewMockAuctioneer(ctl)
	setup(t, engine)
	defer teardown(t)

	assetId := registerAsset(t, asset.StateCheckedIn)

	engine.EXPECT().
		BeginEpoch(auction.EpochParameters{
			FractionsPerAsset:  1000000,
			ExitPrice:          100,
			UnlockThresholdBps: constants.DefaultUnlockThresholdBps,
			AuctionDuration:    constants.DefaultAuctionDuration,
			TopBidLockTime:     constants.DefaultTopBidLockTime,
		}).
		Return(uint64(1), nil).
		Times(1)
	engine.EXPECT().
		Fractionalise(uint64(1), assetId, owner).
		Return(nil).
		Times(1)

	epoch, err := minter.MintFractions(owner, minter.MintRequest{
		AssetIds:          []uint64{assetId},
		FractionsPerAsset: 1000000,
		ExitPrice:         100,
	})
	assert.Nil(t, err, "mint error")
	assert.Equal(t, uint64(1), epoch, "wrong epoch")

	flagged, _ := asset.IsFractionalised(assetId)
	assert.True(t, flagged, "asset not flagged")
}

func TestMintFractionsRequiresCheckIn(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	engine := mocks.NewMockAuctioneer(ctl)
	setup(t, engine)
	defer teardown(t)

	assetId := registerAsset(t, asset.StateRegistered)

	_, err := minter.MintFractions(owner, minter.MintRequest{
		AssetIds:          []uint64{assetId},
		FractionsPerAsset: 1000000,
		ExitPrice:         100,
	})
	assert.Equal(t, fault.InvalidCustodyState, err, "unchecked asset minted")
}

func TestMintFractionsForcefulPath(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	engine := mocks.NewMockAuctioneer(ctl)
	setup(t, engine)
	defer teardown(t)

	checkedIn := registerAsset(t, asset.StateCheckedIn)
	verified := registerAsset(t, asset.StateVerified)

	// the protocol path requires full verification
	_, err := minter.MintFractions(protocolAccount, minter.MintRequest{
		AssetIds:          []uint64{checkedIn},
		FractionsPerAsset: 1000000,
		ExitPrice:         100,
	})
	assert.Equal(t, fault.InvalidCustodyState, err, "unverified asset force-minted")

	engine.EXPECT().BeginEpoch(gomock.Any()).Return(uint64(1), nil).Times(1)
	// fractions still go to the owner, not the protocol account
	engine.EXPECT().Fractionalise(uint64(1), verified, owner).Return(nil).Times(1)

	_, err = minter.MintFractions(protocolAccount, minter.MintRequest{
		AssetIds:          []uint64{verified},
		FractionsPerAsset: 1000000,
		ExitPrice:         100,
	})
	assert.Nil(t, err, "forceful mint error")
}

func TestMintFractionsValidation(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	engine := mocks.NewMockAuctioneer(ctl)
	setup(t, engine)
	defer teardown(t)

	assetId := registerAsset(t, asset.StateCheckedIn)

	_, err := minter.MintFractions(owner, minter.MintRequest{
		AssetIds:          []uint64{},
		FractionsPerAsset: 1000000,
		ExitPrice:         100,
	})
	assert.Equal(t, fault.InvalidCount, err, "empty batch accepted")

	_, err = minter.MintFractions(owner, minter.MintRequest{
		AssetIds:          []uint64{assetId},
		FractionsPerAsset: 10,
		ExitPrice:         100,
	})
	assert.Equal(t, fault.InvalidFractionAmount, err, "amount below band accepted")

	_, err = minter.MintFractions(owner, minter.MintRequest{
		AssetIds:          []uint64{assetId},
		FractionsPerAsset: 1000000,
		ExitPrice:         0,
	})
	assert.Equal(t, fault.InvalidExitPrice, err, "zero exit price accepted")

	_, err = minter.MintFractions(owner, minter.MintRequest{
		AssetIds:           []uint64{assetId},
		FractionsPerAsset:  1000000,
		ExitPrice:          100,
		UnlockThresholdBps: 10001,
	})
	assert.Equal(t, fault.InvalidUnlockThreshold, err, "threshold above 100% accepted")
}

func TestMintFractionsExisting(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	engine := mocks.NewMockAuctioneer(ctl)
	setup(t, engine)
	defer teardown(t)

	first := registerAsset(t, asset.StateCheckedIn)
	second := registerAsset(t, asset.StateCheckedIn)
	assert.Equal(t, first+1, second, "test expects consecutive ids")

	engine.EXPECT().CurrentEpoch().Return(uint64(3)).Times(1)
	engine.EXPECT().
		PoolParameters(uint64(3)).
		Return(auction.PoolInfo{Epoch: 3, NftCount: 5, FractionsPerAsset: 1000000}, nil).
		Times(1)
	engine.EXPECT().Fractionalise(uint64(3), first, owner).Return(nil).Times(1)
	engine.EXPECT().Fractionalise(uint64(3), second, owner).Return(nil).Times(1)

	err := minter.MintFractionsExisting(owner, first, 2)
	assert.Nil(t, err, "extend mint error")
}

func TestMintAdditionalFractions(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	engine := mocks.NewMockAuctioneer(ctl)
	setup(t, engine)
	defer teardown(t)

	err := minter.MintAdditionalFractions(owner, 500)
	assert.Equal(t, fault.NotProtocolAccount, err, "non-protocol top-up accepted")

	engine.EXPECT().CurrentEpoch().Return(uint64(2)).AnyTimes()
	engine.EXPECT().
		PoolParameters(uint64(2)).
		Return(auction.PoolInfo{Epoch: 2, NftCount: 5, FractionsPerAsset: 1000000}, nil).
		AnyTimes()
	engine.EXPECT().MintAdditional(uint64(2), protocolAccount, uint64(500)).Return(nil).Times(1)

	err = minter.MintAdditionalFractions(protocolAccount, 500)
	assert.Nil(t, err, "top-up error")

	// a top-up that would push past the band maximum is rejected
	err = minter.MintAdditionalFractions(protocolAccount, 50000000000)
	assert.Equal(t, fault.InvalidFractionAmount, err, "band overflow accepted")
}
