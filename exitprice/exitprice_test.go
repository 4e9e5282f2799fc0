// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Fractiond Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package exitprice_test

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/fractiond/fractiond/auction"
	"github.com/fractiond/fractiond/exitprice"
	"github.com/fractiond/fractiond/fault"
	"github.com/fractiond/fractiond/fraction"
	"github.com/fractiond/fractiond/rpc/fixtures"
	"github.com/fractiond/fractiond/rpc/mocks"
)

const (
	testEpoch = uint64(3)
)

type testEnv struct {
	ctl      *gomock.Controller
	engine   *mocks.MockAuctioneer
	approved map[string]bool
}

func setup(t *testing.T) *testEnv {
	fixtures.SetupTestLogger()

	env := &testEnv{
		ctl:      gomock.NewController(t),
		approved: make(map[string]bool),
	}
	env.engine = mocks.NewMockAuctioneer(env.ctl)

	err := exitprice.Initialise(env.engine, func(oracleAccount string) bool {
		return env.approved[oracleAccount]
	})
	assert.Nil(t, err, "Initialise error")
	return env
}

func (env *testEnv) teardown() {
	_ = exitprice.Finalise()
	env.ctl.Finish()
	fixtures.TeardownTestLogger()
}

func (env *testEnv) expectEpoch() {
	env.engine.EXPECT().
		ExitPrice(testEpoch).
		Return(uint64(100), nil).
		AnyTimes()
	env.engine.EXPECT().
		RegisterTransferHook(testEpoch, gomock.Any()).
		Return(nil).
		Times(1)
}

func TestProposeAndVote(t *testing.T) {
	env := setup(t)
	defer env.teardown()

	env.expectEpoch()
	env.engine.EXPECT().
		BalanceOf(testEpoch, "alice").
		Return(uint64(1000), nil).
		AnyTimes()

	id, err := exitprice.Propose("alice", testEpoch, 250, time.Hour)
	assert.Nil(t, err, "Propose error")

	err = exitprice.VoteOnProposal("alice", id, 600)
	assert.Nil(t, err, "vote error")

	err = exitprice.VoteOnProposal("alice", id, 500)
	assert.Equal(t, fault.InsufficientBalance, err, "weight above balance")

	proposal, weight, err := exitprice.GetProposal(id)
	assert.Nil(t, err, "GetProposal error")
	assert.Equal(t, uint64(250), proposal.Price, "proposal price")
	assert.Equal(t, "alice", proposal.Proposer, "proposer")
	assert.Equal(t, uint64(600), weight, "ballot weight")
}

func TestProposeValidation(t *testing.T) {
	env := setup(t)
	defer env.teardown()

	_, err := exitprice.Propose("alice", testEpoch, 0, time.Hour)
	assert.Equal(t, fault.InvalidExitPrice, err, "zero price")

	_, err = exitprice.Propose("alice", testEpoch, 250, 0)
	assert.Equal(t, fault.InvalidDuration, err, "zero duration")

	err = exitprice.VoteOnProposal("alice", 99, 10)
	assert.Equal(t, fault.ProposalNotFound, err, "unknown proposal")
}

func TestVoteValidation(t *testing.T) {
	env := setup(t)
	defer env.teardown()

	env.expectEpoch()

	id, err := exitprice.Propose("alice", testEpoch, 250, time.Hour)
	assert.Nil(t, err, "Propose error")

	err = exitprice.VoteOnProposal("alice", id, 0)
	assert.Equal(t, fault.InvalidAmount, err, "zero weight")
}

func TestFinalizePasses(t *testing.T) {
	env := setup(t)
	defer env.teardown()

	env.expectEpoch()
	env.engine.EXPECT().
		BalanceOf(testEpoch, "alice").
		Return(uint64(1000), nil).
		AnyTimes()
	env.engine.EXPECT().
		PoolParameters(testEpoch).
		Return(auction.PoolInfo{
			LiquidSupply:       1000,
			UnlockThresholdBps: 5000,
		}, nil).
		AnyTimes()
	env.engine.EXPECT().
		SetExitPrice(testEpoch, uint64(250)).
		Return(nil).
		Times(1)

	id, err := exitprice.Propose("alice", testEpoch, 250, time.Millisecond)
	assert.Nil(t, err, "Propose error")

	err = exitprice.VoteOnProposal("alice", id, 500)
	assert.Nil(t, err, "vote error")

	time.Sleep(5 * time.Millisecond)

	passed, err := exitprice.FinalizeProposal(id)
	assert.Nil(t, err, "FinalizeProposal error")
	assert.True(t, passed, "proposal should pass")

	_, err = exitprice.FinalizeProposal(id)
	assert.Equal(t, fault.ProposalAlreadyFinalized, err, "double finalize")
}

func TestFinalizeBelowThreshold(t *testing.T) {
	env := setup(t)
	defer env.teardown()

	env.expectEpoch()
	env.engine.EXPECT().
		BalanceOf(testEpoch, "alice").
		Return(uint64(1000), nil).
		AnyTimes()
	env.engine.EXPECT().
		PoolParameters(testEpoch).
		Return(auction.PoolInfo{
			LiquidSupply:       1000,
			UnlockThresholdBps: 5000,
		}, nil).
		AnyTimes()

	id, err := exitprice.Propose("alice", testEpoch, 250, time.Millisecond)
	assert.Nil(t, err, "Propose error")

	err = exitprice.VoteOnProposal("alice", id, 499)
	assert.Nil(t, err, "vote error")

	time.Sleep(5 * time.Millisecond)

	passed, err := exitprice.FinalizeProposal(id)
	assert.Nil(t, err, "FinalizeProposal error")
	assert.False(t, passed, "proposal should fail")
}

func TestFinalizeBeforeDeadline(t *testing.T) {
	env := setup(t)
	defer env.teardown()

	env.expectEpoch()

	id, err := exitprice.Propose("alice", testEpoch, 250, time.Hour)
	assert.Nil(t, err, "Propose error")

	_, err = exitprice.FinalizeProposal(id)
	assert.Equal(t, fault.ProposalStillActive, err, "finalize before deadline")
}

func TestTransferStripsBallots(t *testing.T) {
	env := setup(t)
	defer env.teardown()

	var hook fraction.TransferHook

	env.engine.EXPECT().
		ExitPrice(testEpoch).
		Return(uint64(100), nil).
		AnyTimes()
	env.engine.EXPECT().
		RegisterTransferHook(testEpoch, gomock.Any()).
		DoAndReturn(func(epoch uint64, h fraction.TransferHook) error {
			hook = h
			return nil
		}).
		Times(1)
	env.engine.EXPECT().
		BalanceOf(testEpoch, "alice").
		Return(uint64(1000), nil).
		AnyTimes()

	id, err := exitprice.Propose("alice", testEpoch, 250, time.Hour)
	assert.Nil(t, err, "Propose error")

	err = exitprice.VoteOnProposal("alice", id, 800)
	assert.Nil(t, err, "vote error")

	// alice transfers away all but 300 fractions
	hook("alice", "bob", 300)

	_, weight, err := exitprice.GetProposal(id)
	assert.Nil(t, err, "GetProposal error")
	assert.Equal(t, uint64(300), weight, "ballot weight after transfer")

	// a transfer leaving the full weight intact changes nothing
	hook("alice", "bob", 300)

	_, weight, err = exitprice.GetProposal(id)
	assert.Nil(t, err, "GetProposal error")
	assert.Equal(t, uint64(300), weight, "ballot weight unchanged")
}

func TestVoteDuringConcurrentTransferStrip(t *testing.T) {
	env := setup(t)
	defer env.teardown()

	var hook fraction.TransferHook

	env.engine.EXPECT().
		ExitPrice(testEpoch).
		Return(uint64(100), nil).
		AnyTimes()
	env.engine.EXPECT().
		RegisterTransferHook(testEpoch, gomock.Any()).
		DoAndReturn(func(epoch uint64, h fraction.TransferHook) error {
			hook = h
			return nil
		}).
		Times(1)
	env.engine.EXPECT().
		BalanceOf(testEpoch, "alice").
		Return(uint64(1000), nil).
		Times(1)
	// the ledger fires the strip hook while the balance is being
	// read, the way a transfer racing the vote would
	env.engine.EXPECT().
		BalanceOf(testEpoch, "alice").
		DoAndReturn(func(epoch uint64, holder string) (uint64, error) {
			hook("alice", "bob", 200)
			return uint64(200), nil
		}).
		Times(1)

	id, err := exitprice.Propose("alice", testEpoch, 250, time.Hour)
	assert.Nil(t, err, "Propose error")

	err = exitprice.VoteOnProposal("alice", id, 800)
	assert.Nil(t, err, "vote error")

	// must return, not deadlock, and must see the stripped weight
	err = exitprice.VoteOnProposal("alice", id, 50)
	assert.Equal(t, fault.InsufficientBalance, err, "stripped ballot overcommitted")

	_, weight, err := exitprice.GetProposal(id)
	assert.Nil(t, err, "GetProposal error")
	assert.Equal(t, uint64(200), weight, "ballot weight after strip")
}

func TestSubmitOraclePrice(t *testing.T) {
	env := setup(t)
	defer env.teardown()

	env.engine.EXPECT().
		SetExitPrice(testEpoch, uint64(400)).
		Return(nil).
		Times(2)

	err := exitprice.SubmitOraclePrice("oracle-2", testEpoch, 400)
	assert.Equal(t, fault.OracleNotApproved, err, "unapproved oracle")

	env.approved["oracle-1"] = true
	err = exitprice.SubmitOraclePrice("oracle-1", testEpoch, 400)
	assert.Nil(t, err, "SubmitOraclePrice error")

	// approval is cached, immediate revocation is not seen
	env.approved["oracle-1"] = false
	err = exitprice.SubmitOraclePrice("oracle-1", testEpoch, 400)
	assert.Nil(t, err, "cached approval")
}
