// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Fractiond Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package auction_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fractiond/fractiond/auction"
	"github.com/fractiond/fractiond/fault"
	"github.com/fractiond/fractiond/rpc/fixtures"
)

const (
	exchangeToken = "USDT"

	alice = "alice"
	bob   = "bob"
	carol = "carol"
	dave  = "dave"
)

// vault double recording settlement calls
type testVault struct {
	release map[uint64]int64
	repaid  map[uint64]uint64
}

func (v *testVault) ReleaseAtAuctionStart(assetId uint64, auctionEnd time.Time) (int64, error) {
	return v.release[assetId], nil
}

func (v *testVault) RepayDebt(assetId uint64, amount uint64) error {
	v.repaid[assetId] += amount
	return nil
}

// payments double with in-memory balances
type testPayments struct {
	balances map[string]uint64
}

func (p *testPayments) ValidateIncomingPayment(payer string, token string, amount uint64) error {
	if exchangeToken != token {
		return fault.WrongExchangeToken
	}
	if p.balances[payer] < amount {
		return fault.InsufficientFunds
	}
	p.balances[payer] -= amount
	return nil
}

func (p *testPayments) TransferOut(token string, recipient string, amount uint64) error {
	p.balances[recipient] += amount
	return nil
}

func (p *testPayments) Balance(account string) uint64 {
	return p.balances[account]
}

type testEnv struct {
	vault    *testVault
	payments *testPayments
	assets   map[uint64]string // assetId → owner
	flags    map[uint64]bool
}

func setup(t *testing.T) *testEnv {
	fixtures.SetupTestLogger()

	env := &testEnv{
		vault:    &testVault{release: map[uint64]int64{}, repaid: map[uint64]uint64{}},
		payments: &testPayments{balances: map[string]uint64{}},
		assets:   map[uint64]string{},
		flags:    map[uint64]bool{},
	}

	handles := auction.Handles{
		Vault:    env.vault,
		Payments: env.payments,
		TransferAsset: func(assetId uint64, to string) error {
			env.assets[assetId] = to
			return nil
		},
		SetFractionalised: func(assetId uint64, flag bool) error {
			env.flags[assetId] = flag
			return nil
		},
	}

	err := auction.Initialise(handles, auction.Parameters{
		ExchangeToken:       exchangeToken,
		MinimumIncrementBps: 500,
	})
	if nil != err {
		t.Fatalf("auction initialise error: %s", err)
	}
	return env
}

func teardown(t *testing.T) {
	_ = auction.Finalise()
	fixtures.TeardownTestLogger()
}

// one asset fractionalised to alice with a million fractions
func oneAssetEpoch(t *testing.T, env *testEnv, exitPrice uint64, duration time.Duration, lockTime time.Duration) uint64 {
	epoch, err := auction.BeginEpoch(auction.EpochParameters{
		FractionsPerAsset:  1000000,
		ExitPrice:          exitPrice,
		UnlockThresholdBps: 5000,
		AuctionDuration:    duration,
		TopBidLockTime:     lockTime,
	})
	if nil != err {
		t.Fatalf("begin epoch error: %s", err)
	}

	env.assets[1] = alice
	env.flags[1] = true
	err = auction.Fractionalise(epoch, 1, alice)
	if nil != err {
		t.Fatalf("fractionalise error: %s", err)
	}
	return epoch
}

func TestBidBelowExitPriceStaysNotStarted(t *testing.T) {
	env := setup(t)
	defer teardown(t)
	oneAssetEpoch(t, env, 200, time.Hour, time.Hour)

	env.payments.balances[bob] = 1000

	err := auction.Bid(bob, 1, 150, 0)
	assert.Nil(t, err, "bid error")

	details, err := auction.AuctionDetails(1)
	assert.Nil(t, err, "details error")
	assert.Equal(t, "NotStarted", details.State, "wrong state")
	assert.Equal(t, uint64(150), details.MaxBid, "wrong max bid")
	assert.Equal(t, bob, details.MaxBidder, "wrong max bidder")
	assert.Equal(t, uint64(850), env.payments.balances[bob], "wrong escrowed payment")
}

func TestBidMinimumIncrement(t *testing.T) {
	env := setup(t)
	defer teardown(t)
	oneAssetEpoch(t, env, 100000, time.Hour, time.Hour)

	env.payments.balances[bob] = 1000
	env.payments.balances[carol] = 1000

	_ = auction.Bid(bob, 1, 150, 0)

	// 150 × 1.05 = 157.5 rounds down to 157
	err := auction.Bid(carol, 1, 156, 0)
	assert.Equal(t, fault.InvalidBid, err, "insufficient increment accepted")

	err = auction.Bid(carol, 1, 157, 0)
	assert.Nil(t, err, "minimum increment rejected")
}

func TestBidIncrementTieBreak(t *testing.T) {
	env := setup(t)
	defer teardown(t)
	oneAssetEpoch(t, env, 100000, time.Hour, time.Hour)

	env.payments.balances[bob] = 1000
	env.payments.balances[carol] = 1000

	_ = auction.Bid(bob, 1, 10, 0)

	// 10 × 1.05 rounds down to 10, the tie-break forces 11
	err := auction.Bid(carol, 1, 10, 0)
	assert.Equal(t, fault.InvalidBid, err, "equal bid accepted")

	err = auction.Bid(carol, 1, 11, 0)
	assert.Nil(t, err, "tie-break minimum rejected")
}

func TestPayoutBeforeAccept(t *testing.T) {
	env := setup(t)
	defer teardown(t)
	oneAssetEpoch(t, env, 100000, time.Hour, time.Hour)

	env.payments.balances[bob] = 150
	env.payments.balances[carol] = 200

	_ = auction.Bid(bob, 1, 150, 0)
	assert.Equal(t, uint64(0), env.payments.balances[bob], "bid not escrowed")

	err := auction.Bid(carol, 1, 200, 0)
	assert.Nil(t, err, "outbid error")
	assert.Equal(t, uint64(150), env.payments.balances[bob], "previous bidder not refunded")
	assert.Equal(t, uint64(0), env.payments.balances[carol], "new bid not escrowed")
}

func TestBidAtExitPriceStartsAuction(t *testing.T) {
	env := setup(t)
	defer teardown(t)
	epoch := oneAssetEpoch(t, env, 200, time.Hour, time.Hour)

	env.payments.balances[bob] = 1000

	// boundary: price equal to the exit price starts the auction
	err := auction.Bid(bob, 1, 200, 0)
	assert.Nil(t, err, "bid error")

	details, _ := auction.AuctionDetails(1)
	assert.Equal(t, "Ongoing", details.State, "auction not started")
	assert.Equal(t, uint64(1000000), details.TotalFractions, "denominator not frozen")

	info, _ := auction.PoolParameters(epoch)
	assert.Equal(t, uint64(0), info.NftCount, "nft count not decremented")
	assert.Equal(t, uint64(1000000), info.PendingSupply, "pending supply not moved")
	assert.Equal(t, uint64(0), info.LiquidSupply, "liquid supply not emptied")
}

func TestFullCoverageReservation(t *testing.T) {
	env := setup(t)
	defer teardown(t)
	oneAssetEpoch(t, env, 100000, time.Hour, time.Hour)

	// alice holds all fractions, her bid covers the denominator
	err := auction.Bid(alice, 1, 500, 1000000)
	assert.Nil(t, err, "covering bid error")

	details, _ := auction.AuctionDetails(1)
	assert.Equal(t, "Reserved", details.State, "full coverage did not reserve")
	assert.Equal(t, uint64(0), details.LockedBidAmount, "covering bid owes payment")

	env.payments.balances[bob] = 10000
	err = auction.Bid(bob, 1, 9999, 0)
	assert.Equal(t, fault.AuctionReserved, err, "bid on reserved auction accepted")

	// reserved finalizes immediately, regardless of timer
	err = auction.Redeem(alice, 1)
	assert.Nil(t, err, "redeem error")
	assert.Equal(t, alice, env.assets[1], "asset not transferred")
	assert.False(t, env.flags[1], "fractionalised flag not cleared")
}

func TestVoteThresholdStartsAuction(t *testing.T) {
	env := setup(t)
	defer teardown(t)
	epoch := oneAssetEpoch(t, env, 100000, time.Hour, time.Hour)

	_ = auction.TransferFractions(epoch, alice, bob, 300000)
	_ = auction.TransferFractions(epoch, alice, carol, 300000)

	env.payments.balances[dave] = 100
	_ = auction.Bid(dave, 1, 10, 0)

	err := auction.VoteToStartAuction(bob, 1, 250000)
	assert.Nil(t, err, "vote error")

	details, _ := auction.AuctionDetails(1)
	assert.Equal(t, "NotStarted", details.State, "auction started below threshold")

	// this vote crosses 50% of 1,000,000
	err = auction.VoteToStartAuction(carol, 1, 250001)
	assert.Nil(t, err, "crossing vote error")

	details, _ = auction.AuctionDetails(1)
	assert.Equal(t, "Ongoing", details.State, "threshold crossing did not start auction")
	assert.Equal(t, uint64(500001), details.VotesTotal, "wrong vote total")
}

func TestVoteThresholdWithoutBid(t *testing.T) {
	env := setup(t)
	defer teardown(t)
	epoch := oneAssetEpoch(t, env, 100000, time.Hour, time.Hour)

	_ = auction.TransferFractions(epoch, alice, bob, 600000)

	err := auction.VoteToStartAuction(bob, 1, 600000)
	assert.Equal(t, fault.NoBids, err, "threshold crossing without bid accepted")

	// the doomed call must not have locked anything
	locked, _ := auction.VotesOf(1, bob)
	assert.Equal(t, uint64(0), locked, "failed vote left a lock")
}

func TestMaxBidderCannotVote(t *testing.T) {
	env := setup(t)
	defer teardown(t)
	epoch := oneAssetEpoch(t, env, 100000, time.Hour, time.Hour)

	_ = auction.TransferFractions(epoch, alice, bob, 100000)
	env.payments.balances[bob] = 100
	_ = auction.Bid(bob, 1, 10, 0)

	err := auction.VoteToStartAuction(bob, 1, 1000)
	assert.Equal(t, fault.MaxBidderCannotVote, err, "max bidder vote accepted")
}

func TestRemoveVote(t *testing.T) {
	env := setup(t)
	defer teardown(t)
	epoch := oneAssetEpoch(t, env, 100000, time.Hour, time.Hour)

	_ = auction.TransferFractions(epoch, alice, bob, 100000)

	err := auction.VoteToStartAuction(bob, 1, 100000)
	assert.Nil(t, err, "vote error")

	err = auction.RemoveVoteToStartAuction(bob, 1, 200000)
	assert.Equal(t, fault.NotEnoughLockedVotes, err, "over-removal accepted")

	err = auction.RemoveVoteToStartAuction(bob, 1, 40000)
	assert.Nil(t, err, "remove vote error")

	locked, _ := auction.VotesOf(1, bob)
	assert.Equal(t, uint64(60000), locked, "wrong remaining lock")

	balance, _ := auction.BalanceOf(epoch, bob)
	assert.Equal(t, uint64(40000), balance, "fractions not returned")
}

func TestRemoveBid(t *testing.T) {
	env := setup(t)
	defer teardown(t)
	oneAssetEpoch(t, env, 100000, time.Hour, time.Nanosecond)

	env.payments.balances[bob] = 150
	_ = auction.Bid(bob, 1, 150, 0)

	err := auction.RemoveBid(carol, 1)
	assert.Equal(t, fault.NotMaxBidder, err, "stranger bid removal accepted")

	err = auction.RemoveBid(bob, 1)
	assert.Nil(t, err, "bid removal error")
	assert.Equal(t, uint64(150), env.payments.balances[bob], "bid not refunded")

	details, _ := auction.AuctionDetails(1)
	assert.Equal(t, uint64(0), details.MaxBid, "record not cleared")
	assert.Equal(t, "", details.MaxBidder, "bidder not cleared")
}

func TestRemoveBidBeforeLockExpiry(t *testing.T) {
	env := setup(t)
	defer teardown(t)
	oneAssetEpoch(t, env, 100000, time.Hour, time.Hour)

	env.payments.balances[bob] = 150
	_ = auction.Bid(bob, 1, 150, 0)

	err := auction.RemoveBid(bob, 1)
	assert.Equal(t, fault.BidRemovalNotAllowed, err, "early bid removal accepted")
}

func TestBidAfterAuctionEnd(t *testing.T) {
	env := setup(t)
	defer teardown(t)
	oneAssetEpoch(t, env, 100, time.Nanosecond, time.Hour)

	env.payments.balances[bob] = 1000
	env.payments.balances[carol] = 1000

	_ = auction.Bid(bob, 1, 100, 0)
	time.Sleep(time.Millisecond)

	err := auction.Bid(carol, 1, 500, 0)
	assert.Equal(t, fault.AuctionEnded, err, "bid after auction end accepted")
}

func TestFinalizeDistributionAndClaims(t *testing.T) {
	env := setup(t)
	defer teardown(t)
	epoch := oneAssetEpoch(t, env, 1000, time.Nanosecond, time.Hour)

	_ = auction.TransferFractions(epoch, alice, carol, 200000)
	_ = auction.VoteToStartAuction(carol, 1, 200000)

	env.payments.balances[dave] = 1000
	err := auction.Bid(dave, 1, 1000, 0)
	assert.Nil(t, err, "bid error")
	time.Sleep(time.Millisecond)

	err = auction.Redeem(dave, 1)
	assert.Nil(t, err, "redeem error")
	assert.Equal(t, dave, env.assets[1], "asset not transferred")

	info, _ := auction.PoolParameters(epoch)
	assert.Equal(t, uint64(0), info.PendingSupply, "pending supply not cleared")
	assert.Equal(t, uint64(200000), info.LockedSupply, "wrong locked supply")
	assert.Equal(t, uint64(800000), info.UnrestrictedSupply, "wrong unrestricted supply")
	// 1000 × 200,000 / 1,000,000 = 200 earmarked for the voter
	assert.Equal(t, uint64(800), info.UnrestrictedAmount, "wrong unrestricted amount")

	// conservation across the finalize
	assert.Equal(t, info.TotalSupply,
		info.LiquidSupply+info.UnrestrictedSupply+info.LockedSupply+info.PendingSupply,
		"supply conservation broken")

	// voter claims the locked pool share
	paid, err := auction.ClaimWithLockedFractions(carol, 1, 0, 0)
	assert.Nil(t, err, "locked claim error")
	assert.Equal(t, uint64(200), paid, "wrong locked claim payout")

	// a plain holder claims pro-rata against the unrestricted pool
	paid, err = auction.Claim(alice, epoch, 800000)
	assert.Nil(t, err, "claim error")
	assert.Equal(t, uint64(800), paid, "wrong unrestricted payout")

	info, _ = auction.PoolParameters(epoch)
	assert.Equal(t, uint64(0), info.TotalSupply, "fractions survived settlement")

	// fully settled epoch can be superseded
	_, err = auction.BeginEpoch(auction.EpochParameters{
		FractionsPerAsset:  1000,
		ExitPrice:          10,
		UnlockThresholdBps: 5000,
		AuctionDuration:    time.Hour,
		TopBidLockTime:     time.Hour,
	})
	assert.Nil(t, err, "epoch advance blocked after settlement")
}

func TestLockedClaimWithUnclaimableAdditional(t *testing.T) {
	env := setup(t)
	defer teardown(t)
	epoch := oneAssetEpoch(t, env, 1000, time.Nanosecond, time.Hour)

	// carol locks her entire holding behind the vote
	_ = auction.TransferFractions(epoch, alice, carol, 200000)
	_ = auction.VoteToStartAuction(carol, 1, 200000)

	env.payments.balances[dave] = 1000
	err := auction.Bid(dave, 1, 1000, 0)
	assert.Nil(t, err, "bid error")
	time.Sleep(time.Millisecond)

	err = auction.Redeem(dave, 1)
	assert.Nil(t, err, "redeem error")

	// the additional leg caps to carol's free balance of zero,
	// but the locked share must still pay out in full
	paid, err := auction.ClaimWithLockedFractions(carol, 1, 0, 5)
	assert.Nil(t, err, "locked claim error")
	assert.Equal(t, uint64(200), paid, "wrong locked claim payout")
	assert.Equal(t, uint64(200), env.payments.balances[carol], "payout not transferred")

	info, _ := auction.PoolParameters(epoch)
	assert.Equal(t, uint64(0), info.LockedSupply, "locked supply not released")

	// the locked share is spent, a retry has nothing to pay
	paid, err = auction.ClaimWithLockedFractions(carol, 1, 0, 5)
	assert.Equal(t, fault.NoFractions, err, "second claim accepted")
	assert.Equal(t, uint64(0), paid, "second claim paid out")
	assert.Equal(t, uint64(200), env.payments.balances[carol], "second claim changed balance")
}

func TestFinalizeIdempotent(t *testing.T) {
	env := setup(t)
	defer teardown(t)
	epoch := oneAssetEpoch(t, env, 100, time.Nanosecond, time.Hour)

	env.payments.balances[bob] = 100
	_ = auction.Bid(bob, 1, 100, 0)
	time.Sleep(time.Millisecond)

	_, err := auction.FinalizeAndClaim(alice, 1, 500000)
	assert.Nil(t, err, "finalize and claim error")

	before, _ := auction.PoolParameters(epoch)

	// second finalize must not redistribute
	err = auction.Redeem(bob, 1)
	assert.Nil(t, err, "redeem error")

	after, _ := auction.PoolParameters(epoch)
	assert.Equal(t, before.UnrestrictedAmount, after.UnrestrictedAmount, "finalize not idempotent")
	assert.Equal(t, before.UnrestrictedSupply, after.UnrestrictedSupply, "finalize not idempotent")

	err = auction.Redeem(bob, 1)
	assert.Equal(t, fault.AlreadyRedeemed, err, "double redeem accepted")
}

func TestFinalizeDebtCapping(t *testing.T) {
	env := setup(t)
	defer teardown(t)
	epoch := oneAssetEpoch(t, env, 30, time.Nanosecond, time.Hour)

	// the vault reports 50 of outstanding debt at auction start
	env.vault.release[1] = -50

	env.payments.balances[bob] = 30
	_ = auction.Bid(bob, 1, 30, 0)
	time.Sleep(time.Millisecond)

	err := auction.Redeem(bob, 1)
	assert.Nil(t, err, "redeem error")

	// repayment capped at the 30 of proceeds, nothing distributed
	assert.Equal(t, uint64(30), env.vault.repaid[1], "wrong debt repayment")
	info, _ := auction.PoolParameters(epoch)
	assert.Equal(t, uint64(0), info.UnrestrictedAmount, "proceeds distributed despite debt")
}

func TestFinalizeReleaseWinnerShare(t *testing.T) {
	env := setup(t)
	defer teardown(t)
	epoch := oneAssetEpoch(t, env, 1000, time.Nanosecond, time.Hour)

	// the vault releases 500 of escrow at auction start
	env.vault.release[1] = 500

	// bob buys half the fractions and attaches them to his bid
	_ = auction.TransferFractions(epoch, alice, bob, 500000)
	env.payments.balances[bob] = 1000

	// bidAmount = (1,000,000 − 500,000) × 1000 / 1,000,000 = 500
	err := auction.Bid(bob, 1, 1000, 500000)
	assert.Nil(t, err, "bid error")
	assert.Equal(t, uint64(500), env.payments.balances[bob], "wrong escrowed payment")
	time.Sleep(time.Millisecond)

	err = auction.Redeem(bob, 1)
	assert.Nil(t, err, "redeem error")

	// winner's share of the release: 500 × 500,000 / 1,000,000 = 250
	assert.Equal(t, uint64(750), env.payments.balances[bob], "wrong winner release share")

	// remaining proceeds 500 + 250 feed the unrestricted pool
	info, _ := auction.PoolParameters(epoch)
	assert.Equal(t, uint64(750), info.UnrestrictedAmount, "wrong unrestricted amount")
	assert.Equal(t, uint64(500000), info.UnrestrictedSupply, "wrong unrestricted supply")
}

func TestMintAdditionalKeepsRatio(t *testing.T) {
	env := setup(t)
	defer teardown(t)
	epoch := oneAssetEpoch(t, env, 1000, time.Hour, time.Hour)

	err := auction.MintAdditional(epoch, alice, 999)
	assert.Nil(t, err, "mint additional error")

	info, _ := auction.PoolParameters(epoch)
	assert.Equal(t, uint64(1000999), info.FractionsPerAsset, "ratio not updated")

	err = auction.MintAdditional(epoch, alice, 0)
	assert.Equal(t, fault.InvalidAmount, err, "zero mint accepted")
}

func TestEpochNotSettled(t *testing.T) {
	env := setup(t)
	defer teardown(t)
	oneAssetEpoch(t, env, 1000, time.Hour, time.Hour)

	_, err := auction.BeginEpoch(auction.EpochParameters{
		FractionsPerAsset:  1000,
		ExitPrice:          10,
		UnlockThresholdBps: 5000,
		AuctionDuration:    time.Hour,
		TopBidLockTime:     time.Hour,
	})
	assert.Equal(t, fault.EpochNotSettled, err, "epoch advanced with assets outstanding")
}

func TestCheckpointRoundTrip(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	checkpointFile := "auction-test-checkpoint.json"
	defer os.RemoveAll(checkpointFile)

	env := &testEnv{
		vault:    &testVault{release: map[uint64]int64{}, repaid: map[uint64]uint64{}},
		payments: &testPayments{balances: map[string]uint64{}},
		assets:   map[uint64]string{},
		flags:    map[uint64]bool{},
	}
	handles := auction.Handles{
		Vault:    env.vault,
		Payments: env.payments,
		TransferAsset: func(assetId uint64, to string) error {
			env.assets[assetId] = to
			return nil
		},
		SetFractionalised: func(assetId uint64, flag bool) error {
			env.flags[assetId] = flag
			return nil
		},
	}

	err := auction.Initialise(handles, auction.Parameters{
		ExchangeToken:       exchangeToken,
		MinimumIncrementBps: 500,
		CheckpointFile:      checkpointFile,
	})
	assert.Nil(t, err, "initialise error")

	epoch := oneAssetEpoch(t, env, 200, time.Hour, time.Hour)
	env.payments.balances[bob] = 1000
	_ = auction.Bid(bob, 1, 150, 0)

	saved, _ := auction.AuctionDetails(1)
	savedPool, _ := auction.PoolParameters(epoch)

	err = auction.SaveToFile()
	assert.Nil(t, err, "checkpoint save error")

	_ = auction.Finalise()
	err = auction.Initialise(handles, auction.Parameters{
		ExchangeToken:       exchangeToken,
		MinimumIncrementBps: 500,
		CheckpointFile:      checkpointFile,
	})
	assert.Nil(t, err, "re-initialise error")

	err = auction.LoadFromFile()
	assert.Nil(t, err, "checkpoint load error")

	restored, err := auction.AuctionDetails(1)
	assert.Nil(t, err, "restored details error")

	// the timer loses its monotonic reading across the round trip
	assert.True(t, saved.Timer.Equal(restored.Timer), "timer not restored")
	saved.Timer = restored.Timer
	assert.Equal(t, saved, restored, "record not restored")

	restoredPool, err := auction.PoolParameters(epoch)
	assert.Nil(t, err, "restored pool error")
	assert.Equal(t, savedPool, restoredPool, "pool not restored")

	_ = auction.Finalise()
}
