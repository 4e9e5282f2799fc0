// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Fractiond Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package exitprice - governance of the auction exit price
//
// two paths write the price: fraction-weighted proposals, and direct
// submission by an approved oracle; ballot weight is soft — moving
// the backing fractions silently strips the vote, never the transfer
package exitprice

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	gocache "github.com/patrickmn/go-cache"

	"github.com/fractiond/fractiond/auction"
	"github.com/fractiond/fractiond/background"
	"github.com/fractiond/fractiond/constants"
	"github.com/fractiond/fractiond/fault"
	"github.com/fractiond/fractiond/votes"
)

// Proposal - one pending exit price change
type Proposal struct {
	Id        uint64    `json:"id"`
	Epoch     uint64    `json:"epoch"`
	Price     uint64    `json:"price"`
	Proposer  string    `json:"proposer"`
	Deadline  time.Time `json:"deadline"`
	Finalized bool      `json:"finalized"`
	Passed    bool      `json:"passed"`

	ballots *votes.Tracker
}

// IsOracleApproved - oracle registry lookup, cached with a TTL
type IsOracleApproved func(oracleAccount string) bool

// globals for this module
type globalDataType struct {
	sync.Mutex
	log *logger.L

	engine     auction.Auctioneer
	isApproved IsOracleApproved

	// approval lookups are cached briefly
	approvals *gocache.Cache

	nextId    uint64
	proposals map[uint64]*Proposal

	// epochs that already carry the ballot strip hook
	hooked map[uint64]bool

	background  *background.T
	initialised bool
}

var globalData globalDataType

// Initialise - start the governance module
func Initialise(engine auction.Auctioneer, isApproved IsOracleApproved) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}
	if nil == engine || nil == isApproved {
		return fault.MissingParameters
	}

	globalData.log = logger.New("exitprice")
	globalData.log.Info("starting…")

	globalData.engine = engine
	globalData.isApproved = isApproved
	globalData.approvals = gocache.New(constants.OracleApprovalCacheTime, constants.OracleApprovalCacheTime)
	globalData.nextId = 0
	globalData.proposals = make(map[uint64]*Proposal)
	globalData.hooked = make(map[uint64]bool)
	globalData.initialised = true

	processes := background.Processes{&proposalSweeper{}}
	globalData.background = background.Start(processes, globalData.log)
	return nil
}

// Finalise - stop the governance module
func Finalise() error {
	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.background.Stop()
	globalData.log.Flush()
	globalData.initialised = false
	return nil
}

// Propose - open an exit price proposal for an epoch
//
// the engine is never called while the module lock is held: the
// ledger transfer hook takes this lock, so the reverse order would
// deadlock
func Propose(actor string, epoch uint64, price uint64, duration time.Duration) (uint64, error) {
	if !globalData.initialised {
		return 0, fault.NotInitialised
	}
	if 0 == price {
		return 0, fault.InvalidExitPrice
	}
	if duration <= 0 {
		return 0, fault.InvalidDuration
	}

	// the epoch must exist
	_, err := globalData.engine.ExitPrice(epoch)
	if nil != err {
		return 0, err
	}

	err = ensureHook(epoch)
	if nil != err {
		return 0, err
	}

	globalData.Lock()
	defer globalData.Unlock()

	globalData.nextId += 1
	id := globalData.nextId
	globalData.proposals[id] = &Proposal{
		Id:       id,
		Epoch:    epoch,
		Price:    price,
		Proposer: actor,
		Deadline: time.Now().Add(duration),
		ballots:  votes.NewTracker(),
	}

	globalData.log.Infof("proposal: %d epoch: %d price: %d by: %s", id, epoch, price, actor)
	return id, nil
}

// VoteOnProposal - add fraction-weighted support to a proposal
//
// total recorded weight may never exceed the holder's balance; the
// balance is snapshotted before the module lock is taken — a
// concurrent transfer strips the ballot back down through the hook
func VoteOnProposal(actor string, id uint64, weight uint64) error {
	if !globalData.initialised {
		return fault.NotInitialised
	}
	if 0 == weight {
		return fault.InvalidAmount
	}

	globalData.Lock()
	proposal, ok := globalData.proposals[id]
	if !ok {
		globalData.Unlock()
		return fault.ProposalNotFound
	}
	epoch := proposal.Epoch
	globalData.Unlock()

	balance, err := globalData.engine.BalanceOf(epoch, actor)
	if nil != err {
		return err
	}

	globalData.Lock()
	defer globalData.Unlock()

	proposal, ok = globalData.proposals[id]
	if !ok {
		return fault.ProposalNotFound
	}
	if proposal.Finalized {
		return fault.ProposalAlreadyFinalized
	}
	if time.Now().After(proposal.Deadline) {
		return fault.InvalidProposal
	}
	if proposal.ballots.LockedBy(actor)+weight > balance {
		return fault.InsufficientBalance
	}

	proposal.ballots.Lock(actor, weight)
	return nil
}

// FinalizeProposal - tally a proposal after its deadline
//
// passes when the recorded weight reaches the epoch's unlock
// threshold share of the liquid supply, then writes the exit price
func FinalizeProposal(id uint64) (bool, error) {
	if !globalData.initialised {
		return false, fault.NotInitialised
	}

	globalData.Lock()
	proposal, ok := globalData.proposals[id]
	if !ok {
		globalData.Unlock()
		return false, fault.ProposalNotFound
	}
	epoch := proposal.Epoch
	globalData.Unlock()

	info, err := globalData.engine.PoolParameters(epoch)
	if nil != err {
		return false, err
	}

	globalData.Lock()

	proposal, ok = globalData.proposals[id]
	if !ok {
		globalData.Unlock()
		return false, fault.ProposalNotFound
	}
	if proposal.Finalized {
		globalData.Unlock()
		return false, fault.ProposalAlreadyFinalized
	}
	if time.Now().Before(proposal.Deadline) {
		globalData.Unlock()
		return false, fault.ProposalStillActive
	}

	weight := proposal.ballots.Total()
	passed := weight*constants.BasisPoints >=
		info.LiquidSupply*info.UnlockThresholdBps

	proposal.Finalized = true
	proposal.Passed = passed
	price := proposal.Price
	globalData.Unlock()

	if passed {
		err = globalData.engine.SetExitPrice(epoch, price)
		if nil != err {
			return false, err
		}
	}

	globalData.log.Infof("proposal: %d finalized passed: %v weight: %d",
		id, passed, weight)
	return passed, nil
}

// SubmitOraclePrice - an approved oracle writes the exit price
func SubmitOraclePrice(actor string, epoch uint64, price uint64) error {
	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.Lock()
	approved := approvedLocked(actor)
	globalData.Unlock()

	if !approved {
		return fault.OracleNotApproved
	}
	return globalData.engine.SetExitPrice(epoch, price)
}

// GetProposal - read one proposal and its current weight
func GetProposal(id uint64) (Proposal, uint64, error) {
	globalData.Lock()
	defer globalData.Unlock()

	proposal, ok := globalData.proposals[id]
	if !ok {
		return Proposal{}, 0, fault.ProposalNotFound
	}
	return *proposal, proposal.ballots.Total(), nil
}

// registry lookup with a short lived cache in front
// caller must hold the module lock
func approvedLocked(oracleAccount string) bool {
	if cached, ok := globalData.approvals.Get(oracleAccount); ok {
		return cached.(bool)
	}
	approved := globalData.isApproved(oracleAccount)
	globalData.approvals.Set(oracleAccount, approved, gocache.DefaultExpiration)
	return approved
}

// attach the ballot strip hook to an epoch's ledger once
//
// registration happens outside the module lock; a racing duplicate
// registration is harmless as stripping is idempotent
func ensureHook(epoch uint64) error {
	globalData.Lock()
	hooked := globalData.hooked[epoch]
	globalData.Unlock()
	if hooked {
		return nil
	}

	err := globalData.engine.RegisterTransferHook(epoch, func(from string, to string, remaining uint64) {
		stripBallots(epoch, from, remaining)
	})
	if nil != err {
		return err
	}

	globalData.Lock()
	globalData.hooked[epoch] = true
	globalData.Unlock()
	return nil
}

// silently reduce a holder's ballot weight to fractions still held
//
// runs from the ledger transfer hook, so it must not call back into
// the engine
func stripBallots(epoch uint64, holder string, remaining uint64) {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return
	}

	for _, proposal := range globalData.proposals {
		if proposal.Epoch != epoch || proposal.Finalized {
			continue
		}
		removed := proposal.ballots.Strip(holder, remaining)
		if removed > 0 {
			globalData.log.Debugf("proposal: %d stripped: %d from: %s",
				proposal.Id, removed, holder)
		}
	}
}

// background loop dropping old finalized or expired proposals
type proposalSweeper struct{}

// Run - the sweeper process
func (sweeper *proposalSweeper) Run(args interface{}, shutdown <-chan struct{}) {
	log := globalData.log

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-time.After(constants.ProposalSweepInterval):
			dropped := sweep(time.Now())
			if dropped > 0 {
				log.Infof("dropped %d stale proposals", dropped)
			}
		}
	}
}

func sweep(now time.Time) int {
	globalData.Lock()
	defer globalData.Unlock()

	dropped := 0
	for id, proposal := range globalData.proposals {
		if now.After(proposal.Deadline.Add(constants.ProposalRetention)) {
			delete(globalData.proposals, id)
			dropped += 1
		}
	}
	return dropped
}
