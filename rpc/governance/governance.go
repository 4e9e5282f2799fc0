// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Fractiond Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package governance

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/fractiond/fractiond/account"
	"github.com/fractiond/fractiond/fault"
	"github.com/fractiond/fractiond/mode"
	"github.com/fractiond/fractiond/rpc/auth"
	"github.com/fractiond/fractiond/rpc/ratelimit"
)

// Governance
// ----------

const (
	rateLimitGovernance = 200
	rateBurstGovernance = 100
)

// Handles - exit price operations used by the service
type Handles struct {
	Propose           func(actor string, epoch uint64, price uint64, duration time.Duration) (uint64, error)
	VoteOnProposal    func(actor string, id uint64, weight uint64) error
	FinalizeProposal  func(id uint64) (bool, error)
	SubmitOraclePrice func(actor string, epoch uint64, price uint64) error
}

// Governance - type for RPC
type Governance struct {
	Log          *logger.L
	Limiter      *rate.Limiter
	IsNormalMode func(mode.Mode) bool
	Handles      Handles
}

func New(log *logger.L,
	isNormalMode func(mode.Mode) bool,
	handles Handles,
) *Governance {
	return &Governance{
		Log:          log,
		Limiter:      rate.NewLimiter(rateLimitGovernance, rateBurstGovernance),
		IsNormalMode: isNormalMode,
		Handles:      handles,
	}
}

// checked - common validation for signed calls
func (governance *Governance) checked(owner *account.Account, signature account.Signature, operation string, parts ...interface{}) (string, error) {
	if err := ratelimit.Limit(governance.Limiter); nil != err {
		return "", err
	}
	if nil == owner {
		return "", fault.InvalidItem
	}
	if !governance.IsNormalMode(mode.Normal) {
		return "", fault.NotAvailableDuringStartup
	}

	actor := owner.String()
	err := auth.Verify(owner, signature, operation, append([]interface{}{actor}, parts...)...)
	if nil != err {
		return "", err
	}
	return actor, nil
}

// Propose an exit price
// ---------------------

// ProposeArguments - arguments for RPC
type ProposeArguments struct {
	Owner     *account.Account  `json:"owner"` // base58
	Epoch     uint64            `json:"epoch"`
	Price     uint64            `json:"price"`
	Duration  uint64            `json:"duration"` // seconds
	Signature account.Signature `json:"signature"`
}

// ProposeReply - identity of the created proposal
type ProposeReply struct {
	ProposalId uint64 `json:"proposalId"`
}

// Propose - open an exit price proposal
func (governance *Governance) Propose(arguments *ProposeArguments, reply *ProposeReply) error {
	if nil == arguments {
		return fault.InvalidItem
	}

	governance.Log.Infof("Governance.Propose: %+v", arguments)

	actor, err := governance.checked(arguments.Owner, arguments.Signature,
		"governance.propose", arguments.Epoch, arguments.Price, arguments.Duration)
	if nil != err {
		return err
	}

	id, err := governance.Handles.Propose(actor, arguments.Epoch, arguments.Price,
		time.Duration(arguments.Duration)*time.Second)
	if nil != err {
		return err
	}

	reply.ProposalId = id
	return nil
}

// Vote on a proposal
// ------------------

// VoteArguments - arguments for RPC
type VoteArguments struct {
	Owner      *account.Account  `json:"owner"` // base58
	ProposalId uint64            `json:"proposalId"`
	Weight     uint64            `json:"weight"`
	Signature  account.Signature `json:"signature"`
}

// VoteReply - empty result
type VoteReply struct{}

// Vote - add fraction-weighted support to a proposal
func (governance *Governance) Vote(arguments *VoteArguments, _ *VoteReply) error {
	if nil == arguments {
		return fault.InvalidItem
	}

	governance.Log.Infof("Governance.Vote: %+v", arguments)

	actor, err := governance.checked(arguments.Owner, arguments.Signature,
		"governance.vote", arguments.ProposalId, arguments.Weight)
	if nil != err {
		return err
	}

	return governance.Handles.VoteOnProposal(actor, arguments.ProposalId, arguments.Weight)
}

// Finalize a proposal
// -------------------

// FinalizeArguments - arguments for RPC
type FinalizeArguments struct {
	Owner      *account.Account  `json:"owner"` // base58
	ProposalId uint64            `json:"proposalId"`
	Signature  account.Signature `json:"signature"`
}

// FinalizeReply - outcome of the tally
type FinalizeReply struct {
	Passed bool `json:"passed"`
}

// Finalize - tally a proposal after its deadline
func (governance *Governance) Finalize(arguments *FinalizeArguments, reply *FinalizeReply) error {
	if nil == arguments {
		return fault.InvalidItem
	}

	governance.Log.Infof("Governance.Finalize: %+v", arguments)

	_, err := governance.checked(arguments.Owner, arguments.Signature,
		"governance.finalize", arguments.ProposalId)
	if nil != err {
		return err
	}

	passed, err := governance.Handles.FinalizeProposal(arguments.ProposalId)
	if nil != err {
		return err
	}

	reply.Passed = passed
	return nil
}

// Oracle price submission
// -----------------------

// OraclePriceArguments - arguments for RPC
type OraclePriceArguments struct {
	Owner     *account.Account  `json:"owner"` // base58
	Epoch     uint64            `json:"epoch"`
	Price     uint64            `json:"price"`
	Signature account.Signature `json:"signature"`
}

// OraclePriceReply - empty result
type OraclePriceReply struct{}

// SubmitOraclePrice - an approved oracle writes the exit price
func (governance *Governance) SubmitOraclePrice(arguments *OraclePriceArguments, _ *OraclePriceReply) error {
	if nil == arguments {
		return fault.InvalidItem
	}

	governance.Log.Infof("Governance.SubmitOraclePrice: %+v", arguments)

	actor, err := governance.checked(arguments.Owner, arguments.Signature,
		"governance.oraclePrice", arguments.Epoch, arguments.Price)
	if nil != err {
		return err
	}

	return governance.Handles.SubmitOraclePrice(actor, arguments.Epoch, arguments.Price)
}
