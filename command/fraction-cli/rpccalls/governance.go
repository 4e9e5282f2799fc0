// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Fractiond Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/fractiond/fractiond/account"
	"github.com/fractiond/fractiond/rpc/auth"
	"github.com/fractiond/fractiond/rpc/governance"
)

// ProposeData - data for an exit price proposal request
type ProposeData struct {
	Owner    *account.PrivateKey
	Epoch    uint64
	Price    uint64
	Duration uint64 // seconds
}

// Propose - open an exit price proposal
func (client *Client) Propose(proposeConfig *ProposeData) (*governance.ProposeReply, error) {

	owner := proposeConfig.Owner.Account()

	arguments := governance.ProposeArguments{
		Owner:    owner,
		Epoch:    proposeConfig.Epoch,
		Price:    proposeConfig.Price,
		Duration: proposeConfig.Duration,
	}
	arguments.Signature = proposeConfig.Owner.Sign(auth.Message("governance.propose",
		owner.String(),
		arguments.Epoch,
		arguments.Price,
		arguments.Duration,
	))

	client.printJson("Propose Request", arguments)

	var reply governance.ProposeReply
	err := client.client.Call("Governance.Propose", &arguments, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Propose Reply", reply)

	return &reply, nil
}

// VoteOnProposal - add fraction-weighted support to a proposal
func (client *Client) VoteOnProposal(owner *account.PrivateKey, proposalId uint64, weight uint64) error {

	arguments := governance.VoteArguments{
		Owner:      owner.Account(),
		ProposalId: proposalId,
		Weight:     weight,
	}
	arguments.Signature = owner.Sign(auth.Message("governance.vote",
		arguments.Owner.String(), proposalId, weight))

	client.printJson("ProposalVote Request", arguments)

	var reply governance.VoteReply
	err := client.client.Call("Governance.Vote", &arguments, &reply)
	if nil != err {
		return err
	}

	client.printJson("ProposalVote Reply", reply)

	return nil
}

// FinalizeProposal - tally a proposal after its deadline
func (client *Client) FinalizeProposal(owner *account.PrivateKey, proposalId uint64) (*governance.FinalizeReply, error) {

	arguments := governance.FinalizeArguments{
		Owner:      owner.Account(),
		ProposalId: proposalId,
	}
	arguments.Signature = owner.Sign(auth.Message("governance.finalize",
		arguments.Owner.String(), proposalId))

	client.printJson("Finalize Request", arguments)

	var reply governance.FinalizeReply
	err := client.client.Call("Governance.Finalize", &arguments, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Finalize Reply", reply)

	return &reply, nil
}

// SubmitOraclePrice - an approved oracle writes the exit price
func (client *Client) SubmitOraclePrice(owner *account.PrivateKey, epoch uint64, price uint64) error {

	arguments := governance.OraclePriceArguments{
		Owner: owner.Account(),
		Epoch: epoch,
		Price: price,
	}
	arguments.Signature = owner.Sign(auth.Message("governance.oraclePrice",
		arguments.Owner.String(), epoch, price))

	client.printJson("OraclePrice Request", arguments)

	var reply governance.OraclePriceReply
	err := client.client.Call("Governance.SubmitOraclePrice", &arguments, &reply)
	if nil != err {
		return err
	}

	client.printJson("OraclePrice Reply", reply)

	return nil
}
