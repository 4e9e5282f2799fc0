// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Fractiond Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/fractiond/fractiond/command/fraction-cli/rpccalls"
)

func runPropose(c *cli.Context) error {

	owner, err := checkPrivateKey(c)
	if nil != err {
		return err
	}

	price, err := checkNonZero(c, "price", ErrRequiredCount)
	if nil != err {
		return err
	}

	m, client, err := openClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Propose(&rpccalls.ProposeData{
		Owner:    owner,
		Epoch:    c.Uint64("epoch"),
		Price:    price,
		Duration: c.Uint64("duration"),
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runProposalVote(c *cli.Context) error {

	owner, err := checkPrivateKey(c)
	if nil != err {
		return err
	}

	weight, err := checkNonZero(c, "weight", ErrRequiredCount)
	if nil != err {
		return err
	}

	m, client, err := openClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	err = client.VoteOnProposal(owner, c.Uint64("proposal"), weight)
	if nil != err {
		return err
	}

	fmt.Fprintf(m.w, "ok\n")
	return nil
}

func runFinalize(c *cli.Context) error {

	owner, err := checkPrivateKey(c)
	if nil != err {
		return err
	}

	m, client, err := openClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.FinalizeProposal(owner, c.Uint64("proposal"))
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runOraclePrice(c *cli.Context) error {

	owner, err := checkPrivateKey(c)
	if nil != err {
		return err
	}

	price, err := checkNonZero(c, "price", ErrRequiredCount)
	if nil != err {
		return err
	}

	m, client, err := openClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	err = client.SubmitOraclePrice(owner, c.Uint64("epoch"), price)
	if nil != err {
		return err
	}

	fmt.Fprintf(m.w, "ok\n")
	return nil
}
