// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Fractiond Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runVote(c *cli.Context) error {

	owner, err := checkPrivateKey(c)
	if nil != err {
		return err
	}

	assetId, err := checkNonZero(c, "asset", ErrRequiredAssetId)
	if nil != err {
		return err
	}

	amount, err := checkNonZero(c, "amount", ErrRequiredCount)
	if nil != err {
		return err
	}

	m, client, err := openClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Vote(owner, assetId, amount)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runRemoveVote(c *cli.Context) error {

	owner, err := checkPrivateKey(c)
	if nil != err {
		return err
	}

	assetId, err := checkNonZero(c, "asset", ErrRequiredAssetId)
	if nil != err {
		return err
	}

	amount, err := checkNonZero(c, "amount", ErrRequiredCount)
	if nil != err {
		return err
	}

	m, client, err := openClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.RemoveVote(owner, assetId, amount)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runVotes(c *cli.Context) error {

	holder, err := checkAccountWithFallback(c, "holder")
	if nil != err {
		return err
	}

	assetId, err := checkNonZero(c, "asset", ErrRequiredAssetId)
	if nil != err {
		return err
	}

	m, client, err := openClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.AuctionVotes(assetId, holder)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
