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

func runMint(c *cli.Context) error {

	owner, err := checkPrivateKey(c)
	if nil != err {
		return err
	}

	assetIds, err := checkAssetIds(c.String("assets"))
	if nil != err {
		return err
	}

	fractionsPerAsset, err := checkNonZero(c, "fractions", ErrRequiredCount)
	if nil != err {
		return err
	}

	m, client, err := openClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	if m.verbose {
		fmt.Fprintf(m.e, "assets: %v\n", assetIds)
		fmt.Fprintf(m.e, "owner: %s\n", owner.Account())
	}

	mintConfig := &rpccalls.MintData{
		Owner:              owner,
		AssetIds:           assetIds,
		FractionsPerAsset:  fractionsPerAsset,
		ExitPrice:          c.Uint64("exit-price"),
		UnlockThresholdBps: c.Uint64("threshold"),
		AuctionDuration:    c.Uint64("duration"),
		TopBidLockTime:     c.Uint64("lock"),
	}

	response, err := client.Mint(mintConfig)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runMintAdditional(c *cli.Context) error {

	owner, err := checkPrivateKey(c)
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

	response, err := client.MintAdditional(&rpccalls.MintAdditionalData{
		Owner:  owner,
		Amount: amount,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runMintExisting(c *cli.Context) error {

	owner, err := checkPrivateKey(c)
	if nil != err {
		return err
	}

	firstId, err := checkNonZero(c, "first", ErrRequiredAssetId)
	if nil != err {
		return err
	}

	length, err := checkNonZero(c, "length", ErrRequiredCount)
	if nil != err {
		return err
	}

	m, client, err := openClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.MintExisting(&rpccalls.MintExistingData{
		Owner:   owner,
		FirstId: firstId,
		Length:  length,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
