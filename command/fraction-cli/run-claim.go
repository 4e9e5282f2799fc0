// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Fractiond Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/fractiond/fractiond/command/fraction-cli/rpccalls"
)

func runClaim(c *cli.Context) error {

	owner, err := checkPrivateKey(c)
	if nil != err {
		return err
	}

	fractionCount, err := checkNonZero(c, "fractions", ErrRequiredCount)
	if nil != err {
		return err
	}

	m, client, err := openClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Claim(owner, c.Uint64("epoch"), fractionCount)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runClaimLocked(c *cli.Context) error {

	owner, err := checkPrivateKey(c)
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

	response, err := client.ClaimWithLockedFractions(&rpccalls.ClaimLockedData{
		Owner:               owner,
		AssetId:             assetId,
		Index:               c.Int("index"),
		AdditionalFractions: c.Uint64("fractions"),
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runFinalizeClaim(c *cli.Context) error {

	owner, err := checkPrivateKey(c)
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

	response, err := client.FinalizeAndClaim(owner, assetId, c.Uint64("fractions"))
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
