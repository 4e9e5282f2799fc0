// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Fractiond Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/fractiond/fractiond/command/fraction-cli/rpccalls"
)

func runStart(c *cli.Context) error {

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

	response, err := client.StartAuction(owner, assetId)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runBid(c *cli.Context) error {

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

	response, err := client.Bid(&rpccalls.BidData{
		Owner:     owner,
		AssetId:   assetId,
		Price:     c.Uint64("price"),
		Fractions: c.Uint64("fractions"),
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runRemoveBid(c *cli.Context) error {

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

	response, err := client.RemoveBid(owner, assetId)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runRedeem(c *cli.Context) error {

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

	response, err := client.Redeem(owner, assetId)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
