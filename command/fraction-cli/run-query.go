// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Fractiond Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runDetails(c *cli.Context) error {

	assetId, err := checkNonZero(c, "asset", ErrRequiredAssetId)
	if nil != err {
		return err
	}

	m, client, err := openClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.AuctionDetails(assetId)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runPool(c *cli.Context) error {

	m, client, err := openClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Pool(c.Uint64("epoch"))
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
