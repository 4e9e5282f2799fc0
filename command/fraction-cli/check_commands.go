// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Fractiond Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strconv"
	"strings"

	"github.com/urfave/cli"

	"github.com/fractiond/fractiond/account"
	"github.com/fractiond/fractiond/fault"
)

var (
	ErrRequiredAssetId    = fault.InvalidError("asset id is required")
	ErrRequiredAssets     = fault.InvalidError("asset ids are required")
	ErrRequiredCount      = fault.InvalidError("count is required")
	ErrRequiredOwner      = fault.InvalidError("owner account is required")
	ErrRequiredPrivateKey = fault.InvalidError("private key is required")
	ErrRequiredRecipient  = fault.InvalidError("recipient is required")
)

// signing key is required for all mutating commands
func checkPrivateKey(c *cli.Context) (*account.PrivateKey, error) {
	keyBase58 := c.GlobalString("privateKey")
	if "" == keyBase58 {
		return nil, ErrRequiredPrivateKey
	}

	return account.PrivateKeyFromBase58(keyBase58)
}

// comma separated list of decimal asset ids
func checkAssetIds(assets string) ([]uint64, error) {
	if "" == assets {
		return nil, ErrRequiredAssets
	}

	items := strings.Split(assets, ",")
	assetIds := make([]uint64, 0, len(items))
	for _, item := range items {
		assetId, err := strconv.ParseUint(strings.TrimSpace(item), 10, 64)
		if nil != err {
			return nil, err
		}
		assetIds = append(assetIds, assetId)
	}

	return assetIds, nil
}

// account from a flag, falling back to the signing account
func checkAccountWithFallback(c *cli.Context, name string) (*account.Account, error) {
	accountBase58 := c.String(name)
	if "" != accountBase58 {
		return account.AccountFromBase58(accountBase58)
	}

	owner, err := checkPrivateKey(c)
	if nil != err {
		return nil, ErrRequiredOwner
	}
	return owner.Account(), nil
}

// recipient account is required
func checkRecipient(c *cli.Context) (*account.Account, error) {
	accountBase58 := c.String("recipient")
	if "" == accountBase58 {
		return nil, ErrRequiredRecipient
	}

	return account.AccountFromBase58(accountBase58)
}

// a required non-zero numeric flag
func checkNonZero(c *cli.Context, name string, failure error) (uint64, error) {
	value := c.Uint64(name)
	if 0 == value {
		return 0, failure
	}

	return value, nil
}
