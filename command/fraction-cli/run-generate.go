// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Fractiond Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/fractiond/fractiond/account"
)

func runGenerate(c *cli.Context) error {

	owner, privateKey, err := account.NewAccount(c.Bool("test"))
	if nil != err {
		return err
	}

	type keyPair struct {
		Account    string `json:"account"`
		PrivateKey string `json:"privateKey"`
	}

	return printJson(c.App.Writer, keyPair{
		Account:    owner.String(),
		PrivateKey: privateKey.String(),
	})
}
