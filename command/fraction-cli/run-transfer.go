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

func runTransfer(c *cli.Context) error {

	owner, err := checkPrivateKey(c)
	if nil != err {
		return err
	}

	recipient, err := checkRecipient(c)
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

	if m.verbose {
		fmt.Fprintf(m.e, "sender: %s\n", owner.Account())
		fmt.Fprintf(m.e, "recipient: %s\n", recipient)
	}

	response, err := client.Transfer(&rpccalls.TransferData{
		Owner:     owner,
		Recipient: recipient,
		Epoch:     c.Uint64("epoch"),
		Amount:    amount,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
