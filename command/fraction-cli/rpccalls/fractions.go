// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Fractiond Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/fractiond/fractiond/account"
	"github.com/fractiond/fractiond/rpc/auth"
	"github.com/fractiond/fractiond/rpc/fractions"
)

// MintData - data for a mint request
type MintData struct {
	Owner              *account.PrivateKey
	AssetIds           []uint64
	FractionsPerAsset  uint64
	ExitPrice          uint64
	UnlockThresholdBps uint64
	AuctionDuration    uint64 // seconds
	TopBidLockTime     uint64 // seconds
}

// Mint - deposit assets and mint a new fraction epoch
func (client *Client) Mint(mintConfig *MintData) (*fractions.MintReply, error) {

	owner := mintConfig.Owner.Account()

	arguments := fractions.MintArguments{
		Owner:              owner,
		AssetIds:           mintConfig.AssetIds,
		FractionsPerAsset:  mintConfig.FractionsPerAsset,
		ExitPrice:          mintConfig.ExitPrice,
		UnlockThresholdBps: mintConfig.UnlockThresholdBps,
		AuctionDuration:    mintConfig.AuctionDuration,
		TopBidLockTime:     mintConfig.TopBidLockTime,
	}
	arguments.Signature = mintConfig.Owner.Sign(auth.Message("fractions.mint",
		owner.String(),
		arguments.AssetIds,
		arguments.FractionsPerAsset,
		arguments.ExitPrice,
		arguments.UnlockThresholdBps,
		arguments.AuctionDuration,
		arguments.TopBidLockTime,
	))

	client.printJson("Mint Request", arguments)

	var reply fractions.MintReply
	err := client.client.Call("Fractions.Mint", &arguments, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Mint Reply", reply)

	return &reply, nil
}

// MintAdditionalData - data for an additional mint request
type MintAdditionalData struct {
	Owner  *account.PrivateKey
	Amount uint64
}

// MintAdditional - mint extra fractions onto the current epoch
func (client *Client) MintAdditional(mintConfig *MintAdditionalData) (*fractions.MintAdditionalReply, error) {

	owner := mintConfig.Owner.Account()

	arguments := fractions.MintAdditionalArguments{
		Owner:  owner,
		Amount: mintConfig.Amount,
	}
	arguments.Signature = mintConfig.Owner.Sign(auth.Message("fractions.mintAdditional",
		owner.String(),
		arguments.Amount,
	))

	client.printJson("MintAdditional Request", arguments)

	var reply fractions.MintAdditionalReply
	err := client.client.Call("Fractions.MintAdditional", &arguments, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("MintAdditional Reply", reply)

	return &reply, nil
}

// MintExistingData - data for an existing-ratio mint request
type MintExistingData struct {
	Owner   *account.PrivateKey
	FirstId uint64
	Length  uint64
}

// MintExisting - fractionalise further assets at the established ratio
func (client *Client) MintExisting(mintConfig *MintExistingData) (*fractions.MintExistingReply, error) {

	owner := mintConfig.Owner.Account()

	arguments := fractions.MintExistingArguments{
		Owner:   owner,
		FirstId: mintConfig.FirstId,
		Length:  mintConfig.Length,
	}
	arguments.Signature = mintConfig.Owner.Sign(auth.Message("fractions.mintExisting",
		owner.String(),
		arguments.FirstId,
		arguments.Length,
	))

	client.printJson("MintExisting Request", arguments)

	var reply fractions.MintExistingReply
	err := client.client.Call("Fractions.MintExisting", &arguments, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("MintExisting Reply", reply)

	return &reply, nil
}

// Balance - fraction balance of an account, epoch zero means current
func (client *Client) Balance(owner *account.Account, epoch uint64) (*fractions.BalanceReply, error) {

	arguments := fractions.BalanceArguments{
		Owner: owner,
		Epoch: epoch,
	}

	client.printJson("Balance Request", arguments)

	var reply fractions.BalanceReply
	err := client.client.Call("Fractions.Balance", &arguments, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Balance Reply", reply)

	return &reply, nil
}

// TransferData - data for a fraction transfer request
type TransferData struct {
	Owner     *account.PrivateKey
	Recipient *account.Account
	Epoch     uint64
	Amount    uint64
}

// Transfer - move fractions between accounts
func (client *Client) Transfer(transferConfig *TransferData) (*fractions.TransferReply, error) {

	owner := transferConfig.Owner.Account()

	arguments := fractions.TransferArguments{
		Owner:     owner,
		Recipient: transferConfig.Recipient,
		Epoch:     transferConfig.Epoch,
		Amount:    transferConfig.Amount,
	}
	arguments.Signature = transferConfig.Owner.Sign(auth.Message("fractions.transfer",
		owner.String(),
		transferConfig.Recipient.String(),
		arguments.Epoch,
		arguments.Amount,
	))

	client.printJson("Transfer Request", arguments)

	var reply fractions.TransferReply
	err := client.client.Call("Fractions.Transfer", &arguments, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Transfer Reply", reply)

	return &reply, nil
}
