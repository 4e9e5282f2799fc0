// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Fractiond Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/fractiond/fractiond/asset"
	"github.com/fractiond/fractiond/auction"
	"github.com/fractiond/fractiond/counter"
	"github.com/fractiond/fractiond/custodian"
	"github.com/fractiond/fractiond/exitprice"
	"github.com/fractiond/fractiond/minter"
	"github.com/fractiond/fractiond/mode"
	"github.com/fractiond/fractiond/oracle"
	"github.com/fractiond/fractiond/payment"
	"github.com/fractiond/fractiond/rpc/auctions"
	"github.com/fractiond/fractiond/rpc/fractions"
	"github.com/fractiond/fractiond/rpc/governance"
	"github.com/fractiond/fractiond/rpc/node"
	"github.com/fractiond/fractiond/rpc/registry"
)

// Create - register all services onto a new RPC server
func Create(log *logger.L, version string, rpcCount *counter.Counter) *rpc.Server {

	start := time.Now().UTC()
	engine := auction.Get()

	server := rpc.NewServer()

	_ = server.Register(fractions.New(log, mode.Is, engine,
		minter.MintFractions, minter.MintAdditionalFractions, minter.MintFractionsExisting))
	_ = server.Register(auctions.New(log, mode.Is, engine))
	_ = server.Register(governance.New(log, mode.Is, governance.Handles{
		Propose:           exitprice.Propose,
		VoteOnProposal:    exitprice.VoteOnProposal,
		FinalizeProposal:  exitprice.FinalizeProposal,
		SubmitOraclePrice: exitprice.SubmitOraclePrice,
	}))
	_ = server.Register(registry.New(log, mode.Is, asset.ProtocolAccount(), registry.Handles{
		RegisterAsset:  asset.Register,
		CheckInAsset:   asset.CheckIn,
		VerifyAsset:    asset.Verify,
		RegisterOracle: oracle.Register,
		ApproveOracle:  oracle.Approve,
		Deposit:        payment.Deposit,
		Withdraw:       payment.Withdraw,
		PaymentBalance: payment.Balance,
		VaultDeposit:   custodian.Deposit,
		ChargeFee:      custodian.ChargeFee,
		VaultBalance:   custodian.Balance,
	}))
	_ = server.Register(node.New(log, start, version, rpcCount, engine))

	return server
}
