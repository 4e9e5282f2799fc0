// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Fractiond Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package constants - protocol timing and limit defaults
package constants

import (
	"time"
)

// timings
const (
	// DefaultAuctionDuration - auction end timer when none configured
	DefaultAuctionDuration = 72 * time.Hour

	// DefaultTopBidLockTime - pre-auction top bid lock when none configured
	DefaultTopBidLockTime = 24 * time.Hour

	// CheckpointInterval - how often the engine state is saved to disk
	CheckpointInterval = 10 * time.Minute

	// ProposalRetention - how long a finalized exit price proposal is kept
	ProposalRetention = 24 * time.Hour

	// ProposalSweepInterval - cycle time of the governance expiry sweep
	ProposalSweepInterval = time.Hour

	// OracleApprovalCacheTime - TTL of cached oracle approval lookups
	OracleApprovalCacheTime = 5 * time.Minute
)

// limits
const (
	// DefaultUnlockThresholdBps - vote locked share forcing an auction (basis points)
	DefaultUnlockThresholdBps = 5000

	// DefaultMinimumIncrementBps - minimum bid increase (basis points)
	DefaultMinimumIncrementBps = 500

	// MaximumAssetsPerMint - assets fractionalised in a single call
	MaximumAssetsPerMint = 100

	// BasisPoints - denominator for all *Bps values
	BasisPoints = 10000
)
