// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Fractiond Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package event - broadcast queue for auction life cycle events
//
// The engine emits one message per observable state change; slow or
// absent consumers never block an operation, excess messages are
// dropped and counted.
package event

import (
	"github.com/fractiond/fractiond/counter"
)

// Kind - event type tag
type Kind string

// all emitted event kinds
const (
	BidPlaced        Kind = "bid.placed"
	BidRemoved       Kind = "bid.removed"
	AuctionStarted   Kind = "auction.started"
	AuctionReserved  Kind = "auction.reserved"
	AuctionFinalized Kind = "auction.finalized"
	AuctionRedeemed  Kind = "auction.redeemed"
	ClaimPaid        Kind = "claim.paid"
	VoteLocked       Kind = "vote.locked"
	VoteUnlocked     Kind = "vote.unlocked"
	Fractionalised   Kind = "fractionalised"
	ExitPriceChanged Kind = "exitprice.changed"
)

// Message - one event
//
// a removed bid is reported with zero Amount and Fractions
type Message struct {
	Kind      Kind   `json:"kind"`
	Epoch     uint64 `json:"epoch"`
	AssetId   uint64 `json:"assetId"`
	Account   string `json:"account,omitempty"`
	Amount    uint64 `json:"amount"`
	Fractions uint64 `json:"fractions"`
}

// internal constants
const (
	queueSize = 1000
)

var (
	queue = make(chan Message, queueSize)

	// Dropped - count of messages discarded because no consumer kept up
	Dropped counter.Counter
)

// Send - queue an event, never blocks
func Send(m Message) {
	select {
	case queue <- m:
	default:
		Dropped.Increment()
	}
}

// Chan - channel to read from
func Chan() <-chan Message {
	return queue
}
