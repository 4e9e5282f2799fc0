// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Fractiond Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/fractiond/fractiond/fault"
)

// test that various errors can be identified by class
func TestErrorClasses(t *testing.T) {

	if !fault.IsErrInvalid(fault.InvalidBid) {
		t.Errorf("InvalidBid is not classed as invalid")
	}
	if !fault.IsErrInvalid(fault.AuctionOngoing) {
		t.Errorf("AuctionOngoing is not classed as invalid")
	}
	if !fault.IsErrAccessDenied(fault.NotMaxBidder) {
		t.Errorf("NotMaxBidder is not classed as access denied")
	}
	if !fault.IsErrNotFound(fault.AssetNotFound) {
		t.Errorf("AssetNotFound is not classed as not found")
	}
	if !fault.IsErrProcess(fault.NotInitialised) {
		t.Errorf("NotInitialised is not classed as process")
	}
	if fault.IsErrInvalid(fault.NotMaxBidder) {
		t.Errorf("NotMaxBidder is incorrectly classed as invalid")
	}
}

// errors must compare equal to themselves only
func TestErrorIdentity(t *testing.T) {

	if fault.InvalidBid == fault.InvalidAmount {
		t.Errorf("distinct errors compare equal")
	}

	err := someOperation()
	if fault.NoBids != err {
		t.Errorf("expected: %v  actual: %v", fault.NoBids, err)
	}
}

func someOperation() error {
	return fault.NoBids
}
