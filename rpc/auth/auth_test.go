// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Fractiond Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fractiond/fractiond/account"
	"github.com/fractiond/fractiond/fault"
	"github.com/fractiond/fractiond/rpc/auth"
)

func TestVerify(t *testing.T) {
	acct, key, err := account.NewAccount(true)
	assert.Nil(t, err, "NewAccount error")

	message := auth.Message("auctions.bid", acct.String(), uint64(7), uint64(150))
	signature := key.Sign(message)

	err = auth.Verify(acct, signature, "auctions.bid", acct.String(), uint64(7), uint64(150))
	assert.Nil(t, err, "Verify error")

	// different arguments must fail
	err = auth.Verify(acct, signature, "auctions.bid", acct.String(), uint64(7), uint64(151))
	assert.Equal(t, fault.InvalidSignature, err, "tampered arguments")

	// different operation must fail
	err = auth.Verify(acct, signature, "auctions.removeBid", acct.String(), uint64(7), uint64(150))
	assert.Equal(t, fault.InvalidSignature, err, "wrong operation")

	// another key must fail
	other, _, err := account.NewAccount(true)
	assert.Nil(t, err, "NewAccount error")
	err = auth.Verify(other, signature, "auctions.bid", other.String(), uint64(7), uint64(150))
	assert.Equal(t, fault.InvalidSignature, err, "wrong signer")
}

func TestMessageIsUnambiguous(t *testing.T) {
	// adjacent strings must not concatenate into the same packing
	one := auth.Message("op", "ab", "c")
	two := auth.Message("op", "a", "bc")
	assert.NotEqual(t, one, two, "string packing collision")

	// list packing carries its length
	three := auth.Message("op", []uint64{1, 2})
	four := auth.Message("op", []uint64{1}, uint64(2))
	assert.NotEqual(t, three, four, "list packing collision")
}
