// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Fractiond Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fractiond/fractiond/account"
	"github.com/fractiond/fractiond/fault"
)

// round trip: generate → text → account
func TestAccountRoundTrip(t *testing.T) {

	acc, priv, err := account.NewAccount(true)
	assert.Nil(t, err, "generate error")

	text := acc.String()

	decoded, err := account.AccountFromBase58(text)
	assert.Nil(t, err, "decode error")
	assert.Equal(t, acc.Bytes(), decoded.Bytes(), "decoded account differs")
	assert.True(t, decoded.IsTesting(), "test flag lost")

	// and the private side
	privDecoded, err := account.PrivateKeyFromBase58(priv.String())
	assert.Nil(t, err, "private decode error")
	assert.Equal(t, acc.Bytes(), privDecoded.Account().Bytes(), "derived account differs")
}

func TestAccountChecksum(t *testing.T) {

	acc, _, err := account.NewAccount(false)
	assert.Nil(t, err, "generate error")

	text := acc.String()

	// corrupt one character
	corrupted := []byte(text)
	if 'z' == corrupted[4] {
		corrupted[4] = 'x'
	} else {
		corrupted[4] = 'z'
	}

	_, err = account.AccountFromBase58(string(corrupted))
	assert.NotNil(t, err, "corrupted account text accepted")
}

func TestCheckSignature(t *testing.T) {

	acc, priv, err := account.NewAccount(true)
	assert.Nil(t, err, "generate error")

	message := []byte("start auction for asset 7")
	sig := priv.Sign(message)

	err = acc.CheckSignature(message, sig)
	assert.Nil(t, err, "valid signature rejected")

	err = acc.CheckSignature([]byte("another message"), sig)
	assert.Equal(t, fault.InvalidSignature, err, "forged signature accepted")

	err = acc.CheckSignature(message, sig[:10])
	assert.Equal(t, fault.InvalidSignature, err, "short signature accepted")
}
