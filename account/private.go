// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Fractiond Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"crypto/ed25519"
	"crypto/rand"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/fractiond/fractiond/fault"
)

// PrivateKey - base type for the private side of an account
type PrivateKey struct {
	Test       bool
	PrivateKey ed25519.PrivateKey
}

// NewAccount - generate a fresh keypair for the given network class
func NewAccount(test bool) (*Account, *PrivateKey, error) {
	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		return nil, nil, err
	}

	account := &Account{
		AccountInterface: &ED25519Account{
			Test:      test,
			PublicKey: publicKey,
		},
	}
	private := &PrivateKey{
		Test:       test,
		PrivateKey: privateKey,
	}
	return account, private, nil
}

// PrivateKeyFromBase58 - decode the private half of a keypair
func PrivateKeyFromBase58(privateKeyBase58Encoded string) (*PrivateKey, error) {
	decoded, err := base58.Decode(privateKeyBase58Encoded)
	if nil != err || len(decoded) <= 1+checksumLength {
		return nil, fault.CannotDecodeAccount
	}

	keyVariant := decoded[0]
	if keyVariant&publicKeyCode == publicKeyCode {
		return nil, fault.NotPublicKey // this is a public key, not private
	}
	isTest := 0 != keyVariant&testKeyCode

	checksumStart := len(decoded) - checksumLength
	checksum := sha3.Sum256(decoded[:checksumStart])
	for i := 0; i < checksumLength; i += 1 {
		if checksum[i] != decoded[checksumStart+i] {
			return nil, fault.ChecksumMismatch
		}
	}

	if ed25519.PrivateKeySize != checksumStart-1 {
		return nil, fault.InvalidKeyLength
	}

	return &PrivateKey{
		Test:       isTest,
		PrivateKey: ed25519.PrivateKey(decoded[1:checksumStart]),
	}, nil
}

// Account - derive the public account for a private key
func (private *PrivateKey) Account() *Account {
	publicKey := private.PrivateKey.Public().(ed25519.PublicKey)
	return &Account{
		AccountInterface: &ED25519Account{
			Test:      private.Test,
			PublicKey: publicKey,
		},
	}
}

// Sign - sign a message with the private key
func (private *PrivateKey) Sign(message []byte) Signature {
	return Signature(ed25519.Sign(private.PrivateKey, message))
}

// String - base58 encoding of the private key with checksum
func (private *PrivateKey) String() string {
	keyVariant := byte(ED25519 << algorithmShift)
	if private.Test {
		keyVariant |= testKeyCode
	}
	buffer := append([]byte{keyVariant}, private.PrivateKey...)
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}
