// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Fractiond Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - actor identities
//
// An account is an ed25519 public key tagged with the network class
// and rendered as Base58 with a SHA3 checksum.  Accounts are the
// effective sender of every operation; signature checking is the only
// verification the core performs.
package account

import (
	"bytes"
	"crypto/ed25519"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/fractiond/fractiond/fault"
)

// enumeration of supported key algorithms
const (
	ED25519 = iota + 1
	// end of list (one greater than last item)
	algorithmLimit = iota + 1
)

// miscellaneous constants
const (
	checksumLength = 4

	// bits in key code starting from LSB
	publicKeyCode = 0x01
	testKeyCode   = 0x02

	algorithmShift = 4 // shift 4 bits to get algorithm
)

// Account - base type for accounts
type Account struct {
	AccountInterface
}

// AccountInterface - methods common to all key algorithms
type AccountInterface interface {
	KeyType() int
	PublicKeyBytes() []byte
	CheckSignature(message []byte, signature Signature) error
	Bytes() []byte
	String() string
	MarshalText() ([]byte, error)
	IsTesting() bool
}

// ED25519Account - for ed25519 signatures
type ED25519Account struct {
	Test      bool
	PublicKey []byte
}

// AccountFromBase58 - convert a Base58 encoded string to an account
func AccountFromBase58(accountBase58Encoded string) (*Account, error) {
	accountDecoded, err := base58.Decode(accountBase58Encoded)
	if nil != err || 0 == len(accountDecoded) {
		return nil, fault.CannotDecodeAccount
	}
	return AccountFromBytes(accountDecoded)
}

// AccountFromBytes - convert a byte encoded buffer to an account
func AccountFromBytes(accountDecoded []byte) (*Account, error) {

	if len(accountDecoded) <= 1+checksumLength {
		return nil, fault.InvalidKeyLength
	}

	keyVariant := accountDecoded[0]

	if keyVariant&publicKeyCode != publicKeyCode {
		return nil, fault.NotPublicKey
	}

	keyAlgorithm := int(keyVariant >> algorithmShift)
	if keyAlgorithm <= 0 || keyAlgorithm >= algorithmLimit {
		return nil, fault.InvalidKeyType
	}

	isTest := 0 != keyVariant&testKeyCode

	checksumStart := len(accountDecoded) - checksumLength
	checksum := sha3.Sum256(accountDecoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], accountDecoded[checksumStart:]) {
		return nil, fault.ChecksumMismatch
	}

	keyLength := checksumStart - 1
	if ed25519.PublicKeySize != keyLength {
		return nil, fault.InvalidKeyLength
	}

	publicKey := accountDecoded[1:checksumStart]
	account := &Account{
		AccountInterface: &ED25519Account{
			Test:      isTest,
			PublicKey: publicKey,
		},
	}
	return account, nil
}

// UnmarshalText - convert string to account structure
func (account *Account) UnmarshalText(s []byte) error {
	a, err := AccountFromBase58(string(s))
	if nil != err {
		return err
	}
	account.AccountInterface = a.AccountInterface
	return nil
}

// ED25519
// -------

// KeyType - key type code
func (account *ED25519Account) KeyType() int {
	return ED25519
}

// PublicKeyBytes - fetch the public key as byte slice
func (account *ED25519Account) PublicKeyBytes() []byte {
	return account.PublicKey
}

// CheckSignature - check the signature of a message
func (account *ED25519Account) CheckSignature(message []byte, signature Signature) error {

	if ed25519.SignatureSize != len(signature) {
		return fault.InvalidSignature
	}

	if !ed25519.Verify(account.PublicKey, message, signature) {
		return fault.InvalidSignature
	}
	return nil
}

// Bytes - byte slice for encoded key
func (account *ED25519Account) Bytes() []byte {
	keyVariant := byte(ED25519<<algorithmShift) | publicKeyCode
	if account.Test {
		keyVariant |= testKeyCode
	}
	return append([]byte{keyVariant}, account.PublicKey...)
}

// String - base58 encoding of encoded key
func (account *ED25519Account) String() string {
	buffer := account.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// MarshalText - convert an account to its text form
func (account ED25519Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// IsTesting - return whether the account is in test mode or not
func (account ED25519Account) IsTesting() bool {
	return account.Test
}
