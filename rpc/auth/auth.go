// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Fractiond Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package auth - request authentication for the RPC services
//
// every mutating call carries the actor account and an ed25519
// signature over a canonical packing of the operation name and its
// arguments; clients must produce the identical packing
package auth

import (
	"encoding/binary"

	"github.com/fractiond/fractiond/account"
	"github.com/fractiond/fractiond/fault"
)

// Message - canonical byte packing of an operation and its arguments
//
// strings are length prefixed, integers are big endian fixed width
func Message(operation string, parts ...interface{}) []byte {
	buffer := packString(nil, operation)
	for _, part := range parts {
		switch value := part.(type) {
		case string:
			buffer = packString(buffer, value)
		case uint64:
			buffer = packUint64(buffer, value)
		case int:
			buffer = packUint64(buffer, uint64(int64(value)))
		case bool:
			if value {
				buffer = append(buffer, 1)
			} else {
				buffer = append(buffer, 0)
			}
		case []uint64:
			buffer = packUint64(buffer, uint64(len(value)))
			for _, item := range value {
				buffer = packUint64(buffer, item)
			}
		default:
			// unsupported argument types cannot be signed over
			panic("auth: unsupported message part")
		}
	}
	return buffer
}

// Verify - check a signature over the canonical packing
func Verify(actor *account.Account, signature account.Signature, operation string, parts ...interface{}) error {
	if nil == actor {
		return fault.InvalidItem
	}
	return actor.CheckSignature(Message(operation, parts...), signature)
}

func packString(buffer []byte, s string) []byte {
	buffer = packUint64(buffer, uint64(len(s)))
	return append(buffer, s...)
}

func packUint64(buffer []byte, value uint64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], value)
	return append(buffer, b[:]...)
}
