// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Fractiond Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package network - protocol deployment names
//
// The custody protocol runs as one of several deployments with
// different default parameters; the name selects defaults and marks
// accounts as test or live.
package network

// names of all supported networks
const (
	Custody = "custody" // live network
	Testing = "testing" // public test network
	Local   = "local"   // local regression network
)

// Valid - check the network name is one of the supported deployments
func Valid(name string) bool {
	switch name {
	case Custody, Testing, Local:
		return true
	default:
		return false
	}
}
