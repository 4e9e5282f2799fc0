// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Fractiond Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package votes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fractiond/fractiond/votes"
)

func TestLockUnlock(t *testing.T) {
	tracker := votes.NewTracker()

	tracker.Lock("alice", 10)
	tracker.Lock("alice", 5)
	tracker.Lock("bob", 20)

	assert.Equal(t, uint64(15), tracker.LockedBy("alice"), "wrong alice lock")
	assert.Equal(t, uint64(35), tracker.Total(), "wrong total")

	released := tracker.Unlock("alice")
	assert.Equal(t, uint64(15), released, "wrong released amount")
	assert.Equal(t, uint64(20), tracker.Total(), "wrong total after unlock")
	assert.Equal(t, uint64(0), tracker.LockedBy("alice"), "lock survived unlock")
}

func TestZeroLockIgnored(t *testing.T) {
	tracker := votes.NewTracker()
	tracker.Lock("alice", 0)
	assert.Equal(t, uint64(0), tracker.Total(), "zero lock counted")

	released := tracker.Unlock("nobody")
	assert.Equal(t, uint64(0), released, "unknown account released fractions")
}

func TestStrip(t *testing.T) {
	tracker := votes.NewTracker()
	tracker.Lock("alice", 30)

	removed := tracker.Strip("alice", 40)
	assert.Equal(t, uint64(0), removed, "strip above lock removed fractions")

	removed = tracker.Strip("alice", 12)
	assert.Equal(t, uint64(18), removed, "wrong strip amount")
	assert.Equal(t, uint64(12), tracker.LockedBy("alice"), "wrong remaining lock")

	removed = tracker.Strip("alice", 0)
	assert.Equal(t, uint64(12), removed, "wrong strip to zero")
	_, present := tracker.Holders()["alice"]
	assert.False(t, present, "emptied account still listed")
}

func TestSaveRestore(t *testing.T) {
	tracker := votes.NewTracker()
	tracker.Lock("alice", 7)
	tracker.Lock("bob", 3)

	restored := votes.RestoreTracker(tracker.Save())
	assert.Equal(t, uint64(10), restored.Total(), "wrong restored total")
	assert.Equal(t, uint64(7), restored.LockedBy("alice"), "wrong restored lock")
}
