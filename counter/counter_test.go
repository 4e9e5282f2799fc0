// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Fractiond Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"testing"

	"github.com/fractiond/fractiond/counter"
)

func TestCounter(t *testing.T) {

	var c counter.Counter

	if !c.IsZero() {
		t.Fatalf("new counter is not zero")
	}

	if 1 != c.Increment() {
		t.Errorf("increment did not return 1")
	}
	c.Increment()
	c.Increment()

	if 3 != c.Uint64() {
		t.Errorf("expected: 3  actual: %d", c.Uint64())
	}

	if 2 != c.Decrement() {
		t.Errorf("decrement did not return 2")
	}
}
