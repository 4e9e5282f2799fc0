// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Fractiond Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/fractiond/fractiond/background"
)

type counted struct {
	started int32
	stopped int32
}

func (c *counted) Run(args interface{}, shutdown <-chan struct{}) {
	atomic.AddInt32(&c.started, 1)
	<-shutdown
	atomic.AddInt32(&c.stopped, 1)
}

func TestStartStop(t *testing.T) {

	c1 := &counted{}
	c2 := &counted{}

	processes := background.Processes{c1, c2}

	b := background.Start(processes, nil)

	// allow goroutines to come up
	time.Sleep(20 * time.Millisecond)

	if 1 != atomic.LoadInt32(&c1.started) || 1 != atomic.LoadInt32(&c2.started) {
		t.Fatalf("background processes did not start")
	}

	b.Stop()

	if 1 != atomic.LoadInt32(&c1.stopped) || 1 != atomic.LoadInt32(&c2.stopped) {
		t.Fatalf("background processes did not stop")
	}
}

func TestStopNil(t *testing.T) {
	var b *background.T
	b.Stop() // must not panic
}
