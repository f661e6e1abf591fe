// Copyright 2019 the feed-contract-go authors
// This file is part of the feed-contract-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package synchronization_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/orbs-network/feed-contract-go/synchronization"
	"github.com/orbs-network/scribe/log"
	"github.com/stretchr/testify/require"
)

func TestPeriodicalTrigger_FiresPeriodically(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var ticks int32
	p := synchronization.NewPeriodicalTrigger(ctx, "test-trigger", time.Millisecond, log.DefaultTestingLogger(t), func() {
		atomic.AddInt32(&ticks, 1)
	}, nil)
	defer p.Stop()

	require.Eventually(t, func() bool {
		return atomic.LoadInt32(&ticks) >= 2
	}, 1*time.Second, time.Millisecond, "expected the trigger to fire more than once")
}

func TestPeriodicalTrigger_StopPreventsFurtherTicks(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var ticks int32
	p := synchronization.NewPeriodicalTrigger(ctx, "test-trigger", time.Millisecond, log.DefaultTestingLogger(t), func() {
		atomic.AddInt32(&ticks, 1)
	}, nil)

	p.Stop()
	count := atomic.LoadInt32(&ticks)
	time.Sleep(5 * time.Millisecond)
	require.Equal(t, count, atomic.LoadInt32(&ticks), "expected no ticks after Stop returned")
}

func TestPeriodicalTrigger_RunsOnStopWhenContextEnds(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	stopped := make(chan struct{})
	p := synchronization.NewPeriodicalTrigger(ctx, "test-trigger", time.Hour, log.DefaultTestingLogger(t), func() {}, func() {
		close(stopped)
	})

	cancel()
	select {
	case <-stopped:
	case <-time.After(1 * time.Second):
		t.Fatal("onStop was not called after the context ended")
	}
	<-p.Closed
}
