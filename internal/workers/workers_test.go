// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-clip-relay/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockingWorker считает запуски и ждёт отмены контекста.
type blockingWorker struct {
	runs atomic.Int64
}

func (b *blockingWorker) Run(ctx context.Context) error {
	b.runs.Add(1)
	<-ctx.Done()
	return nil
}

type failingWorker struct {
	err error
}

func (f *failingWorker) Run(context.Context) error {
	return f.err
}

// ── Workers ──────────────────────────────────────────────────────────────────

func TestWorkers_Run_AllWorkersAreStarted(t *testing.T) {
	w1, w2, w3 := &blockingWorker{}, &blockingWorker{}, &blockingWorker{}
	ws := NewWorkers(w1, w2, w3)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- ws.Run(ctx) }()

	assert.Eventually(t, func() bool {
		return w1.runs.Load() == 1 && w2.runs.Load() == 1 && w3.runs.Load() == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	assert.NoError(t, NewWorkers().Run(context.Background()))
	assert.NoError(t, (&Workers{}).Run(context.Background()))
}

func TestWorkers_Run_ErrorStopsSiblings(t *testing.T) {
	boom := errors.New("boom")
	sibling := &blockingWorker{}

	err := NewWorkers(sibling, &failingWorker{err: boom}).Run(context.Background())

	require.ErrorIs(t, err, boom)
	assert.Equal(t, int64(1), sibling.runs.Load())
}

// ── Periodic ─────────────────────────────────────────────────────────────────

func TestPeriodic_TicksUntilCancelled(t *testing.T) {
	var calls atomic.Int64
	p := NewPeriodic("test", 10*time.Millisecond, func(context.Context) error {
		calls.Add(1)
		return nil
	}, logger.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 55*time.Millisecond)
	defer cancel()

	require.NoError(t, p.Run(ctx))
	assert.GreaterOrEqual(t, calls.Load(), int64(3), "tick должен вызываться несколько раз")

	after := calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, calls.Load(), "после отмены новых вызовов быть не должно")
}

func TestPeriodic_ErrorsDoNotStopLoop(t *testing.T) {
	var calls atomic.Int64
	p := NewPeriodic("failing", 5*time.Millisecond, func(context.Context) error {
		calls.Add(1)
		return errors.New("network down")
	}, logger.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 40*time.Millisecond)
	defer cancel()

	require.NoError(t, p.Run(ctx))
	assert.GreaterOrEqual(t, calls.Load(), int64(2))
}

func TestPeriodic_CancelledBeforeStart(t *testing.T) {
	var calls atomic.Int64
	p := NewPeriodic("idle", time.Hour, func(context.Context) error {
		calls.Add(1)
		return nil
	}, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, p.Run(ctx))
	assert.Zero(t, calls.Load())
}

func TestNewPeriodic_DefaultInterval(t *testing.T) {
	p := NewPeriodic("x", 0, func(context.Context) error { return nil }, logger.Nop())
	assert.Equal(t, time.Second, p.interval)
}
