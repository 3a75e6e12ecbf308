// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-clip-relay/internal/logger"
)

// Periodic is a [Worker] that calls a tick function on a fixed interval.
//
// The first tick runs immediately. The context is checked before every tick,
// so cancellation stops the loop at the next iteration boundary; a tick that
// is already running is allowed to finish. Tick errors are logged and the
// loop continues: nothing is retried before the next natural tick.
type Periodic struct {
	name     string
	interval time.Duration
	tick     TickFunc

	logger *logger.Logger
}

// NewPeriodic creates a periodic worker. A non-positive interval defaults to
// one second.
func NewPeriodic(name string, interval time.Duration, tick TickFunc, logger *logger.Logger) *Periodic {
	if interval <= 0 {
		interval = time.Second
	}

	return &Periodic{
		name:     name,
		interval: interval,
		tick:     tick,
		logger:   logger,
	}
}

// Run implements [Worker]. It always returns nil once ctx is done.
func (p *Periodic) Run(ctx context.Context) error {
	p.logger.Debug().
		Str("worker", p.name).
		Dur("interval", p.interval).
		Msg("worker started")

	t := time.NewTicker(p.interval)
	defer t.Stop()

	for {
		if ctx.Err() != nil {
			p.logger.Debug().Str("worker", p.name).Msg("worker stopped")
			return nil
		}

		if err := p.tick(ctx); err != nil {
			p.logger.Debug().Err(err).Str("worker", p.name).Msg("tick failed")
		}

		select {
		case <-ctx.Done():
		case <-t.C:
		}
	}
}
