// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ratelimit

import (
	"context"
	"time"

	"github.com/MKhiriev/fitness-api/internal/logger"
)

// Sweeper removes expired windows.
type Sweeper interface {
	Sweep(now time.Time) int
}

// Janitor periodically sweeps expired windows from a [Sweeper]. It is a
// background worker stopped by cancelling the context passed to Run.
type Janitor struct {
	store  Sweeper
	every  time.Duration
	logger *logger.Logger
}

func NewJanitor(store Sweeper, every time.Duration, log *logger.Logger) *Janitor {
	return &Janitor{store: store, every: every, logger: log}
}

func (j *Janitor) Run(ctx context.Context) {
	if j.every <= 0 {
		return
	}

	t := time.NewTicker(j.every)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			if removed := j.store.Sweep(now); removed > 0 {
				j.logger.Debug().Int("removed", removed).Msg("expired rate limit windows swept")
			}
		}
	}
}
