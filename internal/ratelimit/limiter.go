// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ratelimit

import (
	"context"
	"math"
	"time"

	"github.com/MKhiriev/fitness-api/internal/logger"
	"golang.org/x/time/rate"
)

// Decision is the outcome of one admission check.
type Decision struct {
	Allowed bool

	// Count is the number of hits in the current window, capped at Limit+1.
	Count int

	Limit     int
	Remaining int

	// ResetAt is the instant the current window closes.
	ResetAt time.Time

	// RetryAfter is the time left until ResetAt. Only set on rejection.
	RetryAfter time.Duration

	// Degraded reports that the store failed and the request was admitted
	// without counting.
	Degraded bool
}

// RetryAfterSeconds rounds RetryAfter up to whole seconds, at least 1.
func (d Decision) RetryAfterSeconds() int64 {
	secs := int64(math.Ceil(d.RetryAfter.Seconds()))
	if secs < 1 {
		return 1
	}

	return secs
}

// Limiter applies a fixed-window ceiling per client identity. Window length
// and ceiling come from configuration.
type Limiter struct {
	store   Store
	window  time.Duration
	ceiling int

	logger *logger.Logger

	// storeWarnings throttles the fail-open warning.
	storeWarnings *rate.Sometimes
}

func NewLimiter(store Store, window time.Duration, ceiling int, log *logger.Logger) *Limiter {
	return &Limiter{
		store:         store,
		window:        window,
		ceiling:       ceiling,
		logger:        log,
		storeWarnings: &rate.Sometimes{First: 1, Interval: 30 * time.Second},
	}
}

// Window returns the configured window length.
func (l *Limiter) Window() time.Duration {
	return l.window
}

// Ceiling returns the configured per-window ceiling.
func (l *Limiter) Ceiling() int {
	return l.ceiling
}

// Admit records a request from identity at now and decides whether it may
// proceed. A request is allowed iff the window count is at most the ceiling.
// When the store fails the request is admitted (fail open).
func (l *Limiter) Admit(ctx context.Context, identity string, now time.Time) Decision {
	w, err := l.store.Hit(ctx, identity, now, l.window, l.ceiling)
	if err != nil {
		l.storeWarnings.Do(func() {
			l.logger.Warn().Err(err).Msg("rate limit store failed, admitting requests without counting")
		})

		return Decision{
			Allowed:   true,
			Limit:     l.ceiling,
			Remaining: l.ceiling,
			ResetAt:   now.Add(l.window),
			Degraded:  true,
		}
	}

	count := min(w.Count, l.ceiling+1)
	resetAt := w.Start.Add(l.window)

	d := Decision{
		Allowed:   count <= l.ceiling,
		Count:     count,
		Limit:     l.ceiling,
		Remaining: max(l.ceiling-count, 0),
		ResetAt:   resetAt,
	}

	if !d.Allowed {
		d.RetryAfter = max(resetAt.Sub(now), 0)
	}

	return d
}
