// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ratelimit

//go:generate mockgen -source=store.go -destination=../mock/ratelimit_store_mock.go -package=mock

import (
	"context"
	"errors"
	"time"
)

// ErrStoreUnavailable wraps failures of the backing window store.
var ErrStoreUnavailable = errors.New("rate limit store unavailable")

// Window is the state of one identity's fixed window after a hit.
type Window struct {
	// Start is the instant the window opened.
	Start time.Time

	// Count is the number of hits recorded in the window. Stores may stop
	// counting once it exceeds the ceiling.
	Count int
}

// Store records hits against fixed windows. Implementations must apply the
// read, compare and increment of one key atomically; distinct keys must not
// interfere.
type Store interface {
	// Hit records one request for key at now. If no window exists or the
	// current one expired (now strictly after Start+window), a new window is
	// opened with Count 1. Otherwise Count is incremented.
	Hit(ctx context.Context, key string, now time.Time, window time.Duration, ceiling int) (Window, error)
}
