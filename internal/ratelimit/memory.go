// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps windows in process memory. State does not survive a
// restart and is not shared between instances.
type MemoryStore struct {
	mu      sync.Mutex
	windows map[string]*memoryWindow
}

type memoryWindow struct {
	start   time.Time
	expires time.Time
	count   int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		windows: make(map[string]*memoryWindow),
	}
}

// Hit implements [Store]. The counter saturates at ceiling+1 so a client
// hammering a closed window cannot overflow it.
func (s *MemoryStore) Hit(_ context.Context, key string, now time.Time, window time.Duration, ceiling int) (Window, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.windows[key]
	if !ok || now.After(w.expires) {
		w = &memoryWindow{start: now, expires: now.Add(window), count: 1}
		s.windows[key] = w

		return Window{Start: w.start, Count: w.count}, nil
	}

	if w.count <= ceiling {
		w.count++
	}

	return Window{Start: w.start, Count: w.count}, nil
}

// Sweep removes windows that expired before now and returns how many were
// removed.
func (s *MemoryStore) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, w := range s.windows {
		if now.After(w.expires) {
			delete(s.windows, key)
			removed++
		}
	}

	return removed
}

// Len returns the number of tracked windows.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.windows)
}
