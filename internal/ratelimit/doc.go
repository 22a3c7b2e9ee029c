// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package ratelimit implements fixed-window request counting per client
// identity.
//
// A [Limiter] asks a [Store] to record a hit for an identity and decides
// whether the request is admitted. Two stores are provided: [MemoryStore]
// keeps windows in process memory and is swept by a [Janitor], [RedisStore]
// shares windows between gateway instances through a server-side script.
package ratelimit
