// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Default values applied after every other configuration source.
const (
	DefaultPort             = 3000
	DefaultVersion          = "1.0.0"
	DefaultDocumentationURL = "https://github.com/yourusername/fitness-app-backend/blob/main/API_DOCUMENTATION.md"
	DefaultBodyLimit        = 100 << 10
	DefaultRateLimitWindow  = 15 * time.Minute
	DefaultRateLimitMax     = 100
)

// Default returns the configuration used for every field no other source
// has set. It is also the base for tests.
func Default() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:          DefaultVersion,
			DocumentationURL: DefaultDocumentationURL,
		},
		Server: Server{
			Port:            DefaultPort,
			BodyLimit:       DefaultBodyLimit,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Storage: Storage{
			DB: DB{
				MaxPoolSize:    10,
				ConnectTimeout: 10 * time.Second,
				StartupMode:    StartupModeDegrade,
				RetryBase:      500 * time.Millisecond,
				RetryMax:       30 * time.Second,
				StartupTimeout: 30 * time.Second,
				PingInterval:   15 * time.Second,
			},
		},
		RateLimit: RateLimit{
			Window:          DefaultRateLimitWindow,
			Max:             DefaultRateLimitMax,
			Store:           RateLimitStoreMemory,
			KeyPrefix:       "fitness-api:ratelimit:",
			CleanupInterval: time.Minute,
		},
		CORS: CORS{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "HEAD", "PUT", "PATCH", "POST", "DELETE"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Trace-ID"},
			ExposedHeaders: []string{"X-Trace-ID", "Retry-After", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		},
		Log: Log{
			Level: "info",
		},
	}
}
