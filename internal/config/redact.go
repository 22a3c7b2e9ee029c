// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "net/url"

// Redacted returns a copy of the configuration that is safe to log: the
// passwords in database and redis URIs are masked.
func (c *StructuredConfig) Redacted() StructuredConfig {
	out := *c
	out.Storage.DB.URI = redactURI(c.Storage.DB.URI)
	out.Storage.DB.LegacyURI = redactURI(c.Storage.DB.LegacyURI)
	out.RateLimit.RedisURL = redactURI(c.RateLimit.RedisURL)

	return out
}

func redactURI(uri string) string {
	if uri == "" {
		return ""
	}

	u, err := url.Parse(uri)
	if err != nil {
		return "<unparsable>"
	}

	return u.Redacted()
}
