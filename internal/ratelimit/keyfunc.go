// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ratelimit

import (
	"net"
	"net/http"
	"strings"
)

// KeyFunc extracts the client identity a request is counted under.
type KeyFunc func(r *http.Request) string

// DefaultKeyFunc keys requests by the peer address. With trustProxy the
// first X-Forwarded-For entry is used, then X-Real-IP. Set trustProxy only
// when the gateway runs behind a proxy that overwrites these headers.
func DefaultKeyFunc(trustProxy bool) KeyFunc {
	return func(r *http.Request) string {
		if trustProxy {
			if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
				first, _, _ := strings.Cut(xff, ",")
				if ip := normalizeIP(first); ip != "" {
					return ip
				}
			}

			if ip := normalizeIP(r.Header.Get("X-Real-IP")); ip != "" {
				return ip
			}
		}

		// fallback: RemoteAddr
		remote := strings.TrimSpace(r.RemoteAddr)
		host, _, err := net.SplitHostPort(remote)
		if err == nil && host != "" {
			return host
		}
		if remote != "" {
			return remote
		}
		return "unknown"
	}
}

func normalizeIP(s string) string {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil {
		return ""
	}

	return ip.String()
}
