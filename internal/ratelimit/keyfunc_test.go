// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultKeyFunc(t *testing.T) {
	tests := []struct {
		name       string
		trustProxy bool
		remoteAddr string
		headers    map[string]string
		expected   string
	}{
		{
			name:       "peer address",
			remoteAddr: "192.0.2.10:51234",
			expected:   "192.0.2.10",
		},
		{
			name:       "forwarded header ignored without trust",
			remoteAddr: "192.0.2.10:51234",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.5"},
			expected:   "192.0.2.10",
		},
		{
			name:       "first forwarded entry with trust",
			trustProxy: true,
			remoteAddr: "10.0.0.2:80",
			headers:    map[string]string{"X-Forwarded-For": " 203.0.113.5 , 10.0.0.1"},
			expected:   "203.0.113.5",
		},
		{
			name:       "real ip when forwarded is garbage",
			trustProxy: true,
			remoteAddr: "10.0.0.2:80",
			headers:    map[string]string{"X-Forwarded-For": "garbage", "X-Real-IP": "198.51.100.7"},
			expected:   "198.51.100.7",
		},
		{
			name:       "peer address when headers missing",
			trustProxy: true,
			remoteAddr: "10.0.0.2:80",
			expected:   "10.0.0.2",
		},
		{
			name:       "ipv6 peer",
			remoteAddr: "[2001:db8::1]:443",
			expected:   "2001:db8::1",
		},
		{
			name:       "remote addr without port",
			remoteAddr: "192.0.2.44",
			expected:   "192.0.2.44",
		},
		{
			name:       "no address at all",
			remoteAddr: "",
			expected:   "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}

			assert.Equal(t, tt.expected, DefaultKeyFunc(tt.trustProxy)(r))
		})
	}
}
