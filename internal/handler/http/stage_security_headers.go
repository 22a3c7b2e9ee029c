// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/fitness-api/internal/pipeline"
)

// securityHeaders is the fixed hardening header set attached to every
// response that passes this stage.
var securityHeaders = map[string]string{
	"Content-Security-Policy": "default-src 'self';base-uri 'self';font-src 'self' https: data:;" +
		"form-action 'self';frame-ancestors 'self';img-src 'self' data:;object-src 'none';" +
		"script-src 'self';script-src-attr 'none';style-src 'self' https: 'unsafe-inline';" +
		"upgrade-insecure-requests",
	"Cross-Origin-Opener-Policy":        "same-origin",
	"Cross-Origin-Resource-Policy":      "same-origin",
	"Origin-Agent-Cluster":              "?1",
	"Referrer-Policy":                   "no-referrer",
	"Strict-Transport-Security":         "max-age=31536000; includeSubDomains",
	"X-Content-Type-Options":            "nosniff",
	"X-DNS-Prefetch-Control":            "off",
	"X-Download-Options":                "noopen",
	"X-Frame-Options":                   "SAMEORIGIN",
	"X-Permitted-Cross-Domain-Policies": "none",
	"X-XSS-Protection":                  "0",
}

// securityHeaderSet returns the hardening set as a header map. The pipeline
// attaches it to fault responses raised before this stage runs.
func securityHeaderSet() http.Header {
	h := make(http.Header, len(securityHeaders))
	for name, value := range securityHeaders {
		h.Set(name, value)
	}

	return h
}

// newSecurityHeadersStage never rejects a request.
func newSecurityHeadersStage() pipeline.Stage {
	return pipeline.NewStage(StageSecurityHeaders, func(x *pipeline.Exchange) (*pipeline.Response, error) {
		for name, value := range securityHeaders {
			x.Header.Set(name, value)
		}
		x.Suppress("X-Powered-By")

		return nil, nil
	})
}
