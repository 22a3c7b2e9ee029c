// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "github.com/MKhiriev/fitness-api/internal/pipeline"

// Stage names, in pipeline order.
const (
	StageBodyParser      = "body-parser"
	StageCORS            = "cors"
	StageSecurityHeaders = "security-headers"
	StageRateLimit       = "rate-limit"
)

// stages returns the admission pipeline in its fixed order.
func (h *Handler) stages() []pipeline.Stage {
	return []pipeline.Stage{
		newBodyParserStage(h.cfg.Server.BodyLimit),
		newCORSStage(h.cfg.CORS),
		newSecurityHeadersStage(),
		h.newRateLimitStage(),
	}
}
