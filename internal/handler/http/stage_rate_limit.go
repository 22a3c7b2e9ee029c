// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"math"
	"net/http"
	"strconv"

	"github.com/MKhiriev/fitness-api/internal/app"
	"github.com/MKhiriev/fitness-api/internal/logger"
	"github.com/MKhiriev/fitness-api/internal/pipeline"
	"github.com/MKhiriev/fitness-api/internal/ratelimit"
	"github.com/MKhiriev/fitness-api/internal/utils"
	"github.com/MKhiriev/fitness-api/models"
)

// Rate limit response headers.
const (
	headerRateLimitLimit     = "X-RateLimit-Limit"
	headerRateLimitRemaining = "X-RateLimit-Remaining"
	headerRateLimitReset     = "X-RateLimit-Reset"
	headerRetryAfter         = "Retry-After"
)

// newRateLimitStage admits or rejects the request by its client identity.
// A rejection is a regular 429 response, not a fault.
func (h *Handler) newRateLimitStage() pipeline.Stage {
	return pipeline.NewStage(StageRateLimit, func(x *pipeline.Exchange) (*pipeline.Response, error) {
		r := x.Request
		identity := h.keyFunc(r)

		d := h.limiter.Admit(r.Context(), identity, h.now())
		if h.metrics != nil {
			h.metrics.RecordRateLimitDecision(d)
		}

		x.Request = r.WithContext(context.WithValue(r.Context(), utils.ClientIDCtxKey, identity))

		if !d.Degraded {
			setRateLimitHeaders(x.Header, d)
		}

		if d.Allowed {
			return nil, nil
		}

		retryAfter := d.RetryAfterSeconds()
		x.Header.Set(headerRetryAfter, strconv.FormatInt(retryAfter, 10))

		logger.FromRequest(r).Debug().
			Str("client", identity).
			Int("count", d.Count).
			Int("limit", d.Limit).
			Int64("retry_after", retryAfter).
			Msg("rate limit exceeded")

		return pipeline.JSONResponse(http.StatusTooManyRequests, models.RateLimitResponse{
			Error:             app.MsgTooManyRequests,
			RetryAfterSeconds: retryAfter,
		})
	})
}

func setRateLimitHeaders(header http.Header, d ratelimit.Decision) {
	reset := int64(math.Ceil(float64(d.ResetAt.UnixMilli()) / 1000))

	header.Set(headerRateLimitLimit, strconv.Itoa(d.Limit))
	header.Set(headerRateLimitRemaining, strconv.Itoa(d.Remaining))
	header.Set(headerRateLimitReset, strconv.FormatInt(reset, 10))
}
