// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pipeline

import (
	"bytes"
	"net/http"
)

// FromMiddleware adapts a chi-style middleware into a [Stage].
//
// The middleware runs against a recorder. If it calls the next handler the
// stage continues with the request it passed on; otherwise whatever it wrote
// becomes the short-circuit response. Headers it set are kept in both cases.
func FromMiddleware(name string, mw func(http.Handler) http.Handler) Stage {
	return NewStage(name, func(x *Exchange) (*Response, error) {
		rec := &stageRecorder{header: make(http.Header)}

		var passed *http.Request
		next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			passed = r
		})

		mw(next).ServeHTTP(rec, x.Request)
		copyHeader(x.Header, rec.header)

		if passed != nil {
			x.Request = passed
			return nil, nil
		}

		status := rec.status
		if status == 0 {
			status = http.StatusOK
		}

		return &Response{Status: status, Body: rec.body.Bytes()}, nil
	})
}

// stageRecorder is the response writer handed to adapted middleware.
type stageRecorder struct {
	header http.Header
	status int
	body   bytes.Buffer
}

func (r *stageRecorder) Header() http.Header {
	return r.header
}

func (r *stageRecorder) WriteHeader(statusCode int) {
	if r.status == 0 {
		r.status = statusCode
	}
}

func (r *stageRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}

	return r.body.Write(b)
}
