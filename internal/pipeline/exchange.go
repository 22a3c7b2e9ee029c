// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pipeline

import (
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
)

// Exchange is the state one request carries through the stages.
type Exchange struct {
	// Request is the current request. A stage continues with a transformed
	// request by replacing it; the new request must derive its context from
	// the previous one.
	Request *http.Request

	// Header collects response headers set by stages. They are attached to
	// the stage short-circuit response, the dispatcher response or the fault
	// response, whichever ends the request.
	Header http.Header

	suppress []string
}

// Suppress removes the named header from the final response, even when a
// handler sets it after the stages have run.
func (x *Exchange) Suppress(name string) {
	x.suppress = append(x.suppress, http.CanonicalHeaderKey(name))
}

// Response is a short-circuit response produced by a stage.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// JSONResponse encodes v and returns it as a short-circuit response with
// the JSON content type.
func JSONResponse(status int, v any) (*Response, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("error encoding response: %w", err)
	}

	header := make(http.Header)
	header.Set("Content-Type", "application/json")

	return &Response{Status: status, Header: header, Body: body}, nil
}

// Stage is one step of the admission pipeline.
//
// Process returns (nil, nil) to continue, a non-nil *Response to end the
// request with that response, or an error which the fault container handles.
type Stage interface {
	Name() string
	Process(x *Exchange) (*Response, error)
}

// StageFunc is the function form of [Stage.Process].
type StageFunc func(x *Exchange) (*Response, error)

type namedStage struct {
	name string
	fn   StageFunc
}

// NewStage returns a [Stage] with the given name that runs fn.
func NewStage(name string, fn StageFunc) Stage {
	return &namedStage{name: name, fn: fn}
}

func (s *namedStage) Name() string {
	return s.name
}

func (s *namedStage) Process(x *Exchange) (*Response, error) {
	return s.fn(x)
}

// copyHeader replaces every key of src in dst.
func copyHeader(dst, src http.Header) {
	for k, vv := range src {
		dst[k] = slices.Clone(vv)
	}
}
