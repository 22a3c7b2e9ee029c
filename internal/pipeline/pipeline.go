// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pipeline

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
)

// Pipeline executes the stages in order and then the dispatcher, all inside
// the fault container. It is immutable after construction and safe for
// concurrent use.
type Pipeline struct {
	stages     []Stage
	dispatcher http.Handler
	observer   FaultObserver
	faultBase  http.Header
}

// Option configures a [Pipeline].
type Option func(*Pipeline)

// WithFaultObserver registers an observer for contained faults.
func WithFaultObserver(o FaultObserver) Option {
	return func(p *Pipeline) {
		p.observer = o
	}
}

// WithBaseHeaders sets headers every fault response carries, even when the
// stage that would attach them has not run yet.
func WithBaseHeaders(h http.Header) Option {
	return func(p *Pipeline) {
		p.faultBase = h.Clone()
	}
}

// New builds a pipeline that runs stages in the given order before
// dispatcher.
func New(dispatcher http.Handler, stages []Stage, opts ...Option) *Pipeline {
	p := &Pipeline{
		stages:     append([]Stage(nil), stages...),
		dispatcher: dispatcher,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// StageNames returns the stage names in execution order.
func (p *Pipeline) StageNames() []string {
	names := make([]string, 0, len(p.stages))
	for _, s := range p.stages {
		names = append(names, s.Name())
	}

	return names
}

func (p *Pipeline) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	x := &Exchange{
		Request: r.WithContext(withFaultSlot(r.Context())),
		Header:  make(http.Header),
	}
	cw := newCommitWriter(w, x, p.faultBase)

	defer func() {
		recovered := recover()
		if recovered == nil {
			return
		}

		// the client is gone, let net/http handle the abort
		if err, ok := recovered.(error); ok && errors.Is(err, http.ErrAbortHandler) {
			panic(recovered)
		}

		p.contain(cw, x, panicError(recovered), debug.Stack())
	}()

	for _, stage := range p.stages {
		resp, err := stage.Process(x)
		if err != nil {
			p.contain(cw, x, fmt.Errorf("stage %s: %w", stage.Name(), err), nil)
			return
		}

		if resp != nil {
			p.respond(cw, x, resp)
			return
		}
	}

	copyHeader(cw.Header(), x.Header)
	p.dispatcher.ServeHTTP(cw, x.Request)

	if err := reportedError(x.Request.Context()); err != nil {
		p.contain(cw, x, err, nil)
	}
}

func (p *Pipeline) respond(w *commitWriter, x *Exchange, resp *Response) {
	copyHeader(w.Header(), x.Header)
	copyHeader(w.Header(), resp.Header)

	status := resp.Status
	if status == 0 {
		status = http.StatusOK
	}

	w.WriteHeader(status)
	if len(resp.Body) > 0 {
		_, _ = w.Write(resp.Body)
	}
}
