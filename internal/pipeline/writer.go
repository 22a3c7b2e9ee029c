// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pipeline

import "net/http"

// commitWriter tracks whether a response has been committed so the fault
// container never writes a second one.
type commitWriter struct {
	http.ResponseWriter

	// base is the header set present before the pipeline ran (trace id and
	// other outer middleware headers). The fault response starts from it.
	base http.Header

	// faultBase is applied to fault responses only.
	faultBase http.Header

	exchange  *Exchange
	committed bool
	status    int
}

func newCommitWriter(w http.ResponseWriter, x *Exchange, faultBase http.Header) *commitWriter {
	return &commitWriter{
		ResponseWriter: w,
		base:           w.Header().Clone(),
		faultBase:      faultBase,
		exchange:       x,
	}
}

func (w *commitWriter) WriteHeader(statusCode int) {
	if w.committed {
		return
	}

	for _, name := range w.exchange.suppress {
		w.Header().Del(name)
	}

	w.committed = true
	w.status = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *commitWriter) Write(b []byte) (int, error) {
	if !w.committed {
		w.WriteHeader(http.StatusOK)
	}

	return w.ResponseWriter.Write(b)
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *commitWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// reset drops headers set after the stages ran and restores the base set,
// the fault headers and the stage headers.
func (w *commitWriter) reset() {
	h := w.Header()
	for k := range h {
		delete(h, k)
	}

	copyHeader(h, w.base)
	copyHeader(h, w.faultBase)
	copyHeader(h, w.exchange.Header)
}
