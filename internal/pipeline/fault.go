// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pipeline

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/MKhiriev/fitness-api/internal/app"
	"github.com/MKhiriev/fitness-api/internal/logger"
	"github.com/MKhiriev/fitness-api/internal/utils"
	"github.com/MKhiriev/fitness-api/models"
)

// FaultObserver is notified about every contained fault.
type FaultObserver interface {
	ObserveFault(status int)
}

type faultSlotKey struct{}

// faultSlot holds errors reported by handlers for the current request.
type faultSlot struct {
	mu  sync.Mutex
	err error
}

func withFaultSlot(ctx context.Context) context.Context {
	return context.WithValue(ctx, faultSlotKey{}, &faultSlot{})
}

// ReportError hands err to the fault container of the pipeline serving r.
// The handler must not write a response after reporting. Several reports on
// one request are joined. ReportError returns false when r is not served by
// a pipeline or err is nil.
func ReportError(r *http.Request, err error) bool {
	if err == nil {
		return false
	}

	slot, ok := r.Context().Value(faultSlotKey{}).(*faultSlot)
	if !ok {
		return false
	}

	slot.mu.Lock()
	defer slot.mu.Unlock()
	slot.err = errors.Join(slot.err, err)

	return true
}

func reportedError(ctx context.Context) error {
	slot, ok := ctx.Value(faultSlotKey{}).(*faultSlot)
	if !ok {
		return nil
	}

	slot.mu.Lock()
	defer slot.mu.Unlock()

	return slot.err
}

// Classify maps a contained fault to the response status and the message
// sent to the client. Only parse and size failures are reported as client
// errors; every other fault gets the generic text.
func Classify(err error) (int, string) {
	var parseErr *ParseError
	switch {
	case errors.As(err, &parseErr):
		return http.StatusBadRequest, app.MsgInvalidJSONBody
	case errors.Is(err, ErrBodyTooLarge):
		return http.StatusRequestEntityTooLarge, app.MsgBodyTooLarge
	case errors.Is(err, ErrUnsupportedEncoding):
		return http.StatusUnsupportedMediaType, app.MsgUnsupportedEncoding
	default:
		return http.StatusInternalServerError, app.MsgSomethingWentWrong
	}
}

// contain logs err and, when nothing has been sent yet, writes the generic
// fault response.
func (p *Pipeline) contain(w *commitWriter, x *Exchange, err error, stack []byte) {
	status, msg := Classify(err)

	if p.observer != nil {
		p.observer.ObserveFault(status)
	}

	log := logger.FromRequest(x.Request)
	event := log.Error()
	if status < http.StatusInternalServerError {
		event = log.Warn()
	}

	event = event.Err(err).
		Str("method", x.Request.Method).
		Str("uri", x.Request.RequestURI).
		Int("status", status)
	if stack != nil {
		event = event.Bytes("stack", stack)
	}

	if w.committed {
		event.Int("committed_status", w.status).Msg("fault after response was committed")
		return
	}
	event.Msg("fault contained")

	w.reset()
	if _, writeErr := utils.WriteJSON(w, models.ErrorResponse{Error: msg}, status); writeErr != nil {
		log.Err(writeErr).Msg("error writing fault response")
	}
}
