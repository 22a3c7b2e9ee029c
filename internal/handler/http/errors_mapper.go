// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/fitness-api/internal/app"
	"github.com/MKhiriev/fitness-api/internal/logger"
	"github.com/MKhiriev/fitness-api/internal/pipeline"
	"github.com/MKhiriev/fitness-api/internal/store"
	"github.com/MKhiriev/fitness-api/internal/utils"
)

type errorStatus struct {
	status  int
	message string
}

var errorStatusMap = map[error]errorStatus{
	ErrRouteNotFound:       {http.StatusNotFound, app.MsgNotFound},
	ErrGroupNotImplemented: {http.StatusNotImplemented, app.MsgNotImplemented},
	ErrDatabaseUnavailable: {http.StatusServiceUnavailable, app.MsgDatabaseUnavailable},

	store.ErrNotConnected:     {http.StatusServiceUnavailable, app.MsgDatabaseUnavailable},
	store.ErrConnectionFailed: {http.StatusServiceUnavailable, app.MsgDatabaseUnavailable},
}

func statusFromError(err error) (errorStatus, bool) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, true
		}
	}
	return errorStatus{}, false
}

// respondError writes the JSON error response for a known error. Anything
// else is handed to the fault container, which answers with the generic 500.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status, ok := statusFromError(err)
	if !ok {
		if !pipeline.ReportError(r, err) {
			logger.FromRequest(r).Err(err).Msg("unhandled error outside the pipeline")
			_ = utils.WriteError(w, http.StatusInternalServerError, app.MsgSomethingWentWrong)
		}
		return
	}

	if writeErr := utils.WriteError(w, status.status, status.message); writeErr != nil {
		logger.FromRequest(r).Err(writeErr).Msg("error writing error response")
	}
}
