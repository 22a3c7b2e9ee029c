// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/fitness-api/internal/app"
	"github.com/MKhiriev/fitness-api/internal/logger"
	"github.com/MKhiriev/fitness-api/internal/utils"
	"github.com/MKhiriev/fitness-api/models"
)

func (h *Handler) welcome(w http.ResponseWriter, r *http.Request) {
	response := models.WelcomeResponse{
		Message:       app.MsgWelcome,
		Version:       h.cfg.App.Version,
		Documentation: app.WelcomeDocPath,
	}

	if _, err := utils.WriteJSON(w, response, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.welcome").Msg("error writing response")
	}
}

func (h *Handler) apiDescriptor(w http.ResponseWriter, r *http.Request) {
	endpoints := make([]models.Endpoint, 0, len(groupSpecs))
	for _, spec := range groupSpecs {
		endpoints = append(endpoints, models.Endpoint{
			Path:        spec.Prefix,
			Description: spec.Description,
		})
	}

	response := models.APIDescriptor{
		Message:       app.MsgAPITitle,
		Version:       h.cfg.App.Version,
		Endpoints:     endpoints,
		Documentation: h.cfg.App.DocumentationURL,
	}

	if _, err := utils.WriteJSON(w, response, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.apiDescriptor").Msg("error writing response")
	}
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, ErrRouteNotFound)
}
