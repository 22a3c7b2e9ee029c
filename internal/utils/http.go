// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/fitness-api/internal/app"
	"github.com/MKhiriev/fitness-api/models"
)

// marshalFailureBody is written when a response value cannot be encoded.
var marshalFailureBody = []byte(`{"error":"` + app.MsgSomethingWentWrong + `"}`)

// WriteJSON serializes data and writes it with the given status code and a
// JSON Content-Type. It returns the number of body bytes written.
//
// If data cannot be marshaled, the gateway's generic 500 body is written
// instead and the marshaling error is returned.
//
// Example usage:
//
//	WriteJSON(w, models.WelcomeResponse{...}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	w.Header().Set("Content-Type", "application/json")

	jsonData, err := json.Marshal(data)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write(marshalFailureBody)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes the gateway's standard error body {"error": msg} with
// the given status code.
func WriteError(w http.ResponseWriter, statusCode int, msg string) error {
	_, err := WriteJSON(w, models.ErrorResponse{Error: msg}, statusCode)
	return err
}
