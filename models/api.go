// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// WelcomeResponse is returned by GET /.
type WelcomeResponse struct {
	Message       string `json:"message"`
	Version       string `json:"version"`
	Documentation string `json:"documentation"`
}

// APIDescriptor is returned by GET /api and lists the mounted route groups.
type APIDescriptor struct {
	Message       string     `json:"message"`
	Version       string     `json:"version"`
	Endpoints     []Endpoint `json:"endpoints"`
	Documentation string     `json:"documentation"`
}

// Endpoint describes one mounted route group.
type Endpoint struct {
	Path        string `json:"path"`
	Description string `json:"description"`
}
