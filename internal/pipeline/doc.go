// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package pipeline implements the request admission pipeline of the gateway.
//
// A [Pipeline] runs an explicit ordered list of [Stage] values against an
// [Exchange] and then hands the request to a dispatcher. Each stage either
// lets the request continue (optionally replacing it), short-circuits with a
// [Response], or fails with an error.
//
// The whole run is wrapped in a fault container: stage errors, panics raised
// by stages or handlers, and errors reported by handlers through
// [ReportError] are logged with full detail and converted into exactly one
// generic JSON response. Response headers accumulated by stages are attached
// to whichever response ends the request.
package pipeline
