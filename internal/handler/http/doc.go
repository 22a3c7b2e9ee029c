// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the public HTTP transport of the gateway.
//
// Every request runs through the admission pipeline: body parser, CORS,
// security headers and rate limiter, in that order, and is then dispatched
// by the chi route table to the informational endpoints or one of the six
// mounted route groups. Trace ids, access logging and request metrics wrap
// the pipeline from the outside.
package http
