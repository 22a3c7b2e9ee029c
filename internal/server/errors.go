// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoServersAreCreated is returned by NewServer when the public
	// handler is missing. The admin listener alone is not a gateway.
	errNoServersAreCreated = errors.New("no servers are created")

	// errNoServersToRun is returned by run on a zero server.
	errNoServersToRun = errors.New("no servers to run")
)
