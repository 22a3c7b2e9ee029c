// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command healthcheck probes a running gateway and exits non-zero when it
// is not ready. It is meant for container HEALTHCHECK instructions, where
// no curl binary is available.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/fitness-api/internal/utils"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("healthcheck", flag.ContinueOnError)
	baseURL := fs.String("url", "http://127.0.0.1:3000", "base URL of the listener to probe")
	path := fs.String("path", "/", "path to probe, e.g. /readyz on the admin listener")
	timeout := fs.Duration("timeout", 3*time.Second, "probe timeout")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if err := probe(*baseURL, *path, *timeout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	return 0
}

func probe(baseURL, path string, timeout time.Duration) error {
	client := utils.NewHTTPClient(baseURL, timeout)

	resp, err := client.R().Get(path)
	if err != nil {
		return fmt.Errorf("probe %s%s: %w", baseURL, path, err)
	}

	if resp.IsError() {
		return fmt.Errorf("probe %s%s: status %d: %s", baseURL, path, resp.StatusCode(), resp.String())
	}

	return nil
}
