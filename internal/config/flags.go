// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface. IPv6 hosts are written in
// brackets, as in "[::1]:3000".
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from args (without the program
// name).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-admin-address admin listener address in format [host]:[port]
//	-d database URI
//	-db-startup-mode "degrade" or "fail-fast"
//	-c/-config json file path with configs
//	-rate-limit-window window duration (e.g., "15m")
//	-rate-limit-max requests per window per client
//	-rate-limit-store "memory" or "redis"
//	-cors-origins comma separated allowed origins
//	-trust-proxy key clients by X-Forwarded-For
//	-log-level zerolog level name
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, adminAddress string
	var databaseURI, startupMode string
	var jsonConfigPath string
	var rateLimitWindow time.Duration
	var rateLimitMax int
	var rateLimitStore string
	var corsOrigins string
	var trustProxy bool
	var logLevel string

	fs := flag.NewFlagSet("fitness-api", flag.ContinueOnError)
	fs.StringVar(&serverAddress, "a", "", "Net address host:port")
	fs.StringVar(&adminAddress, "admin-address", "", "Admin listener address host:port")
	fs.StringVar(&databaseURI, "d", "", "Database URI")
	fs.StringVar(&startupMode, "db-startup-mode", "", "Database startup mode (degrade, fail-fast)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&rateLimitWindow, "rate-limit-window", 0, "Rate limit window (e.g., 15m)")
	fs.IntVar(&rateLimitMax, "rate-limit-max", 0, "Requests per window per client")
	fs.StringVar(&rateLimitStore, "rate-limit-store", "", "Rate limit store (memory, redis)")
	fs.StringVar(&corsOrigins, "cors-origins", "", "Comma separated allowed CORS origins")
	fs.BoolVar(&trustProxy, "trust-proxy", false, "Identify clients by X-Forwarded-For")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	// parsed after fs.Parse so ErrInvalidAddress stays in the error chain
	server, err := parseAddressFlag("a", serverAddress)
	if err != nil {
		return nil, err
	}
	admin, err := parseAddressFlag("admin-address", adminAddress)
	if err != nil {
		return nil, err
	}

	return &StructuredConfig{
		Server: Server{
			Host:       server.Host,
			Port:       server.Port,
			TrustProxy: trustProxy,
		},
		Admin: Admin{
			Address: admin.String(),
		},
		Storage: Storage{
			DB: DB{
				URI:         databaseURI,
				StartupMode: startupMode,
			},
		},
		RateLimit: RateLimit{
			Window: rateLimitWindow,
			Max:    rateLimitMax,
			Store:  rateLimitStore,
		},
		CORS: CORS{
			AllowedOrigins: splitList(corsOrigins),
		},
		Log: Log{
			Level: logLevel,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func parseAddressFlag(name, value string) (NetAddress, error) {
	var addr NetAddress
	if value == "" {
		return addr, nil
	}

	if err := addr.Set(value); err != nil {
		return NetAddress{}, fmt.Errorf("error parsing flags: flag -%s: %w", name, err)
	}

	return addr, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the NetAddress.
// The host may be empty (all interfaces), "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	if port < 1 || port > 65535 {
		return fmt.Errorf("%w: port number must be in 1..65535", ErrInvalidAddress)
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return fmt.Errorf("%w: incorrect IP-address provided", ErrInvalidAddress)
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}
