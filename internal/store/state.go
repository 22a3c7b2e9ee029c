// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// ConnectionState is the lifecycle state of the process-wide database
// connection.
type ConnectionState int32

const (
	// StateConnecting means the first connect series is running.
	StateConnecting ConnectionState = iota

	// StateConnected means the last connect or ping succeeded.
	StateConnected

	// StateDisconnected means connecting failed or the connection was lost.
	StateDisconnected
)

func (s ConnectionState) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateDisconnected:
		return "disconnected"
	default:
		return "unknown"
	}
}
