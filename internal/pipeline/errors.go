// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pipeline

import (
	"errors"
	"fmt"
)

var (
	// ErrBodyTooLarge is returned by the body parser when the request payload
	// exceeds the configured limit. The fault container maps it to 413.
	ErrBodyTooLarge = errors.New("request body too large")

	// ErrUnsupportedEncoding is returned when the request body uses a
	// Content-Encoding the body parser cannot decode. Mapped to 415.
	ErrUnsupportedEncoding = errors.New("unsupported content encoding")

	// ErrPanic wraps a value recovered from a panicking stage or handler.
	ErrPanic = errors.New("panic recovered")
)

// ParseError reports a request body that could not be decoded as declared by
// its Content-Type. The fault container maps it to 400.
type ParseError struct {
	ContentType string
	Err         error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s body: %v", e.ContentType, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func panicError(recovered any) error {
	if err, ok := recovered.(error); ok {
		return fmt.Errorf("%w: %w", ErrPanic, err)
	}

	return fmt.Errorf("%w: %v", ErrPanic, recovered)
}
