// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/fitness-api/internal/logger"
)

func TestNewConnectMongo_InvalidURI(t *testing.T) {
	cfg := testDBConfig()
	cfg.URI = "mongodb://host:notaport/fitness"

	_, err := NewConnectMongo(context.Background(), cfg, logger.Nop())
	if !errors.Is(err, ErrInvalidURI) {
		t.Fatalf("expected ErrInvalidURI, got %v", err)
	}
	if NewConnectErrorClassifier().Classify(err) != NonRetryable {
		t.Error("expected invalid uri to be non-retryable")
	}
}

func TestNewConnectMongo_Unreachable(t *testing.T) {
	cfg := testDBConfig()
	cfg.URI = "mongodb://127.0.0.1:1/fitness?directConnection=true"
	cfg.ConnectTimeout = 200 * time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := NewConnectMongo(ctx, cfg, logger.Nop())
	if err == nil {
		t.Fatal("expected ping error for unreachable server")
	}
	if errors.Is(err, ErrInvalidURI) {
		t.Errorf("unreachable server must not be reported as invalid uri: %v", err)
	}
	if NewConnectErrorClassifier().Classify(err) != Retryable {
		t.Error("expected unreachable server to be retryable")
	}
}
