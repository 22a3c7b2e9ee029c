// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestBodyCtxKey(t *testing.T) {
	if BodyCtxKey.String() != "body" {
		t.Errorf("expected 'body', got '%s'", BodyCtxKey.String())
	}
}

func TestGetBodyFromContext_Success(t *testing.T) {
	ctx := context.WithValue(context.Background(), BodyCtxKey, map[string]any{"reps": float64(10)})

	body, ok := GetBodyFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	m, isMap := body.(map[string]any)
	if !isMap {
		t.Fatalf("expected map body, got %T", body)
	}
	if m["reps"] != float64(10) {
		t.Errorf("expected reps=10, got %v", m["reps"])
	}
}

func TestGetBodyFromContext_EmptyObject(t *testing.T) {
	ctx := context.WithValue(context.Background(), BodyCtxKey, map[string]any{})

	_, ok := GetBodyFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true for empty object, got false")
	}
}

func TestGetBodyFromContext_Missing(t *testing.T) {
	body, ok := GetBodyFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if body != nil {
		t.Errorf("expected nil body, got %v", body)
	}
}

func TestGetClientIDFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), ClientIDCtxKey, "10.0.0.1")

	clientID, ok := GetClientIDFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if clientID != "10.0.0.1" {
		t.Errorf("expected '10.0.0.1', got '%s'", clientID)
	}
}

func TestGetClientIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), ClientIDCtxKey, 42)

	clientID, ok := GetClientIDFromContext(ctx)

	if ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
	if clientID != "" {
		t.Errorf("expected empty client id, got '%s'", clientID)
	}
}
