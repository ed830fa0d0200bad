// Copyright © 2025 Texedit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"path/filepath"
	"testing"
)

func openTestPositions(t *testing.T) *PositionStore {
	t.Helper()
	store, err := OpenPositions(filepath.Join(t.TempDir(), "state", "positions.db"))
	if err != nil {
		t.Fatalf("OpenPositions failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestPositions_GetMissing(t *testing.T) {
	store := openTestPositions(t)
	_, _, ok, err := store.Get("/no/such/file.txt")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok {
		t.Errorf("Expected no position for unknown path")
	}
}

func TestPositions_PutGet(t *testing.T) {
	store := openTestPositions(t)
	if err := store.Put("/tmp/file.txt", 7, 42); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	x, y, ok, err := store.Get("/tmp/file.txt")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok || x != 7 || y != 42 {
		t.Errorf("Expected (7,42), got (%d,%d) ok=%v", x, y, ok)
	}
}

func TestPositions_PutReplaces(t *testing.T) {
	store := openTestPositions(t)
	if err := store.Put("/tmp/file.txt", 1, 1); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := store.Put("/tmp/file.txt", 3, 9); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	x, y, ok, err := store.Get("/tmp/file.txt")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok || x != 3 || y != 9 {
		t.Errorf("Expected replaced position (3,9), got (%d,%d) ok=%v", x, y, ok)
	}
}

func TestPositions_RelativePathCanonicalized(t *testing.T) {
	store := openTestPositions(t)
	if err := store.Put("file.txt", 2, 4); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	abs, err := filepath.Abs("file.txt")
	if err != nil {
		t.Fatalf("Abs failed: %v", err)
	}
	x, y, ok, err := store.Get(abs)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok || x != 2 || y != 4 {
		t.Errorf("Expected canonicalized lookup to hit, got (%d,%d) ok=%v", x, y, ok)
	}
}
