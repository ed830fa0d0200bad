// Copyright © 2025 Texedit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoad_MissingFile(t *testing.T) {
	var store DiskStore
	lines, exists, err := store.Load(filepath.Join(t.TempDir(), "nope.txt"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if exists {
		t.Errorf("Expected exists=false for missing file")
	}
	if !reflect.DeepEqual(lines, []string{""}) {
		t.Errorf("Expected single empty line, got %v", lines)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	var store DiskStore
	path := filepath.Join(t.TempDir(), "sub", "file.txt")
	want := []string{"first", "", "third"}
	if err := store.Save(path, want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	lines, exists, err := store.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !exists {
		t.Errorf("Expected exists=true after save")
	}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("Expected %v, got %v", want, lines)
	}
}

func TestSave_TrailingNewline(t *testing.T) {
	var store DiskStore
	path := filepath.Join(t.TempDir(), "file.txt")
	if err := store.Save(path, []string{"one", "two"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "one\ntwo\n" {
		t.Errorf("Expected trailing newline, got %q", string(data))
	}
}

func TestSave_EmptyBufferWritesEmptyFile(t *testing.T) {
	var store DiskStore
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := store.Save(path, []string{""}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("Expected empty file, got %q", string(data))
	}
	lines, _, err := store.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(lines, []string{""}) {
		t.Errorf("Expected single empty line, got %v", lines)
	}
}
