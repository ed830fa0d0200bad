// Copyright © 2025 Texedit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: storage/filestore.go
// Summary: Disk-backed load and save of documents as ordered lines.

package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DiskStore reads and writes documents on the local filesystem.
type DiskStore struct{}

// Load reads path into ordered lines. A missing file is not an error:
// it yields a single empty line and exists=false, so the editor can
// create the file on first save.
func (DiskStore) Load(path string) (lines []string, exists bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{""}, false, nil
		}
		return nil, false, fmt.Errorf("read %s: %w", path, err)
	}
	if len(data) == 0 {
		return []string{""}, true, nil
	}
	content := strings.TrimSuffix(string(data), "\n")
	return strings.Split(content, "\n"), true, nil
}

// Save writes ordered lines to path, creating parent directories as
// needed. A single empty line writes an empty file; anything else ends
// with a trailing newline.
func (DiskStore) Save(path string, lines []string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	var content string
	if len(lines) != 1 || lines[0] != "" {
		content = strings.Join(lines, "\n")
		if !strings.HasSuffix(content, "\n") {
			content += "\n"
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
