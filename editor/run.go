// Copyright © 2025 Texedit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: editor/run.go
// Summary: Editor lifecycle: terminal acquisition, the decode/apply
// loop, and guaranteed terminal restoration on every exit path.

package editor

import (
	"fmt"
	"log"
	"strings"

	"github.com/framegrace/texedit/buffer"
	"github.com/framegrace/texedit/config"
	"github.com/framegrace/texedit/highlight"
	"github.com/framegrace/texedit/input"
	"github.com/framegrace/texedit/render"
	"github.com/framegrace/texedit/storage"
	"github.com/framegrace/texedit/terminal"
)

// Run edits path until the user leaves with Escape. An empty path
// starts an unnamed buffer that cannot be saved. The terminal is
// restored before Run returns, error or not.
func Run(path string) error {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("Config: %v", err)
	}
	prefs := cfg.Preferences()
	cfg.Alignment() // validate and warn before the screen goes raw

	var store storage.DiskStore
	lines := []string{""}
	exists := false
	if path != "" {
		lines, exists, err = store.Load(path)
		if err != nil {
			return err
		}
	}
	doc := buffer.FromStrings(lines)

	var positions *storage.PositionStore
	if statePath, perr := storage.DefaultPositionsPath(); perr != nil {
		log.Printf("Storage: %v", perr)
	} else if positions, perr = storage.OpenPositions(statePath); perr != nil {
		log.Printf("Storage: %v", perr)
		positions = nil
	} else {
		defer positions.Close()
	}

	ts, err := terminal.Open()
	if err != nil {
		return err
	}
	defer ts.Close()

	cols, rows, err := ts.Size()
	if err != nil {
		return err
	}
	if cols < 1 || rows < 2 {
		return fmt.Errorf("terminal too small: %dx%d", cols, rows)
	}

	if err := ts.EnterRaw(); err != nil {
		return err
	}
	ts.EnterAltScreen()
	ts.EnableMouse()

	cls := highlight.NewClassifier(path, []byte(strings.Join(lines, "\n")))
	sink := render.NewSink(ts, doc, cls, cols, rows, path)
	sess := NewSession(doc, path, exists, rows-1, prefs, sink, store)
	if err := sink.Init(); err != nil {
		return fmt.Errorf("paint screen: %w", err)
	}

	if positions != nil && path != "" && exists {
		if x, y, ok, perr := positions.Get(path); perr == nil && ok {
			sess.SetCursor(x, y)
		}
	}
	sink.Cursor(sess.cursor.X, sess.cursor.Y)
	if err := sink.Flush(); err != nil {
		return fmt.Errorf("write terminal: %w", err)
	}

	dec := input.NewDecoder(ts)
	for {
		cmd, err := dec.Next()
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		quit, err := sess.Apply(cmd)
		if err != nil {
			return err
		}
		if quit {
			break
		}
	}

	// Leave raw mode and the alternate screen first so anything logged
	// below lands on a cooked terminal. The deferred Close still runs;
	// Restore is idempotent.
	if err := ts.Restore(); err != nil {
		log.Printf("Terminal: %v", err)
	}
	if positions != nil && path != "" && sess.Saved() {
		if err := positions.Put(path, sess.cursor.X, sess.cursor.Y); err != nil {
			log.Printf("Storage: %v", err)
		}
	}
	return nil
}
