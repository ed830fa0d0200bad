// Copyright © 2025 Texedit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package editor

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/framegrace/texedit/buffer"
	"github.com/framegrace/texedit/config"
	"github.com/framegrace/texedit/input"
)

// stubRenderer records redraw calls so tests can assert both the final
// state and the repaint traffic that produced it.
type stubRenderer struct {
	calls []string
}

func (r *stubRenderer) record(format string, args ...interface{}) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *stubRenderer) Init() error           { r.record("Init"); return nil }
func (r *stubRenderer) LineTail(y, fromX int) { r.record("LineTail(%d,%d)", y, fromX) }
func (r *stubRenderer) LinesFrom(y int)       { r.record("LinesFrom(%d)", y) }
func (r *stubRenderer) Scroll(delta int)      { r.record("Scroll(%d)", delta) }
func (r *stubRenderer) SetScroll(scrollY int) { r.record("SetScroll(%d)", scrollY) }
func (r *stubRenderer) Cursor(x, y int)       {}
func (r *stubRenderer) Highlight(y int)       {}
func (r *stubRenderer) Flush() error          { return nil }

func (r *stubRenderer) reset() { r.calls = nil }

func (r *stubRenderer) saw(call string) bool {
	for _, c := range r.calls {
		if c == call {
			return true
		}
	}
	return false
}

type stubStore struct {
	path  string
	lines []string
	saves int
}

func (s *stubStore) Save(path string, lines []string) error {
	s.path = path
	s.lines = append([]string(nil), lines...)
	s.saves++
	return nil
}

func newTestSession(lines []string, height int) (*Session, *stubRenderer, *stubStore) {
	rend := &stubRenderer{}
	store := &stubStore{}
	doc := buffer.FromStrings(lines)
	sess := NewSession(doc, "test.txt", true, height, config.DefaultPreferences(), rend, store)
	return sess, rend, store
}

func apply(t *testing.T, s *Session, cmds ...input.Command) {
	t.Helper()
	for _, cmd := range cmds {
		if _, err := s.Apply(cmd); err != nil {
			t.Fatalf("Apply failed: %v", err)
		}
	}
}

func key(k input.Kind) input.Command { return input.Command{Kind: k} }

func typeText(t *testing.T, s *Session, text string) {
	t.Helper()
	for _, r := range text {
		apply(t, s, input.Command{Kind: input.Printable, Rune: r})
	}
}

func wantCursor(t *testing.T, s *Session, x, y int) {
	t.Helper()
	c := s.Cursor()
	if c.X != x || c.Y != y {
		t.Errorf("Expected cursor (%d,%d), got (%d,%d)", x, y, c.X, c.Y)
	}
}

func TestTyping_EmptyBuffer(t *testing.T) {
	sess, _, _ := newTestSession(nil, 10)
	typeText(t, sess, "hello")
	if got := sess.Doc().Strings()[0]; got != "hello" {
		t.Errorf("Expected 'hello', got %q", got)
	}
	wantCursor(t, sess, 5, 0)
}

func TestEnter_SplitsLine(t *testing.T) {
	sess, _, _ := newTestSession([]string{"hello world"}, 10)
	sess.SetCursor(5, 0)
	apply(t, sess, key(input.Enter))
	want := []string{"hello", " world"}
	if !reflect.DeepEqual(sess.Doc().Strings(), want) {
		t.Errorf("Expected %v, got %v", want, sess.Doc().Strings())
	}
	wantCursor(t, sess, 0, 1)
}

func TestBackspace_AtLineStartMerges(t *testing.T) {
	sess, _, _ := newTestSession([]string{"foo", "bar"}, 10)
	sess.SetCursor(0, 1)
	apply(t, sess, key(input.Backspace))
	if got := sess.Doc().Strings(); !reflect.DeepEqual(got, []string{"foobar"}) {
		t.Errorf("Expected merged line, got %v", got)
	}
	wantCursor(t, sess, 3, 0)
}

func TestDelete_AtLineEndMerges(t *testing.T) {
	sess, _, _ := newTestSession([]string{"foo", "bar"}, 10)
	sess.SetCursor(3, 0)
	apply(t, sess, key(input.Delete))
	if got := sess.Doc().Strings(); !reflect.DeepEqual(got, []string{"foobar"}) {
		t.Errorf("Expected merged line, got %v", got)
	}
	wantCursor(t, sess, 3, 0)
}

// The sticky column: moving through a short line and back restores the
// original column.
func TestStickyColumn(t *testing.T) {
	sess, _, _ := newTestSession([]string{"abcdefgh", "ab", "abcdefgh"}, 10)
	sess.SetCursor(5, 0)

	apply(t, sess, key(input.ArrowDown))
	wantCursor(t, sess, 2, 1)

	apply(t, sess, key(input.ArrowDown))
	wantCursor(t, sess, 5, 2)

	apply(t, sess, key(input.ArrowUp), key(input.ArrowUp))
	wantCursor(t, sess, 5, 0)
}

func TestStickyColumn_HorizontalMoveResets(t *testing.T) {
	sess, _, _ := newTestSession([]string{"abcdefgh", "ab", "abcdefgh"}, 10)
	sess.SetCursor(5, 0)
	apply(t, sess, key(input.ArrowDown), key(input.ArrowLeft), key(input.ArrowDown))
	wantCursor(t, sess, 1, 2)
}

func TestMoveLeft_WrapsToPreviousLineEnd(t *testing.T) {
	sess, _, _ := newTestSession([]string{"abc", "def"}, 10)
	sess.SetCursor(0, 1)
	apply(t, sess, key(input.ArrowLeft))
	wantCursor(t, sess, 3, 0)
}

func TestMoveRight_WrapsToNextLineStart(t *testing.T) {
	sess, _, _ := newTestSession([]string{"abc", "def"}, 10)
	sess.SetCursor(3, 0)
	apply(t, sess, key(input.ArrowRight))
	wantCursor(t, sess, 0, 1)
}

func TestMoveUp_AtFirstLineGoesToLineStart(t *testing.T) {
	sess, _, _ := newTestSession([]string{"abcdef"}, 10)
	sess.SetCursor(4, 0)
	apply(t, sess, key(input.ArrowUp))
	wantCursor(t, sess, 0, 0)
}

func TestMoveDown_AtLastLineGoesToLineEnd(t *testing.T) {
	sess, _, _ := newTestSession([]string{"abcdef"}, 10)
	sess.SetCursor(2, 0)
	apply(t, sess, key(input.ArrowDown))
	wantCursor(t, sess, 6, 0)
}

func TestWordLeft_SkipsTrailingWhitespaceRun(t *testing.T) {
	sess, _, _ := newTestSession([]string{"foo   bar"}, 10)
	sess.SetCursor(9, 0)

	apply(t, sess, key(input.CtrlArrowLeft))
	wantCursor(t, sess, 4, 0)

	apply(t, sess, key(input.CtrlArrowLeft))
	wantCursor(t, sess, 0, 0)
}

func TestWordRight(t *testing.T) {
	sess, _, _ := newTestSession([]string{"foo   bar"}, 10)

	apply(t, sess, key(input.CtrlArrowRight))
	wantCursor(t, sess, 3, 0)

	apply(t, sess, key(input.CtrlArrowRight))
	wantCursor(t, sess, 9, 0)
}

func TestWordMotion_WrapsAtLineEdges(t *testing.T) {
	sess, _, _ := newTestSession([]string{"abc", "def"}, 10)
	sess.SetCursor(3, 0)
	apply(t, sess, key(input.CtrlArrowRight))
	wantCursor(t, sess, 0, 1)
	apply(t, sess, key(input.CtrlArrowLeft))
	wantCursor(t, sess, 3, 0)
}

func TestHomeEnd_Idempotent(t *testing.T) {
	sess, _, _ := newTestSession([]string{"abcdef"}, 10)
	sess.SetCursor(3, 0)
	apply(t, sess, key(input.Home), key(input.Home))
	wantCursor(t, sess, 0, 0)
	apply(t, sess, key(input.End), key(input.End))
	wantCursor(t, sess, 6, 0)
}

func TestCtrlHomeEnd(t *testing.T) {
	sess, _, _ := newTestSession([]string{"abc", "de", "fghi"}, 10)
	sess.SetCursor(1, 1)
	apply(t, sess, key(input.CtrlEnd))
	wantCursor(t, sess, 1, 2)
	apply(t, sess, key(input.CtrlHome))
	wantCursor(t, sess, 1, 0)
}

func TestEraseWordLeft(t *testing.T) {
	sess, _, _ := newTestSession([]string{"foo   bar"}, 10)
	sess.SetCursor(9, 0)
	apply(t, sess, key(input.CtrlBackspace))
	if got := sess.Doc().Strings()[0]; got != "foo " {
		t.Errorf("Expected 'foo ', got %q", got)
	}
	wantCursor(t, sess, 4, 0)
}

func TestEraseWordRight(t *testing.T) {
	sess, _, _ := newTestSession([]string{"foo   bar baz"}, 10)
	sess.SetCursor(3, 0)
	apply(t, sess, key(input.CtrlDelete))
	if got := sess.Doc().Strings()[0]; got != "foo baz" {
		t.Errorf("Expected 'foo baz', got %q", got)
	}
	wantCursor(t, sess, 3, 0)
}

func TestEraseToLineStartAndEnd(t *testing.T) {
	sess, _, _ := newTestSession([]string{"abcdef"}, 10)
	sess.SetCursor(4, 0)
	apply(t, sess, key(input.AltDelete))
	if got := sess.Doc().Strings()[0]; got != "abcd" {
		t.Errorf("Expected 'abcd', got %q", got)
	}
	apply(t, sess, key(input.AltBackspace))
	if got := sess.Doc().Strings()[0]; got != "" {
		t.Errorf("Expected empty line, got %q", got)
	}
	wantCursor(t, sess, 0, 0)
}

func TestTab_AlignsToNextStop(t *testing.T) {
	sess, _, _ := newTestSession([]string{"ab"}, 10)
	sess.SetCursor(2, 0)
	apply(t, sess, key(input.Tab))
	if got := sess.Doc().Strings()[0]; got != "ab  " {
		t.Errorf("Expected 'ab  ', got %q", got)
	}
	wantCursor(t, sess, 4, 0)
}

func TestScroll_DownPastBottomUsesHardwareScroll(t *testing.T) {
	sess, rend, _ := newTestSession([]string{"a", "b", "c", "d", "e"}, 3)
	sess.SetCursor(0, 2) // bottom visible row
	rend.reset()
	apply(t, sess, key(input.ArrowDown))
	if sess.ScrollY() != 1 {
		t.Errorf("Expected scrollY 1, got %d", sess.ScrollY())
	}
	if !rend.saw("Scroll(1)") || !rend.saw("LineTail(3,0)") {
		t.Errorf("Expected Scroll(1) then LineTail(3,0), got %v", rend.calls)
	}
}

func TestScroll_JumpRepaints(t *testing.T) {
	sess, rend, _ := newTestSession([]string{"a", "b", "c", "d", "e", "f", "g"}, 3)
	rend.reset()
	apply(t, sess, key(input.CtrlEnd))
	if sess.ScrollY() != 4 {
		t.Errorf("Expected scrollY 4, got %d", sess.ScrollY())
	}
	if !rend.saw("SetScroll(4)") || !rend.saw("LinesFrom(4)") {
		t.Errorf("Expected SetScroll(4) then LinesFrom(4), got %v", rend.calls)
	}
}

func TestMouse_LeftPressPlacesCursor(t *testing.T) {
	sess, _, _ := newTestSession([]string{"hello", "world"}, 10)
	// Row 1 is the header, so row 3 is buffer line 1; column 3 is index 2.
	apply(t, sess, input.Command{Kind: input.Mouse, Event: input.MouseEvent{
		Action: input.MousePress, Button: input.MouseLeft, X: 3, Y: 3,
	}})
	wantCursor(t, sess, 2, 1)
}

func TestMouse_PressClampsToDocument(t *testing.T) {
	sess, _, _ := newTestSession([]string{"hi"}, 10)
	apply(t, sess, input.Command{Kind: input.Mouse, Event: input.MouseEvent{
		Action: input.MousePress, Button: input.MouseLeft, X: 40, Y: 9,
	}})
	wantCursor(t, sess, 2, 0)
}

func TestMouse_HeaderClickClampsToViewport(t *testing.T) {
	sess, _, _ := newTestSession([]string{"a", "b", "c", "d", "e", "f", "g"}, 3)
	apply(t, sess, key(input.CtrlEnd))
	if sess.ScrollY() != 4 {
		t.Fatalf("Expected scrollY 4, got %d", sess.ScrollY())
	}
	// A press on the header row must not pull the cursor above the
	// viewport.
	apply(t, sess, input.Command{Kind: input.Mouse, Event: input.MouseEvent{
		Action: input.MousePress, Button: input.MouseLeft, X: 1, Y: 1,
	}})
	wantCursor(t, sess, 0, 4)
	if c := sess.Cursor(); c.Y < sess.ScrollY() {
		t.Errorf("Expected cursor row %d at or below scrollY %d", c.Y, sess.ScrollY())
	}
}

func TestMouse_ClickBelowTextAreaClampsToBottomRow(t *testing.T) {
	sess, _, _ := newTestSession([]string{"a", "b", "c", "d", "e", "f", "g"}, 3)
	apply(t, sess, input.Command{Kind: input.Mouse, Event: input.MouseEvent{
		Action: input.MousePress, Button: input.MouseLeft, X: 1, Y: 9,
	}})
	// Viewport shows lines 0-2; a click below it lands on the bottom row.
	wantCursor(t, sess, 0, 2)
}

func TestMouse_WheelScrollsViewport(t *testing.T) {
	sess, rend, _ := newTestSession([]string{"a", "b", "c", "d", "e"}, 3)
	rend.reset()
	apply(t, sess, input.Command{Kind: input.Mouse, Event: input.MouseEvent{Action: input.MouseScrollDown}})
	if sess.ScrollY() != 1 {
		t.Errorf("Expected scrollY 1, got %d", sess.ScrollY())
	}
	if c := sess.Cursor(); c.Y != 1 {
		t.Errorf("Expected cursor pulled to row 1, got %d", c.Y)
	}
	apply(t, sess, input.Command{Kind: input.Mouse, Event: input.MouseEvent{Action: input.MouseScrollUp}})
	if sess.ScrollY() != 0 {
		t.Errorf("Expected scrollY 0, got %d", sess.ScrollY())
	}
}

func TestSave_WritesThroughStore(t *testing.T) {
	sess, _, store := newTestSession([]string{"content"}, 10)
	typeText(t, sess, "x")
	if sess.Saved() {
		t.Errorf("Expected unsaved after edit")
	}
	apply(t, sess, key(input.Save))
	if store.saves != 1 || store.path != "test.txt" {
		t.Errorf("Expected one save to test.txt, got %d to %q", store.saves, store.path)
	}
	if !sess.Saved() {
		t.Errorf("Expected saved after Ctrl+S")
	}
}

func TestEscape_Quits(t *testing.T) {
	sess, _, store := newTestSession([]string{"content"}, 10)
	quit, err := sess.Apply(key(input.Escape))
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if !quit {
		t.Errorf("Expected quit on Escape")
	}
	if store.saves != 0 {
		t.Errorf("Expected no save without save_on_exit, got %d", store.saves)
	}
}

func TestEscape_SaveOnExit(t *testing.T) {
	rend := &stubRenderer{}
	store := &stubStore{}
	prefs := config.DefaultPreferences()
	prefs.SaveOnExit = true
	sess := NewSession(buffer.FromStrings([]string{"content"}), "test.txt", true, 10, prefs, rend, store)
	quit, err := sess.Apply(key(input.Escape))
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if !quit || store.saves != 1 {
		t.Errorf("Expected quit with one save, got quit=%v saves=%d", quit, store.saves)
	}
}

func TestSetCursor_Clamps(t *testing.T) {
	sess, _, _ := newTestSession([]string{"abc", "defgh"}, 10)
	sess.SetCursor(99, 99)
	wantCursor(t, sess, 5, 1)
	sess.SetCursor(-3, -3)
	wantCursor(t, sess, 0, 0)
}

// Any command sequence must leave the cursor inside the document shape.
func TestInvariants_UnderCommandSequence(t *testing.T) {
	sess, _, _ := newTestSession([]string{"alpha beta", "", "gamma"}, 4)
	script := []input.Command{
		key(input.End), key(input.Enter), {Kind: input.Printable, Rune: 'x'},
		key(input.ArrowUp), key(input.CtrlArrowLeft), key(input.Backspace),
		key(input.ArrowDown), key(input.ArrowDown), key(input.Delete),
		key(input.CtrlEnd), key(input.Tab), key(input.CtrlBackspace),
		key(input.Home), key(input.AltDelete), key(input.ArrowLeft),
	}
	for i, cmd := range script {
		if _, err := sess.Apply(cmd); err != nil {
			t.Fatalf("Step %d: Apply failed: %v", i, err)
		}
		c := sess.Cursor()
		if c.Y < 0 || c.Y >= sess.Doc().LineCount() {
			t.Fatalf("Step %d: cursor row %d outside document", i, c.Y)
		}
		if c.X < 0 || c.X > sess.Doc().LineLen(c.Y) {
			t.Fatalf("Step %d: cursor column %d outside line %d", i, c.X, c.Y)
		}
	}
	if sess.Doc().LineCount() < 1 {
		t.Errorf("Expected at least one line")
	}
}
