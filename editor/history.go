// Package editor implements the level editor: a command dispatch over a
// mutable map document, with linear undo history, derived selection context
// and the frame-driven controller the host loop calls into.
package editor

import (
	"github.com/olefasting/fishfight/tilemap"
)

// UndoableAction is one reversible mutation of a map. Apply captures
// whatever prior state Undo needs, so Undo restores the touched subregion
// exactly. Actions hold no references into the map between calls.
type UndoableAction interface {
	Apply(m *tilemap.Map) error
	Undo(m *tilemap.Map) error
}

// History is the linear undo stack. Entries past the cursor form the redo
// tail; applying a fresh action discards it permanently.
type History struct {
	stack  []UndoableAction
	cursor int
}

func NewHistory() *History {
	return &History{}
}

// Apply runs the action against m and records it. On failure the stack and
// cursor are left untouched.
func (h *History) Apply(action UndoableAction, m *tilemap.Map) error {
	if err := action.Apply(m); err != nil {
		return err
	}
	h.stack = append(h.stack[:h.cursor], action)
	h.cursor++
	return nil
}

// Undo reverses the action before the cursor. At the bottom of the stack it
// is a no-op.
func (h *History) Undo(m *tilemap.Map) error {
	if h.cursor == 0 {
		return nil
	}
	if err := h.stack[h.cursor-1].Undo(m); err != nil {
		return err
	}
	h.cursor--
	return nil
}

// Redo re-applies the action at the cursor. Past the top of the stack it is
// a no-op.
func (h *History) Redo(m *tilemap.Map) error {
	if h.cursor == len(h.stack) {
		return nil
	}
	if err := h.stack[h.cursor].Apply(m); err != nil {
		return err
	}
	h.cursor++
	return nil
}

// Clear empties the stack. Called whenever the map is replaced wholesale;
// history only reasons about one map instance.
func (h *History) Clear() {
	h.stack = nil
	h.cursor = 0
}

// Len returns the number of recorded actions, including the redo tail.
func (h *History) Len() int {
	return len(h.stack)
}

// Cursor returns the current cursor position.
func (h *History) Cursor() int {
	return h.cursor
}
