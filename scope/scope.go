// Package scope implements the evaluator's lexical environment: a stack
// of name-to-cell mappings pushed and popped as blocks and calls are
// entered and exited.
//
// This diverges from a parent-pointer scope chain in favor of an
// explicit frame stack, because the scope-balance invariant (the number
// of active scopes returns to exactly one after any top-level
// evaluation) needs something poppable, not an immutable chain of
// parent links.
package scope

import "github.com/lumen-lang/lumen/value"

// Scope is an ordered sequence of frames, innermost last. Frame zero is
// the global scope established at construction and is never popped.
type Scope struct {
	frames []map[string]*value.Cell
}

// New creates a Scope with a single global frame.
func New() *Scope {
	s := &Scope{}
	s.Push()
	return s
}

// Push opens a new innermost frame.
func (s *Scope) Push() {
	s.frames = append(s.frames, make(map[string]*value.Cell))
}

// Pop discards the innermost frame. Popping the global frame is a
// programming error in the evaluator and panics, since it would
// violate the scope-balance invariant irrecoverably.
func (s *Scope) Pop() {
	if len(s.frames) <= 1 {
		panic("scope: cannot pop the global frame")
	}
	s.frames = s.frames[:len(s.frames)-1]
}

// Depth reports the number of active frames, for the scope-balance
// invariant check: exactly 1 immediately after construction and after
// every top-level evaluation.
func (s *Scope) Depth() int { return len(s.frames) }

// Declare binds name to value in the innermost frame, shadowing any
// outer binding of the same name but never updating one. Returns the
// newly created cell.
func (s *Scope) Declare(name string, v value.Value) *value.Cell {
	cell := &value.Cell{V: v}
	s.frames[len(s.frames)-1][name] = cell
	return cell
}

// Lookup scans frames from innermost to outermost and returns the first
// matching cell. Subsequent matches in outer frames are invisible.
func (s *Scope) Lookup(name string) (*value.Cell, bool) {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if cell, ok := s.frames[i][name]; ok {
			return cell, true
		}
	}
	return nil, false
}
