/*
Package state implements the mutable parse state shared by every
parser in a single parse: the input, the cursor, the value stack, the
journal of reversible effects, and the named per-parse cells.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package state

import (
	"github.com/emirpasic/gods/lists/arraylist"

	"github.com/npillmayer/schuko/tracing"

	"golang.org/x/exp/slices"
)

// tracer traces with key 'pcomb.state'.
func tracer() tracing.Trace {
	return tracing.Select("pcomb.state")
}

// Undo exactly reverses the mutation performed by the Effect that
// produced it. Undo thunks must not schedule further effects.
type Undo func(*State)

// Effect is an abstract reversible mutation: a function from parse
// state to an undo thunk.
type Effect func(*State) Undo

// entry is one journaled, already-applied effect. The originating
// Effect is retained (alongside its undo) so a span of the journal can
// be detached and replayed elsewhere — the token cache's match delta
// is exactly such a detached, replayable effect list.
type entry struct {
	eff  Effect
	undo Undo
}

// State is the mutable context of one parse. It is created once per
// parse attempt and owned by exactly one parse invocation; it must not
// be shared across concurrently running parses.
type State struct {
	Input string
	Pos   int

	stack *arraylist.List
	log   []entry

	cellIniters map[string]func() interface{}
	cells       map[string]interface{}
}

// New creates a parse state for the given input.
func New(input string) *State {
	return &State{
		Input: input,
		stack: arraylist.New(),
	}
}

// --- Value stack -------------------------------------------------------

// Push appends a value to the value stack.
func (s *State) Push(v interface{}) {
	s.stack.Add(v)
}

// StackLen returns the number of values currently on the stack.
func (s *State) StackLen() int {
	return s.stack.Size()
}

// DrainFrom removes and returns every stack value at index k or
// beyond, in the order they were pushed.
func (s *State) DrainFrom(k int) []interface{} {
	if k < 0 {
		k = 0
	}
	values := s.stack.Values()
	if k >= len(values) {
		return nil
	}
	tail := slices.Clone(values[k:])
	s.stack.Clear()
	for _, v := range values[:k] {
		s.stack.Add(v)
	}
	return tail
}

// --- Journal -------------------------------------------------------------

// Apply runs an effect against the state and appends its undo to the
// journal.
func Apply(s *State, eff Effect) {
	undo := eff(s)
	s.log = append(s.log, entry{eff: eff, undo: undo})
}

// LogLen returns the current journal length.
func (s *State) LogLen() int {
	return len(s.log)
}

// EffectsSince returns the effects applied since journal length k, in
// application order, detached as a standalone slice. Replaying them
// (via Apply, in order) on any state reproduces the same mutations.
func (s *State) EffectsSince(k int) []Effect {
	if k < 0 || k > len(s.log) {
		panic("state: EffectsSince of invalid journal length")
	}
	effs := make([]Effect, len(s.log)-k)
	for i, e := range s.log[k:] {
		effs[i] = e.eff
	}
	return effs
}

// Rollback undoes journal entries [k..len) in reverse order, then
// truncates the journal to length k.
func (s *State) Rollback(k int) {
	if k < 0 || k > len(s.log) {
		panic("state: rollback to invalid journal length")
	}
	for i := len(s.log) - 1; i >= k; i-- {
		s.log[i].undo(s)
	}
	s.log = s.log[:k]
}

// Snapshot captures everything a speculative composite needs to
// restore on failure: cursor, journal length and stack size.
type Snapshot struct {
	Pos      int
	LogLen   int
	StackLen int
}

// Snap takes a snapshot of the current state.
func (s *State) Snap() Snapshot {
	return Snapshot{Pos: s.Pos, LogLen: s.LogLen(), StackLen: s.StackLen()}
}

// Restore rolls the journal back to the snapshot's length, restores
// the cursor, and drains the stack back down to the snapshot's size.
func (s *State) Restore(snap Snapshot) {
	s.Rollback(snap.LogLen)
	s.Pos = snap.Pos
	s.DrainFrom(snap.StackLen)
}
