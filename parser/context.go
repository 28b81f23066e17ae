package parser

import (
	"github.com/halborn/pcomb"
	"github.com/halborn/pcomb/state"
)

// learnParser implements Learn(key, child).
type learnParser struct {
	key   string
	store state.Cell
	child Parser
}

// Learn delegates matching to child; on success, if child consumed
// text s = input[pos0..pos), it enqueues a journaled effect that sets
// store[key] = s, with an undo that restores the previous binding.
// Learn succeeds iff child succeeds.
//
// store is the cell backing the key→substring bindings for a whole
// grammar; callers typically declare one with state.DeclareCell and
// share it between every Learn/Recall pair that should see each
// other's bindings.
func Learn(store state.Cell, key string, child Parser) Parser {
	return &learnParser{key: key, store: store, child: child}
}

func (p *learnParser) Children() []Parser { return []Parser{p.child} }

func (p *learnParser) Parse(s *state.State) bool {
	pos0 := s.Pos
	if !p.child.Parse(s) {
		return false
	}
	matched := s.Input[pos0:s.Pos]
	state.Apply(s, state.Set(p.store, bindingsSet(s, p.store, p.key, matched)))
	tracer().Debugf("Learn(%q) bound %q", p.key, matched)
	return true
}

func (p *learnParser) Accept(v Visitor) { v.Visit(p) }

// bindings is the value type stored in a Learn/Recall cell: a mapping
// from key to the substring matched under that key.
type bindings map[string]string

func bindingsSet(s *state.State, store state.Cell, key, val string) bindings {
	cur, _ := s.Get(store).(bindings)
	next := make(bindings, len(cur)+1)
	for k, v := range cur {
		next[k] = v
	}
	next[key] = val
	return next
}

// NewBindingsCell declares a cell suitable for use as the store
// argument to Learn/Recall; its zero value is an empty binding set.
func NewBindingsCell(id string) state.Cell {
	return state.DeclareCell(id, func() interface{} { return bindings{} })
}

// recallParser implements Recall(key).
type recallParser struct {
	leaf
	key   string
	store state.Cell
}

// Recall reads store[key]. If absent, it raises a fatal
// state-precondition usage error. If present with value s,
// Recall succeeds iff input[pos:pos+len(s)] == s, advancing pos by
// len(s). Recall journals no effects of its own.
func Recall(store state.Cell, key string) Parser {
	return &recallParser{key: key, store: store}
}

func (p *recallParser) Parse(s *state.State) bool {
	b, _ := s.Get(p.store).(bindings)
	val, ok := b[p.key]
	if !ok {
		pcomb.Fail(pcomb.StatePrecondition, "Recall(%q): key not bound", p.key)
	}
	if s.Pos+len(val) > len(s.Input) {
		return false
	}
	if s.Input[s.Pos:s.Pos+len(val)] != val {
		return false
	}
	s.Pos += len(val)
	return true
}

func (p *recallParser) Accept(v Visitor) { v.Visit(p) }
