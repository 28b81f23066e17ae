package assoc

import (
	"github.com/npillmayer/schuko/tracing"

	"github.com/halborn/pcomb/parser"
	"github.com/halborn/pcomb/state"
)

// tracer traces with key 'pcomb.assoc'.
func tracer() tracing.Trace {
	return tracing.Select("pcomb.assoc")
}

// StepFunc rebuilds a combined value from the stack tail drained
// after one successful "operator right" cycle. drained
// contains every value pushed since the helper started — typically
// left's value (or the previous fold's result) followed by right's
// value — and has already been removed from the stack; step is
// expected to push exactly one value back.
type StepFunc func(s *state.State, drained []interface{}, pos0, stackSize0 int)

type leftAssoc struct {
	left, operator, right parser.Parser
	step                  StepFunc
	operatorRequired      bool
}

// Option configures a left-associative helper.
type Option func(*leftAssoc)

// OperatorRequired makes the helper fail when operator never matches
// even once. Without it, a bare left is enough.
func OperatorRequired() Option {
	return func(p *leftAssoc) { p.operatorRequired = true }
}

// New builds a parser for `left (operator right)*`.
func New(left, operator, right parser.Parser, step StepFunc, opts ...Option) parser.Parser {
	p := &leftAssoc{left: left, operator: operator, right: right, step: step}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *leftAssoc) Children() []parser.Parser {
	return []parser.Parser{p.left, p.operator, p.right}
}

func (p *leftAssoc) Accept(v parser.Visitor) { v.Visit(p) }

func (p *leftAssoc) Parse(s *state.State) bool {
	entry := s.Snap()
	pos0 := s.Pos
	stackSize0 := s.StackLen()

	if !p.left.Parse(s) {
		return false
	}

	matches := 0
	for {
		snap := s.Snap()
		if !p.operator.Parse(s) {
			s.Restore(snap)
			break
		}
		if !p.right.Parse(s) {
			s.Restore(snap)
			break
		}
		matches++
		drained := s.DrainFrom(stackSize0)
		p.step(s, drained, pos0, stackSize0)
	}

	if matches == 0 && p.operatorRequired {
		tracer().Debugf("left-assoc at %d: operator required but none matched", pos0)
		s.Restore(entry)
		return false
	}
	return true
}
