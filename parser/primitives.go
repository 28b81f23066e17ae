package parser

import (
	"strings"

	"github.com/halborn/pcomb/state"
)

// StackAction is attached to a parser and invoked on success with the
// values the parser's children pushed (the "drained stack tail") and
// the position the parser started at. It is the minimal hook needed
// to build a single combined value without prescribing any particular
// AST strategy.
type StackAction func(s *state.State, drained []interface{}, pos0 int)

// --- Literal -------------------------------------------------------------

type litParser struct {
	leaf
	text   string
	action StackAction
}

// Lit matches an exact literal string.
func Lit(text string) Parser {
	return &litParser{text: text}
}

// WithAction attaches a StackAction to a literal. It fires on success
// with a nil drained tail (a literal pushes nothing) and the start
// position.
func (p *litParser) WithAction(a StackAction) *litParser {
	p.action = a
	return p
}

func (p *litParser) Parse(s *state.State) bool {
	pos0 := s.Pos
	if !strings.HasPrefix(s.Input[s.Pos:], p.text) {
		return false
	}
	s.Pos += len(p.text)
	if p.action != nil {
		p.action(s, nil, pos0)
	}
	return true
}

func (p *litParser) Accept(v Visitor) { v.Visit(p) }

// --- Rune predicate run (e.g. alpha+, digit+) -----------------------------

// RunePredicate tests a single rune.
type RunePredicate func(r rune) bool

// IsAlpha matches ASCII letters.
func IsAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// IsDigit matches ASCII digits.
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsAlnum matches ASCII letters or digits.
func IsAlnum(r rune) bool {
	return IsAlpha(r) || IsDigit(r)
}

type runPlusParser struct {
	leaf
	pred RunePredicate
}

// RunePlus matches one-or-more runes satisfying pred (the "alpha+",
// "digit+" style base parsers.
func RunePlus(pred RunePredicate) Parser {
	return &runPlusParser{pred: pred}
}

func (p *runPlusParser) Parse(s *state.State) bool {
	start := s.Pos
	pos := s.Pos
	for pos < len(s.Input) {
		r := rune(s.Input[pos])
		if !p.pred(r) {
			break
		}
		pos++
	}
	if pos == start {
		return false
	}
	s.Pos = pos
	return true
}

func (p *runPlusParser) Accept(v Visitor) { v.Visit(p) }

// --- Capture ---------------------------------------------------------------

type captureParser struct {
	child Parser
	f     func(matched string) interface{}
}

// Capture wraps child and, on success, pushes f(matched) onto the
// value stack, where matched is the substring child consumed. This is
// the minimal value-construction hook the left-associative helper
// (package assoc) needs from its left/right leaves — it is not a
// syntax-tree strategy, just a single pushed value.
func Capture(child Parser, f func(matched string) interface{}) Parser {
	return &captureParser{child: child, f: f}
}

func (p *captureParser) Children() []Parser { return []Parser{p.child} }

func (p *captureParser) Parse(s *state.State) bool {
	pos0 := s.Pos
	if !p.child.Parse(s) {
		return false
	}
	s.Push(p.f(s.Input[pos0:s.Pos]))
	return true
}

func (p *captureParser) Accept(v Visitor) { v.Visit(p) }

// --- Sequence --------------------------------------------------------------

type seqParser struct {
	children []Parser
}

// Seq matches every child in order; on any child's failure, the whole
// sequence fails and the state is fully restored.
func Seq(ps ...Parser) Parser {
	return &seqParser{children: ps}
}

func (p *seqParser) Children() []Parser { return p.children }

func (p *seqParser) Parse(s *state.State) bool {
	snap := s.Snap()
	for _, c := range p.children {
		if !c.Parse(s) {
			s.Restore(snap)
			return false
		}
	}
	return true
}

func (p *seqParser) Accept(v Visitor) { v.Visit(p) }

// --- Choice ------------------------------------------------------------

type choiceParser struct {
	children []Parser
}

// Choice tries each child in order and succeeds with the first match;
// each failed attempt is fully rolled back before the next is tried.
func Choice(ps ...Parser) Parser {
	return &choiceParser{children: ps}
}

func (p *choiceParser) Children() []Parser { return p.children }

func (p *choiceParser) Parse(s *state.State) bool {
	snap := s.Snap()
	for _, c := range p.children {
		if c.Parse(s) {
			return true
		}
		s.Restore(snap)
	}
	return false
}

func (p *choiceParser) Accept(v Visitor) { v.Visit(p) }

// --- Optional ------------------------------------------------------------

type optParser struct {
	child Parser
}

// Opt always succeeds: it matches child if possible, and otherwise
// leaves the state untouched.
func Opt(child Parser) Parser {
	return &optParser{child: child}
}

func (p *optParser) Children() []Parser { return []Parser{p.child} }

func (p *optParser) Parse(s *state.State) bool {
	snap := s.Snap()
	if !p.child.Parse(s) {
		s.Restore(snap)
	}
	return true
}

func (p *optParser) Accept(v Visitor) { v.Visit(p) }
