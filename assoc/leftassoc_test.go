package assoc

import (
	"strconv"
	"testing"

	"github.com/halborn/pcomb/parser"
	"github.com/halborn/pcomb/state"
)

func digit() parser.Parser {
	return parser.Capture(parser.RunePlus(parser.IsDigit), func(matched string) interface{} {
		n, _ := strconv.Atoi(matched)
		return n
	})
}

func sumStep(s *state.State, drained []interface{}, pos0, stackSize0 int) {
	total := 0
	for _, v := range drained {
		total += v.(int)
	}
	s.Push(total)
}

func TestLeftAssocFoldsLeftToRight(t *testing.T) {
	g := New(digit(), parser.Lit("+"), digit(), sumStep)
	s := state.New("1+2+3")
	if !g.Parse(s) {
		t.Fatalf("expected match")
	}
	if s.Pos != 5 {
		t.Fatalf("expected full consumption, pos=%d", s.Pos)
	}
	if s.StackLen() != 1 {
		t.Fatalf("expected exactly one folded value on the stack, got %d", s.StackLen())
	}
	got := s.DrainFrom(0)[0].(int)
	if got != 6 {
		t.Fatalf("expected ((1+2)+3) = 6, got %d", got)
	}
}

func TestLeftAssocOperatorOptionalSucceedsOnBareLeft(t *testing.T) {
	g := New(digit(), parser.Lit("+"), digit(), sumStep)
	s := state.New("1")
	if !g.Parse(s) {
		t.Fatalf("expected bare left to succeed when operator is optional")
	}
	if s.Pos != 1 {
		t.Fatalf("expected pos=1, got %d", s.Pos)
	}
}

func TestLeftAssocOperatorRequiredFailsOnBareLeft(t *testing.T) {
	g := New(digit(), parser.Lit("+"), digit(), sumStep, OperatorRequired())
	s := state.New("1")
	if g.Parse(s) {
		t.Fatalf("expected failure: operator required but absent")
	}
	if s.Pos != 0 || s.StackLen() != 0 {
		t.Fatalf("expected full restoration, pos=%d stacklen=%d", s.Pos, s.StackLen())
	}
}
