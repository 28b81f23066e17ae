package parser

import (
	"testing"

	"github.com/halborn/pcomb/state"
)

func TestSeqSuccess(t *testing.T) {
	g := Seq(Lit("foo"), Lit("bar"))
	s := state.New("foobar")
	if !g.Parse(s) || s.Pos != 6 {
		t.Fatalf("expected full match, pos=%d", s.Pos)
	}
}

func TestSeqFailureIsInert(t *testing.T) {
	g := Seq(Lit("foo"), Lit("bar"))
	s := state.New("foobaz")
	before, _ := state.Fingerprint(s)
	if g.Parse(s) {
		t.Fatalf("expected failure")
	}
	after, _ := state.Fingerprint(s)
	if before != after || s.Pos != 0 {
		t.Fatalf("partial match leaked: pos=%d", s.Pos)
	}
}

func TestChoicePrefersFirstMatch(t *testing.T) {
	g := Choice(Lit("a"), Lit("ab"))
	s := state.New("ab")
	if !g.Parse(s) {
		t.Fatalf("expected match")
	}
	if s.Pos != 1 {
		t.Fatalf("expected first alternative to win with pos=1, got %d", s.Pos)
	}
}

func TestOptAlwaysSucceeds(t *testing.T) {
	g := Seq(Opt(Lit("x")), Lit("y"))
	s := state.New("y")
	if !g.Parse(s) || s.Pos != 1 {
		t.Fatalf("expected opt-then-y match, pos=%d", s.Pos)
	}
}

func TestRunePlusRequiresAtLeastOne(t *testing.T) {
	g := RunePlus(IsDigit)
	s := state.New("abc")
	if g.Parse(s) {
		t.Fatalf("expected no digits to fail")
	}
}
