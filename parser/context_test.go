package parser

import (
	"testing"

	"github.com/halborn/pcomb/state"
)

func backrefGrammar() Parser {
	store := NewBindingsCell("id")
	identifier := RunePlus(IsAlpha)
	return Seq(
		Learn(store, "id", identifier),
		Lit("-"),
		Recall(store, "id"),
	)
}

func TestLearnRecallMatch(t *testing.T) {
	g := backrefGrammar()
	s := state.New("abc-abc")
	if !g.Parse(s) {
		t.Fatalf("expected match")
	}
	if s.Pos != 7 {
		t.Fatalf("expected pos=7, got %d", s.Pos)
	}
}

func TestLearnRecallMismatch(t *testing.T) {
	g := backrefGrammar()
	s := state.New("abc-abd")
	if g.Parse(s) {
		t.Fatalf("expected failure")
	}
	if s.Pos != 0 {
		t.Fatalf("expected pos=0 after failed match, got %d", s.Pos)
	}
	if s.LogLen() != 0 {
		t.Fatalf("expected journal to be rolled back, got len %d", s.LogLen())
	}
}

func TestRecallUnboundKeyIsFatal(t *testing.T) {
	store := NewBindingsCell("id")
	g := Recall(store, "never-learned")
	s := state.New("xyz")

	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic for unbound Recall key")
		}
	}()
	g.Parse(s)
}

func TestLearnBindingRestoredOnOuterRollback(t *testing.T) {
	store := NewBindingsCell("id")
	identifier := RunePlus(IsAlpha)
	// First alternative learns "id", then deliberately fails so the
	// Choice rolls back past the Learn; the second alternative must
	// not see a stale binding.
	g := Choice(
		Seq(Learn(store, "id", identifier), Lit("!!!")),
		Seq(Learn(store, "id", identifier), Lit("-"), Recall(store, "id")),
	)
	s := state.New("abc-abc")
	if !g.Parse(s) {
		t.Fatalf("expected second alternative to match")
	}
	if s.Pos != 7 {
		t.Fatalf("expected pos=7, got %d", s.Pos)
	}
}
