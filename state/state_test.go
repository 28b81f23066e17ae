package state

import "testing"

func TestStackDrainFrom(t *testing.T) {
	s := New("")
	s.Push(1)
	s.Push(2)
	s.Push(3)
	tail := s.DrainFrom(1)
	if len(tail) != 2 || tail[0] != 2 || tail[1] != 3 {
		t.Fatalf("unexpected tail: %v", tail)
	}
	if s.StackLen() != 1 {
		t.Fatalf("expected stack len 1, got %d", s.StackLen())
	}
}

func TestJournalRollback(t *testing.T) {
	s := New("abc")
	c := DeclareCell("x", func() interface{} { return "" })

	before, err := Fingerprint(s)
	if err != nil {
		t.Fatal(err)
	}

	mark := s.LogLen()
	Apply(s, Set(c, "hello"))
	if s.Get(c) != "hello" {
		t.Fatalf("expected cell set")
	}
	s.Rollback(mark)

	after, err := Fingerprint(s)
	if err != nil {
		t.Fatal(err)
	}
	if before != after {
		t.Fatalf("rollback did not restore fingerprint: %s != %s", before, after)
	}
	if s.Has(c) {
		t.Fatalf("cell should not be materialized after rollback of its only set")
	}
}

func TestRestoreSnapshot(t *testing.T) {
	s := New("abcdef")
	s.Pos = 0
	snap := s.Snap()
	s.Push("v")
	s.Pos = 3
	c := DeclareCell("y", nil)
	Apply(s, Set(c, 42))

	s.Restore(snap)
	if s.Pos != 0 || s.StackLen() != 0 {
		t.Fatalf("restore did not reset pos/stack: pos=%d stacklen=%d", s.Pos, s.StackLen())
	}
	if s.Get(c) != nil {
		t.Fatalf("expected cell effect to be rolled back, got %v", s.Get(c))
	}
}
