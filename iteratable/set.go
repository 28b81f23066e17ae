package iteratable

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// Set is a destructive set of ints, ordered for deterministic
// iteration. It is backed by github.com/emirpasic/gods/sets/treeset.
//
// All operations mutate the receiver in place, matching this
// package's stated purpose.
type Set struct {
	tree *treeset.Set
}

// New creates an empty set.
func New() *Set {
	return &Set{tree: treeset.NewWith(utils.IntComparator)}
}

// Add inserts v into the set, returning the set for chaining.
func (s *Set) Add(v int) *Set {
	s.tree.Add(v)
	return s
}

// Remove deletes v from the set, if present.
func (s *Set) Remove(v int) *Set {
	s.tree.Remove(v)
	return s
}

// Contains reports whether v is a member.
func (s *Set) Contains(v int) bool {
	return s.tree.Contains(v)
}

// Size returns the number of members.
func (s *Set) Size() int {
	return s.tree.Size()
}

// Values returns the members in ascending order.
func (s *Set) Values() []int {
	raw := s.tree.Values()
	out := make([]int, len(raw))
	for i, v := range raw {
		out[i] = v.(int)
	}
	return out
}

// Each calls f once per member, in ascending order.
func (s *Set) Each(f func(int)) {
	for _, v := range s.Values() {
		f(v)
	}
}

// Union destructively adds every member of other into s.
func (s *Set) Union(other *Set) *Set {
	other.Each(func(v int) { s.Add(v) })
	return s
}

// Clear removes every member.
func (s *Set) Clear() *Set {
	s.tree.Clear()
	return s
}
