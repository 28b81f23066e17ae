/*
Package token implements a set of mutually-exclusive base parsers
resolved by longest match at each input offset, backed by a
position-indexed Robin-Hood cache.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package token

import (
	"github.com/npillmayer/schuko/tracing"

	"github.com/halborn/pcomb"
	"github.com/halborn/pcomb/iteratable"
	"github.com/halborn/pcomb/parser"
	"github.com/halborn/pcomb/state"
)

// tracer traces with key 'pcomb.token'.
func tracer() tracing.Trace {
	return tracing.Select("pcomb.token")
}

// Set owns a fixed, ordered array of base parsers and the cache that
// memoizes longest-match resolution across them. A Set is
// mutable (its cache) and must be bound to a single parse at a time;
// concurrent parses need distinct Set instances, or a Flush between
// uses.
type Set struct {
	bases   []parser.Parser
	index   map[parser.Parser]int
	cache   *cache
	touched *iteratable.Set // base indices whose token a recognizer has accepted
}

// NewSet creates a token set over bases, in declaration order. Ties in
// longest-match resolution are broken in favor of the earlier index.
func NewSet(bases ...parser.Parser) *Set {
	idx := make(map[parser.Parser]int, len(bases))
	for i, b := range bases {
		idx[b] = i
	}
	return &Set{
		bases:   bases,
		index:   idx,
		cache:   newCache(),
		touched: iteratable.New(),
	}
}

// TokenParser returns a singleton recognizer restricted to base — it
// succeeds only if the token cached (or resolved) at the current
// position is exactly base, even if a different base also matched
// there.
func (ts *Set) TokenParser(base parser.Parser) parser.Parser {
	idx, ok := ts.index[base]
	if !ok {
		pcomb.Fail(pcomb.TokenUnregistered, "parser is not a base of this token set")
	}
	return &recognizer{set: ts, targets: []int{idx}}
}

// Choice returns a recognizer that succeeds if the token at the
// current position matches any of the named bases.
func (ts *Set) Choice(bases ...parser.Parser) parser.Parser {
	targets := make([]int, 0, len(bases))
	for _, b := range bases {
		idx, ok := ts.index[b]
		if !ok {
			pcomb.Fail(pcomb.TokenUnregistered, "parser is not a base of this token set")
		}
		targets = append(targets, idx)
	}
	return &recognizer{set: ts, targets: targets}
}

// Flush empties the cache, allowing the set to be reused for another
// parse.
func (ts *Set) Flush() {
	ts.cache.reset()
	ts.touched.Clear()
}

// TouchedBases returns, in ascending order, the indices of every base
// parser whose token a recognizer of this set has accepted at least
// once since the set was created or last flushed. A base that wins the
// longest-match resolution but is rejected by the recognizer's target
// subset is not recorded.
func (ts *Set) TouchedBases() []int {
	return ts.touched.Values()
}

func contains(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

// recognizer is the Parser returned by TokenParser/Choice: it shares
// the owning Set's cache and narrows the cached winner to a target
// subset of base indices.
type recognizer struct {
	set     *Set
	targets []int
}

func (r *recognizer) Children() []parser.Parser { return nil }
func (r *recognizer) Accept(v parser.Visitor)   { v.Visit(r) }

// Parse implements the token-match-at-offset procedure: consult the
// cache, resolve on a miss, then check the winner against the
// target subset and replay its effect delta.
func (r *recognizer) Parse(s *state.State) bool {
	pos := s.Pos
	res, hit := r.set.cache.lookup(pos)
	if !hit {
		res = r.set.resolve(s, pos)
		r.set.cache.insert(pos, res)
	}
	if !res.found {
		return false
	}
	if !contains(r.targets, res.baseIndex) {
		return false
	}
	s.Pos = res.end
	for _, eff := range res.delta {
		state.Apply(s, eff)
	}
	r.set.touched.Add(res.baseIndex)
	return true
}

// resolve runs the longest-match procedure once, for a cache-miss at
// pos0. It leaves s exactly as
// it found it: every attempt is snapshotted and restored regardless
// of outcome.
func (ts *Set) resolve(s *state.State, pos0 int) result {
	if len(ts.bases) == 0 {
		pcomb.Fail(pcomb.TokenEmptySet, "token parse attempted against an empty base array")
	}
	best := result{found: false}
	bestEnd := -1
	for idx, base := range ts.bases {
		snap := s.Snap()
		if base.Parse(s) {
			end := s.Pos
			if end > bestEnd {
				bestEnd = end
				best = result{
					found:     true,
					baseIndex: idx,
					end:       end,
					delta:     s.EffectsSince(snap.LogLen),
				}
			}
		}
		s.Restore(snap)
	}
	if best.found {
		tracer().Debugf("longest match at %d: base %d, end %d", pos0, best.baseIndex, best.end)
	} else {
		tracer().Debugf("no token at %d", pos0)
	}
	return best
}
