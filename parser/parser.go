/*
Package parser implements the polymorphic parser protocol together
with a handful of leaf and composite combinators and the
context-sensitive Learn/Recall primitives. Grammar authoring sugar is
deliberately left to callers — this package only implements the
contract they build on.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parser

import (
	"github.com/npillmayer/schuko/tracing"

	"github.com/halborn/pcomb/state"
)

// tracer traces with key 'pcomb.parser'.
func tracer() tracing.Trace {
	return tracing.Select("pcomb.parser")
}

// Visitor is the double-dispatch hook for analysis. Implementations
// receive every node a traversal reaches; under Walk, a parser shared
// by several parents is received once per path to it.
type Visitor interface {
	Visit(p Parser)
}

// Parser is the single polymorphic point of the engine. Every parser
// in a grammar — leaf or composite — implements it.
type Parser interface {
	// Parse attempts to match starting at state.Pos. On true, Pos has
	// advanced past the match and any effects are journaled. On
	// false, the parser itself has restored Pos and rolled back the
	// journal — the caller observes no net change.
	Parse(s *state.State) bool
	// Children returns the ordered child parsers, for traversal.
	Children() []Parser
	// Accept is the double-dispatch hook for visitors.
	Accept(v Visitor)
}

// leaf is an embeddable base for parsers with no children.
type leaf struct{}

func (leaf) Children() []Parser { return nil }

// VisitFunc adapts a plain function to the Visitor interface.
type VisitFunc func(p Parser)

// Visit implements Visitor.
func (f VisitFunc) Visit(p Parser) { f(p) }

// Walk visits p and, recursively, every descendant of p, once per path
// from p; it does not track nodes it has already visited.
func Walk(p Parser, v Visitor) {
	v.Visit(p)
	for _, c := range p.Children() {
		Walk(c, v)
	}
}
