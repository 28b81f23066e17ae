/*
Package pcomb is a parser-combinator runtime with first-class support
for context-sensitive matching and efficient longest-match tokenization.

The package is organized as follows:

■ state: holds the mutable parse state (input, cursor, value stack,
journal of reversible effects) and named, per-parse cells.

■ parser: the polymorphic parser protocol, a handful of leaf and
composite combinators, and the Learn/Recall context-sensitive
primitives.

■ token: a set of mutually-exclusive base parsers resolved by longest
match at each input offset, backed by a position-indexed Robin-Hood
cache.

■ assoc: a left-associative combinator, built on top of the parser
protocol and the value stack.

Grammar construction sugar, error-reporting quality and any specific
grammar are deliberately left to callers; this module only specifies
the contracts they consume.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pcomb
