/*
Package assoc implements the left-associative combinator
`left (operator right)*`, with a step action invoked after each
successful right that consumes the drained stack tail and rebuilds a
single combined value. It demonstrates driver-level use of the parser
protocol and the value stack without prescribing any particular AST
strategy.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package assoc
