/*
Package lexmach wires github.com/timtadh/lexmachine, a DFA-based
longest-match lexer, as a convenience base-parser constructor for
token.Set. It lets a caller build regex/keyword bases without
hand-rolling a rune-by-rune matcher.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach
