package lexmach

import (
	"fmt"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	"github.com/npillmayer/schuko/tracing"

	"github.com/halborn/pcomb/parser"
	"github.com/halborn/pcomb/state"
)

// tracer traces with key 'pcomb.token.lexmach'.
func tracer() tracing.Trace {
	return tracing.Select("pcomb.token.lexmach")
}

// patternParser is a leaf Parser matching a single lexmachine-compiled
// pattern, anchored at the current cursor position.
type patternParser struct {
	name string
	lex  *lexmachine.Lexer
}

// Pattern compiles a single-pattern DFA for regex and exposes it as a
// Parser leaf suitable for registering as a token.Set base. regex uses
// lexmachine's regex dialect (POSIX-ish, see the lexmachine docs).
//
// Pattern panics if the pattern fails to compile — a bad pattern is a
// programming error, not a match failure.
func Pattern(name, regex string) parser.Parser {
	lex := lexmachine.NewLexer()
	lex.Add([]byte(regex), func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(0, string(m.Bytes), m), nil
	})
	if err := lex.Compile(); err != nil {
		panic(fmt.Errorf("lexmach: compiling pattern %q (%s): %w", name, regex, err))
	}
	return &patternParser{name: name, lex: lex}
}

func (p *patternParser) Children() []parser.Parser { return nil }
func (p *patternParser) Accept(v parser.Visitor)    { v.Visit(p) }

// Parse runs the compiled DFA against the remaining input and
// succeeds only if it produces a match that starts exactly at the
// current position — an unanchored match (lexmachine skipping ahead
// to find one) is treated as no match at all, since every other base
// parser in this module is anchored.
func (p *patternParser) Parse(s *state.State) bool {
	remaining := []byte(s.Input[s.Pos:])
	scanner, err := p.lex.Scanner(remaining)
	if err != nil {
		tracer().Errorf("lexmach %q: %v", p.name, err)
		return false
	}
	tok, err, eof := scanner.Next()
	if eof || err != nil {
		return false
	}
	match, ok := tok.(*lexmachine.Token)
	if !ok || match.TC != 0 {
		return false
	}
	s.Pos += len(match.Lexeme)
	return true
}
