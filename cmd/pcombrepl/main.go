/*
pcombrepl is an interactive shell for experimenting with the pcomb
engine: type an arithmetic expression (e.g. "1+2+3") to see the
left-associative helper fold it, or prefix a line with "id:" to run
the backreference (Learn/Recall) demo grammar (e.g. "id:abc-abc").

A small readline/pterm shell driving the engine directly, with no
term-rewriting or AST layer in between.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/halborn/pcomb/assoc"
	"github.com/halborn/pcomb/parser"
	"github.com/halborn/pcomb/state"
)

// tracer traces with key 'pcomb.repl'.
func tracer() tracing.Trace {
	return tracing.Select("pcomb.repl")
}

func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	flag.Parse()
	tracer().SetTraceLevel(tracing.TraceLevelFromString(*tlevel))
	pterm.Info.Println("Welcome to pcombrepl")
	tracer().Infof("Quit with <ctrl>D")

	repl, err := readline.New("pcomb> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()

	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		eval(line)
	}
	pterm.Info.Println("Good bye!")
}

func eval(line string) {
	if rest, ok := strings.CutPrefix(line, "id:"); ok {
		evalBackref(rest)
		return
	}
	evalSum(line)
}

func digit() parser.Parser {
	return parser.Capture(parser.RunePlus(parser.IsDigit), func(matched string) interface{} {
		n, _ := strconv.Atoi(matched)
		return n
	})
}

func sumStep(s *state.State, drained []interface{}, pos0, stackSize0 int) {
	total := 0
	for _, v := range drained {
		total += v.(int)
	}
	s.Push(total)
}

func evalSum(line string) {
	g := assoc.New(digit(), parser.Lit("+"), digit(), sumStep)
	s := state.New(line)
	ok := g.Parse(s)
	if !ok || s.Pos != len(line) {
		pterm.Error.Println(fmt.Sprintf("could not parse %q as a sum (stopped at %d)", line, s.Pos))
		return
	}
	pterm.Info.Println(fmt.Sprintf("%v", s.DrainFrom(0)[0]))
}

func evalBackref(line string) {
	store := parser.NewBindingsCell("id")
	g := parser.Seq(
		parser.Learn(store, "id", parser.RunePlus(parser.IsAlpha)),
		parser.Lit("-"),
		parser.Recall(store, "id"),
	)
	s := state.New(line)
	if g.Parse(s) && s.Pos == len(line) {
		pterm.Info.Println("match")
	} else {
		pterm.Error.Println(fmt.Sprintf("no match (stopped at %d)", s.Pos))
	}
}
