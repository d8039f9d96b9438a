/*
File    : interp/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package repl implements the interactive read-eval-print loop: one
// line of input is lexed, parsed and evaluated against an Evaluator
// that persists across the session, so declarations and function
// definitions from earlier lines stay visible.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/interp/config"
	"github.com/akashmaji946/interp/eval"
	"github.com/akashmaji946/interp/ierrors"
	"github.com/akashmaji946/interp/lexer"
	"github.com/akashmaji946/interp/parser"
	"github.com/akashmaji946/interp/source"
)

var (
	errorColor = color.New(color.FgRed)
	cyanColor  = color.New(color.FgCyan)
)

const prompt = "interp >>> "

// Repl holds the limits a session's lexer/evaluator is built with.
type Repl struct {
	Limits config.Limits
}

// New builds a Repl using limits (from an `.interp.yaml`, or the
// spec defaults).
func New(limits config.Limits) *Repl {
	return &Repl{Limits: limits}
}

// Start runs the loop until EOF (Ctrl-D) or the `.exit` command.
// Unlike a file run, a line's error is printed and the session
// continues rather than exiting the process.
func (r *Repl) Start(in io.Reader, out io.Writer) {
	cyanColor.Fprintln(out, "Type source a line at a time. Use .exit or Ctrl-D to leave.")

	rl, err := readline.New(prompt)
	if err != nil {
		errorColor.Fprintf(out, "%s\n", err)
		return
	}
	defer rl.Close()

	ev := eval.New(r.Limits.MaxRecursionDepth, out)

	for {
		line, err := rl.Readline()
		if err != nil {
			out.Write([]byte("\n"))
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			return
		}
		rl.SaveHistory(line)
		r.evalLine(ev, out, line)
	}
}

func (r *Repl) evalLine(ev *eval.Evaluator, out io.Writer, line string) {
	src := source.NewStringSource(line)
	lex := lexer.NewLexer(src)
	lex.MaxIdentifierLength = r.Limits.MaxIdentifierLength
	lex.MaxStringLength = r.Limits.MaxStringLength

	p, err := parser.NewParser(lex)
	if err != nil {
		report(out, err)
		return
	}
	program, err := p.ParseProgram()
	if err != nil {
		report(out, err)
		return
	}
	if err := ev.Run(program); err != nil {
		report(out, err)
	}
}

func report(out io.Writer, err error) {
	if ierr, ok := err.(*ierrors.Error); ok {
		errorColor.Fprintf(out, "%s\n", ierr.Error())
		return
	}
	errorColor.Fprintf(out, "%s\n", err)
}
