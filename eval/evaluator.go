/*
File    : interp/eval/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval is the tree-walking interpreter: it evaluates a parsed
// Program against an Environment, dispatching on the closed AST sum
// via type switches per spec §9's "exhaustive match over a closed
// sum" design note, in place of the teacher's reflective dispatch.
package eval

import (
	"io"

	"github.com/akashmaji946/interp/function"
	"github.com/akashmaji946/interp/ierrors"
	"github.com/akashmaji946/interp/objects"
	"github.com/akashmaji946/interp/parser"
	"github.com/akashmaji946/interp/scope"
	"github.com/akashmaji946/interp/std"
)

// newFunction is a thin local alias kept so the rest of this package
// never needs to name the function package directly.
func newFunction(def *parser.FunctionDefinition) *objects.Function {
	return function.FromDefinition(def)
}

// Evaluator owns the execution state for one run: the environment
// (global scope, function table, call stack) and the writer `print`
// sends its output to.
type Evaluator struct {
	Env    *scope.Environment
	Writer io.Writer
}

// New builds an Evaluator with a fresh Environment capped at
// maxDepth call frames and every built-in registered, with `print`
// writing to w. w is bound into the built-in at registration time, so
// it must be supplied up front rather than set on the Evaluator
// afterward.
func New(maxDepth int, w io.Writer) *Evaluator {
	ev := &Evaluator{
		Env:    scope.NewEnvironment(maxDepth),
		Writer: w,
	}
	std.Register(ev.Env, w)
	return ev
}

// returnSignal is the non-local exit a Return/InlineReturnStatement
// raises; it satisfies error so it unwinds through the ordinary
// (value, error) plumbing of evalStatement, and is caught at the
// function-call boundary in evalBody.
type returnSignal struct {
	Value objects.Value
}

func (*returnSignal) Error() string { return "return outside of function" }

func asReturn(err error) (*returnSignal, bool) {
	rs, ok := err.(*returnSignal)
	return rs, ok
}

// Run evaluates every top-level item in program order: a
// FunctionDefinition registers into the global function table
// (overwriting any earlier definition of the same name, including a
// built-in, per spec §4.5), anything else is a Statement and is
// executed immediately. A Return escaping all the way to top level is
// ReturnOutsideOfFunction.
func (ev *Evaluator) Run(program *parser.Program) error {
	for _, item := range program.Items {
		switch node := item.(type) {
		case *parser.FunctionDefinition:
			ev.Env.AddFunction(newFunction(node))
		case parser.Statement:
			if err := ev.evalStatement(node); err != nil {
				if _, ok := asReturn(err); ok {
					return ierrors.ReturnOutsideOfFunction(node.NodePos())
				}
				return err
			}
		}
	}
	return nil
}
