/*
File    : interp/eval/eval_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/interp/ierrors"
	"github.com/akashmaji946/interp/parser"
)

// evalStatement dispatches on the closed Statement sum. A returned
// *returnSignal is never handled here: it is plumbed straight back to
// the caller, which is exactly how Return escapes a nested
// while/if/block to its containing function frame (spec §5's "Return
// propagation").
func (ev *Evaluator) evalStatement(stmt parser.Statement) error {
	switch s := stmt.(type) {
	case *parser.BlockStatement:
		return ev.evalBlock(s)
	case *parser.EmptyStatement:
		return nil
	case *parser.DeclarationStatement:
		return ev.evalDeclaration(s)
	case *parser.AssignmentStatement:
		return ev.evalAssignment(s)
	case *parser.IfStatement:
		return ev.evalIf(s)
	case *parser.WhileStatement:
		return ev.evalWhile(s)
	case *parser.ReturnStatement:
		return ev.evalReturn(s)
	case *parser.InlineReturnStatement:
		return ev.evalInlineReturn(s)
	case *parser.ExpressionStatement:
		_, err := ev.evalExpression(s.Expr)
		return err
	default:
		return ierrors.UnexpectedType(stmt.NodePos(), "unknown statement node")
	}
}

// evalBlock pushes a local scope (parented to whatever scope is
// current), runs each statement in order, and pops it — per §4.5's
// Compound rule, the pop happens even when a Return is unwinding
// through it.
func (ev *Evaluator) evalBlock(b *parser.BlockStatement) error {
	ev.Env.PushLocalScope()
	defer ev.Env.PopLocalScope()
	for _, stmt := range b.Stmts {
		if err := ev.evalStatement(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (ev *Evaluator) evalReturn(r *parser.ReturnStatement) error {
	if r.Expr == nil {
		return &returnSignal{Value: nullValue}
	}
	val, err := ev.evalExpression(r.Expr)
	if err != nil {
		return err
	}
	return &returnSignal{Value: val}
}

func (ev *Evaluator) evalInlineReturn(r *parser.InlineReturnStatement) error {
	val, err := ev.evalExpression(r.Expr)
	if err != nil {
		return err
	}
	return &returnSignal{Value: val}
}
