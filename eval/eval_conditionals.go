/*
File    : interp/eval/eval_conditionals.go
Author  : Akash Maji
Contact : akashmaji946/interp/eval
*/
package eval

import "github.com/akashmaji946/interp/parser"

// evalIf implements §4.5's If/Elif/Else rule: evaluate the condition,
// require Bool or Null, run `then` on true and stop; otherwise try
// each elif in order; otherwise run `else` if present.
func (ev *Evaluator) evalIf(s *parser.IfStatement) error {
	cond, err := ev.evalCondition(s.Cond)
	if err != nil {
		return err
	}
	if cond {
		return ev.evalStatement(s.Then)
	}
	for _, elif := range s.Elifs {
		c, err := ev.evalCondition(elif.Cond)
		if err != nil {
			return err
		}
		if c {
			return ev.evalStatement(elif.Body)
		}
	}
	if s.Else != nil {
		return ev.evalStatement(s.Else)
	}
	return nil
}

// evalCondition evaluates expr and coerces it to a truth value,
// requiring Bool or Null (Null is always falsy) per the If/While
// condition rule; any other type is UnexpectedType.
func (ev *Evaluator) evalCondition(expr parser.Expression) (bool, error) {
	val, err := ev.evalExpression(expr)
	if err != nil {
		return false, err
	}
	return truthOf(expr.NodePos(), val)
}
