/*
File    : interp/eval/eval_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"
	"math"

	"github.com/akashmaji946/interp/function"
	"github.com/akashmaji946/interp/ierrors"
	"github.com/akashmaji946/interp/lexer"
	"github.com/akashmaji946/interp/objects"
	"github.com/akashmaji946/interp/parser"
)

// evalExpression dispatches on the closed Expression sum.
func (ev *Evaluator) evalExpression(expr parser.Expression) (objects.Value, error) {
	switch e := expr.(type) {
	case *parser.Literal:
		return literalValue(e), nil
	case *parser.Identifier:
		return ev.evalIdentifier(e)
	case *parser.BinaryExpression:
		return ev.evalBinary(e)
	case *parser.ComparisonExpression:
		return ev.evalComparison(e)
	case *parser.EqualityExpression:
		return ev.evalEquality(e)
	case *parser.AndExpression:
		return ev.evalAnd(e)
	case *parser.OrExpression:
		return ev.evalOr(e)
	case *parser.NullCoalesceExpression:
		return ev.evalNullCoalesce(e)
	case *parser.CompFactor:
		return ev.evalCompFactor(e)
	case *parser.NegFactor:
		return ev.evalNegFactor(e)
	case *parser.LambdaExpression:
		return function.FromLambda(e), nil
	case *parser.FunctionCall:
		return ev.evalFunctionCall(e)
	default:
		return nil, ierrors.UnexpectedType(expr.NodePos(), "unknown expression node")
	}
}

func literalValue(l *parser.Literal) objects.Value {
	switch l.Typ.(type) {
	case parser.IntegerType:
		return objects.Integer{Value: l.IntVal}
	case parser.FloatType:
		return objects.Float{Value: l.FloatVal}
	case parser.StringType:
		return objects.String{Value: l.StringVal}
	case parser.BoolType:
		return objects.Bool{Value: l.BoolVal}
	default:
		return objects.Null{}
	}
}

// evalIdentifier implements §4.5's Identifier rule: lookup in the
// scope chain first; a bare reference to a named top-level function
// (not a call) resolves against the global function table too, so a
// function can be passed around as a value by name.
func (ev *Evaluator) evalIdentifier(id *parser.Identifier) (objects.Value, error) {
	if v, ok := ev.Env.Current.Lookup(id.Name); ok {
		return v.Value, nil
	}
	if f, ok := ev.Env.GetFunction(id.Name); ok {
		return f, nil
	}
	return nil, ierrors.UndefinedName(id.Pos, id.Name)
}

func (ev *Evaluator) evalBinary(b *parser.BinaryExpression) (objects.Value, error) {
	left, err := ev.evalExpression(b.Left)
	if err != nil {
		return nil, err
	}
	right, err := ev.evalExpression(b.Right)
	if err != nil {
		return nil, err
	}

	if b.Op == lexer.PLUS_OP {
		if ls, ok := left.(objects.String); ok {
			rs, ok := right.(objects.String)
			if !ok {
				return nil, ierrors.UnexpectedType(b.Pos, "+ requires both operands to be str")
			}
			return objects.String{Value: ls.Value + rs.Value}, nil
		}
	}

	li, lIsInt := left.(objects.Integer)
	lf, lIsFloat := left.(objects.Float)
	ri, rIsInt := right.(objects.Integer)
	rf, rIsFloat := right.(objects.Float)
	if !(lIsInt || lIsFloat) || !(rIsInt || rIsFloat) {
		return nil, ierrors.UnexpectedType(b.Pos, fmt.Sprintf("%s used on %s and %s", b.Op, kindName(left), kindName(right)))
	}

	if lIsInt && rIsInt {
		a, c := li.Value, ri.Value
		switch b.Op {
		case lexer.PLUS_OP:
			return objects.Integer{Value: a + c}, nil
		case lexer.MINUS_OP:
			return objects.Integer{Value: a - c}, nil
		case lexer.MUL_OP:
			return objects.Integer{Value: a * c}, nil
		case lexer.DIV_OP:
			if c == 0 {
				return nil, ierrors.DivisionByZero(b.Pos)
			}
			return objects.Integer{Value: a / c}, nil
		case lexer.MOD_OP:
			if c == 0 {
				return nil, ierrors.DivisionByZero(b.Pos)
			}
			return objects.Integer{Value: a % c}, nil
		}
	}

	var x, y float64
	if lIsInt {
		x = float64(li.Value)
	} else {
		x = lf.Value
	}
	if rIsInt {
		y = float64(ri.Value)
	} else {
		y = rf.Value
	}
	switch b.Op {
	case lexer.PLUS_OP:
		return objects.Float{Value: x + y}, nil
	case lexer.MINUS_OP:
		return objects.Float{Value: x - y}, nil
	case lexer.MUL_OP:
		return objects.Float{Value: x * y}, nil
	case lexer.DIV_OP:
		if y == 0 {
			return nil, ierrors.DivisionByZero(b.Pos)
		}
		return objects.Float{Value: x / y}, nil
	case lexer.MOD_OP:
		if y == 0 {
			return nil, ierrors.DivisionByZero(b.Pos)
		}
		return objects.Float{Value: math.Mod(x, y)}, nil
	}
	return nil, ierrors.UnexpectedType(b.Pos, "unknown arithmetic operator "+string(b.Op))
}

func (ev *Evaluator) evalComparison(c *parser.ComparisonExpression) (objects.Value, error) {
	left, err := ev.evalExpression(c.Left)
	if err != nil {
		return nil, err
	}
	right, err := ev.evalExpression(c.Right)
	if err != nil {
		return nil, err
	}
	x, _, xok := asNumeric(left)
	y, _, yok := asNumeric(right)
	if !xok || !yok {
		return nil, ierrors.UnexpectedType(c.Pos, fmt.Sprintf("%s used on %s and %s", c.Op, kindName(left), kindName(right)))
	}
	var result bool
	switch c.Op {
	case lexer.LT_OP:
		result = x < y
	case lexer.LE_OP:
		result = x <= y
	case lexer.GT_OP:
		result = x > y
	case lexer.GE_OP:
		result = x >= y
	}
	return objects.Bool{Value: result}, nil
}

// evalEquality implements the test-validated Null semantics from
// spec §9's open question: == and != are exact negations of each
// other (null==null is true, null compared to any non-null is never
// equal), so no special-casing of the operator is needed beyond that.
func (ev *Evaluator) evalEquality(e *parser.EqualityExpression) (objects.Value, error) {
	left, err := ev.evalExpression(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := ev.evalExpression(e.Right)
	if err != nil {
		return nil, err
	}
	if _, ok := left.(*objects.Function); ok {
		return nil, ierrors.UnexpectedType(e.Pos, "== / != do not accept func operands")
	}
	if _, ok := right.(*objects.Function); ok {
		return nil, ierrors.UnexpectedType(e.Pos, "== / != do not accept func operands")
	}

	lNull, rNull := objects.IsNull(left), objects.IsNull(right)
	var eq bool
	switch {
	case lNull && rNull:
		eq = true
	case lNull != rNull:
		eq = false
	default:
		eq = valuesEqual(left, right)
	}
	if e.Op == lexer.EQ_OP {
		return objects.Bool{Value: eq}, nil
	}
	return objects.Bool{Value: !eq}, nil
}

func valuesEqual(a, b objects.Value) bool {
	switch av := a.(type) {
	case objects.Integer:
		switch bv := b.(type) {
		case objects.Integer:
			return av.Value == bv.Value
		case objects.Float:
			return float64(av.Value) == bv.Value
		default:
			return false
		}
	case objects.Float:
		switch bv := b.(type) {
		case objects.Integer:
			return av.Value == float64(bv.Value)
		case objects.Float:
			return av.Value == bv.Value
		default:
			return false
		}
	case objects.String:
		bv, ok := b.(objects.String)
		return ok && av.Value == bv.Value
	case objects.Bool:
		bv, ok := b.(objects.Bool)
		return ok && av.Value == bv.Value
	default:
		return false
	}
}

func (ev *Evaluator) evalAnd(a *parser.AndExpression) (objects.Value, error) {
	left, err := ev.evalExpression(a.Left)
	if err != nil {
		return nil, err
	}
	lb, ok := left.(objects.Bool)
	if !ok {
		return nil, ierrors.UnexpectedType(a.Pos, "and requires bool operands, got "+kindName(left))
	}
	if !lb.Value {
		return objects.Bool{Value: false}, nil
	}
	right, err := ev.evalExpression(a.Right)
	if err != nil {
		return nil, err
	}
	rb, ok := right.(objects.Bool)
	if !ok {
		return nil, ierrors.UnexpectedType(a.Pos, "and requires bool operands, got "+kindName(right))
	}
	return objects.Bool{Value: rb.Value}, nil
}

func (ev *Evaluator) evalOr(o *parser.OrExpression) (objects.Value, error) {
	left, err := ev.evalExpression(o.Left)
	if err != nil {
		return nil, err
	}
	lb, ok := left.(objects.Bool)
	if !ok {
		return nil, ierrors.UnexpectedType(o.Pos, "or requires bool operands, got "+kindName(left))
	}
	if lb.Value {
		return objects.Bool{Value: true}, nil
	}
	right, err := ev.evalExpression(o.Right)
	if err != nil {
		return nil, err
	}
	rb, ok := right.(objects.Bool)
	if !ok {
		return nil, ierrors.UnexpectedType(o.Pos, "or requires bool operands, got "+kindName(right))
	}
	return objects.Bool{Value: rb.Value}, nil
}

// evalNullCoalesce implements `??`: the left value if it is not
// Null/Void, else the evaluated right value.
func (ev *Evaluator) evalNullCoalesce(n *parser.NullCoalesceExpression) (objects.Value, error) {
	left, err := ev.evalExpression(n.Left)
	if err != nil {
		return nil, err
	}
	if !objects.IsNull(left) {
		return left, nil
	}
	return ev.evalExpression(n.Right)
}

func (ev *Evaluator) evalCompFactor(c *parser.CompFactor) (objects.Value, error) {
	val, err := ev.evalExpression(c.Inner)
	if err != nil {
		return nil, err
	}
	if !c.Negated {
		return val, nil
	}
	b, ok := val.(objects.Bool)
	if !ok {
		return nil, ierrors.UnexpectedType(c.Pos, "not requires a bool operand, got "+kindName(val))
	}
	return objects.Bool{Value: !b.Value}, nil
}

func (ev *Evaluator) evalNegFactor(n *parser.NegFactor) (objects.Value, error) {
	val, err := ev.evalExpression(n.Inner)
	if err != nil {
		return nil, err
	}
	if !n.Minus {
		return val, nil
	}
	switch v := val.(type) {
	case objects.Integer:
		return objects.Integer{Value: -v.Value}, nil
	case objects.Float:
		return objects.Float{Value: -v.Value}, nil
	default:
		return nil, ierrors.UnexpectedType(n.Pos, "unary - requires a numeric operand, got "+kindName(val))
	}
}
