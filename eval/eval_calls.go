/*
File    : interp/eval/eval_calls.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/interp/ierrors"
	"github.com/akashmaji946/interp/objects"
	"github.com/akashmaji946/interp/parser"
)

// evalFunctionCall implements §4.5's FunctionCall rule, including
// chained calls: resolve the callee, invoke it with the first
// argument list, then for every further argument list the previous
// result must itself be callable and is invoked in turn.
func (ev *Evaluator) evalFunctionCall(call *parser.FunctionCall) (objects.Value, error) {
	fn, err := ev.resolveCallable(call.Pos, call.Name)
	if err != nil {
		return nil, err
	}

	var result objects.Value = fn
	for _, argExprs := range call.ArgLists {
		callee, ok := result.(*objects.Function)
		if !ok {
			return nil, ierrors.NotCallable(call.Pos, call.Name)
		}
		args := make([]objects.Value, len(argExprs))
		for i, ae := range argExprs {
			v, err := ev.evalExpression(ae)
			if err != nil {
				return nil, err
			}
			args[i] = v
		}
		val, err := ev.invoke(call.Pos, callee, args)
		if err != nil {
			return nil, err
		}
		result = val
	}
	return result, nil
}

// resolveCallable resolves a call-site name first against the global
// function table, then as a variable whose bound value is itself a
// function, per §4.5's "resolve name first in the function table,
// else as a variable whose value is a function-object" rule.
func (ev *Evaluator) resolveCallable(pos ierrors.Position, name string) (*objects.Function, error) {
	if f, ok := ev.Env.GetFunction(name); ok {
		return f, nil
	}
	v, ok := ev.Env.Current.Lookup(name)
	if !ok {
		return nil, ierrors.UndefinedName(pos, name)
	}
	f, ok := v.Value.(*objects.Function)
	if !ok {
		return nil, ierrors.NotCallable(pos, name)
	}
	return f, nil
}

// invoke runs one call step: built-ins (Builtin != nil) perform their
// own arity/type checks and bypass scope creation entirely, since
// they are the spec's "generic-parameter" built-ins. User-defined
// functions and lambdas get full arity/type checking, a fresh
// function scope parented to global, and return-type validation of
// the evaluated body.
func (ev *Evaluator) invoke(pos ierrors.Position, fn *objects.Function, args []objects.Value) (objects.Value, error) {
	if fn.Builtin != nil {
		return fn.Builtin(args)
	}

	if len(args) != len(fn.Params) {
		return nil, ierrors.ArgumentsError(pos, fn.Name, len(fn.Params), len(args))
	}
	for i, param := range fn.Params {
		arg := args[i]
		if objects.IsNull(arg) {
			if !param.Nullable {
				return nil, ierrors.ArgumentTypeError(pos, fn.Name, i, "null not allowed for non-nullable parameter "+param.Name)
			}
			continue
		}
		argType := objects.TypeOf(arg)
		if !parser.TypesEqual(argType, param.Type) && !parser.WidensTo(argType, param.Type) {
			return nil, ierrors.ArgumentTypeError(pos, fn.Name, i, "expected "+param.Type.String()+", got "+argType.String())
		}
	}

	if err := ev.Env.PushFunctionScope(pos, fn.Params, args); err != nil {
		return nil, err
	}
	result, err := ev.evalBody(fn)
	ev.Env.PopFunctionScope()
	if err != nil {
		return nil, err
	}
	return ev.checkReturnType(pos, fn, result)
}

// evalBody runs a function/lambda body and catches the Return that
// escapes it, defaulting to Null when the body finishes without one.
func (ev *Evaluator) evalBody(fn *objects.Function) (objects.Value, error) {
	switch body := fn.Body.(type) {
	case *parser.BlockStatement:
		if err := ev.evalBlock(body); err != nil {
			if rs, ok := asReturn(err); ok {
				return rs.Value, nil
			}
			return nil, err
		}
		return nullValue, nil
	case *parser.InlineReturnStatement:
		if err := ev.evalInlineReturn(body); err != nil {
			if rs, ok := asReturn(err); ok {
				return rs.Value, nil
			}
			return nil, err
		}
		return nullValue, nil
	default:
		return nil, ierrors.UnexpectedType(fn.Body.NodePos(), "function body is neither a block nor an inline return")
	}
}

// checkReturnType validates the body's result against fn's declared
// return type, tolerating int->float widening and Null against a
// Void- or Null-typed declaration.
func (ev *Evaluator) checkReturnType(pos ierrors.Position, fn *objects.Function, result objects.Value) (objects.Value, error) {
	if objects.IsNull(result) {
		if !parser.TypesEqual(parser.NullType{}, fn.Ret) {
			return nil, ierrors.ReturnTypeMismatch(pos, fn.Name, "expected "+fn.Ret.String()+", got null")
		}
		return result, nil
	}
	retType := objects.TypeOf(result)
	if !parser.TypesEqual(retType, fn.Ret) && !parser.WidensTo(retType, fn.Ret) {
		return nil, ierrors.ReturnTypeMismatch(pos, fn.Name, "expected "+fn.Ret.String()+", got "+retType.String())
	}
	return result, nil
}
