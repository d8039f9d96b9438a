/*
File    : interp/std/builtins.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package std registers the five built-in functions from spec §4.5
// into an Environment's global function table: print and the four
// conversion functions String/Integer/Float/Boolean.
package std

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/akashmaji946/interp/ierrors"
	"github.com/akashmaji946/interp/objects"
	"github.com/akashmaji946/interp/scope"
)

var zeroPos ierrors.Position

// Register installs every built-in into env's global function table,
// writing print's output to w.
func Register(env *scope.Environment, w io.Writer) {
	env.AddFunction(&objects.Function{Name: "print", Variadic: true, Builtin: printBuiltin(w)})
	env.AddFunction(&objects.Function{Name: "String", Builtin: stringBuiltin})
	env.AddFunction(&objects.Function{Name: "Integer", Builtin: integerBuiltin})
	env.AddFunction(&objects.Function{Name: "Float", Builtin: floatBuiltin})
	env.AddFunction(&objects.Function{Name: "Boolean", Builtin: booleanBuiltin})
}

// printBuiltin writes each argument's rendered value separated by a
// single space, followed by a newline. Func-typed arguments are
// rejected, per spec §4.5.
func printBuiltin(w io.Writer) objects.BuiltinFunc {
	return func(args []objects.Value) (objects.Value, error) {
		parts := make([]string, len(args))
		for i, a := range args {
			if _, ok := a.(*objects.Function); ok {
				return nil, ierrors.UnexpectedType(zeroPos, "print does not accept func arguments")
			}
			parts[i] = objects.Render(a)
		}
		fmt.Fprintln(w, strings.Join(parts, " "))
		return objects.Null{}, nil
	}
}

func requireOneArg(name string, args []objects.Value) (objects.Value, error) {
	if len(args) != 1 {
		return nil, ierrors.ArgumentsError(zeroPos, name, 1, len(args))
	}
	return args[0], nil
}

// stringBuiltin converts null/bool/int/float/str to their String
// rendering (str is identity).
func stringBuiltin(args []objects.Value) (objects.Value, error) {
	arg, err := requireOneArg("String", args)
	if err != nil {
		return nil, err
	}
	switch v := arg.(type) {
	case objects.Null:
		return objects.String{Value: "null"}, nil
	case objects.Bool:
		return objects.String{Value: strconv.FormatBool(v.Value)}, nil
	case objects.Integer, objects.Float:
		return objects.String{Value: objects.Render(v)}, nil
	case objects.String:
		return v, nil
	default:
		return nil, ierrors.ArgumentTypeError(zeroPos, "String", 0, "cannot convert "+objects.TypeOf(arg).String())
	}
}

// integerBuiltin truncates a float toward zero, passes an int
// through, and rejects anything else.
func integerBuiltin(args []objects.Value) (objects.Value, error) {
	arg, err := requireOneArg("Integer", args)
	if err != nil {
		return nil, err
	}
	switch v := arg.(type) {
	case objects.Integer:
		return v, nil
	case objects.Float:
		return objects.Integer{Value: int64(v.Value)}, nil
	default:
		return nil, ierrors.ArgumentTypeError(zeroPos, "Integer", 0, "cannot convert "+objects.TypeOf(arg).String())
	}
}

// floatBuiltin widens an int, passes a float through, and rejects
// anything else.
func floatBuiltin(args []objects.Value) (objects.Value, error) {
	arg, err := requireOneArg("Float", args)
	if err != nil {
		return nil, err
	}
	switch v := arg.(type) {
	case objects.Integer:
		return objects.Float{Value: float64(v.Value)}, nil
	case objects.Float:
		return v, nil
	default:
		return nil, ierrors.ArgumentTypeError(zeroPos, "Float", 0, "cannot convert "+objects.TypeOf(arg).String())
	}
}

// booleanBuiltin accepts only null/true/false, per spec §9's note
// that numeric/string conversion was left unimplemented upstream.
func booleanBuiltin(args []objects.Value) (objects.Value, error) {
	arg, err := requireOneArg("Boolean", args)
	if err != nil {
		return nil, err
	}
	switch v := arg.(type) {
	case objects.Null:
		return objects.Bool{Value: false}, nil
	case objects.Bool:
		return v, nil
	default:
		return nil, ierrors.ArgumentTypeError(zeroPos, "Boolean", 0, "cannot convert "+objects.TypeOf(arg).String())
	}
}
