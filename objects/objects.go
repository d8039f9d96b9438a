/*
File    : interp/objects/objects.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package objects defines the runtime Value representation the
// interpreter evaluates AST nodes into: Integer, Float, String, Bool,
// Null and Function — the closed payload set from spec §3's
// `Value: Literal{typ, payload}`.
package objects

import (
	"strconv"
	"strings"

	"github.com/akashmaji946/interp/parser"
)

// Kind tags which concrete Value a variable holds.
type Kind int

const (
	IntegerKind Kind = iota
	FloatKind
	StringKind
	BoolKind
	NullKind
	FuncKind
)

// Value is satisfied by every runtime payload kind.
type Value interface {
	ValueKind() Kind
}

type Integer struct{ Value int64 }

func (Integer) ValueKind() Kind { return IntegerKind }

type Float struct{ Value float64 }

func (Float) ValueKind() Kind { return FloatKind }

type String struct{ Value string }

func (String) ValueKind() Kind { return StringKind }

type Bool struct{ Value bool }

func (Bool) ValueKind() Kind { return BoolKind }

type Null struct{}

func (Null) ValueKind() Kind { return NullKind }

// BuiltinFunc is the Go implementation behind a built-in function
// value (print, String, Integer, Float, Boolean).
type BuiltinFunc func(args []Value) (Value, error)

// Function is a first-class function value: either a named
// top-level definition or an anonymous lambda identified by a fresh
// ID, per spec §3's "function-object is either a FunctionDefinition
// (named) or a LambdaExpression (anonymous, identified by a fresh
// unique id)". Builtin is non-nil for the five registered built-ins.
type Function struct {
	Name     string
	Params   []*parser.Parameter
	Ret      parser.Type
	Body     parser.Node
	IsLambda bool
	ID       uint64
	Variadic bool
	Builtin  BuiltinFunc
}

func (*Function) ValueKind() Kind { return FuncKind }

// TypeOf maps a runtime Value to its static parser.Type, used by
// declaration and assignment type checks.
func TypeOf(v Value) parser.Type {
	switch val := v.(type) {
	case Integer:
		return parser.IntegerType{}
	case Float:
		return parser.FloatType{}
	case String:
		return parser.StringType{}
	case Bool:
		return parser.BoolType{}
	case Null:
		return parser.NullType{}
	case *Function:
		params := make([]parser.Type, len(val.Params))
		for i, p := range val.Params {
			params[i] = p.Type
		}
		return parser.FuncType{Params: params, Ret: val.Ret}
	default:
		return parser.NullType{}
	}
}

// IsNull reports whether v is the Null value.
func IsNull(v Value) bool {
	_, ok := v.(Null)
	return ok
}

// Render produces the canonical textual form used by `print` and the
// `String` built-in: null->"null", booleans as "true"/"false",
// strings without surrounding quotes, numbers in natural decimal form
// (floats always carry a decimal point).
func Render(v Value) string {
	switch val := v.(type) {
	case Integer:
		return strconv.FormatInt(val.Value, 10)
	case Float:
		return renderFloat(val.Value)
	case String:
		return val.Value
	case Bool:
		if val.Value {
			return "true"
		}
		return "false"
	case Null:
		return "null"
	case *Function:
		return "<func " + val.Name + ">"
	default:
		return ""
	}
}

func renderFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
