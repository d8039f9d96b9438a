/*
File    : interp/parser/types.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "strings"

// Type is the closed sum described in spec §3: Integer, Float, Bool,
// String, Null, Void, and Func(params, ret). Equality is structural,
// except that Null and Void compare equal to each other (symmetric),
// which lets a function declared to return void fill a nullable
// binding.
type Type interface {
	typeTag() string
	String() string
}

type IntegerType struct{}
type FloatType struct{}
type BoolType struct{}
type StringType struct{}
type NullType struct{}
type VoidType struct{}

// FuncType is a first-class function type identified by its
// positional parameter types and return type. Per invariant 5,
// parameter nullability is not part of type identity.
type FuncType struct {
	Params []Type
	Ret    Type
}

func (IntegerType) typeTag() string { return "int" }
func (FloatType) typeTag() string   { return "float" }
func (BoolType) typeTag() string    { return "bool" }
func (StringType) typeTag() string  { return "str" }
func (NullType) typeTag() string    { return "null" }
func (VoidType) typeTag() string    { return "void" }
func (FuncType) typeTag() string    { return "func" }

func (IntegerType) String() string { return "int" }
func (FloatType) String() string   { return "float" }
func (BoolType) String() string    { return "bool" }
func (StringType) String() string  { return "str" }
func (NullType) String() string    { return "null" }
func (VoidType) String() string    { return "void" }

func (f FuncType) String() string {
	parts := make([]string, len(f.Params))
	for i, p := range f.Params {
		parts[i] = p.String()
	}
	return "func((" + strings.Join(parts, ", ") + ") => " + f.Ret.String() + ")"
}

// TypesEqual implements the structural equality from spec §3,
// invariant 5, including the Null==Void symmetric special case.
func TypesEqual(a, b Type) bool {
	if a.typeTag() == "null" && b.typeTag() == "void" {
		return true
	}
	if a.typeTag() == "void" && b.typeTag() == "null" {
		return true
	}
	af, aok := a.(FuncType)
	bf, bok := b.(FuncType)
	if aok != bok {
		return false
	}
	if aok {
		if len(af.Params) != len(bf.Params) {
			return false
		}
		for i := range af.Params {
			if !TypesEqual(af.Params[i], bf.Params[i]) {
				return false
			}
		}
		return TypesEqual(af.Ret, bf.Ret)
	}
	return a.typeTag() == b.typeTag()
}

// IsNumeric reports whether t is Integer or Float.
func IsNumeric(t Type) bool {
	switch t.(type) {
	case IntegerType, FloatType:
		return true
	default:
		return false
	}
}

// WidensTo reports whether a value of type from may be used where
// type to is declared, per the implicit int→float widening rule.
func WidensTo(from, to Type) bool {
	if TypesEqual(from, to) {
		return true
	}
	if _, ok := from.(IntegerType); ok {
		if _, ok := to.(FloatType); ok {
			return true
		}
	}
	return false
}
