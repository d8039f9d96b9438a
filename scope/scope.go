/*
File    : interp/scope/scope.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package scope implements the lexical-scope chain and the call-stack
// bookkeeping from spec §4.4: a Scope holds a symbol table plus a
// parent reference, and Environment owns the global scope, the global
// function table, the current scope, the call stack and the
// recursion-depth counter.
package scope

import "github.com/akashmaji946/interp/parser"
import "github.com/akashmaji946/interp/objects"

// Variable is a bound name's full record: its current value, the
// declared static type, and the nullable/const qualifiers that govern
// what may be assigned to it later.
type Variable struct {
	Value        objects.Value
	DeclaredType parser.Type
	Nullable     bool
	IsConst      bool
}

// Scope is a single lexical frame: a symbol table plus a reference to
// the enclosing scope. The global scope has a nil Parent.
type Scope struct {
	vars   map[string]*Variable
	Parent *Scope
}

// NewScope creates a scope parented to parent (nil for the global scope).
func NewScope(parent *Scope) *Scope {
	return &Scope{vars: make(map[string]*Variable), Parent: parent}
}

// Lookup searches this scope and outward through its parents,
// returning the first match.
func (s *Scope) Lookup(name string) (*Variable, bool) {
	if v, ok := s.vars[name]; ok {
		return v, true
	}
	if s.Parent != nil {
		return s.Parent.Lookup(name)
	}
	return nil, false
}

// Declare inserts a new binding into this scope only, shadowing any
// binding of the same name in an outer scope.
func (s *Scope) Declare(name string, v *Variable) {
	s.vars[name] = v
}

// HasLocal reports whether name is bound directly in this scope
// (not searching parents). Const redeclaration is checked through
// IsConstInChain, not through this method.
func (s *Scope) HasLocal(name string) bool {
	_, ok := s.vars[name]
	return ok
}

// IsConstInChain reports whether name is bound as const anywhere in
// this scope or an ancestor.
func (s *Scope) IsConstInChain(name string) bool {
	if v, ok := s.vars[name]; ok {
		return v.IsConst
	}
	if s.Parent != nil {
		return s.Parent.IsConstInChain(name)
	}
	return false
}

// Assign searches from this scope outward and overwrites the value in
// whichever scope owns the binding — the "assignment to an outer
// mutable binding mutates the outer binding" rule from §4.4.
func (s *Scope) Assign(name string, val objects.Value) bool {
	if v, ok := s.vars[name]; ok {
		v.Value = val
		return true
	}
	if s.Parent != nil {
		return s.Parent.Assign(name, val)
	}
	return false
}
