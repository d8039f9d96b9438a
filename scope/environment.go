/*
File    : interp/scope/environment.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package scope

import (
	"github.com/akashmaji946/interp/ierrors"
	"github.com/akashmaji946/interp/objects"
	"github.com/akashmaji946/interp/parser"
)

// DefaultMaxRecursionDepth is the hard cap on nested function-call
// frames from spec §6.
const DefaultMaxRecursionDepth = 100

// Environment is the full execution context the interpreter carries
// across a run: the global scope, the global function table (kept in
// Functions, separate from the scope's variables), the current scope,
// the call stack of saved scopes, and the recursion depth counter.
type Environment struct {
	Global    *Scope
	Current   *Scope
	Functions map[string]*objects.Function

	callStack []*Scope
	depth     int
	MaxDepth  int
}

// NewEnvironment builds a fresh Environment with an empty global
// scope and function table.
func NewEnvironment(maxDepth int) *Environment {
	global := NewScope(nil)
	return &Environment{
		Global:    global,
		Current:   global,
		Functions: make(map[string]*objects.Function),
		MaxDepth:  maxDepth,
	}
}

// AddFunction inserts f into the global function table, overwriting
// any prior definition with the same name (including built-ins), per
// spec §4.5's FunctionDefinition evaluation rule.
func (e *Environment) AddFunction(f *objects.Function) {
	e.Functions[f.Name] = f
}

// GetFunction looks up a named entry in the global function table.
func (e *Environment) GetFunction(name string) (*objects.Function, bool) {
	f, ok := e.Functions[name]
	return f, ok
}

// PushLocalScope enters a block (compound statement): a scope whose
// parent is the scope active just before the block.
func (e *Environment) PushLocalScope() {
	e.Current = NewScope(e.Current)
}

// PopLocalScope leaves a block, restoring the prior current scope.
func (e *Environment) PopLocalScope() {
	if e.Current.Parent != nil {
		e.Current = e.Current.Parent
	}
}

// PushFunctionScope enters a function call: a fresh scope parented to
// the *global* scope (functions do not close over the caller's
// locals, per §4.4), with each parameter bound to its argument. The
// caller's current scope is saved on the call stack and the recursion
// counter incremented; exceeding MaxDepth is a RecursionLimit error
// checked before the new scope is created.
func (e *Environment) PushFunctionScope(pos ierrors.Position, params []*parser.Parameter, args []objects.Value) error {
	if e.depth >= e.MaxDepth {
		return ierrors.RecursionLimit(pos, e.MaxDepth)
	}
	e.callStack = append(e.callStack, e.Current)
	fnScope := NewScope(e.Global)
	for i, param := range params {
		fnScope.Declare(param.Name, &Variable{
			Value:        args[i],
			DeclaredType: param.Type,
			Nullable:     param.Nullable,
		})
	}
	e.Current = fnScope
	e.depth++
	return nil
}

// PopFunctionScope leaves a function call, restoring the saved caller
// scope (or the global scope if the call stack is empty) and
// decrementing the recursion counter.
func (e *Environment) PopFunctionScope() {
	e.depth--
	if n := len(e.callStack); n > 0 {
		e.Current = e.callStack[n-1]
		e.callStack = e.callStack[:n-1]
		return
	}
	e.Current = e.Global
}

// Depth reports the current recursion depth, for tests and diagnostics.
func (e *Environment) Depth() int { return e.depth }
