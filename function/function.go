/*
File    : interp/function/function.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package function builds objects.Function values from parsed AST
// nodes. Unlike the scope it is parsed in, a function value never
// captures a defining scope — per spec §4.4 a function call's scope
// always parents to the global scope, so there is nothing here
// equivalent to the teacher's closure-capturing Scp field.
package function

import (
	"fmt"
	"sync/atomic"

	"github.com/akashmaji946/interp/objects"
	"github.com/akashmaji946/interp/parser"
)

var nextLambdaID uint64

// FromDefinition builds the function value a top-level `def` adds to
// the global function table.
func FromDefinition(def *parser.FunctionDefinition) *objects.Function {
	return &objects.Function{
		Name:   def.Name,
		Params: def.Params,
		Ret:    def.Ret,
		Body:   def.Body,
	}
}

// FromLambda builds the function value a lambda expression evaluates
// to, tagging it with a fresh unique ID per spec §3's "identified by
// a fresh unique id".
func FromLambda(expr *parser.LambdaExpression) *objects.Function {
	id := atomic.AddUint64(&nextLambdaID, 1)
	return &objects.Function{
		Name:     fmt.Sprintf("<lambda#%d>", id),
		Params:   expr.Params,
		Ret:      expr.Ret,
		Body:     expr.Body,
		IsLambda: true,
		ID:       id,
	}
}

// ToString renders a function value with its parameter names, for
// debugging. objects.Render does not use it.
func ToString(f *objects.Function) string {
	args := ""
	for i, p := range f.Params {
		if i > 0 {
			args += ", "
		}
		args += p.Name
	}
	return fmt.Sprintf("<func[%s(%s)]>", f.Name, args)
}
