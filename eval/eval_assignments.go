/*
File    : interp/eval/eval_assignments.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/interp/ierrors"
	"github.com/akashmaji946/interp/objects"
	"github.com/akashmaji946/interp/parser"
	"github.com/akashmaji946/interp/scope"
)

// evalDeclaration implements §4.5's Declaration rule, in the spec's
// own step order:
//
//  1. evaluate the RHS if present (so a side-effecting or erroring
//     initializer, e.g. a division by zero, is observed before any
//     later check runs).
//  2. no initializer: const is UninitializedConst; non-nullable let
//     is NotNullable; nullable let binds to Null.
//  3. a value of Null against a non-nullable binding is NotNullable.
//  4. redeclaring a name already const anywhere in the scope chain is
//     ConstRedeclaration.
//  5. the value's type must equal the declared type, or be an int
//     widening to a declared float; otherwise TypeMismatch.
func (ev *Evaluator) evalDeclaration(d *parser.DeclarationStatement) error {
	var val objects.Value
	if d.Rhs != nil {
		v, err := ev.evalExpression(d.Rhs)
		if err != nil {
			return err
		}
		val = v
	} else {
		if d.IsConst {
			return ierrors.InterpUninitializedConst(d.Pos, d.Name)
		}
		if !d.Nullable {
			return ierrors.InterpNotNullable(d.Pos, d.Name)
		}
		val = objects.Null{}
	}

	if objects.IsNull(val) && !d.Nullable {
		return ierrors.InterpNotNullable(d.Pos, d.Name)
	}

	if ev.Env.Current.IsConstInChain(d.Name) {
		return ierrors.ConstRedeclaration(d.Pos, d.Name)
	}

	if !objects.IsNull(val) {
		valType := objects.TypeOf(val)
		if !parser.TypesEqual(valType, d.Type) && !parser.WidensTo(valType, d.Type) {
			return ierrors.TypeMismatch(d.Pos, "cannot assign "+valType.String()+" to "+d.Type.String())
		}
	}
	ev.Env.Current.Declare(d.Name, &scope.Variable{
		Value: val, DeclaredType: d.Type, Nullable: d.Nullable, IsConst: d.IsConst,
	})
	return nil
}

// evalAssignment implements §4.5's Assignment rule: lookup, reject
// const targets and non-nullable Null values and type mismatches, then
// commit through the owning scope via Scope.Assign.
func (ev *Evaluator) evalAssignment(a *parser.AssignmentStatement) error {
	v, ok := ev.Env.Current.Lookup(a.Name)
	if !ok {
		return ierrors.UndefinedName(a.Pos, a.Name)
	}
	if v.IsConst {
		return ierrors.ConstAssignment(a.Pos, a.Name)
	}
	val, err := ev.evalExpression(a.Rhs)
	if err != nil {
		return err
	}
	if objects.IsNull(val) && !v.Nullable {
		return ierrors.InterpNotNullable(a.Pos, a.Name)
	}
	if !objects.IsNull(val) {
		valType := objects.TypeOf(val)
		if !parser.TypesEqual(valType, v.DeclaredType) && !parser.WidensTo(valType, v.DeclaredType) {
			return ierrors.AssignmentTypeMismatch(a.Pos, a.Name, "cannot assign "+valType.String()+" to "+v.DeclaredType.String())
		}
	}
	ev.Env.Current.Assign(a.Name, val)
	return nil
}
