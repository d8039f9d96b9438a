/*
File    : interp/scope/environment_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/interp/ierrors"
	"github.com/akashmaji946/interp/objects"
	"github.com/akashmaji946/interp/parser"
)

func TestLocalScopeShadowsWithoutMutatingParent(t *testing.T) {
	env := NewEnvironment(10)
	env.Current.Declare("a", &Variable{Value: objects.Integer{Value: 1}, DeclaredType: parser.IntegerType{}})

	env.PushLocalScope()
	env.Current.Declare("a", &Variable{Value: objects.Integer{Value: 2}, DeclaredType: parser.IntegerType{}})
	v, ok := env.Current.Lookup("a")
	assert.True(t, ok)
	assert.Equal(t, int64(2), v.Value.(objects.Integer).Value)
	env.PopLocalScope()

	v, ok = env.Current.Lookup("a")
	assert.True(t, ok)
	assert.Equal(t, int64(1), v.Value.(objects.Integer).Value)
}

func TestAssignMutatesOwningScope(t *testing.T) {
	env := NewEnvironment(10)
	env.Current.Declare("a", &Variable{Value: objects.Integer{Value: 1}, DeclaredType: parser.IntegerType{}})

	env.PushLocalScope()
	ok := env.Current.Assign("a", objects.Integer{Value: 9})
	assert.True(t, ok)
	env.PopLocalScope()

	v, _ := env.Current.Lookup("a")
	assert.Equal(t, int64(9), v.Value.(objects.Integer).Value)
}

func TestFunctionScopeParentsToGlobalNotCaller(t *testing.T) {
	env := NewEnvironment(10)
	env.PushLocalScope()
	env.Current.Declare("onlyLocal", &Variable{Value: objects.Integer{Value: 1}, DeclaredType: parser.IntegerType{}})

	err := env.PushFunctionScope(ierrors.Position{}, nil, nil)
	assert.NoError(t, err)
	_, ok := env.Current.Lookup("onlyLocal")
	assert.False(t, ok)
	assert.Same(t, env.Global, env.Current.Parent)
}

func TestRecursionLimitIsEnforced(t *testing.T) {
	env := NewEnvironment(2)
	assert.NoError(t, env.PushFunctionScope(ierrors.Position{}, nil, nil))
	assert.NoError(t, env.PushFunctionScope(ierrors.Position{}, nil, nil))
	err := env.PushFunctionScope(ierrors.Position{}, nil, nil)
	assert.Error(t, err)
	ierr, ok := err.(*ierrors.Error)
	assert.True(t, ok)
	assert.Equal(t, "RecursionLimit", ierr.Code)
}

func TestConstInChainDetectsAncestor(t *testing.T) {
	env := NewEnvironment(10)
	env.Current.Declare("pi", &Variable{Value: objects.Float{Value: 3.14}, DeclaredType: parser.FloatType{}, IsConst: true})
	env.PushLocalScope()
	assert.True(t, env.Current.IsConstInChain("pi"))
	assert.False(t, env.Current.IsConstInChain("missing"))
}
