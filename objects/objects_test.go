/*
File    : interp/objects/objects_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package objects

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/interp/parser"
)

func TestRenderMatchesCanonicalForms(t *testing.T) {
	assert.Equal(t, "null", Render(Null{}))
	assert.Equal(t, "true", Render(Bool{Value: true}))
	assert.Equal(t, "false", Render(Bool{Value: false}))
	assert.Equal(t, "42", Render(Integer{Value: 42}))
	assert.Equal(t, "3.5", Render(Float{Value: 3.5}))
	assert.Equal(t, "3.0", Render(Float{Value: 3}))
	assert.Equal(t, "hello", Render(String{Value: "hello"}))
}

func TestTypeOfMapsEveryKind(t *testing.T) {
	assert.Equal(t, parser.IntegerType{}, TypeOf(Integer{}))
	assert.Equal(t, parser.FloatType{}, TypeOf(Float{}))
	assert.Equal(t, parser.StringType{}, TypeOf(String{}))
	assert.Equal(t, parser.BoolType{}, TypeOf(Bool{}))
	assert.Equal(t, parser.NullType{}, TypeOf(Null{}))
}

func TestTypeOfFunctionBuildsFuncType(t *testing.T) {
	fn := &Function{
		Params: []*parser.Parameter{{Name: "x", Type: parser.IntegerType{}}},
		Ret:    parser.BoolType{},
	}
	got := TypeOf(fn)
	want := parser.FuncType{Params: []parser.Type{parser.IntegerType{}}, Ret: parser.BoolType{}}
	assert.True(t, parser.TypesEqual(got, want))
}

func TestIsNull(t *testing.T) {
	assert.True(t, IsNull(Null{}))
	assert.False(t, IsNull(Integer{Value: 0}))
}
