/*
File    : interp/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/interp/lexer"
	"github.com/akashmaji946/interp/source"
)

func parseProgram(t *testing.T, src string) *Program {
	t.Helper()
	lex := lexer.NewLexer(source.NewStringSource(src))
	p, err := NewParser(lex)
	require.NoError(t, err)
	program, err := p.ParseProgram()
	require.NoError(t, err)
	return program
}

func parseErr(t *testing.T, src string) error {
	t.Helper()
	lex := lexer.NewLexer(source.NewStringSource(src))
	p, err := NewParser(lex)
	if err != nil {
		return err
	}
	_, err = p.ParseProgram()
	return err
}

func TestParsesDeclarationWithInitializer(t *testing.T) {
	prog := parseProgram(t, `let a: int = 1;`)
	require.Len(t, prog.Items, 1)
	decl, ok := prog.Items[0].(*DeclarationStatement)
	require.True(t, ok)
	assert.Equal(t, "a", decl.Name)
	assert.False(t, decl.IsConst)
	assert.False(t, decl.Nullable)
	assert.Equal(t, IntegerType{}, decl.Type)
	lit, ok := decl.Rhs.(*Literal)
	require.True(t, ok)
	assert.Equal(t, int64(1), lit.IntVal)
}

func TestParsesNullableConstDeclaration(t *testing.T) {
	prog := parseProgram(t, `const a?: float = null;`)
	decl := prog.Items[0].(*DeclarationStatement)
	assert.True(t, decl.IsConst)
	assert.True(t, decl.Nullable)
	assert.Equal(t, FloatType{}, decl.Type)
}

func TestParsesIfElifElse(t *testing.T) {
	prog := parseProgram(t, `
		if (a < 1) { print(1); }
		elif (a < 2) { print(2); }
		else { print(3); }
	`)
	ifStmt, ok := prog.Items[0].(*IfStatement)
	require.True(t, ok)
	require.Len(t, ifStmt.Elifs, 1)
	assert.NotNil(t, ifStmt.Else)
}

func TestParsesWhileLoop(t *testing.T) {
	prog := parseProgram(t, `while (i < 5) { i = i + 1; }`)
	w, ok := prog.Items[0].(*WhileStatement)
	require.True(t, ok)
	cmp, ok := w.Cond.(*ComparisonExpression)
	require.True(t, ok)
	assert.Equal(t, lexer.LT_OP, cmp.Op)
}

func TestParsesFunctionDefinitionWithBlockBody(t *testing.T) {
	prog := parseProgram(t, `def add(a: int, b: int): int => { return a + b; }`)
	def, ok := prog.Items[0].(*FunctionDefinition)
	require.True(t, ok)
	assert.Equal(t, "add", def.Name)
	require.Len(t, def.Params, 2)
	assert.Equal(t, "a", def.Params[0].Name)
	assert.Equal(t, IntegerType{}, def.Ret)
	_, ok = def.Body.(*BlockStatement)
	assert.True(t, ok)
}

func TestParsesFunctionDefinitionWithInlineBody(t *testing.T) {
	prog := parseProgram(t, `def sq(x: int): int => x * x;`)
	def := prog.Items[0].(*FunctionDefinition)
	body, ok := def.Body.(*InlineReturnStatement)
	require.True(t, ok)
	_, ok = body.Expr.(*BinaryExpression)
	assert.True(t, ok)
}

func TestParsesLambdaAsDeclarationInitializer(t *testing.T) {
	prog := parseProgram(t, `let f: func((int) => int) = (x: int): int => x;`)
	decl := prog.Items[0].(*DeclarationStatement)
	lambda, ok := decl.Rhs.(*LambdaExpression)
	require.True(t, ok)
	require.Len(t, lambda.Params, 1)
	assert.Equal(t, IntegerType{}, lambda.Ret)
}

func TestParsesChainedFunctionCall(t *testing.T) {
	prog := parseProgram(t, `f(1)(2, 3);`)
	stmt, ok := prog.Items[0].(*ExpressionStatement)
	require.True(t, ok)
	call, ok := stmt.Expr.(*FunctionCall)
	require.True(t, ok)
	require.Len(t, call.ArgLists, 2)
	assert.Len(t, call.ArgLists[0], 1)
	assert.Len(t, call.ArgLists[1], 2)
}

func TestOperatorPrecedenceNullCoalesceIsOutermost(t *testing.T) {
	prog := parseProgram(t, `let a: int = 1 + 2 ?? 3;`)
	decl := prog.Items[0].(*DeclarationStatement)
	coalesce, ok := decl.Rhs.(*NullCoalesceExpression)
	require.True(t, ok)
	_, ok = coalesce.Left.(*BinaryExpression)
	assert.True(t, ok)
}

func TestNegatedComparisonParsesCompFactor(t *testing.T) {
	prog := parseProgram(t, `let a: bool = not (x < 1);`)
	decl := prog.Items[0].(*DeclarationStatement)
	cf, ok := decl.Rhs.(*CompFactor)
	require.True(t, ok)
	assert.True(t, cf.Negated)
}

func TestUnaryMinusParsesNegFactor(t *testing.T) {
	prog := parseProgram(t, `let a: int = -5;`)
	decl := prog.Items[0].(*DeclarationStatement)
	nf, ok := decl.Rhs.(*NegFactor)
	require.True(t, ok)
	assert.True(t, nf.Minus)
}

func TestMissingSemicolonIsUnexpectedToken(t *testing.T) {
	err := parseErr(t, `let a: int = 1`)
	assert.Error(t, err)
}

func TestElseWithoutIfIsRejected(t *testing.T) {
	err := parseErr(t, `else { print(1); }`)
	assert.Error(t, err)
}

func TestFuncTypeAnnotationParsesUnnamedParams(t *testing.T) {
	prog := parseProgram(t, `let f: func((int, str) => bool) = null;`)
	decl := prog.Items[0].(*DeclarationStatement)
	ft, ok := decl.Type.(FuncType)
	require.True(t, ok)
	require.Len(t, ft.Params, 2)
	assert.Equal(t, IntegerType{}, ft.Params[0])
	assert.Equal(t, StringType{}, ft.Params[1])
	assert.Equal(t, BoolType{}, ft.Ret)
}
