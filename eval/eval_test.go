/*
File    : interp/eval/eval_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/interp/ierrors"
	"github.com/akashmaji946/interp/lexer"
	"github.com/akashmaji946/interp/parser"
	"github.com/akashmaji946/interp/source"
)

// run lexes, parses and evaluates src against a fresh Evaluator,
// returning everything `print` wrote and any error.
func run(t *testing.T, src string) (string, error) {
	t.Helper()
	lex := lexer.NewLexer(source.NewStringSource(src))
	p, err := parser.NewParser(lex)
	assert.NoError(t, err)
	program, err := p.ParseProgram()
	assert.NoError(t, err)

	var out bytes.Buffer
	ev := New(100, &out)
	err = ev.Run(program)
	return out.String(), err
}

func errCode(err error) string {
	if ierr, ok := err.(*ierrors.Error); ok {
		return ierr.Code
	}
	return ""
}

func TestWhileLoopPrintsCounter(t *testing.T) {
	out, err := run(t, `let i: int = 0; while (i < 5) { print(i); i = i + 1; }`)
	assert.NoError(t, err)
	assert.Equal(t, "0\n1\n2\n3\n4\n", out)
}

func TestRecursiveFactorial(t *testing.T) {
	out, err := run(t, `def factorial(n: int): int => { if (n == 1) { return n; } return n * factorial(n - 1); } print(factorial(5));`)
	assert.NoError(t, err)
	assert.Equal(t, "120\n", out)
}

func TestNullableDeclarationAcceptsCoalescedNull(t *testing.T) {
	_, err := run(t, `const a?: int = null ?? null;`)
	assert.NoError(t, err)
}

func TestNonNullableDeclarationRejectsNull(t *testing.T) {
	_, err := run(t, `const a: int = null ?? null;`)
	assert.Error(t, err)
	assert.Equal(t, "NotNullable", errCode(err))
}

func TestChainedLambdaCallsSucceed(t *testing.T) {
	_, err := run(t, `def f(): func(() => void) => (): void => {} f()();`)
	assert.NoError(t, err)
}

func TestChainedCallOnNonFunctionIsNotCallable(t *testing.T) {
	_, err := run(t, `def f(): func(() => int) => (): int => 1; f()()();`)
	assert.Error(t, err)
	assert.Equal(t, "NotCallable", errCode(err))
}

func TestRecursionDepthIsEnforced(t *testing.T) {
	_, err := run(t, `def f(): void => { f(); } f();`)
	assert.Error(t, err)
	assert.Equal(t, "RecursionLimit", errCode(err))
}

func TestPrintRendersEveryKind(t *testing.T) {
	out, err := run(t, `print(1, "Hello world", true, false, null);`)
	assert.NoError(t, err)
	assert.Equal(t, "1 Hello world true false null\n", out)
}

func TestBlockShadowingDoesNotLeak(t *testing.T) {
	out, err := run(t, `let a: int = 0; if (true) { let a: float = 100; } print(a);`)
	assert.NoError(t, err)
	assert.Equal(t, "0\n", out)
}

func TestAssignmentMutatesOuterBinding(t *testing.T) {
	out, err := run(t, `let a: int = 0; while (a == 0) { a = 1; } print(a);`)
	assert.NoError(t, err)
	assert.Equal(t, "1\n", out)
}

func TestConstRedeclarationIsRejected(t *testing.T) {
	_, err := run(t, `const a: int = 1; const a: int = 2;`)
	assert.Error(t, err)
	assert.Equal(t, "ConstRedeclaration", errCode(err))
}

// TestDeclarationEvaluatesRhsBeforeConstChainCheck locks in §4.5's
// step order: the RHS is evaluated first, so a failing initializer
// is reported even when the redeclaration would also be rejected.
func TestDeclarationEvaluatesRhsBeforeConstChainCheck(t *testing.T) {
	_, err := run(t, `const x: int = 1; if (true) { const x: int = 1 / 0; }`)
	assert.Error(t, err)
	assert.Equal(t, "DivisionByZero", errCode(err))
}

func TestConstAssignmentIsRejected(t *testing.T) {
	_, err := run(t, `const a: int = 1; a = 2;`)
	assert.Error(t, err)
	assert.Equal(t, "ConstAssignment", errCode(err))
}

func TestDivisionByZero(t *testing.T) {
	_, err := run(t, `print(1 / 0);`)
	assert.Error(t, err)
	assert.Equal(t, "DivisionByZero", errCode(err))
}

func TestIntWidensToFloatParameter(t *testing.T) {
	out, err := run(t, `def half(x: float): float => x / 2.0; print(half(5));`)
	assert.NoError(t, err)
	assert.Equal(t, "2.5\n", out)
}

func TestStringConcatenation(t *testing.T) {
	out, err := run(t, `print("foo" + "bar");`)
	assert.NoError(t, err)
	assert.Equal(t, "foobar\n", out)
}

func TestEqualityNullSemantics(t *testing.T) {
	out, err := run(t, `print(null == null, null != null, null == 1, null != 1);`)
	assert.NoError(t, err)
	assert.Equal(t, "true false false true\n", out)
}

func TestReturnOutsideFunctionIsRejected(t *testing.T) {
	_, err := run(t, `return 1;`)
	assert.Error(t, err)
	assert.Equal(t, "ReturnOutsideOfFunction", errCode(err))
}

func TestFunctionScopeDoesNotSeeCallerLocals(t *testing.T) {
	_, err := run(t, `def f(): void => { print(secret); } if (true) { let secret: int = 1; f(); }`)
	assert.Error(t, err)
	assert.Equal(t, "UndefinedName", errCode(err))
}

func TestArityMismatchIsRejected(t *testing.T) {
	_, err := run(t, `def add(a: int, b: int): int => a + b; print(add(1));`)
	assert.Error(t, err)
	assert.Equal(t, "ArgumentsError", errCode(err))
}

func TestLambdaValueCanBeStoredAndInvoked(t *testing.T) {
	out, err := run(t, `let sq: func((int) => int) = (x: int): int => x * x; print(sq(4));`)
	assert.NoError(t, err)
	assert.Equal(t, "16\n", out)
}
