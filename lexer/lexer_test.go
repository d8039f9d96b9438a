/*
File    : interp/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/akashmaji946/interp/source"
	"github.com/stretchr/testify/assert"
)

func allTokens(t *testing.T, src string) []Token {
	lex := NewLexer(source.NewStringSource(src))
	var toks []Token
	for {
		tok, err := lex.NextToken()
		assert.NoError(t, err)
		toks = append(toks, tok)
		if tok.Type == EOF_TYPE {
			break
		}
	}
	return toks
}

func types(toks []Token) []TokenType {
	out := make([]TokenType, len(toks))
	for i, tok := range toks {
		out[i] = tok.Type
	}
	return out
}

func TestLexerArithmetic(t *testing.T) {
	toks := allTokens(t, "123 + 2 * 31 - 12")
	assert.Equal(t, []TokenType{INT_LIT, PLUS_OP, INT_LIT, MUL_OP, INT_LIT, MINUS_OP, INT_LIT, EOF_TYPE}, types(toks))
}

func TestLexerKeywordsAndIdentifiers(t *testing.T) {
	toks := allTokens(t, "let x: int = 5; const y: float = 2.5;")
	assert.Equal(t, []TokenType{
		LET_KEY, IDENTIFIER_ID, COLON_DELIM, INT_TYPE_KEY, ASSIGN_OP, INT_LIT, SEMICOLON_DELIM,
		CONST_KEY, IDENTIFIER_ID, COLON_DELIM, FLOAT_TYPE_KEY, ASSIGN_OP, FLOAT_LIT, SEMICOLON_DELIM,
		EOF_TYPE,
	}, types(toks))
}

func TestLexerTwoCharOperators(t *testing.T) {
	toks := allTokens(t, "== != >= <= => ?? ?:")
	assert.Equal(t, []TokenType{EQ_OP, NE_OP, GE_OP, LE_OP, ARROW_OP, NULLISH_OP, NULLABLE_COLON, EOF_TYPE}, types(toks))
}

func TestLexerLeadingZeroIsError(t *testing.T) {
	lex := NewLexer(source.NewStringSource("007"))
	_, err := lex.NextToken()
	assert.Error(t, err)
}

func TestLexerFloatLiteral(t *testing.T) {
	toks := allTokens(t, "3.14 1e10 2.5e-3")
	assert.Equal(t, []TokenType{FLOAT_LIT, FLOAT_LIT, FLOAT_LIT, EOF_TYPE}, types(toks))
	assert.InDelta(t, 3.14, toks[0].FloatValue, 1e-9)
	assert.InDelta(t, 1e10, toks[1].FloatValue, 1e-9)
	assert.InDelta(t, 2.5e-3, toks[2].FloatValue, 1e-12)
}

func TestLexerStringLiteralWithEscapes(t *testing.T) {
	toks := allTokens(t, `"hello \"world\""`)
	assert.Equal(t, STRING_LIT, toks[0].Type)
	assert.Equal(t, `hello "world"`, toks[0].StringValue)
}

func TestLexerUnterminatedString(t *testing.T) {
	lex := NewLexer(source.NewStringSource(`"unterminated`))
	_, err := lex.NextToken()
	assert.Error(t, err)
}

func TestLexerLineComment(t *testing.T) {
	toks := allTokens(t, "1 + 2 // comment until newline\n+ 3")
	assert.Equal(t, []TokenType{INT_LIT, PLUS_OP, INT_LIT, PLUS_OP, INT_LIT, EOF_TYPE}, types(toks))
}

func TestLexerBlockComment(t *testing.T) {
	toks := allTokens(t, "1 /* skip\nthis */ + 2")
	assert.Equal(t, []TokenType{INT_LIT, PLUS_OP, INT_LIT, EOF_TYPE}, types(toks))
}

func TestLexerUnterminatedBlockComment(t *testing.T) {
	lex := NewLexer(source.NewStringSource("1 /* never closes"))
	_, err := lex.NextToken()
	assert.NoError(t, err)
	_, err = lex.NextToken()
	assert.Error(t, err)
}

func TestLexerUnknownOperator(t *testing.T) {
	lex := NewLexer(source.NewStringSource("!true"))
	_, err := lex.NextToken()
	assert.Error(t, err)
}

func TestLexerMaxIdentifierLength(t *testing.T) {
	lex := NewLexer(source.NewStringSource("abcdefgh"))
	lex.MaxIdentifierLength = 4
	_, err := lex.NextToken()
	assert.Error(t, err)
}

func TestLexerFunctionDefinitionTokens(t *testing.T) {
	toks := allTokens(t, "def add(a: int, b: int): int { return a + b; }")
	assert.Equal(t, []TokenType{
		DEF_KEY, IDENTIFIER_ID, LEFT_PAREN,
		IDENTIFIER_ID, COLON_DELIM, INT_TYPE_KEY, COMMA_DELIM,
		IDENTIFIER_ID, COLON_DELIM, INT_TYPE_KEY, RIGHT_PAREN,
		COLON_DELIM, INT_TYPE_KEY, LEFT_BRACE,
		RETURN_KEY, IDENTIFIER_ID, PLUS_OP, IDENTIFIER_ID, SEMICOLON_DELIM,
		RIGHT_BRACE, EOF_TYPE,
	}, types(toks))
}
