/*
File    : interp/lexer/token.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import "fmt"

// TokenType represents the type of a lexical token in the language.
// It is defined as a string to allow for easy comparison and debugging.
// Each token type corresponds to a specific syntactic element, such as
// an operator, keyword, literal, or structural symbol.
type TokenType string

// TokenType constants group the language's reserved words, operators,
// literal kinds and structural punctuation. The set is deliberately
// small: this is the full vocabulary of the scripting language, not a
// superset pruned down.
const (
	// Special types
	EOF_TYPE     TokenType = "EOF"
	INVALID_TYPE TokenType = "INVALID"

	// Arithmetic operators
	PLUS_OP  TokenType = "+"
	MINUS_OP TokenType = "-"
	MUL_OP   TokenType = "*"
	DIV_OP   TokenType = "/"
	MOD_OP   TokenType = "%"

	// Comparison / assignment operators
	GT_OP     TokenType = ">"
	LT_OP     TokenType = "<"
	GE_OP     TokenType = ">="
	LE_OP     TokenType = "<="
	EQ_OP     TokenType = "=="
	NE_OP     TokenType = "!="
	ASSIGN_OP TokenType = "="

	// Logical keywords (not symbolic operators, per spec §6)
	AND_KEY TokenType = "and"
	OR_KEY  TokenType = "or"
	NOT_KEY TokenType = "not"

	// Null-coalesce and lambda/function arrow
	NULLISH_OP TokenType = "??"
	ARROW_OP   TokenType = "=>"

	// Declaration keywords
	CONST_KEY TokenType = "const"
	LET_KEY   TokenType = "let"
	DEF_KEY   TokenType = "def"
	RETURN_KEY TokenType = "return"

	// Control flow keywords
	IF_KEY    TokenType = "if"
	ELIF_KEY  TokenType = "elif"
	ELSE_KEY  TokenType = "else"
	WHILE_KEY TokenType = "while"

	// Boolean / null literals
	TRUE_KEY  TokenType = "true"
	FALSE_KEY TokenType = "false"
	NULL_KEY  TokenType = "null"

	// Type-name keywords
	INT_TYPE_KEY   TokenType = "int"
	FLOAT_TYPE_KEY TokenType = "float"
	STR_TYPE_KEY   TokenType = "str"
	BOOL_TYPE_KEY  TokenType = "bool"
	FUNC_TYPE_KEY  TokenType = "func"
	VOID_TYPE_KEY  TokenType = "void"

	// Identifiers
	IDENTIFIER_ID TokenType = "Identifier"

	// Literals
	INT_LIT    TokenType = "IntLiteral"
	FLOAT_LIT  TokenType = "FloatLiteral"
	STRING_LIT TokenType = "StringLiteral"
	COMMENT    TokenType = "Comment"

	// Structural tokens
	LEFT_PAREN  TokenType = "("
	RIGHT_PAREN TokenType = ")"
	LEFT_BRACE  TokenType = "{"
	RIGHT_BRACE TokenType = "}"

	// Delimiters
	COMMA_DELIM     TokenType = ","
	SEMICOLON_DELIM TokenType = ";"
	COLON_DELIM     TokenType = ":"
	NULLABLE_COLON  TokenType = "?:"
)

// KEYWORDS_MAP is a lookup table mapping reserved-word spellings to
// their token type, used by the identifier builder to distinguish
// keywords from plain identifiers.
var KEYWORDS_MAP = map[string]TokenType{
	"const": CONST_KEY, "let": LET_KEY, "def": DEF_KEY, "return": RETURN_KEY,
	"if": IF_KEY, "elif": ELIF_KEY, "else": ELSE_KEY, "while": WHILE_KEY,
	"and": AND_KEY, "or": OR_KEY, "not": NOT_KEY,
	"true": TRUE_KEY, "false": FALSE_KEY, "null": NULL_KEY,
	"int": INT_TYPE_KEY, "float": FLOAT_TYPE_KEY, "str": STR_TYPE_KEY,
	"bool": BOOL_TYPE_KEY, "func": FUNC_TYPE_KEY, "void": VOID_TYPE_KEY,
}

// Token represents a single lexical token: its class, the literal
// source text it came from, and its 1-based source position.
//
// Fields:
//   - Type: the category of the token (keyword, operator, literal...)
//   - Literal: the exact source text this token was scanned from
//   - IntValue / FloatValue / StringValue: the decoded payload for
//     literal kinds; zero-valued for every other kind
//   - Line, Column: 1-indexed position of the token's first character
type Token struct {
	Type   TokenType
	Literal string

	IntValue    int64
	FloatValue  float64
	StringValue string

	Line   int
	Column int
	Offset int
}

// NewToken creates a new Token with the specified type and literal
// value but no position metadata. Use NewTokenWithMetadata when
// position information is available.
func NewToken(tokenType TokenType, literal string) Token {
	return Token{Type: tokenType, Literal: literal}
}

// NewTokenWithMetadata creates a new Token with complete type,
// literal and position information. This is the constructor the
// lexer itself uses while scanning.
func NewTokenWithMetadata(tokenType TokenType, literal string, line, column, offset int) Token {
	return Token{Type: tokenType, Literal: literal, Line: line, Column: column, Offset: offset}
}

// Print outputs a human-readable "literal:type" representation of the
// token to standard output. Used for debugging only.
func (tok *Token) Print() {
	fmt.Printf("%s:%v\n", tok.Literal, tok.Type)
}

// lookupIdent determines the token type for a scanned identifier,
// checking KEYWORDS_MAP first so reserved words are never mistaken
// for user-defined names.
func lookupIdent(ident string) TokenType {
	if tok, ok := KEYWORDS_MAP[ident]; ok {
		return tok
	}
	return IDENTIFIER_ID
}
