/*
File    : interp/parser/parser_helpers.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/interp/lexer"

// canStartExpression reports whether cur can begin an expression, used
// to distinguish "body is missing" from "body is malformed" in
// function/lambda bodies.
func (p *Parser) canStartExpression() bool {
	switch p.cur.Type {
	case lexer.INT_LIT, lexer.FLOAT_LIT, lexer.STRING_LIT,
		lexer.TRUE_KEY, lexer.FALSE_KEY, lexer.NULL_KEY,
		lexer.IDENTIFIER_ID, lexer.LEFT_PAREN, lexer.MINUS_OP, lexer.NOT_KEY:
		return true
	default:
		return false
	}
}

// canStartStatement reports whether cur can begin a statement, used
// for the same purpose in `while`'s body.
func (p *Parser) canStartStatement() bool {
	switch p.cur.Type {
	case lexer.IF_KEY, lexer.WHILE_KEY, lexer.LEFT_BRACE, lexer.LET_KEY, lexer.CONST_KEY,
		lexer.RETURN_KEY, lexer.SEMICOLON_DELIM, lexer.IDENTIFIER_ID:
		return true
	default:
		return false
	}
}
