/*
File    : interp/parser/parser_literals.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/interp/ierrors"
	"github.com/akashmaji946/interp/lexer"
)

// parseLiteral converts the current literal/boolean/null token into a
// Literal node.
func (p *Parser) parseLiteral() (*Literal, error) {
	pos := p.pos()
	tok := p.cur
	switch tok.Type {
	case lexer.INT_LIT:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &Literal{Typ: IntegerType{}, IntVal: tok.IntValue, Pos: pos}, nil
	case lexer.FLOAT_LIT:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &Literal{Typ: FloatType{}, FloatVal: tok.FloatValue, Pos: pos}, nil
	case lexer.STRING_LIT:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &Literal{Typ: StringType{}, StringVal: tok.StringValue, Pos: pos}, nil
	case lexer.TRUE_KEY:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &Literal{Typ: BoolType{}, BoolVal: true, Pos: pos}, nil
	case lexer.FALSE_KEY:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &Literal{Typ: BoolType{}, BoolVal: false, Pos: pos}, nil
	case lexer.NULL_KEY:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &Literal{Typ: NullType{}, Pos: pos}, nil
	default:
		return nil, ierrors.InvalidRightExpression(pos)
	}
}
