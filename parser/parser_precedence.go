/*
File    : interp/parser/parser_precedence.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/interp/lexer"

// This file implements the precedence ladder from §4.3, lowest to
// highest: expression -> null-coalesce -> or-expr -> and-expr ->
// equality-expr -> comp-factor -> add-factor -> mult-factor -> factor.
// Each layer left-associates by looping on its own operator set.

func (p *Parser) parseExpression() (Expression, error) {
	return p.parseNullCoalesce()
}

func (p *Parser) parseNullCoalesce() (Expression, error) {
	left, err := p.parseOrExpr()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == lexer.NULLISH_OP {
		pos := p.pos()
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseOrExpr()
		if err != nil {
			return nil, err
		}
		left = &NullCoalesceExpression{Left: left, Right: right, Pos: pos}
	}
	return left, nil
}

func (p *Parser) parseOrExpr() (Expression, error) {
	left, err := p.parseAndExpr()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == lexer.OR_KEY {
		pos := p.pos()
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseAndExpr()
		if err != nil {
			return nil, err
		}
		left = &OrExpression{Left: left, Right: right, Pos: pos}
	}
	return left, nil
}

func (p *Parser) parseAndExpr() (Expression, error) {
	left, err := p.parseEqualityExpr()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == lexer.AND_KEY {
		pos := p.pos()
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseEqualityExpr()
		if err != nil {
			return nil, err
		}
		left = &AndExpression{Left: left, Right: right, Pos: pos}
	}
	return left, nil
}

func (p *Parser) parseEqualityExpr() (Expression, error) {
	left, err := p.parseComparisonExpr()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == lexer.EQ_OP || p.cur.Type == lexer.NE_OP {
		op := p.cur.Type
		pos := p.pos()
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseComparisonExpr()
		if err != nil {
			return nil, err
		}
		left = &EqualityExpression{Op: op, Left: left, Right: right, Pos: pos}
	}
	return left, nil
}

func (p *Parser) parseComparisonExpr() (Expression, error) {
	left, err := p.parseCompFactor()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == lexer.LT_OP || p.cur.Type == lexer.LE_OP ||
		p.cur.Type == lexer.GT_OP || p.cur.Type == lexer.GE_OP {
		op := p.cur.Type
		pos := p.pos()
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseCompFactor()
		if err != nil {
			return nil, err
		}
		left = &ComparisonExpression{Op: op, Left: left, Right: right, Pos: pos}
	}
	return left, nil
}

// parseCompFactor handles the optional leading `not`.
func (p *Parser) parseCompFactor() (Expression, error) {
	pos := p.pos()
	negated := false
	if p.cur.Type == lexer.NOT_KEY {
		negated = true
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	inner, err := p.parseAddFactor()
	if err != nil {
		return nil, err
	}
	if !negated {
		return inner, nil
	}
	return &CompFactor{Inner: inner, Negated: true, Pos: pos}, nil
}

func (p *Parser) parseAddFactor() (Expression, error) {
	left, err := p.parseMultFactor()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == lexer.PLUS_OP || p.cur.Type == lexer.MINUS_OP {
		op := p.cur.Type
		pos := p.pos()
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseMultFactor()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpression{Op: op, Left: left, Right: right, Pos: pos}
	}
	return left, nil
}

func (p *Parser) parseMultFactor() (Expression, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == lexer.MUL_OP || p.cur.Type == lexer.DIV_OP || p.cur.Type == lexer.MOD_OP {
		op := p.cur.Type
		pos := p.pos()
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpression{Op: op, Left: left, Right: right, Pos: pos}
	}
	return left, nil
}
