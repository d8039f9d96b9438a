/*
File    : interp/parser/parser_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/interp/ierrors"
	"github.com/akashmaji946/interp/lexer"
)

// parseFactor is `["-"] (literal | identifier-or-call-or-lambda | "(" paren-or-lambda)`.
func (p *Parser) parseFactor() (Expression, error) {
	pos := p.pos()
	minus := false
	if p.cur.Type == lexer.MINUS_OP {
		minus = true
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	inner, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if !minus {
		return inner, nil
	}
	return &NegFactor{Inner: inner, Minus: true, Pos: pos}, nil
}

func (p *Parser) parsePrimary() (Expression, error) {
	switch p.cur.Type {
	case lexer.INT_LIT, lexer.FLOAT_LIT, lexer.STRING_LIT, lexer.TRUE_KEY, lexer.FALSE_KEY, lexer.NULL_KEY:
		return p.parseLiteral()
	case lexer.IDENTIFIER_ID:
		return p.parseIdentifierOrCallOrLambda()
	case lexer.LEFT_PAREN:
		return p.parseParenOrLambda()
	default:
		return nil, ierrors.InvalidRightExpression(p.pos())
	}
}

// parseIdentifierOrCallOrLambda handles a leading identifier: with no
// following `(` it is a bare reference, otherwise it opens a call (or
// chained calls).
func (p *Parser) parseIdentifierOrCallOrLambda() (Expression, error) {
	pos := p.pos()
	name := p.cur.Literal
	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.cur.Type != lexer.LEFT_PAREN {
		return &Identifier{Name: name, Pos: pos}, nil
	}
	return p.parseCallTail(name, pos)
}

// parseParenOrLambda resolves the grammar's one non-LL(1) spot. After
// consuming the leading "(", it decides among three continuations
// using at most the current and next token:
//
//   - "(" ")" ":" …        -> zero-argument lambda
//   - "(" ID (":"|"?:") …  -> one-or-more-argument lambda
//   - anything else        -> a parenthesized sub-expression
//
// In the lambda cases this function consumes the ")" that closes the
// parameter list and no further ")" for the grouping is expected.
func (p *Parser) parseParenOrLambda() (Expression, error) {
	pos := p.pos()
	if err := p.expect(lexer.LEFT_PAREN); err != nil {
		return nil, err
	}

	if p.cur.Type == lexer.RIGHT_PAREN {
		next, err := p.peek()
		if err != nil {
			return nil, err
		}
		if next.Type == lexer.COLON_DELIM {
			if err := p.advance(); err != nil { // consume ')'
				return nil, err
			}
			return p.parseLambdaRest(nil, pos)
		}
		return nil, ierrors.InvalidRightExpression(pos)
	}

	if p.cur.Type == lexer.IDENTIFIER_ID {
		next, err := p.peek()
		if err != nil {
			return nil, err
		}
		if next.Type == lexer.COLON_DELIM || next.Type == lexer.NULLABLE_COLON {
			first, err := p.parseParameter()
			if err != nil {
				return nil, err
			}
			params := []*Parameter{first}
			for p.cur.Type == lexer.COMMA_DELIM {
				if err := p.advance(); err != nil {
					return nil, err
				}
				param, err := p.parseParameter()
				if err != nil {
					return nil, err
				}
				params = append(params, param)
			}
			if err := p.expect(lexer.RIGHT_PAREN); err != nil {
				return nil, err
			}
			return p.parseLambdaRest(params, pos)
		}
	}

	inner, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.RIGHT_PAREN); err != nil {
		return nil, err
	}
	return inner, nil
}

// parseLambdaRest parses the shared tail of both lambda forms:
// `":" return-type "=>" body`.
func (p *Parser) parseLambdaRest(params []*Parameter, pos ierrors.Position) (Expression, error) {
	if err := p.expect(lexer.COLON_DELIM); err != nil {
		return nil, err
	}
	ret, err := p.parseTypeAnnotation()
	if err != nil {
		return nil, err
	}
	if p.cur.Type != lexer.ARROW_OP {
		return nil, ierrors.MissingLambdaExpressionBody(p.pos())
	}
	if err := p.advance(); err != nil {
		return nil, err
	}

	var body Node
	if p.cur.Type == lexer.LEFT_BRACE {
		body, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	} else {
		if !p.canStartExpression() {
			return nil, ierrors.MissingLambdaExpressionBody(p.pos())
		}
		epos := p.pos()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		body = &InlineReturnStatement{Expr: expr, Pos: epos}
	}

	return &LambdaExpression{Params: params, Ret: ret, Body: body, Pos: pos}, nil
}
