/*
File    : interp/parser/parser_conditionals.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/interp/ierrors"
	"github.com/akashmaji946/interp/lexer"
)

// parseIf parses `if (cond) then { elif (cond) body } [else else]`.
func (p *Parser) parseIf() (*IfStatement, error) {
	pos := p.pos()
	if err := p.advance(); err != nil {
		return nil, err
	}

	cond, then, err := p.parseConditionalArm()
	if err != nil {
		return nil, err
	}

	var elifs []ElifClause
	for p.cur.Type == lexer.ELIF_KEY {
		if err := p.advance(); err != nil {
			return nil, err
		}
		econd, ebody, err := p.parseConditionalArm()
		if err != nil {
			return nil, err
		}
		elifs = append(elifs, ElifClause{Cond: econd, Body: ebody})
	}

	var elseBody Statement
	if p.cur.Type == lexer.ELSE_KEY {
		if err := p.advance(); err != nil {
			return nil, err
		}
		elseBody, err = p.parseStatement()
		if err != nil {
			return nil, err
		}
	}

	return &IfStatement{Cond: cond, Then: then, Elifs: elifs, Else: elseBody, Pos: pos}, nil
}

// parseConditionalArm parses the shared `(cond) body` shape used by
// both `if` and `elif`.
func (p *Parser) parseConditionalArm() (Expression, Statement, error) {
	if p.cur.Type != lexer.LEFT_PAREN {
		return nil, nil, ierrors.InvalidConditionalExpression(p.pos())
	}
	if err := p.advance(); err != nil {
		return nil, nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, nil, err
	}
	if err := p.expect(lexer.RIGHT_PAREN); err != nil {
		return nil, nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, nil, err
	}
	return cond, body, nil
}

// parseWhile parses `while (cond) body`, with missing condition or
// body reported as distinct errors per §4.3.
func (p *Parser) parseWhile() (*WhileStatement, error) {
	pos := p.pos()
	if err := p.advance(); err != nil {
		return nil, err
	}

	if p.cur.Type != lexer.LEFT_PAREN {
		return nil, ierrors.WhileLoopMissingCondition(pos)
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.RIGHT_PAREN); err != nil {
		return nil, err
	}

	if !p.canStartStatement() {
		return nil, ierrors.WhileLoopMissingBody(pos)
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	return &WhileStatement{Cond: cond, Body: body, Pos: pos}, nil
}
