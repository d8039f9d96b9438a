/*
File    : interp/parser/parser_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/interp/ierrors"
	"github.com/akashmaji946/interp/lexer"
)

// parseStatement tries each statement form in the order §4.3
// specifies: conditional, while, block, declaration, return,
// id-operation. The leading token fully determines which form
// applies, so no backtracking is needed.
func (p *Parser) parseStatement() (Statement, error) {
	switch p.cur.Type {
	case lexer.IF_KEY:
		return p.parseIf()
	case lexer.WHILE_KEY:
		return p.parseWhile()
	case lexer.LEFT_BRACE:
		return p.parseBlock()
	case lexer.LET_KEY, lexer.CONST_KEY:
		return p.parseDeclaration()
	case lexer.RETURN_KEY:
		return p.parseReturn()
	case lexer.SEMICOLON_DELIM:
		pos := p.pos()
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &EmptyStatement{Pos: pos}, nil
	case lexer.IDENTIFIER_ID:
		return p.parseIdOperation()
	default:
		return nil, ierrors.UnexpectedToken(p.pos(), "statement", string(p.cur.Type))
	}
}

// parseBlock parses a brace-delimited compound statement.
func (p *Parser) parseBlock() (*BlockStatement, error) {
	pos := p.pos()
	if err := p.expect(lexer.LEFT_BRACE); err != nil {
		return nil, err
	}
	var stmts []Statement
	for p.cur.Type != lexer.RIGHT_BRACE {
		if p.cur.Type == lexer.EOF_TYPE {
			return nil, ierrors.UnexpectedToken(p.pos(), "}", "EOF")
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if err := p.expect(lexer.RIGHT_BRACE); err != nil {
		return nil, err
	}
	return &BlockStatement{Stmts: stmts, Pos: pos}, nil
}

// parseDeclaration parses `(let|const) ID (":"|"?:") type ("=" expr)? ";"`.
func (p *Parser) parseDeclaration() (*DeclarationStatement, error) {
	pos := p.pos()
	isConst := p.cur.Type == lexer.CONST_KEY
	if err := p.advance(); err != nil {
		return nil, err
	}

	if p.cur.Type != lexer.IDENTIFIER_ID {
		return nil, ierrors.UnexpectedToken(p.pos(), "identifier", string(p.cur.Type))
	}
	name := p.cur.Literal
	if err := p.advance(); err != nil {
		return nil, err
	}

	nullable := false
	switch p.cur.Type {
	case lexer.COLON_DELIM:
		if err := p.advance(); err != nil {
			return nil, err
		}
	case lexer.NULLABLE_COLON:
		nullable = true
		if err := p.advance(); err != nil {
			return nil, err
		}
	default:
		return nil, ierrors.MissingTypeAssignment(p.pos(), name)
	}

	typ, err := p.parseTypeAnnotation()
	if err != nil {
		return nil, err
	}

	var rhs Expression
	if p.cur.Type == lexer.ASSIGN_OP {
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}

	if rhs == nil {
		if isConst {
			return nil, ierrors.UninitializedConst(pos, name)
		}
		if !nullable {
			return nil, ierrors.NotNullable(pos, name)
		}
	}

	if err := p.expect(lexer.SEMICOLON_DELIM); err != nil {
		return nil, err
	}

	return &DeclarationStatement{
		Name: name, Type: typ, Nullable: nullable, IsConst: isConst, Rhs: rhs, Pos: pos,
	}, nil
}

// parseReturn parses `return [expr] ;`.
func (p *Parser) parseReturn() (*ReturnStatement, error) {
	pos := p.pos()
	if err := p.advance(); err != nil {
		return nil, err
	}
	var expr Expression
	if p.cur.Type != lexer.SEMICOLON_DELIM {
		e, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		expr = e
	}
	if err := p.expect(lexer.SEMICOLON_DELIM); err != nil {
		return nil, err
	}
	return &ReturnStatement{Expr: expr, Pos: pos}, nil
}

// parseIdOperation parses the two statement forms that start with a
// bare identifier: assignment (`ID = expr ;`) and a call used purely
// for side effect (`ID(...)... ;`).
func (p *Parser) parseIdOperation() (Statement, error) {
	pos := p.pos()
	name := p.cur.Literal
	if err := p.advance(); err != nil {
		return nil, err
	}

	if p.cur.Type == lexer.ASSIGN_OP {
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.SEMICOLON_DELIM); err != nil {
			return nil, err
		}
		return &AssignmentStatement{Name: name, Rhs: rhs, Pos: pos}, nil
	}

	if p.cur.Type != lexer.LEFT_PAREN {
		return nil, ierrors.UnexpectedToken(p.pos(), "'=' or '('", string(p.cur.Type))
	}
	call, err := p.parseCallTail(name, pos)
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.SEMICOLON_DELIM); err != nil {
		return nil, err
	}
	return &ExpressionStatement{Expr: call, Pos: pos}, nil
}

// parseCallTail parses one or more `(args)` groups following a
// callee name, per invariant 3: ArgLists has one entry per chained
// call site.
func (p *Parser) parseCallTail(name string, pos ierrors.Position) (*FunctionCall, error) {
	var argLists [][]Expression
	for p.cur.Type == lexer.LEFT_PAREN {
		args, err := p.parseArgList()
		if err != nil {
			return nil, err
		}
		argLists = append(argLists, args)
	}
	if len(argLists) == 0 {
		return nil, ierrors.UnexpectedToken(p.pos(), "(", string(p.cur.Type))
	}
	return &FunctionCall{Name: name, ArgLists: argLists, Pos: pos}, nil
}

func (p *Parser) parseArgList() ([]Expression, error) {
	if err := p.expect(lexer.LEFT_PAREN); err != nil {
		return nil, err
	}
	var args []Expression
	if p.cur.Type != lexer.RIGHT_PAREN {
		for {
			arg, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.cur.Type == lexer.COMMA_DELIM {
				if err := p.advance(); err != nil {
					return nil, err
				}
				continue
			}
			break
		}
	}
	if err := p.expect(lexer.RIGHT_PAREN); err != nil {
		return nil, err
	}
	return args, nil
}
