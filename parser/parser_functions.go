/*
File    : interp/parser/parser_functions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/interp/ierrors"
	"github.com/akashmaji946/interp/lexer"
)

// parseFunctionDefinition parses
// `def ID "(" parameters ")" ":" return-type "=>" func-body`.
func (p *Parser) parseFunctionDefinition() (*FunctionDefinition, error) {
	pos := p.pos()
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

	if err := p.expect(lexer.LEFT_PAREN); err != nil {
		return nil, err
	}
	params, err := p.parseParameters()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.RIGHT_PAREN); err != nil {
		return nil, err
	}

	if err := p.expect(lexer.COLON_DELIM); err != nil {
		return nil, ierrors.InvalidReturnType(p.pos(), "expected ':' before return type")
	}
	ret, err := p.parseTypeAnnotation()
	if err != nil {
		return nil, err
	}

	if p.cur.Type != lexer.ARROW_OP {
		return nil, ierrors.MissingFunctionBody(p.pos(), name)
	}
	if err := p.advance(); err != nil {
		return nil, err
	}

	body, err := p.parseFuncBody(name)
	if err != nil {
		return nil, err
	}

	return &FunctionDefinition{Name: name, Params: params, Ret: ret, Body: body, Pos: pos}, nil
}

// parseFuncBody parses a block body or, for an inline definition, a
// bare expression wrapped as an InlineReturnStatement.
func (p *Parser) parseFuncBody(name string) (Node, error) {
	if p.cur.Type == lexer.LEFT_BRACE {
		return p.parseBlock()
	}
	pos := p.pos()
	if !p.canStartExpression() {
		return nil, ierrors.MissingFunctionBody(pos, name)
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &InlineReturnStatement{Expr: expr, Pos: pos}, nil
}

// parseParameters parses a comma-separated, possibly empty parameter
// list up to (not including) the closing `)`.
func (p *Parser) parseParameters() ([]*Parameter, error) {
	var params []*Parameter
	if p.cur.Type == lexer.RIGHT_PAREN {
		return params, nil
	}
	for {
		param, err := p.parseParameter()
		if err != nil {
			return nil, err
		}
		params = append(params, param)
		if p.cur.Type == lexer.COMMA_DELIM {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	return params, nil
}

// parseParameter parses `ID (":"|"?:") type`.
func (p *Parser) parseParameter() (*Parameter, error) {
	pos := p.pos()
	if p.cur.Type != lexer.IDENTIFIER_ID {
		return nil, ierrors.MissingParameter(pos)
	}
	name := p.cur.Literal
	if err := p.advance(); err != nil {
		return nil, err
	}

	nullable := false
	switch p.cur.Type {
	case lexer.COLON_DELIM:
	case lexer.NULLABLE_COLON:
		nullable = true
	default:
		return nil, ierrors.MissingTypeAssignment(p.pos(), name)
	}
	if err := p.advance(); err != nil {
		return nil, err
	}

	typ, err := p.parseTypeAnnotation()
	if err != nil {
		return nil, err
	}

	return &Parameter{Name: name, Type: typ, Nullable: nullable, Pos: pos}, nil
}

// parseTypeAnnotation parses any of the type-name keywords or a
// `func(...)` type expression.
func (p *Parser) parseTypeAnnotation() (Type, error) {
	pos := p.pos()
	switch p.cur.Type {
	case lexer.INT_TYPE_KEY:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return IntegerType{}, nil
	case lexer.FLOAT_TYPE_KEY:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return FloatType{}, nil
	case lexer.STR_TYPE_KEY:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return StringType{}, nil
	case lexer.BOOL_TYPE_KEY:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return BoolType{}, nil
	case lexer.VOID_TYPE_KEY:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return VoidType{}, nil
	case lexer.FUNC_TYPE_KEY:
		return p.parseFuncType()
	default:
		return nil, ierrors.InvalidType(pos, string(p.cur.Type))
	}
}

// parseFuncType parses `func "(" "(" parameters ")" "=>" return-type ")"`.
func (p *Parser) parseFuncType() (Type, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expect(lexer.LEFT_PAREN); err != nil {
		return nil, err
	}
	if err := p.expect(lexer.LEFT_PAREN); err != nil {
		return nil, err
	}

	var params []Type
	if p.cur.Type != lexer.RIGHT_PAREN {
		for {
			t, err := p.parseTypeAnnotation()
			if err != nil {
				return nil, err
			}
			params = append(params, t)
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
	if err := p.expect(lexer.ARROW_OP); err != nil {
		return nil, err
	}
	ret, err := p.parseTypeAnnotation()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.RIGHT_PAREN); err != nil {
		return nil, err
	}

	return FuncType{Params: params, Ret: ret}, nil
}
