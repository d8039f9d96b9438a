/*
File    : interp/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser implements the recursive-descent parser: token
// stream in, typed AST out. Every parse function returns (Node, error)
// and the parser aborts on the first error — there is no
// error-collection list and no recovery, per the language's
// fatal-on-first-error contract.
package parser

import (
	"github.com/akashmaji946/interp/ierrors"
	"github.com/akashmaji946/interp/lexer"
)

// Parser holds the current token and a one-token lookahead buffer,
// enough for the single non-LL(1) spot in the grammar (disambiguating
// a parenthesized expression from a lambda parameter list).
type Parser struct {
	lex    *lexer.Lexer
	cur    lexer.Token
	peeked *lexer.Token
}

// NewParser primes cur with the first token of lex's stream.
func NewParser(lex *lexer.Lexer) (*Parser, error) {
	p := &Parser{lex: lex}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Parser) advance() error {
	if p.peeked != nil {
		p.cur = *p.peeked
		p.peeked = nil
		return nil
	}
	tok, err := p.lex.NextToken()
	if err != nil {
		return err
	}
	p.cur = tok
	return nil
}

// peek returns the token after cur without consuming it.
func (p *Parser) peek() (lexer.Token, error) {
	if p.peeked == nil {
		tok, err := p.lex.NextToken()
		if err != nil {
			return lexer.Token{}, err
		}
		p.peeked = &tok
	}
	return *p.peeked, nil
}

func (p *Parser) pos() ierrors.Position {
	return ierrors.Position{Line: p.cur.Line, Column: p.cur.Column, Offset: p.cur.Offset}
}

// expect consumes cur if it has type tt, else returns UnexpectedToken.
func (p *Parser) expect(tt lexer.TokenType) error {
	if p.cur.Type != tt {
		return ierrors.UnexpectedToken(p.pos(), string(tt), string(p.cur.Type))
	}
	return p.advance()
}

// ParseProgram is the entry point: it loops over top-level items until
// EOF, then returns the assembled Program.
func (p *Parser) ParseProgram() (*Program, error) {
	prog := &Program{}
	for p.cur.Type != lexer.EOF_TYPE {
		item, err := p.parseTopLevel()
		if err != nil {
			return nil, err
		}
		prog.Items = append(prog.Items, item)
	}
	return prog, nil
}

// parseTopLevel is either a FunctionDefinition or a Statement.
func (p *Parser) parseTopLevel() (Node, error) {
	if p.cur.Type == lexer.DEF_KEY {
		return p.parseFunctionDefinition()
	}
	return p.parseStatement()
}
