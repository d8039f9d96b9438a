/*
File    : interp/parser/node.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/interp/ierrors"
	"github.com/akashmaji946/interp/lexer"
)

// Node is implemented by every AST node; NodePos anchors diagnostics
// and runtime error positions to the source location the node was
// parsed from.
type Node interface {
	NodePos() ierrors.Position
}

// Statement and Expression are the closed categories of top-level AST
// node. A FunctionCall deliberately satisfies Expression only; using
// one as a bare statement wraps it in an ExpressionStatement.
type Statement interface {
	Node
	statementNode()
}

type Expression interface {
	Node
	expressionNode()
}

// Program is the parse result: an ordered list of top-level items,
// each either a *FunctionDefinition or a Statement.
type Program struct {
	Items []Node
}

func (p *Program) NodePos() ierrors.Position {
	if len(p.Items) == 0 {
		return ierrors.Position{Line: 1, Column: 1}
	}
	return p.Items[0].NodePos()
}

// Parameter is a function or lambda parameter declaration.
type Parameter struct {
	Name     string
	Type     Type
	Nullable bool
	Pos      ierrors.Position
}

func (p *Parameter) NodePos() ierrors.Position { return p.Pos }

// FunctionDefinition is a named, top-level `def`. Body is either a
// *BlockStatement (brace body) or an *InlineReturnStatement (bare
// expression after `=>`).
type FunctionDefinition struct {
	Name   string
	Params []*Parameter
	Ret    Type
	Body   Node
	Pos    ierrors.Position
}

func (f *FunctionDefinition) NodePos() ierrors.Position { return f.Pos }

// --- Statements ---

// BlockStatement is a brace-delimited sequence of statements; entering
// one creates a local scope, per §4.4.
type BlockStatement struct {
	Stmts []Statement
	Pos   ierrors.Position
}

func (*BlockStatement) statementNode()              {}
func (b *BlockStatement) NodePos() ierrors.Position { return b.Pos }

// EmptyStatement is a bare `;`.
type EmptyStatement struct{ Pos ierrors.Position }

func (*EmptyStatement) statementNode()              {}
func (e *EmptyStatement) NodePos() ierrors.Position { return e.Pos }

// DeclarationStatement is `(let|const) name (":"|"?:") type ("=" rhs)? ";"`.
type DeclarationStatement struct {
	Name     string
	Type     Type
	Nullable bool
	IsConst  bool
	Rhs      Expression // nil if no initializer
	Pos      ierrors.Position
}

func (*DeclarationStatement) statementNode()              {}
func (d *DeclarationStatement) NodePos() ierrors.Position { return d.Pos }

// AssignmentStatement is `name = rhs ;`.
type AssignmentStatement struct {
	Name string
	Rhs  Expression
	Pos  ierrors.Position
}

func (*AssignmentStatement) statementNode()              {}
func (a *AssignmentStatement) NodePos() ierrors.Position { return a.Pos }

// ElifClause is one `elif (cond) body` arm of an IfStatement.
type ElifClause struct {
	Cond Expression
	Body Statement
}

// IfStatement is `if (cond) then { elif (cond) body } [else else]`.
type IfStatement struct {
	Cond  Expression
	Then  Statement
	Elifs []ElifClause
	Else  Statement // nil if absent
	Pos   ierrors.Position
}

func (*IfStatement) statementNode()              {}
func (i *IfStatement) NodePos() ierrors.Position { return i.Pos }

// WhileStatement is `while (cond) body`.
type WhileStatement struct {
	Cond Expression
	Body Statement
	Pos  ierrors.Position
}

func (*WhileStatement) statementNode()              {}
func (w *WhileStatement) NodePos() ierrors.Position { return w.Pos }

// ReturnStatement is `return [expr] ;`. Expr is nil for a bare return.
type ReturnStatement struct {
	Expr Expression
	Pos  ierrors.Position
}

func (*ReturnStatement) statementNode()              {}
func (r *ReturnStatement) NodePos() ierrors.Position { return r.Pos }

// InlineReturnStatement is the implicit return of a function/lambda
// body written as a single expression after `=>` rather than a block.
type InlineReturnStatement struct {
	Expr Expression
	Pos  ierrors.Position
}

func (*InlineReturnStatement) statementNode()              {}
func (r *InlineReturnStatement) NodePos() ierrors.Position { return r.Pos }

// ExpressionStatement wraps an expression used in statement position
// (an id-operation that is a call rather than an assignment).
type ExpressionStatement struct {
	Expr Expression
	Pos  ierrors.Position
}

func (*ExpressionStatement) statementNode()              {}
func (e *ExpressionStatement) NodePos() ierrors.Position { return e.Pos }

// --- Expressions ---

// Literal is an int/float/string/bool/null constant.
type Literal struct {
	Typ       Type
	IntVal    int64
	FloatVal  float64
	StringVal string
	BoolVal   bool
	Pos       ierrors.Position
}

func (*Literal) expressionNode()              {}
func (l *Literal) NodePos() ierrors.Position { return l.Pos }

// Identifier is a bare name reference.
type Identifier struct {
	Name string
	Pos  ierrors.Position
}

func (*Identifier) expressionNode()              {}
func (i *Identifier) NodePos() ierrors.Position { return i.Pos }

// BinaryExpression covers the arithmetic operators `+ - * / %`, the
// innermost (highest-precedence) binary layer in §4.3's grammar.
type BinaryExpression struct {
	Op          lexer.TokenType
	Left, Right Expression
	Pos         ierrors.Position
}

func (*BinaryExpression) expressionNode()              {}
func (b *BinaryExpression) NodePos() ierrors.Position { return b.Pos }

// ComparisonExpression covers `< <= > >=`.
type ComparisonExpression struct {
	Op          lexer.TokenType
	Left, Right Expression
	Pos         ierrors.Position
}

func (*ComparisonExpression) expressionNode()              {}
func (c *ComparisonExpression) NodePos() ierrors.Position { return c.Pos }

// EqualityExpression covers `== !=`.
type EqualityExpression struct {
	Op          lexer.TokenType
	Left, Right Expression
	Pos         ierrors.Position
}

func (*EqualityExpression) expressionNode()              {}
func (e *EqualityExpression) NodePos() ierrors.Position { return e.Pos }

// AndExpression covers `and`.
type AndExpression struct {
	Left, Right Expression
	Pos         ierrors.Position
}

func (*AndExpression) expressionNode()              {}
func (a *AndExpression) NodePos() ierrors.Position { return a.Pos }

// OrExpression covers `or`.
type OrExpression struct {
	Left, Right Expression
	Pos         ierrors.Position
}

func (*OrExpression) expressionNode()              {}
func (o *OrExpression) NodePos() ierrors.Position { return o.Pos }

// NullCoalesceExpression covers `??`, the outermost (lowest-
// precedence) binary layer.
type NullCoalesceExpression struct {
	Left, Right Expression
	Pos         ierrors.Position
}

func (*NullCoalesceExpression) expressionNode()              {}
func (n *NullCoalesceExpression) NodePos() ierrors.Position { return n.Pos }

// CompFactor carries an optional leading `not`.
type CompFactor struct {
	Inner   Expression
	Negated bool
	Pos     ierrors.Position
}

func (*CompFactor) expressionNode()              {}
func (c *CompFactor) NodePos() ierrors.Position { return c.Pos }

// NegFactor carries an optional leading unary `-`.
type NegFactor struct {
	Inner Expression
	Minus bool
	Pos   ierrors.Position
}

func (*NegFactor) expressionNode()              {}
func (n *NegFactor) NodePos() ierrors.Position { return n.Pos }

// LambdaExpression is an anonymous function value: `(params): ret => body`.
// Body is either a *BlockStatement or an *InlineReturnStatement.
type LambdaExpression struct {
	Params []*Parameter
	Ret    Type
	Body   Node
	Pos    ierrors.Position
}

func (*LambdaExpression) expressionNode()              {}
func (l *LambdaExpression) NodePos() ierrors.Position { return l.Pos }

// FunctionCall is `name(args)(args)...`; ArgLists has one entry per
// chained call site, each holding zero or more argument expressions.
type FunctionCall struct {
	Name     string
	ArgLists [][]Expression
	Pos      ierrors.Position
}

func (*FunctionCall) expressionNode()              {}
func (f *FunctionCall) NodePos() ierrors.Position { return f.Pos }
