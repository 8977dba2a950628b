package ast

import "github.com/t14raptor/go-desugar/token"

type (
	Expressions []Expression

	// Expression is a struct to allow defining methods on it.
	Expression struct {
		Expr `optional:"true"`
	}

	// All expression nodes implement the Expr interface.
	Expr interface {
		Node
		_expr()
	}

	Identifier struct {
		Idx  Idx
		Name string
	}

	StringLiteral struct {
		Idx   Idx
		Value string
	}

	NumberLiteral struct {
		Idx     Idx
		Value   float64
		Literal string
	}

	BooleanLiteral struct {
		Idx   Idx
		Value bool
	}

	NullLiteral struct {
		Idx Idx
	}

	ThisExpression struct {
		Idx Idx
	}

	FunctionLiteral struct {
		Function      Idx
		Name          *Identifier `optional:"true"`
		ParameterList ParameterList
		Body          *BlockStatement

		Async, Generator bool
	}

	ParameterList struct {
		Opening Idx
		List    VariableDeclarators
		Closing Idx
	}

	ObjectLiteral struct {
		LeftBrace  Idx
		RightBrace Idx
		Value      Properties
	}

	CallExpression struct {
		Callee           *Expression
		LeftParenthesis  Idx
		ArgumentList     Expressions
		RightParenthesis Idx
	}

	// DotExpression is a non-computed member access, a.b.
	DotExpression struct {
		Left       *Expression
		Identifier *Identifier
	}

	// MemberExpression is a computed member access, a[b].
	MemberExpression struct {
		Object   *Expression
		Property *Expression
	}

	AssignExpression struct {
		Operator token.Token
		Left     *Expression
		Right    *Expression
	}

	BinaryExpression struct {
		Operator token.Token
		Left     *Expression
		Right    *Expression
	}

	UnaryExpression struct {
		Operator token.Token
		Idx      Idx
		Operand  *Expression
	}

	SequenceExpression struct {
		Sequence Expressions
	}
)

func (*Identifier) _expr()         {}
func (*StringLiteral) _expr()      {}
func (*NumberLiteral) _expr()      {}
func (*BooleanLiteral) _expr()     {}
func (*NullLiteral) _expr()        {}
func (*ThisExpression) _expr()     {}
func (*FunctionLiteral) _expr()    {}
func (*ClassLiteral) _expr()       {}
func (*ObjectLiteral) _expr()      {}
func (*CallExpression) _expr()     {}
func (*DotExpression) _expr()      {}
func (*MemberExpression) _expr()   {}
func (*AssignExpression) _expr()   {}
func (*BinaryExpression) _expr()   {}
func (*UnaryExpression) _expr()    {}
func (*SequenceExpression) _expr() {}
