package ast

import "github.com/t14raptor/go-desugar/token"

type (
	Statements []Statement

	Statement struct {
		Stmt `optional:"true"`
	}

	// All statement nodes implement the Stmt interface.
	Stmt interface {
		Node
		_stmt()
	}

	BlockStatement struct {
		LeftBrace  Idx
		List       Statements
		RightBrace Idx
	}

	EmptyStatement struct {
		Semicolon Idx
	}

	ExpressionStatement struct {
		Expression *Expression
	}

	IfStatement struct {
		If         Idx
		Test       *Expression
		Consequent *Statement
		Alternate  *Statement `optional:"true"`
	}

	ReturnStatement struct {
		Return   Idx
		Argument *Expression `optional:"true"`
	}

	VariableDeclaration struct {
		Idx   Idx
		Token token.Token
		List  VariableDeclarators
	}

	VariableDeclarators []VariableDeclarator

	VariableDeclarator struct {
		Target      *Expression
		Initializer *Expression `optional:"true"`
	}

	FunctionDeclaration struct {
		Function *FunctionLiteral
	}

	ClassDeclaration struct {
		Class *ClassLiteral
	}
)

func (*BlockStatement) _stmt()      {}
func (*EmptyStatement) _stmt()      {}
func (*ExpressionStatement) _stmt() {}
func (*IfStatement) _stmt()         {}
func (*ReturnStatement) _stmt()     {}
func (*VariableDeclaration) _stmt() {}
func (*FunctionDeclaration) _stmt() {}
func (*ClassDeclaration) _stmt()    {}
