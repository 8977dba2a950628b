// Package generator renders an AST back to JavaScript source text.
package generator

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/t14raptor/go-desugar/ast"
)

type state struct {
	out    *strings.Builder
	node   ast.Node
	parent *state
	indent int
}

func (s *state) wrap(node ast.Node) *state {
	return &state{
		out:    s.out,
		node:   node,
		parent: s,
		indent: s.indent,
	}
}

func (s *state) line() {
	s.out.WriteString("\n")
}

func (s *state) lineAndPad() {
	s.line()
	s.out.WriteString(strings.Repeat("    ", s.indent))
}

func Generate(node ast.Node) string {
	s := &state{
		out:    &strings.Builder{},
		node:   node,
		parent: &state{},
	}
	gen(s)
	return s.out.String()
}

func gen(s *state) {
	switch n := s.node.(type) {
	case nil:
	case *ast.Program:
		if n != nil {
			for _, b := range n.Body {
				gen(s.wrap(b.Stmt))
				s.line()
			}
		}
	case *ast.Identifier:
		if n != nil {
			s.out.WriteString(n.Name)
		}
	case *ast.StringLiteral:
		s.out.WriteString(strconv.Quote(n.Value))
	case *ast.NumberLiteral:
		if n.Literal != "" {
			s.out.WriteString(n.Literal)
		} else {
			s.out.WriteString(strconv.FormatFloat(n.Value, 'f', -1, 64))
		}
	case *ast.BooleanLiteral:
		s.out.WriteString(strconv.FormatBool(n.Value))
	case *ast.NullLiteral:
		s.out.WriteString("null")
	case *ast.ThisExpression:
		s.out.WriteString("this")
	case *ast.CallExpression:
		if _, ok := n.Callee.Expr.(*ast.FunctionLiteral); ok {
			s.out.WriteString("(")
			gen(s.wrap(n.Callee.Expr))
			s.out.WriteString(")")
		} else {
			gen(s.wrap(n.Callee.Expr))
		}
		s.out.WriteString("(")
		for i, a := range n.ArgumentList {
			gen(s.wrap(a.Expr))
			if i < len(n.ArgumentList)-1 {
				s.out.WriteString(", ")
			}
		}
		s.out.WriteString(")")
	case *ast.DotExpression:
		gen(s.wrap(n.Left.Expr))
		s.out.WriteString(".")
		s.out.WriteString(n.Identifier.Name)
	case *ast.MemberExpression:
		gen(s.wrap(n.Object.Expr))
		if st, ok := n.Property.Expr.(*ast.StringLiteral); ok && valid(st.Value) {
			s.out.WriteString(".")
			s.out.WriteString(st.Value)
		} else {
			s.out.WriteString("[")
			gen(s.wrap(n.Property.Expr))
			s.out.WriteString("]")
		}
	case *ast.AssignExpression:
		if _, ok := s.parent.node.(*ast.BinaryExpression); ok {
			s.out.WriteString("(")
			defer s.out.WriteString(")")
		}
		gen(s.wrap(n.Left.Expr))
		s.out.WriteString(" ")
		s.out.WriteString(n.Operator.String())
		s.out.WriteString(" ")
		gen(s.wrap(n.Right.Expr))
	case *ast.BinaryExpression:
		if pn, ok := s.parent.node.(*ast.BinaryExpression); ok {
			prec, parentPrec := n.Operator.Precedence(), pn.Operator.Precedence()
			if prec < parentPrec || prec == parentPrec && pn.Right.Expr == n {
				s.out.WriteString("(")
				defer s.out.WriteString(")")
			}
		}
		gen(s.wrap(n.Left.Expr))
		s.out.WriteString(" " + n.Operator.String() + " ")
		gen(s.wrap(n.Right.Expr))
	case *ast.UnaryExpression:
		s.out.WriteString(n.Operator.String())
		if len(n.Operator.String()) > 2 {
			s.out.WriteString(" ")
		}
		switch n.Operand.Expr.(type) {
		case *ast.BinaryExpression, *ast.AssignExpression, *ast.UnaryExpression, *ast.SequenceExpression:
			s.out.WriteString("(")
			gen(s.wrap(n.Operand.Expr))
			s.out.WriteString(")")
		default:
			gen(s.wrap(n.Operand.Expr))
		}
	case *ast.SequenceExpression:
		switch s.parent.node.(type) {
		case *ast.BinaryExpression, *ast.AssignExpression, *ast.CallExpression:
			s.out.WriteString("(")
			defer s.out.WriteString(")")
		}
		for i, e := range n.Sequence {
			gen(s.wrap(e.Expr))
			if i < len(n.Sequence)-1 {
				s.out.WriteString(", ")
			}
		}
	case *ast.FunctionLiteral:
		if n.Async {
			s.out.WriteString("async ")
		}
		s.out.WriteString("function")
		if n.Generator {
			s.out.WriteString("*")
		}
		s.out.WriteString(" ")
		gen(s.wrap(n.Name))
		genParams(s, n.ParameterList)
		s.out.WriteString(" ")
		gen(s.wrap(n.Body))
	case *ast.ClassLiteral:
		genDecorators(s, n.Decorators)
		s.out.WriteString("class ")
		if n.Name != nil {
			gen(s.wrap(n.Name))
			s.out.WriteString(" ")
		}
		if n.SuperClass != nil {
			s.out.WriteString("extends ")
			gen(s.wrap(n.SuperClass.Expr))
			s.out.WriteString(" ")
		}
		s.out.WriteString("{")
		s.indent++
		for _, elem := range n.Body {
			s.lineAndPad()
			gen(s.wrap(elem.Element))
		}
		s.indent--
		s.lineAndPad()
		s.out.WriteString("}")
	case *ast.ObjectLiteral:
		s.out.WriteString("{")
		s.indent++
		for i, p := range n.Value {
			s.lineAndPad()
			gen(s.wrap(p.Prop))
			if i < len(n.Value)-1 {
				s.out.WriteString(",")
			}
		}
		s.indent--
		if len(n.Value) > 0 {
			s.lineAndPad()
		}
		s.out.WriteString("}")

	case *ast.MethodDefinition:
		genDecorators(s, n.Decorators)
		if n.Static {
			s.out.WriteString("static ")
		}
		switch n.Kind {
		case ast.PropertyKindGet:
			s.out.WriteString("get ")
		case ast.PropertyKindSet:
			s.out.WriteString("set ")
		}
		genKey(s, n.Key, n.Computed)
		genParams(s, n.Body.ParameterList)
		s.out.WriteString(" ")
		gen(s.wrap(n.Body.Body))
	case *ast.FieldDefinition:
		genDecorators(s, n.Decorators)
		if n.Static {
			s.out.WriteString("static ")
		}
		genKey(s, n.Key, n.Computed)
		if n.Initializer != nil {
			s.out.WriteString(" = ")
			gen(s.wrap(n.Initializer.Expr))
		}
		s.out.WriteString(";")
	case *ast.PropertyKeyed:
		genDecorators(s, n.Decorators)
		switch n.Kind {
		case ast.PropertyKindGet, ast.PropertyKindSet, ast.PropertyKindMethod:
			if n.Kind != ast.PropertyKindMethod {
				s.out.WriteString(string(n.Kind) + " ")
			}
			fn, ok := n.Value.Expr.(*ast.FunctionLiteral)
			if !ok {
				panic(fmt.Sprintf("gen: %s property without function value", n.Kind))
			}
			genKey(s, n.Key, n.Computed)
			genParams(s, fn.ParameterList)
			s.out.WriteString(" ")
			gen(s.wrap(fn.Body))
		default:
			genKey(s, n.Key, n.Computed)
			s.out.WriteString(": ")
			gen(s.wrap(n.Value.Expr))
		}
	case *ast.PropertyShort:
		genDecorators(s, n.Decorators)
		gen(s.wrap(n.Name))

	case *ast.BlockStatement:
		s.out.WriteString("{")
		s.indent++
		for _, st := range n.List {
			s.lineAndPad()
			gen(s.wrap(st.Stmt))
		}
		s.indent--
		s.lineAndPad()
		s.out.WriteString("}")
	case *ast.EmptyStatement:
		s.out.WriteString(";")
	case *ast.ExpressionStatement:
		gen(s.wrap(n.Expression.Expr))
		s.out.WriteString(";")
	case *ast.IfStatement:
		s.out.WriteString("if (")
		gen(s.wrap(n.Test.Expr))
		s.out.WriteString(") ")
		gen(s.wrap(n.Consequent.Stmt))
		if n.Alternate != nil {
			s.out.WriteString(" else ")
			gen(s.wrap(n.Alternate.Stmt))
		}
	case *ast.ReturnStatement:
		s.out.WriteString("return")
		if n.Argument != nil {
			s.out.WriteString(" ")
			gen(s.wrap(n.Argument.Expr))
		}
		s.out.WriteString(";")
	case *ast.VariableDeclaration:
		s.out.WriteString(n.Token.String())
		s.out.WriteString(" ")
		for i, d := range n.List {
			gen(s.wrap(d.Target.Expr))
			if d.Initializer != nil {
				s.out.WriteString(" = ")
				gen(s.wrap(d.Initializer.Expr))
			}
			if i < len(n.List)-1 {
				s.out.WriteString(", ")
			}
		}
		s.out.WriteString(";")
	case *ast.FunctionDeclaration:
		gen(s.wrap(n.Function))
	case *ast.ClassDeclaration:
		gen(s.wrap(n.Class))
	default:
		panic(fmt.Sprintf("gen: unexpected node type %T", n))
	}
}

func genParams(s *state, params ast.ParameterList) {
	s.out.WriteString("(")
	for i, p := range params.List {
		gen(s.wrap(p.Target.Expr))
		if p.Initializer != nil {
			s.out.WriteString(" = ")
			gen(s.wrap(p.Initializer.Expr))
		}
		if i < len(params.List)-1 {
			s.out.WriteString(", ")
		}
	}
	s.out.WriteString(")")
}

func genKey(s *state, key *ast.Expression, computed bool) {
	if computed {
		s.out.WriteString("[")
		gen(s.wrap(key.Expr))
		s.out.WriteString("]")
		return
	}
	gen(s.wrap(key.Expr))
}

func genDecorators(s *state, decorators ast.Expressions) {
	for _, d := range decorators {
		s.out.WriteString("@")
		gen(s.wrap(d.Expr))
		s.out.WriteString(" ")
	}
}

func valid(s string) bool {
	for i, r := range s {
		if !unicode.IsLetter(r) && r != '_' && (i == 0 || !unicode.IsDigit(r)) {
			return false
		}
	}
	return len(s) > 0
}
