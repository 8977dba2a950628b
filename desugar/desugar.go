// Package desugar lowers decorator syntax on classes and object literals
// into plain declarations followed by explicit descriptor composition.
//
// Each decorated declaration becomes an immediately invoked function
// expression that declares the bare form, runs every member chain against
// the installed descriptors, rebinds the class through its class-level
// chain and returns the final binding. Evaluation order of the emitted
// code matches the original source: computed keys are snapshotted in
// declaration order, decorator expressions run innermost-first per chain
// and member chains run in source order.
package desugar

import (
	"errors"
	"sync"

	"github.com/t14raptor/go-desugar/ast"
	"github.com/t14raptor/go-desugar/classify"
	"github.com/t14raptor/go-desugar/token"
)

// Program rewrites every decorated declaration in p in place. Declarations
// that violate the decorator rules are left untouched and reported; the
// rest of the program is still lowered.
func Program(p *ast.Program, opts *Options) error {
	v := &pass{opts: opts.norm()}
	v.V = v
	p.VisitWith(v)
	return errors.Join(v.errs...)
}

// Programs lowers a batch of independent programs concurrently. Programs
// share no state after parsing, so each runs on its own goroutine; the
// result joins the per-program errors in input order.
func Programs(programs []*ast.Program, opts *Options) error {
	opts = opts.norm()
	errs := make([]error, len(programs))
	var wg sync.WaitGroup
	for i, p := range programs {
		wg.Add(1)
		go func(i int, p *ast.Program) {
			defer wg.Done()
			errs[i] = Program(p, opts)
		}(i, p)
	}
	wg.Wait()
	return errors.Join(errs...)
}

// pass walks the tree bottom-up so that decorated declarations nested in
// method bodies or decorator arguments are lowered before their enclosing
// declaration is classified.
type pass struct {
	ast.NoopVisitor

	opts *Options
	errs []error
}

func (v *pass) VisitStatement(n *ast.Statement) {
	n.VisitChildrenWith(v.V)

	decl, ok := n.Stmt.(*ast.ClassDeclaration)
	if !ok || !decl.Class.Decorated() {
		return
	}
	name := "_class"
	if decl.Class.Name != nil {
		name = decl.Class.Name.Name
	}
	expr, err := v.lowerClass(decl.Class, name)
	if err != nil {
		v.errs = append(v.errs, err)
		return
	}
	n.Stmt = &ast.VariableDeclaration{
		Token: token.Var,
		List: ast.VariableDeclarators{{
			Target:      exprOf(identExpr(name)),
			Initializer: exprOf(expr),
		}},
	}
	v.opts.Logger.Debug("lowered decorated class declaration",
		"name", name, "form", v.opts.Form.String())
}

func (v *pass) VisitExpression(n *ast.Expression) {
	n.VisitChildrenWith(v.V)

	switch e := n.Expr.(type) {
	case *ast.ClassLiteral:
		if !e.Decorated() {
			return
		}
		name := ""
		if e.Name != nil {
			name = e.Name.Name
		}
		expr, err := v.lowerClass(e, name)
		if err != nil {
			v.errs = append(v.errs, err)
			return
		}
		n.Expr = expr
		v.opts.Logger.Debug("lowered decorated class expression",
			"name", name, "form", v.opts.Form.String())
	case *ast.ObjectLiteral:
		if !e.Decorated() {
			return
		}
		expr, err := v.lowerObject(e)
		if err != nil {
			v.errs = append(v.errs, err)
			return
		}
		n.Expr = expr
		v.opts.Logger.Debug("lowered decorated object literal")
	}
}

// lowerClass turns a decorated class into an immediately invoked function
// expression that declares the class, runs the member and class chains and
// returns the (possibly replaced) binding.
func (v *pass) lowerClass(c *ast.ClassLiteral, bind string) (ast.Expr, error) {
	cls, err := classify.Class(c)
	if err != nil {
		return nil, err
	}

	e := newEmitter(v.opts, c, cls.Units)
	if bind == "" {
		bind = e.alloc.alloc("_class")
	}
	e.strip(c)

	form := v.opts.Form
	if form == FormConstructorFunction && c.SuperClass != nil {
		// Lowering inheritance to prototype wiring is outside the
		// engine's scope; keep class syntax for this declaration.
		form = FormClassBased
		v.opts.Logger.Debug("class has a superclass, emitting class syntax",
			"name", bind)
	}

	body := e.keyTempDecls(cls.Units)
	if form == FormConstructorFunction {
		body = append(body, e.constructorFunction(c, bind)...)
	} else {
		if c.Name == nil {
			c.Name = ident(bind)
		}
		body = append(body, ast.Statement{Stmt: &ast.ClassDeclaration{Class: c}})
	}
	if len(cls.Units) > 0 {
		body = append(body, varStmt(e.temp, nil))
		for _, u := range cls.Units {
			body = append(body, e.memberChain(u, bind)...)
		}
	}
	if cls.Class != nil {
		body = append(body, exprStmt(classChain(bind, cls.Class.Decorators)))
	}
	body = append(body, returnStmt(identExpr(bind)))
	return iife(body), nil
}

// lowerObject turns a decorated object literal into an immediately invoked
// function expression binding the bare literal, running one chain per
// decorated property against the bound object and returning it.
func (v *pass) lowerObject(o *ast.ObjectLiteral) (ast.Expr, error) {
	cls, err := classify.Object(o)
	if err != nil {
		return nil, err
	}

	e := newEmitter(v.opts, o, cls.Units)
	bind := e.alloc.alloc("_obj")
	e.stripObject(o)
	if v.opts.Form == FormConstructorFunction {
		rewriteMethodProperties(o)
	}

	body := e.keyTempDecls(cls.Units)
	body = append(body, varStmt(bind, o))
	if len(cls.Units) > 0 {
		body = append(body, varStmt(e.temp, nil))
		for _, u := range cls.Units {
			body = append(body, e.memberChain(u, bind)...)
		}
	}
	body = append(body, returnStmt(identExpr(bind)))
	return iife(body), nil
}

// rewriteMethodProperties replaces shorthand method properties with
// equivalent `key: function () {}` value properties. Accessor properties
// keep their literal syntax, which predates shorthand methods.
func rewriteMethodProperties(o *ast.ObjectLiteral) {
	for i := range o.Value {
		prop, ok := o.Value[i].Prop.(*ast.PropertyKeyed)
		if !ok || prop.Kind != ast.PropertyKindMethod {
			continue
		}
		prop.Kind = ast.PropertyKindValue
	}
}
