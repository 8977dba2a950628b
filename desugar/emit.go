package desugar

import (
	"strconv"

	"github.com/t14raptor/go-desugar/ast"
	"github.com/t14raptor/go-desugar/classify"
	"github.com/t14raptor/go-desugar/token"
)

func exprOf(e ast.Expr) *ast.Expression {
	return &ast.Expression{Expr: e}
}

func ident(name string) *ast.Identifier {
	return &ast.Identifier{Name: name}
}

func identExpr(name string) ast.Expr {
	return ident(name)
}

func str(v string) ast.Expr {
	return &ast.StringLiteral{Value: v}
}

func boolean(v bool) ast.Expr {
	return &ast.BooleanLiteral{Value: v}
}

func dot(left ast.Expr, name string) ast.Expr {
	return &ast.DotExpression{Left: exprOf(left), Identifier: ident(name)}
}

func call(callee ast.Expr, args ...ast.Expr) ast.Expr {
	list := make(ast.Expressions, len(args))
	for i, a := range args {
		list[i] = ast.Expression{Expr: a}
	}
	return &ast.CallExpression{Callee: exprOf(callee), ArgumentList: list}
}

func assign(target, value ast.Expr) ast.Expr {
	return &ast.AssignExpression{Operator: token.Assign, Left: exprOf(target), Right: exprOf(value)}
}

func or(left, right ast.Expr) ast.Expr {
	return &ast.BinaryExpression{Operator: token.LogicalOr, Left: exprOf(left), Right: exprOf(right)}
}

func exprStmt(e ast.Expr) ast.Statement {
	return ast.Statement{Stmt: &ast.ExpressionStatement{Expression: exprOf(e)}}
}

func varStmt(name string, init ast.Expr) ast.Statement {
	d := ast.VariableDeclarator{Target: exprOf(identExpr(name))}
	if init != nil {
		d.Initializer = exprOf(init)
	}
	return ast.Statement{Stmt: &ast.VariableDeclaration{Token: token.Var, List: ast.VariableDeclarators{d}}}
}

func returnStmt(e ast.Expr) ast.Statement {
	return ast.Statement{Stmt: &ast.ReturnStatement{Argument: exprOf(e)}}
}

func ifStmt(test ast.Expr, consequent ast.Statement) ast.Statement {
	return ast.Statement{Stmt: &ast.IfStatement{Test: exprOf(test), Consequent: &consequent}}
}

// iife wraps statements into an immediately invoked function expression.
func iife(body ast.Statements) ast.Expr {
	return call(&ast.FunctionLiteral{Body: &ast.BlockStatement{List: body}})
}

// emitter renders the classified units of one declaration site.
type emitter struct {
	alloc    *tempAllocator
	temp     string
	keyTemps map[ast.Node]string
}

func newEmitter(opts *Options, site ast.Node, units []*classify.Unit) *emitter {
	e := &emitter{
		alloc:    newTempAllocator(site),
		keyTemps: make(map[ast.Node]string),
	}
	if len(units) > 0 {
		e.temp = e.alloc.alloc(opts.Temp)
	}
	for _, u := range units {
		if u.Key.Computed {
			e.keyTemps[u.Syntax] = e.alloc.alloc("_key")
		}
	}
	return e
}

// keyTempDecls hoists one `var _key;` per computed-key unit so the snapshot
// assignment inside the declaration has somewhere to land.
func (e *emitter) keyTempDecls(units []*classify.Unit) ast.Statements {
	var out ast.Statements
	for _, u := range units {
		if name, ok := e.keyTemps[u.Syntax]; ok {
			out = append(out, varStmt(name, nil))
		}
	}
	return out
}

// target builds a fresh reference to the object the unit installs onto.
func (e *emitter) target(u *classify.Unit, bind string) ast.Expr {
	switch u.Target {
	case classify.TargetPrototype:
		return dot(identExpr(bind), "prototype")
	default:
		return identExpr(bind)
	}
}

// key builds a fresh expression for the unit's realized property key.
func (e *emitter) key(u *classify.Unit) ast.Expr {
	if u.Key.Computed {
		return identExpr(e.keyTemps[u.Syntax])
	}
	return str(u.Key.Name)
}

// memberChain emits the composition statements for one member unit:
//
//	_temp = d1(T, "k", _temp = d2(T, "k",
//	    _temp = Object.getOwnPropertyDescriptor(T, "k")) || _temp) || _temp;
//	if (_temp) Object.defineProperty(T, "k", _temp);
//
// The first-listed decorator is the outermost call; the chain starts from
// the descriptor the bare declaration installed, and the guarded
// define-property runs only when some decorator replaced it.
func (e *emitter) memberChain(u *classify.Unit, bind string) ast.Statements {
	inner := assign(identExpr(e.temp),
		call(dot(identExpr("Object"), "getOwnPropertyDescriptor"), e.target(u, bind), e.key(u)))
	for i := len(u.Decorators) - 1; i >= 0; i-- {
		inner = assign(identExpr(e.temp),
			or(call(u.Decorators[i].Expr, e.target(u, bind), e.key(u), inner), identExpr(e.temp)))
	}
	install := exprStmt(call(dot(identExpr("Object"), "defineProperty"),
		e.target(u, bind), e.key(u), identExpr(e.temp)))
	return ast.Statements{
		exprStmt(inner),
		ifStmt(identExpr(e.temp), install),
	}
}

// classChain emits the rebinding expression for a class-level unit:
//
//	Foo = d1(Foo = d2(Foo) || Foo) || Foo
//
// A decorator that returns nothing keeps the current constructor via the
// `|| Foo` fallback, so an all-keep chain rebinds the original value.
func classChain(bind string, decorators ast.Expressions) ast.Expr {
	var inner ast.Expr = identExpr(bind)
	for i := len(decorators) - 1; i >= 0; i-- {
		inner = assign(identExpr(bind), or(call(decorators[i].Expr, inner), identExpr(bind)))
	}
	return inner
}

// strip removes decorator syntax from a class body and rewrites each
// decorated computed key into its snapshot assignment `[_key = expr]`.
func (e *emitter) strip(c *ast.ClassLiteral) {
	c.Decorators = nil
	for i := range c.Body {
		switch elem := c.Body[i].Element.(type) {
		case *ast.MethodDefinition:
			elem.Decorators = nil
			if name, ok := e.keyTemps[elem]; ok {
				elem.Key = exprOf(assign(identExpr(name), elem.Key.Expr))
			}
		case *ast.FieldDefinition:
			elem.Decorators = nil
		}
	}
}

func (e *emitter) stripObject(o *ast.ObjectLiteral) {
	for i := range o.Value {
		switch prop := o.Value[i].Prop.(type) {
		case *ast.PropertyKeyed:
			prop.Decorators = nil
			if name, ok := e.keyTemps[prop]; ok {
				prop.Key = exprOf(assign(identExpr(name), prop.Key.Expr))
			}
		case *ast.PropertyShort:
			prop.Decorators = nil
		}
	}
}

// keyedValue is a plain `name: value` property for descriptor literals.
func keyedValue(name string, value ast.Expr) ast.Property {
	return ast.Property{Prop: &ast.PropertyKeyed{
		Key:   exprOf(identExpr(name)),
		Kind:  ast.PropertyKindValue,
		Value: exprOf(value),
	}}
}

// dataDescriptor renders the default descriptor literal of a bare method.
func dataDescriptor(fn *ast.FunctionLiteral) ast.Expr {
	return &ast.ObjectLiteral{Value: ast.Properties{
		keyedValue("value", fn),
		keyedValue("enumerable", boolean(false)),
		keyedValue("configurable", boolean(true)),
		keyedValue("writable", boolean(true)),
	}}
}

// accessorDescriptor renders the default descriptor literal of a get/set
// pair; absent halves are omitted. Used by the constructor-function form
// only: under the class-based form the chain reads its initial descriptor
// off the class, where accessor members are installed enumerable: false,
// so decorators observe a different enumerable default between the forms.
func accessorDescriptor(get, set *ast.FunctionLiteral) ast.Expr {
	var props ast.Properties
	if get != nil {
		props = append(props, keyedValue("get", get))
	}
	if set != nil {
		props = append(props, keyedValue("set", set))
	}
	props = append(props,
		keyedValue("enumerable", boolean(true)),
		keyedValue("configurable", boolean(true)),
	)
	return &ast.ObjectLiteral{Value: props}
}

// literalKeyName resolves a non-computed member key to its property name.
func literalKeyName(key *ast.Expression) string {
	switch k := key.Expr.(type) {
	case *ast.Identifier:
		return k.Name
	case *ast.StringLiteral:
		return k.Value
	case *ast.NumberLiteral:
		if k.Literal != "" {
			return k.Literal
		}
		return strconv.FormatFloat(k.Value, 'f', -1, 64)
	}
	return ""
}

// installKey builds the key argument of a define-property install. For a
// decorated computed key, strip already rewrote the key into its snapshot
// assignment, which is reused here verbatim.
func installKey(key *ast.Expression, computed bool) ast.Expr {
	if computed {
		return key.Expr
	}
	return str(literalKeyName(key))
}

// constructorFunction lowers a class body to explicit constructor-function
// and prototype-assignment syntax: a function declaration carrying the
// instance field initializers, one define-property call per member, and
// plain assignments for static fields.
func (e *emitter) constructorFunction(c *ast.ClassLiteral, bind string) ast.Statements {
	ctor := c.Constructor()

	var fieldInits ast.Statements
	for _, elem := range c.Body {
		f, ok := elem.Element.(*ast.FieldDefinition)
		if !ok || f.Static {
			continue
		}
		init := identExpr("undefined")
		if f.Initializer != nil {
			init = f.Initializer.Expr
		}
		var memberRef ast.Expr
		if f.Computed {
			memberRef = &ast.MemberExpression{Object: exprOf(&ast.ThisExpression{}), Property: exprOf(f.Key.Expr)}
		} else {
			memberRef = dot(&ast.ThisExpression{}, literalKeyName(f.Key))
		}
		fieldInits = append(fieldInits, exprStmt(assign(memberRef, init)))
	}

	fn := &ast.FunctionLiteral{
		Name: ident(bind),
		Body: &ast.BlockStatement{List: fieldInits},
	}
	if ctor != nil {
		fn.ParameterList = ctor.Body.ParameterList
		fn.Body.List = append(fn.Body.List, ctor.Body.Body.List...)
	}
	out := ast.Statements{{Stmt: &ast.FunctionDeclaration{Function: fn}}}

	type pairKey struct {
		name   string
		static bool
	}
	installed := make(map[pairKey]bool)

	for _, elem := range c.Body {
		switch m := elem.Element.(type) {
		case *ast.MethodDefinition:
			if m == ctor {
				continue
			}
			target := identExpr(bind)
			if !m.Static {
				target = dot(identExpr(bind), "prototype")
			}

			var desc ast.Expr
			switch m.Kind {
			case ast.PropertyKindGet, ast.PropertyKindSet:
				if !m.Computed {
					k := pairKey{literalKeyName(m.Key), m.Static}
					if installed[k] {
						continue
					}
					installed[k] = true
					get, set := accessorPair(c.Body, k.name, k.static)
					desc = accessorDescriptor(get, set)
				} else if m.Kind == ast.PropertyKindGet {
					desc = accessorDescriptor(m.Body, nil)
				} else {
					desc = accessorDescriptor(nil, m.Body)
				}
			default:
				desc = dataDescriptor(m.Body)
			}
			out = append(out, exprStmt(call(dot(identExpr("Object"), "defineProperty"),
				target, installKey(m.Key, m.Computed), desc)))

		case *ast.FieldDefinition:
			if !m.Static {
				continue
			}
			init := identExpr("undefined")
			if m.Initializer != nil {
				init = m.Initializer.Expr
			}
			var memberRef ast.Expr
			if m.Computed {
				memberRef = &ast.MemberExpression{Object: exprOf(identExpr(bind)), Property: exprOf(m.Key.Expr)}
			} else {
				memberRef = dot(identExpr(bind), literalKeyName(m.Key))
			}
			out = append(out, exprStmt(assign(memberRef, init)))
		}
	}
	return out
}

func accessorPair(body ast.ClassElements, name string, static bool) (get, set *ast.FunctionLiteral) {
	for _, elem := range body {
		m, ok := elem.Element.(*ast.MethodDefinition)
		if !ok || m.Computed || m.Static != static || literalKeyName(m.Key) != name {
			continue
		}
		switch m.Kind {
		case ast.PropertyKindGet:
			get = m.Body
		case ast.PropertyKindSet:
			set = m.Body
		}
	}
	return get, set
}
