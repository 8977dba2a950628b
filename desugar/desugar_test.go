package desugar_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/t14raptor/go-desugar/ast"
	"github.com/t14raptor/go-desugar/desugar"
	"github.com/t14raptor/go-desugar/generator"
	"github.com/t14raptor/go-desugar/token"
)

var spaces = regexp.MustCompile(`\s+`)

func norm(s string) string {
	return strings.TrimSpace(spaces.ReplaceAllString(s, " "))
}

func xp(e ast.Expr) *ast.Expression {
	return &ast.Expression{Expr: e}
}

func id(name string) ast.Expr {
	return &ast.Identifier{Name: name}
}

func decorators(list ...ast.Expr) ast.Expressions {
	out := make(ast.Expressions, len(list))
	for i, e := range list {
		out[i] = ast.Expression{Expr: e}
	}
	return out
}

func fnLit(params ...string) *ast.FunctionLiteral {
	fn := &ast.FunctionLiteral{Body: &ast.BlockStatement{}}
	for _, p := range params {
		fn.ParameterList.List = append(fn.ParameterList.List, ast.VariableDeclarator{Target: xp(id(p))})
	}
	return fn
}

func method(name string, decs ...ast.Expr) ast.ClassElement {
	return ast.ClassElement{Element: &ast.MethodDefinition{
		Key:        xp(id(name)),
		Kind:       ast.PropertyKindMethod,
		Body:       fnLit(),
		Decorators: decorators(decs...),
	}}
}

func staticMethod(name string, decs ...ast.Expr) ast.ClassElement {
	elem := method(name, decs...)
	elem.Element.(*ast.MethodDefinition).Static = true
	return elem
}

func accessor(kind ast.PropertyKind, name string, fn *ast.FunctionLiteral, decs ...ast.Expr) ast.ClassElement {
	return ast.ClassElement{Element: &ast.MethodDefinition{
		Key:        xp(id(name)),
		Kind:       kind,
		Body:       fn,
		Decorators: decorators(decs...),
	}}
}

func classProgram(c *ast.ClassLiteral) *ast.Program {
	return &ast.Program{Body: ast.Statements{{Stmt: &ast.ClassDeclaration{Class: c}}}}
}

func run(t *testing.T, p *ast.Program, opts *desugar.Options) string {
	t.Helper()
	if err := desugar.Program(p, opts); err != nil {
		t.Fatalf("Program() failed: %v", err)
	}
	return norm(generator.Generate(p))
}

func TestClassDeclaration(t *testing.T) {
	p := classProgram(&ast.ClassLiteral{
		Name:       &ast.Identifier{Name: "Foo"},
		Decorators: decorators(id("frozen")),
		Body:       ast.ClassElements{method("bar", id("readonly"))},
	})
	got := run(t, p, nil)
	want := `var Foo = (function () { class Foo { bar() { } } var _temp; ` +
		`_temp = readonly(Foo.prototype, "bar", _temp = Object.getOwnPropertyDescriptor(Foo.prototype, "bar")) || _temp; ` +
		`if (_temp) Object.defineProperty(Foo.prototype, "bar", _temp); ` +
		`Foo = frozen(Foo) || Foo; return Foo; })();`
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestChainOrder(t *testing.T) {
	// The first-listed decorator wraps outermost; the last-listed one
	// receives the declaration's own descriptor.
	p := classProgram(&ast.ClassLiteral{
		Name: &ast.Identifier{Name: "Foo"},
		Body: ast.ClassElements{method("bar", id("f"), id("g"))},
	})
	got := run(t, p, nil)
	want := `var Foo = (function () { class Foo { bar() { } } var _temp; ` +
		`_temp = f(Foo.prototype, "bar", _temp = g(Foo.prototype, "bar", _temp = Object.getOwnPropertyDescriptor(Foo.prototype, "bar")) || _temp) || _temp; ` +
		`if (_temp) Object.defineProperty(Foo.prototype, "bar", _temp); ` +
		`return Foo; })();`
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestDecoratorFactoryExpression(t *testing.T) {
	// @F("color") @G — the factory call is the decorator expression and
	// is re-evaluated in chain position, outermost first.
	factory := &ast.CallExpression{
		Callee:       xp(id("F")),
		ArgumentList: ast.Expressions{{Expr: &ast.StringLiteral{Value: "color"}}},
	}
	p := classProgram(&ast.ClassLiteral{
		Name: &ast.Identifier{Name: "Foo"},
		Body: ast.ClassElements{method("bar", factory, id("G"))},
	})
	got := run(t, p, nil)
	want := `var Foo = (function () { class Foo { bar() { } } var _temp; ` +
		`_temp = F("color")(Foo.prototype, "bar", _temp = G(Foo.prototype, "bar", _temp = Object.getOwnPropertyDescriptor(Foo.prototype, "bar")) || _temp) || _temp; ` +
		`if (_temp) Object.defineProperty(Foo.prototype, "bar", _temp); ` +
		`return Foo; })();`
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestStaticMemberTargetsConstructor(t *testing.T) {
	p := classProgram(&ast.ClassLiteral{
		Name: &ast.Identifier{Name: "Foo"},
		Body: ast.ClassElements{staticMethod("create", id("dec"))},
	})
	got := run(t, p, nil)
	want := `var Foo = (function () { class Foo { static create() { } } var _temp; ` +
		`_temp = dec(Foo, "create", _temp = Object.getOwnPropertyDescriptor(Foo, "create")) || _temp; ` +
		`if (_temp) Object.defineProperty(Foo, "create", _temp); ` +
		`return Foo; })();`
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestAccessorPairSingleChain(t *testing.T) {
	// A decorated getter and its undecorated setter form one unit; the
	// chain runs once against the combined accessor descriptor.
	p := classProgram(&ast.ClassLiteral{
		Name: &ast.Identifier{Name: "Foo"},
		Body: ast.ClassElements{
			accessor(ast.PropertyKindGet, "x", fnLit(), id("nonenum")),
			accessor(ast.PropertyKindSet, "x", fnLit("v")),
		},
	})
	got := run(t, p, nil)
	want := `var Foo = (function () { class Foo { get x() { } set x(v) { } } var _temp; ` +
		`_temp = nonenum(Foo.prototype, "x", _temp = Object.getOwnPropertyDescriptor(Foo.prototype, "x")) || _temp; ` +
		`if (_temp) Object.defineProperty(Foo.prototype, "x", _temp); ` +
		`return Foo; })();`
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestClassExpression(t *testing.T) {
	p := &ast.Program{Body: ast.Statements{{Stmt: &ast.VariableDeclaration{
		Token: token.Var,
		List: ast.VariableDeclarators{{
			Target:      xp(id("C")),
			Initializer: xp(&ast.ClassLiteral{Decorators: decorators(id("dec"))}),
		}},
	}}}}
	got := run(t, p, nil)
	want := `var C = (function () { class _class { } _class = dec(_class) || _class; return _class; })();`
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestObjectLiteral(t *testing.T) {
	p := &ast.Program{Body: ast.Statements{{Stmt: &ast.VariableDeclaration{
		Token: token.Var,
		List: ast.VariableDeclarators{{
			Target: xp(id("o")),
			Initializer: xp(&ast.ObjectLiteral{Value: ast.Properties{
				{Prop: &ast.PropertyKeyed{
					Key:        xp(id("bar")),
					Kind:       ast.PropertyKindMethod,
					Value:      xp(fnLit()),
					Decorators: decorators(id("readonly")),
				}},
			}}),
		}},
	}}}}
	got := run(t, p, nil)
	want := `var o = (function () { var _obj = { bar() { } }; var _temp; ` +
		`_temp = readonly(_obj, "bar", _temp = Object.getOwnPropertyDescriptor(_obj, "bar")) || _temp; ` +
		`if (_temp) Object.defineProperty(_obj, "bar", _temp); ` +
		`return _obj; })();`
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestObjectLiteralConstructorFunctionForm(t *testing.T) {
	// Shorthand methods become plain function-valued properties; literal
	// accessor syntax predates shorthand methods and stays as written.
	p := &ast.Program{Body: ast.Statements{{Stmt: &ast.VariableDeclaration{
		Token: token.Var,
		List: ast.VariableDeclarators{{
			Target: xp(id("o")),
			Initializer: xp(&ast.ObjectLiteral{Value: ast.Properties{
				{Prop: &ast.PropertyKeyed{
					Key:        xp(id("bar")),
					Kind:       ast.PropertyKindMethod,
					Value:      xp(fnLit()),
					Decorators: decorators(id("readonly")),
				}},
				{Prop: &ast.PropertyKeyed{
					Key:   xp(id("x")),
					Kind:  ast.PropertyKindGet,
					Value: xp(fnLit()),
				}},
			}}),
		}},
	}}}}
	got := run(t, p, &desugar.Options{Form: desugar.FormConstructorFunction})
	want := `var o = (function () { var _obj = { bar: function () { }, get x() { } }; var _temp; ` +
		`_temp = readonly(_obj, "bar", _temp = Object.getOwnPropertyDescriptor(_obj, "bar")) || _temp; ` +
		`if (_temp) Object.defineProperty(_obj, "bar", _temp); ` +
		`return _obj; })();`
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestComputedKeySnapshot(t *testing.T) {
	// The key expression stays in declaration position, wrapped in a
	// snapshot assignment, so its side effects run exactly once and in
	// the original order.
	key := &ast.BinaryExpression{
		Operator: token.Plus,
		Left:     xp(&ast.StringLiteral{Value: "a"}),
		Right:    xp(id("suffix")),
	}
	p := classProgram(&ast.ClassLiteral{
		Name: &ast.Identifier{Name: "Foo"},
		Body: ast.ClassElements{{Element: &ast.MethodDefinition{
			Key:        xp(key),
			Kind:       ast.PropertyKindMethod,
			Body:       fnLit(),
			Computed:   true,
			Decorators: decorators(id("dec")),
		}}},
	})
	got := run(t, p, nil)
	want := `var Foo = (function () { var _key; class Foo { [_key = "a" + suffix]() { } } var _temp; ` +
		`_temp = dec(Foo.prototype, _key, _temp = Object.getOwnPropertyDescriptor(Foo.prototype, _key)) || _temp; ` +
		`if (_temp) Object.defineProperty(Foo.prototype, _key, _temp); ` +
		`return Foo; })();`
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestConstructorFunctionForm(t *testing.T) {
	ctor := &ast.MethodDefinition{
		Key:  xp(id("constructor")),
		Kind: ast.PropertyKindMethod,
		Body: fnLit("a"),
	}
	ctor.Body.Body.List = ast.Statements{{Stmt: &ast.ExpressionStatement{
		Expression: xp(&ast.AssignExpression{
			Operator: token.Assign,
			Left:     xp(&ast.DotExpression{Left: xp(&ast.ThisExpression{}), Identifier: &ast.Identifier{Name: "a"}}),
			Right:    xp(id("a")),
		}),
	}}}
	p := classProgram(&ast.ClassLiteral{
		Name:       &ast.Identifier{Name: "Foo"},
		Decorators: decorators(id("frozen")),
		Body: ast.ClassElements{
			{Element: ctor},
			method("bar", id("readonly")),
		},
	})
	got := run(t, p, &desugar.Options{Form: desugar.FormConstructorFunction})
	want := `var Foo = (function () { function Foo(a) { this.a = a; } ` +
		`Object.defineProperty(Foo.prototype, "bar", { value: function () { }, enumerable: false, configurable: true, writable: true }); ` +
		`var _temp; ` +
		`_temp = readonly(Foo.prototype, "bar", _temp = Object.getOwnPropertyDescriptor(Foo.prototype, "bar")) || _temp; ` +
		`if (_temp) Object.defineProperty(Foo.prototype, "bar", _temp); ` +
		`Foo = frozen(Foo) || Foo; return Foo; })();`
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestConstructorFunctionAccessorPair(t *testing.T) {
	p := classProgram(&ast.ClassLiteral{
		Name: &ast.Identifier{Name: "Foo"},
		Body: ast.ClassElements{
			accessor(ast.PropertyKindGet, "x", fnLit(), id("dec")),
			accessor(ast.PropertyKindSet, "x", fnLit("v")),
		},
	})
	got := run(t, p, &desugar.Options{Form: desugar.FormConstructorFunction})
	want := `var Foo = (function () { function Foo() { } ` +
		`Object.defineProperty(Foo.prototype, "x", { get: function () { }, set: function (v) { }, enumerable: true, configurable: true }); ` +
		`var _temp; ` +
		`_temp = dec(Foo.prototype, "x", _temp = Object.getOwnPropertyDescriptor(Foo.prototype, "x")) || _temp; ` +
		`if (_temp) Object.defineProperty(Foo.prototype, "x", _temp); ` +
		`return Foo; })();`
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestConstructorFunctionKeepsSuperclass(t *testing.T) {
	// Prototype wiring for inheritance is not lowered; a subclass keeps
	// class syntax even under the constructor-function form.
	p := classProgram(&ast.ClassLiteral{
		Name:       &ast.Identifier{Name: "Foo"},
		SuperClass: xp(id("Base")),
		Body:       ast.ClassElements{method("bar", id("dec"))},
	})
	got := run(t, p, &desugar.Options{Form: desugar.FormConstructorFunction})
	if !strings.Contains(got, "class Foo extends Base {") {
		t.Errorf("expected class syntax for subclass, got\n%s", got)
	}
}

func TestDecoratedFieldFails(t *testing.T) {
	p := classProgram(&ast.ClassLiteral{
		Name: &ast.Identifier{Name: "Foo"},
		Body: ast.ClassElements{{Element: &ast.FieldDefinition{
			Key:        xp(id("x")),
			Decorators: decorators(id("dec")),
		}}},
	})
	err := desugar.Program(p, nil)
	if err == nil {
		t.Fatal("expected an error for a decorated field")
	}
	if !strings.Contains(err.Error(), "data property") {
		t.Errorf("unexpected error: %v", err)
	}
	if got := norm(generator.Generate(p)); !strings.Contains(got, "class Foo") {
		t.Errorf("failed declaration should be left untouched, got\n%s", got)
	}
}

func TestTempNameCollision(t *testing.T) {
	// A binding named _temp anywhere in the declaration forces the next
	// free name.
	p := classProgram(&ast.ClassLiteral{
		Name: &ast.Identifier{Name: "Foo"},
		Body: ast.ClassElements{method("bar", id("_temp"))},
	})
	got := run(t, p, nil)
	want := `var Foo = (function () { class Foo { bar() { } } var _temp2; ` +
		`_temp2 = _temp(Foo.prototype, "bar", _temp2 = Object.getOwnPropertyDescriptor(Foo.prototype, "bar")) || _temp2; ` +
		`if (_temp2) Object.defineProperty(Foo.prototype, "bar", _temp2); ` +
		`return Foo; })();`
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestUndecoratedUntouched(t *testing.T) {
	p := classProgram(&ast.ClassLiteral{
		Name: &ast.Identifier{Name: "Foo"},
		Body: ast.ClassElements{method("bar")},
	})
	got := run(t, p, nil)
	want := `class Foo { bar() { } }`
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestNestedDeclaration(t *testing.T) {
	inner := &ast.ClassLiteral{
		Name:       &ast.Identifier{Name: "A"},
		Decorators: decorators(id("dec")),
	}
	fn := fnLit()
	fn.Name = &ast.Identifier{Name: "f"}
	fn.Body.List = ast.Statements{{Stmt: &ast.ClassDeclaration{Class: inner}}}
	p := &ast.Program{Body: ast.Statements{{Stmt: &ast.FunctionDeclaration{Function: fn}}}}
	got := run(t, p, nil)
	want := `function f() { var A = (function () { class A { } A = dec(A) || A; return A; })(); }`
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestPrograms(t *testing.T) {
	good := classProgram(&ast.ClassLiteral{
		Name: &ast.Identifier{Name: "A"},
		Body: ast.ClassElements{method("bar", id("dec"))},
	})
	bad := classProgram(&ast.ClassLiteral{
		Name: &ast.Identifier{Name: "B"},
		Body: ast.ClassElements{{Element: &ast.FieldDefinition{
			Key:        xp(id("x")),
			Decorators: decorators(id("dec")),
		}}},
	})
	err := desugar.Programs([]*ast.Program{good, bad}, nil)
	if err == nil {
		t.Fatal("expected the bad program's error to surface")
	}
	if got := norm(generator.Generate(good)); !strings.Contains(got, "var A = (function () {") {
		t.Errorf("good program should still be lowered, got\n%s", got)
	}
}
