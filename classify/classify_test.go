package classify_test

import (
	"strings"
	"testing"

	"github.com/t14raptor/go-desugar/ast"
	"github.com/t14raptor/go-desugar/classify"
	"github.com/t14raptor/go-desugar/descriptor"
)

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

func fnLit() *ast.FunctionLiteral {
	return &ast.FunctionLiteral{Body: &ast.BlockStatement{}}
}

func method(key ast.Expr, kind ast.PropertyKind, static, computed bool, decs ...ast.Expr) ast.ClassElement {
	return ast.ClassElement{Element: &ast.MethodDefinition{
		Key:        xp(key),
		Kind:       kind,
		Body:       fnLit(),
		Static:     static,
		Computed:   computed,
		Decorators: decorators(decs...),
	}}
}

func TestClassUnits(t *testing.T) {
	c := &ast.ClassLiteral{
		Name:       &ast.Identifier{Name: "Foo"},
		Decorators: decorators(id("frozen")),
		Body: ast.ClassElements{
			method(id("bar"), ast.PropertyKindMethod, false, false, id("d")),
			method(id("create"), ast.PropertyKindMethod, true, false, id("e")),
			method(id("plain"), ast.PropertyKindMethod, false, false),
		},
	}
	got, err := classify.Class(c)
	if err != nil {
		t.Fatalf("Class() failed: %v", err)
	}
	if got.Class == nil || got.Class.Level != classify.LevelClass || got.Class.Target != classify.TargetClass {
		t.Fatalf("expected a class-level unit, got %+v", got.Class)
	}
	if len(got.Units) != 2 {
		t.Fatalf("expected 2 member units, got %d", len(got.Units))
	}
	bar, create := got.Units[0], got.Units[1]
	if bar.Key.Name != "bar" || bar.Target != classify.TargetPrototype || bar.Static {
		t.Errorf("bar unit misclassified: %+v", bar)
	}
	if create.Key.Name != "create" || create.Target != classify.TargetConstructor || !create.Static {
		t.Errorf("create unit misclassified: %+v", create)
	}
	if bar.Kind != descriptor.Data || bar.Method == nil {
		t.Errorf("bar unit should carry its method body")
	}
}

func TestAccessorPairMerges(t *testing.T) {
	// One half decorated, one not: still a single unit with both halves.
	c := &ast.ClassLiteral{
		Body: ast.ClassElements{
			method(id("x"), ast.PropertyKindGet, false, false, id("d")),
			method(id("x"), ast.PropertyKindSet, false, false),
		},
	}
	got, err := classify.Class(c)
	if err != nil {
		t.Fatalf("Class() failed: %v", err)
	}
	if len(got.Units) != 1 {
		t.Fatalf("expected 1 merged unit, got %d", len(got.Units))
	}
	u := got.Units[0]
	if u.Kind != descriptor.Accessor || u.Get == nil || u.Set == nil {
		t.Errorf("merged unit should carry both halves: %+v", u)
	}
	if len(u.Decorators) != 1 {
		t.Errorf("merged unit should carry the getter's decorator")
	}
}

func TestAccessorPairStaticDistinct(t *testing.T) {
	// Same name, different placement: two units.
	c := &ast.ClassLiteral{
		Body: ast.ClassElements{
			method(id("x"), ast.PropertyKindGet, false, false, id("d")),
			method(id("x"), ast.PropertyKindGet, true, false, id("d")),
		},
	}
	got, err := classify.Class(c)
	if err != nil {
		t.Fatalf("Class() failed: %v", err)
	}
	if len(got.Units) != 2 {
		t.Fatalf("expected 2 units, got %d", len(got.Units))
	}
}

func TestUndecoratedAccessorDropped(t *testing.T) {
	c := &ast.ClassLiteral{
		Body: ast.ClassElements{
			method(id("x"), ast.PropertyKindGet, false, false),
			method(id("x"), ast.PropertyKindSet, false, false),
		},
	}
	got, err := classify.Class(c)
	if err != nil {
		t.Fatalf("Class() failed: %v", err)
	}
	if len(got.Units) != 0 {
		t.Errorf("undecorated pair should produce no units, got %d", len(got.Units))
	}
}

func TestConstantKeyFolding(t *testing.T) {
	c := &ast.ClassLiteral{
		Body: ast.ClassElements{
			method(&ast.StringLiteral{Value: "a b"}, ast.PropertyKindMethod, false, false, id("d")),
			method(&ast.StringLiteral{Value: "lit"}, ast.PropertyKindMethod, false, true, id("d")),
			method(&ast.NumberLiteral{Value: 1.5}, ast.PropertyKindMethod, false, false, id("d")),
		},
	}
	got, err := classify.Class(c)
	if err != nil {
		t.Fatalf("Class() failed: %v", err)
	}
	for i, want := range []string{"a b", "lit", "1.5"} {
		u := got.Units[i]
		if u.Key.Computed || u.Key.Name != want {
			t.Errorf("unit %d: key = %+v; want constant %q", i, u.Key, want)
		}
	}
}

func TestComputedKeyCaptured(t *testing.T) {
	key := &ast.BinaryExpression{
		Operator: 0,
		Left:     xp(id("a")),
		Right:    xp(id("b")),
	}
	c := &ast.ClassLiteral{
		Body: ast.ClassElements{
			method(key, ast.PropertyKindMethod, false, true, id("d")),
		},
	}
	got, err := classify.Class(c)
	if err != nil {
		t.Fatalf("Class() failed: %v", err)
	}
	u := got.Units[0]
	if !u.Key.Computed || u.Key.Expr == nil {
		t.Errorf("non-constant computed key should stay captured: %+v", u.Key)
	}
}

func TestDecoratedFieldRejected(t *testing.T) {
	c := &ast.ClassLiteral{
		Body: ast.ClassElements{{Element: &ast.FieldDefinition{
			Key:        xp(id("x")),
			Decorators: decorators(id("d")),
		}}},
	}
	if _, err := classify.Class(c); err == nil || !strings.Contains(err.Error(), "data property") {
		t.Errorf("expected a data-property error, got %v", err)
	}
}

func TestDecoratedConstructorRejected(t *testing.T) {
	c := &ast.ClassLiteral{
		Body: ast.ClassElements{
			method(id("constructor"), ast.PropertyKindMethod, false, false, id("d")),
		},
	}
	if _, err := classify.Class(c); err == nil || !strings.Contains(err.Error(), "constructor") {
		t.Errorf("expected a constructor error, got %v", err)
	}
}

func TestComputedConstructorKeyIsOrdinaryMember(t *testing.T) {
	// ["constructor"]() {} is a plain prototype method, not the
	// constructor; folding the constant key must not change that.
	c := &ast.ClassLiteral{
		Body: ast.ClassElements{
			method(&ast.StringLiteral{Value: "constructor"}, ast.PropertyKindMethod, false, true, id("d")),
		},
	}
	got, err := classify.Class(c)
	if err != nil {
		t.Fatalf("Class() failed: %v", err)
	}
	if len(got.Units) != 1 {
		t.Fatalf("expected 1 member unit, got %d", len(got.Units))
	}
	u := got.Units[0]
	if u.Key.Name != "constructor" || u.Key.Computed || u.Target != classify.TargetPrototype {
		t.Errorf("computed constructor key misclassified: %+v", u)
	}
}

func TestUndecoratedConstructorIgnored(t *testing.T) {
	c := &ast.ClassLiteral{
		Decorators: decorators(id("frozen")),
		Body: ast.ClassElements{
			method(id("constructor"), ast.PropertyKindMethod, false, false),
		},
	}
	got, err := classify.Class(c)
	if err != nil {
		t.Fatalf("Class() failed: %v", err)
	}
	if len(got.Units) != 0 {
		t.Errorf("constructor should never become a member unit")
	}
}

func TestObjectUnits(t *testing.T) {
	o := &ast.ObjectLiteral{Value: ast.Properties{
		{Prop: &ast.PropertyKeyed{
			Key:        xp(id("bar")),
			Kind:       ast.PropertyKindMethod,
			Value:      xp(fnLit()),
			Decorators: decorators(id("d")),
		}},
		{Prop: &ast.PropertyKeyed{
			Key:   xp(id("x")),
			Kind:  ast.PropertyKindGet,
			Value: xp(fnLit()),
		}},
		{Prop: &ast.PropertyKeyed{
			Key:        xp(id("x")),
			Kind:       ast.PropertyKindSet,
			Value:      xp(fnLit()),
			Decorators: decorators(id("e")),
		}},
	}}
	got, err := classify.Object(o)
	if err != nil {
		t.Fatalf("Object() failed: %v", err)
	}
	if len(got.Units) != 2 {
		t.Fatalf("expected 2 units, got %d", len(got.Units))
	}
	for _, u := range got.Units {
		if u.Target != classify.TargetInstance {
			t.Errorf("object unit %q should target the instance", u.Key.Name)
		}
	}
	if x := got.Units[1]; x.Get == nil || x.Set == nil {
		t.Errorf("object accessor pair should merge: %+v", x)
	}
	if got.Class != nil {
		t.Errorf("object literals have no class-level unit")
	}
}

func TestObjectShorthandRejected(t *testing.T) {
	o := &ast.ObjectLiteral{Value: ast.Properties{
		{Prop: &ast.PropertyShort{
			Name:       &ast.Identifier{Name: "x"},
			Decorators: decorators(id("d")),
		}},
	}}
	if _, err := classify.Object(o); err == nil || !strings.Contains(err.Error(), "shorthand") {
		t.Errorf("expected a shorthand error, got %v", err)
	}
}

func TestObjectDataPropertyRejected(t *testing.T) {
	o := &ast.ObjectLiteral{Value: ast.Properties{
		{Prop: &ast.PropertyKeyed{
			Key:        xp(id("x")),
			Kind:       ast.PropertyKindValue,
			Value:      xp(&ast.NumberLiteral{Value: 1}),
			Decorators: decorators(id("d")),
		}},
	}}
	if _, err := classify.Object(o); err == nil || !strings.Contains(err.Error(), "data property") {
		t.Errorf("expected a data-property error, got %v", err)
	}
}
