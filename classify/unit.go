// Package classify normalizes decorated declaration sites into decoration
// units: the target object, the property key, the ordered decorator list and
// the shape of the initial descriptor.
package classify

import (
	"github.com/t14raptor/go-desugar/ast"
	"github.com/t14raptor/go-desugar/descriptor"
)

// Level says whether a unit decorates a single member or the whole class.
type Level int

const (
	LevelMember Level = iota
	LevelClass
)

// Target identifies the object a member unit installs onto.
type Target int

const (
	// TargetPrototype is the prototype object, for instance members.
	TargetPrototype Target = iota
	// TargetConstructor is the constructor object, for static members.
	TargetConstructor
	// TargetInstance is the object-literal instance being built.
	TargetInstance
	// TargetClass is the class value itself, for class-level units.
	TargetClass
)

// Key is the property key of a member unit. Computed keys are snapshotted:
// decorators only ever observe the realized key value, never the raw
// expression.
type Key struct {
	// Name is the literal key, filled for non-computed keys and for
	// computed keys that fold to a constant.
	Name string
	// Expr is the captured key expression of a non-constant computed key.
	Expr *ast.Expression
	// Computed reports whether Expr must be evaluated (once) at runtime.
	Computed bool
}

// Unit is one classified declaration site plus its ordered decorator list.
// A unit is built once, consumed once and never cached.
type Unit struct {
	Level  Level
	Target Target
	Key    Key

	// Decorators in source order; the first-listed decorator is the
	// outermost wrapper of the chain.
	Decorators ast.Expressions

	// Kind of the initial descriptor. For Data units Method holds the
	// function body; for Accessor units Get and Set hold the halves of the
	// merged pair (either may be nil).
	Kind   descriptor.Kind
	Method *ast.FunctionLiteral
	Get    *ast.FunctionLiteral
	Set    *ast.FunctionLiteral

	Static bool
	Pos    ast.Idx

	// Syntax is the declaration element the unit was derived from; the
	// unit lives only as long as this node. For a merged accessor pair it
	// is the half that appeared first.
	Syntax ast.Node
}

// Initial builds the default descriptor implied by the unit's bare syntax,
// with the member functions resolved to runtime values by the caller.
func (u *Unit) Initial(value, get, set any) *descriptor.Descriptor {
	if u.Kind == descriptor.Accessor {
		return descriptor.ForAccessor(get, set)
	}
	return descriptor.ForMethod(value)
}

// Classified is the result of classifying one class or object-literal
// declaration: member units in source order plus, for classes, an optional
// class-level unit.
type Classified struct {
	Units []*Unit
	Class *Unit
}
