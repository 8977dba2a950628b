package evaluator

import (
	"fmt"

	"github.com/t14raptor/go-desugar/ast"
	"github.com/t14raptor/go-desugar/classify"
)

// Resolver turns the syntactic pieces of a decoration unit into runtime
// values: decorator expressions into decorator functions (applying factory
// calls along the way) and member bodies into installable values. Decorator
// expressions resolve in source order, before any application runs.
type Resolver interface {
	ResolveMember(expr *ast.Expression) (MemberDecorator, error)
	ResolveClass(expr *ast.Expression) (ClassDecorator, error)
	ResolveFunction(fn *ast.FunctionLiteral) (any, error)
	// ResolveKey evaluates a computed key expression to its realized
	// property key. Called at most once per unit.
	ResolveKey(expr *ast.Expression) (string, error)
}

// Install runs one member unit to completion: the bare default property is
// created first, then the chain runs over it, then the final descriptor is
// re-installed only if some decorator replaced it. The returned flag
// reports whether that re-installation happened.
func Install(u *classify.Unit, target *Object, r Resolver) (bool, error) {
	if u.Level != classify.LevelMember {
		return false, fmt.Errorf("evaluator: class-level unit passed to Install")
	}

	key := u.Key.Name
	if u.Key.Computed {
		var err error
		if key, err = r.ResolveKey(u.Key.Expr); err != nil {
			return false, err
		}
	}

	var value, get, set any
	var err error
	if u.Method != nil {
		if value, err = r.ResolveFunction(u.Method); err != nil {
			return false, err
		}
	}
	if u.Get != nil {
		if get, err = r.ResolveFunction(u.Get); err != nil {
			return false, err
		}
	}
	if u.Set != nil {
		if set, err = r.ResolveFunction(u.Set); err != nil {
			return false, err
		}
	}

	// The language's own default property creation happens regardless of
	// decorators.
	if err := target.DefineProperty(key, u.Initial(value, get, set)); err != nil {
		return false, err
	}

	chain := make([]MemberDecorator, len(u.Decorators))
	for i := range u.Decorators {
		if chain[i], err = r.ResolveMember(&u.Decorators[i]); err != nil {
			return false, err
		}
	}

	initial, _ := target.GetOwnProperty(key)
	final, replaced, err := Member(target, key, initial, chain)
	if err != nil {
		return false, err
	}
	if !replaced {
		return false, nil
	}
	return true, target.DefineProperty(key, final)
}

// Bind runs a class-level unit over the constructor value and returns the
// value the declaration's name should be bound to. When every decorator
// keeps, the original constructor comes back and no rebinding is needed.
func Bind(u *classify.Unit, class any, r Resolver) (any, error) {
	if u.Level != classify.LevelClass {
		return nil, fmt.Errorf("evaluator: member-level unit passed to Bind")
	}

	chain := make([]ClassDecorator, len(u.Decorators))
	for i := range u.Decorators {
		var err error
		if chain[i], err = r.ResolveClass(&u.Decorators[i]); err != nil {
			return nil, err
		}
	}

	final, _, err := Class(class, chain)
	if err != nil {
		return nil, err
	}
	return final, nil
}
