package evaluator

import (
	"fmt"

	"github.com/t14raptor/go-desugar/descriptor"
)

// MemberDecorator is the contract of a resolved member-level decorator.
// Factory forms are already applied: each value here is the function the
// chain invokes directly.
type MemberDecorator func(target *Object, key string, desc *descriptor.Descriptor) descriptor.Result

// ClassDecorator is the contract of a resolved class-level decorator.
type ClassDecorator func(target any) ClassResult

// ClassResult is the outcome of one class-decorator application.
type ClassResult struct {
	value    any
	replaced bool
}

// ReplaceClass marks value as the new constructor for the rest of the chain.
func ReplaceClass(value any) ClassResult {
	return ClassResult{value: value, replaced: true}
}

// KeepClass carries the current constructor forward unchanged.
func KeepClass() ClassResult {
	return ClassResult{}
}

func (r ClassResult) Replaced() bool { return r.replaced }
func (r ClassResult) Value() any     { return r.value }

// Member composes a decorator chain over an initial descriptor. Decorators
// are listed in source order; application runs innermost-first, so the last
// listed decorator sees the initial descriptor and the first listed one
// runs last and observes the effect of everything beneath it:
//
//	chain[0](t, k, chain[1](t, k, ... chain[n-1](t, k, initial)))
//
// The returned flag reports whether any decorator produced a replacement;
// when false the initial descriptor came through untouched and the caller
// must skip re-installation.
func Member(target *Object, key string, initial *descriptor.Descriptor, chain []MemberDecorator) (*descriptor.Descriptor, bool, error) {
	desc := initial
	replaced := false
	for i := len(chain) - 1; i >= 0; i-- {
		res := chain[i](target, key, desc)
		if !res.Replaced() {
			continue
		}
		next := res.Descriptor()
		if err := next.Validate(); err != nil {
			return nil, false, fmt.Errorf("evaluator: decorator %d on %q: %w", i, key, err)
		}
		desc = next
		replaced = true
	}
	return desc, replaced, nil
}

// Class composes a class-level decorator chain over the constructor value,
// in the same innermost-first order as Member. When every decorator keeps,
// the original constructor comes back unchanged and unreplaced.
func Class(target any, chain []ClassDecorator) (any, bool, error) {
	replaced := false
	for i := len(chain) - 1; i >= 0; i-- {
		res := chain[i](target)
		if !res.Replaced() {
			continue
		}
		if res.Value() == nil {
			return nil, false, fmt.Errorf("evaluator: class decorator %d replaced the constructor with nothing", i)
		}
		target = res.Value()
		replaced = true
	}
	return target, replaced, nil
}
