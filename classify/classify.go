package classify

import (
	"fmt"
	"strconv"

	"github.com/t14raptor/go-desugar/ast"
	"github.com/t14raptor/go-desugar/descriptor"
)

const (
	errDataProperty = "classify: decorators are not valid on a plain data property (offset %d)"
	errShorthand    = "classify: decorators are not valid on a shorthand property (offset %d)"
	errConstructor  = "classify: decorators are not valid on a constructor (offset %d)"
)

// Class classifies one class declaration or expression. Member units come
// back in source order; a class-level unit is present only when the class
// itself is decorated. A decorator list on an ineligible element is fatal
// for the whole declaration.
func Class(c *ast.ClassLiteral) (*Classified, error) {
	out := &Classified{}
	if len(c.Decorators) > 0 {
		out.Class = &Unit{
			Level:      LevelClass,
			Target:     TargetClass,
			Decorators: c.Decorators,
			Pos:        c.Class,
		}
	}

	type pairKey struct {
		name   string
		static bool
	}
	pairs := make(map[pairKey]*Unit)

	for _, elem := range c.Body {
		switch e := elem.Element.(type) {
		case *ast.FieldDefinition:
			if len(e.Decorators) > 0 {
				return nil, fmt.Errorf(errDataProperty, e.Idx)
			}

		case *ast.MethodDefinition:
			key := memberKey(e.Key, e.Computed)
			target := TargetPrototype
			if e.Static {
				target = TargetConstructor
			}

			switch e.Kind {
			case ast.PropertyKindGet, ast.PropertyKindSet:
				// Both halves of a get/set pair fold into one unit, even
				// when only one half is decorated.
				var u *Unit
				if !key.Computed {
					k := pairKey{key.Name, e.Static}
					u = pairs[k]
					if u == nil {
						u = &Unit{
							Level:  LevelMember,
							Target: target,
							Key:    key,
							Kind:   descriptor.Accessor,
							Static: e.Static,
							Pos:    e.Idx,
							Syntax: e,
						}
						pairs[k] = u
						out.Units = append(out.Units, u)
					}
				} else {
					u = &Unit{
						Level:  LevelMember,
						Target: target,
						Key:    key,
						Kind:   descriptor.Accessor,
						Static: e.Static,
						Pos:    e.Idx,
						Syntax: e,
					}
					out.Units = append(out.Units, u)
				}
				if e.Kind == ast.PropertyKindGet {
					u.Get = e.Body
				} else {
					u.Set = e.Body
				}
				u.Decorators = append(u.Decorators, e.Decorators...)

			default:
				// A computed key is never the constructor, even when it
				// folds to the constant "constructor".
				if !e.Static && !e.Computed && key.Name == "constructor" {
					if len(e.Decorators) > 0 {
						return nil, fmt.Errorf(errConstructor, e.Idx)
					}
					continue
				}
				if len(e.Decorators) == 0 {
					continue
				}
				out.Units = append(out.Units, &Unit{
					Level:      LevelMember,
					Target:     target,
					Key:        key,
					Decorators: e.Decorators,
					Kind:       descriptor.Data,
					Method:     e.Body,
					Static:     e.Static,
					Pos:        e.Idx,
					Syntax:     e,
				})
			}
		}
	}

	// Accessor units exist as soon as either half shows up; keep only the
	// ones that ended up with decorators.
	units := out.Units[:0]
	for _, u := range out.Units {
		if len(u.Decorators) > 0 {
			units = append(units, u)
		}
	}
	out.Units = units

	return out, nil
}

// Object classifies one object literal. Object literals have no class-level
// unit; every unit targets the literal instance being built.
func Object(o *ast.ObjectLiteral) (*Classified, error) {
	out := &Classified{}
	pairs := make(map[string]*Unit)

	for _, p := range o.Value {
		switch prop := p.Prop.(type) {
		case *ast.PropertyShort:
			if len(prop.Decorators) > 0 {
				return nil, fmt.Errorf(errShorthand, prop.Name.Idx)
			}

		case *ast.PropertyKeyed:
			if len(prop.Decorators) == 0 && prop.Kind != ast.PropertyKindGet && prop.Kind != ast.PropertyKindSet {
				continue
			}
			key := memberKey(prop.Key, prop.Computed)

			switch prop.Kind {
			case ast.PropertyKindGet, ast.PropertyKindSet:
				var u *Unit
				if !key.Computed {
					u = pairs[key.Name]
					if u == nil {
						u = &Unit{
							Level:  LevelMember,
							Target: TargetInstance,
							Key:    key,
							Kind:   descriptor.Accessor,
							Pos:    exprPos(prop.Key),
							Syntax: prop,
						}
						pairs[key.Name] = u
						out.Units = append(out.Units, u)
					}
				} else {
					u = &Unit{
						Level:  LevelMember,
						Target: TargetInstance,
						Key:    key,
						Kind:   descriptor.Accessor,
						Pos:    exprPos(prop.Key),
						Syntax: prop,
					}
					out.Units = append(out.Units, u)
				}
				if fn, ok := prop.Value.Expr.(*ast.FunctionLiteral); ok {
					if prop.Kind == ast.PropertyKindGet {
						u.Get = fn
					} else {
						u.Set = fn
					}
				}
				u.Decorators = append(u.Decorators, prop.Decorators...)

			case ast.PropertyKindMethod:
				fn, _ := prop.Value.Expr.(*ast.FunctionLiteral)
				out.Units = append(out.Units, &Unit{
					Level:      LevelMember,
					Target:     TargetInstance,
					Key:        key,
					Decorators: prop.Decorators,
					Kind:       descriptor.Data,
					Method:     fn,
					Pos:        exprPos(prop.Key),
					Syntax:     prop,
				})

			default:
				return nil, fmt.Errorf(errDataProperty, exprPos(prop.Key))
			}
		}
	}

	units := out.Units[:0]
	for _, u := range out.Units {
		if len(u.Decorators) > 0 {
			units = append(units, u)
		}
	}
	out.Units = units

	return out, nil
}

// memberKey resolves a property key into its snapshot form. Constant
// computed keys fold to their realized name; anything else keeps the
// captured expression, which the emitter evaluates exactly once.
func memberKey(expr *ast.Expression, computed bool) Key {
	switch k := expr.Expr.(type) {
	case *ast.Identifier:
		if !computed {
			return Key{Name: k.Name}
		}
	case *ast.StringLiteral:
		return Key{Name: k.Value}
	case *ast.NumberLiteral:
		return Key{Name: numberName(k)}
	case *ast.BooleanLiteral:
		if computed {
			return Key{Name: strconv.FormatBool(k.Value)}
		}
	case *ast.NullLiteral:
		if computed {
			return Key{Name: "null"}
		}
	}
	return Key{Expr: expr, Computed: true}
}

func numberName(n *ast.NumberLiteral) string {
	return strconv.FormatFloat(n.Value, 'f', -1, 64)
}

func exprPos(e *ast.Expression) ast.Idx {
	switch t := e.Expr.(type) {
	case *ast.Identifier:
		return t.Idx
	case *ast.StringLiteral:
		return t.Idx
	case *ast.NumberLiteral:
		return t.Idx
	}
	return 0
}
