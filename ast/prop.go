package ast

type PropertyKind string

const (
	PropertyKindValue  PropertyKind = "value"
	PropertyKindGet    PropertyKind = "get"
	PropertyKindSet    PropertyKind = "set"
	PropertyKindMethod PropertyKind = "method"
)

type (
	Properties []Property

	Property struct {
		Prop Prop
	}

	Prop interface {
		Node
		_property()
	}

	PropertyShort struct {
		Name        *Identifier
		Initializer *Expression `optional:"true"`

		// Decorators on a shorthand property are never valid; the list is
		// kept so the classifier can report them instead of the parser.
		Decorators Expressions
	}

	PropertyKeyed struct {
		Key      *Expression
		Kind     PropertyKind
		Value    *Expression
		Computed bool

		Decorators Expressions
	}
)

func (*PropertyShort) _property() {}
func (*PropertyKeyed) _property() {}

// Decorated reports whether any member of the object literal carries
// decorators.
func (o *ObjectLiteral) Decorated() bool {
	for _, p := range o.Value {
		switch prop := p.Prop.(type) {
		case *PropertyKeyed:
			if len(prop.Decorators) > 0 {
				return true
			}
		case *PropertyShort:
			if len(prop.Decorators) > 0 {
				return true
			}
		}
	}
	return false
}
