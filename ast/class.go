package ast

type (
	ClassLiteral struct {
		Class      Idx
		RightBrace Idx
		Name       *Identifier `optional:"true"`
		SuperClass *Expression `optional:"true"`
		Body       ClassElements

		// Decorators are the decorator expressions attached to the class
		// itself, in source order (top to bottom).
		Decorators Expressions
	}

	ClassElements []ClassElement

	ClassElement struct {
		Element
	}

	Element interface {
		Node
		_classElement()
	}

	FieldDefinition struct {
		Idx         Idx
		Key         *Expression
		Initializer *Expression `optional:"true"`
		Computed    bool
		Static      bool

		Decorators Expressions
	}

	MethodDefinition struct {
		Idx      Idx
		Key      *Expression
		Kind     PropertyKind // "method", "get" or "set"
		Body     *FunctionLiteral
		Computed bool
		Static   bool

		Decorators Expressions
	}
)

func (*FieldDefinition) _classElement()  {}
func (*MethodDefinition) _classElement() {}

// Decorated reports whether any element of the class body, or the class
// itself, carries decorators.
func (c *ClassLiteral) Decorated() bool {
	if len(c.Decorators) > 0 {
		return true
	}
	for _, elem := range c.Body {
		switch e := elem.Element.(type) {
		case *MethodDefinition:
			if len(e.Decorators) > 0 {
				return true
			}
		case *FieldDefinition:
			if len(e.Decorators) > 0 {
				return true
			}
		}
	}
	return false
}

// Constructor returns the constructor method definition, if present.
func (c *ClassLiteral) Constructor() *MethodDefinition {
	for _, elem := range c.Body {
		if m, ok := elem.Element.(*MethodDefinition); ok && !m.Static && !m.Computed && m.Kind == PropertyKindMethod {
			if key, ok := m.Key.Expr.(*StringLiteral); ok && key.Value == "constructor" {
				return m
			}
			if key, ok := m.Key.Expr.(*Identifier); ok && key.Name == "constructor" {
				return m
			}
		}
	}
	return nil
}
