package ast

// Idx is a compact encoding of a source position within JS code.
type Idx int

// Node is implemented by every AST node and supports visitor traversal.
type Node interface {
	VisitWith(v Visitor)
	VisitChildrenWith(v Visitor)
}

type Program struct {
	Body Statements
}
