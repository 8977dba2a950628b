package desugar

import (
	"strconv"

	"github.com/t14raptor/go-desugar/ast"
)

// nameCollector gathers every identifier under a node so synthesized
// temporaries never capture or shadow program names.
type nameCollector struct {
	ast.NoopVisitor
	names map[string]struct{}
}

func (v *nameCollector) VisitIdentifier(n *ast.Identifier) {
	v.names[n.Name] = struct{}{}
}

func collectNames(n ast.Node) map[string]struct{} {
	visitor := &nameCollector{names: make(map[string]struct{})}
	visitor.V = visitor
	n.VisitWith(visitor)
	return visitor.names
}

// tempAllocator hands out fresh names for one declaration site.
type tempAllocator struct {
	taken map[string]struct{}
}

func newTempAllocator(n ast.Node) *tempAllocator {
	return &tempAllocator{taken: collectNames(n)}
}

func (a *tempAllocator) alloc(base string) string {
	name := base
	for i := 2; ; i++ {
		if _, exists := a.taken[name]; !exists {
			break
		}
		name = base + strconv.Itoa(i)
	}
	a.taken[name] = struct{}{}
	return name
}
