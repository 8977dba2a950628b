// Package evaluator applies decorator chains at runtime: an ordered list of
// decorator functions is composed innermost-first over a target, key and
// descriptor, and the final descriptor is installed onto the target via a
// define-property operation.
package evaluator

import (
	"slices"

	"golang.org/x/exp/maps"

	"github.com/t14raptor/go-desugar/descriptor"
)

// Object is the minimal property bag decorator chains install onto. It
// stands in for a prototype, a constructor or an object-literal instance.
type Object struct {
	props map[string]*descriptor.Descriptor
}

func New() *Object {
	return &Object{props: make(map[string]*descriptor.Descriptor)}
}

// DefineProperty installs a descriptor under key, replacing any existing
// one. The descriptor shape is validated here, at the point of use.
func (o *Object) DefineProperty(key string, d *descriptor.Descriptor) error {
	if err := d.Validate(); err != nil {
		return err
	}
	o.props[key] = d
	return nil
}

// GetOwnProperty returns the installed descriptor for key, if any.
func (o *Object) GetOwnProperty(key string) (*descriptor.Descriptor, bool) {
	d, ok := o.props[key]
	return d, ok
}

// Get returns the data value installed under key, or nil.
func (o *Object) Get(key string) any {
	if d, ok := o.props[key]; ok && d.Kind == descriptor.Data {
		return d.Value
	}
	return nil
}

// Keys returns the object's own property keys, sorted.
func (o *Object) Keys() []string {
	keys := maps.Keys(o.props)
	slices.Sort(keys)
	return keys
}
