// Package descriptor models the property installation record threaded
// through a decorator chain: a data or accessor descriptor plus the
// defaults implied by bare method and accessor syntax.
package descriptor

import "errors"

type Kind int

const (
	Data Kind = iota
	Accessor
)

func (k Kind) String() string {
	if k == Accessor {
		return "accessor"
	}
	return "data"
}

// Descriptor is one installable property. A descriptor is never both data
// and accessor: Kind decides which fields are meaningful.
type Descriptor struct {
	Kind Kind

	// Value is the data value, meaningful only for Data descriptors.
	Value any
	// Get and Set are the accessor halves, meaningful only for Accessor
	// descriptors. Either may be nil.
	Get any
	Set any

	Enumerable   bool
	Configurable bool
	// Writable is meaningful only for Data descriptors.
	Writable bool
}

// ForMethod returns the default descriptor implied by bare method syntax.
func ForMethod(fn any) *Descriptor {
	return &Descriptor{
		Kind:         Data,
		Value:        fn,
		Enumerable:   false,
		Configurable: true,
		Writable:     true,
	}
}

// ForAccessor returns the default descriptor implied by a bare get/set pair.
// Either half may be nil. Note the enumerable default differs from methods.
func ForAccessor(get, set any) *Descriptor {
	return &Descriptor{
		Kind:         Accessor,
		Get:          get,
		Set:          set,
		Enumerable:   true,
		Configurable: true,
	}
}

var (
	errNilDescriptor      = errors.New("descriptor: replacement is not a descriptor")
	errAccessorWithValue  = errors.New("descriptor: accessor descriptor carries a value")
	errAccessorWritable   = errors.New("descriptor: accessor descriptor carries writable")
	errDataWithAccessors  = errors.New("descriptor: data descriptor carries a getter or setter")
)

// Validate checks the structural contract of a descriptor-shaped value.
func (d *Descriptor) Validate() error {
	if d == nil {
		return errNilDescriptor
	}
	switch d.Kind {
	case Accessor:
		if d.Value != nil {
			return errAccessorWithValue
		}
		if d.Writable {
			return errAccessorWritable
		}
	default:
		if d.Get != nil || d.Set != nil {
			return errDataWithAccessors
		}
	}
	return nil
}

// Clone returns a shallow copy. Value, Get and Set are shared; a decorator
// that mutates a descriptor in place is treated as having replaced it, so
// the engine never relies on structural sharing.
func (d *Descriptor) Clone() *Descriptor {
	if d == nil {
		return nil
	}
	c := *d
	return &c
}
