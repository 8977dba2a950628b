package descriptor

// Result is the outcome of one decorator application: a wholesale
// replacement descriptor, or Keep, meaning the carried descriptor moves to
// the next decorator unchanged. The no-op branch is explicit so callers
// cannot confuse "no replacement" with "replaced by nil".
type Result struct {
	desc     *Descriptor
	replaced bool
}

// Replace marks the returned descriptor as the new authoritative value for
// the rest of the chain. The descriptor may be the same object mutated in
// place; the engine treats it as a replacement either way.
func Replace(d *Descriptor) Result {
	return Result{desc: d, replaced: true}
}

// Keep carries the current descriptor forward unchanged.
func Keep() Result {
	return Result{}
}

// Replaced reports whether the decorator produced a replacement.
func (r Result) Replaced() bool {
	return r.replaced
}

// Descriptor returns the replacement, nil unless Replaced.
func (r Result) Descriptor() *Descriptor {
	return r.desc
}
