// Package versioned models a payload stamped with a generation counter.
//
// The container records nothing about the payload beyond the counter. It is a
// plain value type: no internal locking, no blocking operations, no error
// paths. Every operation is total over its inputs; the one correctness hazard
// (a derivation skipping or double-bumping the counter) is guarded by an
// internal check compiled in only under the versioned_debug build tag.
//
// Notes on performance:
//   - Derivations are a struct copy plus an integer increment; the cloning
//     derivations add one payload clone.
//   - The predicates are single integer comparisons, cheap enough for hot
//     validation loops.
package versioned

// Cloner is the duplication capability required by TransformClone.
//
// Clone must return a logically independent copy: mutating the copy must not
// be observable through the original. Payload types without a Clone method
// can use TransformCloneFunc instead.
type Cloner[T any] interface {
	Clone() T
}

// Versioned pairs a payload with a monotonically increasing version counter.
//
// The zero value is usable and equivalent to New with a zero payload. The
// counter is private: callers compare containers through IsDirectSuccessor
// and IsSameVersion only. Version numbers carry meaning only within a single
// lineage; comparing containers from unrelated lineages is just raw integer
// comparison.
//
// The counter is a uint64 and is incremented unchecked. Wraparound after
// 2^64-1 derivations on one lineage is an accepted boundary condition, not a
// guarded case.
type Versioned[T any] struct {
	value   T
	version uint64
}

// New wraps value in a container at version 0.
func New[T any](value T) Versioned[T] {
	return Versioned[T]{value: value, version: 0}
}

// Extract consumes the container and returns ownership of the payload,
// discarding the version. The receiver must not be reused after the call.
func (v Versioned[T]) Extract() T {
	return v.value
}

// Peek returns a view of the payload without consuming the container or
// touching the version. Safe to call any number of times.
func (v *Versioned[T]) Peek() *T {
	return &v.value
}

// Advance consumes the container and re-stamps it: same payload, version+1.
//
// Used when a bump is needed without changing the value, e.g. marking a
// no-op pass through a derivation pipeline. The receiver must not be reused
// after the call.
func (v Versioned[T]) Advance() Versioned[T] {
	return Versioned[T]{
		value:   v.value,
		version: v.version + 1,
	}
}

// Replace derives a new container carrying value at the source's version+1.
//
// The source is not consumed and remains valid.
func (v *Versioned[T]) Replace(value T) Versioned[T] {
	return Versioned[T]{
		value:   value,
		version: v.version + 1,
	}
}

// TransformInPlace consumes the container, applies f to the payload and
// discards the result entirely.
//
// This is an advanced primitive: nothing about the new container is
// observable, so it is only useful when f's side effects are the point.
// Prefer TransformClone for ordinary derivation.
func (v Versioned[T]) TransformInPlace(f func(T) T) {
	_ = v.Replace(f(v.value))
}

// TransformClone is the primary derivation operation.
//
// It clones the payload, applies f to the clone and returns a new container
// at the source's version+1. The source is not consumed: it stays valid and
// unchanged, so several call sites can derive independent candidates from one
// shared base without invalidating each other's view.
//
// It is a free function rather than a method so the Cloner bound applies only
// here and not to the container type itself.
func TransformClone[T Cloner[T]](v *Versioned[T], f func(T) T) Versioned[T] {
	out := Versioned[T]{
		value:   f(v.value.Clone()),
		version: v.version + 1,
	}
	assertDirectSuccessor(v, &out)
	return out
}

// TransformCloneFunc is TransformClone for payload types without a Clone
// method: clone supplies the duplication step explicitly.
func (v *Versioned[T]) TransformCloneFunc(clone func(T) T, f func(T) T) Versioned[T] {
	out := Versioned[T]{
		value:   f(clone(v.value)),
		version: v.version + 1,
	}
	assertDirectSuccessor(v, &out)
	return out
}

// IsDirectSuccessor reports whether other sits exactly one derivation step
// after v.
//
// This is a monotonicity check, not a proof of derivation: a container from
// an unrelated lineage with a coincidentally adjacent version also passes.
// Within a single lineage it distinguishes "derived once from v" from "stale"
// and "derived more than once".
func (v *Versioned[T]) IsDirectSuccessor(other *Versioned[T]) bool {
	return v.version+1 == other.version
}

// IsSameVersion reports whether both containers carry the same version
// number, i.e. represent the identical point in a lineage. Useful to
// short-circuit redundant work when two handles may refer to the same
// generation.
func (v *Versioned[T]) IsSameVersion(other *Versioned[T]) bool {
	return v.version == other.version
}

// assertDirectSuccessor panics if a derivation produced anything other than
// the direct successor of its source. Compiled to a no-op branch unless the
// versioned_debug build tag is set; given the public contract only an
// implementation bug can trip it.
func assertDirectSuccessor[T any](from, to *Versioned[T]) {
	if debugChecks && !from.IsDirectSuccessor(to) {
		panic("versioned: derivation did not produce a direct successor")
	}
}
