// SPDX-License-Identifier: Unlicense OR MIT

// Package cow implements reference counted copy-on-write handles.
package cow

import "sync/atomic"

// Cloner is implemented by values that can produce deep copies of
// themselves.
type Cloner[T any] interface {
	Clone() T
}

// Ref is a handle to a value of type T. Handles created with Share
// refer to the same value; MakeMut gives a handle exclusive, mutable
// access, cloning the value first when it is shared.
//
// The zero Ref is invalid; use New.
type Ref[T Cloner[T]] struct {
	inner *inner[T]
}

type inner[T any] struct {
	val  T
	refs atomic.Int64
}

// New wraps v in an exclusively owned handle.
func New[T Cloner[T]](v T) Ref[T] {
	n := &inner[T]{val: v}
	n.refs.Store(1)
	return Ref[T]{inner: n}
}

// Share returns a new handle to the same value.
func (r Ref[T]) Share() Ref[T] {
	r.inner.refs.Add(1)
	return r
}

// Drop releases the handle's claim on the value. The handle must not
// be used afterwards.
func (r Ref[T]) Drop() {
	r.inner.refs.Add(-1)
}

// Load returns the value for reading. Callers must not mutate it.
func (r Ref[T]) Load() *T {
	return &r.inner.val
}

// Shared reports whether other handles refer to the same value.
func (r Ref[T]) Shared() bool {
	return r.inner.refs.Load() > 1
}

// MakeMut returns the value for mutation. If the handle shares its
// value with other handles, the value is cloned first so that the
// other holders keep the unmodified original.
func (r *Ref[T]) MakeMut() *T {
	if r.inner.refs.Load() > 1 {
		n := &inner[T]{val: r.inner.val.Clone()}
		n.refs.Store(1)
		r.inner.refs.Add(-1)
		r.inner = n
	}
	return &r.inner.val
}
