package stockpile

import (
	"iter"
	"reflect"
	"sync/atomic"
)

// Registry aggregates every value of type T submitted by packages linked into
// the program. A Registry has exactly one instance per type per process;
// declare it with Collect in the package that owns T and share that variable.
//
// The zero value is not usable. All methods are safe for concurrent use.
type Registry[T any] struct {
	name string
	typ  reflect.Type
	head atomic.Pointer[Entry[T]]
}

// Collect declares the registry for type T and records it in the process-wide
// registry table. It must be called exactly once per type, from a package-level
// variable declaration in the package that defines T. Declaring a second
// registry for the same type panics.
func Collect[T any]() *Registry[T] {
	typ := reflect.TypeFor[T]()
	r := &Registry[T]{
		name: typ.String(),
		typ:  typ,
	}
	register(r)
	return r
}

// Name returns the registry's name, which is the Go type it aggregates in
// "pkg.Type" form.
func (r *Registry[T]) Name() string { return r.name }

// Type returns the aggregated value type.
func (r *Registry[T]) Type() reflect.Type { return r.typ }

// Len counts the values currently reachable from the registry head. It is a
// snapshot; concurrent submissions may not be reflected.
func (r *Registry[T]) Len() int {
	n := 0
	for e := r.head.Load(); e != nil; e = e.next {
		n++
	}
	return n
}

// submit publishes e by pushing it onto the intrusive list. Treiber-stack
// insertion: e.next may be written with a plain store because e is not
// reachable from any reader until the CompareAndSwap succeeds, and the CAS
// publishes e together with its fully initialized value.
//
// submit cannot fail and cannot block; the loop retries only when a
// concurrent submission moves the head first. Relative order of concurrently
// submitted entries is unspecified.
func (r *Registry[T]) submit(e *Entry[T]) {
	for {
		head := r.head.Load()
		e.next = head
		if r.head.CompareAndSwap(head, e) {
			return
		}
	}
}

// Values implements View. It yields the registered values type-erased for
// tooling; typed consumers should use All instead.
func (r *Registry[T]) Values() iter.Seq[any] {
	return func(yield func(any) bool) {
		for v := range r.All() {
			if !yield(*v) {
				return
			}
		}
	}
}
