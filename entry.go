package stockpile

import "sync/atomic"

// Entry is one registered value of type T together with its intrusive link
// into the type's registry. An entry has static lifetime: once published it
// is never freed and never moves, its value is immutable, and its next link
// is written exactly once, at submission time.
type Entry[T any] struct {
	value    T
	next     *Entry[T]
	started  atomic.Bool
	registry *Registry[T]
}

// NewEntry binds value to r's submission path without running it. The
// returned entry carries the only type information the startup phase needs:
// its Startup method, fixed to Registry[T].submit at this point where T is
// statically known. Use Submit unless you are driving the startup phase
// yourself.
func NewEntry[T any](r *Registry[T], value T) *Entry[T] {
	return &Entry[T]{value: value, registry: r}
}

// Startup runs this entry's registration. It is the trampoline the startup
// phase invokes for the entry, and it is idempotent: hosting environments
// with unreliable "run once" semantics may invoke it again, concurrently or
// not, and every invocation past the first returns without touching the
// registry. Without that guard a second invocation would overwrite next on
// an already reachable entry and cut or cycle the list.
func (e *Entry[T]) Startup() {
	if e.started.Swap(true) {
		return
	}
	e.registry.submit(e)
}

// Value returns the registered value. The pointer stays valid for the life
// of the process.
func (e *Entry[T]) Value() *T { return &e.value }
