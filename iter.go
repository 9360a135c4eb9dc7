package stockpile

import "iter"

// All returns a lazy, forward-only traversal over every value submitted to r.
// Each range over the returned sequence is an independent traversal: it
// snapshots the registry head when it starts and never re-reads it, so two
// concurrent traversals cannot affect each other. Values submitted after a
// traversal begins may or may not be visited by it.
//
// Within one traversal no value is skipped or duplicated, and the traversal
// always terminates. Order is unspecified.
func (r *Registry[T]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for e := r.head.Load(); e != nil; e = e.next {
			if !yield(&e.value) {
				return
			}
		}
	}
}

// Cursor is an explicit-step traversal over a registry. It is a momentary
// view: copying it forks the traversal, discarding it costs nothing, and it
// holds no locks, so cursors may be created and dropped freely while
// submissions are ongoing.
type Cursor[T any] struct {
	node *Entry[T]
}

// Start begins a traversal at the current registry head.
func (r *Registry[T]) Start() Cursor[T] {
	return Cursor[T]{node: r.head.Load()}
}

// Next yields the next registered value and advances the cursor, or reports
// false when the traversal is exhausted.
func (c *Cursor[T]) Next() (*T, bool) {
	if c.node == nil {
		return nil, false
	}
	v := &c.node.value
	c.node = c.node.next
	return v, true
}
