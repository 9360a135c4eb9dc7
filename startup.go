package stockpile

import "github.com/vk/stockpile/internal/boot"

// Submit declares value into r during process startup. Call it from a
// package-level variable declaration:
//
//	var _ = stockpile.Submit(flags.Registry, flags.Flag{Name: "verbose"})
//
// The Go runtime initializes every linked package before main, so the value
// is registered before any application code can iterate the registry. Submit
// may also be called after startup; the value becomes visible to traversals
// that begin afterward, and its visibility to traversals already in flight is
// unspecified.
//
// The returned entry is the registration site's static cell; most call sites
// discard it.
func Submit[T any](r *Registry[T], value T) *Entry[T] {
	e := NewEntry(r, value)
	// Startup is the erased call path: a func bound to T here, invoked by
	// the boot phase with no knowledge of the concrete type.
	boot.Register(e.Startup)
	return e
}
