// Package boot narrows the hosting environment's startup mechanism to a
// single operation: register a zero-argument callback to run once per loaded
// program image, before exported entry points run user code.
//
// On Go the hosting mechanism is package initialization. Register invoked
// from a package-level variable declaration or an init function therefore
// runs its callback immediately, and the runtime's init ordering guarantees
// it happens before main. Nothing else in the module depends on that
// mechanism, only on this contract.
package boot

import "sync"

var (
	mu        sync.Mutex
	capturing bool
	captured  []func()
)

// Register schedules fn to run during the startup phase. In the default mode
// that means fn runs now, on the caller's goroutine, exactly once. While a
// Capture is active fn is queued instead.
func Register(fn func()) {
	mu.Lock()
	if capturing {
		captured = append(captured, fn)
		mu.Unlock()
		return
	}
	mu.Unlock()
	fn()
}

// Capture diverts subsequent Register calls into a queue instead of running
// them, and returns a function that ends the diversion and hands back the
// queued callbacks. It exists for harnesses that simulate hosting
// environments with weaker startup guarantees: batched hooks, concurrent
// hook threads, or loaders that replay hooks for an image.
func Capture() (release func() []func()) {
	mu.Lock()
	defer mu.Unlock()
	if capturing {
		panic("boot: capture already active")
	}
	capturing = true

	return func() []func() {
		mu.Lock()
		defer mu.Unlock()
		fns := captured
		capturing = false
		captured = nil
		return fns
	}
}
