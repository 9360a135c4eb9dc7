// Package stockpile provides typed distributed registration: any package
// linked into a program can submit values into a per-type registry during its
// own initialization, with no central list and no knowledge of the other
// contributors, and any consumer can enumerate everything submitted for a
// type once the program is running.
//
// The package that owns a type declares its registry once:
//
//	package flags
//
//	type Flag struct {
//		Short string
//		Name  string
//		Usage string
//	}
//
//	var Registry = stockpile.Collect[Flag]()
//
// Any other package submits values from a package-level declaration, so the
// registration runs before main without an explicit call:
//
//	var _ = stockpile.Submit(flags.Registry, flags.Flag{
//		Short: "v",
//		Name:  "verbose",
//		Usage: "enable verbose output",
//	})
//
// Consumers traverse the registry from anywhere:
//
//	for flag := range flags.Registry.All() {
//		fmt.Printf("-%s, --%s\n", flag.Short, flag.Name)
//	}
//
// There is no guarantee about the order in which values of the same type are
// visited. They may be visited in any order.
//
// Submission is lock-free and allocation-free past entry construction: each
// entry is pushed onto an intrusive singly linked list with a compare-and-swap
// loop, so concurrently initializing packages never block each other and the
// structure stays valid even if traversal interleaves with late submissions.
package stockpile
