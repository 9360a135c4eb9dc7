// Package flags is the canonical stockpile example: a flag registry in the
// style of gflags, where any linked package contributes the flags relevant to
// it instead of maintaining one central list.
package flags

import "github.com/vk/stockpile"

// Flag describes one command line flag contributed by a linked package.
type Flag struct {
	Short string `stockpile:"short"`
	Name  string `stockpile:"name"`
	Usage string `stockpile:"usage"`
}

// Registry aggregates every Flag linked into the binary.
var Registry = stockpile.Collect[Flag]()

// Lookup returns the registered flag with the given long name.
func Lookup(name string) (*Flag, bool) {
	for f := range Registry.All() {
		if f.Name == name {
			return f, true
		}
	}
	return nil, false
}
