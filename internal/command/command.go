// Package command defines the CLI subcommand type. Subcommands register
// themselves through stockpile, the same mechanism this tool exists to
// inspect, so the command table is itself a demonstration of distributed
// registration.
package command

import (
	"context"
	"io"
	"sort"

	"github.com/vk/stockpile"
	"github.com/vk/stockpile/internal/manifest"
)

// Env carries what a command needs to run, without coupling commands to the
// app package.
type Env struct {
	Out      io.Writer
	Manifest *manifest.Manifest
}

// Command is one CLI subcommand.
type Command struct {
	Name    string                           `stockpile:"name"`
	Summary string                           `stockpile:"summary"`
	Run     func(context.Context, Env) error `stockpile:"-"`
}

// Registry aggregates every subcommand linked into the binary.
var Registry = stockpile.Collect[Command]()

// Lookup returns the registered command with the given name.
func Lookup(name string) (*Command, bool) {
	for cmd := range Registry.All() {
		if cmd.Name == name {
			return cmd, true
		}
	}
	return nil, false
}

// Names returns every registered command name, sorted.
func Names() []string {
	var names []string
	for cmd := range Registry.All() {
		names = append(names, cmd.Name)
	}
	sort.Strings(names)
	return names
}
