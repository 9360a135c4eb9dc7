package flags

import "github.com/vk/stockpile"

// The flags below live in a separate file on purpose: each file stands in
// for an independently compiled unit contributing registrations without
// coordinating with the others.

var _ = stockpile.Submit(Registry, Flag{
	Short: "v",
	Name:  "verbose",
	Usage: "enable verbose output",
})

var _ = stockpile.Submit(Registry, Flag{
	Short: "q",
	Name:  "quiet",
	Usage: "suppress non-error output",
})
