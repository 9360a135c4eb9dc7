package main

// Built-in modules. Each import links a package whose init-time submissions
// populate the registries this tool inspects. Downstream binaries add their
// own imports here, or anywhere else in their dependency graph.
import (
	_ "github.com/vk/stockpile/modules/codecs"
	_ "github.com/vk/stockpile/modules/flags"

	// checks is also imported by the check command; listed here so the
	// module set is visible in one place.
	_ "github.com/vk/stockpile/modules/checks"
)
