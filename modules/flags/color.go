package flags

import "github.com/vk/stockpile"

var _ = stockpile.Submit(Registry, Flag{
	Short: "c",
	Name:  "color",
	Usage: "colorize output when the terminal supports it",
})
