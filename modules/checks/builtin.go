package checks

import (
	"context"
	"os"

	"github.com/vk/stockpile"
)

var _ = stockpile.Submit(Registry, Check{
	Name: "tmpdir-writable",
	Run: func(context.Context) error {
		f, err := os.CreateTemp("", "stockpile-check-*")
		if err != nil {
			return err
		}
		name := f.Name()
		if err := f.Close(); err != nil {
			return err
		}
		return os.Remove(name)
	},
})

var _ = stockpile.Submit(Registry, Check{
	Name: "hostname-resolvable",
	Run: func(context.Context) error {
		_, err := os.Hostname()
		return err
	},
})
