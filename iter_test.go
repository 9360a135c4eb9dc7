package stockpile_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/stockpile"
)

func TestCursorWalksAllValues(t *testing.T) {
	t.Parallel()

	type step struct{ ID int }
	reg := stockpile.Collect[step]()
	for i := 0; i < 5; i++ {
		stockpile.Submit(reg, step{ID: i})
	}

	seen := make(map[step]int)
	cur := reg.Start()
	for {
		v, ok := cur.Next()
		if !ok {
			break
		}
		seen[*v]++
	}
	require.Len(t, seen, 5)
}

func TestCursorCopyForksTraversal(t *testing.T) {
	t.Parallel()

	type twig struct{ ID int }
	reg := stockpile.Collect[twig]()
	stockpile.Submit(reg, twig{ID: 1})
	stockpile.Submit(reg, twig{ID: 2})

	a := reg.Start()
	b := a // fork

	first, ok := a.Next()
	require.True(t, ok)
	second, ok := a.Next()
	require.True(t, ok)
	_, ok = a.Next()
	require.False(t, ok)

	// The copy replays the same snapshot from its own position.
	bFirst, ok := b.Next()
	require.True(t, ok)
	require.Equal(t, *first, *bFirst)
	bSecond, ok := b.Next()
	require.True(t, ok)
	require.Equal(t, *second, *bSecond)
}

func TestAllStopsWhenYieldReturnsFalse(t *testing.T) {
	t.Parallel()

	type item struct{ ID int }
	reg := stockpile.Collect[item]()
	for i := 0; i < 10; i++ {
		stockpile.Submit(reg, item{ID: i})
	}

	visited := 0
	for range reg.All() {
		visited++
		if visited == 3 {
			break
		}
	}
	require.Equal(t, 3, visited)
}
