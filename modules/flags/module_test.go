package flags_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/stockpile/modules/flags"
)

func TestRegisteredFlags(t *testing.T) {
	t.Parallel()

	require.Equal(t, 3, flags.Registry.Len())

	verbose, ok := flags.Lookup("verbose")
	require.True(t, ok)
	require.Equal(t, "v", verbose.Short)

	color, ok := flags.Lookup("color")
	require.True(t, ok)
	require.Equal(t, "c", color.Short)

	_, ok = flags.Lookup("nope")
	require.False(t, ok)
}
