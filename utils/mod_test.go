package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	require.Equal(t, 1, FindIndex([]string{"w", "s", "a"}, "s"))
	require.Equal(t, -1, FindIndex([]string{"w", "s"}, "d"))
	require.Equal(t, -1, FindIndex(nil, 3))
}

func TestContains(t *testing.T) {
	require.True(t, Contains([]int{1, 2, 3}, 3))
	require.False(t, Contains([]int{}, 3))
}

func TestMaxMin(t *testing.T) {
	require.Equal(t, 3, Max(-1, 3))
	require.Equal(t, -1, Min(-1, 3))
	require.Equal(t, 2, Max(2, 2), "Equal values should be returned unchanged")
}
