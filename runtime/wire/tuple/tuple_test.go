package tuple

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTupleArities(t *testing.T) {
	t1 := T1[int]{Item1: 1}
	require.Equal(t, 1, t1.Item1)

	t3 := T3[int, string, bool]{Item1: 1, Item2: "two", Item3: true}
	require.Equal(t, 1, t3.Item1)
	require.Equal(t, "two", t3.Item2)
	require.True(t, t3.Item3)

	t7 := T7[int, int, int, int, int, int, int]{1, 2, 3, 4, 5, 6, 7}
	require.Equal(t, 7, t7.Item7)
}
