package collections

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSortedKeys(t *testing.T) {
	m := NewHashMapFrom(map[int]string{3: "c", 1: "a", 2: "b"})
	require.Equal(t, []int{1, 2, 3}, SortedKeys(m))
	require.Equal(t, []string{"a", "b", "c"}, SortedValues(m))
}
