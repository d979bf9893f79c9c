package collections

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// SortedKeys returns the keys of m in ascending order, for callers that need
// a reproducible order on top of the unordered Map contract.
func SortedKeys[K constraints.Ordered, V any](m Map[K, V]) []K {
	keys := make([]K, 0, m.Size())
	for k := range m.Keys() {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// SortedValues is the SortedKeys analogue for values.
func SortedValues[K any, V constraints.Ordered](m Map[K, V]) []V {
	values := make([]V, 0, m.Size())
	for v := range m.Values() {
		values = append(values, v)
	}
	slices.Sort(values)
	return values
}
