// Package collections provides generic in-memory containers: a Map contract
// with a hash-table implementer, and a Set built on top of it. The containers
// are not safe for concurrent use; callers sharing one across goroutines must
// synchronize externally.
package collections

import "iter"

// Map is a mutable collection of unique-key-to-value bindings. Iteration
// order is unspecified.
type Map[K any, V any] interface {
	// Empty reports whether the map has no entries.
	Empty() bool
	// Size returns the number of entries.
	Size() int
	// Clear removes all entries.
	Clear()
	// Get returns the value bound to k, or ErrKeyNotFound if k is absent.
	Get(k K) (V, error)
	// Set binds k to v, overwriting any previous binding.
	Set(k K, v V)
	// Insert binds e.Key to e.Value, overwriting any previous binding.
	Insert(e Entry[K, V])
	// GetOrElse returns the value bound to k if present, otherwise def().
	// def is called only when k is absent, and the map is not mutated.
	GetOrElse(k K, def func() V) V
	// Remove deletes the binding for k and reports whether it was present.
	Remove(k K) bool
	// Contains reports whether k is bound.
	Contains(k K) bool
	// Keys returns a lazy sequence over the current keys. The sequence is a
	// live view over the map; calling Keys again restarts it.
	Keys() iter.Seq[K]
	// Values is the Keys analogue for values.
	Values() iter.Seq[V]
	// Pairs is the Keys analogue for key-value entries.
	Pairs() iter.Seq[Entry[K, V]]
	// ForEach visits every entry, passing a pointer through which the visitor
	// may update the value in place. The visitor returns false to stop early,
	// and ForEach returns the visitor's last signal. An update made on the
	// stopping visit is still stored.
	ForEach(visit func(k K, v *V) bool) bool
	// Dup returns an independent map holding the same entries. Values are
	// copied shallowly.
	Dup() Map[K, V]
}

// Equal reports whether a and b hold exactly the same key-value pairs,
// regardless of iteration order.
func Equal[K any, V comparable](a, b Map[K, V]) bool {
	if a == b {
		return true
	}
	return EqualFunc(a, b, func(x, y V) bool { return x == y })
}

// EqualFunc is Equal with a caller-supplied value comparison.
func EqualFunc[K any, V1 any, V2 any](a Map[K, V1], b Map[K, V2], eq func(V1, V2) bool) bool {
	if a.Size() != b.Size() {
		return false
	}
	for e := range a.Pairs() {
		v, err := b.Get(e.Key)
		if err != nil || !eq(e.Value, v) {
			return false
		}
	}
	return true
}
