package collections

// Entry is a single key-value pair. Entries are constructed once and never
// modified by the package.
type Entry[K any, V any] struct {
	Key   K
	Value V
}
