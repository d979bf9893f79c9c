package collections

type Set[V any] interface {
	Contains(v V) bool
	Add(v V) error
	Remove(v V) error
	Size() int
	Entries() []V
	// Each visits every element; the visitor returns false to stop early.
	// Each returns the visitor's last signal.
	Each(visit func(v V) bool) bool
}
