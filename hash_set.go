package collections

type hashSet[R comparable, V any] struct {
	entries  Map[R, V]
	hashFunc HashSetHashFunc[R, V]
}

type HashSetHashFunc[R comparable, V any] func(V) R

// NewHashSet returns a Set whose elements are keyed by f.
func NewHashSet[R comparable, V any](f HashSetHashFunc[R, V]) Set[V] {
	return &hashSet[R, V]{
		entries:  NewHashMap[R, V](),
		hashFunc: f,
	}
}

func (s *hashSet[R, V]) Contains(v V) bool {
	return s.entries.Contains(s.hashFunc(v))
}

func (s *hashSet[R, V]) Add(v V) error {
	if s.Contains(v) {
		return ErrValueExisted
	}
	s.entries.Set(s.hashFunc(v), v)
	return nil
}

func (s *hashSet[R, V]) Remove(v V) error {
	if !s.entries.Remove(s.hashFunc(v)) {
		return ErrValueNotExisted
	}
	return nil
}

func (s *hashSet[R, V]) Size() int {
	return s.entries.Size()
}

func (s *hashSet[R, V]) Entries() []V {
	arr := make([]V, 0, s.Size())
	for v := range s.entries.Values() {
		arr = append(arr, v)
	}
	return arr
}

func (s *hashSet[R, V]) Each(visit func(v V) bool) bool {
	return s.entries.ForEach(func(_ R, v *V) bool {
		return visit(*v)
	})
}
