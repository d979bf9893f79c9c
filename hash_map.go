package collections

import (
	"fmt"
	"iter"

	"golang.org/x/exp/maps"
)

type hashMap[K comparable, V any] struct {
	entries map[K]V
}

// NewHashMap returns an empty Map backed by a native hash table.
func NewHashMap[K comparable, V any]() Map[K, V] {
	return &hashMap[K, V]{
		entries: make(map[K]V),
	}
}

// NewHashMapFrom returns a Map holding a copy of src. Later changes to src do
// not affect the returned map, and vice versa.
func NewHashMapFrom[K comparable, V any](src map[K]V) Map[K, V] {
	m := &hashMap[K, V]{
		entries: maps.Clone(src),
	}
	if m.entries == nil {
		m.entries = make(map[K]V)
	}
	return m
}

// NewHashMapOf returns a Map holding the given entries. Entries sharing a key
// overwrite left to right.
func NewHashMapOf[K comparable, V any](entries ...Entry[K, V]) Map[K, V] {
	m := make(map[K]V, len(entries))
	for _, e := range entries {
		m[e.Key] = e.Value
	}
	return &hashMap[K, V]{
		entries: m,
	}
}

func (m *hashMap[K, V]) Empty() bool {
	return len(m.entries) == 0
}

func (m *hashMap[K, V]) Size() int {
	return len(m.entries)
}

func (m *hashMap[K, V]) Clear() {
	maps.Clear(m.entries)
}

func (m *hashMap[K, V]) Get(k K) (v V, err error) {
	if v, ok := m.entries[k]; ok {
		return v, nil
	}
	return v, ErrKeyNotFound
}

func (m *hashMap[K, V]) Set(k K, v V) {
	m.entries[k] = v
}

func (m *hashMap[K, V]) Insert(e Entry[K, V]) {
	m.entries[e.Key] = e.Value
}

func (m *hashMap[K, V]) GetOrElse(k K, def func() V) V {
	if v, ok := m.entries[k]; ok {
		return v
	}
	return def()
}

func (m *hashMap[K, V]) Remove(k K) bool {
	if _, ok := m.entries[k]; !ok {
		return false
	}
	delete(m.entries, k)
	return true
}

func (m *hashMap[K, V]) Contains(k K) bool {
	_, ok := m.entries[k]
	return ok
}

// Keys ranges over the live backing table: deleting the yielded key is safe,
// entries removed mid-iteration are not produced, and entries added
// mid-iteration may or may not be.
func (m *hashMap[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.entries {
			if !yield(k) {
				return
			}
		}
	}
}

func (m *hashMap[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.entries {
			if !yield(v) {
				return
			}
		}
	}
}

func (m *hashMap[K, V]) Pairs() iter.Seq[Entry[K, V]] {
	return func(yield func(Entry[K, V]) bool) {
		for k, v := range m.entries {
			if !yield(Entry[K, V]{Key: k, Value: v}) {
				return
			}
		}
	}
}

func (m *hashMap[K, V]) ForEach(visit func(k K, v *V) bool) bool {
	for k, v := range m.entries {
		ok := visit(k, &v)
		m.entries[k] = v
		if !ok {
			return false
		}
	}
	return true
}

func (m *hashMap[K, V]) Dup() Map[K, V] {
	return &hashMap[K, V]{
		entries: maps.Clone(m.entries),
	}
}

func (m *hashMap[K, V]) String() string {
	return fmt.Sprint(m.entries)
}
