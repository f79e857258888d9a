package collections

import "fmt"

type hashSet[R comparable, V any] struct {
	entries  map[R]V
	hashFunc HashSetHashFunc[R, V]
}

// HashSetHashFunc maps a value to the identity the set deduplicates on.
type HashSetHashFunc[R comparable, V any] func(V) R

func NewHashSet[R comparable, V any](f HashSetHashFunc[R, V]) Set[V] {
	return &hashSet[R, V]{
		entries:  make(map[R]V),
		hashFunc: f,
	}
}

func (s *hashSet[R, V]) Contains(v V) bool {
	_, found := s.entries[s.hashFunc(v)]
	return found
}

func (s *hashSet[R, V]) Add(v V) error {
	hash := s.hashFunc(v)
	if _, found := s.entries[hash]; found {
		return fmt.Errorf("%w: %v", ErrValueExisted, hash)
	}
	s.entries[hash] = v
	return nil
}

func (s *hashSet[R, V]) Remove(v V) error {
	hash := s.hashFunc(v)
	if _, found := s.entries[hash]; !found {
		return fmt.Errorf("%w: %v", ErrValueNotExisted, hash)
	}
	delete(s.entries, hash)
	return nil
}

func (s *hashSet[R, V]) Size() int {
	return len(s.entries)
}

func (s *hashSet[R, V]) IsEmpty() bool {
	return len(s.entries) == 0
}

func (s *hashSet[R, V]) Entries() []V {
	arr := make([]V, 0, s.Size())
	for _, v := range s.entries {
		arr = append(arr, v)
	}
	return arr
}
