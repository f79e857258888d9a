package collections

import (
	"fmt"
	"reflect"
)

type Map[K any, V any] interface {
	Size() int
	IsEmpty() bool
	Put(k K, v V) (V, bool, error)
	Get(k K) (V, bool, error)
	ContainsKey(k K) (bool, error)
	ContainsValue(v V) bool
	Remove(k K) (V, bool, error)
	PutAll(m Map[K, V]) error
	Clear()
	Keys() Collection[K]
	Values() Collection[V]
	Entries() Collection[Entry[K, V]]
}

type Entry[K any, V any] struct {
	Key   K
	Value V
}

func (e Entry[K, V]) String() string {
	return fmt.Sprintf("%v=%v", e.Key, e.Value)
}

type EqualsFunc[V any] func(a, b V) bool

func DeepEquals[V any](a, b V) bool {
	return reflect.DeepEqual(a, b)
}

// snapshotEntries copies the entries of m and rejects nil maps or nil keys
// before the caller mutates anything.
func snapshotEntries[K any, V any](m Map[K, V]) ([]Entry[K, V], error) {
	if isNil(m) {
		return nil, fmt.Errorf("%w: nil map", ErrInvalidArgument)
	}
	entries := m.Entries().Slice()
	for _, e := range entries {
		if isNil(e.Key) {
			return nil, fmt.Errorf("%w: nil key", ErrInvalidArgument)
		}
	}
	return entries, nil
}
