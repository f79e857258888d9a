package collections

import "fmt"

type hashMap[K comparable, V any] struct {
	entries map[K]V
	equals  EqualsFunc[V]
}

func NewHashMap[K comparable, V any]() Map[K, V] {
	return &hashMap[K, V]{
		entries: make(map[K]V),
		equals:  DeepEquals[V],
	}
}

func (m *hashMap[K, V]) Size() int {
	return len(m.entries)
}

func (m *hashMap[K, V]) IsEmpty() bool {
	return len(m.entries) == 0
}

func (m *hashMap[K, V]) Put(k K, v V) (prev V, replaced bool, err error) {
	if isNil(k) {
		return prev, false, fmt.Errorf("%w: nil key", ErrInvalidArgument)
	}
	prev, replaced = m.entries[k]
	m.entries[k] = v
	return prev, replaced, nil
}

func (m *hashMap[K, V]) Get(k K) (v V, found bool, err error) {
	if isNil(k) {
		return v, false, fmt.Errorf("%w: nil key", ErrInvalidArgument)
	}
	v, found = m.entries[k]
	return v, found, nil
}

func (m *hashMap[K, V]) ContainsKey(k K) (bool, error) {
	_, found, err := m.Get(k)
	return found, err
}

func (m *hashMap[K, V]) ContainsValue(v V) bool {
	for _, u := range m.entries {
		if m.equals(u, v) {
			return true
		}
	}
	return false
}

func (m *hashMap[K, V]) Remove(k K) (v V, removed bool, err error) {
	if isNil(k) {
		return v, false, fmt.Errorf("%w: nil key", ErrInvalidArgument)
	}
	v, removed = m.entries[k]
	if removed {
		delete(m.entries, k)
	}
	return v, removed, nil
}

func (m *hashMap[K, V]) PutAll(other Map[K, V]) error {
	entries, err := snapshotEntries(other)
	if err != nil {
		return err
	}
	for _, e := range entries {
		m.entries[e.Key] = e.Value
	}
	return nil
}

func (m *hashMap[K, V]) Clear() {
	m.entries = make(map[K]V)
}

func (m *hashMap[K, V]) Keys() Collection[K] {
	return &view[K]{
		size: m.Size,
		snapshot: func() []K {
			arr := make([]K, 0, m.Size())
			for k := range m.entries {
				arr = append(arr, k)
			}
			return arr
		},
		contains: func(k K) bool {
			found, _ := m.ContainsKey(k)
			return found
		},
	}
}

func (m *hashMap[K, V]) Values() Collection[V] {
	return &view[V]{
		size: m.Size,
		snapshot: func() []V {
			arr := make([]V, 0, m.Size())
			for _, v := range m.entries {
				arr = append(arr, v)
			}
			return arr
		},
		contains: m.ContainsValue,
	}
}

func (m *hashMap[K, V]) Entries() Collection[Entry[K, V]] {
	return &view[Entry[K, V]]{
		size: m.Size,
		snapshot: func() []Entry[K, V] {
			arr := make([]Entry[K, V], 0, m.Size())
			for k, v := range m.entries {
				arr = append(arr, Entry[K, V]{Key: k, Value: v})
			}
			return arr
		},
		contains: func(e Entry[K, V]) bool {
			v, found, _ := m.Get(e.Key)
			return found && m.equals(v, e.Value)
		},
	}
}
