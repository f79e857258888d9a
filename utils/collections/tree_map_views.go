package collections

// inOrder walks the subtree rooted at root left, self, right and projects
// every node. The result is sized to size, the live entry count.
func inOrder[K any, V any, E any](root *node[K, V], size int, project func(*node[K, V]) E) []E {
	out := make([]E, 0, size)
	s := NewStack[*node[K, V]]()
	n := root
	for n != nil || !s.IsEmpty() {
		for n != nil {
			s.Push(n)
			n = n.left
		}
		n, _ = s.Pop()
		out = append(out, project(n))
		n = n.right
	}
	return out
}

func keyOf[K any, V any](n *node[K, V]) K {
	return n.key
}

func valueOf[K any, V any](n *node[K, V]) V {
	return n.value
}

func entryOf[K any, V any](n *node[K, V]) Entry[K, V] {
	return Entry[K, V]{Key: n.key, Value: n.value}
}

func (m *treeMap[K, V]) Keys() Collection[K] {
	return &view[K]{
		size: m.Size,
		snapshot: func() []K {
			return inOrder(m.root, m.size, keyOf[K, V])
		},
		contains: func(k K) bool {
			found, _ := m.ContainsKey(k)
			return found
		},
	}
}

func (m *treeMap[K, V]) Values() Collection[V] {
	return &view[V]{
		size: m.Size,
		snapshot: func() []V {
			return inOrder(m.root, m.size, valueOf[K, V])
		},
		contains: m.ContainsValue,
	}
}

func (m *treeMap[K, V]) Entries() Collection[Entry[K, V]] {
	return &view[Entry[K, V]]{
		size: m.Size,
		snapshot: func() []Entry[K, V] {
			return inOrder(m.root, m.size, entryOf[K, V])
		},
		contains: func(e Entry[K, V]) bool {
			v, found, err := m.Get(e.Key)
			return err == nil && found && m.equals(v, e.Value)
		},
	}
}
