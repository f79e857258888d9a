package collections

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// SortedMap is a Map whose views iterate in ascending key order.
type SortedMap[K any, V any] interface {
	Map[K, V]
	FirstKey() (K, bool)
	LastKey() (K, bool)
	Height() int
	Check() error
	String() string
}

// Comparator returns a negative number when a < b, zero when a == b and a
// positive number when a > b.
type Comparator[K any] func(a, b K) int

// NaturalOrder orders keys with < and places NaN before every other
// value, so float keys stay totally ordered.
func NaturalOrder[K constraints.Ordered](a, b K) int {
	aNaN, bNaN := isNaN(a), isNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return -1
	case bNaN:
		return 1
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func isNaN[K constraints.Ordered](x K) bool {
	return x != x
}

type node[K any, V any] struct {
	key   K
	value V
	left  *node[K, V]
	right *node[K, V]
}

// treeMap is an unbalanced binary search tree. It is not safe for
// concurrent use.
type treeMap[K any, V any] struct {
	root    *node[K, V]
	size    int
	compare Comparator[K]
	equals  EqualsFunc[V]
}

func NewTreeMap[K constraints.Ordered, V any]() SortedMap[K, V] {
	return NewTreeMapFunc[K, V](NaturalOrder[K], nil)
}

// NewTreeMapFunc orders keys with compare. A nil equals falls back to
// DeepEquals for value lookups.
func NewTreeMapFunc[K any, V any](compare Comparator[K], equals EqualsFunc[V]) SortedMap[K, V] {
	if compare == nil {
		panic("collections: nil comparator")
	}
	if equals == nil {
		equals = DeepEquals[V]
	}
	return &treeMap[K, V]{
		compare: compare,
		equals:  equals,
	}
}

func (m *treeMap[K, V]) Size() int {
	return m.size
}

func (m *treeMap[K, V]) IsEmpty() bool {
	return m.size == 0
}

func (m *treeMap[K, V]) Put(k K, v V) (prev V, replaced bool, err error) {
	if isNil(k) {
		return prev, false, fmt.Errorf("%w: nil key", ErrInvalidArgument)
	}
	m.root, prev, replaced = m.insert(m.root, k, v)
	if !replaced {
		m.size++
	}
	return prev, replaced, nil
}

// insert returns the new subtree root together with the replaced value, if any.
func (m *treeMap[K, V]) insert(n *node[K, V], k K, v V) (*node[K, V], V, bool) {
	var prev V
	if n == nil {
		return &node[K, V]{key: k, value: v}, prev, false
	}
	replaced := false
	switch c := m.compare(k, n.key); {
	case c < 0:
		n.left, prev, replaced = m.insert(n.left, k, v)
	case c > 0:
		n.right, prev, replaced = m.insert(n.right, k, v)
	default:
		prev, replaced = n.value, true
		n.value = v
	}
	return n, prev, replaced
}

func (m *treeMap[K, V]) find(k K) *node[K, V] {
	n := m.root
	for n != nil {
		c := m.compare(k, n.key)
		if c == 0 {
			return n
		}
		if c < 0 {
			n = n.left
		} else {
			n = n.right
		}
	}
	return nil
}

func (m *treeMap[K, V]) Get(k K) (v V, found bool, err error) {
	if isNil(k) {
		return v, false, fmt.Errorf("%w: nil key", ErrInvalidArgument)
	}
	if n := m.find(k); n != nil {
		return n.value, true, nil
	}
	return v, false, nil
}

func (m *treeMap[K, V]) ContainsKey(k K) (bool, error) {
	_, found, err := m.Get(k)
	return found, err
}

func (m *treeMap[K, V]) ContainsValue(v V) bool {
	for _, u := range m.Values().Slice() {
		if m.equals(u, v) {
			return true
		}
	}
	return false
}

func (m *treeMap[K, V]) Remove(k K) (v V, removed bool, err error) {
	if isNil(k) {
		return v, false, fmt.Errorf("%w: nil key", ErrInvalidArgument)
	}
	m.root, v, removed = m.delete(m.root, k)
	if removed {
		m.size--
	}
	return v, removed, nil
}

// delete unlinks the node holding k. A node with two children is replaced
// by its in-order successor, which is relinked rather than copied so keys
// stay attached to the node they were inserted with.
func (m *treeMap[K, V]) delete(n *node[K, V], k K) (*node[K, V], V, bool) {
	var v V
	if n == nil {
		return nil, v, false
	}
	removed := false
	switch c := m.compare(k, n.key); {
	case c < 0:
		n.left, v, removed = m.delete(n.left, k)
		return n, v, removed
	case c > 0:
		n.right, v, removed = m.delete(n.right, k)
		return n, v, removed
	}
	v = n.value
	if n.left == nil {
		return n.right, v, true
	}
	if n.right == nil {
		return n.left, v, true
	}
	right, successor := deleteMin(n.right)
	successor.left = n.left
	successor.right = right
	n.left, n.right = nil, nil
	return successor, v, true
}

// deleteMin detaches the leftmost node of the subtree rooted at n.
func deleteMin[K any, V any](n *node[K, V]) (*node[K, V], *node[K, V]) {
	if n.left == nil {
		right := n.right
		n.right = nil
		return right, n
	}
	var leftmost *node[K, V]
	n.left, leftmost = deleteMin(n.left)
	return n, leftmost
}

func (m *treeMap[K, V]) PutAll(other Map[K, V]) error {
	entries, err := snapshotEntries(other)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if _, _, err := m.Put(e.Key, e.Value); err != nil {
			return err
		}
	}
	return nil
}

func (m *treeMap[K, V]) Clear() {
	m.root = nil
	m.size = 0
}

func (m *treeMap[K, V]) FirstKey() (k K, ok bool) {
	n := m.root
	if n == nil {
		return k, false
	}
	for n.left != nil {
		n = n.left
	}
	return n.key, true
}

func (m *treeMap[K, V]) LastKey() (k K, ok bool) {
	n := m.root
	if n == nil {
		return k, false
	}
	for n.right != nil {
		n = n.right
	}
	return n.key, true
}

func (m *treeMap[K, V]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, e := range m.Entries().Slice() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(e.String())
	}
	sb.WriteByte('}')
	return sb.String()
}
