package collections

import "fmt"

type checkFrame[K any, V any] struct {
	n      *node[K, V]
	lo, hi *node[K, V]
}

// Check walks the tree level by level and verifies that keys respect the
// bounds inherited from their ancestors, that no node is reachable twice
// and that the entry count matches the reachable nodes.
func (m *treeMap[K, V]) Check() error {
	seen := NewHashSet(func(n *node[K, V]) *node[K, V] {
		return n
	})
	q := NewQueue[checkFrame[K, V]]()
	if m.root != nil {
		q.Push(checkFrame[K, V]{n: m.root})
	}
	for !q.IsEmpty() {
		f, _ := q.Pop()
		if err := seen.Add(f.n); err != nil {
			return fmt.Errorf("%w: node %v reachable twice", ErrInvariantViolated, f.n.key)
		}
		if f.lo != nil && m.compare(f.n.key, f.lo.key) <= 0 {
			return fmt.Errorf("%w: key %v not greater than ancestor %v", ErrInvariantViolated, f.n.key, f.lo.key)
		}
		if f.hi != nil && m.compare(f.n.key, f.hi.key) >= 0 {
			return fmt.Errorf("%w: key %v not less than ancestor %v", ErrInvariantViolated, f.n.key, f.hi.key)
		}
		if f.n.left != nil {
			q.Push(checkFrame[K, V]{n: f.n.left, lo: f.lo, hi: f.n})
		}
		if f.n.right != nil {
			q.Push(checkFrame[K, V]{n: f.n.right, lo: f.n, hi: f.hi})
		}
	}
	if seen.Size() != m.size {
		return fmt.Errorf("%w: size %d but %d reachable nodes", ErrInvariantViolated, m.size, seen.Size())
	}
	return nil
}

// Height is the number of nodes on the longest root to leaf path.
func (m *treeMap[K, V]) Height() int {
	height := 0
	q := NewQueue[*node[K, V]]()
	if m.root != nil {
		q.Push(m.root)
	}
	for !q.IsEmpty() {
		height++
		for i := q.Size(); i > 0; i-- {
			n, _ := q.Pop()
			if n.left != nil {
				q.Push(n.left)
			}
			if n.right != nil {
				q.Push(n.right)
			}
		}
	}
	return height
}
