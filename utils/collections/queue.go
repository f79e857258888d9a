package collections

import (
	"fmt"
)

type Queue[V any] interface {
	Push(V)
	Pop() (V, bool)
	Peek() (V, bool)
	Size() int
	IsEmpty() bool
}

// queue keeps a head offset and compacts once the consumed prefix
// dominates the backing slice.
type queue[V any] struct {
	entries []V
	head    int
}

func NewQueue[V any]() Queue[V] {
	return &queue[V]{
		entries: make([]V, 0),
	}
}

func (s *queue[V]) Push(v V) {
	s.entries = append(s.entries, v)
}

func (s *queue[V]) Pop() (v V, ok bool) {
	if s.IsEmpty() {
		return v, false
	}
	v = s.entries[s.head]
	var zero V
	s.entries[s.head] = zero
	s.head++
	if s.head > len(s.entries)/2 {
		s.entries = append(s.entries[:0], s.entries[s.head:]...)
		s.head = 0
	}
	return v, true
}

func (s *queue[V]) Peek() (v V, ok bool) {
	if s.IsEmpty() {
		return v, false
	}
	return s.entries[s.head], true
}

func (s *queue[V]) Size() int {
	return len(s.entries) - s.head
}

func (s *queue[V]) IsEmpty() bool {
	return s.Size() == 0
}

func (s queue[V]) String() string {
	return fmt.Sprint(s.entries[s.head:])
}
