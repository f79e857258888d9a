package collections

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStack(t *testing.T) {
	s := NewStack[int]()
	_, ok := s.Pop()
	require.Equal(t, false, ok)
	s.Push(1)
	s.Push(2)
	s.Push(3)
	require.Equal(t, 3, s.Size())
	top, ok := s.Peek()
	require.Equal(t, true, ok)
	require.Equal(t, 3, top)
	for _, expected := range []int{3, 2, 1} {
		v, ok := s.Pop()
		require.Equal(t, true, ok)
		require.Equal(t, expected, v)
	}
	require.Equal(t, true, s.IsEmpty())
	_, ok = s.Peek()
	require.Equal(t, false, ok)
}

func TestQueue(t *testing.T) {
	q := NewQueue[int]()
	_, ok := q.Pop()
	require.Equal(t, false, ok)
	for i := 0; i < 10; i++ {
		q.Push(i)
	}
	for i := 0; i < 7; i++ {
		v, ok := q.Pop()
		require.Equal(t, true, ok)
		require.Equal(t, i, v)
	}
	q.Push(10)
	require.Equal(t, 4, q.Size())
	head, _ := q.Peek()
	require.Equal(t, 7, head)
	require.Equal(t, "[7 8 9 10]", q.(*queue[int]).String())
	for i := 7; i <= 10; i++ {
		v, _ := q.Pop()
		require.Equal(t, i, v)
	}
	require.Equal(t, true, q.IsEmpty())
}
