package collections

import "fmt"

// Collection is a read-only view over a map. Size and membership reflect the
// map at call time, iteration works on a snapshot taken by Iterator.
type Collection[E any] interface {
	Size() int
	IsEmpty() bool
	Contains(e E) bool
	Iterator() Iterator[E]
	Slice() []E
}

type Iterator[E any] interface {
	HasNext() bool
	Next() (E, bool)
}

type view[E any] struct {
	size     func() int
	snapshot func() []E
	contains func(E) bool
}

func (v *view[E]) Size() int {
	return v.size()
}

func (v *view[E]) IsEmpty() bool {
	return v.size() == 0
}

func (v *view[E]) Contains(e E) bool {
	return v.contains(e)
}

func (v *view[E]) Iterator() Iterator[E] {
	return &sliceIterator[E]{
		entries: v.snapshot(),
	}
}

func (v *view[E]) Slice() []E {
	return v.snapshot()
}

func (v *view[E]) String() string {
	return fmt.Sprint(v.snapshot())
}

type sliceIterator[E any] struct {
	entries []E
	pos     int
}

func (it *sliceIterator[E]) HasNext() bool {
	return it.pos < len(it.entries)
}

func (it *sliceIterator[E]) Next() (e E, ok bool) {
	if !it.HasNext() {
		return e, false
	}
	e = it.entries[it.pos]
	it.pos++
	return e, true
}
