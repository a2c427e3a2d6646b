package huf

import (
	"github.com/chronos-tachyon/assert"
)

// Element is a node of a List.
type Element[T any] struct {
	// Value is the payload carried by this element.
	Value T

	prev *Element[T]
	next *Element[T]
}

// Next returns the element after e, or nil if e is the last element.
func (e *Element[T]) Next() *Element[T] {
	return e.next
}

// Prev returns the element before e, or nil if e is the first element.
func (e *Element[T]) Prev() *Element[T] {
	return e.prev
}

// List is an ordered sequence backed by a doubly linked list.  It holds
// the active (symbol, frequency) entries during the leaf phase of the
// codec: initial ordering, header emission, and the decoder's re-sort of
// the parsed table.
//
// The zero value is an empty list ready for use.
type List[T any] struct {
	head *Element[T]
	tail *Element[T]
	size int
}

// NewList returns a new, empty list.
func NewList[T any]() *List[T] {
	return new(List[T])
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.size
}

// Front returns the first element, or nil if the list is empty.
func (l *List[T]) Front() *Element[T] {
	return l.head
}

// Back returns the last element, or nil if the list is empty.
func (l *List[T]) Back() *Element[T] {
	return l.tail
}

// PushBack appends v at the end of the list and returns its element.
func (l *List[T]) PushBack(v T) *Element[T] {
	e := &Element[T]{Value: v}
	l.pushBackElem(e)
	return e
}

// PushFront inserts v at the front of the list and returns its element.
func (l *List[T]) PushFront(v T) *Element[T] {
	return l.InsertBefore(v, l.head)
}

// InsertBefore inserts v immediately before at and returns its element.
// A nil position appends at the end of the list.
func (l *List[T]) InsertBefore(v T, at *Element[T]) *Element[T] {
	e := &Element[T]{Value: v}
	if at == nil {
		l.pushBackElem(e)
		return e
	}
	e.next = at
	e.prev = at.prev
	if at.prev == nil {
		l.head = e
	} else {
		at.prev.next = e
	}
	at.prev = e
	l.size++
	return e
}

// Remove unlinks e from the list and returns its value.  The element must
// belong to this list.
func (l *List[T]) Remove(e *Element[T]) T {
	assert.Assertf(l.size > 0, "Remove on empty list")
	if e.prev == nil {
		l.head = e.next
	} else {
		e.prev.next = e.next
	}
	if e.next == nil {
		l.tail = e.prev
	} else {
		e.next.prev = e.prev
	}
	e.prev = nil
	e.next = nil
	l.size--
	return e.Value
}

// RemoveFront unlinks the first element and returns its value.  The list
// must not be empty.
func (l *List[T]) RemoveFront() T {
	assert.Assertf(l.size > 0, "RemoveFront on empty list")
	return l.Remove(l.head)
}

// Sort reorders the list in place using a stable merge sort: equal
// elements keep their relative order.  The less function must define a
// strict weak ordering.
func (l *List[T]) Sort(less func(a, b T) bool) {
	n := l.size
	if n < 2 {
		return
	}

	var left, right List[T]
	for i := 0; i < (n+1)/2; i++ {
		left.pushBackElem(l.removeFrontElem())
	}
	for l.size > 0 {
		right.pushBackElem(l.removeFrontElem())
	}

	left.Sort(less)
	right.Sort(less)

	// Merge, preferring the left half on ties for stability.
	for left.size > 0 || right.size > 0 {
		switch {
		case left.size == 0:
			l.pushBackElem(right.removeFrontElem())
		case right.size == 0:
			l.pushBackElem(left.removeFrontElem())
		case less(right.head.Value, left.head.Value):
			l.pushBackElem(right.removeFrontElem())
		default:
			l.pushBackElem(left.removeFrontElem())
		}
	}
}

// pushBackElem links an already-detached element at the end of the list.
func (l *List[T]) pushBackElem(e *Element[T]) {
	e.prev = l.tail
	e.next = nil
	if l.tail == nil {
		l.head = e
	} else {
		l.tail.next = e
	}
	l.tail = e
	l.size++
}

// removeFrontElem unlinks and returns the first element without copying
// its value, so Sort can shuffle elements between lists allocation-free.
func (l *List[T]) removeFrontElem() *Element[T] {
	e := l.head
	l.head = e.next
	if l.head == nil {
		l.tail = nil
	} else {
		l.head.prev = nil
	}
	e.prev = nil
	e.next = nil
	l.size--
	return e
}
