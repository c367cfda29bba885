// Package ringbuffer provides a growable double-ended ring buffer.
package ringbuffer

import (
	"fmt"

	"github.com/pkg/errors"
)

type slot[T any] struct {
	value    T
	occupied bool
}

// RingBuffer is a double-ended queue backed by a wraparound slot store that
// doubles in capacity whenever an insertion finds it full. Pushes and pops at
// either end are amortized O(1).
//
// The zero value is an empty buffer with zero capacity. A RingBuffer is not
// safe for concurrent use.
type RingBuffer[T any] struct {
	// Slots [head, head+length) modulo len(slots) are occupied, all others
	// are empty.
	slots  []slot[T]
	head   int
	length int
}

// New creates an empty buffer with zero capacity.
func New[T any]() *RingBuffer[T] {
	return WithCapacity[T](0)
}

// WithCapacity creates an empty buffer with n slots. It panics if n is negative.
func WithCapacity[T any](n int) *RingBuffer[T] {
	if n < 0 {
		panic(errors.Errorf("ringbuffer: negative capacity %d", n))
	}

	return &RingBuffer[T]{slots: make([]slot[T], n)}
}

// Len returns the number of elements in the buffer.
func (b *RingBuffer[T]) Len() int {
	return b.length
}

// Cap returns the number of slots in the buffer. It never decreases.
func (b *RingBuffer[T]) Cap() int {
	return len(b.slots)
}

// Empty reports whether the buffer holds no elements.
func (b *RingBuffer[T]) Empty() bool {
	return b.length == 0
}

// physical translates logical index i into a slot index.
func (b *RingBuffer[T]) physical(i int) int {
	return (b.head + i) % len(b.slots)
}

// grow doubles the slot count and moves the live window to slots [0, length).
//
// Preconditions: b.length == len(b.slots).
func (b *RingBuffer[T]) grow() {
	size := b.length * 2
	if size < 1 {
		size = 1
	}

	slots := make([]slot[T], size)
	for i := 0; i < b.length; i++ {
		old := &b.slots[b.physical(i)]
		slots[i] = *old
		*old = slot[T]{}
	}

	b.slots = slots
	b.head = 0
}

// PushBack appends v at the back of the buffer.
func (b *RingBuffer[T]) PushBack(v T) {
	if b.length == len(b.slots) {
		b.grow()
	}

	b.slots[b.physical(b.length)] = slot[T]{value: v, occupied: true}
	b.length++
}

// PushFront inserts v at the front of the buffer.
func (b *RingBuffer[T]) PushFront(v T) {
	if b.length == len(b.slots) {
		b.grow()
	}

	if b.head == 0 {
		b.head = len(b.slots) - 1
	} else {
		b.head--
	}

	b.slots[b.head] = slot[T]{value: v, occupied: true}
	b.length++
}

// PopBack removes and returns the element at the back of the buffer, or the
// zero value and false if the buffer is empty.
func (b *RingBuffer[T]) PopBack() (T, bool) {
	if b.length == 0 {
		var zero T
		return zero, false
	}

	v := b.take(b.physical(b.length - 1))
	b.length--

	return v, true
}

// PopFront removes and returns the element at the front of the buffer, or the
// zero value and false if the buffer is empty.
func (b *RingBuffer[T]) PopFront() (T, bool) {
	if b.length == 0 {
		var zero T
		return zero, false
	}

	v := b.take(b.head)
	b.head = b.physical(1)
	b.length--

	return v, true
}

// take empties slot idx and returns what it held.
func (b *RingBuffer[T]) take(idx int) T {
	v := b.slots[idx].value
	b.slots[idx] = slot[T]{}
	return v
}

// Front returns the element at the front without removing it.
func (b *RingBuffer[T]) Front() (T, bool) {
	if b.length == 0 {
		var zero T
		return zero, false
	}
	return b.slots[b.head].value, true
}

// Back returns the element at the back without removing it.
func (b *RingBuffer[T]) Back() (T, bool) {
	if b.length == 0 {
		var zero T
		return zero, false
	}
	return b.slots[b.physical(b.length-1)].value, true
}

// At returns a pointer to the element at logical index i, where 0 is the
// front. The pointer may be used to modify the element in place and is only
// valid until the next push or pop.
//
// At panics if i is not in [0, Len()).
func (b *RingBuffer[T]) At(i int) *T {
	if i < 0 || i >= b.length {
		panic(errors.Errorf("ringbuffer: index %d out of range [0, %d)", i, b.length))
	}

	return &b.slots[b.physical(i)].value
}

// Get returns the element at logical index i. It panics if i is out of range.
func (b *RingBuffer[T]) Get(i int) T {
	return *b.At(i)
}

// Set replaces the element at logical index i. It panics if i is out of range.
func (b *RingBuffer[T]) Set(i int, v T) {
	*b.At(i) = v
}

// Slice returns the elements front to back in a newly allocated slice.
func (b *RingBuffer[T]) Slice() []T {
	out := make([]T, 0, b.length)
	for v := range b.Values() {
		out = append(out, v)
	}
	return out
}

func (b *RingBuffer[T]) String() string {
	return fmt.Sprint(b.Slice())
}
