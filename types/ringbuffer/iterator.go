package ringbuffer

import "iter"

// Iterator is a read-only forward cursor over a RingBuffer, front to back.
//
// The buffer must not be pushed to or popped from while an Iterator over it
// is in use.
type Iterator[T any] struct {
	buf *RingBuffer[T]
	pos int
}

// Iter returns a new Iterator positioned at the front of b.
func (b *RingBuffer[T]) Iter() *Iterator[T] {
	return &Iterator[T]{buf: b}
}

// Next returns a pointer to the next element and advances the cursor. It
// returns nil and false once every element has been visited.
func (it *Iterator[T]) Next() (*T, bool) {
	if it.pos >= it.buf.Len() {
		return nil, false
	}

	v := it.buf.At(it.pos)
	it.pos++

	return v, true
}

// All returns an iterator over logical indices and elements, front to back.
func (b *RingBuffer[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		it := b.Iter()
		for i := 0; ; i++ {
			v, ok := it.Next()
			if !ok || !yield(i, *v) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements, front to back.
func (b *RingBuffer[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := b.Iter()
		for {
			v, ok := it.Next()
			if !ok || !yield(*v) {
				return
			}
		}
	}
}
