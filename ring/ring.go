// File: ring/ring.go
// License: Apache-2.0
//
// Fixed-capacity FIFO ring buffer with wrap-around cursors.
// Single allocation at construction; every operation runs in bounded time.

package ring

import "github.com/momentics/hioload-ds/api"

// Ensure compile-time interface compliance.
var _ api.FIFO[any] = (*Buffer[any])(nil)

// Buffer is a fixed-capacity FIFO over a pre-allocated backing store.
//
// The backing store holds capacity+1 slots; one slot stays permanently
// unoccupied so that cursor equality unambiguously means empty while the
// full condition never advances the write cursor onto the read cursor.
// Not safe for concurrent use without external synchronization.
type Buffer[T any] struct {
	data  []T
	read  int
	write int
}

// New creates a buffer that can hold up to capacity elements. The default
// value pre-populates unused slots; it is never read back until overwritten.
// Panics if capacity is negative.
func New[T any](capacity int, def T) *Buffer[T] {
	if capacity < 0 {
		panic("ring: negative capacity")
	}
	data := make([]T, capacity+1)
	for i := range data {
		data[i] = def
	}
	return &Buffer[T]{data: data}
}

// PushBack appends value at the write cursor. Returns false, leaving the
// buffer unchanged, if the buffer is already full.
func (b *Buffer[T]) PushBack(value T) bool {
	if b.Free() == 0 {
		return false
	}
	b.data[b.write] = value
	b.write = b.advance(b.write, 1)
	return true
}

// PushBackSlice appends every element of values in order. If free space is
// smaller than len(values) nothing is inserted and false is returned.
func (b *Buffer[T]) PushBackSlice(values []T) bool {
	if b.Free() < len(values) {
		return false
	}
	for _, v := range values {
		if !b.PushBack(v) {
			panic("ring: push failed with free space checked")
		}
	}
	return true
}

// PopFront removes and returns a copy of the oldest element.
// ok is false if the buffer is empty.
func (b *Buffer[T]) PopFront() (value T, ok bool) {
	if b.Len() == 0 {
		return value, false
	}
	value = b.data[b.read]
	b.read = b.advance(b.read, 1)
	return value, true
}

// PeekFront returns a copy of the oldest element without removing it.
func (b *Buffer[T]) PeekFront() (value T, ok bool) {
	if b.read == b.write {
		return value, false
	}
	return b.data[b.read], true
}

// PopFrontSlice fills out in FIFO order and advances the read cursor by
// len(out). If occupancy is smaller than len(out) the output slice is left
// untouched and false is returned.
func (b *Buffer[T]) PopFrontSlice(out []T) bool {
	if b.Len() < len(out) {
		return false
	}
	for i := range out {
		v, ok := b.PopFront()
		if !ok {
			panic("ring: pop failed with occupancy checked")
		}
		out[i] = v
	}
	return true
}

// Len returns the number of elements currently stored.
func (b *Buffer[T]) Len() int {
	return b.Cap() - b.Free()
}

// Free returns the number of free slots remaining.
func (b *Buffer[T]) Free() int {
	if b.read > b.write {
		return b.read - b.write - 1
	}
	return b.Cap() - (b.write - b.read)
}

// Cap returns the fixed maximum number of elements the buffer can store.
func (b *Buffer[T]) Cap() int {
	return len(b.data) - 1
}

// advance moves an index by a signed amount modulo the backing-store
// length. The magnitude must stay strictly below the backing-store length;
// a larger step indicates cursor corruption and panics.
func (b *Buffer[T]) advance(index, amount int) int {
	n := len(b.data)
	if amount <= -n || amount >= n {
		panic("ring: index advance exceeds backing store")
	}
	return ((index+amount)%n + n) % n
}
