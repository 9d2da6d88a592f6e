// Package api
// License: Apache-2.0
//
// FIFO contracts for fixed-capacity ring buffers.

package api

// FIFO is a fixed-capacity first-in-first-out buffer contract.
//
// Implementations store independent copies of elements: assignment is the
// copy operation, so element types holding references share pointed-to data.
// Bulk operations are all-or-nothing; no partial application ever occurs.
type FIFO[T any] interface {
	// PushBack appends one element; returns false if the buffer is full.
	PushBack(value T) bool
	// PushBackSlice appends all values in order, or none at all.
	// Returns false if free space is smaller than len(values).
	PushBackSlice(values []T) bool
	// PopFront removes and returns the oldest element; ok is false if empty.
	PopFront() (T, bool)
	// PeekFront returns the oldest element without removing it.
	PeekFront() (T, bool)
	// PopFrontSlice fills out in FIFO order, or leaves it untouched.
	// Returns false if occupancy is smaller than len(out).
	PopFrontSlice(out []T) bool
	// Len returns current occupancy.
	Len() int
	// Free returns the number of free slots remaining.
	Free() int
	// Cap returns the fixed maximum number of storable elements.
	Cap() int
}

// ElasticFIFO is a FIFO whose bulk pop never fails: supply/demand mismatches
// are absorbed by resampling, and the outcome tag reports any degradation.
type ElasticFIFO[T any] interface {
	PushBack(value T) bool
	PushBackSlice(values []T) bool
	// PopFrontSlice always fully populates out. See PopResult for the
	// possible outcomes of a request.
	PopFrontSlice(out []T) PopResult
	Len() int
	Free() int
	Cap() int
}
