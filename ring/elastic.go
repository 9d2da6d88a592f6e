// File: ring/elastic.go
// License: Apache-2.0
//
// Elastic wrapper over Buffer: pop requests are always satisfied by
// resampling the available elements instead of failing on supply/demand
// mismatch, and backlog above the ideal maximum is drained opportunistically.

package ring

import "github.com/momentics/hioload-ds/api"

// Ensure compile-time interface compliance.
var _ api.ElasticFIFO[any] = (*Elastic[any])(nil)

// Elastic is a fixed-capacity FIFO that tolerates supply/demand mismatch.
//
// When the buffer holds fewer elements than a request asks for, the
// elements it does have are stretched (repeated) to fill the request. When
// occupancy grows past the ideal maximum, elements are uniformly dropped
// during the next request to bring the backlog back to the ideal length.
type Elastic[T any] struct {
	rb       *Buffer[T]
	idealMax int
	def      T
}

// NewElastic creates an elastic buffer holding up to capacity elements,
// using def for total-emptiness fallback. idealMax is the occupancy
// threshold past which requests begin dropping elements; it is fixed for
// the lifetime of the buffer. Panics if idealMax is negative or exceeds
// capacity.
func NewElastic[T any](capacity int, def T, idealMax int) *Elastic[T] {
	if idealMax < 0 || idealMax > capacity {
		panic("ring: ideal maximum out of range")
	}
	return &Elastic[T]{
		rb:       New(capacity, def),
		idealMax: idealMax,
		def:      def,
	}
}

// PushBack appends value; returns false if the buffer is full.
func (e *Elastic[T]) PushBack(value T) bool {
	return e.rb.PushBack(value)
}

// PushBackSlice appends all values in order, or none at all.
func (e *Elastic[T]) PushBackSlice(values []T) bool {
	return e.rb.PushBackSlice(values)
}

// PopFrontSlice fills out with elements. It never fails: the returned
// PopResult reports whether the data was exact, stretched, compacted, or
// synthesized from the default value.
func (e *Elastic[T]) PopFrontSlice(out []T) api.PopResult {
	bufLen := e.rb.Len()
	if len(out) <= bufLen {
		if bufLen-len(out) < e.idealMax {
			if !e.rb.PopFrontSlice(out) {
				panic("ring: exact pop failed with occupancy checked")
			}
			return api.PopResult{Outcome: api.PopExact}
		}
		// Consume enough extra elements that occupancy settles at the
		// ideal maximum after the pop.
		total := (bufLen - e.idealMax) + len(out)
		return e.sampleN(out, total)
	}
	return e.sampleN(out, bufLen)
}

// sampleN consumes n real elements while filling every slot of out, mapping
// output index i to source offset i*n/len(out) from the read cursor. The
// mapping is monotonic and spans [0, n), so it stretches when n < len(out)
// and compacts when n > len(out) with no per-element branching.
func (e *Elastic[T]) sampleN(out []T, n int) api.PopResult {
	if n == 0 {
		for i := range out {
			out[i] = e.def
		}
		return api.PopResult{Outcome: api.PopEmpty}
	}
	if n > e.rb.Len() {
		panic("ring: sample size exceeds occupancy")
	}
	for i := range out {
		src := e.rb.advance(e.rb.read, i*n/len(out))
		out[i] = e.rb.data[src]
	}
	e.rb.read = e.rb.advance(e.rb.read, n)

	if len(out) > n {
		return api.PopResult{Outcome: api.PopUpsampled, Sampled: n}
	}
	return api.PopResult{Outcome: api.PopDownsampled, Sampled: n}
}

// Len returns the number of elements currently stored.
func (e *Elastic[T]) Len() int {
	return e.rb.Len()
}

// Free returns the number of free slots remaining.
func (e *Elastic[T]) Free() int {
	return e.rb.Free()
}

// Cap returns the fixed maximum number of storable elements.
func (e *Elastic[T]) Cap() int {
	return e.rb.Cap()
}

// IdealMax returns the drain threshold configured at construction.
func (e *Elastic[T]) IdealMax() int {
	return e.idealMax
}
