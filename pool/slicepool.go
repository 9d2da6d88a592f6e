// File: pool/slicepool.go
// License: Apache-2.0
//
// Pooled fixed-length output slices for elastic pop call sites.

package pool

// Ensure compile-time interface compliance.
var _ ObjectPool[[]byte] = (*SlicePool[byte])(nil)

// SlicePool hands out []T of one fixed length so periodic consumers can
// reuse their pop output buffers instead of allocating each tick.
//
// The length is fixed on purpose: elastic pops fill exactly len(out) slots,
// and recycling a slice of the wrong length would silently change the
// request size of whichever caller picks it up next.
type SlicePool[T any] struct {
	size  int
	inner *SyncPool[[]T]
}

// NewSlicePool creates a pool of slices of the given fixed length.
// Panics if size is negative.
func NewSlicePool[T any](size int) *SlicePool[T] {
	if size < 0 {
		panic("pool: negative slice size")
	}
	return &SlicePool[T]{
		size:  size,
		inner: NewSyncPool(func() []T { return make([]T, size) }),
	}
}

// Get returns a slice of the pool's configured length. Contents are
// unspecified; callers are expected to overwrite every slot.
func (p *SlicePool[T]) Get() []T {
	return p.inner.Get()
}

// Put recycles a slice previously returned by Get. Slices of any other
// length are discarded.
func (p *SlicePool[T]) Put(s []T) {
	if len(s) != p.size {
		return
	}
	p.inner.Put(s)
}

// Size returns the fixed slice length handed out by this pool.
func (p *SlicePool[T]) Size() int {
	return p.size
}
