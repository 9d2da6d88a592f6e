// File: pool/objpool.go
// License: Apache-2.0
//
// Generic object pooling over sync.Pool.

package pool

import "sync"

// ObjectPool is the reuse contract shared by the pools in this package.
type ObjectPool[T any] interface {
	Get() T
	Put(T)
}

// SyncPool adapts sync.Pool to a typed Get/Put pair.
type SyncPool[T any] struct {
	pool sync.Pool
}

// NewSyncPool creates a pool that calls creator when empty.
func NewSyncPool[T any](creator func() T) *SyncPool[T] {
	sp := &SyncPool[T]{}
	sp.pool.New = func() any { return creator() }
	return sp
}

// Get returns a pooled object, creating one if none is available.
func (sp *SyncPool[T]) Get() T {
	return sp.pool.Get().(T)
}

// Put returns an object to the pool for later reuse.
func (sp *SyncPool[T]) Put(obj T) {
	sp.pool.Put(obj)
}
