// File: ring/doc.go
// License: Apache-2.0
//
// Package ring implements fixed-capacity FIFO ring buffers for
// periodically driven hot paths: a plain all-or-nothing Buffer and an
// Elastic wrapper that absorbs supply/demand mismatch by resampling.
//
// Both structures allocate exactly once, at construction. The backing
// store holds capacity+1 slots; the extra slot is deliberate, so that
// read==write always means empty without a separate occupancy counter.
// Elements are stored by assignment, and the elastic sampler may write the
// same source element into several output slots, so element types should
// be value-like or treated as immutable.
//
// Neither structure is safe for concurrent mutation; callers in
// multi-threaded settings must synchronize externally.
package ring
