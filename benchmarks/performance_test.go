// Package benchmarks
// License: Apache-2.0
//
// Performance benchmarks for hioload-ds components.

package benchmarks

import (
	"testing"

	"github.com/eapache/queue"

	"github.com/momentics/hioload-ds/pool"
	"github.com/momentics/hioload-ds/ring"
)

// BenchmarkRingPushPop measures single-element throughput.
func BenchmarkRingPushPop(b *testing.B) {
	rb := ring.New(1024, 0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !rb.PushBack(i) {
			rb.PopFront()
			rb.PushBack(i)
		}
		if i%2 == 0 {
			rb.PopFront()
		}
	}
}

// BenchmarkRingBulk measures all-or-nothing slice transfer throughput.
func BenchmarkRingBulk(b *testing.B) {
	rb := ring.New(4096, 0)
	in := make([]int, 64)
	out := make([]int, 64)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rb.PushBackSlice(in)
		rb.PopFrontSlice(out)
	}
}

// BenchmarkUnboundedQueueBaseline runs the same churn against an unbounded
// linked queue for comparison with the fixed ring.
func BenchmarkUnboundedQueueBaseline(b *testing.B) {
	q := queue.New()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Add(i)
		if i%2 == 0 {
			q.Remove()
		}
	}
}

// BenchmarkElasticExact measures the fast path: supply matches demand below
// the ideal maximum.
func BenchmarkElasticExact(b *testing.B) {
	erb := ring.NewElastic(1024, 0, 512)
	in := make([]int, 64)
	out := make([]int, 64)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		erb.PushBackSlice(in)
		erb.PopFrontSlice(out)
	}
}

// BenchmarkElasticUpsample measures the stretch path: every request finds
// fewer elements than output slots.
func BenchmarkElasticUpsample(b *testing.B) {
	erb := ring.NewElastic(1024, 0, 512)
	in := make([]int, 16)
	out := make([]int, 64)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		erb.PushBackSlice(in)
		erb.PopFrontSlice(out)
	}
}

// BenchmarkElasticDownsample measures the compaction path: backlog above the
// ideal maximum is shed on every request.
func BenchmarkElasticDownsample(b *testing.B) {
	erb := ring.NewElastic(4096, 0, 32)
	in := make([]int, 96)
	out := make([]int, 32)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !erb.PushBackSlice(in) {
			b.Fatal("producer overran the buffer")
		}
		erb.PopFrontSlice(out)
	}
}

// BenchmarkSlicePoolReuse measures pooled out-buffer turnaround.
func BenchmarkSlicePoolReuse(b *testing.B) {
	p := pool.NewSlicePool[int](64)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := p.Get()
		p.Put(s)
	}
}
