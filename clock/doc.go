// File: clock/doc.go
// License: Apache-2.0
//
// Package clock provides bounded counters for periodically driven loops:
// a wrapping Clock for "every N iterations" work and a dual-edge Timer
// that schedules active windows against an absolute tick counter.
//
// Both types are plain modular arithmetic with no OS interaction; the
// caller owns the notion of time and drives them explicitly.
package clock
