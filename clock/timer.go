// File: clock/timer.go
// License: Apache-2.0
//
// Dual-edge periodic timer driven by an absolute tick counter.

package clock

// TimerEvent indicates which edge of a timer was just hit.
type TimerEvent int

const (
	// RisingEdge marks the start of a timer's active window.
	RisingEdge TimerEvent = iota
	// FallingEdge marks the end of a timer's active window.
	FallingEdge
)

// String returns a short name suitable for diagnostics.
func (e TimerEvent) String() string {
	switch e {
	case RisingEdge:
		return "rising"
	case FallingEdge:
		return "falling"
	default:
		return "unknown"
	}
}

// Timer activates every period ticks, starting at a fixed offset within
// the period and staying active for a fixed duration. A zero duration
// produces rising edges only. Timer is a value type; copies evolve
// independently.
type Timer struct {
	period    uint64
	nextStart uint64
	nextStop  uint64
}

// NewTimer creates a timer that activates every period ticks, first at
// offset, each time for duration ticks. Offset and duration must both be
// less than the period.
func NewTimer(period, offset, duration uint64) Timer {
	if offset >= period {
		panic("clock: timer offset must be less than period")
	}
	if duration >= period {
		panic("clock: timer duration must be less than period")
	}
	return Timer{
		period:    period,
		nextStart: offset,
		nextStop:  offset + duration,
	}
}

// NextStartTime returns the next tick that will emit a RisingEdge event.
func (t Timer) NextStartTime() uint64 {
	return t.nextStart
}

// NextStopTime returns the next tick that will emit a FallingEdge event.
func (t Timer) NextStopTime() uint64 {
	return t.nextStop
}

// NextEventTime returns the next tick that will produce any event.
func (t Timer) NextEventTime() uint64 {
	if t.nextStart < t.nextStop {
		return t.nextStart
	}
	return t.nextStop
}

// Update runs the timer up to the given absolute tick, or until the next
// edge occurs, whichever comes first. Call it in a loop until ok is false:
// several edges may be pending when time has jumped past multiple
// boundaries, and they are delivered one per call, in order.
func (t *Timer) Update(time uint64) (event TimerEvent, ok bool) {
	switch {
	case t.nextStart <= t.nextStop && t.nextStart <= time:
		if t.nextStop == t.nextStart {
			t.nextStop += t.period
		}
		t.nextStart += t.period
		return RisingEdge, true
	case t.nextStop <= time:
		t.nextStop += t.period
		return FallingEdge, true
	default:
		return event, false
	}
}

// Active reports whether the timer is currently between a RisingEdge and a
// FallingEdge event.
func (t Timer) Active() bool {
	return t.nextStart > t.nextStop
}

// NextTimerEvent returns the earliest tick at which any of the given
// timers will emit an event, or 0 if the slice is empty.
func NextTimerEvent(timers []Timer) uint64 {
	var min uint64
	for i, t := range timers {
		next := t.NextEventTime()
		if i == 0 || next < min {
			min = next
		}
	}
	return min
}
