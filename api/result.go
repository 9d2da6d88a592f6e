// Package api
// License: Apache-2.0
//
// Outcome reporting for elastic pop requests.

package api

// PopOutcome indicates what happened when an elastic buffer tried to
// satisfy a request for elements.
type PopOutcome int

const (
	// PopEmpty: the buffer was completely empty; every output slot was
	// filled with the default value.
	PopEmpty PopOutcome = iota
	// PopExact: the buffer had enough elements and stayed below its ideal
	// maximum; nothing was dropped or duplicated.
	PopExact
	// PopUpsampled: fewer real elements existed than output slots; elements
	// were repeated to fill the request.
	PopUpsampled
	// PopDownsampled: more real elements were consumed than output slots;
	// the surplus was dropped to bring occupancy back toward the ideal
	// maximum.
	PopDownsampled
)

// String returns a short name suitable for diagnostics.
func (o PopOutcome) String() string {
	switch o {
	case PopEmpty:
		return "empty"
	case PopExact:
		return "exact"
	case PopUpsampled:
		return "upsampled"
	case PopDownsampled:
		return "downsampled"
	default:
		return "unknown"
	}
}

// PopResult reports the outcome of one elastic pop request.
type PopResult struct {
	Outcome PopOutcome
	// Sampled is the number of real elements consumed from the buffer on
	// the resampling paths. Zero for PopEmpty and PopExact.
	Sampled int
}
