package ap

import "math"

// MinMax selects the early (min) or late (max) path direction of an
// analysis. Every timing quantity that differs between hold-like and
// setup-like analysis is parameterized by one of these two values.
type MinMax int

const (
	// Min is the early-path direction (hold checks, best-case delay).
	Min MinMax = iota
	// Max is the late-path direction (setup checks, worst-case delay).
	Max
)

// String renders the canonical short name used in reports and Path.Name.
func (m MinMax) String() string {
	if m == Max {
		return "max"
	}
	return "min"
}

// Opposite returns the other direction; used when initializing arrival
// (uses m) versus required (uses m.Opposite()) per DATA MODEL invariant 4.
func (m MinMax) Opposite() MinMax {
	if m == Max {
		return Min
	}
	return Max
}

// InitValue returns the sentinel arrival/required seed for this direction:
// +Inf for Max (nothing found yet beats "later than everything"),
// -Inf for Min (nothing found yet beats "earlier than everything").
func (m MinMax) InitValue() float64 {
	if m == Max {
		return math.Inf(1)
	}
	return math.Inf(-1)
}

// IsInitValue reports whether value still holds the sentinel for m.
func (m MinMax) IsInitValue(value float64) bool {
	return value == m.InitValue()
}

// Better reports whether candidate improves on current under this
// direction: a larger value is "better" for Max, a smaller value is
// "better" for Min. Ties are not better (caller decides tie-break policy).
func (m MinMax) Better(candidate, current float64) bool {
	if m == Max {
		return candidate > current
	}
	return candidate < current
}
