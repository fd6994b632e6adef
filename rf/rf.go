// Package rf defines the rise/fall transition used to index slews, tags,
// and timing arcs throughout the core (DATA MODEL: "Transition (RiseFall)").
package rf

// RiseFall is a signal transition direction, always one of Rise or Fall.
// Index() is 0/1 and is what tags store as their rf index, so RiseFall
// deliberately has exactly two values.
type RiseFall int

const (
	// Rise is the low-to-high transition, index 0.
	Rise RiseFall = iota
	// Fall is the high-to-low transition, index 1.
	Fall
)

// Index returns 0 for Rise, 1 for Fall.
func (t RiseFall) Index() int { return int(t) }

// String renders the canonical short name.
func (t RiseFall) String() string {
	if t == Fall {
		return "fall"
	}
	return "rise"
}

// Opposite returns the other transition.
func (t RiseFall) Opposite() RiseFall {
	if t == Fall {
		return Rise
	}
	return Fall
}

// Find parses "rise"/"fall" (and the single-letter "r"/"f" shorthand used
// by report/query code), returning ok=false for anything else.
func Find(name string) (RiseFall, bool) {
	switch name {
	case "rise", "r", "^":
		return Rise, true
	case "fall", "f", "v":
		return Fall, true
	default:
		return 0, false
	}
}

// RiseFall2 enumerates both transitions in index order; callers range over
// it instead of hand-rolling a {Rise, Fall} literal at every call site.
var RiseFall2 = [2]RiseFall{Rise, Fall}
