package dcalc

import (
	"fmt"

	"github.com/opensta-go/sta/ap"
	"github.com/opensta-go/sta/core"
	"github.com/opensta-go/sta/parasitic"
	"github.com/opensta-go/sta/rf"
)

// ArcDelayCalc is the capability every delay-calculation algorithm
// implements (COMPONENT DESIGN §4.3). Implementations are owned by the
// enclosing analysis session and released per driver pin via
// FinishDrvrPin as each level of propagation completes.
type ArcDelayCalc interface {
	// Name returns the registry name this instance was constructed under.
	Name() string

	// FindParasitic locates a model this algorithm can consume for
	// (drvrPin, transition, dcalcAp), or false if none is attached.
	FindParasitic(drvrPin core.VertexId, transition rf.RiseFall, dcalcAp int) (*parasitic.DistributedRCNetwork, bool)

	// ReduceSupported reports whether this algorithm reduces detailed
	// parasitics at all (false for unit, whose reducer is a no-op).
	ReduceSupported() bool

	// ReduceParasitic lowers detailed to the form this algorithm consumes.
	// The predefined calculators store the result under dcalc analysis
	// point 0 and do not read corner or minMaxAll.
	ReduceParasitic(detailed *parasitic.DistributedRCNetwork, drvrPin core.VertexId, transition rf.RiseFall, corner *ap.Corner, minMaxAll ap.MinMax) any

	// SetDcalcArgParasiticSlew populates InSlew, LoadCap, and Parasitic on
	// args using previously computed driver-side values for dcalcAp.
	SetDcalcArgParasiticSlew(args []*ArcDcalcArg, dcalcAp int)

	// InputPortDelay computes wire delay/slew for an unmodelled driving port.
	InputPortDelay(portPin core.VertexId, inSlew float64, transition rf.RiseFall, p *parasitic.DistributedRCNetwork, loadPinIndex map[core.VertexId]int, dcalcAp int) ArcDcalcResult

	// GateDelay is the core primitive: compute gate delay, driver slew, and
	// per-load wire delay/slew for one arg.
	GateDelay(arg ArcDcalcArg, loadPinIndex map[core.VertexId]int, dcalcAp int) ArcDcalcResult

	// GateDelays is the parallel-drivers variant; result order matches args.
	GateDelays(args []ArcDcalcArg, loadPinIndex map[core.VertexId]int, dcalcAp int) []ArcDcalcResult

	// CheckDelay computes a setup/hold/etc. margin.
	CheckDelay(checkPin core.VertexId, arc *core.Arc, fromSlew, toSlew, relatedOutCap float64, dcalcAp int) float64

	// ReportGateDelay renders a textual trace of the last GateDelay call;
	// it has no side effects on stored values.
	ReportGateDelay(arg ArcDcalcArg, result ArcDcalcResult) string

	// ReportCheckDelay renders a textual trace of a CheckDelay call.
	ReportCheckDelay(checkPin core.VertexId, arc *core.Arc, margin float64) string

	// FinishDrvrPin releases any per-driver caches; called once every
	// driver has finished propagating at its level.
	FinishDrvrPin()
}

// GateDelayLegacy is the deprecated 6-argument wrapper kept for callers
// written against the pre-ArcDcalcArg signature; it builds an ArcDcalcArg
// internally and discards the per-load vectors.
//
// Deprecated: use ArcDelayCalc.GateDelay with an ArcDcalcArg instead.
func GateDelayLegacy(calc ArcDelayCalc, drvrPin core.VertexId, arc *core.Arc, inSlew, loadCap float64, loadPinIndex map[core.VertexId]int, dcalcAp int) (gateDelay, drvrSlew float64) {
	arg := NewArcDcalcArg(core.NoVertex, drvrPin, nil, arc, inSlew, loadCap, nil)
	result := calc.GateDelay(arg, loadPinIndex, dcalcAp)
	return result.GateDelay, result.DrvrSlew
}

// Factory constructs a new ArcDelayCalc instance. sta is an opaque handle
// to the enclosing analysis session (passed as any to avoid a dependency
// cycle between dcalc and the session package).
type Factory func(sta any) ArcDelayCalc

// registry is the process-wide name->factory mapping named in COMPONENT
// DESIGN §4.3; guarded implicitly by being populated only during init()
// (package predefined.go) and package-level Register calls before any
// analysis starts, matching "the delay-calculator registry is process-wide
// and must be fully populated before any analysis starts" (§5).
var registry = make(map[string]Factory)

// RegisterDelayCalc inserts factory under name. Duplicate names overwrite
// (last writer wins), matching COMPONENT DESIGN §4.3.
func RegisterDelayCalc(name string, factory Factory) {
	registry[name] = factory
}

// MakeDelayCalc constructs a new ArcDelayCalc instance from the factory
// registered under name, or an error if no such name was registered.
func MakeDelayCalc(name string, sta any) (ArcDelayCalc, error) {
	factory, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("dcalc: no delay calculator registered under name %q", name)
	}
	return factory(sta), nil
}

// DeleteDelayCalcs tears down the registry entirely, used at analysis
// teardown; callers must RegisterDelayCalc again (or rely on init()'s
// predefined registrations) before building another session.
func DeleteDelayCalcs() {
	registry = make(map[string]Factory)
}

// RegisteredNames returns every name currently registered, for diagnostics.
func RegisteredNames() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}
