package dcalc

import (
	"github.com/opensta-go/sta/core"
	"github.com/opensta-go/sta/parasitic"
	"github.com/opensta-go/sta/rf"
)

// Warning IDs 2100-2105, reproduced from makeArcDcalcArg's numbered
// user-input diagnostics (§7 taxonomy, SPEC_FULL.md Supplemented
// Features): these are non-fatal — the offending query returns a null
// result and the caller surfaces the warning, it never aborts analysis.
const (
	WarnMissingInstance    = 2100
	WarnMissingPin         = 2101
	WarnMissingRiseFall    = 2102
	WarnMissingArc         = 2103
	WarnMissingEdge        = 2104
	WarnInconsistentDriver = 2105
)

// ArcDcalcArg carries the per-arc inputs a gateDelay call needs. Either the
// slew+parasitic form (InSlew, Parasitic set) or the port-input-delay form
// (InputDelay set) is populated, never both — NewArcDcalcArg and
// NewPortInputDelayArg are the two convenience constructors named in
// COMPONENT DESIGN §4.3.
type ArcDcalcArg struct {
	InPin      core.VertexId
	DrvrPin    core.VertexId
	Edge       *core.Edge
	Arc        *core.Arc
	InSlew     float64
	LoadCap    float64
	Parasitic  *parasitic.DistributedRCNetwork
	InputDelay float64
}

// NewArcDcalcArg builds the slew+parasitic form of an argument.
func NewArcDcalcArg(inPin, drvrPin core.VertexId, edge *core.Edge, arc *core.Arc, inSlew, loadCap float64, p *parasitic.DistributedRCNetwork) ArcDcalcArg {
	return ArcDcalcArg{InPin: inPin, DrvrPin: drvrPin, Edge: edge, Arc: arc, InSlew: inSlew, LoadCap: loadCap, Parasitic: p}
}

// NewPortInputDelayArg builds the port-input-delay form of an argument, used
// when the driving pin is an unmodelled input port rather than a gate.
func NewPortInputDelayArg(inPin core.VertexId, arc *core.Arc, inputDelay float64) ArcDcalcArg {
	return ArcDcalcArg{InPin: inPin, Arc: arc, InputDelay: inputDelay}
}

// InEdgeRiseFall returns the transition on the arc's origin pin
// (COMPONENT DESIGN §4.3: "inEdge = arc.fromEdge().asRiseFall()").
func (a ArcDcalcArg) InEdgeRiseFall() rf.RiseFall {
	if a.Arc == nil {
		return rf.Rise
	}
	return a.Arc.FromRiseFall()
}

// ArcDcalcResult carries the outputs of one gateDelay/inputPortDelay call:
// the driver-side gate delay and slew, plus per-load wire delay and
// resulting load slew vectors.
type ArcDcalcResult struct {
	GateDelay  float64
	DrvrSlew   float64
	WireDelays []float64
	LoadSlews  []float64
}

// SetLoadCount resizes WireDelays and LoadSlews to n entries, zeroing them.
func (r *ArcDcalcResult) SetLoadCount(n int) {
	r.WireDelays = make([]float64, n)
	r.LoadSlews = make([]float64, n)
}

// LoadCount returns the number of loads this result carries.
func (r *ArcDcalcResult) LoadCount() int { return len(r.WireDelays) }
