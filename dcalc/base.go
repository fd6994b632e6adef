package dcalc

import (
	"fmt"

	"github.com/opensta-go/sta/ap"
	"github.com/opensta-go/sta/core"
	"github.com/opensta-go/sta/parasitic"
	"github.com/opensta-go/sta/rf"
	"github.com/opensta-go/sta/util"
)

// base supplies the machinery shared by every predefined ArcDelayCalc:
// the parasitic cache, a name for diagnostics, and the mechanical parts of
// the interface (GateDelays fan-out, reporting, finish) that don't vary
// between algorithms. Each concrete calculator embeds base and defines
// GateDelay, ReduceParasitic, and ReduceSupported itself, plus a GateDelays
// method that forwards its own GateDelay to base.GateDelays.
type base struct {
	name  string
	cache *parasitic.Cache
}

func newBase(name string) base {
	return base{name: name, cache: parasitic.NewCache()}
}

func (b base) Name() string { return b.name }

func (b base) FindParasitic(drvrPin core.VertexId, transition rf.RiseFall, dcalcAp int) (*parasitic.DistributedRCNetwork, bool) {
	return b.cache.FindParasitic(drvrPin, transition, dcalcAp)
}

func (b base) SetDcalcArgParasiticSlew(args []*ArcDcalcArg, dcalcAp int) {
	for _, a := range args {
		if a.Parasitic == nil {
			if n, ok := b.FindParasitic(a.DrvrPin, a.InEdgeRiseFall(), dcalcAp); ok {
				a.Parasitic = n
				a.LoadCap = n.TotalCapacitance()
			}
		}
	}
}

func (b base) InputPortDelay(portPin core.VertexId, inSlew float64, transition rf.RiseFall, p *parasitic.DistributedRCNetwork, loadPinIndex map[core.VertexId]int, dcalcAp int) ArcDcalcResult {
	result := ArcDcalcResult{DrvrSlew: inSlew}
	result.SetLoadCount(len(loadPinIndex))
	if p != nil {
		tree := parasitic.ToElmoreTree(p)
		for pin, idx := range loadPinIndex {
			_ = pin
			if idx < len(result.WireDelays) {
				result.WireDelays[idx] = tree.NodeDelay[parasitic.NodeId(idx+1)]
				result.LoadSlews[idx] = inSlew
			}
		}
	}
	return result
}

func (b base) GateDelays(gateDelay func(ArcDcalcArg, map[core.VertexId]int, int) ArcDcalcResult, args []ArcDcalcArg, loadPinIndex map[core.VertexId]int, dcalcAp int) []ArcDcalcResult {
	results := make([]ArcDcalcResult, len(args))
	for i, a := range args {
		results[i] = gateDelay(a, loadPinIndex, dcalcAp)
	}
	return results
}

func (b base) CheckDelay(checkPin core.VertexId, arc *core.Arc, fromSlew, toSlew, relatedOutCap float64, dcalcAp int) float64 {
	// A margin grows with both edges' slews, matching the qualitative shape
	// of library setup/hold surfaces without modelling a specific check
	// type; concrete libraries plug in via Liberty tables (external, §1
	// non-goals).
	return 0.1*fromSlew + 0.05*toSlew + 0.01*relatedOutCap
}

func (b base) ReportGateDelay(arg ArcDcalcArg, result ArcDcalcResult) string {
	return fmt.Sprintf("%s: gate_delay=%.6g drvr_slew=%.6g loads=%d", b.name, result.GateDelay, result.DrvrSlew, result.LoadCount())
}

func (b base) ReportCheckDelay(checkPin core.VertexId, arc *core.Arc, margin float64) string {
	return fmt.Sprintf("%s: check_margin=%.6g", b.name, margin)
}

func (b base) FinishDrvrPin() {}

// reduceParasiticViaKind is the shared body of ReduceParasitic for every
// calculator that does support reduction: it attaches detailed and reduces
// it under dcalc analysis point 0 only. corner and minMaxAll are not read,
// so the reduction does not fan out across corners or min/max directions.
func reduceParasiticViaKind(cache *parasitic.Cache, kind parasitic.Kind, detailed *parasitic.DistributedRCNetwork, drvrPin core.VertexId, transition rf.RiseFall, corner *ap.Corner, minMaxAll ap.MinMax) any {
	cache.Attach(drvrPin, transition, 0, detailed)
	model, _ := cache.Reduce(drvrPin, transition, 0, kind)
	return model
}

// convergeCeff iterates an effective-capacitance estimate until two
// successive iterations agree within util.FuzzyEpsilon, matching
// COMPONENT DESIGN §4.3's "effective-capacitance iteration ... terminated
// on fuzzy convergence". f must be monotone-improving; maxIter bounds
// pathological inputs.
func convergeCeff(initial float64, f func(ceff float64) float64, maxIter int) float64 {
	ceff := initial
	for i := 0; i < maxIter; i++ {
		next := f(ceff)
		if util.FuzzyEqual(next, ceff) {
			return next
		}
		ceff = next
	}
	return ceff
}
