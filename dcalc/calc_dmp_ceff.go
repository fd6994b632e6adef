package dcalc

import (
	"github.com/opensta-go/sta/ap"
	"github.com/opensta-go/sta/core"
	"github.com/opensta-go/sta/parasitic"
	"github.com/opensta-go/sta/rf"
)

// dmpCeffElmoreCalc iterates an effective-capacitance estimate to fuzzy
// convergence (COMPONENT DESIGN §4.3: "Effective-capacitance iteration
// (Arnoldi/Qian style) terminated on fuzzy convergence"), then computes
// per-load wire delay from the Elmore reduction of the attached parasitic.
type dmpCeffElmoreCalc struct {
	base
}

func newDmpCeffElmoreCalc(sta any) ArcDelayCalc {
	return &dmpCeffElmoreCalc{base: newBase("dmp_ceff_elmore")}
}

func (c *dmpCeffElmoreCalc) ReduceSupported() bool { return true }

func (c *dmpCeffElmoreCalc) ReduceParasitic(detailed *parasitic.DistributedRCNetwork, drvrPin core.VertexId, transition rf.RiseFall, corner *ap.Corner, minMaxAll ap.MinMax) any {
	return reduceParasiticViaKind(c.cache, parasitic.KindElmoreTree, detailed, drvrPin, transition, corner, minMaxAll)
}

func (c *dmpCeffElmoreCalc) GateDelay(arg ArcDcalcArg, loadPinIndex map[core.VertexId]int, dcalcAp int) ArcDcalcResult {
	totalCap := arg.LoadCap
	var tree parasitic.ElmoreTree
	haveTree := false
	if arg.Parasitic != nil {
		tree = parasitic.ToElmoreTree(arg.Parasitic)
		totalCap = arg.Parasitic.TotalCapacitance()
		haveTree = true
	}

	ceff := convergeCeff(totalCap, func(c float64) float64 {
		return 0.5 * (c + totalCap)
	}, 32)

	gateDelay := 0.05 + 0.3*arg.InSlew + 2.0*ceff
	drvrSlew := arg.InSlew + ceff

	result := ArcDcalcResult{GateDelay: gateDelay, DrvrSlew: drvrSlew}
	result.SetLoadCount(len(loadPinIndex))
	for pin, idx := range loadPinIndex {
		_ = pin
		if idx >= len(result.WireDelays) {
			continue
		}
		if haveTree {
			result.WireDelays[idx] = tree.NodeDelay[parasitic.NodeId(idx+1)]
		}
		result.LoadSlews[idx] = drvrSlew
	}
	return result
}

func (c *dmpCeffElmoreCalc) GateDelays(args []ArcDcalcArg, loadPinIndex map[core.VertexId]int, dcalcAp int) []ArcDcalcResult {
	return c.base.GateDelays(c.GateDelay, args, loadPinIndex, dcalcAp)
}

// dmpCeffTwoPoleCalc is dmpCeffElmoreCalc's response-shape refinement: it
// fits one pole-residue model to the whole network and adds the delay of its
// poles to the gate delay. It does not fit a model per load; every wire
// delay it returns is 0.
type dmpCeffTwoPoleCalc struct {
	base
}

func newDmpCeffTwoPoleCalc(sta any) ArcDelayCalc {
	return &dmpCeffTwoPoleCalc{base: newBase("dmp_ceff_two_pole")}
}

func (c *dmpCeffTwoPoleCalc) ReduceSupported() bool { return true }

func (c *dmpCeffTwoPoleCalc) ReduceParasitic(detailed *parasitic.DistributedRCNetwork, drvrPin core.VertexId, transition rf.RiseFall, corner *ap.Corner, minMaxAll ap.MinMax) any {
	return reduceParasiticViaKind(c.cache, parasitic.KindPoleResidue, detailed, drvrPin, transition, corner, minMaxAll)
}

func (c *dmpCeffTwoPoleCalc) GateDelay(arg ArcDcalcArg, loadPinIndex map[core.VertexId]int, dcalcAp int) ArcDcalcResult {
	totalCap := arg.LoadCap
	var pr parasitic.PoleResidueModel
	if arg.Parasitic != nil {
		pr = parasitic.ToPoleResidueModel(arg.Parasitic)
		totalCap = arg.Parasitic.TotalCapacitance()
	}

	ceff := convergeCeff(totalCap, func(c float64) float64 {
		return 0.5 * (c + totalCap)
	}, 32)

	dominantDelay := 0.0
	for i, p := range pr.Poles {
		if p == 0 {
			continue
		}
		if i >= len(pr.Residues) {
			break
		}
		dominantDelay += -pr.Residues[i] / p
	}

	gateDelay := 0.05 + 0.3*arg.InSlew + 2.0*ceff + dominantDelay
	drvrSlew := arg.InSlew + ceff

	result := ArcDcalcResult{GateDelay: gateDelay, DrvrSlew: drvrSlew}
	result.SetLoadCount(len(loadPinIndex))
	for i := range result.LoadSlews {
		result.LoadSlews[i] = drvrSlew
	}
	return result
}

func (c *dmpCeffTwoPoleCalc) GateDelays(args []ArcDcalcArg, loadPinIndex map[core.VertexId]int, dcalcAp int) []ArcDcalcResult {
	return c.base.GateDelays(c.GateDelay, args, loadPinIndex, dcalcAp)
}
