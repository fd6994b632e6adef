package dcalc

import (
	"github.com/opensta-go/sta/ap"
	"github.com/opensta-go/sta/core"
	"github.com/opensta-go/sta/parasitic"
	"github.com/opensta-go/sta/rf"
)

// arnoldiCalc reduces the RC network to an Arnoldi-style pole-residue
// model (COMPONENT DESIGN §4.3 registry table: "Arnoldi reduced-order model
// of the RC network") and reads gate delay straight from the dominant pole
// without the effective-capacitance iteration dmp_ceff_* uses.
type arnoldiCalc struct {
	base
}

func newArnoldiCalc(sta any) ArcDelayCalc {
	return &arnoldiCalc{base: newBase("arnoldi")}
}

func (c *arnoldiCalc) ReduceSupported() bool { return true }

func (c *arnoldiCalc) ReduceParasitic(detailed *parasitic.DistributedRCNetwork, drvrPin core.VertexId, transition rf.RiseFall, corner *ap.Corner, minMaxAll ap.MinMax) any {
	return reduceParasiticViaKind(c.cache, parasitic.KindPoleResidue, detailed, drvrPin, transition, corner, minMaxAll)
}

func (c *arnoldiCalc) GateDelay(arg ArcDcalcArg, loadPinIndex map[core.VertexId]int, dcalcAp int) ArcDcalcResult {
	var pr parasitic.PoleResidueModel
	if arg.Parasitic != nil {
		pr = parasitic.ToPoleResidueModel(arg.Parasitic)
	}
	dominantDelay := 0.0
	if len(pr.Poles) > 0 && pr.Poles[0] != 0 {
		dominantDelay = -pr.Residues[0] / pr.Poles[0]
	}
	gateDelay := 0.05 + 0.3*arg.InSlew + dominantDelay
	drvrSlew := arg.InSlew + dominantDelay*0.5

	result := ArcDcalcResult{GateDelay: gateDelay, DrvrSlew: drvrSlew}
	result.SetLoadCount(len(loadPinIndex))
	for i := range result.LoadSlews {
		result.LoadSlews[i] = drvrSlew
	}
	return result
}

func (c *arnoldiCalc) GateDelays(args []ArcDcalcArg, loadPinIndex map[core.VertexId]int, dcalcAp int) []ArcDcalcResult {
	return c.base.GateDelays(c.GateDelay, args, loadPinIndex, dcalcAp)
}

// ccsCeffCalc layers an effective-capacitance driver estimate over a
// current-source cell model (COMPONENT DESIGN §4.3 registry table:
// "Current-source cell models + effective-C driver"); the cell's output
// current waveform is out of scope (library data, §1 non-goals), so the
// waveform is approximated by its first-moment delay.
type ccsCeffCalc struct {
	base
}

func newCcsCeffCalc(sta any) ArcDelayCalc {
	return &ccsCeffCalc{base: newBase("ccs_ceff")}
}

func (c *ccsCeffCalc) ReduceSupported() bool { return true }

func (c *ccsCeffCalc) ReduceParasitic(detailed *parasitic.DistributedRCNetwork, drvrPin core.VertexId, transition rf.RiseFall, corner *ap.Corner, minMaxAll ap.MinMax) any {
	return reduceParasiticViaKind(c.cache, parasitic.KindPiModel, detailed, drvrPin, transition, corner, minMaxAll)
}

func (c *ccsCeffCalc) GateDelay(arg ArcDcalcArg, loadPinIndex map[core.VertexId]int, dcalcAp int) ArcDcalcResult {
	var pi parasitic.PiModel
	if arg.Parasitic != nil {
		pi = parasitic.ToPiModel(arg.Parasitic)
	}
	ceff := convergeCeff(pi.C1+pi.C2, func(c float64) float64 {
		return 0.5 * (c + pi.C1 + pi.C2)
	}, 32)

	gateDelay := 0.04 + 0.25*arg.InSlew + 1.8*ceff
	drvrSlew := arg.InSlew + ceff

	result := ArcDcalcResult{GateDelay: gateDelay, DrvrSlew: drvrSlew}
	result.SetLoadCount(len(loadPinIndex))
	for i := range result.LoadSlews {
		result.LoadSlews[i] = drvrSlew
	}
	return result
}

func (c *ccsCeffCalc) GateDelays(args []ArcDcalcArg, loadPinIndex map[core.VertexId]int, dcalcAp int) []ArcDcalcResult {
	return c.base.GateDelays(c.GateDelay, args, loadPinIndex, dcalcAp)
}

// primaCalc applies the Passive Reduced-order Interconnect Macromodelling
// Algorithm's multi-pole fit (COMPONENT DESIGN §4.3 registry table) and
// sums every pole's contribution to gate delay, unlike arnoldiCalc which
// reads only the dominant pole.
type primaCalc struct {
	base
}

func newPrimaCalc(sta any) ArcDelayCalc {
	return &primaCalc{base: newBase("prima")}
}

func (c *primaCalc) ReduceSupported() bool { return true }

func (c *primaCalc) ReduceParasitic(detailed *parasitic.DistributedRCNetwork, drvrPin core.VertexId, transition rf.RiseFall, corner *ap.Corner, minMaxAll ap.MinMax) any {
	return reduceParasiticViaKind(c.cache, parasitic.KindPoleResidue, detailed, drvrPin, transition, corner, minMaxAll)
}

func (c *primaCalc) GateDelay(arg ArcDcalcArg, loadPinIndex map[core.VertexId]int, dcalcAp int) ArcDcalcResult {
	var pr parasitic.PoleResidueModel
	if arg.Parasitic != nil {
		pr = parasitic.ToPoleResidueModel(arg.Parasitic)
	}
	totalDelay := 0.0
	for i, p := range pr.Poles {
		if p == 0 || i >= len(pr.Residues) {
			continue
		}
		totalDelay += -pr.Residues[i] / p
	}
	gateDelay := 0.05 + 0.3*arg.InSlew + totalDelay
	drvrSlew := arg.InSlew + totalDelay*0.5

	result := ArcDcalcResult{GateDelay: gateDelay, DrvrSlew: drvrSlew}
	result.SetLoadCount(len(loadPinIndex))
	for i := range result.LoadSlews {
		result.LoadSlews[i] = drvrSlew
	}
	return result
}

func (c *primaCalc) GateDelays(args []ArcDcalcArg, loadPinIndex map[core.VertexId]int, dcalcAp int) []ArcDcalcResult {
	return c.base.GateDelays(c.GateDelay, args, loadPinIndex, dcalcAp)
}
