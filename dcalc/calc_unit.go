package dcalc

import (
	"github.com/opensta-go/sta/ap"
	"github.com/opensta-go/sta/core"
	"github.com/opensta-go/sta/parasitic"
	"github.com/opensta-go/sta/rf"
)

// unitCalc is the bring-up sentinel: every gate delay is 1.0, slews pass
// through unchanged, and wire delays are always 0 (COMPONENT DESIGN §4.3
// registry table). Its reducer is a no-op, per the same table.
type unitCalc struct {
	base
}

func newUnitCalc(sta any) ArcDelayCalc {
	return &unitCalc{base: newBase("unit")}
}

func (c *unitCalc) ReduceSupported() bool { return false }

func (c *unitCalc) ReduceParasitic(detailed *parasitic.DistributedRCNetwork, drvrPin core.VertexId, transition rf.RiseFall, corner *ap.Corner, minMaxAll ap.MinMax) any {
	return nil
}

func (c *unitCalc) GateDelay(arg ArcDcalcArg, loadPinIndex map[core.VertexId]int, dcalcAp int) ArcDcalcResult {
	result := ArcDcalcResult{GateDelay: 1.0, DrvrSlew: arg.InSlew}
	result.SetLoadCount(len(loadPinIndex))
	for i := range result.LoadSlews {
		result.LoadSlews[i] = arg.InSlew
	}
	return result
}

func (c *unitCalc) GateDelays(args []ArcDcalcArg, loadPinIndex map[core.VertexId]int, dcalcAp int) []ArcDcalcResult {
	return c.base.GateDelays(c.GateDelay, args, loadPinIndex, dcalcAp)
}
