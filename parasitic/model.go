package parasitic

// NodeId indexes a node within a DistributedRCNetwork: 0 is always the
// driver-point node.
type NodeId int

// Segment is one resistive branch of a distributed RC network, connecting
// From to To with resistance OhmsR; To accumulates CapF of grounded
// capacitance at its node.
type Segment struct {
	From  NodeId
	To    NodeId
	OhmsR float64
	CapF  float64
}

// DistributedRCNetwork is the as-extracted parasitic: a tree of resistive
// segments rooted at the driver pin, each node carrying grounded
// capacitance.
type DistributedRCNetwork struct {
	Segments   []Segment
	driverCapF float64 // capacitance lumped directly at node 0
}

// NewDistributedRCNetwork returns an empty network with driverCapF
// capacitance at the driver node.
func NewDistributedRCNetwork(driverCapF float64) *DistributedRCNetwork {
	return &DistributedRCNetwork{driverCapF: driverCapF}
}

// AddSegment appends a resistive branch from -> to with the given
// resistance and the sink capacitance lumped at to.
func (n *DistributedRCNetwork) AddSegment(from, to NodeId, ohmsR, capF float64) {
	n.Segments = append(n.Segments, Segment{From: from, To: to, OhmsR: ohmsR, CapF: capF})
}

// TotalCapacitance sums every grounded capacitance in the network,
// including the driver-point lump.
func (n *DistributedRCNetwork) TotalCapacitance() float64 {
	total := n.driverCapF
	for _, s := range n.Segments {
		total += s.CapF
	}
	return total
}

// children returns, for each node, the segments whose From is that node —
// built once per reduction since networks are small and read-mostly.
func (n *DistributedRCNetwork) children() map[NodeId][]Segment {
	out := make(map[NodeId][]Segment, len(n.Segments))
	for _, s := range n.Segments {
		out[s.From] = append(out[s.From], s)
	}
	return out
}

// LumpedCapacitance is the coarsest reduction: total sink capacitance only,
// produced by the lumped_cap calculator's reducer (the unit calculator's
// reducer is a no-op).
type LumpedCapacitance struct {
	TotalCapF float64
}

// PiModel is the classic three-element driver-point reduction: near-side
// capacitance C1, a series resistance R, and far-side capacitance C2.
type PiModel struct {
	C1 float64
	R  float64
	C2 float64
}

// ElmoreTree retains per-node Elmore delay (resistance-weighted downstream
// capacitance) so a consuming calculator can compute per-sink delay and
// slew degradation without re-walking the original network.
type ElmoreTree struct {
	NodeDelay map[NodeId]float64
	TotalCapF float64
}

// PoleResidueModel is a one- or two-pole moment-matched fit of the
// driver-point admittance, used by dmp_ceff_two_pole, arnoldi, and prima.
type PoleResidueModel struct {
	Poles    []float64
	Residues []float64
}
