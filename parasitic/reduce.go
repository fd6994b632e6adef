package parasitic

import "math"

// moments walks the distributed network once and returns its first two
// Elmore-style moments: m1 is the classic Elmore delay (sum over every
// segment of R(seg) times the total capacitance downstream of it); m2 is
// the analogous second-order term used to fit a two-pole model. Both are
// computed bottom-up so every segment is visited exactly once.
func moments(n *DistributedRCNetwork) (m1, m2 float64) {
	kids := n.children()
	var downstreamCap func(node NodeId) float64
	memo := make(map[NodeId]float64)
	downstreamCap = func(node NodeId) float64 {
		if c, ok := memo[node]; ok {
			return c
		}
		total := 0.0
		for _, seg := range kids[node] {
			total += seg.CapF + downstreamCap(seg.To)
		}
		memo[node] = total
		return total
	}

	for _, seg := range n.Segments {
		downCap := seg.CapF + downstreamCap(seg.To)
		m1 += seg.OhmsR * downCap
		m2 += seg.OhmsR * downCap * downCap
	}
	return m1, m2
}

// ToLumpedCapacitance reduces n to its total sink capacitance, the form the
// lumped_cap calculator's reducer produces (the unit calculator's reducer is
// a no-op and produces nothing).
func ToLumpedCapacitance(n *DistributedRCNetwork) LumpedCapacitance {
	return LumpedCapacitance{TotalCapF: n.TotalCapacitance()}
}

// ToPiModel reduces n to a three-element driver-point pi: C2 is half the
// total capacitance, R is m1 divided by C2, and C1 is the capacitance that
// remains to preserve the total. Only the first moment is used; this is
// not a two-moment pi fit.
func ToPiModel(n *DistributedRCNetwork) PiModel {
	total := n.TotalCapacitance()
	m1, _ := moments(n)
	if total <= 0 {
		return PiModel{}
	}
	c2 := total * 0.5
	r := m1 / math.Max(c2, 1e-30)
	c1 := total - c2
	return PiModel{C1: c1, R: r, C2: c2}
}

// ToElmoreTree reduces n to per-node Elmore delay, the form dmp_ceff_elmore
// consumes directly without refitting poles.
func ToElmoreTree(n *DistributedRCNetwork) ElmoreTree {
	kids := n.children()
	delay := make(map[NodeId]float64)

	memo := make(map[NodeId]float64)
	var downstreamCap func(node NodeId) float64
	downstreamCap = func(node NodeId) float64 {
		if c, ok := memo[node]; ok {
			return c
		}
		total := 0.0
		for _, seg := range kids[node] {
			total += seg.CapF + downstreamCap(seg.To)
		}
		memo[node] = total
		return total
	}

	var walk func(node NodeId, upstreamDelay float64)
	walk = func(node NodeId, upstreamDelay float64) {
		delay[node] = upstreamDelay
		for _, seg := range kids[node] {
			d := upstreamDelay + seg.OhmsR*(seg.CapF+downstreamCap(seg.To))
			walk(seg.To, d)
		}
	}
	walk(0, 0)

	return ElmoreTree{NodeDelay: delay, TotalCapF: n.TotalCapacitance()}
}

// ToPoleResidueModel fits a two-pole approximation of the driver-point
// response from n's first two moments, the classic AWE two-pole reduction
// consumed by dmp_ceff_two_pole, arnoldi, and prima. When the
// moments don't admit two real poles (a near-single-pole network), it
// falls back to a single dominant pole so callers always receive at least
// one (pole, residue) pair.
func ToPoleResidueModel(n *DistributedRCNetwork) PoleResidueModel {
	m1, m2 := moments(n)
	if m1 <= 0 {
		return PoleResidueModel{}
	}

	b1 := -m1
	b2 := m1*m1 - m2
	if math.Abs(b2) < 1e-30 {
		return PoleResidueModel{Poles: []float64{-1 / m1}, Residues: []float64{1}}
	}

	disc := b1*b1 - 4*b2
	if disc < 0 {
		return PoleResidueModel{Poles: []float64{-1 / m1}, Residues: []float64{1}}
	}

	sqrtDisc := math.Sqrt(disc)
	s1 := (-b1 + sqrtDisc) / (2 * b2)
	s2 := (-b1 - sqrtDisc) / (2 * b2)
	if s1 == 0 || s2 == 0 {
		return PoleResidueModel{Poles: []float64{-1 / m1}, Residues: []float64{1}}
	}

	p1, p2 := 1/s1, 1/s2
	k1 := p1 * p2 * (1 + b1*p2) / (p2 - p1)
	k2 := -p1 * p2 * (1 + b1*p1) / (p2 - p1)
	return PoleResidueModel{Poles: []float64{p1, p2}, Residues: []float64{k1, k2}}
}
