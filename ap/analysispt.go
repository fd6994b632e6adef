package ap

import "sync"

// PathAnalysisPt is the (corner, min/max) pair every arrival/required/slack
// value is indexed by (DATA MODEL: "Analysis point").
type PathAnalysisPt struct {
	corner  *Corner
	minMax  MinMax
	index   int
	dcalcAp *DcalcAnalysisPt
}

// Corner returns the PVT corner this point analyzes.
func (p *PathAnalysisPt) Corner() *Corner { return p.corner }

// PathMinMax returns whether this point analyzes the early or late path.
func (p *PathAnalysisPt) PathMinMax() MinMax { return p.minMax }

// Index returns this point's dense index, stable for the analysis run.
func (p *PathAnalysisPt) Index() int { return p.index }

// DcalcAnalysisPt returns this point's delay-calculation counterpart.
func (p *PathAnalysisPt) DcalcAnalysisPt() *DcalcAnalysisPt { return p.dcalcAp }

// DcalcAnalysisPt is PathAnalysisPt's delay-calculation counterpart: the
// condition a gate/wire delay calculation is performed under. In this core
// delay calc shares the same (corner, min/max) granularity as path
// analysis, so the two are kept as distinct types (per DATA MODEL) but
// always built in lock-step by AnalysisPtSet.
type DcalcAnalysisPt struct {
	corner *Corner
	minMax MinMax
	index  int
	pathAp *PathAnalysisPt
}

// Corner returns the PVT corner this point computes delays under.
func (d *DcalcAnalysisPt) Corner() *Corner { return d.corner }

// MinMax returns the early/late direction this point computes delays for.
func (d *DcalcAnalysisPt) MinMax() MinMax { return d.minMax }

// Index returns this point's dense index, stable for the analysis run.
func (d *DcalcAnalysisPt) Index() int { return d.index }

// PathAnalysisPt returns the path-analysis point this dcalc point serves.
func (d *DcalcAnalysisPt) PathAnalysisPt() *PathAnalysisPt { return d.pathAp }

// AnalysisPtSet builds and interns the cross product of a CornerSet and the
// {Min, Max} directions selected by the session's corner/min-max
// configuration (EXTERNAL INTERFACES §6, "corner / min-max set").
type AnalysisPtSet struct {
	mu       sync.RWMutex
	pathAps  []*PathAnalysisPt
	dcalcAps []*DcalcAnalysisPt
}

// NewAnalysisPtSet builds the full (corner x minMaxes) cross product,
// assigning indices 0..N-1 in corner-major, min/max-minor order.
func NewAnalysisPtSet(corners []*Corner, minMaxes []MinMax) *AnalysisPtSet {
	s := &AnalysisPtSet{}
	for _, c := range corners {
		for _, mm := range minMaxes {
			idx := len(s.pathAps)
			dcalcAp := &DcalcAnalysisPt{corner: c, minMax: mm, index: idx}
			pathAp := &PathAnalysisPt{corner: c, minMax: mm, index: idx, dcalcAp: dcalcAp}
			dcalcAp.pathAp = pathAp
			s.pathAps = append(s.pathAps, pathAp)
			s.dcalcAps = append(s.dcalcAps, dcalcAp)
		}
	}
	return s
}

// PathAnalysisPts returns every path analysis point in index order.
func (s *AnalysisPtSet) PathAnalysisPts() []*PathAnalysisPt {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*PathAnalysisPt, len(s.pathAps))
	copy(out, s.pathAps)
	return out
}

// DcalcAnalysisPts returns every dcalc analysis point in index order.
func (s *AnalysisPtSet) DcalcAnalysisPts() []*DcalcAnalysisPt {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*DcalcAnalysisPt, len(s.dcalcAps))
	copy(out, s.dcalcAps)
	return out
}

// PathAnalysisPt returns the point at index, or nil if out of range.
func (s *AnalysisPtSet) PathAnalysisPt(index int) *PathAnalysisPt {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if index < 0 || index >= len(s.pathAps) {
		return nil
	}
	return s.pathAps[index]
}

// Count returns the number of analysis points (corners x min/maxes).
func (s *AnalysisPtSet) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.pathAps)
}
