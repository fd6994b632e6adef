package sta

import (
	"fmt"

	"github.com/opensta-go/sta/ap"
	"github.com/opensta-go/sta/bfs"
	"github.com/opensta-go/sta/core"
	"github.com/opensta-go/sta/dcalc"
	"github.com/opensta-go/sta/path"
	"github.com/opensta-go/sta/tag"
	"github.com/opensta-go/sta/util"
)

// Session owns one complete timing-graph analysis: the graph itself, the
// interning tables C2-C7 share, the selected delay-calculation algorithm,
// and the per-edge delay cache that lets path propagation treat an arc's
// delay as "already computed" (SPEC_FULL §4.6). A Session is built once
// per netlist/constraint load and torn down with Close.
type Session struct {
	Graph   *core.Graph
	Tags    *tag.Table
	Corners *ap.CornerSet
	APs     *ap.AnalysisPtSet
	Paths   *path.Store
	Report  *util.Report

	delayCalc dcalc.ArcDelayCalc
	delays    map[delayKey]float64
}

type delayKey struct {
	edge    core.EdgeId
	arcIdx  int
	dcalcAp int
}

// NewSession builds an empty session over g, analyzed at the cross product
// of corners and minMaxes (EXTERNAL INTERFACES §6: "corner / min-max set").
// The delay-calculation algorithm defaults to "unit"; call SetDelayCalc to
// pick another of the seven registered algorithms.
func NewSession(g *core.Graph, corners *ap.CornerSet, minMaxes []ap.MinMax) (*Session, error) {
	s := &Session{
		Graph:   g,
		Tags:    tag.NewTable(nil),
		Corners: corners,
		APs:     ap.NewAnalysisPtSet(corners.Corners(), minMaxes),
		Paths:   path.NewStore(),
		Report:  util.NewReport(),
		delays:  make(map[delayKey]float64),
	}
	if err := s.SetDelayCalc("unit"); err != nil {
		return nil, err
	}
	return s, nil
}

// SetDelayCalc switches the session's active delay-calculation algorithm to
// the one registered under name (one of the seven predefined names, or a
// caller-registered one via dcalc.RegisterDelayCalc), discarding any
// previously cached arc delays since they were computed under the old
// algorithm.
func (s *Session) SetDelayCalc(name string) error {
	calc, err := dcalc.MakeDelayCalc(name, s)
	if err != nil {
		return err
	}
	s.delayCalc = calc
	s.delays = make(map[delayKey]float64)
	return nil
}

// DelayCalcName returns the active delay-calculation algorithm's registry
// name.
func (s *Session) DelayCalcName() string {
	if s.delayCalc == nil {
		return ""
	}
	return s.delayCalc.Name()
}

// AnnotateDelays computes and caches the gate delay for every arc of
// every non-feedback edge in the graph, at every dcalc analysis point
// (SPEC_FULL §4.6: "arc_delay, looked up via C6, already cached on the
// edge" — this is the pass that does the caching path propagation later
// reads). It must run after core.Graph.Levelize and before
// PropagateArrivals/PropagateRequireds.
func (s *Session) AnnotateDelays() error {
	if s.delayCalc == nil {
		return fmt.Errorf("sta: no delay calculator selected")
	}
	for eid := 0; eid < s.Graph.EdgeCount(); eid++ {
		edge := s.Graph.Edge(core.EdgeId(eid))
		if edge == nil || edge.IsFeedback() {
			continue
		}
		for _, arc := range edge.TimingArcSet().Arcs() {
			for _, dcalcAp := range s.APs.DcalcAnalysisPts() {
				arg := dcalc.NewArcDcalcArg(edge.To(), edge.From(), edge, arc, 0, 0, nil)
				result := s.delayCalc.GateDelay(arg, nil, dcalcAp.Index())
				s.delays[delayKey{edge: edge.Id(), arcIdx: arc.Index(), dcalcAp: dcalcAp.Index()}] = result.GateDelay
			}
		}
		s.delayCalc.FinishDrvrPin()
	}
	return nil
}

// arcDelay implements path.ArcDelay against the session's cache, resolving
// tagIndex's dcalc analysis point via its PathAPIndex.
func (s *Session) arcDelay(edge *core.Edge, arc *core.Arc, tagIndex int) (float64, bool) {
	t := s.Tags.Tag(tagIndex)
	if t == nil {
		return 0, false
	}
	pathAP := s.APs.PathAnalysisPt(t.PathAPIndex())
	if pathAP == nil {
		return 0, false
	}
	d, ok := s.delays[delayKey{edge: edge.Id(), arcIdx: arc.Index(), dcalcAp: pathAP.DcalcAnalysisPt().Index()}]
	return d, ok
}

// newEngine returns a path.Engine bound to this session's graph, store,
// tags, and analysis points.
func (s *Session) newEngine() *path.Engine {
	return &path.Engine{Graph: s.Graph, Store: s.Paths, Tags: s.Tags, APs: s.APs}
}

// PropagateArrivals drives forward propagation from every vertex already
// enqueued on it (callers seed primary inputs/clock sources before calling
// this), using the session's cached arc delays.
func (s *Session) PropagateArrivals(it *bfs.Iterator) (int, error) {
	return s.newEngine().PropagateForward(it, s.arcDelay)
}

// PropagateRequireds drives backward propagation analogously, from every
// vertex already enqueued on it (callers seed primary outputs/endpoints).
func (s *Session) PropagateRequireds(it *bfs.Iterator) (int, error) {
	return s.newEngine().PropagateBackward(it, s.arcDelay)
}

// Close tears down the session's delay-calculation algorithm state.
func (s *Session) Close() {
	if s.delayCalc != nil {
		s.delayCalc.FinishDrvrPin()
	}
}
