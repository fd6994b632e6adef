package path

import (
	"github.com/opensta-go/sta/ap"
	"github.com/opensta-go/sta/bfs"
	"github.com/opensta-go/sta/core"
	"github.com/opensta-go/sta/tag"
)

// ArcDelay looks up the delay already cached on (edge, arc) for tagIndex's
// transition, as computed by a prior C6 dcalc pass (COMPONENT DESIGN §4.6:
// "arc_delay (looked up via C6, already cached on the edge)"). ok is false
// when no delay has been cached yet (the dcalc pass for that level hasn't
// run), in which case the candidate is skipped rather than propagated with
// a bogus value.
type ArcDelay func(edge *core.Edge, arc *core.Arc, tagIndex int) (delay float64, ok bool)

// Engine drives forward (arrival) and backward (required) propagation over
// a timing graph, reading/writing through a shared Store and Tag table.
type Engine struct {
	Graph *core.Graph
	Store *Store
	Tags  *tag.Table
	APs   *ap.AnalysisPtSet
}

// PropagateForward drives a forward BFS over the graph under it, computing
// arrivals: for each vertex in level order, for each in-edge, for each tag
// live at the source, it proposes arrival = source.arrival + arc_delay(tag)
// at the destination under the same tag, merging by the tag's PathAnalysisPt
// MinMax (COMPONENT DESIGN §4.6 "Forward (arrivals)"). delayOf supplies the
// already-computed C6 arc delay.
func (e *Engine) PropagateForward(it *bfs.Iterator, delayOf ArcDelay) (int, error) {
	return it.Visit(-1, func(destID core.VertexId) error {
		dest := e.Graph.Vertex(destID)
		if dest == nil {
			return nil
		}
		for _, eid := range dest.InEdges() {
			edge := e.Graph.Edge(eid)
			if edge == nil || edge.IsFeedback() {
				continue
			}
			src := e.Graph.Vertex(edge.From())
			if src == nil {
				continue
			}
			for _, tagIndex := range src.TagGroup() {
				e.proposeForward(src, dest, edge, tagIndex, delayOf)
			}
		}
		it.EnqueueAdjacentVertices(destID, nil, -1)
		return nil
	})
}

func (e *Engine) proposeForward(src, dest *core.Vertex, edge *core.Edge, tagIndex int, delayOf ArcDelay) {
	t := e.Tags.Tag(tagIndex)
	if t == nil {
		return
	}
	arc := edge.TimingArcSet().Arc(t.Transition(), t.Transition())
	if arc == nil {
		for _, candidate := range edge.TimingArcSet().Arcs() {
			if candidate.FromRiseFall() == t.Transition() {
				arc = candidate
				break
			}
		}
	}
	if arc == nil {
		return
	}
	delay, ok := delayOf(edge, arc, tagIndex)
	if !ok {
		return
	}

	srcPath := e.Store.Get(src.Id(), tagIndex)
	if srcPath.IsNull {
		return
	}

	candidate := &Path{
		VertexId:   dest.Id(),
		TagIndex:   tagIndex,
		Arrival:    srcPath.Arrival + delay,
		PrevEdge:   edge.Id(),
		PrevArcIdx: arc.Index(),
		PrevPath:   srcPath,
	}

	pathAP := e.APs.PathAnalysisPt(t.PathAPIndex())
	minMax := ap.Max
	if pathAP != nil {
		minMax = pathAP.PathMinMax()
	}

	existing := e.Store.Get(dest.Id(), tagIndex)
	winner := Merge(existing, candidate, minMax, false)
	e.Store.Set(winner)
	dest.AddTag(tagIndex)
}

// PropagateBackward drives a backward BFS computing required times: for
// each vertex in descending level order, for each out-edge, for each tag
// live at the sink, it proposes required = sink.required - arc_delay(tag)
// at the source under the same tag, merging by the tag's PathAnalysisPt
// MinMax. Backward propagation merges under the opposite sense from
// forward (Opposite()) since the late required time for a max-path tag is
// the *smallest* upstream candidate.
func (e *Engine) PropagateBackward(it *bfs.Iterator, delayOf ArcDelay) (int, error) {
	return it.Visit(-1, func(srcID core.VertexId) error {
		src := e.Graph.Vertex(srcID)
		if src == nil {
			return nil
		}
		for _, eid := range src.OutEdges() {
			edge := e.Graph.Edge(eid)
			if edge == nil || edge.IsFeedback() {
				continue
			}
			dest := e.Graph.Vertex(edge.To())
			if dest == nil {
				continue
			}
			for _, tagIndex := range dest.TagGroup() {
				e.proposeBackward(src, dest, edge, tagIndex, delayOf)
			}
		}
		it.EnqueueAdjacentVertices(srcID, nil, -1)
		return nil
	})
}

func (e *Engine) proposeBackward(src, dest *core.Vertex, edge *core.Edge, tagIndex int, delayOf ArcDelay) {
	t := e.Tags.Tag(tagIndex)
	if t == nil {
		return
	}
	arc := edge.TimingArcSet().Arc(t.Transition(), t.Transition())
	if arc == nil {
		return
	}
	delay, ok := delayOf(edge, arc, tagIndex)
	if !ok {
		return
	}

	destPath := e.Store.Get(dest.Id(), tagIndex)
	if destPath.IsNull {
		return
	}

	candidate := &Path{
		VertexId:   src.Id(),
		TagIndex:   tagIndex,
		Required:   destPath.Required - delay,
		PrevEdge:   edge.Id(),
		PrevArcIdx: arc.Index(),
		PrevPath:   destPath,
	}

	pathAP := e.APs.PathAnalysisPt(t.PathAPIndex())
	minMax := ap.Max.Opposite()
	if pathAP != nil {
		minMax = pathAP.PathMinMax().Opposite()
	}

	existing := e.Store.Get(src.Id(), tagIndex)
	winner := Merge(existing, candidate, minMax, true)
	e.Store.Set(winner)
	src.AddTag(tagIndex)
}
