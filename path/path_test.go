package path_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opensta-go/sta/ap"
	"github.com/opensta-go/sta/bfs"
	"github.com/opensta-go/sta/core"
	"github.com/opensta-go/sta/path"
	"github.com/opensta-go/sta/rf"
	"github.com/opensta-go/sta/tag"
	"github.com/opensta-go/sta/util"
)

func buildTags(t *testing.T) (*tag.Table, *ap.AnalysisPtSet) {
	t.Helper()
	corners := ap.NewCornerSet()
	corners.FindCorner("typical")
	aps := ap.NewAnalysisPtSet(corners.Corners(), []ap.MinMax{ap.Max})
	tags := tag.NewTable(util.NewReport())
	return tags, aps
}

func TestPathMergeUnderMaxPrefersLaterArrival(t *testing.T) {
	tags, aps := buildTags(t)
	pathAP := aps.PathAnalysisPt(0)
	require.NotNil(t, pathAP)
	tg := tags.Intern(tag.Params{RFIndex: rf.Rise.Index(), PathAPIndex: pathAP.Index()})

	early := &path.Path{VertexId: 1, TagIndex: tg.Index(), Arrival: 1.0}
	late := &path.Path{VertexId: 1, TagIndex: tg.Index(), Arrival: 2.0}

	winner := path.Merge(early, late, ap.Max, false)
	require.Same(t, late, winner)

	winnerMin := path.Merge(early, late, ap.Min, false)
	require.Same(t, early, winnerMin)
}

func TestPathMergeNullOperandLosesAlways(t *testing.T) {
	null := path.NullPath(3, 0)
	real := &path.Path{VertexId: 3, TagIndex: 0, Arrival: 5.0}

	require.Same(t, real, path.Merge(null, real, ap.Max, false))
	require.Same(t, real, path.Merge(real, null, ap.Max, false))
}

func TestPathMergeTieBreaksOnPredecessorOrder(t *testing.T) {
	predA := &path.Path{VertexId: 1, TagIndex: 0}
	predB := &path.Path{VertexId: 2, TagIndex: 0}

	a := &path.Path{VertexId: 5, TagIndex: 0, Arrival: 3.0, PrevPath: predA}
	b := &path.Path{VertexId: 5, TagIndex: 0, Arrival: 3.0, PrevPath: predB}

	winner := path.Merge(a, b, ap.Max, false)
	require.Same(t, a, winner, "lower predecessor vertex id should win a tie")
}

func TestPathEngineForwardPropagatesAlongLinearChain(t *testing.T) {
	g, d, s, x := buildLinearGraphWithEdges(t)
	tags, aps := buildTags(t)
	pathAP := aps.PathAnalysisPt(0)
	tg := tags.Intern(tag.Params{RFIndex: rf.Rise.Index(), PathAPIndex: pathAP.Index()})

	store := path.NewStore()
	store.Set(&path.Path{VertexId: d, TagIndex: tg.Index(), Arrival: 0})
	dv := g.Vertex(d)
	dv.AddTag(tg.Index())

	g.Levelize()

	engine := &path.Engine{Graph: g, Store: store, Tags: tags, APs: aps}
	it := bfs.NewForward(g, bfs.Arrival)
	it.Enqueue(d)

	delayOf := func(edge *core.Edge, arc *core.Arc, tagIndex int) (float64, bool) {
		return 1.5, true
	}

	visited, err := engine.PropagateForward(it, delayOf)
	require.NoError(t, err)
	require.Equal(t, 3, visited)

	sPath := store.Get(s, tg.Index())
	require.False(t, sPath.IsNull)
	require.InDelta(t, 1.5, sPath.Arrival, 1e-9)

	xPath := store.Get(x, tg.Index())
	require.False(t, xPath.IsNull)
	require.InDelta(t, 3.0, xPath.Arrival, 1e-9)
	require.Same(t, sPath, xPath.PrevPath)
}

func TestPathEngineBackwardPropagatesRequired(t *testing.T) {
	g, d, s, x := buildLinearGraphWithEdges(t)
	tags, aps := buildTags(t)
	pathAP := aps.PathAnalysisPt(0)
	tg := tags.Intern(tag.Params{RFIndex: rf.Rise.Index(), PathAPIndex: pathAP.Index()})

	store := path.NewStore()
	store.Set(&path.Path{VertexId: x, TagIndex: tg.Index(), Required: 10.0})
	xv := g.Vertex(x)
	xv.AddTag(tg.Index())

	g.Levelize()

	engine := &path.Engine{Graph: g, Store: store, Tags: tags, APs: aps}
	it := bfs.NewBackward(g, bfs.Required)
	it.Enqueue(x)

	delayOf := func(edge *core.Edge, arc *core.Arc, tagIndex int) (float64, bool) {
		return 1.0, true
	}

	_, err := engine.PropagateBackward(it, delayOf)
	require.NoError(t, err)

	sPath := store.Get(s, tg.Index())
	require.False(t, sPath.IsNull)
	require.InDelta(t, 9.0, sPath.Required, 1e-9)

	dPath := store.Get(d, tg.Index())
	require.False(t, dPath.IsNull)
	require.InDelta(t, 8.0, dPath.Required, 1e-9)
}

func buildLinearGraphWithEdges(t *testing.T) (*core.Graph, core.VertexId, core.VertexId, core.VertexId) {
	t.Helper()
	g := core.NewGraph()
	d, err := g.AddPin("D", core.DirOutput)
	require.NoError(t, err)
	s, err := g.AddPin("S", core.DirInternal)
	require.NoError(t, err)
	x, err := g.AddPin("X", core.DirInput)
	require.NoError(t, err)

	arcs := core.NewTimingArcSet(core.RoleCombinational)
	arcs.AddArc(rf.Rise, rf.Rise)
	_, err = g.AddEdge(d, s, arcs)
	require.NoError(t, err)

	arcs2 := core.NewTimingArcSet(core.RoleWire)
	arcs2.AddArc(rf.Rise, rf.Rise)
	_, err = g.AddEdge(s, x, arcs2)
	require.NoError(t, err)

	return g, d, s, x
}
