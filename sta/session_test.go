package sta_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opensta-go/sta/ap"
	"github.com/opensta-go/sta/bfs"
	"github.com/opensta-go/sta/core"
	"github.com/opensta-go/sta/path"
	"github.com/opensta-go/sta/rf"
	"github.com/opensta-go/sta/sta"
	"github.com/opensta-go/sta/tag"
)

func buildLinearSession(t *testing.T) (*sta.Session, core.VertexId, core.VertexId, core.VertexId) {
	t.Helper()
	g := core.NewGraph()
	d, err := g.AddPin("D", core.DirOutput)
	require.NoError(t, err)
	s, err := g.AddPin("S", core.DirInternal)
	require.NoError(t, err)
	x, err := g.AddPin("X", core.DirInput)
	require.NoError(t, err)

	arcs1 := core.NewTimingArcSet(core.RoleCombinational)
	arcs1.AddArc(rf.Rise, rf.Rise)
	_, err = g.AddEdge(d, s, arcs1)
	require.NoError(t, err)

	arcs2 := core.NewTimingArcSet(core.RoleWire)
	arcs2.AddArc(rf.Rise, rf.Rise)
	_, err = g.AddEdge(s, x, arcs2)
	require.NoError(t, err)

	g.Levelize()

	corners := ap.NewCornerSet()
	corners.FindCorner("typical")
	session, err := sta.NewSession(g, corners, []ap.MinMax{ap.Max})
	require.NoError(t, err)
	return session, d, s, x
}

func TestNewSessionDefaultsToUnitDelayCalc(t *testing.T) {
	session, _, _, _ := buildLinearSession(t)
	require.Equal(t, "unit", session.DelayCalcName())
}

func TestSetDelayCalcSwitchesAlgorithm(t *testing.T) {
	session, _, _, _ := buildLinearSession(t)
	require.NoError(t, session.AnnotateDelays())

	require.NoError(t, session.SetDelayCalc("lumped_cap"))
	require.Equal(t, "lumped_cap", session.DelayCalcName())
}

func TestSetDelayCalcUnknownNameErrors(t *testing.T) {
	session, _, _, _ := buildLinearSession(t)
	err := session.SetDelayCalc("does-not-exist")
	require.Error(t, err)
}

func TestAnnotateDelaysThenPropagateArrivalsEndToEnd(t *testing.T) {
	session, d, s, x := buildLinearSession(t)
	require.NoError(t, session.AnnotateDelays())

	pathAP := session.APs.PathAnalysisPt(0)
	require.NotNil(t, pathAP)
	tg := session.Tags.Intern(tag.Params{RFIndex: rf.Rise.Index(), PathAPIndex: pathAP.Index()})

	session.Paths.Set(&path.Path{VertexId: d, TagIndex: tg.Index(), Arrival: 0})
	session.Graph.Vertex(d).AddTag(tg.Index())

	it := bfs.NewForward(session.Graph, bfs.Arrival)
	it.Enqueue(d)

	visited, err := session.PropagateArrivals(it)
	require.NoError(t, err)
	require.Equal(t, 3, visited)

	sPath := session.Paths.Get(s, tg.Index())
	require.False(t, sPath.IsNull)
	require.InDelta(t, 1.0, sPath.Arrival, 1e-9, "unit delay calc returns a fixed 1.0 gate delay per arc")

	xPath := session.Paths.Get(x, tg.Index())
	require.False(t, xPath.IsNull)
	require.InDelta(t, 2.0, xPath.Arrival, 1e-9)
}
