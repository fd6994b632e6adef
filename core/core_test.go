package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opensta-go/sta/core"
	"github.com/opensta-go/sta/rf"
)

func buildLinearGraph(t *testing.T) (*core.Graph, core.VertexId, core.VertexId, core.VertexId) {
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
	arcs.AddArc(rf.Fall, rf.Fall)
	_, err = g.AddEdge(d, s, arcs)
	require.NoError(t, err)

	arcs2 := core.NewTimingArcSet(core.RoleWire)
	arcs2.AddArc(rf.Rise, rf.Rise)
	arcs2.AddArc(rf.Fall, rf.Fall)
	_, err = g.AddEdge(s, x, arcs2)
	require.NoError(t, err)

	return g, d, s, x
}

func TestAddPinRejectsEmptyNameAndDuplicates(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddPin("", core.DirInput)
	require.ErrorIs(t, err, core.ErrEmptyPinName)

	_, err = g.AddPin("A", core.DirInput)
	require.NoError(t, err)
	_, err = g.AddPin("A", core.DirInput)
	require.ErrorIs(t, err, core.ErrDuplicatePin)
}

func TestDirectionPredicates(t *testing.T) {
	require.True(t, core.DirInput.IsAnyInput())
	require.True(t, core.DirBidirect.IsAnyInput())
	require.False(t, core.DirOutput.IsAnyInput())

	require.True(t, core.DirOutput.IsAnyOutput())
	require.True(t, core.DirTristate.IsAnyOutput())
	require.True(t, core.DirBidirect.IsAnyOutput())
	require.False(t, core.DirInput.IsAnyOutput())
}

func TestLevelizeAssignsStrictlyIncreasingLevels(t *testing.T) {
	g, d, s, x := buildLinearGraph(t)
	g.Levelize()

	require.Equal(t, 0, g.Vertex(d).Level())
	require.Equal(t, 1, g.Vertex(s).Level())
	require.Equal(t, 2, g.Vertex(x).Level())
	require.Equal(t, 2, g.MaxLevel())
	require.True(t, g.IsLevelized())
}

func TestLevelizeMarksFeedbackEdgesAndExcludesThemFromLevel(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.AddPin("A", core.DirInternal)
	b, _ := g.AddPin("B", core.DirInternal)
	c, _ := g.AddPin("C", core.DirInternal)

	fwd := core.NewTimingArcSet(core.RoleCombinational)
	fwd.AddArc(rf.Rise, rf.Rise)
	_, _ = g.AddEdge(a, b, fwd)
	_, _ = g.AddEdge(b, c, fwd)
	backEdgeID, err := g.AddEdge(c, a, fwd)
	require.NoError(t, err)

	g.Levelize()

	for _, e := range []core.EdgeId{backEdgeID} {
		require.True(t, g.Edge(e).IsFeedback())
	}
	// Non-feedback invariant: level(to) > level(from) for every surviving edge.
	require.Less(t, g.Vertex(a).Level(), g.Vertex(b).Level())
	require.Less(t, g.Vertex(b).Level(), g.Vertex(c).Level())
}

func TestFindEdgeArcResolvesByTransition(t *testing.T) {
	g, d, s, _ := buildLinearGraph(t)

	e, arc, err := g.FindEdgeArc(s, rf.Rise, d, rf.Rise)
	require.NoError(t, err)
	require.NotNil(t, e)
	require.Equal(t, rf.Rise, arc.ToRiseFall())

	_, _, err = g.FindEdgeArc(s, rf.Rise, d, rf.Fall)
	require.ErrorIs(t, err, core.ErrNoTimingArc)
}

type recordingObserver struct {
	notified []core.VertexId
}

func (r *recordingObserver) DeleteVertexBefore(id core.VertexId) {
	r.notified = append(r.notified, id)
}

func TestDeleteVertexBeforeNotifiesObserversBeforeRemoval(t *testing.T) {
	g, _, s, _ := buildLinearGraph(t)
	g.Levelize()
	require.True(t, g.IsLevelized())

	obs := &recordingObserver{}
	g.DeleteVertexBefore(s, []core.VertexObserver{obs})

	require.Equal(t, []core.VertexId{s}, obs.notified)
	require.Nil(t, g.Vertex(s))
	require.False(t, g.IsLevelized())
}

func TestVertexSlewAndTagGroup(t *testing.T) {
	g := core.NewGraph()
	id, _ := g.AddPin("Z", core.DirOutput)
	v := g.Vertex(id)

	_, ok := v.Slew(rf.Rise, 0)
	require.False(t, ok)
	v.SetSlew(rf.Rise, 0, 0.25)
	slew, ok := v.Slew(rf.Rise, 0)
	require.True(t, ok)
	require.InDelta(t, 0.25, slew, 1e-12)

	require.False(t, v.HasTag(3))
	v.AddTag(3)
	v.AddTag(3)
	require.Equal(t, []int{3}, v.TagGroup())
}
