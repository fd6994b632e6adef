package path

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opensta-go/sta/ap"
	"github.com/opensta-go/sta/core"
	"github.com/opensta-go/sta/rf"
	"github.com/opensta-go/sta/tag"
	"github.com/opensta-go/sta/util"
)

func TestEqualTreatsNullsAsEqualToEachOtherOnly(t *testing.T) {
	n1 := NullPath(1, 0)
	n2 := NullPath(2, 9)
	real := &Path{VertexId: 1, TagIndex: 0}

	require.True(t, equal(n1, n2), "two null paths are equal regardless of vertex/tag")
	require.False(t, equal(n1, real))
	require.False(t, equal(real, n1))
}

func TestCmpOrdersByVertexThenTagNullsFirst(t *testing.T) {
	null := NullPath(0, 0)
	low := &Path{VertexId: 1, TagIndex: 5}
	high := &Path{VertexId: 1, TagIndex: 9}
	otherVertex := &Path{VertexId: 2, TagIndex: 0}

	require.True(t, less(null, low))
	require.True(t, less(low, high))
	require.True(t, less(high, otherVertex))
	require.Equal(t, 0, cmp(low, low))
}

func TestCmpNoCrprIgnoresCrprPinField(t *testing.T) {
	tags := tag.NewTable(util.NewReport())
	clocks := tag.NewClockTable()
	clk := clocks.FindClock("clk")
	clkInfos := tag.NewClkInfoTable()

	ci1 := clkInfos.Intern(tag.ClkInfoParams{Clock: clk, ClockEdge: rf.Rise, CrprPin: 1})
	ci2 := clkInfos.Intern(tag.ClkInfoParams{Clock: clk, ClockEdge: rf.Rise, CrprPin: 2})

	t1 := tags.Intern(tag.Params{RFIndex: rf.Rise.Index(), ClkInfo: ci1, IsClock: true})
	t2 := tags.Intern(tag.Params{RFIndex: rf.Rise.Index(), ClkInfo: ci2, IsClock: true})
	require.NotEqual(t, t1.Index(), t2.Index(), "distinct CrprPin must still intern to distinct tags")

	p1 := &Path{VertexId: 7, TagIndex: t1.Index()}
	p2 := &Path{VertexId: 7, TagIndex: t2.Index()}

	require.Equal(t, 0, cmpNoCrpr(p1, p2, tags), "cmpNoCrpr must ignore the CrprPin difference")
	require.NotEqual(t, 0, tag.MatchCmp(t1, t2, true), "full MatchCmp(crpr=true) must still see the difference")
}

func TestCmpAllStopsAtLatchLoopClosure(t *testing.T) {
	root := &Path{VertexId: 0, TagIndex: 0}
	mid := &Path{VertexId: 1, TagIndex: 0, PrevPath: root}
	loopBack := &Path{VertexId: 0, TagIndex: 0, PrevPath: mid}

	p1 := &Path{VertexId: 2, TagIndex: 0, PrevPath: loopBack}
	p2 := &Path{VertexId: 2, TagIndex: 0, PrevPath: loopBack}

	require.Equal(t, 0, cmpAll(p1, p2, nil))
}

func TestCmpAllStopsAtLatchDToQBoundary(t *testing.T) {
	upstream := &Path{VertexId: 9, TagIndex: 0}
	boundaryEdge := core.EdgeId(42)
	viaLatch := &Path{VertexId: 8, TagIndex: 0, PrevEdge: boundaryEdge, PrevPath: upstream}

	p1 := &Path{VertexId: 2, TagIndex: 0, PrevPath: viaLatch}
	p2 := &Path{VertexId: 2, TagIndex: 0, PrevPath: viaLatch}

	isLatchDToQ := func(id core.EdgeId) bool { return id == boundaryEdge }
	require.Equal(t, 0, cmpAll(p1, p2, isLatchDToQ))
}

func TestCmpAllDivergesWhenChainsDiffer(t *testing.T) {
	predA := &Path{VertexId: 10, TagIndex: 0}
	predB := &Path{VertexId: 11, TagIndex: 0}

	p1 := &Path{VertexId: 2, TagIndex: 0, PrevPath: predA}
	p2 := &Path{VertexId: 2, TagIndex: 0, PrevPath: predB}

	require.True(t, lessAll(p1, p2, nil))
	require.False(t, lessAll(p2, p1, nil))
}

func TestMergeOfTwoNullsReturnsNull(t *testing.T) {
	n1 := NullPath(1, 0)
	n2 := NullPath(1, 0)
	winner := Merge(n1, n2, ap.Max, false)
	require.True(t, winner.IsNull)
}
