package bfs_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opensta-go/sta/bfs"
	"github.com/opensta-go/sta/core"
	"github.com/opensta-go/sta/rf"
)

// buildReconvergingGraph builds two sources at level 0, each feeding its own
// level-1 vertex; both level-1 vertices reconverge on one level-2 vertex,
// which feeds a final vertex at level 3.
func buildReconvergingGraph(t *testing.T) (*core.Graph, []core.VertexId) {
	t.Helper()
	g := core.NewGraph()
	src1, _ := g.AddPin("src1", core.DirOutput)
	src2, _ := g.AddPin("src2", core.DirOutput)
	mid1, _ := g.AddPin("mid1", core.DirInternal)
	mid2, _ := g.AddPin("mid2", core.DirInternal)
	top, _ := g.AddPin("top", core.DirInternal)
	back, _ := g.AddPin("back", core.DirInternal)

	arcs := core.NewTimingArcSet(core.RoleCombinational)
	arcs.AddArc(rf.Rise, rf.Rise)

	mustEdge := func(from, to core.VertexId) {
		_, err := g.AddEdge(from, to, arcs)
		require.NoError(t, err)
	}
	mustEdge(src1, mid1)
	mustEdge(src2, mid2)
	mustEdge(mid1, top)
	mustEdge(mid2, top)
	mustEdge(top, back)

	g.Levelize()
	return g, []core.VertexId{src1, src2, mid1, mid2, top, back}
}

func TestForwardVisitEmitsEachVertexOnceInLevelOrder(t *testing.T) {
	g, ids := buildReconvergingGraph(t)
	src1, src2 := ids[0], ids[1]

	it := bfs.NewForward(g, bfs.Arrival)
	it.Enqueue(src1)
	it.Enqueue(src2)

	var visitedOrder []int
	visited := make(map[core.VertexId]bool)
	count, err := it.Visit(-1, func(id core.VertexId) error {
		visitedOrder = append(visitedOrder, g.Vertex(id).Level())
		require.False(t, visited[id], "vertex %d visited twice", id)
		visited[id] = true
		it.EnqueueAdjacentVertices(id, nil, -1)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, len(ids), count)

	for i := 1; i < len(visitedOrder); i++ {
		require.GreaterOrEqual(t, visitedOrder[i], visitedOrder[i-1])
	}
}

func TestEnqueueIsIdempotent(t *testing.T) {
	g, ids := buildReconvergingGraph(t)
	it := bfs.NewForward(g, bfs.Dcalc)
	it.Enqueue(ids[0])
	it.Enqueue(ids[0])
	count, err := it.Visit(-1, func(core.VertexId) error { return nil })
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestDeleteVertexBeforeRemovesFromBucket(t *testing.T) {
	g, ids := buildReconvergingGraph(t)
	it := bfs.NewForward(g, bfs.Required)
	it.Enqueue(ids[2])
	require.True(t, it.InQueue(ids[2]))
	it.DeleteVertexBefore(ids[2])
	require.False(t, it.InQueue(ids[2]))
}

func TestBackwardIteratorVisitsHighestLevelFirst(t *testing.T) {
	g, ids := buildReconvergingGraph(t)
	back := ids[5]

	it := bfs.NewBackward(g, bfs.Required)
	it.Enqueue(back)

	var levels []int
	_, err := it.Visit(-1, func(id core.VertexId) error {
		levels = append(levels, g.Vertex(id).Level())
		it.EnqueueAdjacentVertices(id, nil, -1)
		return nil
	})
	require.NoError(t, err)
	for i := 1; i < len(levels); i++ {
		require.LessOrEqual(t, levels[i], levels[i-1])
	}
}

// TestParallelVisitEquivalence implements Testable Property 6: two runs, one
// via VisitParallel and one via Visit, over the same graph with a
// commutative counter visitor, must yield identical final counter values
// and visit the identical set of vertices.
func TestParallelVisitEquivalence(t *testing.T) {
	runOnce := func(parallel bool) (int64, map[core.VertexId]bool) {
		g, ids := buildReconvergingGraph(t)
		it := bfs.NewForward(g, bfs.Other)
		it.Enqueue(ids[0])
		it.Enqueue(ids[1])

		var counter int64
		var mu sync.Mutex
		seen := make(map[core.VertexId]bool)

		visitor := func(id core.VertexId) error {
			atomic.AddInt64(&counter, 1)
			mu.Lock()
			seen[id] = true
			mu.Unlock()
			it.EnqueueAdjacentVertices(id, nil, -1)
			return nil
		}

		var err error
		if parallel {
			_, err = it.VisitParallel(context.Background(), -1, visitor)
		} else {
			_, err = it.Visit(-1, visitor)
		}
		require.NoError(t, err)
		return counter, seen
	}

	seqCount, seqSeen := runOnce(false)
	parCount, parSeen := runOnce(true)

	require.Equal(t, seqCount, parCount)
	require.Equal(t, len(seqSeen), len(parSeen))
	for id := range seqSeen {
		require.True(t, parSeen[id])
	}
}
