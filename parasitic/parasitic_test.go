package parasitic_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opensta-go/sta/core"
	"github.com/opensta-go/sta/parasitic"
	"github.com/opensta-go/sta/rf"
	"github.com/opensta-go/sta/util"
)

func buildChainNetwork() *parasitic.DistributedRCNetwork {
	n := parasitic.NewDistributedRCNetwork(0.01)
	n.AddSegment(0, 1, 100, 0.02)
	n.AddSegment(1, 2, 150, 0.03)
	return n
}

func TestTotalCapacitanceSumsEverySegmentAndDriverLump(t *testing.T) {
	n := buildChainNetwork()
	require.InDelta(t, 0.01+0.02+0.03, n.TotalCapacitance(), 1e-12)
}

func TestToLumpedCapacitanceMatchesTotal(t *testing.T) {
	n := buildChainNetwork()
	lc := parasitic.ToLumpedCapacitance(n)
	require.InDelta(t, n.TotalCapacitance(), lc.TotalCapF, 1e-12)
}

func TestToElmoreTreeDelayIncreasesDownstream(t *testing.T) {
	n := buildChainNetwork()
	tree := parasitic.ToElmoreTree(n)
	require.InDelta(t, 0, tree.NodeDelay[0], 1e-12)
	require.Greater(t, tree.NodeDelay[1], tree.NodeDelay[0])
	require.Greater(t, tree.NodeDelay[2], tree.NodeDelay[1])
}

func TestToPoleResidueModelProducesAtLeastOnePole(t *testing.T) {
	n := buildChainNetwork()
	pr := parasitic.ToPoleResidueModel(n)
	require.NotEmpty(t, pr.Poles)
	require.Equal(t, len(pr.Poles), len(pr.Residues))
}

func TestReductionIsIdempotentWithinFuzzyTolerance(t *testing.T) {
	n := buildChainNetwork()
	cache := parasitic.NewCache()
	cache.Attach(core.VertexId(0), rf.Rise, 0, n)

	first, ok := cache.Reduce(core.VertexId(0), rf.Rise, 0, parasitic.KindElmoreTree)
	require.True(t, ok)
	second, ok := cache.Reduce(core.VertexId(0), rf.Rise, 0, parasitic.KindElmoreTree)
	require.True(t, ok)

	firstTree := first.(parasitic.ElmoreTree)
	secondTree := second.(parasitic.ElmoreTree)
	for node, delay := range firstTree.NodeDelay {
		require.True(t, util.FuzzyEqual(delay, secondTree.NodeDelay[node]))
	}
}

func TestFindParasiticReturnsAttachedNetwork(t *testing.T) {
	cache := parasitic.NewCache()
	_, ok := cache.FindParasitic(core.VertexId(1), rf.Fall, 0)
	require.False(t, ok)

	n := buildChainNetwork()
	cache.Attach(core.VertexId(1), rf.Fall, 0, n)
	got, ok := cache.FindParasitic(core.VertexId(1), rf.Fall, 0)
	require.True(t, ok)
	require.Same(t, n, got)
}
