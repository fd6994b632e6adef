package ap_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opensta-go/sta/ap"
)

func TestMinMaxOppositeAndInit(t *testing.T) {
	require.Equal(t, ap.Min, ap.Max.Opposite())
	require.Equal(t, ap.Max, ap.Min.Opposite())
	require.True(t, math.IsInf(ap.Max.InitValue(), 1))
	require.True(t, math.IsInf(ap.Min.InitValue(), -1))
	require.True(t, ap.Max.IsInitValue(ap.Max.InitValue()))
}

func TestMinMaxBetter(t *testing.T) {
	require.True(t, ap.Max.Better(5, 3))
	require.False(t, ap.Max.Better(3, 5))
	require.True(t, ap.Min.Better(3, 5))
	require.False(t, ap.Min.Better(5, 3))
}

func TestCornerSetInterning(t *testing.T) {
	cs := ap.NewCornerSet()
	slow := cs.FindCorner("slow")
	fast := cs.FindCorner("fast")
	slowAgain := cs.FindCorner("slow")
	require.Same(t, slow, slowAgain)
	require.NotEqual(t, slow.Index(), fast.Index())
	require.Equal(t, 2, cs.Count())
}

func TestAnalysisPtSetCrossProduct(t *testing.T) {
	cs := ap.NewCornerSet()
	cs.FindCorner("slow")
	cs.FindCorner("fast")

	aps := ap.NewAnalysisPtSet(cs.Corners(), []ap.MinMax{ap.Min, ap.Max})
	require.Equal(t, 4, aps.Count())

	for i, pt := range aps.PathAnalysisPts() {
		require.Equal(t, i, pt.Index())
		require.Equal(t, i, pt.DcalcAnalysisPt().Index())
		require.Same(t, pt, pt.DcalcAnalysisPt().PathAnalysisPt())
	}
	require.Nil(t, aps.PathAnalysisPt(100))
}
