package tag_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opensta-go/sta/rf"
	"github.com/opensta-go/sta/tag"
	"github.com/opensta-go/sta/util"
)

func TestClockTableInterning(t *testing.T) {
	clocks := tag.NewClockTable()
	clk1 := clocks.FindClock("clk")
	clk1Again := clocks.FindClock("clk")
	clk2 := clocks.FindClock("clk2")
	require.Same(t, clk1, clk1Again)
	require.NotEqual(t, clk1.Index(), clk2.Index())
}

func TestClkInfoInterningIsReferentiallyTransparent(t *testing.T) {
	clocks := tag.NewClockTable()
	clk := clocks.FindClock("clk")
	clkInfos := tag.NewClkInfoTable()

	p := tag.ClkInfoParams{Clock: clk, ClockEdge: rf.Rise, CrprPin: 7, PathAPIndex: 1}
	a := clkInfos.Intern(p)
	b := clkInfos.Intern(p)
	require.Same(t, a, b)

	p2 := p
	p2.CrprPin = 9
	c := clkInfos.Intern(p2)
	require.NotSame(t, a, c)
	require.NotEqual(t, a.Index(), c.Index())
}

func TestTagInterningIsReferentiallyTransparent(t *testing.T) {
	tags := tag.NewTable(nil)
	p := tag.Params{RFIndex: rf.Rise.Index(), PathAPIndex: 2, IsClock: false, ExceptionStates: ""}
	t1 := tags.Intern(p)
	t2 := tags.Intern(p)
	require.Same(t, t1, t2)
	require.Equal(t, 1, tags.Count())

	p2 := p
	p2.IsClock = true
	t3 := tags.Intern(p2)
	require.NotSame(t, t1, t3)
	require.Equal(t, 2, tags.Count())
	require.Nil(t, tags.Tag(100))
	require.Same(t, t1, tags.Tag(t1.Index()))
}

func TestTagCmpOrdersByIndex(t *testing.T) {
	tags := tag.NewTable(nil)
	t1 := tags.Intern(tag.Params{RFIndex: 0})
	t2 := tags.Intern(tag.Params{RFIndex: 1})
	require.Equal(t, 0, tag.Cmp(t1, t1))
	require.Equal(t, -1, tag.Cmp(t1, t2))
	require.Equal(t, 1, tag.Cmp(t2, t1))
}

func TestTagMatchCmpIgnoresCrprPinUnlessRequested(t *testing.T) {
	clocks := tag.NewClockTable()
	clk := clocks.FindClock("clk")
	clkInfos := tag.NewClkInfoTable()

	ci1 := clkInfos.Intern(tag.ClkInfoParams{Clock: clk, ClockEdge: rf.Rise, CrprPin: 1, PathAPIndex: 0})
	ci2 := clkInfos.Intern(tag.ClkInfoParams{Clock: clk, ClockEdge: rf.Rise, CrprPin: 2, PathAPIndex: 0})

	tags := tag.NewTable(nil)
	t1 := tags.Intern(tag.Params{RFIndex: 0, PathAPIndex: 0, ClkInfo: ci1, IsClock: true})
	t2 := tags.Intern(tag.Params{RFIndex: 0, PathAPIndex: 0, ClkInfo: ci2, IsClock: true})

	// Distinct tags (distinct ClkInfo, hence distinct index)...
	require.NotEqual(t, 0, tag.Cmp(t1, t2))
	// ...but match-equal once CrprPin is excluded from the comparison.
	require.Equal(t, 0, tag.MatchCmp(t1, t2, false))
	// With crpr=true, CrprPin participates and they no longer match.
	require.NotEqual(t, 0, tag.MatchCmp(t1, t2, true))
}

func TestTagTableOverflowIsCritical(t *testing.T) {
	report := util.NewReport()
	tags := tag.NewTable(report)
	for i := 0; i < tag.TagIndexMax; i++ {
		tags.Intern(tag.Params{RFIndex: i % 2, PathAPIndex: i})
	}
	require.Panics(t, func() {
		tags.Intern(tag.Params{RFIndex: 0, PathAPIndex: tag.TagIndexMax + 1})
	})
}
