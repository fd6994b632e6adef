package path

import (
	"github.com/opensta-go/sta/ap"
	"github.com/opensta-go/sta/core"
)

// Path is a realised arrival (or required) time at a vertex for one tag
// (DATA MODEL: "Path: a realised arrival (or required) at a vertex for one
// tag"). IsNull marks an uninitialized slot so callers can distinguish
// "never propagated" from a genuine ±∞ sentinel.
type Path struct {
	VertexId   core.VertexId
	TagIndex   int
	Arrival    float64
	Required   float64
	PrevEdge   core.EdgeId
	PrevArcIdx int
	PrevPath   *Path
	IsNull     bool
}

// NullPath returns the uninitialized path for (vertexID, tagIndex).
func NullPath(vertexID core.VertexId, tagIndex int) *Path {
	return &Path{VertexId: vertexID, TagIndex: tagIndex, PrevEdge: core.NoEdge, PrevArcIdx: -1, IsNull: true}
}

// equal implements DATA MODEL's "equal(p1, p2) ≡ both null ∨ same vertex ∧
// same tag" (tag equality already implies transition and analysis-pt
// equality, since Tag is interned on those fields).
func equal(p1, p2 *Path) bool {
	n1 := p1 == nil || p1.IsNull
	n2 := p2 == nil || p2.IsNull
	if n1 || n2 {
		return n1 && n2
	}
	return p1.VertexId == p2.VertexId && p1.TagIndex == p2.TagIndex
}

// cmp implements "cmp(p1,p2) = (vertex_id, tag_index) lexicographic, nulls
// first".
func cmp(p1, p2 *Path) int {
	n1 := p1 == nil || p1.IsNull
	n2 := p2 == nil || p2.IsNull
	switch {
	case n1 && n2:
		return 0
	case n1:
		return -1
	case n2:
		return 1
	case p1.VertexId != p2.VertexId:
		return cmpInt(int(p1.VertexId), int(p2.VertexId))
	default:
		return cmpInt(p1.TagIndex, p2.TagIndex)
	}
}

// less reports whether p1 sorts before p2 under cmp.
func less(p1, p2 *Path) bool { return cmp(p1, p2) < 0 }

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// lessAll reports whether p1 sorts before p2 under cmpAll.
func lessAll(p1, p2 *Path, isLatchDToQ func(core.EdgeId) bool) bool {
	return cmpAll(p1, p2, isLatchDToQ) < 0
}

// cmpAll walks back along each path's PrevPath chain comparing node-by-node,
// implementing COMPONENT DESIGN §4.6's two-part break condition: it
// terminates either (a) when it revisits a vertex already seen on *either*
// chain during this walk (a latch loop closes back on itself, so the two
// paths are declared equal at that point), or (b) when either chain crosses
// an edge whose role is latch D-to-Q (the loop's boundary — beyond it the
// chains are no longer comparable as the same combinational path, so they
// are again declared equal). isLatchDToQ classifies an edge id; pass nil to
// disable boundary (b) and rely only on (a).
func cmpAll(p1, p2 *Path, isLatchDToQ func(core.EdgeId) bool) int {
	seen := make(map[core.VertexId]bool)
	cur1, cur2 := p1, p2
	for {
		if cur1 == nil || cur1.IsNull || cur2 == nil || cur2.IsNull {
			return cmp(cur1, cur2)
		}
		if c := cmp(cur1, cur2); c != 0 {
			return c
		}
		// (a) latch-loop closure: either chain revisits an already-seen vertex.
		if seen[cur1.VertexId] || seen[cur2.VertexId] {
			return 0
		}
		seen[cur1.VertexId] = true
		seen[cur2.VertexId] = true

		// (b) loop boundary: either chain crosses a latch D-to-Q arc.
		if isLatchDToQ != nil && (isLatchDToQ(cur1.PrevEdge) || isLatchDToQ(cur2.PrevEdge)) {
			return 0
		}

		cur1, cur2 = cur1.PrevPath, cur2.PrevPath
	}
}

// Merge returns the winner of p1 and p2 under minMax's preference, applied
// to their Arrival (forward pass) or Required (backward pass) values
// selected by useRequired. Ties are broken deterministically by cmp on the
// predecessor (vertex_id, tag_index) so reports never depend on the order
// candidates were proposed in (COMPONENT DESIGN §4.6: "Merging preserves
// prev_edge_id, prev_arc_idx, and prev_path of the winner (ties broken by
// lexicographic (vertex_id, tag_index) of the predecessor...)").
func Merge(p1, p2 *Path, minMax ap.MinMax, useRequired bool) *Path {
	if p1 == nil || p1.IsNull {
		return p2
	}
	if p2 == nil || p2.IsNull {
		return p1
	}
	v1, v2 := value(p1, useRequired), value(p2, useRequired)
	switch {
	case minMax.Better(v1, v2):
		return p1
	case minMax.Better(v2, v1):
		return p2
	default:
		if predecessorCmp(p1, p2) <= 0 {
			return p1
		}
		return p2
	}
}

func value(p *Path, useRequired bool) float64 {
	if useRequired {
		return p.Required
	}
	return p.Arrival
}

// predecessorCmp breaks a value tie between p1 and p2 by comparing their
// predecessors' (vertex_id, tag_index); a path with no predecessor sorts
// first.
func predecessorCmp(p1, p2 *Path) int {
	return cmp(p1.PrevPath, p2.PrevPath)
}
