package path

import "github.com/opensta-go/sta/tag"

// cmpNoCrpr implements "cmpNoCrpr = vertex-id then tagMatchCmp(crpr=false)":
// two paths at different vertices compare by vertex id; at the same vertex,
// their tags compare ignoring clock-reconvergence-pessimism state.
func cmpNoCrpr(p1, p2 *Path, tags *tag.Table) int {
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
		return tag.MatchCmp(tags.Tag(p1.TagIndex), tags.Tag(p2.TagIndex), false)
	}
}
