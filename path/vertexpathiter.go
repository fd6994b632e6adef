package path

import (
	"github.com/opensta-go/sta/ap"
	"github.com/opensta-go/sta/core"
	"github.com/opensta-go/sta/rf"
	"github.com/opensta-go/sta/tag"
)

// VertexPathIterator filters a vertex's Path[] by optional
// (RiseFall, PathAnalysisPt, MinMax); iteration order matches the owning
// vertex's TagGroup storage order (DATA MODEL: "VertexPathIterator filters
// a vertex's Path[] by optional (RiseFall, PathAnalysisPt, MinMax)").
type VertexPathIterator struct {
	store  *Store
	tags   *tag.Table
	paths  []*Path
	cursor int
}

// Filter selects which (optional) dimensions NewVertexPathIterator narrows
// by; a nil pointer in any field means "don't filter on this dimension".
type Filter struct {
	RiseFall *rf.RiseFall
	PathAP   *ap.PathAnalysisPt
	MinMax   *ap.MinMax
}

// NewVertexPathIterator returns an iterator over v's live paths in store,
// narrowed by filter. aps resolves a tag's PathAPIndex to its PathAnalysisPt
// when filter.MinMax is set without filter.PathAP; pass nil when filter.
// MinMax is also nil, since it then goes unused.
func NewVertexPathIterator(v *core.Vertex, store *Store, tags *tag.Table, aps *ap.AnalysisPtSet, filter Filter) *VertexPathIterator {
	it := &VertexPathIterator{store: store, tags: tags}
	for _, tagIndex := range v.TagGroup() {
		p := store.Get(v.Id(), tagIndex)
		if p.IsNull {
			continue
		}
		t := tags.Tag(tagIndex)
		if t == nil {
			continue
		}
		if filter.RiseFall != nil && t.Transition() != *filter.RiseFall {
			continue
		}
		if filter.PathAP != nil && t.PathAPIndex() != filter.PathAP.Index() {
			continue
		}
		if filter.MinMax != nil && filter.PathAP == nil {
			if aps == nil {
				continue
			}
			pathAP := aps.PathAnalysisPt(t.PathAPIndex())
			if pathAP == nil || pathAP.PathMinMax() != *filter.MinMax {
				continue
			}
		}
		it.paths = append(it.paths, p)
	}
	return it
}

// HasNext reports whether Next would return another path.
func (it *VertexPathIterator) HasNext() bool { return it.cursor < len(it.paths) }

// Next returns the next matching path, or nil when exhausted.
func (it *VertexPathIterator) Next() *Path {
	if !it.HasNext() {
		return nil
	}
	p := it.paths[it.cursor]
	it.cursor++
	return p
}

// Count returns the total number of matching paths.
func (it *VertexPathIterator) Count() int { return len(it.paths) }
