package path

import (
	"sync"

	"github.com/opensta-go/sta/core"
)

// Store holds every live Path, keyed by (vertex_id, tag_index). It mirrors
// DATA MODEL invariant 3 — "the path array is dense" — by only ever holding
// an entry for a tag already present in the owning Vertex's TagGroup; Get
// returns a null Path for any tag not yet populated rather than nil, so
// callers can always read .IsNull instead of nil-checking.
type Store struct {
	mu    sync.RWMutex
	paths map[core.VertexId]map[int]*Path
}

// NewStore returns an empty path store.
func NewStore() *Store {
	return &Store{paths: make(map[core.VertexId]map[int]*Path)}
}

// Get returns the path at (vertexID, tagIndex), or a null Path if none has
// been set.
func (s *Store) Get(vertexID core.VertexId, tagIndex int) *Path {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if byTag, ok := s.paths[vertexID]; ok {
		if p, ok := byTag[tagIndex]; ok {
			return p
		}
	}
	return NullPath(vertexID, tagIndex)
}

// Set stores p at (p.VertexId, p.TagIndex), allocating the vertex's row if
// this is its first path.
func (s *Store) Set(p *Path) {
	s.mu.Lock()
	defer s.mu.Unlock()
	byTag, ok := s.paths[p.VertexId]
	if !ok {
		byTag = make(map[int]*Path)
		s.paths[p.VertexId] = byTag
	}
	byTag[p.TagIndex] = p
}

// VertexPaths returns every non-null path stored for vertexID, in no
// particular order; VertexPathIterator imposes the tag-group ordering.
func (s *Store) VertexPaths(vertexID core.VertexId) []*Path {
	s.mu.RLock()
	defer s.mu.RUnlock()
	byTag, ok := s.paths[vertexID]
	if !ok {
		return nil
	}
	out := make([]*Path, 0, len(byTag))
	for _, p := range byTag {
		out = append(out, p)
	}
	return out
}

// DeleteVertex drops every path stored for vertexID (DATA MODEL lifecycle:
// "Paths: ... destroyed with the vertex").
func (s *Store) DeleteVertex(vertexID core.VertexId) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.paths, vertexID)
}
