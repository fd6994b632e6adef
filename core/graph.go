package core

import "github.com/opensta-go/sta/rf"

// VertexObserver is notified before a vertex is removed from the graph so
// that in-flight BFS iterators can drop their own references first
// (DATA MODEL lifecycle: "deletion notifies every BFS iterator via
// deleteVertexBefore before removal"). Implemented by bfs.Iterator.
type VertexObserver interface {
	DeleteVertexBefore(id VertexId)
}

// AddPin registers a new pin and its backing vertex, returning the vertex's
// id. Returns ErrEmptyPinName or ErrDuplicatePin on invalid input.
func (g *Graph) AddPin(name string, direction Direction) (VertexId, error) {
	if name == "" {
		return NoVertex, ErrEmptyPinName
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.pinByName[name]; exists {
		return NoVertex, ErrDuplicatePin
	}
	id := VertexId(len(g.vertices))
	v := &Vertex{id: id, pin: &Pin{name: name, direction: direction}}
	g.vertices = append(g.vertices, v)
	g.pinByName[name] = id
	return id, nil
}

// Vertex returns the vertex for id, or nil if out of range.
func (g *Graph) Vertex(id VertexId) *Vertex {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if int(id) < 0 || int(id) >= len(g.vertices) {
		return nil
	}
	return g.vertices[id]
}

// FindVertex returns the vertex for a pin name, or (NoVertex, false).
func (g *Graph) FindVertex(pinName string) (VertexId, bool) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	id, ok := g.pinByName[pinName]
	return id, ok
}

// VertexCount returns the number of vertices in the graph.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	return len(g.vertices)
}

// AddEdge creates a directed edge from -> to carrying arcSet, returning its
// id. Returns ErrVertexNotFound if either endpoint does not exist.
func (g *Graph) AddEdge(from, to VertexId, arcSet *TimingArcSet) (EdgeId, error) {
	g.muVert.RLock()
	validFrom := int(from) >= 0 && int(from) < len(g.vertices)
	validTo := int(to) >= 0 && int(to) < len(g.vertices)
	g.muVert.RUnlock()
	if !validFrom || !validTo {
		return NoEdge, ErrVertexNotFound
	}

	g.muEdge.Lock()
	id := EdgeId(len(g.edges))
	e := &Edge{id: id, from: from, to: to, arcSet: arcSet}
	g.edges = append(g.edges, e)
	g.muEdge.Unlock()

	g.muVert.Lock()
	g.vertices[from].outEdges = append(g.vertices[from].outEdges, id)
	g.vertices[to].inEdges = append(g.vertices[to].inEdges, id)
	g.muVert.Unlock()

	g.muLevel.Lock()
	g.levelized = false
	g.muLevel.Unlock()

	return id, nil
}

// Edge returns the edge for id, or nil if out of range.
func (g *Graph) Edge(id EdgeId) *Edge {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	if int(id) < 0 || int(id) >= len(g.edges) {
		return nil
	}
	return g.edges[id]
}

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	return len(g.edges)
}

// FindEdgeArc resolves the timing arc between an input pin transition and a
// driver pin transition, implementing the COMPONENT DESIGN §4.1 lookup
// "edge(in_pin, in_rf, drvr_pin, drvr_rf) -> (edge, arc)". Returns
// ErrVertexNotFound if either vertex is missing, or ErrNoTimingArc if the
// vertices share no edge with a matching arc (the caller surfaces this as a
// "no timing arc" warning rather than treating it as fatal, per §7).
func (g *Graph) FindEdgeArc(inPin VertexId, inRF rf.RiseFall, drvrPin VertexId, drvrRF rf.RiseFall) (*Edge, *Arc, error) {
	drvr := g.Vertex(drvrPin)
	in := g.Vertex(inPin)
	if drvr == nil || in == nil {
		return nil, nil, ErrVertexNotFound
	}
	for _, eid := range drvr.OutEdges() {
		e := g.Edge(eid)
		if e == nil || e.To() != inPin {
			continue
		}
		if a := e.TimingArcSet().Arc(drvrRF, inRF); a != nil {
			return e, a, nil
		}
	}
	return nil, nil, ErrNoTimingArc
}

// DeleteVertexBefore notifies every registered observer that id is about to
// be removed, then nils out the vertex slot, so Vertex(id) returns nil and
// FindEdgeArc reports ErrVertexNotFound for id. Incident Edge records and the
// neighbouring vertices' in/out edge lists are left unchanged (EdgeId is
// never reused); traversals skip them because their far end has no vertex.
// Levelization is invalidated.
func (g *Graph) DeleteVertexBefore(id VertexId, observers []VertexObserver) {
	for _, obs := range observers {
		obs.DeleteVertexBefore(id)
	}

	g.muVert.Lock()
	if int(id) >= 0 && int(id) < len(g.vertices) {
		g.vertices[id] = nil
	}
	g.muVert.Unlock()

	g.muLevel.Lock()
	g.levelized = false
	g.muLevel.Unlock()
}

// MaxLevel returns the highest level assigned by the last Levelize call.
// Valid only after Levelize has run; returns 0 otherwise.
func (g *Graph) MaxLevel() int {
	g.muLevel.RLock()
	defer g.muLevel.RUnlock()
	return g.maxLevel
}

// IsLevelized reports whether level assignment is current; AddEdge and
// DeleteVertexBefore clear this, requiring a fresh Levelize call
// (COMPONENT DESIGN §4.1: "any subsequent structural change invalidates the
// cached BFS queues").
func (g *Graph) IsLevelized() bool {
	g.muLevel.RLock()
	defer g.muLevel.RUnlock()
	return g.levelized
}
