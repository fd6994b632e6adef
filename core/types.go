package core

import (
	"errors"
	"sync"

	"github.com/opensta-go/sta/ap"
	"github.com/opensta-go/sta/rf"
)

// Sentinel errors for core timing-graph operations.
var (
	// ErrEmptyPinName indicates a pin was added with an empty name.
	ErrEmptyPinName = errors.New("core: pin name is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrDuplicatePin indicates a pin name was registered twice.
	ErrDuplicatePin = errors.New("core: duplicate pin name")

	// ErrNoTimingArc indicates edge() found no matching (in_rf, drvr_rf) arc;
	// callers surface this as a "no timing arc" warning (§7) rather than
	// treating it as fatal.
	ErrNoTimingArc = errors.New("core: no matching timing arc")

	// ErrGraphNotLevelized indicates a BFS-ordered operation ran before
	// Graph.Levelize.
	ErrGraphNotLevelized = errors.New("core: graph not levelized")
)

// VertexId is a dense, arena-allocated index identifying a Vertex within its
// Graph. Zero is a valid id; NoVertex (-1) marks "no vertex".
type VertexId int

// NoVertex is the sentinel VertexId meaning "none".
const NoVertex VertexId = -1

// EdgeId is a dense, arena-allocated index identifying an Edge within its
// Graph. NoEdge (-1) marks "no edge".
type EdgeId int

// NoEdge is the sentinel EdgeId meaning "none".
const NoEdge EdgeId = -1

// Direction is a pin's signal direction (DATA MODEL: "Pin... direction").
type Direction int

const (
	DirUnknown Direction = iota
	DirInput
	DirOutput
	DirTristate
	DirBidirect
	DirInternal
	DirGround
	DirPower
)

// IsAnyInput reports whether a pin with this direction can receive a
// propagated arrival (DATA MODEL: "isAnyInput ≡ input ∨ bidirect").
func (d Direction) IsAnyInput() bool {
	return d == DirInput || d == DirBidirect
}

// IsAnyOutput reports whether a pin with this direction can drive a
// propagated arrival (DATA MODEL: "isAnyOutput ≡ output ∨ tristate ∨ bidirect").
func (d Direction) IsAnyOutput() bool {
	return d == DirOutput || d == DirTristate || d == DirBidirect
}

// Pin is a named terminal on an instance or port.
type Pin struct {
	name      string
	direction Direction
}

// Name returns the pin's full hierarchical name.
func (p *Pin) Name() string { return p.name }

// Direction returns the pin's signal direction.
func (p *Pin) Direction() Direction { return p.direction }

// Role is the timing relationship an Edge's arcs carry (DATA MODEL:
// "Role ∈ {wire, combinational, ...}").
type Role int

const (
	RoleWire Role = iota
	RoleCombinational
	RoleTristateEnable
	RoleTristateDisable
	RoleRegClkToQ
	RoleLatchEnToQ
	RoleLatchDToQ
	RoleSetup
	RoleHold
	RoleRecovery
	RoleRemoval
	RoleWidth
	RolePeriod
	RoleSkew
	RoleNochange
)

// PathMinMax returns whether this role's data side is the early (Min) or
// late (Max) path (DATA MODEL: "each role carries a pathMinMax").
func (r Role) PathMinMax() ap.MinMax {
	switch r {
	case RoleHold, RoleRemoval, RoleWidth:
		return ap.Min
	default:
		return ap.Max
	}
}

// arcKey distinguishes the timing arcs within one Edge's TimingArcSet by
// endpoint transition (DATA MODEL: "Edge... carrying a TimingArcSet (set of
// arcs distinguished by from-transition and to-transition)").
type arcKey struct {
	fromRF rf.RiseFall
	toRF   rf.RiseFall
}

// Arc is one timing relation within an Edge's TimingArcSet: a transition on
// the edge's origin pin mapped to a transition on its destination pin.
type Arc struct {
	fromRF rf.RiseFall
	toRF   rf.RiseFall
	index  int
}

// FromRiseFall returns the transition on the arc's origin pin.
func (a *Arc) FromRiseFall() rf.RiseFall { return a.fromRF }

// ToRiseFall returns the transition on the arc's destination pin.
func (a *Arc) ToRiseFall() rf.RiseFall { return a.toRF }

// Index returns the arc's position within its TimingArcSet.
func (a *Arc) Index() int { return a.index }

// TimingArcSet is the fixed collection of Arcs an Edge carries, keyed by
// (from-transition, to-transition).
type TimingArcSet struct {
	role  Role
	arcs  []*Arc
	byKey map[arcKey]*Arc
}

// NewTimingArcSet returns an empty set for the given role.
func NewTimingArcSet(role Role) *TimingArcSet {
	return &TimingArcSet{role: role, byKey: make(map[arcKey]*Arc)}
}

// Role returns the timing role shared by every arc in this set.
func (s *TimingArcSet) Role() Role { return s.role }

// AddArc appends an arc for (fromRF, toRF), or returns the existing one if
// already present.
func (s *TimingArcSet) AddArc(fromRF, toRF rf.RiseFall) *Arc {
	key := arcKey{fromRF, toRF}
	if a, ok := s.byKey[key]; ok {
		return a
	}
	a := &Arc{fromRF: fromRF, toRF: toRF, index: len(s.arcs)}
	s.arcs = append(s.arcs, a)
	s.byKey[key] = a
	return a
}

// Arc returns the arc for (fromRF, toRF), or nil if none was added.
func (s *TimingArcSet) Arc(fromRF, toRF rf.RiseFall) *Arc {
	return s.byKey[arcKey{fromRF, toRF}]
}

// Arcs returns every arc in the set, in insertion order.
func (s *TimingArcSet) Arcs() []*Arc { return s.arcs }

// bfsFlagCount is the number of independent BFS classes a Vertex tracks an
// in-queue bit for (DATA MODEL: "BFS-in-queue flags (one bit per BFS
// class)"); matches bfs.Index's cardinality.
const bfsFlagCount = 4

// Vertex is the timing graph's node: exactly one per pin.
type Vertex struct {
	id    VertexId
	pin   *Pin
	level int

	bfsFlags [bfsFlagCount]bool

	inEdges  []EdgeId
	outEdges []EdgeId

	// slews[transition][dcalcApIndex] holds the propagated slew for that
	// (transition, analysis-pt) pair.
	slews map[rf.RiseFall]map[int]float64

	// tagGroup is the dense set of tag indices this vertex currently has a
	// live Path for. The path package owns *path.Path values; core only tracks which tags are live, to keep
	// core independent of path (which depends on core for VertexId).
	tagGroup []int
}

// Id returns the vertex's dense arena index.
func (v *Vertex) Id() VertexId { return v.id }

// Pin returns the pin this vertex represents.
func (v *Vertex) Pin() *Pin { return v.pin }

// Level returns the vertex's topological level (sources are 0).
func (v *Vertex) Level() int { return v.level }

// InEdges returns the ids of edges directed into this vertex.
func (v *Vertex) InEdges() []EdgeId { return v.inEdges }

// OutEdges returns the ids of edges directed out of this vertex.
func (v *Vertex) OutEdges() []EdgeId { return v.outEdges }

// BfsFlag reports whether this vertex is currently enqueued for BFS class idx.
func (v *Vertex) BfsFlag(idx int) bool { return v.bfsFlags[idx] }

// SetBfsFlag sets or clears this vertex's in-queue bit for BFS class idx.
func (v *Vertex) SetBfsFlag(idx int, val bool) { v.bfsFlags[idx] = val }

// Slew returns the propagated slew at (transition, dcalcApIndex), and
// whether one has been set.
func (v *Vertex) Slew(transition rf.RiseFall, dcalcApIndex int) (float64, bool) {
	byAp, ok := v.slews[transition]
	if !ok {
		return 0, false
	}
	s, ok := byAp[dcalcApIndex]
	return s, ok
}

// SetSlew stores the propagated slew at (transition, dcalcApIndex).
func (v *Vertex) SetSlew(transition rf.RiseFall, dcalcApIndex int, slew float64) {
	if v.slews == nil {
		v.slews = make(map[rf.RiseFall]map[int]float64)
	}
	byAp, ok := v.slews[transition]
	if !ok {
		byAp = make(map[int]float64)
		v.slews[transition] = byAp
	}
	byAp[dcalcApIndex] = slew
}

// TagGroup returns the dense set of tag indices this vertex has a live Path
// for (DATA MODEL invariant 3: "the path array is dense").
func (v *Vertex) TagGroup() []int { return v.tagGroup }

// HasTag reports whether tagIndex is already in this vertex's tag group.
func (v *Vertex) HasTag(tagIndex int) bool {
	for _, t := range v.tagGroup {
		if t == tagIndex {
			return true
		}
	}
	return false
}

// AddTag appends tagIndex to the vertex's tag group if not already present.
func (v *Vertex) AddTag(tagIndex int) {
	if !v.HasTag(tagIndex) {
		v.tagGroup = append(v.tagGroup, tagIndex)
	}
}

// Edge is a directed timing relation between two vertices.
type Edge struct {
	id         EdgeId
	from       VertexId
	to         VertexId
	arcSet     *TimingArcSet
	isFeedback bool
}

// Id returns the edge's dense arena index.
func (e *Edge) Id() EdgeId { return e.id }

// From returns the id of the edge's origin vertex.
func (e *Edge) From() VertexId { return e.from }

// To returns the id of the edge's destination vertex.
func (e *Edge) To() VertexId { return e.to }

// TimingArcSet returns the set of arcs this edge carries.
func (e *Edge) TimingArcSet() *TimingArcSet { return e.arcSet }

// IsFeedback reports whether this edge closes a cycle and was excluded from
// levelization (DATA MODEL: "feedback edges are marked and excluded from
// forward BFS").
func (e *Edge) IsFeedback() bool { return e.isFeedback }

// GraphOption configures a Graph at construction time.
type GraphOption func(*Graph)

// WithEdgeCapacityHint preallocates edge storage for n edges.
func WithEdgeCapacityHint(n int) GraphOption {
	return func(g *Graph) { g.edges = make([]*Edge, 0, n) }
}

// WithVertexCapacityHint preallocates vertex storage for n vertices.
func WithVertexCapacityHint(n int) GraphOption {
	return func(g *Graph) { g.vertices = make([]*Vertex, 0, n) }
}

// Graph owns every Vertex and Edge of the timing graph. muVert guards the
// vertex/pin catalog and each vertex's in/out edge lists; muEdge guards the
// edge catalog; muLevel
// guards the levelization cache so a structural edit can invalidate it
// without blocking concurrent reads of vertex/edge data.
type Graph struct {
	muVert sync.RWMutex
	muEdge sync.RWMutex

	pinByName map[string]VertexId
	vertices  []*Vertex
	edges     []*Edge

	muLevel   sync.RWMutex
	levelized bool
	maxLevel  int
}

// NewGraph returns an empty timing graph.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		pinByName: make(map[string]VertexId),
		vertices:  make([]*Vertex, 0),
		edges:     make([]*Edge, 0),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}
