// Package core defines the timing graph: Pin, Vertex, Edge, and the Graph
// that owns them (SYSTEM OVERVIEW C1, DATA MODEL "Pin", "Vertex", "Edge").
//
// Vertices and edges are addressed by dense, arena-allocated VertexId and
// EdgeId values rather than pointers, so levelization and BFS state can live
// in flat slices indexed directly by id. Graph exposes separate RWMutex
// locks for the vertex/edge catalogs and for the levelization state, in the
// style of the adjacency-list graph this package is descended from.
//
// Level assignment and feedback-edge detection run a white/gray/black
// depth-first search over every edge; any edge that would close a cycle is
// marked as a feedback edge and excluded from levelization (DATA MODEL
// "Edge.isFeedback"). Feedback edges are also skipped by the BFS iterators
// and by path propagation.
package core
