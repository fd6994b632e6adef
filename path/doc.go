// Package path implements the tag-indexed path propagation engine: forward
// propagation of arrival times and backward propagation of required times,
// each driven by a package bfs levelized iterator (SYSTEM OVERVIEW C7,
// DATA MODEL "Path").
//
// A Path realises one tag's arrival (or required) time at one vertex; it is
// uniquely identified by (vertex_id, tag_index) and ordered lexicographically
// on that pair (DATA MODEL: "Path"). Merging two candidate paths for the
// same (vertex, tag) keeps the one favored by the owning analysis point's
// MinMax, breaking ties deterministically on the predecessor's
// (vertex_id, tag_index) so reports never depend on propagation order.
//
// cmpAll additionally walks back along a path's prevPath chain to compare
// two paths node-by-node, terminating either on a previously-seen head
// vertex (a latch loop, treated as equal) or on crossing a latch D-to-Q
// arc on either side (a loop boundary) — see cmpAll's doc comment for the
// exact two-part break condition.
package path
