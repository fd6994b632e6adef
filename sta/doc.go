// Package sta wires the timing-graph (core), traversal (bfs), tag
// interning (tag), delay calculation (dcalc), and path propagation (path)
// packages into a single analysis session. It owns the process-wide dcalc
// registry selection, the per-edge delay cache path propagation reads
// from, and the top-level AnnotateDelays/PropagateArrivals/
// PropagateRequireds entry points a CLI or test driver calls in sequence.
package sta
