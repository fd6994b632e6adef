// Package bfs implements the levelized breadth-first iterator that drives
// both the delay calculator and the arrival/required propagation passes
// (SYSTEM OVERVIEW C4, DATA MODEL "Vertex... BFS-in-queue flags").
//
// An Iterator is keyed by an Index (dcalc, arrival, required, or other) so
// several independent traversals can run over the same graph without their
// in-queue flags colliding — each Index owns one bit of Vertex.BfsFlag.
// Forward iterators enqueue in ascending level order; backward iterators
// reverse the comparison so the first level visited is the graph's highest.
//
// visit drives a traversal sequentially; visitParallel partitions the
// current level across a bounded worker pool built on
// golang.org/x/sync/errgroup, mirroring the level-synchronous parallel BFS
// pattern used elsewhere in the corpus for fan-out work. Ordering within a
// level is unspecified under visitParallel; ordering between levels is
// always strict.
package bfs
