package bfs

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/opensta-go/sta/core"
)

// Index identifies one of the independent BFS classes a Vertex tracks a
// distinct in-queue bit for (DATA MODEL: "BFS-in-queue flags (one bit per
// BFS class: dcalc, arrival, required, other)").
type Index int

const (
	Dcalc Index = iota
	Arrival
	Required
	Other

	indexCount = 4
)

// Visitor is called once per distinct vertex dequeued by visit/visitParallel.
// It must be safe for concurrent use when passed to visitParallel.
type Visitor func(id core.VertexId) error

// Pred filters candidate vertices during enqueueAdjacentVertices; a nil Pred
// admits every vertex.
type Pred func(id core.VertexId) bool

// LevelQueue is a Vector<Vector<Vertex>> indexed by level, exactly the
// structure COMPONENT DESIGN §4.4 names as the iterator's internal
// contract.
type LevelQueue struct {
	mu      sync.Mutex
	buckets [][]core.VertexId
}

func (q *LevelQueue) ensureSize(level int) {
	for len(q.buckets) <= level {
		q.buckets = append(q.buckets, nil)
	}
}

// Iterator drives a single levelized BFS traversal over a Graph, forward or
// backward, under one Index's in-queue flag bit.
type Iterator struct {
	graph    *core.Graph
	index    Index
	backward bool

	queue       LevelQueue
	firstLevel  int
	lastLevel   int
	hasAnyLevel bool
}

// NewForward returns a forward iterator (ascending level) for g under idx.
func NewForward(g *core.Graph, idx Index) *Iterator {
	return &Iterator{graph: g, index: idx}
}

// NewBackward returns a backward iterator (descending level) for g under idx.
func NewBackward(g *core.Graph, idx Index) *Iterator {
	return &Iterator{graph: g, index: idx, backward: true}
}

// levelLess implements the iterator's direction-dependent level ordering:
// forward iterators prefer the smaller level, backward iterators the
// larger one (COMPONENT DESIGN §4.4: "Backward iterator reverses levelLess /
// incrLevel").
func (it *Iterator) levelLess(a, b int) bool {
	if it.backward {
		return a > b
	}
	return a < b
}

func (it *Iterator) incrLevel(level int) int {
	if it.backward {
		return level - 1
	}
	return level + 1
}

// clear empties every level bucket and clears every enqueued vertex's
// in-queue bit.
func (it *Iterator) clear() {
	it.queue.mu.Lock()
	defer it.queue.mu.Unlock()
	for _, bucket := range it.queue.buckets {
		for _, id := range bucket {
			if v := it.graph.Vertex(id); v != nil {
				v.SetBfsFlag(int(it.index), false)
			}
		}
	}
	it.queue.buckets = nil
	it.hasAnyLevel = false
}

// empty reports whether every level bucket is empty.
func (it *Iterator) empty() bool {
	it.queue.mu.Lock()
	defer it.queue.mu.Unlock()
	for _, bucket := range it.queue.buckets {
		if len(bucket) > 0 {
			return false
		}
	}
	return true
}

// inQueue reports whether id is currently enqueued under this iterator's Index.
func (it *Iterator) inQueue(id core.VertexId) bool {
	v := it.graph.Vertex(id)
	if v == nil {
		return false
	}
	return v.BfsFlag(int(it.index))
}

// enqueue adds id to its level's bucket unless it is already enqueued
// (DATA MODEL/COMPONENT DESIGN §4.4: "enqueue on a vertex already marked is
// a no-op" — duplicate suppression via the per-vertex flag bit).
func (it *Iterator) enqueue(id core.VertexId) {
	v := it.graph.Vertex(id)
	if v == nil {
		return
	}
	it.queue.mu.Lock()
	defer it.queue.mu.Unlock()
	if v.BfsFlag(int(it.index)) {
		return
	}
	v.SetBfsFlag(int(it.index), true)
	level := v.Level()

	it.queue.ensureSize(level)
	it.queue.buckets[level] = append(it.queue.buckets[level], id)

	if !it.hasAnyLevel {
		it.firstLevel, it.lastLevel = level, level
		it.hasAnyLevel = true
		return
	}
	if it.levelLess(level, it.firstLevel) {
		it.firstLevel = level
	}
	if it.levelLess(it.lastLevel, level) {
		it.lastLevel = level
	}
}

// enqueueAdjacentVertices enqueues every vertex adjacent to id in this
// iterator's direction of travel (out-edges when forward, in-edges when
// backward), optionally filtered by pred and bounded to levels no further
// than toLevel when toLevel >= 0.
func (it *Iterator) enqueueAdjacentVertices(id core.VertexId, pred Pred, toLevel int) {
	v := it.graph.Vertex(id)
	if v == nil {
		return
	}
	var edgeIds []core.EdgeId
	if it.backward {
		edgeIds = v.InEdges()
	} else {
		edgeIds = v.OutEdges()
	}
	for _, eid := range edgeIds {
		e := it.graph.Edge(eid)
		if e == nil || e.IsFeedback() {
			continue
		}
		var next core.VertexId
		if it.backward {
			next = e.From()
		} else {
			next = e.To()
		}
		if pred != nil && !pred(next) {
			continue
		}
		if toLevel >= 0 {
			nv := it.graph.Vertex(next)
			if nv == nil {
				continue
			}
			if it.backward && nv.Level() < toLevel {
				continue
			}
			if !it.backward && nv.Level() > toLevel {
				continue
			}
		}
		it.enqueue(next)
	}
}

// DeleteVertexBefore implements core.VertexObserver: it clears id's
// in-queue bit (the Vertex is about to disappear, so the flag can no longer
// be read) and removes id from its level bucket if present.
func (it *Iterator) DeleteVertexBefore(id core.VertexId) {
	v := it.graph.Vertex(id)
	level := -1
	if v != nil {
		level = v.Level()
	}
	it.queue.mu.Lock()
	defer it.queue.mu.Unlock()
	if v != nil {
		v.SetBfsFlag(int(it.index), false)
	}
	if level < 0 || level >= len(it.queue.buckets) {
		return
	}
	bucket := it.queue.buckets[level]
	for i, bid := range bucket {
		if bid == id {
			it.queue.buckets[level] = append(bucket[:i], bucket[i+1:]...)
			break
		}
	}
}

// remove clears id's in-queue bit and removes it from its bucket without
// visiting it.
func (it *Iterator) remove(id core.VertexId) {
	v := it.graph.Vertex(id)
	if v != nil {
		v.SetBfsFlag(int(it.index), false)
	}
	it.DeleteVertexBefore(id)
}

// hasNext reports whether any vertex remains to be visited, not further
// than toLevel when toLevel >= 0.
func (it *Iterator) hasNext(toLevel int) bool {
	it.queue.mu.Lock()
	defer it.queue.mu.Unlock()
	for level, bucket := range it.queue.buckets {
		if toLevel >= 0 {
			if it.backward && level < toLevel {
				continue
			}
			if !it.backward && level > toLevel {
				continue
			}
		}
		if len(bucket) > 0 {
			return true
		}
	}
	return false
}

// next dequeues and returns the next vertex in strict level order, clearing
// its in-queue bit. Returns (core.NoVertex, false) when exhausted.
func (it *Iterator) next() (core.VertexId, bool) {
	it.queue.mu.Lock()
	defer it.queue.mu.Unlock()

	levels := make([]int, 0, len(it.queue.buckets))
	for level, bucket := range it.queue.buckets {
		if len(bucket) > 0 {
			levels = append(levels, level)
		}
	}
	if len(levels) == 0 {
		return core.NoVertex, false
	}
	best := levels[0]
	for _, l := range levels[1:] {
		if it.levelLess(l, best) {
			best = l
		}
	}
	bucket := it.queue.buckets[best]
	id := bucket[0]
	it.queue.buckets[best] = bucket[1:]

	if v := it.graph.Vertex(id); v != nil {
		v.SetBfsFlag(int(it.index), false)
	}
	return id, true
}

// visit drains every bucket no further than toLevel (toLevel < 0 means "no
// bound") in strict level order, calling visitor once per distinct vertex
// and returning the number visited.
func (it *Iterator) visit(toLevel int, visitor Visitor) (int, error) {
	count := 0
	for it.hasNext(toLevel) {
		id, ok := it.next()
		if !ok {
			break
		}
		if err := visitor(id); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

// processorCount returns the worker-pool size for visitParallel: the
// number of logical CPUs, matching COMPONENT DESIGN §4.4's "pool has
// processorCount() workers created lazily".
func processorCount() int {
	return runtime.NumCPU()
}

// visitParallel drains the current level (bounded by toLevel as in visit)
// one level at a time, but fans each level's vertices out across a bounded
// errgroup-managed worker pool. The visitor must be thread-safe; ordering
// within a level is unspecified, ordering between levels is strict
// (COMPONENT DESIGN §4.4).
func (it *Iterator) visitParallel(ctx context.Context, toLevel int, visitor Visitor) (int, error) {
	count := 0
	for {
		level, ids := it.drainCurrentLevel(toLevel)
		if level < 0 {
			break
		}
		if len(ids) == 0 {
			continue
		}
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(processorCount())
		for _, id := range ids {
			id := id
			g.Go(func() error {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				return visitor(id)
			})
		}
		if err := g.Wait(); err != nil {
			return count, err
		}
		count += len(ids)
	}
	return count, nil
}

// drainCurrentLevel locks the queue once, finds the next non-empty level no
// further than toLevel, removes every vertex in it (clearing in-queue
// bits), and returns (level, ids). Returns (-1, nil) when nothing remains.
func (it *Iterator) drainCurrentLevel(toLevel int) (int, []core.VertexId) {
	it.queue.mu.Lock()
	defer it.queue.mu.Unlock()

	best := -1
	for level, bucket := range it.queue.buckets {
		if len(bucket) == 0 {
			continue
		}
		if toLevel >= 0 {
			if it.backward && level < toLevel {
				continue
			}
			if !it.backward && level > toLevel {
				continue
			}
		}
		if best < 0 || it.levelLess(level, best) {
			best = level
		}
	}
	if best < 0 {
		return -1, nil
	}
	ids := it.queue.buckets[best]
	it.queue.buckets[best] = nil
	for _, id := range ids {
		if v := it.graph.Vertex(id); v != nil {
			v.SetBfsFlag(int(it.index), false)
		}
	}
	return best, ids
}
