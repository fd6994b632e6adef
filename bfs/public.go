package bfs

import (
	"context"

	"github.com/opensta-go/sta/core"
)

// EnsureSize grows the level queue to hold level if it doesn't already.
// Buckets also grow lazily on Enqueue, so most callers never need this
// directly; it exists for parity with the contract's ensureSize().
func (it *Iterator) EnsureSize(level int) {
	it.queue.mu.Lock()
	defer it.queue.mu.Unlock()
	it.queue.ensureSize(level)
}

// Clear empties every level bucket and clears every enqueued vertex's
// in-queue bit.
func (it *Iterator) Clear() { it.clear() }

// Empty reports whether every level bucket is empty.
func (it *Iterator) Empty() bool { return it.empty() }

// Enqueue adds id to its level's bucket unless it is already enqueued.
func (it *Iterator) Enqueue(id core.VertexId) { it.enqueue(id) }

// EnqueueAdjacentVertices enqueues every vertex adjacent to id in this
// iterator's direction of travel, optionally filtered by pred and bounded
// to toLevel (toLevel < 0 means unbounded).
func (it *Iterator) EnqueueAdjacentVertices(id core.VertexId, pred Pred, toLevel int) {
	it.enqueueAdjacentVertices(id, pred, toLevel)
}

// InQueue reports whether id is currently enqueued under this iterator's Index.
func (it *Iterator) InQueue(id core.VertexId) bool { return it.inQueue(id) }

// Remove clears id's in-queue bit and drops it from its bucket without
// visiting it.
func (it *Iterator) Remove(id core.VertexId) { it.remove(id) }

// HasNext reports whether any vertex remains to be visited, not further
// than toLevel (toLevel < 0 means unbounded).
func (it *Iterator) HasNext(toLevel int) bool { return it.hasNext(toLevel) }

// Next dequeues and returns the next vertex in strict level order. Returns
// (core.NoVertex, false) when exhausted.
func (it *Iterator) Next() (core.VertexId, bool) { return it.next() }

// Visit drains every bucket no further than toLevel (toLevel < 0 means
// unbounded) in strict level order, calling visitor once per distinct
// vertex and returning the number visited.
func (it *Iterator) Visit(toLevel int, visitor Visitor) (int, error) {
	return it.visit(toLevel, visitor)
}

// VisitParallel behaves like Visit but fans each level's work out across a
// bounded worker pool; visitor must be safe for concurrent use.
func (it *Iterator) VisitParallel(ctx context.Context, toLevel int, visitor Visitor) (int, error) {
	return it.visitParallel(ctx, toLevel, visitor)
}
