package stringreader

import (
	"iter"

	"go.uber.org/zap"
)

// chunkQueue is the reader shared by both chunk kinds: an explicit queue
// of chunks in front of an optional fallback source. The queue is always
// consulted before the fallback.
type chunkQueue[C Chunk, S Popper[C]] struct {
	queue    ringBuffer[C]
	fallback S
	wrapped  bool

	// onFallback is set once a pop has reached the fallback and cleared by
	// the next push.
	onFallback bool
	logger     *zap.Logger
}

func newChunkQueue[C Chunk, S Popper[C]](chunks []C, opts []Option) chunkQueue[C, S] {
	o := newOptions(opts)
	q := chunkQueue[C, S]{
		queue:  newRingBuffer[C](max(o.capacity, len(chunks))),
		logger: o.logger,
	}
	for _, c := range chunks {
		q.queue.pushBack(c)
	}
	return q
}

func (q *chunkQueue[C, S]) wrap(src S) {
	q.fallback = src
	q.wrapped = true
}

func (q *chunkQueue[C, S]) peek() (C, bool) {
	if c := q.queue.front(); c != nil {
		return *c, true
	}
	if q.wrapped {
		return q.fallback.PeekChunk()
	}
	var zero C
	return zero, false
}

func (q *chunkQueue[C, S]) pop() (C, bool) {
	if c, ok := q.queue.popFront(); ok {
		return c, true
	}
	if !q.wrapped {
		var zero C
		return zero, false
	}
	c, ok := q.fallback.PopChunk()
	if ok && !q.onFallback {
		q.onFallback = true
		q.logger.Debug("chunk queue drained, reading from fallback source",
			zap.Int("chunk_len", len(c)))
	}
	return c, ok
}

func (q *chunkQueue[C, S]) empty() bool {
	return q.queue.empty() && (!q.wrapped || IsEmpty[C](q.fallback))
}

func (q *chunkQueue[C, S]) pushBack(c C) {
	q.queue.pushBack(c)
	q.onFallback = false
}

func (q *chunkQueue[C, S]) pushFront(c C) {
	q.queue.pushFront(c)
	q.onFallback = false
}

// drain yields popped chunks until the reader is empty or the consumer
// stops.
func (q *chunkQueue[C, S]) drain() iter.Seq[C] {
	return func(yield func(C) bool) {
		for {
			c, ok := q.pop()
			if !ok || !yield(c) {
				return
			}
		}
	}
}
