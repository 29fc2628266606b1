package stringreader

import (
	"io"
	"iter"
)

var (
	_ BorrowedSource  = (*StringReader)(nil)
	_ Emptier         = (*StringReader)(nil)
	_ io.StringWriter = (*StringReader)(nil)
)

// StringReader reads borrowed string chunks: first from its own queue, then
// from an optional fallback BorrowedSource once the queue is drained.
//
// Unlike BytesReader it has no io.Reader side; use BytesReader when partial
// chunks must be consumed byte by byte.
type StringReader struct {
	q chunkQueue[string, BorrowedSource]
}

// NewStringReader returns an empty reader without a fallback.
func NewStringReader(opts ...Option) *StringReader {
	return &StringReader{q: newChunkQueue[string, BorrowedSource](nil, opts)}
}

// NewStringReaderFrom returns a reader with an empty queue in front of src.
// A nil src gives a reader without a fallback.
func NewStringReaderFrom(src BorrowedSource, opts ...Option) *StringReader {
	r := NewStringReader(opts...)
	if src != nil {
		r.q.wrap(src)
	}
	return r
}

// NewStringReaderChunks returns a reader whose queue holds chunks in order.
func NewStringReaderChunks(chunks []string, opts ...Option) *StringReader {
	return &StringReader{q: newChunkQueue[string, BorrowedSource](chunks, opts)}
}

func (r *StringReader) PeekChunk() (string, bool) {
	return r.q.peek()
}

func (r *StringReader) PopChunk() (string, bool) {
	return r.q.pop()
}

func (r *StringReader) Empty() bool {
	return r.q.empty()
}

// Queued returns the number of chunks held in the queue, not counting the
// fallback.
func (r *StringReader) Queued() int {
	return r.q.queue.len()
}

func (r *StringReader) PushBack(s string) {
	r.q.pushBack(s)
}

func (r *StringReader) PushFront(s string) {
	r.q.pushFront(s)
}

// WriteString queues s as the last chunk. It always succeeds.
func (r *StringReader) WriteString(s string) (int, error) {
	r.q.pushBack(s)
	return len(s), nil
}

// Drain returns an iterator that pops chunks until the reader is empty.
// With a String fallback it never ends on its own.
func (r *StringReader) Drain() iter.Seq[string] {
	return r.q.drain()
}
