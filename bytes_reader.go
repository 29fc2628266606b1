package stringreader

import (
	"errors"
	"io"
	"iter"

	"github.com/valyala/bytebufferpool"
	"go.uber.org/zap"
)

var (
	_ OwnedSource     = (*BytesReader)(nil)
	_ Emptier         = (*BytesReader)(nil)
	_ Mapper          = (*BytesReader)(nil)
	_ io.Reader       = (*BytesReader)(nil)
	_ io.ByteReader   = (*BytesReader)(nil)
	_ io.WriterTo     = (*BytesReader)(nil)
	_ io.Writer       = (*BytesReader)(nil)
	_ io.StringWriter = (*BytesReader)(nil)
)

// ErrNegativeCount is returned by Discard for a negative count.
var ErrNegativeCount = errors.New("stringreader: negative count")

// discardBlockSize bounds the scratch buffer used by Discard.
const discardBlockSize = 32 * 1024

// BytesReader reads owned byte chunks: first from its own queue, then from
// an optional fallback OwnedSource once the queue is drained.
//
// Besides the chunk operations it is an io.Reader that splits chunks at
// the caller's buffer boundary. Slices returned by PeekChunk, MutChunk and
// Fill alias the reader's storage and must not be retained across a later
// pop, read or push. A BytesReader is not safe for concurrent use.
type BytesReader struct {
	q chunkQueue[[]byte, OwnedSource]
}

// NewBytesReader returns an empty reader without a fallback.
func NewBytesReader(opts ...Option) *BytesReader {
	return &BytesReader{q: newChunkQueue[[]byte, OwnedSource](nil, opts)}
}

// NewBytesReaderFrom returns a reader with an empty queue in front of src.
// A nil src gives a reader without a fallback.
func NewBytesReaderFrom(src OwnedSource, opts ...Option) *BytesReader {
	r := NewBytesReader(opts...)
	if src != nil {
		r.q.wrap(src)
	}
	return r
}

// NewBytesReaderChunks returns a reader whose queue holds chunks in order.
// The reader takes ownership of the slices.
func NewBytesReaderChunks(chunks [][]byte, opts ...Option) *BytesReader {
	return &BytesReader{q: newChunkQueue[[]byte, OwnedSource](chunks, opts)}
}

// PeekChunk returns the next chunk without removing it.
func (r *BytesReader) PeekChunk() ([]byte, bool) {
	return r.q.peek()
}

// PopChunk removes and returns the next chunk.
func (r *BytesReader) PopChunk() ([]byte, bool) {
	return r.q.pop()
}

// MutChunk returns a pointer to the next chunk, taken from the queue head
// or else from the fallback, or nil when the reader is empty.
func (r *BytesReader) MutChunk() *[]byte {
	if c := r.q.queue.front(); c != nil {
		return c
	}
	if r.q.wrapped {
		return r.q.fallback.MutChunk()
	}
	return nil
}

// MapChunk applies f to the next chunk in place.
func (r *BytesReader) MapChunk(f func(*[]byte)) {
	if c := r.MutChunk(); c != nil {
		f(c)
	}
}

// Empty reports whether both the queue and the fallback are exhausted.
func (r *BytesReader) Empty() bool {
	return r.q.empty()
}

// Queued returns the number of chunks held in the queue, not counting the
// fallback.
func (r *BytesReader) Queued() int {
	return r.q.queue.len()
}

// PushBack queues c after every queued chunk.
func (r *BytesReader) PushBack(c []byte) {
	r.q.pushBack(c)
}

// PushFront queues c as the next chunk to be read.
func (r *BytesReader) PushFront(c []byte) {
	r.q.pushFront(c)
}

// Drain returns an iterator that pops chunks until the reader is empty.
func (r *BytesReader) Drain() iter.Seq[[]byte] {
	return r.q.drain()
}

// Write queues a copy of p as the last chunk. It always succeeds.
func (r *BytesReader) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	r.q.pushBack(append([]byte(nil), p...))
	return len(p), nil
}

// WriteString queues the bytes of s as the last chunk. It always succeeds.
func (r *BytesReader) WriteString(s string) (int, error) {
	if len(s) == 0 {
		return 0, nil
	}
	r.q.pushBack([]byte(s))
	return len(s), nil
}

// Read implements io.Reader. A chunk longer than the room left in p is
// split: its prefix is copied and the suffix stays as the next chunk.
// Read returns io.EOF once the reader is empty.
func (r *BytesReader) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}

	for n < len(p) {
		c := r.MutChunk()
		if c == nil {
			break
		}

		room := len(p) - n
		if len(*c) > room {
			copy(p[n:], (*c)[:room])
			*c = (*c)[room:]
			return len(p), nil
		}

		chunk, ok := r.PopChunk()
		if !ok {
			panic("stringreader: source exposed a chunk it could not pop")
		}
		n += copy(p[n:], chunk)
	}

	if n == 0 {
		return 0, io.EOF
	}
	return n, nil
}

// ReadByte implements io.ByteReader.
func (r *BytesReader) ReadByte() (byte, error) {
	var b [1]byte
	if _, err := r.Read(b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

// Fill returns the bytes of the next chunk without consuming them, or nil
// when the reader is empty. Zero-length chunks at the head are dropped first
// so an empty result always means end of data.
func (r *BytesReader) Fill() []byte {
	for {
		c, ok := r.q.peek()
		if !ok {
			return nil
		}
		if len(c) > 0 {
			return c
		}
		r.q.pop()
	}
}

// Discard skips the next n bytes, splitting a chunk when n ends inside it,
// and returns how many bytes were skipped. Fewer than n bytes are skipped
// only when the reader runs out.
func (r *BytesReader) Discard(n int) (discarded int, err error) {
	if n < 0 {
		return 0, ErrNegativeCount
	}
	if n == 0 {
		return 0, nil
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	size := min(n, discardBlockSize)
	if cap(buf.B) < size {
		buf.B = make([]byte, size)
	}
	scratch := buf.B[:size]

	for discarded < n {
		m, _ := r.Read(scratch[:min(n-discarded, size)])
		if m == 0 {
			break
		}
		discarded += m
	}

	if discarded < n {
		r.q.logger.Debug("discard ran out of data",
			zap.Int("requested", n),
			zap.Int("discarded", discarded))
	}
	return discarded, nil
}

// WriteTo implements io.WriterTo by writing chunks to w until the reader is
// empty or w fails. Bytes w did not accept are put back at the front.
func (r *BytesReader) WriteTo(w io.Writer) (n int64, err error) {
	for {
		chunk, ok := r.PopChunk()
		if !ok {
			return n, nil
		}
		if len(chunk) == 0 {
			continue
		}

		wn, wErr := w.Write(chunk)
		if wn < 0 || wn > len(chunk) {
			wn = 0
			if wErr == nil {
				wErr = io.ErrShortWrite
			}
		}
		n += int64(wn)
		if wn < len(chunk) {
			r.q.pushFront(chunk[wn:])
			if wErr == nil {
				wErr = io.ErrShortWrite
			}
		}
		if wErr != nil {
			r.q.logger.Debug("write to destination failed",
				zap.Int64("written", n),
				zap.Int("unwritten", len(chunk)-wn),
				zap.Error(wErr))
			return n, wErr
		}
	}
}
