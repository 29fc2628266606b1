package stringreader

// Chunk is the set of types a reader can queue: borrowed strings or owned
// byte buffers.
type Chunk interface {
	~string | ~[]byte
}

// Source is anything that can show its next chunk.
//
// PeekChunk returns the next chunk without consuming it, and false when
// nothing remains. It must not change the source.
type Source[C Chunk] interface {
	PeekChunk() (C, bool)
}

// Emptier is implemented by sources that can tell they are exhausted more
// cheaply than by peeking.
type Emptier interface {
	Empty() bool
}

// IsEmpty reports whether s has no chunk left. It uses s.Empty when s
// implements Emptier and otherwise checks whether PeekChunk returns nothing.
func IsEmpty[C Chunk](s Source[C]) bool {
	if e, ok := s.(Emptier); ok {
		return e.Empty()
	}
	_, ok := s.PeekChunk()
	return !ok
}

// Popper is a Source whose chunks can be removed.
type Popper[C Chunk] interface {
	Source[C]
	// PopChunk removes and returns the next chunk, or false when nothing
	// remains.
	PopChunk() (C, bool)
}

// OwnedSource yields owned byte buffers. A popped buffer belongs to the
// caller.
type OwnedSource interface {
	Popper[[]byte]
	// MutChunk returns a pointer to the next buffer in place, or nil when
	// nothing remains. Assigning through the pointer changes what the next
	// PopChunk returns. The pointer is valid until the next call that pops
	// or pushes.
	MutChunk() *[]byte
}

// Mapper is implemented by owned sources that provide their own MapChunk.
type Mapper interface {
	MapChunk(f func(*[]byte))
}

// MapChunk applies f to the next buffer of s in place. It does nothing when
// s is empty.
func MapChunk(s OwnedSource, f func(*[]byte)) {
	if m, ok := s.(Mapper); ok {
		m.MapChunk(f)
		return
	}
	if c := s.MutChunk(); c != nil {
		f(c)
	}
}

// BorrowedSource yields strings that view data owned elsewhere. Popping
// forgets the view; the backing data is untouched.
type BorrowedSource interface {
	Popper[string]
}
