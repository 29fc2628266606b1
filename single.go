package stringreader

var (
	_ OwnedSource    = (*Bytes)(nil)
	_ Emptier        = (*Bytes)(nil)
	_ Mapper         = (*Bytes)(nil)
	_ BorrowedSource = String("")
	_ Emptier        = String("")
)

// Bytes is a single owned buffer acting as its own source.
//
// The first PopChunk hands over the whole buffer and leaves nothing behind,
// so every later pop returns false. A zero-length Bytes is empty.
type Bytes []byte

func (b *Bytes) PeekChunk() ([]byte, bool) {
	if len(*b) == 0 {
		return nil, false
	}
	return *b, true
}

func (b *Bytes) PopChunk() ([]byte, bool) {
	c := *b
	*b = nil
	if len(c) == 0 {
		return nil, false
	}
	return c, true
}

func (b *Bytes) MutChunk() *[]byte {
	if len(*b) == 0 {
		return nil
	}
	return (*[]byte)(b)
}

func (b *Bytes) MapChunk(f func(*[]byte)) {
	if len(*b) == 0 {
		return
	}
	f((*[]byte)(b))
}

func (b *Bytes) Empty() bool {
	return len(*b) == 0
}

// String is a single borrowed string acting as its own source.
//
// A string view cannot be shortened in place by its holder, so PopChunk
// returns the full string on every call and String is never empty. Wrap it
// in a StringReader only when the consumer stops on its own.
type String string

func (s String) PeekChunk() (string, bool) {
	return string(s), true
}

func (s String) PopChunk() (string, bool) {
	return string(s), true
}

func (s String) Empty() bool {
	return false
}
