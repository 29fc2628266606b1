package stringreader

// minRingSize is the capacity a ring grows to from zero.
const minRingSize = 4

// ringBuffer implements a double-ended queue of chunks on a circular slice.
type ringBuffer[C any] struct {
	data []C
	head int
	size int
}

// newRingBuffer creates a ring buffer able to hold size chunks before growing.
func newRingBuffer[C any](size int) ringBuffer[C] {
	return ringBuffer[C]{
		data: make([]C, max(size, 0)),
	}
}

// len returns the number of queued chunks.
func (r *ringBuffer[C]) len() int {
	return r.size
}

// empty returns true if the ring buffer is empty.
func (r *ringBuffer[C]) empty() bool {
	return r.size == 0
}

// full returns true if the ring buffer is full.
func (r *ringBuffer[C]) full() bool {
	return r.size == len(r.data)
}

// front returns a pointer to the head slot, or nil when the ring is empty.
// The pointer is invalidated by the next push or pop.
func (r *ringBuffer[C]) front() *C {
	if r.size == 0 {
		return nil
	}
	return &r.data[r.head]
}

// pushBack appends c after every queued chunk.
func (r *ringBuffer[C]) pushBack(c C) {
	if r.full() {
		r.grow()
	}
	r.data[(r.head+r.size)%len(r.data)] = c
	r.size++
}

// pushFront inserts c ahead of every queued chunk.
func (r *ringBuffer[C]) pushFront(c C) {
	if r.full() {
		r.grow()
	}
	r.head = (r.head - 1 + len(r.data)) % len(r.data)
	r.data[r.head] = c
	r.size++
}

// popFront removes and returns the head chunk.
func (r *ringBuffer[C]) popFront() (C, bool) {
	var zero C
	if r.size == 0 {
		return zero, false
	}

	c := r.data[r.head]
	r.data[r.head] = zero
	r.head = (r.head + 1) % len(r.data)
	r.size--
	if r.size == 0 {
		r.head = 0
	}
	return c, true
}

// grow doubles the capacity, unwrapping the queued chunks to the start of
// the new slice.
func (r *ringBuffer[C]) grow() {
	bufLen := len(r.data)
	data := make([]C, max(2*bufLen, minRingSize))

	if r.head+r.size <= bufLen {
		copy(data, r.data[r.head:r.head+r.size])
	} else {
		firstChunk := bufLen - r.head
		secondChunk := r.size - firstChunk

		copy(data[:firstChunk], r.data[r.head:])
		copy(data[firstChunk:r.size], r.data[:secondChunk])
	}

	r.data = data
	r.head = 0
}
