// Package stringreader reads sequences of text chunks through a queue-like
// interface. A reader holds an explicit queue of chunks in front of an
// optional fallback source that is consulted only once the queue is
// drained. BytesReader queues owned byte buffers and also reads as an
// io.Reader; StringReader queues borrowed strings.
package stringreader
