package stringreader_test

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	stringreader "github.com/FyraLabs/string-reader"
)

func TestStringReaderPushBack(t *testing.T) {
	r := stringreader.NewStringReader()
	r.PushBack("hai")
	r.PushBack("bai")

	mustPopString(t, r, "hai")
	mustPopString(t, r, "bai")
	expectNoString(t, r)
}

func TestStringReaderPushFront(t *testing.T) {
	r := stringreader.NewStringReader()
	r.PushFront("hai")
	r.PushFront("bai")

	mustPopString(t, r, "bai")
	mustPopString(t, r, "hai")
	expectNoString(t, r)
}

func TestStringReaderChunks(t *testing.T) {
	r := stringreader.NewStringReaderChunks([]string{"a", "b"}, stringreader.WithCapacity(1))
	assert.Equal(t, 2, r.Queued())

	peeked, ok := r.PeekChunk()
	require.True(t, ok)
	assert.Equal(t, "a", peeked)
	assert.Equal(t, 2, r.Queued())

	n, err := r.WriteString("c")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	var got []string
	for s := range r.Drain() {
		got = append(got, s)
	}
	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.True(t, r.Empty())
}

func TestStringReaderBorrowsBackingData(t *testing.T) {
	backing := "hello world"
	r := stringreader.NewStringReaderChunks([]string{backing[:5], backing[6:]})

	mustPopString(t, r, "hello")
	mustPopString(t, r, "world")
	assert.Equal(t, "hello world", backing)
}

func TestStringReaderFallback(t *testing.T) {
	t.Run("Ordering", func(t *testing.T) {
		upstream := stringreader.NewStringReaderChunks([]string{"u1", "u2"})
		r := stringreader.NewStringReaderFrom(upstream)
		r.PushBack("q1")

		mustPopString(t, r, "q1")
		mustPopString(t, r, "u1")

		r.PushBack("late")
		mustPopString(t, r, "late")
		mustPopString(t, r, "u2")
		expectNoString(t, r)
	})

	t.Run("StringNeverEmpties", func(t *testing.T) {
		r := stringreader.NewStringReaderFrom(stringreader.String("again"))
		r.PushBack("once")

		mustPopString(t, r, "once")
		for range 3 {
			mustPopString(t, r, "again")
		}
		assert.False(t, r.Empty())

		peeked, ok := r.PeekChunk()
		require.True(t, ok)
		assert.Equal(t, "again", peeked)
	})

	t.Run("Nil", func(t *testing.T) {
		r := stringreader.NewStringReaderFrom(nil)
		assert.True(t, r.Empty())
		expectNoString(t, r)
	})
}

func TestStringReaderDrainStops(t *testing.T) {
	r := stringreader.NewStringReaderFrom(stringreader.String("x"))

	count := 0
	for range r.Drain() {
		count++
		if count == 10 {
			break
		}
	}
	assert.Equal(t, 10, count)
}

func TestStringReaderIsNotAnIOReader(t *testing.T) {
	var r any = stringreader.NewStringReader()
	_, ok := r.(io.Reader)
	assert.False(t, ok)
}

func TestStringReaderLogging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	upstream := stringreader.NewStringReaderChunks([]string{"u1", "u2"})
	r := stringreader.NewStringReaderFrom(upstream, stringreader.WithLogger(zap.New(core)))

	mustPopString(t, r, "u1")
	mustPopString(t, r, "u2")
	require.Equal(t, 1, logs.Len())

	r.PushFront("q")
	upstream.PushBack("u3")
	mustPopString(t, r, "q")
	mustPopString(t, r, "u3")
	assert.Equal(t, 2, logs.Len())
}

func mustPopString(t *testing.T, r stringreader.BorrowedSource, expected string) {
	t.Helper()
	s, ok := r.PopChunk()
	if !ok {
		t.Fatalf("expected chunk %q, got nothing", expected)
	}
	if s != expected {
		t.Fatalf("expected %q, got %q", expected, s)
	}
}

func expectNoString(t *testing.T, r stringreader.BorrowedSource) {
	t.Helper()
	if s, ok := r.PopChunk(); ok {
		t.Fatalf("expected no chunk, got %q", s)
	}
	if !stringreader.IsEmpty[string](r) {
		t.Fatalf("expected empty source")
	}
}
