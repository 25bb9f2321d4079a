package zpr_test

import (
	"io"
	"strings"
	"testing"

	"github.com/bjaus/zpr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringSink(t *testing.T) {
	t.Parallel()
	s := zpr.NewStringSink([]byte("> "))
	s.AppendString("ab")
	s.AppendByte('c')
	s.AppendRepeat('-', 3)
	s.AppendRepeat('x', 0)
	s.AppendRepeat('x', -2)
	s.Append([]byte("!"))
	assert.Equal(t, "> abc---!", s.String())
	assert.Equal(t, 9, s.Len())
	assert.Equal(t, []byte("> abc---!"), s.Bytes())

	s.Reset()
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.String())
}

func TestBufferSink(t *testing.T) {
	t.Parallel()
	buf := []byte("..........")
	s := zpr.NewBufferSink(buf[:6])
	s.AppendString("abc")
	s.AppendRepeat('-', 2)
	s.Append([]byte("xyz"))
	s.AppendByte('!')
	s.AppendRepeat('?', 4)

	assert.Equal(t, 6, s.Len())
	assert.Equal(t, "abc--x", string(s.Bytes()))
	assert.Equal(t, "abc--x....", string(buf))
}

func TestBufferSinkEmpty(t *testing.T) {
	t.Parallel()
	s := zpr.NewBufferSink(nil)
	s.AppendString("abc")
	s.AppendByte('x')
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Bytes())
}

func TestStreamSinkFlushesWhenFull(t *testing.T) {
	t.Parallel()
	w := &recordWriter{}
	s := zpr.NewStreamSink(w, 4, true)
	s.AppendString("hello world")
	assert.Equal(t, []string{"hell", "o wo"}, w.writes, "only full buffers are written before Close")

	require.NoError(t, s.Close())
	assert.Equal(t, []string{"hell", "o wo", "rld\n"}, w.writes)
	assert.Equal(t, 12, s.Written())
}

func TestStreamSinkNewlineUsesSpareByte(t *testing.T) {
	t.Parallel()
	w := &recordWriter{}
	s := zpr.NewStreamSink(w, 4, true)
	s.AppendString("abcd")
	require.NoError(t, s.Close())
	assert.Equal(t, []string{"abcd\n"}, w.writes)
}

func TestStreamSinkRepeat(t *testing.T) {
	t.Parallel()
	w := &recordWriter{}
	s := zpr.NewStreamSink(w, 3, false)
	s.AppendByte('[')
	s.AppendRepeat(' ', 5)
	s.Append([]byte("]"))
	require.NoError(t, s.Close())
	assert.Equal(t, "[     ]", strings.Join(w.writes, ""))
	assert.Equal(t, []string{"[  ", "   ", "]"}, w.writes)
}

func TestStreamSinkEmptyClose(t *testing.T) {
	t.Parallel()
	w := &recordWriter{}
	s := zpr.NewStreamSink(w, 0, false)
	require.NoError(t, s.Close())
	assert.Empty(t, w.writes, "nothing to write")

	s = zpr.NewStreamSink(w, 0, true)
	require.NoError(t, s.Close())
	assert.Equal(t, []string{"\n"}, w.writes)
}

func TestStreamSinkCloseTwice(t *testing.T) {
	t.Parallel()
	w := &recordWriter{}
	s := zpr.NewStreamSink(w, 8, true)
	s.AppendString("x")
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
	assert.Equal(t, []string{"x\n"}, w.writes)

	s.AppendString("late")
	assert.Equal(t, []string{"x\n"}, w.writes, "writes after Close are dropped")
}

func TestStreamSinkError(t *testing.T) {
	t.Parallel()
	s := zpr.NewStreamSink(&errWriter{}, 2, false)
	s.AppendString("abcdef")
	require.ErrorIs(t, s.Err(), errWriteFailed)
	require.ErrorIs(t, s.Close(), errWriteFailed)
	require.ErrorIs(t, s.Close(), errWriteFailed)
	assert.Equal(t, 0, s.Written())
}

func TestStreamSinkShortWrite(t *testing.T) {
	t.Parallel()
	s := zpr.NewStreamSink(shortWriter{}, 8, false)
	s.AppendString("abcd")
	require.ErrorIs(t, s.Close(), io.ErrShortWrite)
	assert.Equal(t, 3, s.Written())
}

func TestCallbackSink(t *testing.T) {
	t.Parallel()
	var chunks []string
	s := zpr.NewCallbackSink(func(p []byte) { chunks = append(chunks, string(p)) }, true)
	s.AppendString("ab")
	s.AppendString("")
	s.Append(nil)
	s.AppendByte('c')
	s.AppendRepeat('.', 70)
	s.AppendRepeat('.', 0)
	s.Close()
	s.Close()

	assert.Equal(t, 2+1+70+1, s.Len())
	require.Len(t, chunks, 5)
	assert.Equal(t, "ab", chunks[0])
	assert.Equal(t, "c", chunks[1])
	assert.Len(t, chunks[2], 64)
	assert.Len(t, chunks[3], 6)
	assert.Equal(t, "\n", chunks[4], "newline is emitted once")
}

type shortWriter struct{}

func (shortWriter) Write(p []byte) (int, error) { return len(p) - 1, nil }
