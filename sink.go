package zpr

import (
	"io"
	"slices"
	"unsafe"
)

// DefaultBufferSize is the staging buffer size of a StreamSink.
const DefaultBufferSize = 4096

// Sink consumes formatted output. Sinks never fail from the caller's point
// of view: a sink that runs out of room or hits a write error drops the
// remaining output and reports it through its own accessors.
type Sink interface {
	AppendByte(c byte)
	AppendRepeat(c byte, n int)
	Append(p []byte)
	AppendString(s string)
}

// StringSink accumulates output in a growable buffer.
type StringSink struct {
	buf []byte
}

// NewStringSink returns a StringSink that appends to buf.
func NewStringSink(buf []byte) *StringSink {
	return &StringSink{buf: buf}
}

func (s *StringSink) AppendByte(c byte) { s.buf = append(s.buf, c) }

func (s *StringSink) AppendRepeat(c byte, n int) {
	if n <= 0 {
		return
	}
	s.buf = slices.Grow(s.buf, n)
	for range n {
		s.buf = append(s.buf, c)
	}
}

func (s *StringSink) Append(p []byte) { s.buf = append(s.buf, p...) }

func (s *StringSink) AppendString(str string) { s.buf = append(s.buf, str...) }

// Len returns the number of bytes accumulated.
func (s *StringSink) Len() int { return len(s.buf) }

// Bytes returns the accumulated output. The slice aliases the sink's buffer.
func (s *StringSink) Bytes() []byte { return s.buf }

// String returns the accumulated output as a string.
func (s *StringSink) String() string { return string(s.buf) }

// Reset empties the sink, keeping its storage.
func (s *StringSink) Reset() { s.buf = s.buf[:0] }

// BufferSink writes into caller-owned memory of fixed capacity. Writes past
// the end of the buffer are dropped. No terminating NUL is ever written.
type BufferSink struct {
	buf []byte
	n   int
}

// NewBufferSink returns a BufferSink over buf; its capacity is len(buf).
func NewBufferSink(buf []byte) *BufferSink {
	return &BufferSink{buf: buf}
}

func (s *BufferSink) AppendByte(c byte) {
	if s.n < len(s.buf) {
		s.buf[s.n] = c
		s.n++
	}
}

func (s *BufferSink) AppendRepeat(c byte, n int) {
	n = min(n, len(s.buf)-s.n)
	for range n {
		s.buf[s.n] = c
		s.n++
	}
}

func (s *BufferSink) Append(p []byte) { s.n += copy(s.buf[s.n:], p) }

func (s *BufferSink) AppendString(str string) { s.n += copy(s.buf[s.n:], str) }

// Len returns the number of bytes actually written.
func (s *BufferSink) Len() int { return s.n }

// Bytes returns the written prefix of the buffer.
func (s *BufferSink) Bytes() []byte { return s.buf[:s.n] }

// StreamSink stages output in a fixed-size buffer and writes it to an
// io.Writer whenever the buffer is full and on Close.
//
// With newline set, Close appends '\n' and sends it in the same Write as the
// last chunk of content. That keeps whole lines together when several
// writers share a stream, but it is not a lock: callers that need strict
// line atomicity must serialize access to the writer themselves.
type StreamSink struct {
	w       io.Writer
	buf     []byte // size+1 bytes; the spare byte holds the newline
	n       int
	newline bool
	closed  bool
	written int
	err     error
}

// NewStreamSink returns a StreamSink writing to w through a staging buffer
// of size bytes (DefaultBufferSize when size <= 0).
func NewStreamSink(w io.Writer, size int, newline bool) *StreamSink {
	if size <= 0 {
		size = DefaultBufferSize
	}
	return &StreamSink{w: w, buf: make([]byte, size+1), newline: newline}
}

func (s *StreamSink) size() int { return len(s.buf) - 1 }

// room flushes a full buffer and returns the free space, or 0 once the sink
// has failed or been closed.
func (s *StreamSink) room() int {
	if s.err != nil || s.closed {
		return 0
	}
	if s.n == s.size() {
		s.flush(s.n)
		if s.err != nil {
			return 0
		}
	}
	return s.size() - s.n
}

func (s *StreamSink) flush(n int) {
	if n == 0 {
		return
	}
	m, err := s.w.Write(s.buf[:n])
	s.written += m
	if err == nil && m < n {
		err = io.ErrShortWrite
	}
	if err != nil {
		s.err = err
	}
	s.n = 0
}

func (s *StreamSink) AppendByte(c byte) {
	if s.room() == 0 {
		return
	}
	s.buf[s.n] = c
	s.n++
}

func (s *StreamSink) AppendRepeat(c byte, n int) {
	for n > 0 {
		k := min(n, s.room())
		if k == 0 {
			return
		}
		for range k {
			s.buf[s.n] = c
			s.n++
		}
		n -= k
	}
}

func (s *StreamSink) Append(p []byte) {
	for len(p) > 0 {
		if s.room() == 0 {
			return
		}
		k := copy(s.buf[s.n:s.size()], p)
		s.n += k
		p = p[k:]
	}
}

func (s *StreamSink) AppendString(str string) {
	for len(str) > 0 {
		if s.room() == 0 {
			return
		}
		k := copy(s.buf[s.n:s.size()], str)
		s.n += k
		str = str[k:]
	}
}

// Close flushes the staged bytes (plus the newline, if requested) and
// returns the first write error. Closing twice is a no-op.
func (s *StreamSink) Close() error {
	if s.closed {
		return s.err
	}
	s.closed = true
	if s.err != nil {
		return s.err
	}
	n := s.n
	if s.newline {
		s.buf[n] = '\n'
		n++
	}
	s.flush(n)
	return s.err
}

// Written returns the number of bytes the underlying writer accepted.
func (s *StreamSink) Written() int { return s.written }

// Err returns the first write error, if any.
func (s *StreamSink) Err() error { return s.err }

// CallbackSink hands every write straight to a function. The slice passed
// to fn is only valid for the duration of the call and must not be
// modified.
type CallbackSink struct {
	fn      func(p []byte)
	n       int
	newline bool
	one     [64]byte
}

// NewCallbackSink returns a CallbackSink calling fn. With newline set, Close
// makes one final call with "\n".
func NewCallbackSink(fn func(p []byte), newline bool) *CallbackSink {
	return &CallbackSink{fn: fn, newline: newline}
}

func (s *CallbackSink) AppendByte(c byte) {
	s.one[0] = c
	s.fn(s.one[:1])
	s.n++
}

func (s *CallbackSink) AppendRepeat(c byte, n int) {
	if n <= 0 {
		return
	}
	fill := s.one[:min(n, len(s.one))]
	for i := range fill {
		fill[i] = c
	}
	for n > 0 {
		k := min(n, len(fill))
		s.fn(fill[:k])
		s.n += k
		n -= k
	}
}

func (s *CallbackSink) Append(p []byte) {
	if len(p) == 0 {
		return
	}
	s.fn(p)
	s.n += len(p)
}

func (s *CallbackSink) AppendString(str string) {
	if len(str) == 0 {
		return
	}
	s.fn(stringBytes(str))
	s.n += len(str)
}

// Close emits the trailing newline, if one was requested.
func (s *CallbackSink) Close() {
	if s.newline {
		s.one[0] = '\n'
		s.fn(s.one[:1])
		s.n++
		s.newline = false
	}
}

// Len returns the number of bytes passed to the callback.
func (s *CallbackSink) Len() int { return s.n }

// stringBytes views s as a byte slice without copying. The result must
// never be written to.
func stringBytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
