package zpr

import (
	"fmt"
	"io"
	"os"
)

// Render prints format with args into sink. It panics with an error wrapping
// ErrUnformattable, before writing anything, if an argument cannot be
// formatted.
func (e *Engine) Render(sink Sink, format string, args ...any) {
	e.check(args)
	e.render(sink, format, args)
}

func (e *Engine) render(sink Sink, format string, args []any) {
	s := &State{e: e, sink: sink}
	s.Format(format, args...)
}

// Sprint returns the formatted string.
func (e *Engine) Sprint(format string, args ...any) string {
	var sink StringSink
	e.Render(&sink, format, args...)
	return sink.String()
}

// Append appends the formatted output to dst and returns the extended slice.
func (e *Engine) Append(dst []byte, format string, args ...any) []byte {
	sink := StringSink{buf: dst}
	e.Render(&sink, format, args...)
	return sink.buf
}

// Bprint writes the formatted output into buf, dropping whatever does not
// fit, and returns the number of bytes written.
func (e *Engine) Bprint(buf []byte, format string, args ...any) int {
	sink := BufferSink{buf: buf}
	e.Render(&sink, format, args...)
	return sink.n
}

// Fprint writes the formatted output to w through a buffer of
// Config.BufferSize bytes.
func (e *Engine) Fprint(w io.Writer, format string, args ...any) (int, error) {
	return e.fprint(w, false, format, args)
}

// Fprintln is Fprint followed by a newline, sent in the same final write as
// the end of the output.
func (e *Engine) Fprintln(w io.Writer, format string, args ...any) (int, error) {
	return e.fprint(w, true, format, args)
}

// fprint flushes whatever was staged even when a Formatter panics.
func (e *Engine) fprint(w io.Writer, newline bool, format string, args []any) (n int, err error) {
	e.check(args)
	sink := NewStreamSink(w, e.cfg.BufferSize, newline)
	defer func() {
		if cerr := sink.Close(); cerr != nil {
			err = fmt.Errorf("%w: %w", ErrWrite, cerr)
		}
		n = sink.Written()
	}()
	e.render(sink, format, args)
	return 0, nil
}

// Print writes the formatted output to standard output.
func (e *Engine) Print(format string, args ...any) (int, error) {
	return e.Fprint(os.Stdout, format, args...)
}

// Println writes the formatted output and a newline to standard output.
func (e *Engine) Println(format string, args ...any) (int, error) {
	return e.Fprintln(os.Stdout, format, args...)
}

// Cprint passes the formatted output to cb piece by piece and returns the
// total number of bytes passed.
func (e *Engine) Cprint(cb func(p []byte), format string, args ...any) int {
	sink := NewCallbackSink(cb, false)
	e.Render(sink, format, args...)
	return sink.Len()
}

// Cprintln is Cprint with a final call passing "\n".
func (e *Engine) Cprintln(cb func(p []byte), format string, args ...any) (n int) {
	e.check(args)
	sink := NewCallbackSink(cb, true)
	defer func() {
		sink.Close()
		n = sink.Len()
	}()
	e.render(sink, format, args)
	return 0
}

// Sprint formats with the default engine. See Engine.Sprint.
func Sprint(format string, args ...any) string { return std.Sprint(format, args...) }

// Append formats with the default engine. See Engine.Append.
func Append(dst []byte, format string, args ...any) []byte {
	return std.Append(dst, format, args...)
}

// Bprint formats with the default engine. See Engine.Bprint.
func Bprint(buf []byte, format string, args ...any) int { return std.Bprint(buf, format, args...) }

// Fprint formats with the default engine. See Engine.Fprint.
func Fprint(w io.Writer, format string, args ...any) (int, error) {
	return std.Fprint(w, format, args...)
}

// Fprintln formats with the default engine. See Engine.Fprintln.
func Fprintln(w io.Writer, format string, args ...any) (int, error) {
	return std.Fprintln(w, format, args...)
}

// Print writes to standard output with the default engine.
func Print(format string, args ...any) (int, error) { return std.Print(format, args...) }

// Println writes a line to standard output with the default engine.
func Println(format string, args ...any) (int, error) { return std.Println(format, args...) }

// Cprint formats with the default engine. See Engine.Cprint.
func Cprint(cb func(p []byte), format string, args ...any) int {
	return std.Cprint(cb, format, args...)
}

// Cprintln formats with the default engine. See Engine.Cprintln.
func Cprintln(cb func(p []byte), format string, args ...any) int {
	return std.Cprintln(cb, format, args...)
}
