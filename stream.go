package zpr

import (
	"io"
	"iter"
)

// WriteSeq prints format once per item from seq, each on its own line, and
// stops at the first write error. It returns the total bytes written.
func WriteSeq[T any](e *Engine, w io.Writer, format string, seq iter.Seq[T]) (int, error) {
	var (
		total int
		err   error
	)
	seq(func(item T) bool {
		var n int
		n, err = e.Fprintln(w, format, item)
		total += n
		return err == nil
	})
	return total, err
}

// WriteChan is WriteSeq over the values received from ch. It returns once ch
// is closed or a write fails.
func WriteChan[T any](e *Engine, w io.Writer, format string, ch <-chan T) (int, error) {
	return WriteSeq(e, w, format, chanToIter(ch))
}

// FprintSeq is WriteSeq with the default engine.
func FprintSeq[T any](w io.Writer, format string, seq iter.Seq[T]) (int, error) {
	return WriteSeq(std, w, format, seq)
}

// FprintChan is WriteChan with the default engine.
func FprintChan[T any](w io.Writer, format string, ch <-chan T) (int, error) {
	return WriteChan(std, w, format, ch)
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
