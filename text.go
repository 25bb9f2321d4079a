package zpr

import (
	"unsafe"

	"github.com/mattn/go-runewidth"
)

// text prints str honoring precision (maximum length) and width. Padding is
// always spaces. Lengths are bytes unless the engine measures display width.
func (s *State) text(str string, spec Spec) {
	if spec.HasPrecision() {
		str = s.truncate(str, spec.Precision)
	}
	pad := 0
	if spec.HasWidth() {
		pad = spec.Width - s.width(str)
	}
	if spec.RightJustify() {
		s.Pad(' ', pad)
	}
	s.sink.AppendString(str)
	if spec.LeftJustify() {
		s.Pad(' ', pad)
	}
}

func (s *State) textBytes(b []byte, spec Spec) {
	s.text(bytesString(b), spec)
}

func (s *State) truncate(str string, n int) string {
	if s.e.cfg.DisplayWidth {
		return runewidth.Truncate(str, n, "")
	}
	if len(str) > n {
		return str[:n]
	}
	return str
}

func (s *State) width(str string) int {
	if s.e.cfg.DisplayWidth {
		return runewidth.StringWidth(str)
	}
	return len(str)
}

func (s *State) boolean(spec Spec, b bool) {
	if b {
		s.text("true", spec)
	} else {
		s.text("false", spec)
	}
}

// bytesString views b as a string without copying. b must not change while
// the string is in use.
func bytesString(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}
