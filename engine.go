package zpr

import (
	"reflect"
	"strings"
	"unicode/utf8"
)

// Placeholders written in place of arguments that are absent or unusable.
const (
	missingWidth     = "<missing width>"
	missingPrecision = "<missing precision>"
	missingValue     = "<missing value>"
	badWidth         = "<bad width>"
	badPrecision     = "<bad precision>"
)

// State is the per-call printing state handed to formatters. It is only
// valid during the call it was passed to.
type State struct {
	e    *Engine
	sink Sink
	num  [64]byte
	flt  [64]byte
	chr  [utf8.UTFMax]byte
}

// Write appends p to the output. It never fails.
func (s *State) Write(p []byte) (int, error) {
	s.sink.Append(p)
	return len(p), nil
}

// WriteString appends str to the output. It never fails.
func (s *State) WriteString(str string) (int, error) {
	s.sink.AppendString(str)
	return len(str), nil
}

// WriteByte appends c to the output. It never fails.
func (s *State) WriteByte(c byte) error {
	s.sink.AppendByte(c)
	return nil
}

// Pad appends n copies of c; n <= 0 appends nothing.
func (s *State) Pad(c byte, n int) {
	if n > 0 {
		s.sink.AppendRepeat(c, n)
	}
}

// Config returns the configuration of the engine running the call.
func (s *State) Config() Config { return s.e.cfg }

// Format prints format with args into the same output, as a nested call.
// The arguments are not checked up front.
func (s *State) Format(format string, args ...any) {
	ai := 0
	for len(format) > 0 {
		i := strings.IndexAny(format, "{}")
		if i < 0 {
			s.sink.AppendString(format)
			return
		}
		s.sink.AppendString(format[:i])
		c := format[i]
		format = format[i+1:]

		if c == '}' {
			s.sink.AppendByte('}')
			format = strings.TrimPrefix(format, "}")
			continue
		}
		if strings.HasPrefix(format, "{") {
			s.sink.AppendByte('{')
			format = format[1:]
			continue
		}
		j := strings.IndexByte(format, '}')
		if j < 0 {
			s.sink.AppendByte('{')
			s.sink.AppendString(format)
			return
		}
		ai = s.render(ParseSpec(format[:j]), args, ai)
		format = format[j+1:]
	}
}

// render prints one specifier, taking the dynamic width, the dynamic
// precision and the value from args starting at ai. It returns the index
// of the next unused argument.
func (s *State) render(spec Spec, args []any, ai int) int {
	var bad string
	if spec.Has(FlagDynWidth) {
		if ai >= len(args) {
			s.sink.AppendString(missingWidth)
			return ai
		}
		if w, ok := dynamicInt(args[ai]); ok {
			spec = spec.WithWidth(w)
		} else {
			bad = badWidth
		}
		ai++
	}
	if spec.Has(FlagDynPrecision) {
		if ai >= len(args) {
			s.sink.AppendString(missingPrecision)
			return ai
		}
		if p, ok := dynamicInt(args[ai]); ok {
			spec = spec.WithPrecision(p)
		} else if bad == "" {
			bad = badPrecision
		}
		ai++
	}
	if ai >= len(args) {
		s.sink.AppendString(missingValue)
		return ai
	}
	if bad != "" {
		s.sink.AppendString(bad)
		return ai + 1
	}
	s.Value(spec, args[ai])
	return ai + 1
}

// dynamicInt converts a width or precision argument, clamped to
// [-MaxWidth, MaxWidth].
func dynamicInt(v any) (int, bool) {
	switch v := v.(type) {
	case int:
		return clampWidth(int64(v)), true
	case int32:
		return clampWidth(int64(v)), true
	case int64:
		return clampWidth(v), true
	}
	rv := reflect.ValueOf(v)
	switch {
	case rv.CanInt():
		return clampWidth(rv.Int()), true
	case rv.CanUint():
		return int(min(rv.Uint(), MaxWidth)), true
	}
	return 0, false
}

func clampWidth(n int64) int {
	return int(min(max(n, -MaxWidth), MaxWidth))
}
