package zpr

// Forward is a format string and its arguments printed in place of a single
// argument. It borrows args and is only meant to live for the duration of
// the call it is passed to.
type Forward struct {
	format string
	args   []any
}

// Fwd returns a Forward printing format with args. The enclosing specifier
// is ignored.
//
//	zpr.Sprint("[{}] {}", zpr.Fwd("{}:{}", host, port), msg)
func Fwd(format string, args ...any) Forward {
	return Forward{format: format, args: args}
}

func (f Forward) Print(s *State, _ Spec) { s.Format(f.format, f.args...) }

func (f Forward) wrapped() []any { return f.args }
