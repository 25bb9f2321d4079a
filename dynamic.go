package zpr

// Dynamic overrides the width and/or precision of the specifier that prints
// it. Build one with W, P or WP.
type Dynamic struct {
	v     any
	width int
	prec  int
	flags Flag
}

// W prints v with the given width. A negative width left-justifies.
func W(width int, v any) Dynamic {
	return Dynamic{v: v, width: width, flags: FlagWidth}
}

// P prints v with the given precision. A negative precision is ignored.
func P(prec int, v any) Dynamic {
	return Dynamic{v: v, prec: prec, flags: FlagPrecision}
}

// WP prints v with the given width and precision.
func WP(width, prec int, v any) Dynamic {
	return Dynamic{v: v, width: width, prec: prec, flags: FlagWidth | FlagPrecision}
}

func (d Dynamic) Print(s *State, spec Spec) {
	if d.flags&FlagWidth != 0 {
		spec = spec.WithWidth(d.width)
	}
	if d.flags&FlagPrecision != 0 {
		spec = spec.WithPrecision(d.prec)
	}
	s.Value(spec, d.v)
}

func (d Dynamic) wrapped() []any { return []any{d.v} }

// Char is a Unicode code point printed as text. With a verb other than 'c'
// it prints as an integer.
type Char rune

// Pair prints as "{ first, second }". Both elements use default formatting.
type Pair[A, B any] struct {
	First  A
	Second B
}

// MakePair returns a Pair of a and b.
func MakePair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

func (p Pair[A, B]) Print(s *State, _ Spec) { s.pair(p.First, p.Second) }

func (Pair[A, B]) isPair() {}
