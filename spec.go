package zpr

import (
	"strconv"
	"strings"
)

// Flag is a bitset describing one format specifier.
type Flag uint16

const (
	FlagZero      Flag = 1 << iota // '0': pad numbers with zeros
	FlagAlternate                  // '#': radix prefix, untrimmed %g, bare iterables
	FlagPlus                       // '+': always print a sign
	FlagSpace                      // ' ': leave a space for the sign
	FlagMinus                      // '-': left-justify within the width

	FlagWidth        // Width holds a value
	FlagPrecision    // Precision holds a value
	FlagDynWidth     // width is taken from the argument stream
	FlagDynPrecision // precision is taken from the argument stream
)

// MaxWidth bounds widths and precisions. Larger values, literal or
// dynamic, are clamped to it.
const MaxWidth = 1 << 20

// Spec is a parsed format specifier: the text between '{' and '}'.
//
// Width and Precision are magnitudes and only meaningful when FlagWidth and
// FlagPrecision are set. A left-justified width is expressed by FlagMinus,
// never by a negative Width.
type Spec struct {
	Verb      byte // 0 when unset
	Flags     Flag
	Width     int
	Precision int
}

// Has reports whether every flag in f is set.
func (s Spec) Has(f Flag) bool { return s.Flags&f == f }

// HasWidth reports whether a width was given.
func (s Spec) HasWidth() bool { return s.Has(FlagWidth) }

// HasPrecision reports whether a precision was given.
func (s Spec) HasPrecision() bool { return s.Has(FlagPrecision) }

// LeftJustify reports whether padding goes after the value.
func (s Spec) LeftJustify() bool { return s.HasWidth() && s.Has(FlagMinus) }

// RightJustify reports whether padding goes before the value.
func (s Spec) RightJustify() bool { return s.HasWidth() && !s.Has(FlagMinus) }

// WithWidth returns s with the width set to w. A negative w sets FlagMinus
// and stores its magnitude.
func (s Spec) WithWidth(w int) Spec {
	if w < 0 {
		w = -max(w, -MaxWidth)
		s.Flags |= FlagMinus
	}
	s.Width = min(w, MaxWidth)
	s.Flags |= FlagWidth
	s.Flags &^= FlagDynWidth
	return s
}

// WithPrecision returns s with the precision set to p. A negative p clears
// the precision, as printf does.
func (s Spec) WithPrecision(p int) Spec {
	s.Flags &^= FlagDynPrecision
	if p < 0 {
		s.Precision = 0
		s.Flags &^= FlagPrecision
		return s
	}
	s.Precision = min(p, MaxWidth)
	s.Flags |= FlagPrecision
	return s
}

// ParseSpec parses one specifier token such as "{08.3f}". The enclosing
// braces are optional. Parsing is permissive: anything after the verb is
// ignored and no input is rejected.
func ParseSpec(tok string) Spec {
	tok = strings.TrimPrefix(tok, "{")
	tok = strings.TrimSuffix(tok, "}")

	var s Spec
	i := 0
flags:
	for ; i < len(tok); i++ {
		switch tok[i] {
		case '0':
			s.Flags |= FlagZero
		case '#':
			s.Flags |= FlagAlternate
		case '-':
			s.Flags |= FlagMinus
		case '+':
			s.Flags |= FlagPlus
		case ' ':
			s.Flags |= FlagSpace
		default:
			break flags
		}
	}

	if i < len(tok) && tok[i] == '*' {
		s.Flags |= FlagDynWidth
		i++
	} else if n, k := leadingInt(tok[i:]); k > 0 {
		s.Width = n
		s.Flags |= FlagWidth
		i += k
	}

	if i < len(tok) && tok[i] == '.' {
		i++
		switch {
		case i < len(tok) && tok[i] == '-':
			// printf treats a negative precision as absent
			_, k := leadingInt(tok[i+1:])
			i += 1 + k
		case i < len(tok) && isDigit(tok[i]):
			n, k := leadingInt(tok[i:])
			s.Precision = n
			s.Flags |= FlagPrecision
			i += k
		case i < len(tok) && tok[i] == '*':
			s.Flags |= FlagDynPrecision
			i++
		default:
			s.Flags |= FlagDynPrecision
		}
	}

	if i < len(tok) {
		s.Verb = tok[i]
	}
	return s
}

// String returns the specifier in format-string form, braces included.
func (s Spec) String() string {
	var b strings.Builder
	b.WriteByte('{')
	s.writeDirective(&b)
	if s.Verb != 0 {
		b.WriteByte(s.Verb)
	}
	b.WriteByte('}')
	return b.String()
}

// Printf returns the equivalent printf directive, e.g. "%-8.3f". An unset
// verb becomes 'v'.
func (s Spec) Printf() string {
	var b strings.Builder
	b.WriteByte('%')
	s.writeDirective(&b)
	if s.Verb == 0 {
		b.WriteByte('v')
	} else {
		b.WriteByte(s.Verb)
	}
	return b.String()
}

func (s Spec) writeDirective(b *strings.Builder) {
	if s.Has(FlagPlus) {
		b.WriteByte('+')
	}
	if s.Has(FlagMinus) {
		b.WriteByte('-')
	}
	if s.Has(FlagAlternate) {
		b.WriteByte('#')
	}
	if s.Has(FlagSpace) {
		b.WriteByte(' ')
	}
	if s.Has(FlagZero) {
		b.WriteByte('0')
	}
	switch {
	case s.Has(FlagDynWidth):
		b.WriteByte('*')
	case s.HasWidth():
		b.WriteString(strconv.Itoa(s.Width))
	}
	switch {
	case s.Has(FlagDynPrecision):
		b.WriteString(".*")
	case s.HasPrecision():
		b.WriteByte('.')
		b.WriteString(strconv.Itoa(s.Precision))
	}
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// leadingInt parses the maximal run of decimal digits at the start of s and
// returns the value, capped at MaxWidth, and the number of bytes consumed.
func leadingInt(s string) (n, k int) {
	for k < len(s) && isDigit(s[k]) {
		n = min(n*10+int(s[k]-'0'), MaxWidth)
		k++
	}
	return n, k
}
