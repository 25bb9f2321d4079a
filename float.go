package zpr

import (
	"math"

	"golang.org/x/exp/constraints"
)

const (
	defaultPrecision = 6
	maxPrecision     = 16

	// %f switches to the exponent form at or beyond this magnitude.
	exponentialCutoff = 1e15

	// %g prints in fixed-point only below this magnitude.
	maxDecimal = 1 << 64
)

var pow10 = [maxPrecision + 1]float64{
	1, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8,
	1e9, 1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16,
}

func formatFloat[T constraints.Float](s *State, spec Spec, v T) {
	s.float(spec, float64(v))
}

func (s *State) float(spec Spec, v float64) {
	switch spec.Verb {
	case 'e', 'E', 'g', 'G':
		s.exponent(spec, v)
	default:
		s.fixed(spec, v)
	}
}

// special prints NaN and the infinities and reports whether v was one of
// them. They go through the string renderer and are never truncated.
func (s *State) special(spec Spec, v float64) bool {
	var str string
	switch {
	case math.IsNaN(v):
		str = "nan"
	case math.IsInf(v, -1):
		str = "-inf"
	case math.IsInf(v, 1):
		switch {
		case spec.Has(FlagPlus):
			str = "+inf"
		case spec.Has(FlagSpace):
			str = " inf"
		default:
			str = "inf"
		}
	default:
		return false
	}
	s.text(str, spec.WithPrecision(-1))
	return true
}

// trims reports whether trailing fractional zeros are dropped for spec.
func trims(spec Spec) bool {
	switch spec.Verb {
	case 0, 'g', 'G':
		return !spec.Has(FlagAlternate)
	}
	return false
}

// fixed prints v in fixed-point notation and returns the number of bytes
// written, padding included.
func (s *State) fixed(spec Spec, v float64) int {
	if s.special(spec, v) {
		return 0
	}
	if math.Abs(v) >= exponentialCutoff {
		return s.exponent(spec, v)
	}
	return s.decimal(spec, v)
}

// round splits v >= 0 into its whole part and prec fractional digits.
// An exact half rounds to even, except that a fraction which would
// otherwise be all zeros rounds up.
func round(v float64, prec int) (whole, frac uint64) {
	whole = uint64(v)
	if prec == 0 {
		diff := v - float64(whole)
		if diff > 0.5 || diff == 0.5 && whole&1 == 1 {
			whole++
		}
		return whole, 0
	}
	tmp := (v - float64(whole)) * pow10[prec]
	frac = uint64(tmp)
	diff := tmp - float64(frac)
	if diff > 0.5 || diff == 0.5 && (frac == 0 || frac&1 == 1) {
		frac++
		if frac >= uint64(pow10[prec]) {
			frac = 0
			whole++
		}
	}
	return whole, frac
}

// carries reports whether v >= 0, rounded to prec places, reaches
// 10^(exp+1).
func carries(v float64, prec, exp int) bool {
	whole, frac := round(v, prec)
	if exp >= 0 {
		return float64(whole) >= math.Pow10(exp+1)
	}
	return whole > 0 || float64(frac) >= math.Pow10(prec+exp+1)
}

// decimal is fixed without the magnitude cutoff. |v| must be below 2^64.
func (s *State) decimal(spec Spec, v float64) int {
	prec := defaultPrecision
	if spec.HasPrecision() {
		prec = spec.Precision
	}
	extra := 0
	if prec > maxPrecision {
		extra = prec - maxPrecision
		prec = maxPrecision
	}

	neg := math.Signbit(v)
	if neg {
		v = -v
	}
	whole, frac := round(v, prec)

	trim := trims(spec)
	buf := s.flt[:0]
	buf = append(buf, s.num[formatBits(&s.num, whole, 10):]...)
	if prec > 0 {
		buf = append(buf, '.')
		digits := s.num[formatBits(&s.num, frac, 10):]
		for range prec - len(digits) {
			buf = append(buf, '0')
		}
		buf = append(buf, digits...)
		if trim {
			for buf[len(buf)-1] == '0' {
				buf = buf[:len(buf)-1]
			}
			if buf[len(buf)-1] == '.' {
				buf = buf[:len(buf)-1]
			}
		}
	} else if spec.Has(FlagAlternate) {
		buf = append(buf, '.')
	}
	if trim {
		extra = 0
	}

	var sign byte
	switch {
	case neg:
		sign = '-'
	case spec.Has(FlagPlus):
		sign = '+'
	case spec.Has(FlagSpace):
		sign = ' '
	}

	n := len(buf) + extra
	if sign != 0 {
		n++
	}
	pad := 0
	if spec.HasWidth() {
		pad = max(spec.Width-n, 0)
	}
	zero := spec.Has(FlagZero) && spec.RightJustify()

	if !zero && spec.RightJustify() {
		s.Pad(' ', pad)
	}
	if sign != 0 {
		s.sink.AppendByte(sign)
	}
	if zero {
		s.Pad('0', pad)
	}
	s.sink.Append(buf)
	s.Pad('0', extra)
	if spec.LeftJustify() {
		s.Pad(' ', pad)
	}
	return n + pad
}

// exponent prints v in scientific notation, or in fixed-point notation for
// %g values of moderate magnitude. It returns the number of bytes written.
func (s *State) exponent(spec Spec, v float64) int {
	if s.special(spec, v) {
		return 0
	}

	prec := defaultPrecision
	if spec.HasPrecision() {
		prec = spec.Precision
	}
	neg := math.Signbit(v)
	a := math.Abs(v)
	m, exp := decimalExponent(a)

	// %g precision counts significant figures, one of them before the point.
	g := spec.Verb == 'g' || spec.Verb == 'G'
	if g {
		prec = max(prec, 1) - 1
	}
	if g && a < maxDecimal && exp >= -5 && exp <= prec && prec-exp <= maxPrecision {
		// Round v the way decimal prints it to settle the exponent.
		if carries(a, prec-exp, exp) {
			m /= 10
			exp++
		}
		if exp >= -4 && exp <= prec {
			return s.decimal(spec.WithPrecision(prec-exp), v)
		}
	}
	if whole, _ := round(m, min(prec, maxPrecision)); whole >= 10 {
		m /= 10
		exp++
	}
	if g && exp >= -4 && exp <= prec && a < maxDecimal {
		return s.decimal(spec.WithPrecision(prec-exp), v)
	}

	suffix := 4
	if exp <= -100 || exp >= 100 {
		suffix = 5
	}

	mspec := spec.WithPrecision(prec)
	mspec.Flags &^= FlagWidth
	mspec.Width = 0
	if spec.RightJustify() && spec.Width > suffix {
		mspec = mspec.WithWidth(spec.Width - suffix)
	}
	if neg {
		m = -m
	}
	n := s.fixed(mspec, m)

	e := byte('e')
	if spec.Verb == 'E' || spec.Verb == 'F' || spec.Verb == 'G' {
		e = 'E'
	}
	s.sink.AppendByte(e)
	if exp < 0 {
		s.sink.AppendByte('-')
		exp = -exp
	} else {
		s.sink.AppendByte('+')
	}
	digits := s.num[formatBits(&s.num, uint64(exp), 10):]
	s.Pad('0', suffix-2-len(digits))
	s.sink.Append(digits)
	n += max(suffix-2, len(digits)) + 2

	if spec.LeftJustify() && spec.Width > n {
		s.Pad(' ', spec.Width-n)
		n = spec.Width
	}
	return n
}

// decimalExponent returns the decimal exponent of a >= 0 together with a
// scaled into [1, 10). The exponent is estimated from the binary exponent and
// a log10 expansion around 1.5, and 10^exp comes from a continued-fraction
// approximation of exp(z). Every product is rounded to float64 before it is
// added, so fused multiply-add cannot change the result.
func decimalExponent(a float64) (float64, int) {
	if a == 0 {
		return 0, 0
	}
	bits := math.Float64bits(a)
	if bits>>52 == 0 {
		m, exp := decimalExponent(a * 1e100)
		return m, exp - 100
	}

	exp2 := int64(bits>>52&0x7ff) - 1023
	frac := math.Float64frombits(bits&(1<<52-1) | 1023<<52)
	exp10 := int64(0.1760912590558 + float64(float64(exp2)*0.301029995663981) + float64((frac-1.5)*0.289529654602168))

	exp2 = int64(float64(float64(exp10)*3.321928094887362) + 0.5)
	z := float64(float64(exp10)*2.302585092994046) - float64(float64(exp2)*0.6931471805599453)
	z2 := float64(z * z)
	scale := math.Float64frombits(uint64(exp2+1023) << 52)
	scale *= 1 + 2*z/(2-z+(z2/(6+(z2/(10+z2/14)))))

	if a < scale {
		exp10--
		scale /= 10
	}
	m := a
	if exp10 != 0 {
		m = a / scale
	}
	// The estimate can be off by one in either direction.
	switch {
	case m >= 10:
		m /= 10
		exp10++
	case m < 1:
		m *= 10
		exp10--
	}
	return m, int(exp10)
}
