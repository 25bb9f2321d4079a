package zpr

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

const decimalPairs = "" +
	"0001020304050607080910111213141516171819" +
	"2021222324252627282930313233343536373839" +
	"4041424344454647484950515253545556575859" +
	"6061626364656667686970717273747576777879" +
	"8081828384858687888990919293949596979899"

const hexPairs = "" +
	"000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f" +
	"202122232425262728292a2b2c2d2e2f303132333435363738393a3b3c3d3e3f" +
	"404142434445464748494a4b4c4d4e4f505152535455565758595a5b5c5d5e5f" +
	"606162636465666768696a6b6c6d6e6f707172737475767778797a7b7c7d7e7f" +
	"808182838485868788898a8b8c8d8e8f909192939495969798999a9b9c9d9e9f" +
	"a0a1a2a3a4a5a6a7a8a9aaabacadaeafb0b1b2b3b4b5b6b7b8b9babbbcbdbebf" +
	"c0c1c2c3c4c5c6c7c8c9cacbcccdcecfd0d1d2d3d4d5d6d7d8d9dadbdcdddedf" +
	"e0e1e2e3e4e5e6e7e8e9eaebecedeeeff0f1f2f3f4f5f6f7f8f9fafbfcfdfeff"

const hexDigits = "0123456789abcdef"

// formatInt renders any native integer. The bit size of T decides the
// two's-complement pattern printed for negative values in non-decimal bases.
func formatInt[T constraints.Integer](s *State, spec Spec, v T) {
	mag := uint64(v)
	neg := v < 0
	if neg {
		mag = -mag
	}
	s.integer(spec, mag, neg, int(unsafe.Sizeof(v))*8)
}

// integer renders the magnitude mag of a value that is negative when neg is
// set and size bits wide.
func (s *State) integer(spec Spec, mag uint64, neg bool, size int) {
	u := mag
	if neg {
		u = -mag
		if size < 64 {
			u &= 1<<size - 1
		}
	}

	if spec.Verb == 'c' {
		s.chr[0] = byte(u)
		s.textBytes(s.chr[:1], spec)
		return
	}

	verb := spec.Verb
	base := 10
	switch verb {
	case 'x', 'X':
		base = 16
	case 'o':
		base = 8
	case 'b':
		base = 2
	case 'p':
		base = 16
		verb = 'x'
		spec.Flags |= FlagAlternate
	}
	if base == 10 {
		u = mag
	}

	digits := s.num[formatBits(&s.num, u, base):]
	if verb == 'X' {
		for i, c := range digits {
			if c >= 'a' {
				digits[i] = c - ('a' - 'A')
			}
		}
	}
	if spec.HasPrecision() && spec.Precision == 0 && u == 0 {
		digits = digits[:0]
	}

	var prefix [3]byte
	pn := 0
	if base == 10 {
		switch {
		case neg:
			prefix[pn] = '-'
			pn++
		case spec.Has(FlagPlus):
			prefix[pn] = '+'
			pn++
		case spec.Has(FlagSpace):
			prefix[pn] = ' '
			pn++
		}
	} else if spec.Has(FlagAlternate) && (u != 0 || spec.Verb == 'p') {
		prefix[pn] = '0'
		prefix[pn+1] = radixLetter(verb, s.e.cfg.HexPrefixUpper)
		pn += 2
	}

	body := len(digits)
	if spec.HasPrecision() && spec.Precision > body {
		body = spec.Precision
	}
	pad := 0
	if spec.HasWidth() {
		pad = spec.Width - pn - body
	}
	zero := spec.Has(FlagZero) && spec.RightJustify() && !spec.HasPrecision()

	if !zero && spec.RightJustify() {
		s.Pad(' ', pad)
	}
	for _, c := range prefix[:pn] {
		s.sink.AppendByte(c)
	}
	if zero {
		s.Pad('0', pad)
	}
	s.Pad('0', body-len(digits))
	s.sink.Append(digits)
	if spec.LeftJustify() {
		s.Pad(' ', pad)
	}
}

func radixLetter(verb byte, upper bool) byte {
	switch verb {
	case 'X':
		if upper {
			return 'X'
		}
		return 'x'
	case 'x':
		return 'x'
	case 'o':
		return 'o'
	default:
		return 'b'
	}
}

// formatBits writes the digits of u in base 2, 8, 10 or 16 to the end of buf
// and returns the index of the first digit.
func formatBits(buf *[64]byte, u uint64, base int) int {
	i := len(buf)
	switch base {
	case 10:
		for u >= 100 {
			is := u % 100 * 2
			u /= 100
			i -= 2
			buf[i+1] = decimalPairs[is+1]
			buf[i] = decimalPairs[is]
		}
		if u < 10 {
			i--
			buf[i] = byte('0' + u)
		} else {
			is := u * 2
			i -= 2
			buf[i+1] = decimalPairs[is+1]
			buf[i] = decimalPairs[is]
		}
	case 16:
		for u >= 0x100 {
			is := u & 0xff * 2
			u >>= 8
			i -= 2
			buf[i+1] = hexPairs[is+1]
			buf[i] = hexPairs[is]
		}
		if u < 0x10 {
			i--
			buf[i] = hexDigits[u]
		} else {
			is := u * 2
			i -= 2
			buf[i+1] = hexPairs[is+1]
			buf[i] = hexPairs[is]
		}
	default:
		shift, mask := uint(1), uint64(1)
		if base == 8 {
			shift, mask = 3, 7
		}
		for {
			i--
			buf[i] = byte('0' + u&mask)
			u >>= shift
			if u == 0 {
				break
			}
		}
	}
	return i
}
