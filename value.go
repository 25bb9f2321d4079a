package zpr

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
	"unicode/utf8"
	"unsafe"
)

// Value prints one value according to spec.
//
// Selection order: nil, Formatter, registered formatters (exact type, then
// the pointee of a non-nil pointer), predeclared types, error and
// fmt.Stringer, then rules by kind. Integer kinds with a String method are
// printed as numbers unless the verb is 's'.
func (s *State) Value(spec Spec, v any) {
	if v == nil {
		s.text("<nil>", spec)
		return
	}
	if f, ok := v.(Formatter); ok {
		if isNilPointer(v) {
			s.text("<nil>", spec)
			return
		}
		f.Print(s, spec)
		return
	}
	if fn, arg, ok := s.e.lookup(v); ok {
		fn(s, spec, arg)
		return
	}

	switch v := v.(type) {
	case int:
		formatInt(s, spec, v)
	case int8:
		formatInt(s, spec, v)
	case int16:
		formatInt(s, spec, v)
	case int32:
		formatInt(s, spec, v)
	case int64:
		formatInt(s, spec, v)
	case uint:
		formatInt(s, spec, v)
	case uint8:
		formatInt(s, spec, v)
	case uint16:
		formatInt(s, spec, v)
	case uint32:
		formatInt(s, spec, v)
	case uint64:
		formatInt(s, spec, v)
	case uintptr:
		formatInt(s, spec, v)
	case float32:
		formatFloat(s, spec, v)
	case float64:
		formatFloat(s, spec, v)
	case bool:
		s.boolean(spec, v)
	case string:
		s.text(v, spec)
	case []byte:
		s.textBytes(v, spec)
	case Char:
		s.char(spec, v)
	case unsafe.Pointer:
		s.pointer(spec, uintptr(v))
	default:
		s.named(spec, v)
	}
}

// named handles every type the fast path does not know.
func (s *State) named(spec Spec, v any) {
	rv := reflect.ValueOf(v)
	if !isInteger(rv.Kind()) || spec.Verb == 's' {
		switch v := v.(type) {
		case error:
			if isNilPointer(v) {
				s.text("<nil>", spec)
			} else {
				s.text(v.Error(), spec)
			}
			return
		case fmt.Stringer:
			if isNilPointer(v) {
				s.text("<nil>", spec)
			} else {
				s.text(v.String(), spec)
			}
			return
		}
	}

	switch rv.Kind() {
	case reflect.Bool:
		s.boolean(spec, rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i := rv.Int()
		mag := uint64(i)
		if i < 0 {
			mag = -mag
		}
		s.integer(spec, mag, i < 0, rv.Type().Bits())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		s.integer(spec, rv.Uint(), false, rv.Type().Bits())
	case reflect.Float32, reflect.Float64:
		s.float(spec, rv.Float())
	case reflect.String:
		s.text(rv.String(), spec)
	case reflect.Pointer:
		if rv.IsNil() {
			s.text("<nil>", spec)
			return
		}
		s.pointer(spec, rv.Pointer())
	case reflect.UnsafePointer:
		s.pointer(spec, rv.Pointer())
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			s.textBytes(rv.Bytes(), spec)
			return
		}
		s.list(spec, rv)
	case reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			arr := reflect.New(rv.Type()).Elem()
			arr.Set(rv)
			s.textBytes(arr.Bytes(), spec)
			return
		}
		s.list(spec, rv)
	case reflect.Map:
		s.mapPairs(spec, rv)
	case reflect.Func:
		if !rv.Type().CanSeq() {
			panic(unformattable(rv.Type()))
		}
		s.seq(spec, rv)
	default:
		panic(unformattable(rv.Type()))
	}
}

func isInteger(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// pointer prints an address as %p does. 'X' is kept for an uppercase
// address.
func (s *State) pointer(spec Spec, p uintptr) {
	if spec.Verb == 'X' {
		spec.Flags |= FlagAlternate
	} else {
		spec.Verb = 'p'
	}
	s.integer(spec, uint64(p), false, 64)
}

func (s *State) char(spec Spec, c Char) {
	if spec.Verb != 0 && spec.Verb != 'c' {
		formatInt(s, spec, uint32(c))
		return
	}
	s.textBytes(utf8.AppendRune(s.chr[:0], rune(c)), spec)
}

func (s *State) pair(first, second any) {
	s.sink.AppendString("{ ")
	s.Value(Spec{}, first)
	s.sink.AppendString(", ")
	s.Value(Spec{}, second)
	s.sink.AppendString(" }")
}

// iterable prints the values produced by next as "[a, b]", or back to back
// with the alternate flag.
func (s *State) iterable(spec Spec, next func(yield func(v any) bool)) {
	bare := spec.Has(FlagAlternate)
	first := true
	next(func(v any) bool {
		switch {
		case bare:
		case first:
			s.sink.AppendByte('[')
		default:
			s.sink.AppendString(", ")
		}
		first = false
		s.Value(spec, v)
		return true
	})
	switch {
	case bare:
	case first:
		s.sink.AppendString("[ ]")
	default:
		s.sink.AppendByte(']')
	}
}

func (s *State) list(spec Spec, rv reflect.Value) {
	s.iterable(spec, func(yield func(any) bool) {
		for i := range rv.Len() {
			if !yield(rv.Index(i).Interface()) {
				return
			}
		}
	})
}

func (s *State) seq(spec Spec, rv reflect.Value) {
	s.iterable(spec, func(yield func(any) bool) {
		for v := range rv.Seq() {
			if !yield(v.Interface()) {
				return
			}
		}
	})
}

// mapPairs prints a map as a list of { key, value } pairs in key order.
func (s *State) mapPairs(spec Spec, rv reflect.Value) {
	keys := rv.MapKeys()
	slices.SortFunc(keys, compareKeys)
	s.iterable(spec, func(yield func(any) bool) {
		for _, k := range keys {
			if !yield(MakePair(k.Interface(), rv.MapIndex(k).Interface())) {
				return
			}
		}
	})
}

func orderable(k reflect.Kind) bool {
	switch k {
	case reflect.Bool, reflect.String, reflect.Float32, reflect.Float64:
		return true
	}
	return isInteger(k)
}

func compareKeys(a, b reflect.Value) int {
	switch a.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(a.Int(), b.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(a.Uint(), b.Uint())
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(a.Float(), b.Float())
	case reflect.String:
		return cmp.Compare(a.String(), b.String())
	case reflect.Bool:
		switch {
		case a.Bool() == b.Bool():
			return 0
		case a.Bool():
			return 1
		default:
			return -1
		}
	}
	return 0
}
