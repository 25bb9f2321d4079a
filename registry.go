package zpr

import (
	"fmt"
	"reflect"
)

// Formatter is implemented by types that print themselves. Print receives
// the parsed specifier and writes through s, usually with s.Format or
// s.Value.
type Formatter interface {
	Print(s *State, spec Spec)
}

// wrapper is implemented by the package's argument wrappers; wrapped returns
// the values they will print so they can be checked up front.
type wrapper interface {
	wrapped() []any
}

// pairer marks Pair instantiations.
type pairer interface {
	isPair()
}

var (
	formatterType = reflect.TypeFor[Formatter]()
	pairerType    = reflect.TypeFor[pairer]()
	errorType     = reflect.TypeFor[error]()
	stringerType  = reflect.TypeFor[fmt.Stringer]()
)

// Register installs fn as the formatter for values of type T on e. It is
// also used for non-nil *T values unless *T has its own registration.
// Passing a nil fn removes the registration. Register must not be called
// while e is in use.
func Register[T any](e *Engine, fn func(s *State, spec Spec, v T)) {
	t := reflect.TypeFor[T]()
	if fn == nil {
		delete(e.funcs, t)
		return
	}
	if e.funcs == nil {
		e.funcs = make(map[reflect.Type]formatFunc)
	}
	e.funcs[t] = func(s *State, spec Spec, v any) { fn(s, spec, v.(T)) }
}

// lookup returns the registered formatter for v and the value to pass it.
func (e *Engine) lookup(v any) (formatFunc, any, bool) {
	if len(e.funcs) == 0 {
		return nil, nil, false
	}
	t := reflect.TypeOf(v)
	if fn, ok := e.funcs[t]; ok {
		return fn, v, true
	}
	if t.Kind() == reflect.Pointer {
		if fn, ok := e.funcs[t.Elem()]; ok {
			rv := reflect.ValueOf(v)
			if !rv.IsNil() {
				return fn, rv.Elem().Interface(), true
			}
		}
	}
	return nil, nil, false
}

// check panics with an error wrapping ErrUnformattable if any argument, or
// anything reachable from its type, has no formatting rule.
func (e *Engine) check(args []any) {
	for _, arg := range args {
		if w, ok := arg.(wrapper); ok {
			e.check(w.wrapped())
			continue
		}
		t := reflect.TypeOf(arg)
		if t != nil && !e.formattable(t, nil) {
			panic(unformattable(t))
		}
	}
}

func unformattable(t reflect.Type) error {
	return fmt.Errorf("%w: %s", ErrUnformattable, t)
}

func (e *Engine) formattable(t reflect.Type, seen map[reflect.Type]bool) bool {
	if seen[t] {
		return true
	}
	if _, ok := e.funcs[t]; ok {
		return true
	}
	if t.Kind() == reflect.Struct && t.Implements(pairerType) {
		return e.formattable(t.Field(0).Type, mark(seen, t)) &&
			e.formattable(t.Field(1).Type, mark(seen, t))
	}
	if t.Implements(formatterType) || t.Implements(errorType) || t.Implements(stringerType) {
		return true
	}

	switch t.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Pointer, reflect.UnsafePointer, reflect.Interface:
		return true
	case reflect.Slice, reflect.Array:
		if t.Elem().Kind() == reflect.Uint8 {
			return true
		}
		return e.formattable(t.Elem(), mark(seen, t))
	case reflect.Map:
		return orderable(t.Key().Kind()) &&
			e.formattable(t.Key(), mark(seen, t)) &&
			e.formattable(t.Elem(), mark(seen, t))
	case reflect.Func:
		if t.CanSeq() {
			return e.formattable(t.In(0).In(0), mark(seen, t))
		}
	}
	return false
}

func mark(seen map[reflect.Type]bool, t reflect.Type) map[reflect.Type]bool {
	if seen == nil {
		seen = make(map[reflect.Type]bool)
	}
	seen[t] = true
	return seen
}
