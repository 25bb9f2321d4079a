// Package zpr formats values into text with {}-delimited format strings.
//
// A format string is plain text with specifiers in braces. Each specifier
// prints the next argument:
//
//	zpr.Sprint("{} + {} = {}", 1, 2, 3)     // "1 + 2 = 3"
//	zpr.Sprint("{08.3f}|{-6}|{#x}", 3.14159, "ab", 255)
//	                                        // "0003.142|ab    |0xff"
//
// Write "{{" and "}}" for literal braces.
//
// # Specifiers
//
// A specifier is {[flags][width][.precision][verb]} with printf meanings:
//
//   - flags: '0' zero padding, '-' left-justify, '+' and ' ' sign,
//     '#' alternate form
//   - width: minimum length; '*' takes it from the argument list
//   - precision: digits for numbers, maximum length for strings; '.*'
//     takes it from the argument list
//   - verb: d x X o b for integers, f F e E g G for floats, s c p
//
// {} prints with the type's default. Dynamic width and precision are taken
// before the value they apply to. [W], [P] and [WP] attach them to a single
// argument instead:
//
//	zpr.Sprint("{*}|{}", 5, 42, zpr.W(-5, 42)) // "   42|42   "
//
// # Types
//
// Integers, floats, bools, strings, byte slices, [Char], pointers, slices,
// arrays, maps, iter.Seq functions and [Pair] are printed directly. Values
// implementing [Formatter], error or fmt.Stringer print themselves. Named
// integer types print as numbers unless the verb is 's'. Other types can be
// taught to an [Engine] with [Register]:
//
//	e := zpr.New(zpr.DefaultConfig())
//	zpr.Register(e, func(s *zpr.State, spec zpr.Spec, p image.Point) {
//		s.Format("({}, {})", p.X, p.Y)
//	})
//
// Arguments are checked before anything is written. A call with an argument
// of a type that has no rule panics with an error wrapping
// [ErrUnformattable].
//
// # Output
//
// [Sprint] and [Append] grow a buffer, [Bprint] fills a fixed one and
// truncates, [Fprint] and [Fprintln] stream through a fixed staging buffer,
// and [Cprint] hands each piece to a callback. Any [Sink] can be driven by
// [Engine.Render].
package zpr
