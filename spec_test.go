package zpr_test

import (
	"math"
	"testing"

	"github.com/bjaus/zpr"
	"github.com/stretchr/testify/assert"
)

func TestParseSpec(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		tok  string
		want zpr.Spec
	}{
		"empty": {tok: "{}", want: zpr.Spec{}},
		"verb":  {tok: "{x}", want: zpr.Spec{Verb: 'x'}},
		"full": {
			tok:  "{08.3f}",
			want: zpr.Spec{Verb: 'f', Flags: zpr.FlagZero | zpr.FlagWidth | zpr.FlagPrecision, Width: 8, Precision: 3},
		},
		"no braces": {
			tok:  "5d",
			want: zpr.Spec{Verb: 'd', Flags: zpr.FlagWidth, Width: 5},
		},
		"all flags": {
			tok:  "{-+# 0}",
			want: zpr.Spec{Flags: zpr.FlagMinus | zpr.FlagPlus | zpr.FlagAlternate | zpr.FlagSpace | zpr.FlagZero},
		},
		"repeated flags": {
			tok:  "{--5}",
			want: zpr.Spec{Flags: zpr.FlagMinus | zpr.FlagWidth, Width: 5},
		},
		"dynamic both": {
			tok:  "{*.*x}",
			want: zpr.Spec{Verb: 'x', Flags: zpr.FlagDynWidth | zpr.FlagDynPrecision},
		},
		"bare dot": {
			tok:  "{.}",
			want: zpr.Spec{Flags: zpr.FlagDynPrecision},
		},
		"dot before verb": {
			tok:  "{.s}",
			want: zpr.Spec{Verb: 's', Flags: zpr.FlagDynPrecision},
		},
		"negative precision": {
			tok:  "{.-5s}",
			want: zpr.Spec{Verb: 's'},
		},
		"zero precision": {
			tok:  "{.0}",
			want: zpr.Spec{Flags: zpr.FlagPrecision},
		},
		"trailing garbage": {
			tok:  "{4xyz}",
			want: zpr.Spec{Verb: 'x', Flags: zpr.FlagWidth, Width: 4},
		},
		"long width": {
			tok:  "{123456}",
			want: zpr.Spec{Flags: zpr.FlagWidth, Width: 123456},
		},
		"huge width": {
			tok:  "{99999999999999999999999d}",
			want: zpr.Spec{Verb: 'd', Flags: zpr.FlagWidth, Width: zpr.MaxWidth},
		},
		"huge precision": {
			tok:  "{.99999999999999999999f}",
			want: zpr.Spec{Verb: 'f', Flags: zpr.FlagPrecision, Precision: zpr.MaxWidth},
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, zpr.ParseSpec(tt.tok))
		})
	}
}

func TestSpecString(t *testing.T) {
	t.Parallel()
	for _, tok := range []string{"{}", "{x}", "{-8.3f}", "{+#010X}", "{*.*s}", "{ d}"} {
		assert.Equal(t, tok, zpr.ParseSpec(tok).String())
	}
}

func TestSpecPrintf(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"{}":       "%v",
		"{d}":      "%d",
		"{-8.3f}":  "%-8.3f",
		"{#x}":     "%#x",
		"{+ 05d}":  "%+ 05d",
		"{*.*s}":   "%*.*s",
		"{.0e}":    "%.0e",
		"{-+#08x}": "%+-#08x",
	}
	for tok, want := range tests {
		assert.Equal(t, want, zpr.ParseSpec(tok).Printf(), tok)
	}
}

func TestSpecJustify(t *testing.T) {
	t.Parallel()
	s := zpr.ParseSpec("{5}")
	assert.True(t, s.RightJustify())
	assert.False(t, s.LeftJustify())

	s = zpr.ParseSpec("{-5}")
	assert.True(t, s.LeftJustify())
	assert.False(t, s.RightJustify())

	s = zpr.ParseSpec("{-}")
	assert.False(t, s.LeftJustify(), "no width, nothing to justify")
	assert.False(t, s.RightJustify())
}

func TestSpecWithWidth(t *testing.T) {
	t.Parallel()
	s := zpr.ParseSpec("{*d}").WithWidth(-4)
	assert.Equal(t, 4, s.Width)
	assert.True(t, s.HasWidth())
	assert.True(t, s.Has(zpr.FlagMinus))
	assert.False(t, s.Has(zpr.FlagDynWidth))

	s = zpr.Spec{}.WithWidth(3)
	assert.True(t, s.RightJustify())

	s = zpr.Spec{}.WithWidth(math.MinInt)
	assert.Equal(t, zpr.MaxWidth, s.Width)
	assert.True(t, s.LeftJustify())
	assert.Equal(t, zpr.MaxWidth, zpr.Spec{}.WithWidth(math.MaxInt).Width)
}

func TestSpecWithPrecision(t *testing.T) {
	t.Parallel()
	s := zpr.ParseSpec("{.*}").WithPrecision(2)
	assert.Equal(t, 2, s.Precision)
	assert.True(t, s.HasPrecision())
	assert.False(t, s.Has(zpr.FlagDynPrecision))

	assert.Equal(t, zpr.MaxWidth, zpr.Spec{}.WithPrecision(math.MaxInt).Precision)

	s = zpr.ParseSpec("{.3}").WithPrecision(-1)
	assert.False(t, s.HasPrecision())
	assert.Equal(t, 0, s.Precision)
}
