package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestParseArg(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		in   string
		want any
	}{
		"decimal":  {in: "42", want: int64(42)},
		"negative": {in: "-7", want: int64(-7)},
		"hex":      {in: "0xff", want: int64(255)},
		"unsigned": {in: "18446744073709551615", want: uint64(18446744073709551615)},
		"float":    {in: "3.5", want: 3.5},
		"true":     {in: "true", want: true},
		"false":    {in: "false", want: false},
		"string":   {in: "hello", want: "hello"},
		"title":    {in: "True", want: "True"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, parseArg(tt.in))
		})
	}
}

func TestRootFormats(t *testing.T) {
	t.Parallel()
	out, err := run(t, "{} is {#x}, {.2} {}", "255", "255", "3.14159", "yes")
	require.NoError(t, err)
	assert.Equal(t, "255 is 0xff, 3.14 yes\n", out)
}

func TestRootNoNewline(t *testing.T) {
	t.Parallel()
	out, err := run(t, "-n", "[{5}]", "ab")
	require.NoError(t, err)
	assert.Equal(t, "[   ab]", out)
}

func TestRootUpperPrefix(t *testing.T) {
	t.Parallel()
	out, err := run(t, "--upper-prefix", "{#X}", "255")
	require.NoError(t, err)
	assert.Equal(t, "0XFF\n", out)
}

func TestRootMissingArgument(t *testing.T) {
	t.Parallel()
	out, err := run(t, "{} {}", "1")
	require.NoError(t, err)
	assert.Equal(t, "1 <missing value>\n", out)
}

func TestRootConfigFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "zpr.yaml")
	require.NoError(t, os.WriteFile(path, []byte("hex_prefix_upper: true\n"), 0o600))

	out, err := run(t, "--config", path, "{#X}", "48879")
	require.NoError(t, err)
	assert.Equal(t, "0XBEEF\n", out)
}

func TestRootFlagOverridesConfig(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "zpr.yaml")
	require.NoError(t, os.WriteFile(path, []byte("hex_prefix_upper: true\n"), 0o600))

	out, err := run(t, "--config", path, "--upper-prefix=false", "{#X}", "48879")
	require.NoError(t, err)
	assert.Equal(t, "0xBEEF\n", out)
}

func TestRootBadConfig(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "zpr.yaml")
	require.NoError(t, os.WriteFile(path, []byte("colour: red\n"), 0o600))

	_, err := run(t, "--config", path, "{}", "1")
	require.Error(t, err)
}

func TestRootRequiresFormat(t *testing.T) {
	t.Parallel()
	_, err := run(t)
	require.Error(t, err)
}
