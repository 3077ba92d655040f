package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs a fresh root command with args and returns its stdout, stderr and error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootCommand(t *testing.T) {
	t.Parallel()

	cmd := newRootCmd()
	assert.Equal(t, "colorterm", cmd.Name())
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.True(t, cmd.SilenceUsage)
	assert.True(t, cmd.SilenceErrors)

	for _, name := range []string{"shades", "complementary", "random", "format", "color", "copy", "verbose"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
}

func TestExecute(t *testing.T) {
	t.Parallel()

	t.Run("no colors prints help", func(t *testing.T) {
		t.Parallel()
		out, _, err := execute(t)
		require.NoError(t, err)
		assert.Contains(t, out, "Usage:")
		assert.Contains(t, out, "colorterm [flags] <color>...")
		assert.Contains(t, out, "--complementary")
	})

	t.Run("version", func(t *testing.T) {
		t.Parallel()
		out, _, err := execute(t, "--version")
		require.NoError(t, err)
		assert.Equal(t, "colorterm version "+version+"\n", out)
	})

	t.Run("info", func(t *testing.T) {
		t.Parallel()
		out, errOut, err := execute(t, "#0080FF")
		require.NoError(t, err)
		assert.Contains(t, out, "HEX: #0080FF")
		assert.Contains(t, out, "HSL: 210, 1.00, 0.50")
		assert.NotContains(t, out, "\u001b[")
		assert.Empty(t, errOut)
	})

	t.Run("shades", func(t *testing.T) {
		t.Parallel()
		out, _, err := execute(t, "-s", "0,128,255")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "Shades of #0080FF\n"), out)
	})

	t.Run("complementary", func(t *testing.T) {
		t.Parallel()
		out, _, err := execute(t, "--complementary", "--color", "never", "#0080FF")
		require.NoError(t, err)
		assert.Contains(t, out, "Complementary colors for #0080FF")
		assert.Contains(t, out, "#FF0080")
	})

	t.Run("json with random colors", func(t *testing.T) {
		t.Parallel()
		out, _, err := execute(t, "-f", "JSON", "-r", "2", "fff")
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 3)
		for _, line := range lines {
			var report map[string]any
			require.NoError(t, json.Unmarshal([]byte(line), &report), line)
			assert.Equal(t, "1.0", report["schema_version"])
		}
		assert.Contains(t, lines[0], `"hex":"#FFFFFF"`)
		assert.Contains(t, lines[1], `"input":"random"`)
	})

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()
		out, _, err := execute(t, "--format", "yaml", "#000")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "---\n"), out)
		assert.Contains(t, out, "hex: '#000000'")
	})

	t.Run("rejected input still prints the rest", func(t *testing.T) {
		t.Parallel()
		out, errOut, err := execute(t, "nope", "#000", "#GG0000")
		require.ErrorIs(t, err, errInputRejected)
		assert.Contains(t, out, "HEX: #000000")
		assert.Contains(t, errOut, "Unknown format 'nope'")
		assert.Contains(t, errOut, "Unknown format '#GG0000'")
	})

	t.Run("component error", func(t *testing.T) {
		t.Parallel()
		_, errOut, err := execute(t, ",1,2")
		require.ErrorIs(t, err, errInputRejected)
		assert.Contains(t, errOut, "Unable to parse red component for ',1,2'")
	})

	t.Run("invalid format", func(t *testing.T) {
		t.Parallel()
		_, _, err := execute(t, "--format", "xml", "#000")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be one of text, json, yaml")
	})

	t.Run("conflicting modes", func(t *testing.T) {
		t.Parallel()
		_, _, err := execute(t, "-s", "-c", "#000")
		assert.EqualError(t, err, "--shades cannot be combined with --complementary")
	})

	t.Run("verbosity controls logs", func(t *testing.T) {
		t.Parallel()
		_, quiet, err := execute(t, "#000")
		require.NoError(t, err)
		assert.Empty(t, quiet)

		_, info, err := execute(t, "-v", "#000")
		require.NoError(t, err)
		assert.Contains(t, info, "resolved inputs")
		assert.NotContains(t, info, "resolved input ")

		_, debug, err := execute(t, "-vv", "#000")
		require.NoError(t, err)
		assert.Contains(t, debug, "resolved input ")
	})
}
