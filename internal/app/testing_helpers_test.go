package app

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/jkbrsn/colorterm"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// newTestPrinter returns a printer writing to buffers, with colors disabled.
func newTestPrinter(mode, format string) (*Printer, *bytes.Buffer, *bytes.Buffer) {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	return &Printer{
		Mode:      mode,
		Format:    format,
		ColorMode: ColorNever,
		Out:       out,
		Err:       errOut,
		Log:       zerolog.Nop(),
	}, out, errOut
}

// sampleEntry returns the azure test color #0080FF.
func sampleEntry() Entry {
	return Entry{Input: "#0080FF", Color: colorterm.NewRGB(0, 128, 255)}
}

// captureStdoutFrom runs fn with os.Stdout redirected to a pipe and returns what it wrote.
func captureStdoutFrom(t *testing.T, fn func() error) string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer func() { _ = r.Close() }()

	original := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = original }()

	err = fn()
	require.NoError(t, err)
	require.NoError(t, w.Close())

	output, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(output)
}
