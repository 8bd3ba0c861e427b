package main

import (
	"io"
	"os"

	"github.com/hyeong-run/hyeong/internal/runeio"
)

// isTerminal is a best-effort check: a char device is almost certainly a
// terminal, a redirected file or pipe is not.
func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// ansiWriter colours every line ERROR-red, leaving other levels plain;
// it writes through runeio.WriteANSIString rather than a bare []byte
// write so non-ASCII log content (heart glyphs in a traced instruction,
// say) still renders via the same control-rune rules the rest of the
// toolchain uses for terminal output.
type ansiWriter struct {
	under io.WriteCloser
}

func newANSIWriter(under io.WriteCloser) io.WriteCloser { return ansiWriter{under} }

func (w ansiWriter) Write(p []byte) (int, error) {
	s := string(p)
	const red, reset = "\x1b[31m", "\x1b[0m"
	if len(s) >= 5 && s[:5] == "ERROR" {
		if _, err := runeio.WriteANSIString(w.under, red); err != nil {
			return 0, err
		}
		if _, err := runeio.WriteANSIString(w.under, s); err != nil {
			return 0, err
		}
		_, err := runeio.WriteANSIString(w.under, reset)
		return len(p), err
	}
	return w.under.Write(p)
}

func (w ansiWriter) Close() error { return w.under.Close() }
