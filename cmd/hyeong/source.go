package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hyeong-run/hyeong/internal/fileinput"
	"github.com/hyeong-run/hyeong/internal/lang"
)

// parseFile loads name as hyeong source (checking its .hyeong extension
// via internal/fileinput) and parses it.
func parseFile(name string) ([]lang.Instruction, error) {
	f, err := fileinput.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return lang.Parse(string(src)), nil
}

// moduleRoot walks up from the current directory looking for go.mod, so
// the `build` subcommand can locate the module tree its emitted source
// must live inside (it imports this module's own internal packages,
// which only resolve from within the module).
func moduleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("go.mod not found above %s", dir)
		}
		dir = parent
	}
}

