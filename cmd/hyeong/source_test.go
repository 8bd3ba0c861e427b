package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hyeong-run/hyeong/internal/lang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFileRejectsWrongExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.txt")
	require.NoError(t, os.WriteFile(path, []byte("혀어어엉"), 0o644))

	_, err := parseFile(path)
	assert.Error(t, err)
}

func TestParseFileParsesSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.hyeong")
	require.NoError(t, os.WriteFile(path, []byte("혀어어어어어어엉......"), 0o644))

	instrs, err := parseFile(path)
	require.NoError(t, err)
	require.Len(t, instrs, 1)
	assert.Equal(t, lang.Hyeong, instrs[0].Type)
}

func TestModuleRootFindsGoMod(t *testing.T) {
	root, err := moduleRoot()
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(root, "go.mod"))
	assert.NoError(t, err)
}
