package vm_test

import (
	"bytes"
	"testing"

	"github.com/hyeong-run/hyeong/internal/lang"
	"github.com/hyeong-run/hyeong/internal/vm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDumperRendersStacksAndLoc(t *testing.T) {
	m := vm.New()
	require.NoError(t, m.Execute(lang.Parse("혀어어어어어어엉......")[0]))

	var buf bytes.Buffer
	vm.Dumper{VM: m, Out: &buf}.Dump()

	out := buf.String()
	assert.Contains(t, out, "# VM Dump")
	assert.Contains(t, out, "loc: 1")
	assert.Contains(t, out, "stacks:")
	assert.Contains(t, out, "3: [48]")
}
