package emit_test

import (
	"testing"

	"github.com/hyeong-run/hyeong/internal/area"
	"github.com/hyeong-run/hyeong/internal/emit"
	"github.com/hyeong-run/hyeong/internal/lang"
	"github.com/hyeong-run/hyeong/internal/optimize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitProducesRunnableShape(t *testing.T) {
	code := lang.Parse("형...")
	st, rest, err := optimize.Optimize(code, 0)
	require.NoError(t, err)

	src, err := emit.Emit(st, rest)
	require.NoError(t, err)

	assert.Contains(t, src, "package main")
	assert.Contains(t, src, "func main()")
	assert.Contains(t, src, "func dispatch(pc int) int")
	assert.Contains(t, src, "func block0() int")
	assert.Contains(t, src, "rational.FromCount(3)")
	assert.Contains(t, src, "pc := 0")
}

// An instruction whose area tree carries a heart leaf must show up as a
// literal area.Leaf call so the emitted block's jump decision matches the
// parsed tree exactly, not a re-derived approximation of it.
func TestEmitRendersAreaTreeLiteral(t *testing.T) {
	instrs := []lang.Instruction{
		{Type: lang.Hyeong, HangulCount: 1, DotCount: 3, AreaCount: 3, Area: area.Leaf(4)},
	}
	st, rest, err := optimize.Optimize(instrs, 0)
	require.NoError(t, err)

	src, err := emit.Emit(st, rest)
	require.NoError(t, err)

	assert.Contains(t, src, "area.Leaf(4)")
	assert.Contains(t, src, "evalArea(tree0, 3, curStack)")
}

// L2 pre-execution folds captured stdout bytes into stack 1; the emitted
// program's prelude must seed that exact byte back in as a literal stack
// initializer rather than dropping it.
func TestEmitSeedsPreExecutedOutput(t *testing.T) {
	code := lang.Parse("형... 항.")
	st, rest, err := optimize.Optimize(code, 2)
	require.NoError(t, err)
	require.Empty(t, rest)

	src, err := emit.Emit(st, rest)
	require.NoError(t, err)

	assert.Contains(t, src, "stacks[1] = []rational.Num{numLit(\"3\", \"1\")}")
	assert.Contains(t, src, "pc := 2")
}

func TestEmitEmptyProgramIsStillValidShape(t *testing.T) {
	st, rest, err := optimize.Optimize(nil, 0)
	require.NoError(t, err)

	src, err := emit.Emit(st, rest)
	require.NoError(t, err)
	assert.Contains(t, src, "func dispatch(pc int) int")
	assert.Contains(t, src, "return pc")
}
