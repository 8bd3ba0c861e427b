package optimize_test

import (
	"testing"

	"github.com/hyeong-run/hyeong/internal/area"
	"github.com/hyeong-run/hyeong/internal/lang"
	"github.com/hyeong-run/hyeong/internal/optimize"
	"github.com/hyeong-run/hyeong/internal/vm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Level 0 is a pass-through: no renumbering, no pre-execution.
func TestOptimizeLevelZeroIsNoOp(t *testing.T) {
	code := lang.Parse("형... 항.")
	st, rest, err := optimize.Optimize(code, 0)
	require.NoError(t, err)
	assert.Equal(t, code, rest)
	assert.Equal(t, 0, st.Len(3))
}

// "형... 항." pushes 3 onto the current stack, then pops it straight back
// out to stdout (stack 1). At level 2 this never needs real stdin or a
// flush, so pre-execution consumes the whole program and folds its single
// byte of output into stack 1 as a pending code point.
func TestOptimizeLevelTwoFoldsOutputIntoStackOne(t *testing.T) {
	code := lang.Parse("형... 항.")
	st, rest, err := optimize.Optimize(code, 2)
	require.NoError(t, err)
	assert.Empty(t, rest)
	assert.Equal(t, 1, st.Len(1))
	assert.Equal(t, "3", st.Pop(1).Decimal())
}

// Level 2 must stop, not fail, the moment further progress would require
// real input: a bare pop of stack 0 blocks on stdin, so pre-execution
// hands the instruction back unexecuted rather than guessing an answer.
func TestOptimizeLevelTwoStopsBeforeStdinRead(t *testing.T) {
	instrs := []lang.Instruction{
		// switch current stack to 0 (stdin)
		{Type: lang.Heuk, HangulCount: 1, DotCount: 0, Area: area.NewNil()},
		// pop the current stack: would read stdin
		{Type: lang.Hang, HangulCount: 1, DotCount: 1, Area: area.NewNil()},
	}
	st, rest, err := optimize.Optimize(instrs, 2)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, lang.Hang, rest[0].Type)
	assert.Equal(t, 0, st.Len(3))
}

// Level 1 renumbers any current-stack value above 3 into a dense slot
// starting at 4; running the renumbered program must behave exactly like
// running the original against the lazily-allocated layout.
func TestOptimizeLevelOneRenumbersHighStackIndex(t *testing.T) {
	instrs := []lang.Instruction{
		// switch current stack to 10 without disturbing any data stack
		{Type: lang.Heuk, HangulCount: 0, DotCount: 10, Area: area.NewNil()},
		// push 2*1=2 onto the (renumbered) current stack
		{Type: lang.Hyeong, HangulCount: 2, DotCount: 1, AreaCount: 2, Area: area.NewNil()},
	}

	st, rest, err := optimize.Optimize(instrs, 1)
	require.NoError(t, err)

	m := vm.New(vm.WithState(st))
	require.NoError(t, m.Run(rest))

	assert.Equal(t, 0, st.Len(10), "index 10 must not be used directly once renumbered")
	assert.Equal(t, 1, st.Len(4), "10 is the only >3 index seen, so it maps to the first dense slot")
	assert.Equal(t, int64(2), st.Pop(4).ToInt())
}
