package vm_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hyeong-run/hyeong/internal/lang"
	"github.com/hyeong-run/hyeong/internal/vm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, src, stdin string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	m := vm.New(vm.WithInput(strings.NewReader(stdin)), vm.WithOutput(&out), vm.WithErrorOutput(&errOut))
	err = m.Run(lang.Parse(src))
	return out.String(), errOut.String(), err
}

// S1: push 8*6=48 onto the current stack, then pop and multiply it back
// out to stdout; 48 is the ASCII code point for '0'.
func TestScenarioS1(t *testing.T) {
	stdout, _, err := run(t, "혀어어어어어어엉......핫.", "")
	require.NoError(t, err)
	assert.Equal(t, "0", stdout)
}

// S3 exercises the same push/pop-and-multiply idiom three times, twice
// writing to stderr (stack 2) and once to stdout (stack 1).
func TestScenarioS3(t *testing.T) {
	src := "혀어어어어어어엉......핫.. 혀어어어어어어어엉........ 핫. 혀어어어어어어어엉......... 핫.."
	stdout, stderr, err := run(t, src, "")
	require.NoError(t, err)
	assert.Equal(t, "H", stdout)
	assert.Equal(t, "0Q", stderr)
}

// S6: three differently-shaped instruction sequences that each push 1,
// negate it via 흣/흑 in some order, and write the resulting -1 to
// stdout as its decimal negation "1". Demonstrates that equivalent
// programs built from different command orderings are observationally
// identical, the property stack renumbering must preserve.
func TestScenarioS6(t *testing.T) {
	cases := []string{
		"형. 흣... 흑 항.",
		"형. 흣... 흑 핫.",
		"형. 흑 흣.",
	}
	for _, src := range cases {
		stdout, _, err := run(t, src, "")
		require.NoError(t, err)
		assert.Equal(t, "1", stdout)
	}
}

// 흑 with no trailing dots copies the top value onto stack 0 and sets
// current_stack to 0; the first 항 pops that copy, and the next pop of the
// now empty stack 0 must refill from stdin, in reverse code-point order,
// so it yields the line's first rune.
func TestStdinRefillOnEmptyStackZero(t *testing.T) {
	stdout, _, err := run(t, "형... 흑 항. 항.", "5\n")
	require.NoError(t, err)
	assert.Equal(t, "\x035", stdout)
}

// 흑 with a single trailing dot sets current_stack to 1; a subsequent
// pop of stack 1 flushes output and signals exit code 0.
func TestExitByPoppingStackOne(t *testing.T) {
	stdout, _, err := run(t, "형... 흑. 항.", "")
	var exitErr *vm.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 0, exitErr.Code)
	assert.Equal(t, "\x03", stdout)
}
