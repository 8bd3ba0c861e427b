package vm_test

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/hyeong-run/hyeong/internal/lang"
	"github.com/hyeong-run/hyeong/internal/optimize"
	"github.com/hyeong-run/hyeong/internal/vm"
	"github.com/hyeong-run/hyeong/scripts/testdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScenarioTableAtEveryOptimisationLevel runs every confirmed S1-S6
// scenario at L0, L1, and L2, checking testable property 6 (VM/L2
// equivalence): stack renumbering and pre-execution must never change a
// program's observable stdout/stderr.
func TestScenarioTableAtEveryOptimisationLevel(t *testing.T) {
	for _, sc := range testdata.Scenarios {
		sc := sc
		for level := 0; level <= 2; level++ {
			level := level
			t.Run(sc.Name+"/L"+strconv.Itoa(level), func(t *testing.T) {
				code := lang.Parse(sc.Source)
				st, rest, err := optimize.Optimize(code, level)
				require.NoError(t, err)

				var out, errOut bytes.Buffer
				m := vm.New(
					vm.WithState(st),
					vm.WithInput(strings.NewReader(sc.Stdin)),
					vm.WithOutput(&out),
					vm.WithErrorOutput(&errOut),
				)
				err = m.Run(rest)
				require.NoError(t, err)
				assert.Equal(t, sc.Stdout, out.String())
				assert.Equal(t, sc.Stderr, errOut.String())
			})
		}
	}
}
