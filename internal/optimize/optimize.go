// Package optimize implements the two static optimisation levels applied
// to a parsed program before it is run or compiled. Level 1 renumbers
// sparse stack indices into a dense array so the VM can use slice storage
// instead of a map. Level 2 additionally pre-executes as much of the
// program as it safely can without performing real I/O, folding any
// stdout/stderr produced along the way into the resulting state.
//
// A level below 1 runs the program unoptimised: Optimize returns a fresh
// state.New() and the code verbatim, so callers (cmd/hyeong's run/check/
// build/debug subcommands) can pass through whatever -O the user asked
// for without a separate level-0 code path of their own.
package optimize

import (
	"github.com/hyeong-run/hyeong/internal/lang"
	"github.com/hyeong-run/hyeong/internal/state"
)

// Optimize returns the initial state produced by the requested
// optimisation level and the instructions still left to run against it.
// At level 1 that is every instruction, renumbered; at level 2 it is
// whatever preexecute did not consume.
func Optimize(code []lang.Instruction, level int) (*state.State, []lang.Instruction, error) {
	if level < 1 {
		return state.New(), code, nil
	}

	remapped, size := renumber(code)
	st := state.NewDense(size)

	if level < 2 {
		return st, remapped, nil
	}

	rest, err := preexecute(st, remapped)
	if err != nil {
		return nil, nil, err
	}
	return st, rest, nil
}
