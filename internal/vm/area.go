package vm

import (
	"github.com/hyeong-run/hyeong/internal/area"
	"github.com/hyeong-run/hyeong/internal/lang"
	"github.com/hyeong-run/hyeong/internal/rational"
)

const areaReturnKind = area.Return

// evalArea runs instr's area tree to completion, feeding it values popped
// (via the stack-0/1/2 wrapping rules) from stack curStack. The first
// exit/I/O error encountered while popping aborts evaluation; area.Eval
// still runs to a leaf since area.PopFunc cannot itself fail, so the
// returned kind is discarded by the caller whenever popErr is non-nil.
func (vm *VM) evalArea(instr lang.Instruction, curStack uint64) (uint8, error) {
	var popErr error
	kind := area.Eval(instr.Area, instr.AreaCount, func() rational.Num {
		if popErr != nil {
			return rational.NaN()
		}
		v, err := vm.popStackWrap(curStack)
		if err != nil {
			popErr = err
			return rational.NaN()
		}
		return v
	})
	return kind, popErr
}
