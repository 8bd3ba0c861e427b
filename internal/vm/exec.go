package vm

import (
	"io"
	"unicode/utf8"

	"github.com/hyeong-run/hyeong/internal/lang"
	"github.com/hyeong-run/hyeong/internal/panicerr"
	"github.com/hyeong-run/hyeong/internal/rational"
	"github.com/hyeong-run/hyeong/internal/state"
)

// EncodeValue renders num the way a write to stdout/stderr does: a
// non-negative value (or nan) as a single Unicode scalar (its floored
// value as a code point), a negative value as the decimal digits of its
// negation.
// internal/optimize reuses this to fold speculatively-produced output
// into in-memory buffers instead of real streams.
func EncodeValue(w io.Writer, num rational.Num) error {
	if num.IsPos() {
		r := rune(num.ToInt())
		if r < 0 || !utf8.ValidRune(r) {
			return &EncodingError{Value: num.ToInt()}
		}
		var buf [utf8.UTFMax]byte
		n := utf8.EncodeRune(buf[:], r)
		_, err := w.Write(buf[:n])
		return err
	}
	_, err := io.WriteString(w, num.Minus().Decimal())
	return err
}

// pushStackWrap pushes num onto stack idx, except stacks 1 and 2 which
// instead write to stdout/stderr via EncodeValue.
func (vm *VM) pushStackWrap(idx uint64, num rational.Num) error {
	switch idx {
	case 1:
		return EncodeValue(vm.out, num)
	case 2:
		return EncodeValue(vm.err, num)
	default:
		vm.State.Push(idx, num)
		return nil
	}
}

// popStackWrap pops a value from stack idx. Stack 0, when empty, refills
// itself from one line of input (code points pushed in reverse so the
// first pop yields the line's first rune). Popping stack 1 or 2 flushes
// both streams and returns an *ExitError carrying the associated code.
func (vm *VM) popStackWrap(idx uint64) (rational.Num, error) {
	switch idx {
	case 0:
		if vm.State.Len(0) == 0 {
			line, err := vm.in.ReadString('\n')
			if err != nil && err != io.EOF {
				return rational.NaN(), err
			}
			runes := []rune(line)
			for i := len(runes) - 1; i >= 0; i-- {
				vm.State.Push(0, rational.FromInt(int64(runes[i])))
			}
		}
		return vm.State.Pop(0), nil
	case 1:
		if err := vm.Flush(); err != nil {
			return rational.NaN(), err
		}
		return rational.NaN(), &ExitError{Code: 0}
	case 2:
		if err := vm.Flush(); err != nil {
			return rational.NaN(), err
		}
		return rational.NaN(), &ExitError{Code: 1}
	default:
		return vm.State.Pop(idx), nil
	}
}

// Drain flushes any output L2 pre-execution folded into stacks 1 and 2
// (internal/optimize.preexecute's captured-output buffers) straight to
// stdout/stderr, in their original capture order, before any residual
// instruction runs. A state never touched by pre-execution has nothing on
// stacks 1/2, so Drain is a no-op for an ordinary fresh run.
func (vm *VM) Drain() error {
	for vm.State.Len(1) > 0 {
		if err := EncodeValue(vm.out, vm.State.Pop(1)); err != nil {
			return err
		}
	}
	for vm.State.Len(2) > 0 {
		if err := EncodeValue(vm.err, vm.State.Pop(2)); err != nil {
			return err
		}
	}
	return nil
}

// ExecuteOne runs the instruction recorded in state history at curLoc and
// returns the next history index to run. A non-nil error is always
// either an *ExitError or a fatal I/O/encoding failure.
func (vm *VM) ExecuteOne(curLoc int) (int, error) {
	instr := vm.State.Code(curLoc)
	curStack := vm.State.CurrentStack()

	switch instr.Type {
	case lang.Hyeong:
		v := rational.FromCount(instr.AreaCount)
		if err := vm.pushStackWrap(curStack, v); err != nil {
			return 0, err
		}

	case lang.Hang:
		n := rational.Zero()
		for i := 0; i < instr.HangulCount; i++ {
			v, err := vm.popStackWrap(curStack)
			if err != nil {
				return 0, err
			}
			n = rational.Add(n, v)
		}
		if err := vm.pushStackWrap(uint64(instr.DotCount), n); err != nil {
			return 0, err
		}

	case lang.Hat:
		n := rational.One()
		for i := 0; i < instr.HangulCount; i++ {
			v, err := vm.popStackWrap(curStack)
			if err != nil {
				return 0, err
			}
			n = rational.Mul(n, v)
		}
		if err := vm.pushStackWrap(uint64(instr.DotCount), n); err != nil {
			return 0, err
		}

	case lang.Heut:
		n := rational.Zero()
		popped := make([]rational.Num, instr.HangulCount)
		for i := range popped {
			v, err := vm.popStackWrap(curStack)
			if err != nil {
				return 0, err
			}
			popped[i] = v
		}
		for _, v := range popped {
			v = v.Minus()
			n = rational.Add(n, v)
			if err := vm.pushStackWrap(curStack, v); err != nil {
				return 0, err
			}
		}
		if err := vm.pushStackWrap(uint64(instr.DotCount), n); err != nil {
			return 0, err
		}

	case lang.Heup:
		n := rational.One()
		popped := make([]rational.Num, instr.HangulCount)
		for i := range popped {
			v, err := vm.popStackWrap(curStack)
			if err != nil {
				return 0, err
			}
			popped[i] = v
		}
		for _, v := range popped {
			v = v.Flip()
			n = rational.Mul(n, v)
			if err := vm.pushStackWrap(curStack, v); err != nil {
				return 0, err
			}
		}
		if err := vm.pushStackWrap(uint64(instr.DotCount), n); err != nil {
			return 0, err
		}

	case lang.Heuk:
		n, err := vm.popStackWrap(curStack)
		if err != nil {
			return 0, err
		}
		for i := 0; i < instr.HangulCount; i++ {
			if err := vm.pushStackWrap(uint64(instr.DotCount), n); err != nil {
				return 0, err
			}
		}
		if err := vm.pushStackWrap(curStack, n); err != nil {
			return 0, err
		}
		vm.State.SetCurrentStack(uint64(instr.DotCount))
	}

	curStack = vm.State.CurrentStack()
	kind, err := vm.evalArea(instr, curStack)
	if err != nil {
		return 0, err
	}

	if kind == 0 {
		return curLoc + 1, nil
	}
	if kind != areaReturnKind {
		key := state.PointKey{AreaSize: instr.AreaCount, Heart: kind}
		if value, ok := vm.State.GetPoint(key); ok {
			if curLoc != value {
				vm.State.SetLatest(curLoc)
				return value, nil
			}
		} else {
			vm.State.SetPoint(key, curLoc)
		}
		return curLoc + 1, nil
	}
	if loc, ok := vm.State.GetLatest(); ok {
		return loc, nil
	}
	return curLoc + 1, nil
}

// Execute appends instr to the history and runs it to completion,
// following any jumps it causes, until the program counter reaches the
// end of history.
func (vm *VM) Execute(instr lang.Instruction) error {
	curLoc := vm.State.PushCode(instr)
	length := curLoc + 1
	for curLoc < length {
		vm.logf("@%d %v", curLoc, vm.State.Code(curLoc).Type)
		next, err := vm.ExecuteOne(curLoc)
		if err != nil {
			return err
		}
		curLoc = next
	}
	return nil
}

// Run appends every instruction in prog to the history, then executes from
// the first newly appended index through the end of the combined history.
// The whole pass runs under a panicerr.Recover boundary, the same guard the
// teacher's api.go puts around its own VM.Run, so a bug in one instruction
// handler surfaces as a returned error instead of taking the host process
// down.
func (vm *VM) Run(prog []lang.Instruction) error {
	return panicerr.Recover("VM", func() error {
		return vm.run(prog)
	})
}

func (vm *VM) run(prog []lang.Instruction) error {
	if err := vm.Drain(); err != nil {
		return err
	}
	if len(prog) == 0 {
		return nil
	}
	curLoc := vm.State.CodeLen()
	for _, instr := range prog {
		vm.State.PushCode(instr)
	}
	length := vm.State.CodeLen()
	for curLoc < length {
		vm.logf("@%d %v", curLoc, vm.State.Code(curLoc).Type)
		next, err := vm.ExecuteOne(curLoc)
		if err != nil {
			return err
		}
		curLoc = next
	}
	return nil
}
