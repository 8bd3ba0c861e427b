package optimize

import (
	"bytes"

	"github.com/hyeong-run/hyeong/internal/area"
	"github.com/hyeong-run/hyeong/internal/lang"
	"github.com/hyeong-run/hyeong/internal/panicerr"
	"github.com/hyeong-run/hyeong/internal/rational"
	"github.com/hyeong-run/hyeong/internal/state"
	"github.com/hyeong-run/hyeong/internal/vm"
)

// maxSpeculativeSteps bounds how many area-tree jumps a single
// instruction may take during pre-execution before it is judged to
// contain an unbounded loop and abandoned, along with the rest of code.
const maxSpeculativeSteps = 100

// preexecute speculatively runs the leading instructions of code against
// st, stopping at the first instruction that would need real stdin,
// stdout/stderr flushing, or program exit (popping stack 0, 1 or 2 while
// it is the current stack), or whose area-tree resolution loops more
// than maxSpeculativeSteps times. Output that the executed prefix wrote
// to stdout/stderr is folded into st's stacks 1 and 2 as pending code
// points, rather than being written anywhere real; pre-execution never
// performs actual I/O. It returns the instructions not executed.
func preexecute(st *state.State, code []lang.Instruction) ([]lang.Instruction, error) {
	var out, errBuf bytes.Buffer

	idx := len(code)
	for i, instr := range code {
		snapshot := st.Clone()

		var ok bool
		runErr := panicerr.Recover("optimize.preexecuteOne", func() error {
			var err error
			ok, err = preexecuteOne(st, snapshot, &out, &errBuf, instr)
			return err
		})
		if panicerr.IsPanic(runErr) || panicerr.IsExit(runErr) {
			// A speculative step must never bring down the optimiser; treat
			// an unexpected panic the same as any other abort and hand the
			// instruction back unexecuted, restoring st to how it looked
			// before the panicking step ran.
			*st = *snapshot
			idx = i
			break
		}
		if runErr != nil {
			return nil, runErr
		}
		if !ok {
			idx = i
			break
		}
	}

	appendBytes(st, 1, out.Bytes())
	appendBytes(st, 2, errBuf.Bytes())

	return code[idx:], nil
}

// appendBytes decodes bs as UTF-8 and stores its code points onto stack
// idx in reverse so that popping them back (last-in-first-out, as
// vm.Drain and the real VM both do) yields the runes in their original
// capture order.
func appendBytes(st *state.State, idx uint64, bs []byte) {
	rs := []rune(string(bs))
	for i := len(rs) - 1; i >= 0; i-- {
		st.Push(idx, rational.FromCount(uint64(rs[i])))
	}
}

// preexecuteOne runs one instruction to completion, following its
// area-tree jumps, against st. It reports ok=false and restores st to
// its entry state if the instruction could not be safely pre-executed;
// any bytes already written to out/errBuf by the time that happens are
// kept, since they represent output a real run would already have
// produced irreversibly.
func preexecuteOne(st, snapshot *state.State, out, errBuf *bytes.Buffer, instr lang.Instruction) (bool, error) {
	curLoc := st.PushCode(instr)
	length := curLoc + 1
	steps := 0

	for curLoc < length {
		if steps >= maxSpeculativeSteps {
			*st = *snapshot
			return false, nil
		}

		cur := st.Code(curLoc)
		curStack := st.CurrentStack()

		abort, err := runCommand(st, out, errBuf, cur, curStack)
		if err != nil {
			return false, err
		}
		if abort {
			*st = *snapshot
			return false, nil
		}

		curStack = st.CurrentStack()
		aborted := false
		kind := area.Eval(cur.Area, cur.AreaCount, func() rational.Num {
			if aborted || curStack <= 2 {
				aborted = true
				return rational.NaN()
			}
			return st.Pop(curStack)
		})
		if aborted {
			*st = *snapshot
			return false, nil
		}

		if kind == 0 {
			curLoc++
			continue
		}
		if kind != area.Return {
			key := state.PointKey{AreaSize: cur.AreaCount, Heart: kind}
			if value, ok := st.GetPoint(key); ok {
				if curLoc != value {
					st.SetLatest(curLoc)
					curLoc = value
					steps++
					continue
				}
			} else {
				st.SetPoint(key, curLoc)
			}
			curLoc++
			continue
		}
		if loc, ok := st.GetLatest(); ok {
			curLoc = loc
			steps++
			continue
		}
		curLoc++
	}

	return true, nil
}

// runCommand runs instr's command phase against st, writing any pushes to
// stack 1/2 into out/errBuf instead. abort reports that a pop was needed
// from a stack at or below 2 while it was current, which pre-execution
// can never safely satisfy.
func runCommand(st *state.State, out, errBuf *bytes.Buffer, instr lang.Instruction, curStack uint64) (abort bool, err error) {
	pop := func() (rational.Num, bool) {
		if curStack <= 2 {
			return rational.NaN(), false
		}
		return st.Pop(curStack), true
	}
	push := func(idx uint64, v rational.Num) error {
		switch idx {
		case 1:
			return vm.EncodeValue(out, v)
		case 2:
			return vm.EncodeValue(errBuf, v)
		default:
			st.Push(idx, v)
			return nil
		}
	}

	switch instr.Type {
	case lang.Hyeong:
		v := rational.FromCount(instr.AreaCount)
		if err := push(curStack, v); err != nil {
			return false, err
		}

	case lang.Hang:
		n := rational.Zero()
		for i := 0; i < instr.HangulCount; i++ {
			v, ok := pop()
			if !ok {
				return true, nil
			}
			n = rational.Add(n, v)
		}
		if err := push(uint64(instr.DotCount), n); err != nil {
			return false, err
		}

	case lang.Hat:
		n := rational.One()
		for i := 0; i < instr.HangulCount; i++ {
			v, ok := pop()
			if !ok {
				return true, nil
			}
			n = rational.Mul(n, v)
		}
		if err := push(uint64(instr.DotCount), n); err != nil {
			return false, err
		}

	case lang.Heut:
		popped := make([]rational.Num, 0, instr.HangulCount)
		for i := 0; i < instr.HangulCount; i++ {
			v, ok := pop()
			if !ok {
				return true, nil
			}
			popped = append(popped, v)
		}
		n := rational.Zero()
		for _, v := range popped {
			v = v.Minus()
			n = rational.Add(n, v)
			if err := push(curStack, v); err != nil {
				return false, err
			}
		}
		if err := push(uint64(instr.DotCount), n); err != nil {
			return false, err
		}

	case lang.Heup:
		popped := make([]rational.Num, 0, instr.HangulCount)
		for i := 0; i < instr.HangulCount; i++ {
			v, ok := pop()
			if !ok {
				return true, nil
			}
			popped = append(popped, v)
		}
		n := rational.One()
		for _, v := range popped {
			v = v.Flip()
			n = rational.Mul(n, v)
			if err := push(curStack, v); err != nil {
				return false, err
			}
		}
		if err := push(uint64(instr.DotCount), n); err != nil {
			return false, err
		}

	case lang.Heuk:
		n, ok := pop()
		if !ok {
			return true, nil
		}
		for i := 0; i < instr.HangulCount; i++ {
			if err := push(uint64(instr.DotCount), n); err != nil {
				return false, err
			}
		}
		if err := push(curStack, n); err != nil {
			return false, err
		}
		st.SetCurrentStack(uint64(instr.DotCount))
	}

	return false, nil
}
