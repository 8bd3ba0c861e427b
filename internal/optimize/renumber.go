package optimize

import (
	"sort"

	"github.com/hyeong-run/hyeong/internal/lang"
)

// renumber performs level-1 stack renumbering. Source programs can write
// to, or switch the current stack to, arbitrarily large indices (every
// 흑 dot count is a candidate), which would force the runtime state onto
// a map. renumber collects every such index greater than 3 and relabels
// it into the dense range starting at 4, in ascending order of index
// value, so the result can be stored in a fixed-size array.
//
// It traces a single straight-line pass over code to discover which
// stack is "current" at each instruction, following only 흑's static
// effect on current_stack and ignoring the area-tree jumps that would
// actually reorder control flow at run time; this mirrors a plain,
// non-branching execution and is exact for any program whose 흑 targets
// don't depend on a jump taken before them.
func renumber(code []lang.Instruction) ([]lang.Instruction, uint64) {
	dotMap := map[uint64]uint64{}
	max := uint64(4)
	now := uint64(3)
	var chk []uint64

	for _, instr := range code {
		if instr.Type == lang.Hyeong {
			continue
		}
		chk = append(chk, now)
		if instr.Type == lang.Heuk {
			now = uint64(instr.DotCount)
		}
	}

	sort.Slice(chk, func(i, j int) bool { return chk[i] < chk[j] })
	for _, i := range chk {
		if i <= 3 {
			continue
		}
		if dotMap[i] == 0 {
			dotMap[i] = max
			max++
		}
	}

	out := make([]lang.Instruction, len(code))
	for i, instr := range code {
		if instr.Type == lang.Hyeong || instr.DotCount <= 3 {
			out[i] = instr
			continue
		}
		dc := uint64(instr.DotCount)
		if dotMap[dc] == 0 {
			dotMap[dc] = max
		}
		instr.DotCount = int(dotMap[dc])
		out[i] = instr
	}

	return out, max + 1
}
