// Package emit translates a residual program and its residual initial
// state (the output of internal/optimize at any level) into a standalone
// Go source file that reproduces the VM's observable behaviour without
// re-parsing or re-interpreting hyeong source at all.
//
// The emitted program is not a freestanding artifact: it imports this
// module's own internal/area, internal/rational and internal/vm packages
// for its arithmetic and stack-1/2 byte encoding, the same way the
// original compiler's generated Rust depends on its own crate rather than
// reimplementing bignum/rational arithmetic from scratch. Building it
// therefore requires the emitted file to live inside this module's source
// tree (e.g. a build-temp directory under the repo root), which is the
// CLI's `build` subcommand's concern, not this package's.
package emit

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hyeong-run/hyeong/internal/lang"
	"github.com/hyeong-run/hyeong/internal/state"
)

// Emit renders a complete "package main" Go source file that, when run,
// reproduces running residual against st to completion: the same stdout
// bytes, stderr bytes, and exit code as the VM would produce.
//
// st's own instruction history (already-executed instructions, if st came
// out of L2 pre-execution) is included as live, re-runnable blocks ahead
// of residual rather than being discarded: a jump recorded during
// pre-execution may legitimately target one of those earlier
// instructions again (the language's loop/return mechanism is "go
// re-execute starting at this historical instruction"), and the emitted
// program needs to be able to satisfy that the same as a live VM
// resuming from st would.
func Emit(st *state.State, residual []lang.Instruction) (string, error) {
	prefixLen := st.CodeLen()
	total := make([]lang.Instruction, 0, prefixLen+len(residual))
	for i := 0; i < prefixLen; i++ {
		total = append(total, st.Code(i))
	}
	total = append(total, residual...)

	var body strings.Builder
	for i, instr := range total {
		blockSrc, err := genBlock(i, instr, len(total))
		if err != nil {
			return "", err
		}
		body.WriteString(blockSrc)
	}

	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteString(genTreeVars(total))
	sb.WriteString(body.String())
	sb.WriteString(genDispatch(len(total)))
	sb.WriteString(genMain(st, prefixLen, len(total)))
	return sb.String(), nil
}

// genMain renders the seeded-state prelude (literal initial stacks,
// current stack, points, latest) plus the program-counter loop. start is
// the pc the emitted program begins running from: residual's first
// instruction, since everything before it already ran during
// pre-execution and only needs to stay re-runnable, not re-run. total is
// the number of blocks emitted (prefix history plus residual).
func genMain(st *state.State, start, total int) string {
	var sb strings.Builder
	sb.WriteString("\nfunc main() {\n\tdefer stdout.Flush()\n\tdefer stderr.Flush()\n")

	entries := st.Entries()
	indices := make([]uint64, 0, len(entries))
	for idx := range entries {
		indices = append(indices, idx)
	}
	sort.Slice(indices, func(i, j int) bool { return indices[i] < indices[j] })
	for _, idx := range indices {
		vals := entries[idx]
		lits := make([]string, len(vals))
		for i, v := range vals {
			lits[i] = numLiteral(v)
		}
		fmt.Fprintf(&sb, "\tstacks[%d] = []rational.Num{%s}\n", idx, strings.Join(lits, ", "))
	}
	// Output captured by pre-execution is written out before any residual
	// instruction runs, top of stack first, as vm.Drain does.
	sb.WriteString("\tfor _, idx := range []uint64{1, 2} {\n\t\tfor i := len(stacks[idx]) - 1; i >= 0; i-- {\n\t\t\tpush(idx, stacks[idx][i])\n\t\t}\n\t\tdelete(stacks, idx)\n\t}\n")

	fmt.Fprintf(&sb, "\tcurrent = %d\n", st.CurrentStack())

	points := st.Points()
	keys := make([]state.PointKey, 0, len(points))
	for k := range points {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].AreaSize != keys[j].AreaSize {
			return keys[i].AreaSize < keys[j].AreaSize
		}
		return keys[i].Heart < keys[j].Heart
	})
	for _, k := range keys {
		fmt.Fprintf(&sb, "\tpoints[pointKey{%d, %d}] = %d\n", k.AreaSize, k.Heart, points[k])
	}

	if loc, ok := st.GetLatest(); ok {
		fmt.Fprintf(&sb, "\tlatest = %d\n", loc)
	}

	fmt.Fprintf(&sb, "\n\tpc := %d\n\tfor pc < %d {\n\t\tpc = dispatch(pc)\n\t}\n}\n", start, total)
	return sb.String()
}
