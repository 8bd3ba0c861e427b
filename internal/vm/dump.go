package vm

import (
	"fmt"
	"io"
	"sort"

	"github.com/hyeong-run/hyeong/internal/rational"
	"github.com/hyeong-run/hyeong/internal/state"
)

// Dumper renders a human-readable snapshot of a VM's state: every
// non-empty stack bottom-to-top, the current stack, the recorded jump
// points, and the last return location. Used by the `debug` CLI
// command's `state`.
type Dumper struct {
	VM  *VM
	Out io.Writer
}

// Dump writes the snapshot to d.Out.
func (d Dumper) Dump() {
	fmt.Fprintf(d.Out, "# VM Dump\n")
	fmt.Fprintf(d.Out, "  loc: %d\n", d.VM.State.CodeLen())
	fmt.Fprintf(d.Out, "  current: %d\n", d.VM.State.CurrentStack())

	d.dumpStacks()
	d.dumpPoints()

	if loc, ok := d.VM.State.GetLatest(); ok {
		fmt.Fprintf(d.Out, "  latest: %d\n", loc)
	}
}

func (d Dumper) dumpStacks() {
	entries := d.VM.State.Entries()
	indices := make([]uint64, 0, len(entries))
	for idx := range entries {
		indices = append(indices, idx)
	}
	sort.Slice(indices, func(i, j int) bool { return indices[i] < indices[j] })

	fmt.Fprintf(d.Out, "  stacks:\n")
	for _, idx := range indices {
		fmt.Fprintf(d.Out, "    %d: %v\n", idx, decimalsOf(entries[idx]))
	}
}

func (d Dumper) dumpPoints() {
	points := d.VM.State.Points()
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

	fmt.Fprintf(d.Out, "  points:\n")
	for _, k := range keys {
		fmt.Fprintf(d.Out, "    (area=%d heart=%d): %d\n", k.AreaSize, k.Heart, points[k])
	}
}

func decimalsOf(vals []rational.Num) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = v.Decimal()
	}
	return out
}
