package emit

import (
	"fmt"
	"strings"
)

// genDispatch renders dispatch(pc), a balanced if-else tree over pc's
// range that calls the matching blockN() in O(log n) comparisons rather
// than a single flat n-way switch, mirroring the original compiler's own
// halving dispatch tree (built from bisecting the block-count stack in
// its code generator) rather than leaving block selection to whatever a
// flat switch happens to compile to.
func genDispatch(n int) string {
	var sb strings.Builder
	sb.WriteString("\nfunc dispatch(pc int) int {\n")
	if n == 0 {
		sb.WriteString("\treturn pc\n")
	} else {
		sb.WriteString(dispatchRange(0, n, 1))
	}
	sb.WriteString("}\n")
	return sb.String()
}

func dispatchRange(lo, hi, depth int) string {
	indent := strings.Repeat("\t", depth)
	if hi-lo == 1 {
		return fmt.Sprintf("%sreturn block%d()\n", indent, lo)
	}
	mid := lo + (hi-lo)/2
	var sb strings.Builder
	fmt.Fprintf(&sb, "%sif pc < %d {\n", indent, mid)
	sb.WriteString(dispatchRange(lo, mid, depth+1))
	fmt.Fprintf(&sb, "%s} else {\n", indent)
	sb.WriteString(dispatchRange(mid, hi, depth+1))
	fmt.Fprintf(&sb, "%s}\n", indent)
	return sb.String()
}
