package emit

import (
	"fmt"

	"github.com/hyeong-run/hyeong/internal/lang"
)

// genBlock renders blockI: the command phase of instr, translated from
// internal/vm.ExecuteOne's per-Type switch into Go source that calls the
// emitted program's own push/pop/current instead of a *vm.VM's methods,
// followed by the same point/latest jump-decision ExecuteOne performs.
// total is the number of blocks in the whole program; the block body does
// not currently use it.
func genBlock(i int, instr lang.Instruction, total int) (string, error) {
	var cmd string
	switch instr.Type {
	case lang.Hyeong:
		cmd = fmt.Sprintf("\tpush(curStack, rational.FromCount(%d))\n", instr.AreaCount)

	case lang.Hang:
		cmd = fmt.Sprintf(
			"\tn := rational.Zero()\n\tfor i := 0; i < %d; i++ {\n\t\tn = rational.Add(n, pop(curStack))\n\t}\n\tpush(%d, n)\n",
			instr.HangulCount, instr.DotCount)

	case lang.Hat:
		cmd = fmt.Sprintf(
			"\tn := rational.One()\n\tfor i := 0; i < %d; i++ {\n\t\tn = rational.Mul(n, pop(curStack))\n\t}\n\tpush(%d, n)\n",
			instr.HangulCount, instr.DotCount)

	case lang.Heut:
		cmd = fmt.Sprintf(
			"\tpopped := make([]rational.Num, 0, %d)\n\tfor i := 0; i < %d; i++ {\n\t\tpopped = append(popped, pop(curStack))\n\t}\n"+
				"\tn := rational.Zero()\n\tfor _, v := range popped {\n\t\tv = v.Minus()\n\t\tn = rational.Add(n, v)\n\t\tpush(curStack, v)\n\t}\n\tpush(%d, n)\n",
			instr.HangulCount, instr.HangulCount, instr.DotCount)

	case lang.Heup:
		cmd = fmt.Sprintf(
			"\tpopped := make([]rational.Num, 0, %d)\n\tfor i := 0; i < %d; i++ {\n\t\tpopped = append(popped, pop(curStack))\n\t}\n"+
				"\tn := rational.One()\n\tfor _, v := range popped {\n\t\tv = v.Flip()\n\t\tn = rational.Mul(n, v)\n\t\tpush(curStack, v)\n\t}\n\tpush(%d, n)\n",
			instr.HangulCount, instr.HangulCount, instr.DotCount)

	case lang.Heuk:
		cmd = fmt.Sprintf(
			"\tn := pop(curStack)\n\tfor i := 0; i < %d; i++ {\n\t\tpush(%d, n)\n\t}\n\tpush(curStack, n)\n\tcurrent = %d\n",
			instr.HangulCount, instr.DotCount, instr.DotCount)

	default:
		return "", fmt.Errorf("emit: unknown instruction type %v at block %d", instr.Type, i)
	}

	next := i + 1
	jump := fmt.Sprintf(
		"\tcurStack = current\n\tkind := evalArea(tree%d, %d, curStack)\n"+
			"\tif kind == 0 {\n\t\treturn %d\n\t}\n"+
			"\tif kind != 13 {\n\t\tkey := pointKey{%d, kind}\n"+
			"\t\tif v, ok := points[key]; ok {\n\t\t\tif %d != v {\n\t\t\t\tlatest = %d\n\t\t\t\treturn v\n\t\t\t}\n\t\t} else {\n\t\t\tpoints[key] = %d\n\t\t}\n"+
			"\t\treturn %d\n\t}\n"+
			"\tif latest >= 0 {\n\t\treturn latest\n\t}\n\treturn %d\n",
		i, instr.AreaCount, next, instr.AreaCount, i, i, i, next, next)

	return fmt.Sprintf("\nfunc block%d() int {\n\tcurStack := current\n%s%s}\n", i, cmd, jump), nil
}
