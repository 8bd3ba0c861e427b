package emit

// header is the fixed runtime preamble every emitted program carries:
// package/imports, the (area size, heart kind)-keyed point dictionary type, package
// state, and the push/pop helpers the generated blocks call into. Pop/push
// on stacks 1/2 reuse vm.EncodeValue and the exit-on-pop-1/2 convention
// directly, exactly as internal/vm's own pushStackWrap/popStackWrap do,
// rather than re-deriving the rune/decimal encoding rules a second time.
const header = `// Code generated by internal/emit. DO NOT EDIT.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/hyeong-run/hyeong/internal/area"
	"github.com/hyeong-run/hyeong/internal/rational"
	"github.com/hyeong-run/hyeong/internal/vm"
)

type pointKey struct {
	areaSize uint64
	heart    uint8
}

var (
	stacks  = map[uint64][]rational.Num{}
	current uint64
	points  = map[pointKey]int{}
	latest  = -1
	stdin   = bufio.NewReader(os.Stdin)
	stdout  = bufio.NewWriter(os.Stdout)
	stderr  = bufio.NewWriter(os.Stderr)
)

func push(idx uint64, v rational.Num) {
	switch idx {
	case 1:
		fatalIf(vm.EncodeValue(stdout, v))
	case 2:
		fatalIf(vm.EncodeValue(stderr, v))
	default:
		stacks[idx] = append(stacks[idx], v)
	}
}

func pop(idx uint64) rational.Num {
	switch idx {
	case 1:
		exit(0)
	case 2:
		exit(1)
	}
	st := stacks[idx]
	if len(st) == 0 && idx == 0 {
		refillStdin()
		st = stacks[0]
	}
	if len(st) == 0 {
		return rational.NaN()
	}
	v := st[len(st)-1]
	stacks[idx] = st[:len(st)-1]
	return v
}

func refillStdin() {
	line, err := stdin.ReadString('\n')
	if err != nil && len(line) == 0 {
		return
	}
	runes := []rune(line)
	for i := len(runes) - 1; i >= 0; i-- {
		stacks[0] = append(stacks[0], rational.FromInt(int64(runes[i])))
	}
}

func fatalIf(err error) {
	if err != nil {
		stdout.Flush()
		stderr.Flush()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func exit(code int) {
	stdout.Flush()
	stderr.Flush()
	os.Exit(code)
}

func evalArea(tree *area.Tree, areaCount uint64, curStack uint64) uint8 {
	return area.Eval(tree, areaCount, func() rational.Num { return pop(curStack) })
}

func numLit(up, down string) rational.Num {
	n, err := rational.FromParts(up, down)
	fatalIf(err)
	return n
}
`
