// Package lang defines the instruction model shared by the parser, VM, and
// optimiser: the six command types, their source-level tokens, and the
// Instruction value each command compiles to.
package lang

import (
	"fmt"

	"github.com/hyeong-run/hyeong/internal/area"
)

// Type identifies one of the six hyeong command syllables.
type Type uint8

const (
	Hyeong Type = iota // 형: push h*d onto the current stack
	Hang               // 항: pop h values, sum, push onto stack d
	Hat                // 핫: pop h values, multiply, push onto stack d
	Heut               // 흣: pop h values, negate each, push back, push sum onto stack d
	Heup               // 흡: pop h values, reciprocal each, push back, push product onto stack d
	Heuk               // 흑: pop one value, push h copies onto stack d, push original back, switch current
)

// shortSyllables holds the single-syllable ("short form") token per Type.
var shortSyllables = [...]rune{'형', '항', '핫', '흣', '흡', '흑'}

// String renders t using its defining command syllable.
func (t Type) String() string {
	if int(t) < len(shortSyllables) {
		return string(shortSyllables[t])
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}

// Span records where an instruction came from in the source text, for
// diagnostics (the `check` subcommand, parse errors are never raised).
type Span struct {
	Line   int
	Column int
	Raw    string
}

// Instruction is a single parsed command: its type, the two counts that
// parameterize it, the area comparand fixed at parse time, its area-tree
// jump annotation, and (for freshly parsed, unoptimised instructions) its
// source Span.
type Instruction struct {
	Type        Type
	HangulCount int
	DotCount    int
	AreaCount   uint64 // hangul_count * dot_count at parse time; see AreaCountOf
	Area        *area.Tree
	Span        Span
}

// AreaCountOf returns hangul*dot, the comparand used by an instruction's
// area tree and the key into the points map. Instruction.AreaCount is
// fixed to this value when an instruction is parsed and must stay fixed
// across optimisation: level-1 renumbering changes DotCount (the stack an
// instruction targets) but must not change what the instruction's area
// tree compares against, so callers read the stored field rather than
// recomputing it from (possibly renumbered) DotCount/HangulCount.
func AreaCountOf(hangulCount, dotCount int) uint64 {
	return uint64(hangulCount) * uint64(dotCount)
}
