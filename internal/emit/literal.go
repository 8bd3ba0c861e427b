package emit

import (
	"fmt"

	"github.com/hyeong-run/hyeong/internal/area"
	"github.com/hyeong-run/hyeong/internal/lang"
	"github.com/hyeong-run/hyeong/internal/rational"
)

// numLiteral renders v as a Go expression of type rational.Num.
func numLiteral(v rational.Num) string {
	if v.IsNaN() {
		return "rational.NaN()"
	}
	up, down, _ := v.Parts()
	return fmt.Sprintf("numLit(%q, %q)", up, down)
}

// treeLiteral renders t as a Go expression of type *area.Tree, built from
// the same area.Node/area.Leaf/area.NewNil constructors the parser itself
// uses, so the emitted tree is byte-for-byte the one the residual
// instruction carried.
func treeLiteral(t *area.Tree) string {
	switch t.Tag {
	case area.TagNil:
		return "area.NewNil()"
	case area.TagHeart:
		return fmt.Sprintf("area.Leaf(%d)", t.HeartKind)
	case area.TagQuestion:
		return fmt.Sprintf("area.Node(area.TagQuestion, %s, %s)", treeLiteral(t.Left), treeLiteral(t.Right))
	case area.TagBang:
		return fmt.Sprintf("area.Node(area.TagBang, %s, %s)", treeLiteral(t.Left), treeLiteral(t.Right))
	default:
		return "area.NewNil()"
	}
}

// genTreeVars emits one package-level area-tree variable per instruction,
// named treeN, referenced by blockN's jump-decision code.
func genTreeVars(total []lang.Instruction) string {
	out := ""
	for i, instr := range total {
		out += fmt.Sprintf("\nvar tree%d = %s", i, treeLiteral(instr.Area))
	}
	return out + "\n"
}
