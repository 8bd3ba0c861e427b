package lang

import (
	"strings"
	"unicode"

	"github.com/hyeong-run/hyeong/internal/area"
)

// dot-like runes and their weight.
func dotValue(r rune) (int, bool) {
	switch r {
	case '.':
		return 1, true
	case '⋮', '…', '⋯':
		return 3, true
	}
	return 0, false
}

func isDot(r rune) bool { _, ok := dotValue(r); return ok }

var hearts = [...]rune{'♥', '❤', '💕', '💖', '💗', '💘', '💙', '💚', '💛', '💜', '💝', '♡'}

func heartKind(r rune) (uint8, bool) {
	for i, h := range hearts {
		if h == r {
			return uint8(i + 2), true
		}
	}
	return 0, false
}

// command group: a start syllable and the endings that select a concrete
// Type once reached. Group 0 (혀) has exactly one ending and no ambiguity;
// group 1 (하) covers two Types and group 2 (흐) three, sharing a start
// (하/흐 with their middle syllable 아/으 just prolonging the hangul run
// without resolving it).
type commandGroup struct {
	start   rune
	middle  rune
	endings map[rune]Type
}

var groups = [...]commandGroup{
	{start: '혀', middle: '어', endings: map[rune]Type{'엉': Hyeong}},
	{start: '하', middle: '아', endings: map[rune]Type{'앙': Hang, '앗': Hat}},
	{start: '흐', middle: '으', endings: map[rune]Type{'읏': Heut, '읍': Heup, '윽': Heuk}},
}

func isHangulSyllable(r rune) bool { return r >= 0xAC00 && r <= 0xD7A3 }

// parser state machine states.
const (
	stateIdle = iota // expecting a command start, a dot, or an area token
	stateHangul
)

// chain is the cursor state for building one area annotation: `area` holds
// the local "!"-chain under construction, `qu` holds the outer "?"-chain.
// leaf/quLeaf are pointers to the slot where the next node attaches,
// mirroring the moving insertion-point reference the original grammar uses.
type chain struct {
	area   *area.Tree
	leaf   **area.Tree
	qu     *area.Tree
	quLeaf **area.Tree
}

func newChain() *chain {
	c := &chain{area: area.NewNil(), qu: area.NewNil()}
	c.leaf = &c.area
	c.quLeaf = &c.qu
	return c
}

func (c *chain) handleQuestion() {
	if (*c.quLeaf).Tag != area.TagNil {
		node := area.Node(area.TagQuestion, c.area, area.NewNil())
		(*c.quLeaf).Right = node
		c.quLeaf = &(*c.quLeaf).Right
	} else {
		c.qu = area.Node(area.TagQuestion, c.area, area.NewNil())
		c.quLeaf = &c.qu
	}
	c.area = area.NewNil()
	c.leaf = &c.area
}

// freshCopy returns a node carrying t's tag (heart kind or operator) with
// empty children, mirroring the original grammar's "promote in place"
// behaviour when a rightmost slot is displaced by a new operator.
func freshCopy(t *area.Tree) *area.Tree {
	if t.Tag == area.TagHeart {
		return area.Leaf(t.HeartKind)
	}
	return area.Node(t.Tag, area.NewNil(), area.NewNil())
}

func (c *chain) handleBang() {
	leaf := *c.leaf
	switch {
	case leaf.Tag == area.TagNil:
		*c.leaf = area.Node(area.TagBang, area.NewNil(), area.NewNil())
	case leaf.Tag == area.TagQuestion || leaf.Tag == area.TagBang:
		if leaf.Right.Tag != area.TagNil {
			promoted := freshCopy(leaf.Right)
			newNode := area.Node(area.TagBang, promoted, area.NewNil())
			leaf.Right = newNode
			c.leaf = &leaf.Right
		} else {
			leaf.Right = area.Node(area.TagBang, area.NewNil(), area.NewNil())
			c.leaf = &leaf.Right
		}
	default:
		// leaf is itself a heart leaf: promote it to the new bang's left child.
		promoted := freshCopy(leaf)
		newNode := area.Node(area.TagBang, promoted, area.NewNil())
		*c.leaf = newNode
	}
}

func (c *chain) handleHeart(k uint8) {
	leaf := *c.leaf
	switch {
	case leaf.Tag == area.TagNil:
		*c.leaf = area.Leaf(k)
	case leaf.Tag == area.TagQuestion || leaf.Tag == area.TagBang:
		if leaf.Right.Tag == area.TagNil {
			leaf.Right = area.Leaf(k)
		}
		// else: rightmost slot already holds a value; ignore.
	default:
		// leaf is itself a heart leaf already: ignore.
	}
}

// result finishes the chain, attaching the trailing "!"-chain as the right
// child of the last "?" node (or returning it bare if no "?" token appeared).
func (c *chain) result() *area.Tree {
	if (*c.quLeaf).Tag != area.TagNil {
		(*c.quLeaf).Right = c.area
		return c.qu
	}
	return c.area
}

// Parse tokenises source into the ordered sequence of instructions it
// contains. Unrecognised runes are skipped; a command-start syllable that
// never reaches its ending is dropped without producing an instruction.
// The parser never returns an error.
func Parse(source string) []Instruction {
	var out []Instruction

	var (
		hangulCount  = 0
		dotCount     = 0
		typ          Type
		pendingType  = -1 // index into groups while mid-long-form, -1 if none pending
		have         bool // an instruction is under construction
		typeResolved bool // its Type is known (false while mid-long-form)
		line         = 1
		col          = 0
		startCol     = 0
		startLine    = 1
		raw          strings.Builder
		state        = stateIdle
		cur          = newChain()
	)

	flush := func() {
		if have && typeResolved {
			out = append(out, Instruction{
				Type:        typ,
				HangulCount: hangulCount,
				DotCount:    dotCount,
				AreaCount:   AreaCountOf(hangulCount, dotCount),
				Area:        cur.result(),
				Span:        Span{Line: startLine, Column: startCol, Raw: raw.String()},
			})
		}
		hangulCount, dotCount, have, typeResolved = 0, 0, false, false
		cur = newChain()
		raw.Reset()
	}

	runes := []rune(source)

	// lastEnding[g] holds the rune index of the last occurrence of any
	// ending syllable belonging to groups[g], or -1 if that group's
	// ending never appears in source. A start syllable seen after its
	// group's last ending can never reach one, so it must be skipped
	// rather than entering stateHangul and swallowing the rest of the
	// source: mirrors original_source/src/core/parse.rs's validity
	// pre-pass (max_pos), which scans once up front for exactly this.
	var lastEnding [len(groups)]int
	for g := range lastEnding {
		lastEnding[g] = -1
	}
	for i, r := range runes {
		for g, grp := range groups {
			if _, ok := grp.endings[r]; ok {
				lastEnding[g] = i
			}
		}
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if unicode.IsSpace(r) {
			if r == '\n' {
				line++
				col = 0
				continue
			}
			col++
			continue
		}
		if state != stateHangul {
			switch {
			case matchShort(r) >= 0:
				flush()
				typ = Type(matchShort(r))
				hangulCount, dotCount, have, typeResolved = 1, 0, true, true
				startLine, startCol = line, col
				raw.Reset()
				raw.WriteRune(r)
				state = stateIdle
			case matchStart(r) >= 0 && lastEnding[matchStart(r)] > i:
				flush()
				pendingType = matchStart(r)
				hangulCount, have, typeResolved = 1, true, false
				startLine, startCol = line, col
				raw.Reset()
				raw.WriteRune(r)
				state = stateHangul
			case isDot(r):
				if have {
					v, _ := dotValue(r)
					dotCount += v
					raw.WriteRune(r)
				}
			case r == '?':
				if have {
					cur.handleQuestion()
					raw.WriteRune(r)
				}
			case r == '!':
				if have {
					cur.handleBang()
					raw.WriteRune(r)
				}
			default:
				if k, ok := heartKind(r); ok {
					if have {
						cur.handleHeart(k)
						raw.WriteRune(r)
					}
				}
				// any other rune is skipped.
			}
		} else {
			if isHangulSyllable(r) {
				raw.WriteRune(r)
			}
			g := groups[pendingType]
			if r == g.middle {
				hangulCount++
			}
			if end, ok := g.endings[r]; ok {
				hangulCount++
				typ = end
				dotCount = 0
				typeResolved = true
				state = stateIdle
			}
			// any other hangul syllable (e.g. a second start) is consumed
			// without counting toward the run; the prefix resolves once its
			// ending syllable appears, or never emits if it doesn't.
		}
		col++
	}
	flush()
	return out
}

func matchShort(r rune) int {
	for i, s := range shortSyllables {
		if s == r {
			return i
		}
	}
	return -1
}

func matchStart(r rune) int {
	for i, g := range groups {
		if g.start == r {
			return i
		}
	}
	return -1
}
