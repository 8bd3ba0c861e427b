// Package state holds the mutable program state a VM executes against:
// numbered stacks of rational.Num, the instruction history, the program
// counter, and the area-tree jump bookkeeping (points / latest).
package state

import (
	"github.com/hyeong-run/hyeong/internal/lang"
	"github.com/hyeong-run/hyeong/internal/rational"
)

// PointKey is the (area_size, heart_kind) pair used to record and look up
// jump targets.
type PointKey struct {
	AreaSize uint64
	Heart    uint8
}

// State is the dynamic store a VM mutates while executing instructions.
// The zero value is not ready for use; call New or NewDense.
type State struct {
	Stacks  Stacks
	current uint64
	code    []lang.Instruction
	points  map[PointKey]int
	latest  *int
	loc     int
}

// New returns an empty state backed by the lazily-allocated stack layout,
// with the current stack set to 3, the language's default.
func New() *State {
	return &State{Stacks: NewMapStacks(), current: 3, points: make(map[PointKey]int)}
}

// NewDense returns an empty state backed by a dense, fixed-size stack
// array, as produced by the L1 stack-renumbering optimisation.
func NewDense(size uint64) *State {
	return &State{Stacks: NewDenseStacks(size), current: 3, points: make(map[PointKey]int)}
}

// CurrentStack returns the index of the active stack.
func (s *State) CurrentStack() uint64 { return s.current }

// SetCurrentStack changes the active stack.
func (s *State) SetCurrentStack(idx uint64) { s.current = idx }

// Push appends v onto the top of stack idx.
func (s *State) Push(idx uint64, v rational.Num) { s.Stacks.Push(idx, v) }

// Pop removes and returns the top of stack idx, or rational.NaN() if the
// stack is empty (or, in the dense layout, out of range).
func (s *State) Pop(idx uint64) rational.Num { return s.Stacks.Pop(idx) }

// Len reports how many values are currently on stack idx.
func (s *State) Len(idx uint64) int { return s.Stacks.Len(idx) }

// Entries returns every non-empty stack's contents, bottom-to-top.
func (s *State) Entries() map[uint64][]rational.Num { return s.Stacks.Entries() }

// Points returns a copy of every recorded jump point.
func (s *State) Points() map[PointKey]int {
	out := make(map[PointKey]int, len(s.points))
	for k, v := range s.points {
		out[k] = v
	}
	return out
}

// PushCode appends instr to the execution history and returns its index.
func (s *State) PushCode(instr lang.Instruction) int {
	s.code = append(s.code, instr)
	return len(s.code) - 1
}

// Code returns the instruction recorded at history index i.
func (s *State) Code(i int) lang.Instruction { return s.code[i] }

// CodeLen returns the number of instructions recorded in the history.
func (s *State) CodeLen() int { return len(s.code) }

// GetPoint looks up a recorded jump target, returning ok=false if the
// point has not yet been seen.
func (s *State) GetPoint(k PointKey) (int, bool) {
	v, ok := s.points[k]
	return v, ok
}

// SetPoint records the first-seen history index for a jump label.
func (s *State) SetPoint(k PointKey, v int) { s.points[k] = v }

// GetLatest returns the most recently saved return location, and whether
// one has ever been set.
func (s *State) GetLatest() (int, bool) {
	if s.latest == nil {
		return 0, false
	}
	return *s.latest, true
}

// SetLatest records v as the return location for a subsequent white-heart
// evaluation.
func (s *State) SetLatest(v int) { s.latest = &v }

// Loc returns the current program counter (an index into the history).
func (s *State) Loc() int { return s.loc }

// SetLoc sets the program counter.
func (s *State) SetLoc(v int) { s.loc = v }

// Clone returns a deep copy of s, suitable for the REPL's "previous" undo
// and the L2 optimiser's speculative pre-execution: mutations to the
// clone never alias s.
func (s *State) Clone() *State {
	c := &State{
		Stacks:  s.Stacks.Clone(),
		current: s.current,
		loc:     s.loc,
		points:  make(map[PointKey]int, len(s.points)),
	}
	for k, v := range s.points {
		c.points[k] = v
	}
	c.code = append([]lang.Instruction(nil), s.code...)
	if s.latest != nil {
		l := *s.latest
		c.latest = &l
	}
	return c
}
