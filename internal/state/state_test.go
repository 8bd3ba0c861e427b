package state_test

import (
	"testing"

	"github.com/hyeong-run/hyeong/internal/rational"
	"github.com/hyeong-run/hyeong/internal/state"
	"github.com/stretchr/testify/assert"
)

func TestPushPopOrder(t *testing.T) {
	s := state.New()
	s.Push(3, rational.FromInt(1))
	s.Push(3, rational.FromInt(2))
	assert.True(t, rational.Equal(rational.FromInt(2), s.Pop(3)))
	assert.True(t, rational.Equal(rational.FromInt(1), s.Pop(3)))
}

func TestEmptyPopYieldsNaN(t *testing.T) {
	s := state.New()
	assert.True(t, s.Pop(5).IsNaN())
}

func TestDefaultCurrentStackIsThree(t *testing.T) {
	s := state.New()
	assert.Equal(t, uint64(3), s.CurrentStack())
}

func TestDenseOutOfRangeIsNoOp(t *testing.T) {
	s := state.NewDense(5)
	s.Push(10, rational.FromInt(1))
	assert.Equal(t, 0, s.Len(10))
	assert.True(t, s.Pop(10).IsNaN())
}

func TestPushingNaNOntoEmptyStackIsNoOp(t *testing.T) {
	s := state.New()
	s.Push(4, s.Pop(4)) // pop of an empty stack yields nan
	assert.Equal(t, 0, s.Len(4))
}

func TestPushingNaNOntoNonEmptyStackStillPushes(t *testing.T) {
	s := state.New()
	s.Push(4, rational.FromInt(1))
	s.Push(4, rational.NaN())
	assert.Equal(t, 2, s.Len(4))
	assert.True(t, s.Pop(4).IsNaN())
}

func TestDensePushingNaNOntoEmptyStackIsNoOp(t *testing.T) {
	s := state.NewDense(5)
	s.Push(4, s.Pop(4))
	assert.Equal(t, 0, s.Len(4))
}

func TestPointsRecordFirstSeen(t *testing.T) {
	s := state.New()
	k := state.PointKey{AreaSize: 4, Heart: 2}
	_, ok := s.GetPoint(k)
	assert.False(t, ok)
	s.SetPoint(k, 7)
	v, ok := s.GetPoint(k)
	assert.True(t, ok)
	assert.Equal(t, 7, v)
}

func TestLatestUnsetUntilSet(t *testing.T) {
	s := state.New()
	_, ok := s.GetLatest()
	assert.False(t, ok)
	s.SetLatest(3)
	v, ok := s.GetLatest()
	assert.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestCloneIsIndependent(t *testing.T) {
	s := state.New()
	s.Push(3, rational.FromInt(1))
	c := s.Clone()
	c.Push(3, rational.FromInt(2))
	assert.Equal(t, 1, s.Len(3))
	assert.Equal(t, 2, c.Len(3))
}
