package history

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tkopp/makhos/internal/move"
)

func TestAddKillerDemotesPrevious(t *testing.T) {
	h := New()
	m1 := move.Move{From: 1, To: 5}
	m2 := move.Move{From: 2, To: 6}

	h.AddKiller(3, m1)
	k0, k1 := h.Killers(3)
	assert.True(t, k0.Equal(m1))
	assert.True(t, k1.Equal(move.None))

	h.AddKiller(3, m2)
	k0, k1 = h.Killers(3)
	assert.True(t, k0.Equal(m2))
	assert.True(t, k1.Equal(m1))
}

func TestAddKillerIgnoresDuplicate(t *testing.T) {
	h := New()
	m1 := move.Move{From: 1, To: 5}
	h.AddKiller(0, m1)
	h.AddKiller(0, m1)
	k0, k1 := h.Killers(0)
	assert.True(t, k0.Equal(m1))
	assert.True(t, k1.Equal(move.None))
}

func TestHistoryAccumulates(t *testing.T) {
	h := New()
	m := move.Move{From: 4, To: 9}
	assert.EqualValues(t, 0, h.History(m))
	h.AddHistory(m, 16)
	h.AddHistory(m, 9)
	assert.EqualValues(t, 25, h.History(m))
}

func TestHistoryIsPerMoveKey(t *testing.T) {
	h := New()
	a := move.Move{From: 4, To: 9}
	b := move.Move{From: 4, To: 10}
	h.AddHistory(a, 100)
	assert.EqualValues(t, 100, h.History(a))
	assert.EqualValues(t, 0, h.History(b))
}
