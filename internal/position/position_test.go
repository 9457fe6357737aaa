package position

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tkopp/makhos/internal/board"
)

func TestInitialPosition(t *testing.T) {
	p := InitialPosition()
	assert.Equal(t, 8, p.PieceCount(true))
	assert.Equal(t, 8, p.PieceCount(false))
	assert.True(t, p.P1ToMove)
	assert.Equal(t, 0, p.HalfmoveClock)
	assert.Equal(t, 0, p.P1Kings.PopCount())
	assert.Equal(t, 0, p.P2Kings.PopCount())
	// bitboards pairwise disjoint
	assert.Equal(t, board.Bitboard(0), p.P1Men&p.P2Men)
	assert.Equal(t, board.Bitboard(0), p.P1Men&p.P1Kings)
	assert.Equal(t, 16, p.Occupied().PopCount())
}

func TestIsTerminal(t *testing.T) {
	p := InitialPosition()
	assert.False(t, p.IsTerminal())
	p.P2Men = 0
	p.P2Kings = 0
	assert.True(t, p.IsTerminal())
}

func TestIsDrawByInactivity(t *testing.T) {
	p := InitialPosition()
	p.P1Men = 0
	p.P2Men = 0
	p.P1Kings = p.P1Kings.Set(1).Set(2)
	p.P2Kings = p.P2Kings.Set(30).Set(31)
	p.HalfmoveClock = 20
	assert.True(t, p.IsDrawByInactivity())
	p.HalfmoveClock = 19
	assert.False(t, p.IsDrawByInactivity())
}
