package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tkopp/makhos/internal/board"
	"github.com/tkopp/makhos/internal/move"
	"github.com/tkopp/makhos/internal/position"
)

// TestInitialLegalMoves pins the reference move list for the initial
// position (spec.md §8 scenario S1): four men on the back two rows
// are blocked by their own pieces, the front row's four men have 2
// forward steps each except the edge man, for 7 total.
func TestInitialLegalMoves(t *testing.T) {
	p := position.InitialPosition()
	moves := SortedByFromTo(Generate(p))
	want := []move.Move{
		{From: 24, To: 20},
		{From: 24, To: 21},
		{From: 25, To: 21},
		{From: 25, To: 22},
		{From: 26, To: 22},
		{From: 26, To: 23},
		{From: 27, To: 23},
	}
	assert.Equal(t, want, moves)
}

func TestForcedSingleJump(t *testing.T) {
	var p position.Position
	p.P1Men = p.P1Men.Set(24)
	p.P2Men = p.P2Men.Set(21)
	p.P1ToMove = true

	moves := Generate(p)
	assert.Len(t, moves, 1)
	m := moves[0]
	assert.Equal(t, board.Square(24), m.From)
	assert.Equal(t, board.Square(17), m.To)
	assert.Equal(t, []board.Square{21}, m.Captured)
	assert.False(t, m.Promote)
}

// TestMaxLengthRule builds a position where one man has a 2-capture
// chain (24 -> 21 -> 14, landing on 10) and another man has only a
// single capture (30 -> 26, landing on 23); only the length-2 chain
// should survive the maximum-length filter (spec.md §8 invariant 4,
// scenario S3).
func TestMaxLengthRule(t *testing.T) {
	var p position.Position
	p.P1Men = p.P1Men.Set(24).Set(30)
	p.P2Men = p.P2Men.Set(21).Set(14).Set(26)
	p.P1ToMove = true

	moves := Generate(p)
	assert.Len(t, moves, 1)
	m := moves[0]
	assert.Equal(t, board.Square(24), m.From)
	assert.Equal(t, board.Square(10), m.To)
	assert.Equal(t, []board.Square{21, 14}, m.Captured)
}

// TestFlyingKingShortLanding exercises the Thai-checkers "short
// landing" rule (spec.md §4.3 scenario S4): a king slides through
// empty squares, jumps exactly one enemy, and lands immediately
// beyond it rather than flying further along the ray.
func TestFlyingKingShortLanding(t *testing.T) {
	var p position.Position
	p.P1Kings = p.P1Kings.Set(31)
	p.P2Men = p.P2Men.Set(13)
	p.P1ToMove = true

	moves := Generate(p)
	assert.Len(t, moves, 1)
	m := moves[0]
	assert.Equal(t, board.Square(31), m.From)
	assert.Equal(t, board.Square(8), m.To)
	assert.Equal(t, []board.Square{13}, m.Captured)
	assert.False(t, m.Promote)
}

// TestPromotionEndsChain (spec.md §8 scenario S5): a man captures
// into its promotion row; a second capture would be available along
// a backward ray if the piece were allowed to continue as a king,
// but the chain must stop at the promotion square.
func TestPromotionEndsChain(t *testing.T) {
	var p position.Position
	p.P1Men = p.P1Men.Set(8)
	p.P2Men = p.P2Men.Set(5).Set(6)
	p.P1ToMove = true

	moves := Generate(p)
	assert.Len(t, moves, 1)
	m := moves[0]
	assert.Equal(t, board.Square(8), m.From)
	assert.Equal(t, board.Square(1), m.To)
	assert.Equal(t, []board.Square{5}, m.Captured)
	assert.True(t, m.Promote)
}

func TestApplyMovePromotes(t *testing.T) {
	var p position.Position
	p.P1Men = p.P1Men.Set(8)
	p.P2Men = p.P2Men.Set(5).Set(6)
	p.P1ToMove = true

	m := Generate(p)[0]
	np := ApplyMove(p, m)

	assert.False(t, np.P1Men.Test(1))
	assert.True(t, np.P1Kings.Test(1))
	assert.False(t, np.P2Men.Test(5))
	assert.True(t, np.P2Men.Test(6)) // untouched piece stays
	assert.False(t, np.P1ToMove)
	assert.Equal(t, 0, np.HalfmoveClock)
}

func TestForcedCaptureExcludesQuietMoves(t *testing.T) {
	var p position.Position
	p.P1Men = p.P1Men.Set(24).Set(30)
	p.P2Men = p.P2Men.Set(21)
	p.P1ToMove = true

	for _, m := range Generate(p) {
		assert.True(t, m.IsCapture(), "quiet move %v returned alongside a capture", m)
	}
}

func TestApplyMoveResetsHalfmoveClock(t *testing.T) {
	p := position.InitialPosition()
	p.HalfmoveClock = 5
	m := move.Move{From: 24, To: 20}
	np := ApplyMove(p, m)
	assert.Equal(t, 6, np.HalfmoveClock)

	var cp position.Position
	cp.P1Men = cp.P1Men.Set(24)
	cp.P2Men = cp.P2Men.Set(21)
	cp.P1ToMove = true
	cp.HalfmoveClock = 7
	cm := Generate(cp)[0]
	ncp := ApplyMove(cp, cm)
	assert.Equal(t, 0, ncp.HalfmoveClock)
}

func TestPerftDepth1MatchesInitialMoveCount(t *testing.T) {
	p := position.InitialPosition()
	assert.EqualValues(t, 1, Perft(p, 0))
	assert.EqualValues(t, 7, Perft(p, 1))
}
