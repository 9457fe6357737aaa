package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitboardSetClearTest(t *testing.T) {
	var b Bitboard
	b = b.Set(5)
	assert.True(t, b.Test(5))
	assert.False(t, b.Test(6))
	b = b.Clear(5)
	assert.False(t, b.Test(5))
}

func TestPopCountAndSquares(t *testing.T) {
	var b Bitboard
	b = b.Set(0).Set(3).Set(31)
	assert.Equal(t, 3, b.PopCount())
	assert.Equal(t, []Square{0, 3, 31}, b.Squares())
}

func TestSquareRowColBijection(t *testing.T) {
	seen := map[Square]bool{}
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			s := SquareAt(r, c)
			if (r+c)%2 == 0 {
				assert.Equal(t, SquareNone, s)
				continue
			}
			assert.NotEqual(t, SquareNone, s)
			assert.False(t, seen[s])
			seen[s] = true
			assert.Equal(t, r, s.RowOf())
			assert.Equal(t, c, s.ColOf())
		}
	}
	assert.Equal(t, NumSquares, len(seen))
}

func TestStepsOffBoard(t *testing.T) {
	// Off-board steps are skipped; every on-board step must land one
	// row and one column away in the step's direction.
	for s := Square(0); s < NumSquares; s++ {
		for d := Direction(0); d < NumDirections; d++ {
			n := Step(s, d)
			if n == SquareNone {
				continue
			}
			r, c := s.RowOf(), s.ColOf()
			nr, nc := n.RowOf(), n.ColOf()
			dr, dc := rowColDelta(d)
			assert.Equal(t, r+dr, nr)
			assert.Equal(t, c+dc, nc)
		}
	}
}

func TestRayWalk(t *testing.T) {
	r := Walk(0, DR)
	count := 0
	for {
		_, ok := r.Next()
		if !ok {
			break
		}
		count++
	}
	assert.Greater(t, count, 0)
}
