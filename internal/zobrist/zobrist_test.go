package zobrist

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tkopp/makhos/internal/position"
)

func TestHashDeterministic(t *testing.T) {
	p := position.InitialPosition()
	h1 := Hash(p)
	h2 := Hash(p)
	assert.Equal(t, h1, h2)
}

func TestHashChangesWithSideToMove(t *testing.T) {
	p := position.InitialPosition()
	h1 := Hash(p)
	p.P1ToMove = !p.P1ToMove
	h2 := Hash(p)
	assert.NotEqual(t, h1, h2)
}

func TestHashChangesWithPiecePlacement(t *testing.T) {
	p := position.InitialPosition()
	h1 := Hash(p)
	p.P1Men = p.P1Men.Clear(24)
	p.P1Men = p.P1Men.Set(16)
	h2 := Hash(p)
	assert.NotEqual(t, h1, h2)
}
