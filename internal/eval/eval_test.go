package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tkopp/makhos/internal/position"
)

func TestInitialPositionIsBalanced(t *testing.T) {
	p := position.InitialPosition()
	assert.EqualValues(t, 0, Evaluate(p))
}

func TestEvaluateIsSymmetricUnderSideSwap(t *testing.T) {
	p := position.InitialPosition()
	p.P1ToMove = !p.P1ToMove
	assert.EqualValues(t, 0, Evaluate(p))
}

// TestMaterialAdvantageFavorsMover constructs a position with one extra
// P1 man and confirms the evaluation favors P1 when P1 is to move.
func TestMaterialAdvantageFavorsMover(t *testing.T) {
	var p position.Position
	p.P1Men = p.P1Men.Set(24).Set(25)
	p.P2Men = p.P2Men.Set(0)
	p.P1ToMove = true

	assert.Greater(t, Evaluate(p), int32(0))
}

func TestMaterialDisadvantageHurtsMover(t *testing.T) {
	var p position.Position
	p.P1Men = p.P1Men.Set(24).Set(25)
	p.P2Men = p.P2Men.Set(0)
	p.P1ToMove = false

	assert.Less(t, Evaluate(p), int32(0))
}

// TestCaptureSwingFavorsSideThreateningMoreCaptures sets up a position
// where P1 can capture P2's only man, while P2's landing square for
// the mutual back-capture is blocked by a second P1 man — so only P1
// has any capture swing.
func TestCaptureSwingFavorsSideThreateningMoreCaptures(t *testing.T) {
	var p position.Position
	p.P1Men = p.P1Men.Set(24).Set(28)
	p.P2Men = p.P2Men.Set(21)
	p.P1ToMove = true

	assert.Greater(t, Evaluate(p), int32(0))
}

func TestTrappedKingIsPenalized(t *testing.T) {
	// A P1 king in a corner surrounded by its own men has zero exits.
	var trapped position.Position
	trapped.P1Kings = trapped.P1Kings.Set(28)
	trapped.P1Men = trapped.P1Men.Set(24)
	trapped.P2Men = trapped.P2Men.Set(2)
	trapped.P1ToMove = true

	var free position.Position
	free.P1Kings = free.P1Kings.Set(14)
	free.P1Men = free.P1Men.Set(24)
	free.P2Men = free.P2Men.Set(2)
	free.P1ToMove = true

	assert.Less(t, Evaluate(trapped), Evaluate(free))
}
