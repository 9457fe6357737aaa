package search

import (
	"testing"

	"github.com/tkopp/makhos/internal/board"
	"github.com/tkopp/makhos/internal/movegen"
	"github.com/tkopp/makhos/internal/position"
)

// TestRootFinisherFindsImmediateWin exercises spec.md §8 invariant 11
// and scenario S7: a lone P1 man can capture the only P2 piece,
// leaving P2 with zero pieces and thus zero legal moves, a forced win
// in one ply. The finisher scan must find it without a full search.
func TestRootFinisherFindsImmediateWin(t *testing.T) {
	var p position.Position
	p.P1Men = p.P1Men.Set(24)
	p.P2Men = p.P2Men.Set(21)
	p.P1ToMove = true

	moves := movegen.Generate(p)
	best, ok := rootFinisher(p, moves)
	if !ok {
		t.Fatal("expected a forced-win move from the finisher scan")
	}
	if best.From != board.Square(24) || !best.IsCapture() {
		t.Fatalf("expected the capturing move from 24, got %v", best)
	}
}

// TestRootFinisherNoWinReturnsFalse guards against false positives:
// the initial position is not a forced win for either side at the
// shallow depths the finisher scan checks.
func TestRootFinisherNoWinReturnsFalse(t *testing.T) {
	p := position.InitialPosition()
	moves := movegen.Generate(p)
	if _, ok := rootFinisher(p, moves); ok {
		t.Fatal("initial position must not be reported as a forced win")
	}
}

// TestIterativeDeepeningPicksImmediateWin is spec.md §8 scenario S7 at
// the IterativeDeepening level: the engine must return the capturing
// move that clears the board of the opponent's last piece.
func TestIterativeDeepeningPicksImmediateWin(t *testing.T) {
	var p position.Position
	p.P1Men = p.P1Men.Set(24)
	p.P2Men = p.P2Men.Set(21)
	p.P1ToMove = true

	result, _ := IterativeDeepening(p, 100, nil, nil)
	if !result.HasBest {
		t.Fatal("expected a best move")
	}
	if !result.Best.IsCapture() || result.Best.From != board.Square(24) {
		t.Fatalf("expected the winning capture from 24, got %v", result.Best)
	}
}
