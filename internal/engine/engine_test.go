package engine

import "testing"

func TestInitialPositionHasSevenMoves(t *testing.T) {
	p := InitialPosition()
	moves := GenerateMoves(p)
	if len(moves) != 7 {
		t.Fatalf("expected 7 legal opening moves, got %d", len(moves))
	}
}

func TestIterativeDeepeningReturnsAMoveFromTheOpeningPosition(t *testing.T) {
	e := New()
	result, stats := e.IterativeDeepening(InitialPosition(), 200, nil)
	if !result.HasBest {
		t.Fatal("expected a best move from the opening position")
	}
	if result.Depth < 1 {
		t.Fatalf("expected depth >= 1, got %d", result.Depth)
	}
	if stats.Nodes == 0 {
		t.Fatal("expected at least one node searched")
	}
}

func TestEngineSerializesReentrantCalls(t *testing.T) {
	e := New()
	done := make(chan struct{})
	go func() {
		e.IterativeDeepening(InitialPosition(), 50, nil)
		close(done)
	}()
	result, _ := e.IterativeDeepening(InitialPosition(), 50, nil)
	<-done
	if !result.HasBest {
		t.Fatal("expected a best move even when called concurrently")
	}
}

func TestTerminalAndDrawHelpers(t *testing.T) {
	p := InitialPosition()
	if IsTerminal(p) {
		t.Fatal("initial position must not be terminal")
	}
	if IsDrawByInactivity(p) {
		t.Fatal("initial position must not be a draw")
	}
}
