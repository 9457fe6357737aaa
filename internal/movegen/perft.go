package movegen

import "github.com/tkopp/makhos/internal/position"

// Perft counts leaf positions reached after playing out depth plies of
// every legal move from p, recursing through Generate/ApplyMove. It
// is the node-count pinning harness spec.md §8 invariant 8 asks for,
// grounded on the teacher's movegen/perft.go recursive counter.
func Perft(p position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	for _, m := range Generate(p) {
		nodes += Perft(ApplyMove(p, m), depth-1)
	}
	return nodes
}
