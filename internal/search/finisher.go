package search

import (
	"github.com/tkopp/makhos/internal/config"
	"github.com/tkopp/makhos/internal/move"
	"github.com/tkopp/makhos/internal/movegen"
	"github.com/tkopp/makhos/internal/position"
)

// The root finisher scan (spec.md §4.7.2) looks for a short forced
// win before searching move by move. "Forced win in N plies" is
// counted the way checkers/chess mate problems conventionally count
// it: by the WINNING side's own moves, not raw half-moves — mate in 2
// means the mover's move plus one more mover move, with the
// opponent's reply in between unconstrained to mover's choosing but
// covered for every possibility. isOpponentDoomed/hasWinningContinuation
// below is a direct OR/AND mate search budgeted that way: a budget of
// N-1 remaining mover moves (the root move itself is the 1st).

// isOpponentDoomed reports whether q (opponent to move) is lost no
// matter which legal reply it plays, using up to moverMovesLeft more
// moves by the mover to finish the job.
func isOpponentDoomed(q position.Position, moverMovesLeft int) bool {
	replies := movegen.Generate(q)
	if len(replies) == 0 {
		return true
	}
	if moverMovesLeft <= 0 {
		return false
	}
	for _, r := range replies {
		if !hasWinningContinuation(movegen.ApplyMove(q, r), moverMovesLeft) {
			return false
		}
	}
	return true
}

// hasWinningContinuation reports whether the mover (to move at p) has
// some move that leaves the opponent doomed within moverMovesLeft-1
// further mover moves.
func hasWinningContinuation(p position.Position, moverMovesLeft int) bool {
	for _, m := range movegen.Generate(p) {
		if isOpponentDoomed(movegen.ApplyMove(p, m), moverMovesLeft-1) {
			return true
		}
	}
	return false
}

// finisherPly returns 2 or 3 if playing m from root is a forced win
// within that many of the mover's own moves (the root move counting
// as the first), or 0 if neither holds.
func finisherPly(root position.Position, m move.Move) int {
	after := movegen.ApplyMove(root, m)
	if isOpponentDoomed(after, 1) {
		return 2
	}
	if isOpponentDoomed(after, 2) {
		return 3
	}
	return 0
}

// rootFinisher scans every legal root move for a forced win in 2 or 3
// of the mover's own moves and returns the shortest one found. A hit
// short-circuits the whole search: spec.md §4.7.2 says to "return it
// with score +900 000 without further search".
func rootFinisher(root position.Position, moves []move.Move) (move.Move, bool) {
	for _, m := range moves {
		if isOpponentDoomed(movegen.ApplyMove(root, m), 1) {
			return m, true
		}
	}
	for _, m := range moves {
		if isOpponentDoomed(movegen.ApplyMove(root, m), 2) {
			return m, true
		}
	}
	return move.None, false
}

// finisherScore is the fixed score the finisher scan reports,
// regardless of whether the win was found at 2 or 3 plies (spec.md
// §4.7.2 gives one flat value for the short-circuit path; the 2-vs-3
// distinction only matters for the root-ordering bonus in §4.7.3).
func finisherScore() int32 { return config.Settings.Search.FinisherWin3Score }
