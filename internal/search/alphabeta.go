package search

import (
	"sort"
	"time"

	"github.com/tkopp/makhos/internal/config"
	"github.com/tkopp/makhos/internal/eval"
	"github.com/tkopp/makhos/internal/history"
	"github.com/tkopp/makhos/internal/move"
	"github.com/tkopp/makhos/internal/movegen"
	"github.com/tkopp/makhos/internal/position"
	"github.com/tkopp/makhos/internal/tt"
	"github.com/tkopp/makhos/internal/zobrist"
)

// searcher holds the mutable state scoped to one IterativeDeepening
// invocation: the TT (may be supplied by the caller and outlive the
// invocation), killers/history (always fresh), the deadline and the
// node counter. Never touched by more than one goroutine (spec.md §5:
// strictly single-threaded).
type searcher struct {
	tt       *tt.Table
	hist     *history.Tables
	deadline time.Time

	nodes          uint64
	killerCutoffs  uint64
	historyCutoffs uint64
	lmrReductions  uint64
	finisherHits   uint64
}

func (s *searcher) expired() bool {
	return !s.deadline.IsZero() && !time.Now().Before(s.deadline)
}

// search is the recursive alpha-beta search for ply > 0 (spec.md
// §4.7.4): TT probe, forced-capture move generation, PVS with
// extensions and late-move reduction, killer/history ordering,
// quiescence at depth 0.
func (s *searcher) search(p position.Position, depth int, alpha, beta int32, ply int, extBudget int) int32 {
	s.nodes++

	maxPly := config.Settings.Search.MaxPly
	if ply >= maxPly || s.expired() {
		return eval.Evaluate(p)
	}
	if depth <= 0 {
		return s.quiescence(p, alpha, beta, ply)
	}

	origAlpha := alpha
	key := zobrist.Hash(p)

	var ttMoveKey move.Key
	hasTTMove := false
	if entry, ok := s.tt.Probe(key); ok {
		hasTTMove = true
		ttMoveKey = entry.Move
		if entry.Depth >= depth {
			switch entry.Bound {
			case tt.Exact:
				return entry.Score
			case tt.Lower:
				if entry.Score > alpha {
					alpha = entry.Score
				}
			case tt.Upper:
				if entry.Score < beta {
					beta = entry.Score
				}
			}
			if alpha >= beta {
				return entry.Score
			}
		}
	}

	moves := movegen.Generate(p)
	if len(moves) == 0 {
		return -(config.Settings.Search.Mate - int32(ply))
	}
	moves = orderMoves(moves, ttMoveKey, hasTTMove, s.hist, ply)

	bestScore := negInf
	var bestMove move.Move
	hasBestMove := false

	for i, m := range moves {
		if s.expired() {
			break
		}
		child := movegen.ApplyMove(p, m)
		childMoves := movegen.Generate(child)

		d, budget, reduced := childDepth(depth, extBudget, len(moves), m, child, childMoves, i)
		if reduced {
			s.lmrReductions++
		}

		var score int32
		if i == 0 {
			score = -s.search(child, d, -beta, -alpha, ply+1, budget)
		} else {
			score = -s.search(child, d, -(alpha + 1), -alpha, ply+1, budget)
			if score > alpha && (reduced || score < beta) {
				score = -s.search(child, depth-1, -beta, -alpha, ply+1, budget)
			}
		}

		if !hasBestMove || score > bestScore {
			bestScore = score
			bestMove = m
			hasBestMove = true
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			if !m.IsCapture() {
				killer0, killer1 := s.hist.Killers(ply)
				if m.Equal(killer0) || m.Equal(killer1) {
					s.killerCutoffs++
				} else {
					s.historyCutoffs++
				}
				s.hist.AddKiller(ply, m)
				s.hist.AddHistory(m, int32(depth*depth))
			}
			break
		}
	}

	if !hasBestMove {
		return eval.Evaluate(p)
	}

	bound := tt.Exact
	switch {
	case bestScore <= origAlpha:
		bound = tt.Upper
	case bestScore >= beta:
		bound = tt.Lower
	}
	s.tt.Store(key, depth, bestScore, bestMove.Key(), bound)

	return bestScore
}

// childDepth computes the extension/LMR-adjusted depth for one move
// in the loop, following spec.md §4.7.4 step 6. It returns the
// depth to search at, the extension budget to pass to the recursive
// call, and whether LMR reduced this move (needed by the PVS
// re-search rule).
func childDepth(depth, extBudget, numMoves int, m move.Move, child position.Position, childMoves []move.Move, moveIndex int) (d, budget int, reduced bool) {
	budget = extBudget
	d = depth - 1

	if budget > 0 && numMoves == 1 {
		budget--
		d++
	}
	if budget > 0 && isInteresting(child, childMoves) {
		budget--
		d++
	}
	if d > depth {
		d = depth
	}
	if d < 0 {
		d = 0
	}

	if moveIndex >= config.Settings.Search.LMRMinMoveIdx &&
		!m.IsCapture() &&
		d >= config.Settings.Search.LMRMinDepth &&
		numMoves > 2 &&
		len(childMoves) != 1 {
		d--
		reduced = true
	}
	return d, budget, reduced
}

func isInteresting(child position.Position, childMoves []move.Move) bool {
	if child.TotalPieces() <= 5 {
		return true
	}
	if len(childMoves) > 0 && childMoves[0].IsCapture() {
		return true
	}
	return len(childMoves) == 1
}

// quiescence implements spec.md §4.7.6: stand-pat, then captures
// only, sorted by descending chain length, searched with a negated
// window until a beta cutoff or the capture list is exhausted.
func (s *searcher) quiescence(p position.Position, alpha, beta int32, ply int) int32 {
	s.nodes++

	if ply >= config.Settings.Search.MaxPly || s.expired() {
		return eval.Evaluate(p)
	}

	stand := eval.Evaluate(p)
	if stand >= beta {
		return stand
	}
	if stand > alpha {
		alpha = stand
	}

	moves := movegen.Generate(p)
	var captures []move.Move
	for _, m := range moves {
		if m.IsCapture() {
			captures = append(captures, m)
		}
	}
	sort.SliceStable(captures, func(i, j int) bool { return captures[i].ChainLength() > captures[j].ChainLength() })

	for _, m := range captures {
		if s.expired() {
			break
		}
		child := movegen.ApplyMove(p, m)
		score := -s.quiescence(child, -beta, -alpha, ply+1)
		if score >= beta {
			return score
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}
