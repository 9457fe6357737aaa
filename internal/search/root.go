package search

import (
	"github.com/tkopp/makhos/internal/config"
	"github.com/tkopp/makhos/internal/move"
	"github.com/tkopp/makhos/internal/movegen"
	"github.com/tkopp/makhos/internal/position"
)

// searchRoot runs one full-width alpha-beta pass at depth over every
// legal root move. Two scores are tracked per spec.md §4.7.5: the raw
// minimax score (returned and stored in the TT, used for alpha-beta
// comparisons) and an adjusted score (raw plus a finisher/mobility
// bonus) that influences which move is reported as best without
// touching the score reported to the caller or written to the TT.
func (s *searcher) searchRoot(root position.Position, moves []move.Move, depth int, alpha, beta int32) (move.Move, int32, bool) {
	ordered := sortRootMoves(root, moves)

	var bestMove move.Move
	bestRaw := negInf
	bestAdjusted := negInf
	hasBest := false

	for i, m := range ordered {
		if s.expired() && hasBest {
			break
		}
		child := movegen.ApplyMove(root, m)
		childMoves := movegen.Generate(child)
		extBudget := config.Settings.Search.ExtBudgetDefault
		if isKingsOnly(root) && (root.P1Kings|root.P2Kings).PopCount() <= 3 {
			extBudget = config.Settings.Search.ExtBudgetKings
		}
		d, budget, reduced := childDepth(depth, extBudget, len(ordered), m, child, childMoves, i)
		if reduced {
			s.lmrReductions++
		}

		var raw int32
		if i == 0 {
			raw = -s.search(child, d, -beta, -alpha, 1, budget)
		} else {
			raw = -s.search(child, d, -(alpha + 1), -alpha, 1, budget)
			if raw > alpha && (reduced || raw < beta) {
				raw = -s.search(child, depth-1, -beta, -alpha, 1, budget)
			}
		}

		adjusted := raw + rootAdjustment(root, m, child, childMoves)

		if !hasBest || adjusted > bestAdjusted {
			bestMove = m
			bestRaw = raw
			bestAdjusted = adjusted
			hasBest = true
		}
		if raw > alpha {
			alpha = raw
		}
	}

	return bestMove, bestRaw, hasBest
}

// rootAdjustment computes the selection-only bonus spec.md §4.7.5
// describes: a flat bonus for a move the finisher scan proves forces
// a win shortly, plus a mobility-drop bonus capped at RootMobilityCap.
func rootAdjustment(root position.Position, m move.Move, child position.Position, childMoves []move.Move) int32 {
	var bonus int32
	if finisherPly(root, m) != 0 {
		bonus += config.Settings.Search.RootFinisherBonus
	}
	mobilityDrop := int32(12 - len(childMoves))
	if mobilityDrop < 0 {
		mobilityDrop = 0
	}
	if mobilityDrop > config.Settings.Search.RootMobilityCap {
		mobilityDrop = config.Settings.Search.RootMobilityCap
	}
	bonus += mobilityDrop
	return bonus
}
