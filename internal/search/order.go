package search

import (
	"sort"

	"github.com/tkopp/makhos/internal/config"
	"github.com/tkopp/makhos/internal/history"
	"github.com/tkopp/makhos/internal/move"
	"github.com/tkopp/makhos/internal/movegen"
	"github.com/tkopp/makhos/internal/position"
	"github.com/tkopp/makhos/internal/zobrist"
)

// sortRootMoves orders the root move list per spec.md §4.7.3: forced
// finishers first, then a mobility-drop bonus, an anti-suicide
// penalty, and a deterministic per-move tiebreak so ties stay
// reproducible across runs.
func sortRootMoves(root position.Position, moves []move.Move) []move.Move {
	rootHash := zobrist.Hash(root)
	type scored struct {
		m move.Move
		s int32
	}
	scoredMoves := make([]scored, len(moves))
	for i, m := range moves {
		scoredMoves[i] = scored{m, rootOrderScore(root, rootHash, m)}
	}
	sort.SliceStable(scoredMoves, func(i, j int) bool { return scoredMoves[i].s > scoredMoves[j].s })
	out := make([]move.Move, len(moves))
	for i, sm := range scoredMoves {
		out[i] = sm.m
	}
	return out
}

func rootOrderScore(root position.Position, rootHash uint32, m move.Move) int32 {
	var score int32
	finish := finisherPly(root, m)
	switch finish {
	case 2:
		score += config.Settings.Search.FinisherWin2Score
	case 3:
		score += config.Settings.Search.FinisherWin3Score
	}

	child := movegen.ApplyMove(root, m)
	oppReplies := movegen.Generate(child)

	mobilityDrop := 12 - len(oppReplies)
	if mobilityDrop < 0 {
		mobilityDrop = 0
	}
	scale := int32(2)
	switch {
	case isKingsOnly(child) && (child.P1Kings|child.P2Kings).PopCount() <= 3:
		scale = 6
	case isKingsOnly(child):
		scale = 4
	}
	score += scale * int32(mobilityDrop)

	if len(oppReplies) > 0 && oppReplies[0].IsCapture() && finish == 0 {
		score -= 200
	}

	score += int32((rootHash ^ uint32(m.Key())) & 0x7)
	return score
}

func isKingsOnly(p position.Position) bool {
	return p.P1Men == 0 && p.P2Men == 0 && (p.P1Kings|p.P2Kings) != 0
}

// orderMoves orders an interior node's moves per spec.md §4.7.4 step
// 5: TT move, then captures scaled by chain length, then killers,
// history score, and a promoting-quiet bonus.
func orderMoves(moves []move.Move, ttMove move.Key, hasTT bool, hist *history.Tables, ply int) []move.Move {
	killer0, killer1 := hist.Killers(ply)
	type scored struct {
		m move.Move
		s int64
	}
	scoredMoves := make([]scored, len(moves))
	for i, m := range moves {
		var s int64
		if hasTT && m.Key() == ttMove {
			s += 1_000_000
		}
		if m.IsCapture() {
			s += 10_000 * int64(m.ChainLength())
		}
		if m.Equal(killer0) {
			s += 5000
		} else if m.Equal(killer1) {
			s += 4000
		}
		s += int64(hist.History(m))
		if m.Promote && !m.IsCapture() {
			s += 1500
		}
		scoredMoves[i] = scored{m, s}
	}
	sort.SliceStable(scoredMoves, func(i, j int) bool { return scoredMoves[i].s > scoredMoves[j].s })
	out := make([]move.Move, len(moves))
	for i, sm := range scoredMoves {
		out[i] = sm.m
	}
	return out
}
