package search

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tkopp/makhos/internal/config"
	"github.com/tkopp/makhos/internal/history"
	"github.com/tkopp/makhos/internal/logging"
	"github.com/tkopp/makhos/internal/move"
	"github.com/tkopp/makhos/internal/movegen"
	"github.com/tkopp/makhos/internal/position"
	"github.com/tkopp/makhos/internal/tt"
	"github.com/tkopp/makhos/internal/zobrist"
)

var out = message.NewPrinter(language.English)

// IterativeDeepening is the engine's single entry point for searching
// a position (spec.md §4.7.1). It deepens depth by depth up to
// MaxDepth, stopping early once timeMs milliseconds have elapsed, and
// reports completed iterations through onInfo. table may be reused
// across calls; a fresh one is allocated if nil.
func IterativeDeepening(p position.Position, timeMs int64, table *tt.Table, onInfo OnInfo) (Result, Statistics) {
	log := logging.GetSearchLog()

	if table == nil {
		table = tt.New(config.Settings.Search.TTSizeMB)
	}
	s := &searcher{tt: table, hist: history.New()}

	if p.IsDrawByInactivity() {
		log.Info(out.Sprintf("draw by inactivity at root, halfmove clock %d", p.HalfmoveClock))
		return Result{Score: 0, HasBest: false}, s.statistics()
	}

	if timeMs > 0 {
		s.deadline = time.Now().Add(time.Duration(timeMs) * time.Millisecond)
	}

	moves := movegen.Generate(p)
	if len(moves) == 0 {
		return Result{Score: -config.Settings.Search.Mate, HasBest: false}, s.statistics()
	}

	if bestMove, ok := rootFinisher(p, moves); ok {
		s.finisherHits++
		log.Info(out.Sprintf("root finisher found: %v", bestMove))
		return Result{Best: bestMove, HasBest: true, Score: finisherScore(), Depth: 0, Nodes: s.nodes}, s.statistics()
	}

	result := Result{}
	alpha, beta := negInf, posInf
	prevScore := int32(0)

	for depth := 1; depth <= config.Settings.Search.MaxDepth; depth++ {
		if s.expired() {
			break
		}

		if depth == 1 {
			alpha, beta = negInf, posInf
		} else {
			window := config.Settings.Search.AspirationWin
			alpha, beta = prevScore-window, prevScore+window
		}

		var bestMove move.Move
		var score int32
		var hasBest bool

		for {
			bestMove, score, hasBest = s.searchRoot(p, moves, depth, alpha, beta)
			if s.expired() && !hasBest {
				break
			}
			if score <= alpha {
				step := config.Settings.Search.AspirationStep
				alpha -= step
				if alpha < negInf {
					alpha = negInf
				}
				continue
			}
			if score >= beta {
				step := config.Settings.Search.AspirationStep
				beta += step
				if beta > posInf {
					beta = posInf
				}
				continue
			}
			break
		}

		if !hasBest {
			break
		}
		// A depth cut short by the deadline is discarded once an earlier
		// depth has completed.
		completed := !s.expired()
		if !completed && result.HasBest {
			break
		}

		result = Result{Best: bestMove, HasBest: true, Score: score, Depth: depth, Nodes: s.nodes}
		prevScore = score
		if completed {
			table.Store(zobrist.Hash(p), depth, score, bestMove.Key(), tt.Exact)
		}

		if onInfo != nil && completed {
			pv := extractPV(p, table, depth)
			onInfo(Info{Depth: depth, Score: score, Nodes: s.nodes, PV: pv})
		}
		log.Debug(out.Sprintf("depth %d score %d nodes %d", depth, score, s.nodes))
	}

	return result, s.statistics()
}

// extractPV walks the transposition table from p, following the
// stored best-move Key at each step and validating it against the
// legal move list before descending, stopping on a miss or a cycle.
func extractPV(p position.Position, table *tt.Table, maxLen int) []move.Move {
	var pv []move.Move
	cur := p
	seen := make(map[uint32]bool)
	for i := 0; i < maxLen; i++ {
		key := zobrist.Hash(cur)
		if seen[key] {
			break
		}
		seen[key] = true
		entry, ok := table.Probe(key)
		if !ok {
			break
		}
		moves := movegen.Generate(cur)
		var found move.Move
		hit := false
		for _, m := range moves {
			if m.Key() == entry.Move {
				found = m
				hit = true
				break
			}
		}
		if !hit {
			break
		}
		pv = append(pv, found)
		cur = movegen.ApplyMove(cur, found)
	}
	return pv
}
