// Package engine exposes the single synchronous entry point spec.md
// §1 and §4.8 describe: given a position and a time budget, search it
// and return a move, a score, the depth reached and a node count. It
// is a thin façade over internal/search, internal/movegen and
// internal/eval — the public surface a GUI, a self-play script or an
// ML training pipeline calls without reaching into the core packages
// directly.
//
// Grounded on the teacher's search.Search type: its
// NewSearch/StartSearch/WaitWhileSearching/LastSearchResult protocol
// is collapsed here into one blocking call, since spec.md §1 requires
// "a single synchronous entry point" rather than the teacher's
// asynchronous start/stop/wait dance (FrankyGo drives a UCI protocol
// with ponder/stop commands arriving on a separate goroutine; Makhos
// has no such external protocol to serve).
package engine

import (
	"context"

	"golang.org/x/sync/semaphore"

	"github.com/tkopp/makhos/internal/config"
	"github.com/tkopp/makhos/internal/eval"
	"github.com/tkopp/makhos/internal/move"
	"github.com/tkopp/makhos/internal/movegen"
	"github.com/tkopp/makhos/internal/position"
	"github.com/tkopp/makhos/internal/search"
	"github.com/tkopp/makhos/internal/tt"
)

// Engine owns a transposition table that may be reused across
// IterativeDeepening calls (spec.md §4.6/§5: the TT may persist across
// invocations when the caller is playing one game). Concurrent
// IterativeDeepening calls from multiple goroutines do not run in
// parallel: running is a binary semaphore borrowed from the teacher's
// isRunning/initSemaphore pattern so a second call serializes behind
// the first instead of racing the shared TT.
type Engine struct {
	tt      *tt.Table
	running *semaphore.Weighted
}

// New creates an Engine without a transposition table; a fresh,
// default-sized table is allocated on the first IterativeDeepening
// call.
func New() *Engine {
	return &Engine{running: semaphore.NewWeighted(1)}
}

// NewWithTable creates an Engine reusing a caller-supplied table,
// e.g. one kept alive across the moves of a single game.
func NewWithTable(table *tt.Table) *Engine {
	return &Engine{tt: table, running: semaphore.NewWeighted(1)}
}

// IterativeDeepening searches root for up to timeMs milliseconds and
// returns the best move found, its score, the depth reached and the
// node count, plus internal statistics. onInfo, if non-nil, is called
// synchronously after every completed depth (spec.md §4.8).
func (e *Engine) IterativeDeepening(root position.Position, timeMs int64, onInfo search.OnInfo) (search.Result, search.Statistics) {
	_ = e.running.Acquire(context.Background(), 1)
	defer e.running.Release(1)

	if e.tt == nil {
		e.tt = tt.New(config.Settings.Search.TTSizeMB)
	}
	return search.IterativeDeepening(root, timeMs, e.tt, onInfo)
}

// GenerateMoves returns the legal moves for the side to move at p,
// forced-maximum-capture filtered per spec.md §4.3. Re-exported so
// callers never need to import internal/movegen directly.
func GenerateMoves(p position.Position) []move.Move {
	return movegen.Generate(p)
}

// ApplyMove returns the position reached by playing m from p. m must
// have come from GenerateMoves(p); behavior is undefined otherwise
// (spec.md §7).
func ApplyMove(p position.Position, m move.Move) position.Position {
	return movegen.ApplyMove(p, m)
}

// InitialPosition returns the Makhos starting position.
func InitialPosition() position.Position {
	return position.InitialPosition()
}

// IsTerminal reports whether either side has zero pieces.
func IsTerminal(p position.Position) bool {
	return p.IsTerminal()
}

// IsDrawByInactivity reports the piece-scarcity inactivity draw rule
// (spec.md §3): each side has <=2 pieces and the halfmove clock is
// >=20.
func IsDrawByInactivity(p position.Position) bool {
	return p.IsDrawByInactivity()
}

// Evaluate returns the static evaluation of p from the side-to-move's
// perspective.
func Evaluate(p position.Position) int32 {
	return eval.Evaluate(p)
}
