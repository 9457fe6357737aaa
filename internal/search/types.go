// Package search implements the iterative-deepening alpha-beta search
// spec.md §4.7 describes: PVS, aspiration windows, late-move
// reduction, killer/history ordering, extensions, a root finisher
// scan for short forced wins, and quiescence over captures.
//
// Grounded on the teacher's internal/search/{search.go,alphabeta.go}:
// the root-search/interior-search split, the TT-probe-then-move-loop
// shape, and the PVS null-window-then-research pattern all follow the
// teacher directly. The finisher scan and root-ordering formula have
// no teacher analogue (chess has no forced-maximum-capture rule to
// search shallowly for) and are new, written in the teacher's own
// "separate root pass ahead of the normal move loop" style.
package search

import "github.com/tkopp/makhos/internal/move"

// negInf/posInf bound the search window before any aspiration
// narrowing; comfortably inside int32 range alongside the mate score.
const (
	negInf int32 = -2_000_000_000
	posInf int32 = 2_000_000_000
)

// Result is what IterativeDeepening returns: the best move found (if
// any), its score from the mover's perspective, the depth reached and
// the cumulative node count for the invocation.
type Result struct {
	Best    move.Move
	HasBest bool
	Score   int32
	Depth   int
	Nodes   uint64
}

// Info is delivered to an optional OnInfo callback after each
// completed iterative-deepening depth (spec.md §4.8).
type Info struct {
	Depth int
	Score int32
	Nodes uint64
	PV    []move.Move
}

// OnInfo is invoked synchronously once per completed depth.
type OnInfo func(Info)
