// Package history holds the per-invocation move-ordering tables the
// search consults: two killer-move slots per ply and a history score
// indexed by packed move identity (spec.md §4.7.4 step 5).
//
// Narrowed from the teacher's internal/history/history.go
// (HistoryCount[2][64][64]int64, CounterMoves[64][64]Move, one entry
// per color/from/to triple on a 64-square chessboard) down to the
// single 1024-entry table spec.md §4.9 asks for: Makhos has only 32
// squares, so a packed 10-bit from<<5|to key already fits every
// reachable (from, to) pair, and there is no per-color split since
// killers/history are cleared fresh every search invocation anyway.
package history

import "github.com/tkopp/makhos/internal/move"

// MaxPly bounds the killer table, matching the recursive search's own
// ply cap (spec.md §4.7.4 step 1).
const MaxPly = 96

// tableSize covers every packed 10-bit move key (from<<5 | to, from
// and to each in 0..31).
const tableSize = 1024

// Tables holds one search invocation's killer and history data. A
// fresh Tables is created per call to the iterative deepening driver
// (spec.md §5: "Killers, history: fresh per invocation").
type Tables struct {
	killers [MaxPly][2]move.Move
	history [tableSize]int32
}

// New returns an empty Tables ready for one search invocation, with
// every killer slot set to move.None.
func New() *Tables {
	t := &Tables{}
	for ply := range t.killers {
		t.killers[ply][0], t.killers[ply][1] = move.None, move.None
	}
	return t
}

// Killers returns the two killer moves recorded at ply, in slot order.
func (t *Tables) Killers(ply int) (move.Move, move.Move) {
	return t.killers[ply][0], t.killers[ply][1]
}

// AddKiller records m as the newest killer at ply, demoting the
// previous killer0 to killer1. Quiet beta-cutoff moves only (spec.md
// §4.7.4 step 6).
func (t *Tables) AddKiller(ply int, m move.Move) {
	if t.killers[ply][0].Equal(m) {
		return
	}
	t.killers[ply][1] = t.killers[ply][0]
	t.killers[ply][0] = m
}

// History returns the accumulated history score for a move's packed key.
func (t *Tables) History(m move.Move) int32 {
	return t.history[m.Key()]
}

// AddHistory bumps the history score for a move by bonus (depth² at a
// beta cutoff, per spec.md §4.7.4 step 6).
func (t *Tables) AddHistory(m move.Move, bonus int32) {
	t.history[m.Key()] += bonus
}
