// Package move defines the Move type the generator, search and
// evaluator share: an ordered from/to pair, the chain of captured
// squares (empty for a quiet move) and a promotion flag.
//
// The rich Move struct is what movegen and search pass around. A
// separate 10-bit packed Key (spec.md §4.6: "from<<5 | to") is used
// only as the compact identity stored in the transposition table and
// the killer/history indices, mirroring the teacher's pkg/types.Move
// bit-packing but narrowed to what spec.md actually requires there.
package move

import "github.com/tkopp/makhos/internal/board"

// Move is one ply: a single piece moving from From to To, capturing
// (in order) the squares in Captured, optionally promoting.
type Move struct {
	From     board.Square
	To       board.Square
	Captured []board.Square
	Promote  bool
}

// None is the sentinel for "no move": both From and To are
// board.SquareNone, so it differs from the zero Move.
var None = Move{From: board.SquareNone, To: board.SquareNone}

// IsNone reports whether m is the None sentinel.
func (m Move) IsNone() bool {
	return m.From == board.SquareNone && m.To == board.SquareNone
}

// IsCapture reports whether m captures at least one piece.
func (m Move) IsCapture() bool { return len(m.Captured) > 0 }

// ChainLength returns the number of pieces captured by m.
func (m Move) ChainLength() int { return len(m.Captured) }

// Key packs From/To into the 10-bit identity used by the
// transposition table and killer/history tables: from<<5 | to.
type Key uint16

// Key returns m's packed from/to identity.
func (m Move) Key() Key {
	return Key(uint16(m.From)<<5 | uint16(m.To))
}

// Equal reports whether two moves have the same from/to/captured/promote.
func (m Move) Equal(o Move) bool {
	if m.From != o.From || m.To != o.To || m.Promote != o.Promote {
		return false
	}
	if len(m.Captured) != len(o.Captured) {
		return false
	}
	for i := range m.Captured {
		if m.Captured[i] != o.Captured[i] {
			return false
		}
	}
	return true
}
