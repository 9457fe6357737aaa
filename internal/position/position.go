// Package position implements the Makhos position value type: four
// piece bitboards, side to move and the halfmove clock, plus the
// pure accessors and terminal/inactivity tests spec.md §4.2 requires.
//
// Positions are immutable values (spec.md §3 Lifecycle) — there is no
// do/undo stack here, unlike the teacher's mutable chess Position;
// movegen.ApplyMove returns a new value instead.
package position

import "github.com/tkopp/makhos/internal/board"

// Position is the engine's value type for one board state.
type Position struct {
	P1Men   board.Bitboard
	P1Kings board.Bitboard
	P2Men   board.Bitboard
	P2Kings board.Bitboard

	// P1ToMove is true when it is P1's turn. P1 moves toward row 0,
	// P2 moves toward row 7.
	P1ToMove bool

	// HalfmoveClock counts non-capture plies since the last capture.
	HalfmoveClock int
}

// InitialPosition returns the Makhos starting position: P2 men on
// squares 0..7, P1 men on squares 24..31, no kings, P1 to move.
func InitialPosition() Position {
	var p Position
	for s := board.Square(0); s < 8; s++ {
		p.P2Men = p.P2Men.Set(s)
	}
	for s := board.Square(24); s < board.NumSquares; s++ {
		p.P1Men = p.P1Men.Set(s)
	}
	p.P1ToMove = true
	return p
}

// Clone returns a shallow value copy. Since Position holds only value
// fields this is just `p` by value, named for readability at call
// sites that want an explicit copy.
func (p Position) Clone() Position { return p }

// MoverMen returns the bitboard of the side-to-move's men.
func (p Position) MoverMen() board.Bitboard {
	if p.P1ToMove {
		return p.P1Men
	}
	return p.P2Men
}

// MoverKings returns the bitboard of the side-to-move's kings.
func (p Position) MoverKings() board.Bitboard {
	if p.P1ToMove {
		return p.P1Kings
	}
	return p.P2Kings
}

// OpponentMen returns the bitboard of the opponent's men.
func (p Position) OpponentMen() board.Bitboard {
	if p.P1ToMove {
		return p.P2Men
	}
	return p.P1Men
}

// OpponentKings returns the bitboard of the opponent's kings.
func (p Position) OpponentKings() board.Bitboard {
	if p.P1ToMove {
		return p.P2Kings
	}
	return p.P1Kings
}

// MoverPieces returns all of the side-to-move's pieces.
func (p Position) MoverPieces() board.Bitboard { return p.MoverMen() | p.MoverKings() }

// OpponentPieces returns all of the opponent's pieces.
func (p Position) OpponentPieces() board.Bitboard { return p.OpponentMen() | p.OpponentKings() }

// Occupied returns the union of all four piece bitboards.
func (p Position) Occupied() board.Bitboard {
	return p.P1Men | p.P1Kings | p.P2Men | p.P2Kings
}

// TotalPieces and PieceCount below are convenience counters used
// throughout evaluation and the inactivity rule.

// TotalPieces returns the number of pieces of both sides on the board.
func (p Position) TotalPieces() int { return p.Occupied().PopCount() }

// PieceCount returns the number of pieces belonging to the given side
// (p1 == true for P1).
func (p Position) PieceCount(p1 bool) int {
	if p1 {
		return (p.P1Men | p.P1Kings).PopCount()
	}
	return (p.P2Men | p.P2Kings).PopCount()
}

// IsTerminal reports whether either side has zero pieces. It does not
// check whether the side to move has a legal move; callers detect that
// case through the move generator.
func (p Position) IsTerminal() bool {
	return p.PieceCount(true) == 0 || p.PieceCount(false) == 0
}

// IsDrawByInactivity implements the only built-in draw rule: each
// side has <= 2 pieces and the halfmove clock has reached 20.
func (p Position) IsDrawByInactivity() bool {
	return p.PieceCount(true) <= 2 && p.PieceCount(false) <= 2 && p.HalfmoveClock >= 20
}

// PromotionRow returns the row the side to move promotes on.
func (p Position) PromotionRow() int { return board.PromotionRow(p.P1ToMove) }

// OpponentPromotionRow returns the row the opponent promotes on.
func (p Position) OpponentPromotionRow() int { return board.PromotionRow(!p.P1ToMove) }
