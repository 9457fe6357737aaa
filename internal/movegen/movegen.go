// Package movegen implements the Makhos move generator: quiet moves
// and forced capture chains for men and flying kings, with the
// maximum-length capture rule enforced (spec.md §4.3, the normative
// variant per spec.md §9).
//
// The capture-chain search is a pure recursion over bitboard
// snapshots passed by value, following the design note in spec.md §9:
// no mutation-and-rollback "state machine across jumps", just a DFS
// that forks a new effective-occupancy bitboard at each jump. This is
// new relative to the teacher (chess captures are single-ply and have
// no analogue for chained multi-capture search). Each jump copies the
// captured-squares list into a fresh slice for its branch, so sibling
// branches never share one.
package movegen

import (
	"sort"

	"github.com/tkopp/makhos/internal/board"
	"github.com/tkopp/makhos/internal/move"
	"github.com/tkopp/makhos/internal/position"
)

// forward direction sets, in the fixed DFS order UL, UR, DL, DR
// (spec.md §5 determinism requirement).
var (
	p1ForwardDirs = []board.Direction{board.UL, board.UR}
	p2ForwardDirs = []board.Direction{board.DL, board.DR}
	allDirs       = []board.Direction{board.UL, board.UR, board.DL, board.DR}
)

func forwardDirs(p1ToMove bool) []board.Direction {
	if p1ToMove {
		return p1ForwardDirs
	}
	return p2ForwardDirs
}

// Generate returns the legal moves for the side to move: the forced
// maximum-length capture set if any capture exists, otherwise the
// quiet moves. The returned order is the generator's own (men before
// kings, each in ascending square order); search re-orders it for
// move ordering.
func Generate(p position.Position) []move.Move {
	captures := generateCaptures(p)
	if len(captures) > 0 {
		return filterMaxLength(captures)
	}
	return generateQuiet(p)
}

func filterMaxLength(moves []move.Move) []move.Move {
	maxLen := 0
	for _, m := range moves {
		if m.ChainLength() > maxLen {
			maxLen = m.ChainLength()
		}
	}
	out := moves[:0:0]
	for _, m := range moves {
		if m.ChainLength() == maxLen {
			out = append(out, m)
		}
	}
	return out
}

// generateCaptures enumerates every maximal capture chain for every
// friendly piece, men first then kings, each in ascending square
// order.
func generateCaptures(p position.Position) []move.Move {
	oppOcc := p.OpponentMen() | p.OpponentKings()
	promoRow := p.PromotionRow()

	var out []move.Move
	for _, sq := range p.MoverMen().Squares() {
		effOcc := p.Occupied().Clear(sq)
		out = append(out, chainCaptures(sq, sq, true, p.P1ToMove, oppOcc, effOcc, nil, promoRow)...)
	}
	for _, sq := range p.MoverKings().Squares() {
		effOcc := p.Occupied().Clear(sq)
		out = append(out, chainCaptures(sq, sq, false, p.P1ToMove, oppOcc, effOcc, nil, promoRow)...)
	}
	return out
}

// chainCaptures performs one DFS step of a capture chain for a piece
// originally at startSq, currently at cur. isMan selects man-only
// forward captures vs. flying-king captures. It returns the leaf
// moves reached from this node: either further chained captures, or
// this node itself if no further capture exists (or promotion fired).
func chainCaptures(startSq, cur board.Square, isMan bool, p1ToMove bool, oppOcc, effOcc board.Bitboard, captured []board.Square, promoRow int) []move.Move {
	type jump struct {
		over, land board.Square
	}
	var jumps []jump

	if isMan {
		for _, d := range forwardDirs(p1ToMove) {
			over := board.Step(cur, d)
			if over == board.SquareNone || !isEnemy(over, oppOcc, effOcc) {
				continue
			}
			land := board.Step(over, d)
			if land == board.SquareNone || effOcc.Test(land) {
				continue
			}
			jumps = append(jumps, jump{over, land})
		}
	} else {
		for _, d := range allDirs {
			walk := cur
			for {
				next := board.Step(walk, d)
				if next == board.SquareNone {
					break
				}
				if !effOcc.Test(next) {
					walk = next
					continue
				}
				// next is occupied: only the first piece on the ray matters.
				if isEnemy(next, oppOcc, effOcc) {
					land := board.Step(next, d)
					if land != board.SquareNone && !effOcc.Test(land) {
						jumps = append(jumps, jump{next, land})
					}
				}
				break
			}
		}
	}

	if len(jumps) == 0 {
		// no further capture: this is a leaf.
		return []move.Move{leafMove(startSq, cur, captured, false)}
	}

	var out []move.Move
	for _, j := range jumps {
		newCaptured := append(append([]board.Square{}, captured...), j.over)
		newEffOcc := effOcc.Clear(j.over)
		if isMan && j.land.RowOf() == promoRow {
			// promotion terminates the chain immediately.
			out = append(out, leafMove(startSq, j.land, newCaptured, true))
			continue
		}
		out = append(out, chainCaptures(startSq, j.land, isMan, p1ToMove, oppOcc, newEffOcc, newCaptured, promoRow)...)
	}
	return out
}

func isEnemy(sq board.Square, oppOcc, effOcc board.Bitboard) bool {
	return oppOcc.Test(sq) && effOcc.Test(sq)
}

func leafMove(from, to board.Square, captured []board.Square, promote bool) move.Move {
	return move.Move{From: from, To: to, Captured: captured, Promote: promote}
}

// generateQuiet enumerates non-capturing moves: one forward step for
// men, any empty square along each ray for kings.
func generateQuiet(p position.Position) []move.Move {
	occ := p.Occupied()
	promoRow := p.PromotionRow()

	var out []move.Move
	for _, sq := range p.MoverMen().Squares() {
		for _, d := range forwardDirs(p.P1ToMove) {
			to := board.Step(sq, d)
			if to == board.SquareNone || occ.Test(to) {
				continue
			}
			out = append(out, move.Move{From: sq, To: to, Promote: to.RowOf() == promoRow})
		}
	}
	for _, sq := range p.MoverKings().Squares() {
		for _, d := range allDirs {
			r := board.Walk(sq, d)
			for {
				to, ok := r.Next()
				if !ok || occ.Test(to) {
					break
				}
				out = append(out, move.Move{From: sq, To: to})
			}
		}
	}
	return out
}

// ApplyMove returns the position resulting from playing m in p. The
// caller must obtain m from Generate(p) on the same p; behavior is
// otherwise undefined (spec.md §7).
func ApplyMove(p position.Position, m move.Move) position.Position {
	np := p

	moverMen, moverKings := np.MoverMen(), np.MoverKings()
	isMan := moverMen.Test(m.From)

	if isMan {
		moverMen = moverMen.Clear(m.From)
		if m.Promote {
			moverKings = moverKings.Set(m.To)
		} else {
			moverMen = moverMen.Set(m.To)
		}
	} else {
		moverKings = moverKings.Clear(m.From).Set(m.To)
	}

	oppMen, oppKings := np.OpponentMen(), np.OpponentKings()
	for _, sq := range m.Captured {
		oppMen = oppMen.Clear(sq)
		oppKings = oppKings.Clear(sq)
	}

	if np.P1ToMove {
		np.P1Men, np.P1Kings = moverMen, moverKings
		np.P2Men, np.P2Kings = oppMen, oppKings
	} else {
		np.P2Men, np.P2Kings = moverMen, moverKings
		np.P1Men, np.P1Kings = oppMen, oppKings
	}

	np.P1ToMove = !np.P1ToMove
	if m.IsCapture() {
		np.HalfmoveClock = 0
	} else {
		np.HalfmoveClock = p.HalfmoveClock + 1
	}
	return np
}

// SortedByFromTo returns a copy of moves sorted by (from, to), used to
// pin reference move lists in tests (spec.md §8 scenario S1).
func SortedByFromTo(moves []move.Move) []move.Move {
	out := append([]move.Move{}, moves...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})
	return out
}
