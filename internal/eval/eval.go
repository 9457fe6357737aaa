// Package eval implements the static position evaluator: a
// phase-blended weighted sum of material, mobility, center control,
// promotion progress, back-rank guards, king proximity, trapped
// kings, capture-swing and simplification terms (spec.md §4.4).
//
// The accumulation style follows the teacher's
// internal/evaluator/evaluator.go: one component at a time, each
// contributing `(mover's - opponent's) * weight` to a running total,
// rather than a single monolithic formula. Unlike the teacher there is
// no separate mid/end Score pair blended at the very end — Makhos has
// no distinct midgame/endgame piece-square tables, so the phase blend
// here only adjusts a handful of weights (king value, promotion
// progress weight, simplification weight, capture-swing weight)
// directly. The remaining fixed weights (material, mobility, center,
// back-rank guard, king proximity, trapped king, and the capture-swing
// and capture-target bases) are read from config.Settings.Eval, the
// way the teacher's evaluator reads config.Settings.Eval.* throughout
// evaluator/evaluator.go, instead of being hardcoded here.
package eval

import (
	"github.com/tkopp/makhos/internal/board"
	"github.com/tkopp/makhos/internal/config"
	"github.com/tkopp/makhos/internal/movegen"
	"github.com/tkopp/makhos/internal/position"
)

// starting piece count used to normalize the game-phase factor.
const startingPieces = 16

// the fixed DFS direction order used throughout the engine.
var allDirs = []board.Direction{board.UL, board.UR, board.DL, board.DR}

// Evaluate returns an integer score from the side-to-move's
// perspective. Higher is better for the side to move.
func Evaluate(p position.Position) int32 {
	gp := clamp01(float64(p.TotalPieces()) / startingPieces)
	eg := 1 - gp

	moverMen := p.MoverMen().PopCount()
	moverKings := p.MoverKings().PopCount()
	oppMen := p.OpponentMen().PopCount()
	oppKings := p.OpponentKings().PopCount()
	oppTotal := oppMen + oppKings

	leader := (moverMen + 2*moverKings) > (oppMen + 2*oppKings)

	wKing := kingWeight(eg, leader, oppTotal)
	wPromoteProgress := 6 + round(6*eg)
	wSimplification := simplificationWeight(eg, leader, oppTotal)
	ew := config.Settings.Eval
	wCaptureSwing := int(ew.CaptureSwing)
	if eg >= 0.7 {
		wCaptureSwing += 20
	}
	wCaptureTargets := int(ew.CaptureTargets) + round(4*eg)

	var score int32

	// Material.
	score += int32(wKing) * int32(moverKings-oppKings)
	score += ew.ManValue * int32(moverMen-oppMen)

	// Mobility.
	moverManMob, moverKingMob := mobility(p, p.P1ToMove)
	oppManMob, oppKingMob := mobility(p, !p.P1ToMove)
	score += ew.MobilityMen * int32(moverManMob-oppManMob)
	score += ew.MobilityKing * int32(moverKingMob-oppKingMob)

	// Center control.
	score += ew.Center * int32(centerCount(p.MoverMen()|p.MoverKings())-centerCount(p.OpponentMen()|p.OpponentKings()))

	// Promotion progress: lower distance sum is better, so the sign is
	// opponent-minus-mover (spec.md §4.4).
	ourSum := promotionDistanceSum(p.MoverMen(), p.P1ToMove)
	theirSum := promotionDistanceSum(p.OpponentMen(), !p.P1ToMove)
	score += int32(wPromoteProgress) * int32(theirSum-ourSum) / 10

	// Back-rank guards.
	score += ew.BackRankGuard * int32(backRankGuards(p.MoverMen(), p.P1ToMove)-backRankGuards(p.OpponentMen(), !p.P1ToMove))

	// King proximity.
	moverProx := kingProximityScore(p.MoverKings(), p.OpponentPieces())
	oppProx := kingProximityScore(p.OpponentKings(), p.MoverPieces())
	score += ew.KingProximity * int32(moverProx-oppProx)

	// Trapped kings.
	moverTrapped := trappedKings(p.MoverKings(), p.Occupied())
	oppTrapped := trappedKings(p.OpponentKings(), p.Occupied())
	score += ew.TrappedKing * int32(moverTrapped-oppTrapped)

	// Capture swing.
	ourChain, ourThreats := swingFor(p, p.P1ToMove)
	theirChain, theirThreats := swingFor(p, !p.P1ToMove)
	score += int32(wCaptureSwing) * int32(ourChain-theirChain)
	score += int32(wCaptureTargets) * int32(ourThreats-theirThreats)

	// Simplification.
	lead := 0
	switch {
	case leader:
		lead = 1
	case (moverMen + 2*moverKings) < (oppMen + 2*oppKings):
		lead = -1
	}
	score += int32(lead) * int32(wSimplification) * int32(startingPieces-p.TotalPieces())

	// Endgame finishers.
	if leader && oppTotal == 1 {
		score += 140
	}
	if leader && oppTotal <= 2 {
		score += 70
	}

	return score
}

func kingWeight(eg float64, leader bool, oppTotal int) int {
	w := 210
	if eg >= 0.5 && leader {
		w -= 60
	}
	if eg >= 0.8 && leader && oppTotal <= 2 {
		w -= 90
	}
	return w
}

func simplificationWeight(eg float64, leader bool, oppTotal int) int {
	w := 6
	if leader {
		w += round(8 * eg)
	}
	if leader && oppTotal <= 2 {
		w += 10
	}
	return w
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func round(x float64) int {
	if x >= 0 {
		return int(x + 0.5)
	}
	return -int(-x + 0.5)
}

// mobility counts single-step destinations: one forward step per man,
// the first empty square along each ray per king (spec.md §4.4 — this
// is deliberately not the full ray walk movegen.Generate uses for
// quiet king moves, just the first step of each).
func mobility(p position.Position, p1 bool) (menMoves, kingMoves int) {
	occ := p.Occupied()
	var men, kings board.Bitboard
	if p1 {
		men, kings = p.P1Men, p.P1Kings
	} else {
		men, kings = p.P2Men, p.P2Kings
	}
	dirs := forwardDirs(p1)
	for _, sq := range men.Squares() {
		for _, d := range dirs {
			to := board.Step(sq, d)
			if to != board.SquareNone && !occ.Test(to) {
				menMoves++
			}
		}
	}
	for _, sq := range kings.Squares() {
		for _, d := range allDirs {
			to := board.Step(sq, d)
			if to != board.SquareNone && !occ.Test(to) {
				kingMoves++
			}
		}
	}
	return
}

func forwardDirs(p1 bool) []board.Direction {
	if p1 {
		return []board.Direction{board.UL, board.UR}
	}
	return []board.Direction{board.DL, board.DR}
}

func centerCount(b board.Bitboard) int {
	n := 0
	for _, sq := range b.Squares() {
		r, c := sq.RowOf(), sq.ColOf()
		if r >= 2 && r <= 5 && c >= 2 && c <= 5 {
			n++
		}
	}
	return n
}

func promotionDistanceSum(men board.Bitboard, p1 bool) int {
	sum := 0
	for _, sq := range men.Squares() {
		r := sq.RowOf()
		if p1 {
			sum += r
		} else {
			sum += 7 - r
		}
	}
	return sum
}

func backRankGuards(men board.Bitboard, p1 bool) int {
	startRow := 0
	if p1 {
		startRow = 7
	}
	n := 0
	for _, sq := range men.Squares() {
		if sq.RowOf() == startRow {
			n++
		}
	}
	return n
}

// kingProximityScore returns 6 minus the average Chebyshev distance
// from each king to the nearest opposing piece, clamped at 0.
func kingProximityScore(kings, enemies board.Bitboard) int {
	ks := kings.Squares()
	if len(ks) == 0 || enemies == 0 {
		return 0
	}
	es := enemies.Squares()
	total := 0
	for _, k := range ks {
		best := 14
		for _, e := range es {
			d := chebyshev(k, e)
			if d < best {
				best = d
			}
		}
		total += best
	}
	avg := float64(total) / float64(len(ks))
	score := 6 - int(avg)
	if score < 0 {
		score = 0
	}
	return score
}

func chebyshev(a, b board.Square) int {
	dr := a.RowOf() - b.RowOf()
	if dr < 0 {
		dr = -dr
	}
	dc := a.ColOf() - b.ColOf()
	if dc < 0 {
		dc = -dc
	}
	if dr > dc {
		return dr
	}
	return dc
}

func trappedKings(kings, occ board.Bitboard) int {
	n := 0
	for _, sq := range kings.Squares() {
		trapped := true
		for _, d := range allDirs {
			to := board.Step(sq, d)
			if to != board.SquareNone && !occ.Test(to) {
				trapped = false
				break
			}
		}
		if trapped {
			n++
		}
	}
	return n
}

// swingFor returns the maximum capture-chain length and the number of
// distinct landing squares reachable by a hypothetical capture for the
// given side, regardless of whose turn it actually is (spec.md §4.4
// capture-swing component).
func swingFor(p position.Position, p1 bool) (maxChain, threats int) {
	hyp := p
	hyp.P1ToMove = p1
	moves := movegen.Generate(hyp)
	if len(moves) == 0 || !moves[0].IsCapture() {
		return 0, 0
	}
	seen := make(map[board.Square]bool, len(moves))
	for _, m := range moves {
		if m.ChainLength() > maxChain {
			maxChain = m.ChainLength()
		}
		seen[m.To] = true
	}
	return maxChain, len(seen)
}
