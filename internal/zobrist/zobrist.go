// Package zobrist implements the 32-bit position hash spec.md §4.5
// requires: a process-initialized table of piece-class/square keys
// XORed together, plus one side-to-move key. Deterministic seeding
// (not math/rand) makes test results reproducible across Go versions,
// following the teacher's own position/random.go reasoning.
package zobrist

import (
	"github.com/tkopp/makhos/internal/board"
	"github.com/tkopp/makhos/internal/position"
)

// PieceClass enumerates the four bitboards a square can belong to.
type PieceClass int

const (
	P1Man PieceClass = iota
	P1King
	P2Man
	P2King
	numPieceClasses
)

var table [numPieceClasses][board.NumSquares]uint32
var sideKey uint32

// xorshift64star is a deterministic PRNG, taken directly from the
// public-domain generator by Sebastiano Vigna: single 64-bit state,
// no warm-up required, period 2^64-1. Used instead of math/rand so
// the table (and therefore every hash in this package) is identical
// across Go versions and platforms.
type xorshift64star struct{ s uint64 }

func newXorshift64star(seed uint64) xorshift64star {
	if seed == 0 {
		panic("zobrist: seed must not be 0")
	}
	return xorshift64star{s: seed}
}

func (r *xorshift64star) next() uint64 {
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	r.s ^= r.s >> 12
	return r.s * 2685821657736338717
}

// seed is fixed so test suites pin reproducible perft/search results
// (spec.md §8 invariant 5/6).
const seed = 1070372

func init() {
	r := newXorshift64star(seed)
	for pc := PieceClass(0); pc < numPieceClasses; pc++ {
		for sq := board.Square(0); sq < board.NumSquares; sq++ {
			table[pc][sq] = uint32(r.next())
		}
	}
	sideKey = uint32(r.next())
}

// Hash returns the 32-bit Zobrist key of a position. Collisions
// across the 32-bit key space are accepted (spec.md §4.5/§7): the
// transposition table only verifies entries by key equality, never
// by recomputing the position.
func Hash(p position.Position) uint32 {
	var h uint32
	for _, sq := range p.P1Men.Squares() {
		h ^= table[P1Man][sq]
	}
	for _, sq := range p.P1Kings.Squares() {
		h ^= table[P1King][sq]
	}
	for _, sq := range p.P2Men.Squares() {
		h ^= table[P2Man][sq]
	}
	for _, sq := range p.P2Kings.Squares() {
		h ^= table[P2King][sq]
	}
	if p.P1ToMove {
		h ^= sideKey
	}
	return h
}
