/*
 * goperft - chess move generator and perft engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package magic builds and serves the rook and bishop "magic bitboard"
// attack tables: a perfect hash from (square, blocker set) to the sliding
// attack bitboard for that square and occupancy. The tables are process-wide
// read-only state, built once on first use (see Init/ensure).
//
// The blocker-mask construction, reference ray walker and the magic search
// itself (weak PRNG, sparse candidates, epoch-stamped verification) follow
// the approach Stockfish popularized for fast sliding-piece attack lookup.
package magic

import (
	"sync"

	"github.com/frankkopp/goperft/internal/logging"
	. "github.com/frankkopp/goperft/internal/types"
)

var log = logging.GetLog("magic")

// Entry is the per-square magic: the blocker mask, the magic multiplier, the
// shift that turns a masked occupancy into a table index, and the offset of
// this square's slice within the shared attack table.
type Entry struct {
	Mask   Bitboard
	Magic  Bitboard
	Shift  uint
	Offset int
}

func (e *Entry) index(occupied Bitboard) int {
	occ := occupied & e.Mask
	occ *= e.Magic
	occ >>= e.Shift
	return int(occ)
}

var (
	rookTable    []Bitboard
	bishopTable  []Bitboard
	rookMagics   [SqLength]Entry
	bishopMagics [SqLength]Entry

	once sync.Once
)

var rookDirs = [4]Direction{North, South, East, West}
var bishopDirs = [4]Direction{Northeast, Southeast, Southwest, Northwest}

// Init builds the rook and bishop magic tables. Safe to call more than
// once and from multiple goroutines; the build runs exactly once.
func Init() {
	once.Do(buildAll)
}

// ensure is called by every lookup so callers never have to remember to
// invoke Init themselves; the one-shot guard makes this free after the
// first call.
func ensure() {
	once.Do(buildAll)
}

// RookAttacks returns the rook attack set from sq given board occupancy.
func RookAttacks(sq Square, occupied Bitboard) Bitboard {
	ensure()
	e := &rookMagics[sq]
	return rookTable[e.Offset+e.index(occupied)]
}

// BishopAttacks returns the bishop attack set from sq given board occupancy.
func BishopAttacks(sq Square, occupied Bitboard) Bitboard {
	ensure()
	e := &bishopMagics[sq]
	return bishopTable[e.Offset+e.index(occupied)]
}

// QueenAttacks is the union of a rook's and a bishop's attacks from sq.
func QueenAttacks(sq Square, occupied Bitboard) Bitboard {
	return RookAttacks(sq, occupied) | BishopAttacks(sq, occupied)
}

func buildAll() {
	log.Debug("building magic tables for rook")
	rookTable = buildPiece(rookDirs[:], &rookMagics)
	log.Debug("building magic tables for bishop")
	bishopTable = buildPiece(bishopDirs[:], &bishopMagics)
}

// buildPiece constructs the shared attack table and per-square Entry values
// for one slider (rook or bishop), identified by its four ray directions.
func buildPiece(directions []Direction, magics *[SqLength]Entry) []Bitboard {
	// seeds chosen so the search below terminates quickly for every square,
	// picked per rank.
	seeds := [8]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

	var table []Bitboard
	var occupancy [4096]Bitboard
	var reference [4096]Bitboard
	var epoch [4096]int
	attempt := 0

	for sq := SqA1; sq < SqLength; sq++ {
		edges := ((Rank1.Bb() | Rank8.Bb()) &^ sq.Rank().Bb()) | ((FileA.Bb() | FileH.Bb()) &^ sq.File().Bb())

		mask := slidingAttack(directions, sq, BbZero) &^ edges
		bits := mask.PopCount()
		shift := uint(64 - bits)
		size := 1 << bits

		e := &magics[sq]
		e.Mask = mask
		e.Shift = shift
		e.Offset = len(table)

		// Carry-Rippler: enumerate every subset of mask.
		b := BbZero
		n := 0
		for {
			occupancy[n] = b
			reference[n] = slidingAttack(directions, sq, b)
			n++
			b = (b - mask) & mask
			if b == BbZero {
				break
			}
		}

		rng := newPrnG(seeds[sq.Rank()])
		used := make([]Bitboard, size)

		for i := 0; i < n; {
			var m Bitboard
			for {
				m = Bitboard(rng.sparseRand())
				if ((mask * m) >> 56).PopCount() >= 6 {
					break
				}
			}
			attempt++
			for i = 0; i < n; i++ {
				idx := int((occupancy[i] * m) >> shift)
				if epoch[idx] < attempt {
					epoch[idx] = attempt
					used[idx] = reference[i]
				} else if used[idx] != reference[i] {
					break
				}
			}
			if i == n {
				e.Magic = m
			}
		}

		table = append(table, used...)
	}
	return table
}

// slidingAttack walks each ray outward from sq over occupied, stopping after
// (and including) the first blocker on that ray. Used both as the reference
// attack generator during magic verification and to build blocker masks
// (called once with occupied = 0).
func slidingAttack(directions []Direction, sq Square, occupied Bitboard) Bitboard {
	var attack Bitboard
	for _, d := range directions {
		s := sq
		for {
			s = s.To(d)
			if !s.IsValid() {
				break
			}
			attack = PushSquare(attack, s)
			if occupied.Has(s) {
				break
			}
		}
	}
	return attack
}

// prnG is the xorshift64star generator Stockfish uses to draw magic
// candidates, biased with sparseRand toward sparse products.
type prnG struct{ s uint64 }

func newPrnG(seed uint64) *prnG { return &prnG{s: seed} }

func (r *prnG) rand64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// sparseRand ANDs three draws together so the result has roughly 1/8th of
// its bits set on average, which tends to find valid magics faster.
func (r *prnG) sparseRand() uint64 {
	return r.rand64() & r.rand64() & r.rand64()
}
