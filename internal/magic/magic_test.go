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

package magic

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/frankkopp/goperft/internal/types"
)

// subsetsOf enumerates every occupancy subset of mask via Carry-Rippler,
// the same enumeration buildPiece uses to fill its reference table.
func subsetsOf(mask Bitboard) []Bitboard {
	var subsets []Bitboard
	b := BbZero
	for {
		subsets = append(subsets, b)
		b = (b - mask) & mask
		if b == BbZero {
			break
		}
	}
	return subsets
}

func TestRookAttacksMatchReferenceForEverySquareAndBlockerSubset(t *testing.T) {
	for sq := SqA1; sq < SqLength; sq++ {
		edges := ((Rank1.Bb() | Rank8.Bb()) &^ sq.Rank().Bb()) | ((FileA.Bb() | FileH.Bb()) &^ sq.File().Bb())
		mask := slidingAttack(rookDirs[:], sq, BbZero) &^ edges
		for _, occ := range subsetsOf(mask) {
			want := slidingAttack(rookDirs[:], sq, occ)
			got := RookAttacks(sq, occ)
			assert.Equal(t, want, got, "rook attacks from %s with occupancy %016x", sq, uint64(occ))
		}
	}
}

func TestBishopAttacksMatchReferenceForEverySquareAndBlockerSubset(t *testing.T) {
	for sq := SqA1; sq < SqLength; sq++ {
		edges := ((Rank1.Bb() | Rank8.Bb()) &^ sq.Rank().Bb()) | ((FileA.Bb() | FileH.Bb()) &^ sq.File().Bb())
		mask := slidingAttack(bishopDirs[:], sq, BbZero) &^ edges
		for _, occ := range subsetsOf(mask) {
			want := slidingAttack(bishopDirs[:], sq, occ)
			got := BishopAttacks(sq, occ)
			assert.Equal(t, want, got, "bishop attacks from %s with occupancy %016x", sq, uint64(occ))
		}
	}
}

func TestQueenAttacksIsRookUnionBishop(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		sq := Square(r.Intn(int(SqLength)))
		occ := Bitboard(r.Uint64())
		assert.Equal(t, RookAttacks(sq, occ)|BishopAttacks(sq, occ), QueenAttacks(sq, occ))
	}
}

func TestInitIsIdempotentAndConcurrencySafe(t *testing.T) {
	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			Init()
			done <- struct{}{}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
	assert.Equal(t, Bitboard(0x01010101010101FE), RookAttacks(SqA1, BbZero))
}
