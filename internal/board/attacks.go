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

package board

import (
	"github.com/frankkopp/goperft/internal/magic"
	. "github.com/frankkopp/goperft/internal/types"
)

// AttackedSquares returns the union of every square attacked by color c:
// king and knight leaper tables, magic lookups for the sliders with
// occupancy over both colors, and pawn captures (both diagonals, regardless
// of whether a piece actually stands there - this is the attack set, not
// the quiet-move set).
func (b Board) AttackedSquares(c Color) Bitboard {
	var attacked Bitboard
	occ := b.OccupiedAll()

	for _, sq := range BitIndices(b.Bitboards[c][King]) {
		attacked |= KingMoves[sq]
	}
	for _, sq := range BitIndices(b.Bitboards[c][Knight]) {
		attacked |= KnightMoves[sq]
	}
	for _, sq := range BitIndices(b.Bitboards[c][Bishop]) {
		attacked |= magic.BishopAttacks(sq, occ)
	}
	for _, sq := range BitIndices(b.Bitboards[c][Rook]) {
		attacked |= magic.RookAttacks(sq, occ)
	}
	for _, sq := range BitIndices(b.Bitboards[c][Queen]) {
		attacked |= magic.QueenAttacks(sq, occ)
	}
	for _, sq := range BitIndices(b.Bitboards[c][Pawn]) {
		attacked |= PawnCaptures[c][sq]
	}
	return attacked
}

// InCheck reports whether color c's king is attacked by the opposite color.
func (b Board) InCheck(c Color) bool {
	return b.AttackedSquares(c.Opposite()).Has(b.KingSquare(c))
}
