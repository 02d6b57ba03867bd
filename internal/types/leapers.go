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

package types

// KingMoves, KnightMoves and PawnCaptures are the precomputed leaper attack
// tables: fixed masks, independent of board occupancy. buildLeaperTables
// fills them once during package initialization.
var (
	KingMoves    [SqLength]Bitboard
	KnightMoves  [SqLength]Bitboard
	PawnCaptures [ColorLength][SqLength]Bitboard
)

var kingOffsets = [8]Direction{North, South, East, West, Northeast, Southeast, Southwest, Northwest}

func init() {
	buildLeaperTables()
}

func buildLeaperTables() {
	for sq := SqA1; sq < SqLength; sq++ {
		var king Bitboard
		for _, d := range kingOffsets {
			if t := sq.To(d); t.IsValid() {
				king = PushSquare(king, t)
			}
		}
		KingMoves[sq] = king

		var knight Bitboard
		f, r := sq.File(), sq.Rank()
		for _, delta := range knightDeltas {
			nf := int(f) + delta.df
			nr := int(r) + delta.dr
			if nf < 0 || nf > 7 || nr < 0 || nr > 7 {
				continue
			}
			knight = PushSquare(knight, SquareOf(File(nf), Rank(nr)))
		}
		KnightMoves[sq] = knight

		for _, c := range [2]Color{White, Black} {
			r := sq.Rank()
			if r == Rank1 || r == Rank8 {
				continue
			}
			var caps Bitboard
			fwd := Northeast
			fwd2 := Northwest
			if c == Black {
				fwd = Southeast
				fwd2 = Southwest
			}
			if t := sq.To(fwd); t.IsValid() {
				caps = PushSquare(caps, t)
			}
			if t := sq.To(fwd2); t.IsValid() {
				caps = PushSquare(caps, t)
			}
			PawnCaptures[c][sq] = caps
		}
	}
}

type knightDelta struct{ df, dr int }

var knightDeltas = [8]knightDelta{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}
