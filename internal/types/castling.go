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

// CastlingRights packs the four castling rights into a nibble, ordered
// WK, WQ, BK, BQ from the most significant bit down, i.e. bit 3 is White
// king-side, bit 0 is Black queen-side.
type CastlingRights uint8

const (
	CastlingBlackQueenside CastlingRights = 1 << iota
	CastlingBlackKingside
	CastlingWhiteQueenside
	CastlingWhiteKingside

	CastlingWhite = CastlingWhiteKingside | CastlingWhiteQueenside
	CastlingBlack = CastlingBlackKingside | CastlingBlackQueenside
	CastlingNone  = CastlingRights(0)
	CastlingAny   = CastlingWhiteKingside | CastlingWhiteQueenside | CastlingBlackKingside | CastlingBlackQueenside
)

// Has reports whether cr grants every right set in other.
func (cr CastlingRights) Has(other CastlingRights) bool {
	return cr&other == other
}

// Add returns cr with other's rights granted.
func (cr CastlingRights) Add(other CastlingRights) CastlingRights {
	return cr | other
}

// Remove returns cr with other's rights revoked.
func (cr CastlingRights) Remove(other CastlingRights) CastlingRights {
	return cr &^ other
}

// RightsOf returns the king-side and queen-side right for color c.
func RightsOf(c Color) (kingside, queenside CastlingRights) {
	if c == White {
		return CastlingWhiteKingside, CastlingWhiteQueenside
	}
	return CastlingBlackKingside, CastlingBlackQueenside
}

// String renders the FEN castling field, e.g. "KQkq", "-" when none are set.
func (cr CastlingRights) String() string {
	if cr == CastlingNone {
		return "-"
	}
	s := ""
	if cr.Has(CastlingWhiteKingside) {
		s += "K"
	}
	if cr.Has(CastlingWhiteQueenside) {
		s += "Q"
	}
	if cr.Has(CastlingBlackKingside) {
		s += "k"
	}
	if cr.Has(CastlingBlackQueenside) {
		s += "q"
	}
	return s
}
