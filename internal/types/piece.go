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

// PieceKind is one of the six chess piece types, plus the PtNone sentinel
// used for a promotion field that encodes "no promotion".
type PieceKind int8

const (
	PtNone PieceKind = iota
	King
	Queen
	Rook
	Bishop
	Knight
	Pawn
	PtLength
)

func (pt PieceKind) IsValid() bool {
	return pt >= King && pt < PtLength
}

// Char returns the uppercase FEN letter for pt, or "-" for PtNone.
func (pt PieceKind) Char() string {
	return string(pieceKindChars[pt])
}

var pieceKindChars = "-KQRBNP"

func (pt PieceKind) String() string {
	return pt.Char()
}

// Piece is a (Color, PieceKind) pair. Empty is the sentinel stored in
// mailbox cells with no piece on them.
type Piece int8

const Empty Piece = 0

// MakePiece packs a color and piece kind into a mailbox entry.
func MakePiece(c Color, pt PieceKind) Piece {
	return Piece(uint8(c)<<3 | uint8(pt))
}

func (p Piece) Color() Color {
	return Color(p >> 3)
}

func (p Piece) Kind() PieceKind {
	return PieceKind(p & 7)
}

func (p Piece) IsEmpty() bool {
	return p == Empty
}

// Char returns the piece's FEN letter: uppercase for White, lowercase for
// Black, "-" for Empty.
func (p Piece) Char() string {
	if p.IsEmpty() {
		return "-"
	}
	s := p.Kind().Char()
	if p.Color() == Black {
		return string(s[0] + 32)
	}
	return s
}

func (p Piece) String() string {
	return p.Char()
}
