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
	. "github.com/frankkopp/goperft/internal/types"
)

// Move is a packed 16-bit move: bits 0..5 the origin square, bits 6..11 the
// destination square, bits 12..15 the promotion piece kind (PtNone when the
// move is not a promotion). There is deliberately no move-kind flag field
// and no sort value slot - apply.go recovers capture, en-passant, castling
// and double-push purely from board state at apply time.
type Move uint16

// MoveNone is the zero value: an invalid, empty move.
const MoveNone Move = 0

const (
	fromShift = 0
	toShift   = 6
	promShift = 12
	sqMask    = 0x3F
	promMask  = 0xF
)

// NewMove packs an origin, destination and promotion piece kind into a Move.
// Pass PtNone for a non-promoting move.
func NewMove(from, to Square, promo PieceKind) Move {
	return Move(to)<<toShift | Move(from)<<fromShift | Move(promo)<<promShift
}

// From returns the move's origin square.
func (m Move) From() Square {
	return Square((m >> fromShift) & sqMask)
}

// To returns the move's destination square.
func (m Move) To() Square {
	return Square((m >> toShift) & sqMask)
}

// Promotion returns the promotion piece kind, or PtNone if this move does
// not promote.
func (m Move) Promotion() PieceKind {
	return PieceKind((m >> promShift) & promMask)
}

// IsPromotion reports whether m promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Promotion() != PtNone
}

// IsValid reports whether m is anything other than MoveNone.
func (m Move) IsValid() bool {
	return m != MoveNone
}

// Name renders the move as the 4-character origin+destination algebraic
// string, e.g. "e2e4". Promotion is intentionally omitted; UCIName appends
// the promotion letter.
func (m Move) Name() string {
	return m.From().String() + m.To().String()
}

// UCIName is Name with the promotion piece letter appended when present,
// e.g. "e7e8q", for callers (the REPL, perft divide) that want full UCI
// compatibility.
func (m Move) UCIName() string {
	if !m.IsPromotion() {
		return m.Name()
	}
	return m.Name() + promotionLetter(m.Promotion())
}

func promotionLetter(pt PieceKind) string {
	switch pt {
	case Queen:
		return "q"
	case Rook:
		return "r"
	case Bishop:
		return "b"
	case Knight:
		return "n"
	}
	return ""
}

func (m Move) String() string {
	if m == MoveNone {
		return "-"
	}
	return m.UCIName()
}
