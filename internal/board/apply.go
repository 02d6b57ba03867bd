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

// ApplyMove returns a new Board with m played. The receiver is never
// mutated - a single pure function in place of a do/undo pair, since
// nothing here keeps a history stack to undo against.
//
// Callers must only pass moves produced by GenerateMoves on this same
// Board; an out-of-band move produces an undefined result, not an error.
func (b Board) ApplyMove(m Move) Board {
	nb := b
	from := m.From()
	to := m.To()
	promo := m.Promotion()

	moving := b.Mailbox[from]
	kind := moving.Kind()
	color := moving.Color()
	capturedBefore := b.Mailbox[to]

	nb.remove(from)
	if capturedBefore != Empty {
		nb.remove(to)
	}
	if promo != PtNone {
		nb.put(MakePiece(color, promo), to)
	} else {
		nb.put(moving, to)
	}

	// En-passant capture: the pawn taken sits on the rank the ep target
	// shadows, not on the target square itself.
	if kind == Pawn && to == b.EnPassant {
		var capSq Square
		if color == White {
			capSq = to.To(South)
		} else {
			capSq = to.To(North)
		}
		nb.remove(capSq)
	}

	// Castling rook move and right loss for the side that castled.
	if kind == King {
		switch int(to) - int(from) {
		case 2:
			rookFrom, rookTo := castleRookSquares(color, true)
			nb.move(rookFrom, rookTo)
		case -2:
			rookFrom, rookTo := castleRookSquares(color, false)
			nb.move(rookFrom, rookTo)
		}
		nb.Castling = nb.Castling.Remove(colorCastlingRights(color))
	}

	// A rook moving off its home square loses that side's right to it.
	if kind == Rook {
		nb.Castling = nb.Castling.Remove(rightForRookHome(from))
	}
	// A rook captured on its home square costs its owner that right, whatever
	// piece captures it - an explicit rule rather than relying solely on the
	// rook's presence being re-checked at castle-use time.
	if capturedBefore != Empty && capturedBefore.Kind() == Rook {
		nb.Castling = nb.Castling.Remove(rightForRookHome(to))
	}

	// En-passant target: set only immediately after a pawn double push.
	if kind == Pawn && (int(to)-int(from) == 16 || int(from)-int(to) == 16) {
		if color == White {
			nb.EnPassant = from.To(North)
		} else {
			nb.EnPassant = from.To(South)
		}
	} else {
		nb.EnPassant = SqNone
	}

	// Halfmove clock resets on a capture or pawn move, else increments.
	if capturedBefore != Empty || kind == Pawn {
		nb.Halfmove = 0
	} else {
		nb.Halfmove = b.Halfmove + 1
	}

	// Fullmove number increments after Black's move.
	if color == Black {
		nb.Fullmove = b.Fullmove + 1
	}

	nb.ToMove = color.Opposite()
	return nb
}

// castleRookSquares returns the rook's home square and its post-castle
// square for the given color and side (kingside true, queenside false).
func castleRookSquares(c Color, kingside bool) (from, to Square) {
	if c == White {
		if kingside {
			return SqH1, SqF1
		}
		return SqA1, SqD1
	}
	if kingside {
		return SqH8, SqF8
	}
	return SqA8, SqD8
}

func colorCastlingRights(c Color) CastlingRights {
	if c == White {
		return CastlingWhite
	}
	return CastlingBlack
}

// rightForRookHome maps a rook's home square to the single castling right
// it guards, or CastlingNone if sq is not one of the four rook homes.
func rightForRookHome(sq Square) CastlingRights {
	switch sq {
	case SqA1:
		return CastlingWhiteQueenside
	case SqH1:
		return CastlingWhiteKingside
	case SqA8:
		return CastlingBlackQueenside
	case SqH8:
		return CastlingBlackKingside
	}
	return CastlingNone
}
