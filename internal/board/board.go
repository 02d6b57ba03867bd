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

// Package board implements the core of the move generator: the Board value
// type, pseudo-legal move generation with legality filtering, move
// application and perft. Board is an immutable value: ApplyMove returns a
// new Board and never touches its receiver, rather than the do/undo-move
// pair a mutable position type would use.
package board

import (
	"strings"

	"github.com/frankkopp/goperft/internal/assert"
	. "github.com/frankkopp/goperft/internal/types"
)

// StartFen is the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Board is an immutable chess position: a mailbox plus twelve piece
// bitboards, side to move, castling rights, en-passant target, halfmove
// clock and fullmove number.
//
// Boards are small (200 bytes on a 64-bit platform) and passed/returned by value. ApplyMove
// never mutates its receiver; every operation in this package produces a
// new Board rather than an in-place do/undo pair.
type Board struct {
	Mailbox   [SqLength]Piece
	Bitboards [ColorLength][PtLength]Bitboard
	ToMove    Color
	Castling  CastlingRights
	EnPassant Square
	Halfmove  int
	Fullmove  int
}

// backRank is the piece order for the first/eighth rank, file A to file H.
var backRank = [8]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// Start returns the standard chess starting position. Built directly by
// placing pieces rather than by parsing StartFen, so this package has no
// need to depend on the fen package (which depends on board for the Board
// type - a reverse dependency would cycle).

func Start() Board {
	var b Board
	b.EnPassant = SqNone
	b.Castling = CastlingAny
	b.Fullmove = 1
	for f := FileA; f <= FileH; f++ {
		b.put(MakePiece(White, backRank[f]), SquareOf(f, Rank1))
		b.put(MakePiece(White, Pawn), SquareOf(f, Rank2))
		b.put(MakePiece(Black, Pawn), SquareOf(f, Rank7))
		b.put(MakePiece(Black, backRank[f]), SquareOf(f, Rank8))
	}
	return b
}

// Occupied returns the union of every piece of color c.
func (b Board) Occupied(c Color) Bitboard {
	var occ Bitboard
	for pt := King; pt < PtLength; pt++ {
		occ |= b.Bitboards[c][pt]
	}
	return occ
}

// OccupiedAll returns every occupied square on the board.
func (b Board) OccupiedAll() Bitboard {
	return b.Occupied(White) | b.Occupied(Black)
}

// KingSquare returns the square of color c's king.
func (b Board) KingSquare(c Color) Square {
	return b.Bitboards[c][King].Lsb()
}

// put places piece p on sq, keeping mailbox and bitboards coherent. sq must
// be empty; this is a private helper used only while constructing a fresh
// Board (in Start or as the result of ApplyMove), never on a Board already
// handed to a caller.
func (b *Board) put(p Piece, sq Square) {
	if assert.DEBUG {
		assert.Assert(b.Mailbox[sq] == Empty, "board.put: square %s not empty", sq)
	}
	b.Mailbox[sq] = p
	b.Bitboards[p.Color()][p.Kind()] = PushSquare(b.Bitboards[p.Color()][p.Kind()], sq)
}

// remove clears sq, which must hold a piece, keeping mailbox and bitboards
// coherent, and returns the piece that was there.
func (b *Board) remove(sq Square) Piece {
	p := b.Mailbox[sq]
	if assert.DEBUG {
		assert.Assert(p != Empty, "board.remove: square %s already empty", sq)
	}
	b.Mailbox[sq] = Empty
	b.Bitboards[p.Color()][p.Kind()] = PopSquare(b.Bitboards[p.Color()][p.Kind()], sq)
	return p
}

// move relocates the piece on from to the (empty) square to.
func (b *Board) move(from, to Square) {
	b.put(b.remove(from), to)
}

// checkInvariants verifies the mailbox/bitboard coherence invariants hold.
// Used by tests only (the FEN parser does not call it); never consulted by
// ApplyMove or GenerateMoves themselves,
// which trust their own arithmetic - an internal invariant violation here
// is a programming error, not a condition to recover from.
func (b Board) checkInvariants() error {
	var seen [ColorLength]Bitboard
	for sq := SqA1; sq < SqLength; sq++ {
		p := b.Mailbox[sq]
		if p == Empty {
			continue
		}
		if !b.Bitboards[p.Color()][p.Kind()].Has(sq) {
			return boardError("mailbox/bitboard mismatch at " + sq.String())
		}
		seen[p.Color()] = PushSquare(seen[p.Color()], sq)
	}
	if seen[White]&seen[Black] != 0 {
		return boardError("white and black occupancy overlap")
	}
	for c := White; c <= Black; c++ {
		if b.Bitboards[c][King].PopCount() != 1 {
			return boardError("color does not have exactly one king")
		}
	}
	return nil
}

type boardError string

func (e boardError) Error() string { return string(e) }

func (b Board) String() string {
	var sb strings.Builder
	sb.WriteString(b.ToMove.String())
	sb.WriteString(" to move, castling=")
	sb.WriteString(b.Castling.String())
	sb.WriteString(", ep=")
	sb.WriteString(b.EnPassant.String())
	return sb.String()
}
