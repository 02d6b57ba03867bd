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

// castlingCase is one of the four fixed castling geometries, described by
// LERF bit position.
type castlingCase struct {
	color    Color
	right    CastlingRights
	between  Bitboard
	safety   Bitboard
	dest     Square
	rookHome Square
}

var castlingCases = [4]castlingCase{
	{White, CastlingWhiteKingside, 0x60, 0x70, SqG1, SqH1},
	{White, CastlingWhiteQueenside, 0x0E, 0x1C, SqC1, SqA1},
	{Black, CastlingBlackKingside, 0x6000000000000000, 0x7000000000000000, SqG8, SqH8},
	{Black, CastlingBlackQueenside, 0x0E00000000000000, 0x1C00000000000000, SqC8, SqA8},
}

// GenerateMoves returns every legal move for the side to move: pseudo-legal
// generation followed by a legality filter (own king must not be left in
// check; castling path-safety is additionally enforced during generation
// since the king's intermediate square is not its landing square, so the
// post-move check alone can't catch it).
func (b Board) GenerateMoves() []Move {
	pseudo := b.pseudoLegalMoves()
	legal := make([]Move, 0, len(pseudo))
	us := b.ToMove
	for _, m := range pseudo {
		next := b.ApplyMove(m)
		if !next.AttackedSquares(next.ToMove).Has(next.KingSquare(us)) {
			legal = append(legal, m)
		}
	}
	return legal
}

// HasLegalMove reports whether the side to move has at least one legal
// move, without building the full move list - enough to tell checkmate and
// stalemate apart from a position with moves left.
func (b Board) HasLegalMove() bool {
	pseudo := b.pseudoLegalMoves()
	us := b.ToMove
	for _, m := range pseudo {
		next := b.ApplyMove(m)
		if !next.AttackedSquares(next.ToMove).Has(next.KingSquare(us)) {
			return true
		}
	}
	return false
}

// pseudoLegalMoves generates every move legal under piece-movement rules,
// without yet checking whether it leaves the mover's own king in check.
func (b Board) pseudoLegalMoves() []Move {
	us := b.ToMove
	them := us.Opposite()
	player := b.Occupied(us)
	opponent := b.Occupied(them)
	all := player | opponent

	moves := make([]Move, 0, 48)

	// King, including castling.
	kingSq := b.KingSquare(us)
	for _, to := range BitIndices(KingMoves[kingSq] &^ player) {
		moves = append(moves, NewMove(kingSq, to, PtNone))
	}
	opponentAttacks := b.AttackedSquares(them)
	for _, cc := range castlingCases {
		if cc.color != us {
			continue
		}
		if !b.Castling.Has(cc.right) {
			continue
		}
		if all&cc.between != 0 {
			continue
		}
		if opponentAttacks&cc.safety != 0 {
			continue
		}
		if b.Mailbox[cc.rookHome] != MakePiece(us, Rook) {
			continue
		}
		moves = append(moves, NewMove(kingSq, cc.dest, PtNone))
	}

	// Knights.
	for _, sq := range BitIndices(b.Bitboards[us][Knight]) {
		for _, to := range BitIndices(KnightMoves[sq] &^ player) {
			moves = append(moves, NewMove(sq, to, PtNone))
		}
	}

	// Sliders.
	for _, sq := range BitIndices(b.Bitboards[us][Bishop]) {
		for _, to := range BitIndices(magic.BishopAttacks(sq, all) &^ player) {
			moves = append(moves, NewMove(sq, to, PtNone))
		}
	}
	for _, sq := range BitIndices(b.Bitboards[us][Rook]) {
		for _, to := range BitIndices(magic.RookAttacks(sq, all) &^ player) {
			moves = append(moves, NewMove(sq, to, PtNone))
		}
	}
	for _, sq := range BitIndices(b.Bitboards[us][Queen]) {
		for _, to := range BitIndices(magic.QueenAttacks(sq, all) &^ player) {
			moves = append(moves, NewMove(sq, to, PtNone))
		}
	}

	// Pawns.
	moves = b.pawnMoves(moves, us, opponent, all)

	return moves
}

var promotionKinds = [4]PieceKind{Queen, Rook, Bishop, Knight}

func (b Board) pawnMoves(moves []Move, us Color, opponent, all Bitboard) []Move {
	var epBb Bitboard
	if b.EnPassant != SqNone {
		epBb = b.EnPassant.Bb()
	}

	promoRank := Rank8
	if us == Black {
		promoRank = Rank1
	}

	for _, sq := range BitIndices(b.Bitboards[us][Pawn]) {
		bb := sq.Bb()
		var dests Bitboard
		if us == White {
			dests = PawnCaptures[White][sq] & (opponent | epBb)
			singlePush := ShiftBitboard(bb, North) &^ all
			dests |= singlePush
			if bb&Rank2.Bb() != 0 {
				dests |= ShiftBitboard(singlePush, North) &^ all
			}
		} else {
			dests = PawnCaptures[Black][sq] & (opponent | epBb)
			singlePush := ShiftBitboard(bb, South) &^ all
			dests |= singlePush
			if bb&Rank7.Bb() != 0 {
				dests |= ShiftBitboard(singlePush, South) &^ all
			}
		}
		for _, to := range BitIndices(dests) {
			if to.Rank() == promoRank {
				for _, pt := range promotionKinds {
					moves = append(moves, NewMove(sq, to, pt))
				}
			} else {
				moves = append(moves, NewMove(sq, to, PtNone))
			}
		}
	}
	return moves
}
