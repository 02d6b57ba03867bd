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

// Package render is a human-readable pretty-printer for a Board: an 8x8
// grid bordered with "+---+" dividers, piece glyphs in each cell, and a
// one-line status footer.
package render

import (
	"strings"

	"github.com/frankkopp/goperft/internal/board"
	. "github.com/frankkopp/goperft/internal/types"
)

// unicodeGlyphs maps each of the twelve (color, kind) Pieces to its Unicode
// chess glyph.
var unicodeGlyphs = map[Piece]string{
	MakePiece(White, King):   "♔",
	MakePiece(White, Queen):  "♕",
	MakePiece(White, Rook):   "♖",
	MakePiece(White, Bishop): "♗",
	MakePiece(White, Knight): "♘",
	MakePiece(White, Pawn):   "♙",
	MakePiece(Black, King):   "♚",
	MakePiece(Black, Queen):  "♛",
	MakePiece(Black, Rook):   "♜",
	MakePiece(Black, Bishop): "♝",
	MakePiece(Black, Knight): "♞",
	MakePiece(Black, Pawn):   "♟",
}

// Board renders b as an 8x8 grid (rank 8 at the top, as a human reads a
// chess board) using Unicode chess glyphs, plus a one-line FEN-style
// status footer (side to move, castling rights, en-passant square).
func Board(b board.Board) string {
	return board8x8(b, true)
}

// BoardASCII is Board's fallback for terminals without Unicode glyph
// support: the standard uppercase/lowercase FEN letters instead.
func BoardASCII(b board.Board) string {
	return board8x8(b, false)
}

func board8x8(b board.Board, unicode bool) string {
	var sb strings.Builder
	border := "  +---+---+---+---+---+---+---+---+\n"
	sb.WriteString(border)
	for r := Rank8; ; r-- {
		sb.WriteString(r.String())
		sb.WriteString(" ")
		for f := FileA; f <= FileH; f++ {
			p := b.Mailbox[SquareOf(f, r)]
			sb.WriteString("| ")
			sb.WriteString(glyph(p, unicode))
			sb.WriteString(" ")
		}
		sb.WriteString("|\n")
		sb.WriteString(border)
		if r == Rank1 {
			break
		}
	}
	sb.WriteString("    a   b   c   d   e   f   g   h\n")
	sb.WriteString(status(b))
	return sb.String()
}

func glyph(p Piece, unicode bool) string {
	if p == Empty {
		return " "
	}
	if unicode {
		if g, ok := unicodeGlyphs[p]; ok {
			return g
		}
	}
	return p.Char()
}

func status(b board.Board) string {
	var sb strings.Builder
	sb.WriteString("side to move: ")
	sb.WriteString(b.ToMove.String())
	sb.WriteString("  castling: ")
	sb.WriteString(b.Castling.String())
	sb.WriteString("  en passant: ")
	sb.WriteString(b.EnPassant.String())
	sb.WriteString("\n")
	return sb.String()
}
