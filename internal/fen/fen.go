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

// Package fen implements the Forsyth-Edwards Notation codec: Parse builds
// a board.Board from the six FEN fields, Format renders one back.
package fen

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/frankkopp/goperft/internal/board"
	myLogging "github.com/frankkopp/goperft/internal/logging"
	. "github.com/frankkopp/goperft/internal/types"
)

var log = myLogging.GetLog("fen")

var (
	regexFenPos         = regexp.MustCompile(`^[0-8pPnNbBrRqQkK/]+$`)
	regexSideToMove     = regexp.MustCompile(`^[wb]$`)
	regexCastlingRights = regexp.MustCompile(`^(K?Q?k?q?|-)$`)
	regexEnPassant      = regexp.MustCompile(`^([a-h][36]|-)$`)
)

// Parse builds a Board from a FEN string. Missing halfmove/fullmove fields
// default to 0 and 1. A malformed field is reported as an error and
// produces no Board.
func Parse(fenString string) (board.Board, error) {
	var b board.Board
	b.EnPassant = SqNone
	b.Fullmove = 1

	fenString = strings.TrimSpace(fenString)
	fields := strings.Fields(fenString)
	if len(fields) == 0 {
		return board.Board{}, fmt.Errorf("fen: empty string")
	}

	if !regexFenPos.MatchString(fields[0]) {
		return board.Board{}, fmt.Errorf("fen: invalid characters in piece placement %q", fields[0])
	}
	if err := placePieces(&b, fields[0]); err != nil {
		return board.Board{}, err
	}

	if len(fields) >= 2 {
		if !regexSideToMove.MatchString(fields[1]) {
			return board.Board{}, fmt.Errorf("fen: invalid side to move %q", fields[1])
		}
		if fields[1] == "b" {
			b.ToMove = Black
		}
	}

	if len(fields) >= 3 {
		if !regexCastlingRights.MatchString(fields[2]) {
			return board.Board{}, fmt.Errorf("fen: invalid castling rights %q", fields[2])
		}
		for _, c := range fields[2] {
			switch c {
			case 'K':
				b.Castling = b.Castling.Add(CastlingWhiteKingside)
			case 'Q':
				b.Castling = b.Castling.Add(CastlingWhiteQueenside)
			case 'k':
				b.Castling = b.Castling.Add(CastlingBlackKingside)
			case 'q':
				b.Castling = b.Castling.Add(CastlingBlackQueenside)
			}
		}
	}

	if len(fields) >= 4 && fields[3] != "-" {
		if !regexEnPassant.MatchString(fields[3]) {
			return board.Board{}, fmt.Errorf("fen: invalid en-passant square %q", fields[3])
		}
		sq, err := MakeSquare(fields[3])
		if err != nil {
			return board.Board{}, fmt.Errorf("fen: %w", err)
		}
		b.EnPassant = sq
	}

	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return board.Board{}, fmt.Errorf("fen: invalid halfmove clock %q", fields[4])
		}
		b.Halfmove = n
	}

	if len(fields) >= 6 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return board.Board{}, fmt.Errorf("fen: invalid fullmove number %q", fields[5])
		}
		b.Fullmove = n
	}

	log.Debugf("fen: parsed position %s", fields[0])
	return b, nil
}

// placePieces fills in b.Mailbox and b.Bitboards from the first FEN field.
// The field runs rank 8 down to rank 1, file A to file H within each rank,
// '/' separating ranks and digits 1-8 standing for consecutive empty
// squares.
func placePieces(b *board.Board, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("fen: expected 8 ranks, got %d", len(ranks))
	}
	for i, rankStr := range ranks {
		r := Rank8 - Rank(i)
		f := FileA
		for _, c := range rankStr {
			if c >= '1' && c <= '8' {
				f += File(c - '0')
				continue
			}
			if f > FileH {
				return fmt.Errorf("fen: rank %s overflows the board", r.String())
			}
			p, err := pieceFromChar(c)
			if err != nil {
				return err
			}
			sq := SquareOf(f, r)
			b.Mailbox[sq] = p
			b.Bitboards[p.Color()][p.Kind()] = PushSquare(b.Bitboards[p.Color()][p.Kind()], sq)
			f++
		}
		if f != FileNone {
			return fmt.Errorf("fen: rank %d does not cover all 8 files", 8-i)
		}
	}
	return nil
}

func pieceFromChar(c rune) (Piece, error) {
	color := White
	lower := c
	if c >= 'a' && c <= 'z' {
		color = Black
	} else {
		lower = c + ('a' - 'A')
	}
	var kind PieceKind
	switch lower {
	case 'k':
		kind = King
	case 'q':
		kind = Queen
	case 'r':
		kind = Rook
	case 'b':
		kind = Bishop
	case 'n':
		kind = Knight
	case 'p':
		kind = Pawn
	default:
		return Empty, fmt.Errorf("fen: invalid piece letter %q", string(c))
	}
	return MakePiece(color, kind), nil
}

// Format renders b back to its six-field FEN representation. Parse(Format(b))
// reproduces b.
func Format(b board.Board) string {
	var sb strings.Builder
	for r := Rank8; ; r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			p := b.Mailbox[SquareOf(f, r)]
			if p == Empty {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(p.Char())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r == Rank1 {
			break
		}
		sb.WriteString("/")
	}
	sb.WriteString(" ")
	sb.WriteString(b.ToMove.String())
	sb.WriteString(" ")
	sb.WriteString(b.Castling.String())
	sb.WriteString(" ")
	sb.WriteString(b.EnPassant.String())
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(b.Halfmove))
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(b.Fullmove))
	return sb.String()
}
