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
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/frankkopp/goperft/internal/types"
)

// mustParseTestFen builds a Board straight from a FEN string without
// depending on the fen package, which itself depends on board - package fen
// has its own round-trip tests against the real codec.
func mustParseTestFen(t *testing.T, fenString string) Board {
	t.Helper()
	fields := strings.Fields(fenString)
	require.GreaterOrEqual(t, len(fields), 4)

	var b Board
	b.EnPassant = SqNone
	b.Fullmove = 1

	ranks := strings.Split(fields[0], "/")
	require.Len(t, ranks, 8)
	for i, rankStr := range ranks {
		r := Rank8 - Rank(i)
		f := FileA
		for _, c := range rankStr {
			if c >= '1' && c <= '8' {
				f += File(c - '0')
				continue
			}
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
				require.Failf(t, "bad fen", "piece letter %q", string(c))
			}
			b.put(MakePiece(color, kind), SquareOf(f, r))
			f++
		}
	}

	if fields[1] == "b" {
		b.ToMove = Black
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
	if fields[3] != "-" {
		sq, err := MakeSquare(fields[3])
		require.NoError(t, err)
		b.EnPassant = sq
	}
	if len(fields) >= 6 {
		n, err := strconv.Atoi(fields[5])
		require.NoError(t, err)
		b.Fullmove = n
	}
	return b
}

func TestStartPositionInvariants(t *testing.T) {
	b := Start()
	assert.NoError(t, b.checkInvariants())
	assert.Equal(t, White, b.ToMove)
	assert.Equal(t, CastlingAny, b.Castling)
	assert.Equal(t, SqNone, b.EnPassant)
	assert.Equal(t, 32, b.OccupiedAll().PopCount())
}

func TestStartPositionOccupancy(t *testing.T) {
	b := Start()
	assert.Equal(t, Bitboard(0xFFFF), b.Occupied(White))
	assert.Equal(t, Bitboard(0xFFFF000000000000), b.Occupied(Black))
	assert.Equal(t, SqE1, b.KingSquare(White))
	assert.Equal(t, SqE8, b.KingSquare(Black))
}

func TestPutRemoveKeepMailboxAndBitboardsCoherent(t *testing.T) {
	var b Board
	b.put(MakePiece(White, Rook), SqA1)
	assert.Equal(t, MakePiece(White, Rook), b.Mailbox[SqA1])
	assert.True(t, b.Bitboards[White][Rook].Has(SqA1))

	got := b.remove(SqA1)
	assert.Equal(t, MakePiece(White, Rook), got)
	assert.Equal(t, Empty, b.Mailbox[SqA1])
	assert.False(t, b.Bitboards[White][Rook].Has(SqA1))
}

func TestKiwipeteInvariants(t *testing.T) {
	b := mustParseTestFen(t, kiwipete)
	assert.NoError(t, b.checkInvariants())
	assert.Equal(t, White, b.ToMove)
	assert.Equal(t, CastlingAny, b.Castling)
}
