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

import (
	"math/bits"
	"strings"
)

// Bitboard is a 64-bit set of squares, one bit per square under LERF mapping.
type Bitboard uint64

const BbZero Bitboard = 0
const BbAll Bitboard = 0xFFFFFFFFFFFFFFFF

var fileBbMask [9]Bitboard
var rankBbMask [9]Bitboard

func init() {
	var fileA Bitboard = 0x0101010101010101
	for f := FileA; f <= FileH; f++ {
		fileBbMask[f] = fileA << Bitboard(f)
	}
	var rank1 Bitboard = 0xFF
	for r := Rank1; r <= Rank8; r++ {
		rankBbMask[r] = rank1 << (8 * Bitboard(r))
	}
}

// PushSquare sets sq's bit in b.
func PushSquare(b Bitboard, sq Square) Bitboard {
	return b | sq.Bb()
}

// PopSquare clears sq's bit in b.
func PopSquare(b Bitboard, sq Square) Bitboard {
	return b &^ sq.Bb()
}

// Has reports whether sq's bit is set in b.
func (b Bitboard) Has(sq Square) bool {
	return b&sq.Bb() != 0
}

// PopCount returns the number of set bits in b.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Lsb returns the lowest set square, or SqNone if b is empty.
func (b Bitboard) Lsb() Square {
	if b == 0 {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLsb clears and returns the lowest set square, or SqNone if b is empty.
func (b *Bitboard) PopLsb() Square {
	sq := b.Lsb()
	if sq == SqNone {
		return SqNone
	}
	*b &= *b - 1
	return sq
}

// BitIndices returns the indices of the set bits in b in ascending order.
func BitIndices(b Bitboard) []Square {
	squares := make([]Square, 0, b.PopCount())
	for b != 0 {
		squares = append(squares, b.PopLsb())
	}
	return squares
}

// ShiftBitboard shifts every bit of b one square in direction d, clearing
// bits that would wrap across the board edge.
func ShiftBitboard(b Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return b << 8
	case South:
		return b >> 8
	case East:
		return (b &^ fileBbMask[FileH]) << 1
	case West:
		return (b &^ fileBbMask[FileA]) >> 1
	case Northeast:
		return (b &^ fileBbMask[FileH]) << 9
	case Southeast:
		return (b &^ fileBbMask[FileH]) >> 7
	case Southwest:
		return (b &^ fileBbMask[FileA]) >> 9
	case Northwest:
		return (b &^ fileBbMask[FileA]) << 7
	}
	return b
}

// StringBoard renders b as an 8x8 grid, rank 8 at the top, '1' for a set
// square and '.' otherwise, for debugging.
func (b Bitboard) StringBoard() string {
	var sb strings.Builder
	for r := Rank8; ; r-- {
		for f := FileA; f <= FileH; f++ {
			sq := SquareOf(f, r)
			if b.Has(sq) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('.')
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
		if r == Rank1 {
			break
		}
	}
	return sb.String()
}
