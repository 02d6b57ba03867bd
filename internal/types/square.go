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
	"fmt"

	"github.com/frankkopp/goperft/internal/assert"
)

// Square is a board square 0..63 under little-endian rank-file mapping:
// square = file + 8*rank. A1=0, H1=7, A8=56, H8=63.
type Square uint8

const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA8
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	SqLength
	SqNone = SqLength
)

// SquareOf returns the square at file f, rank r.
func SquareOf(f File, r Rank) Square {
	return Square(uint8(r)<<3 + uint8(f))
}

// MakeSquare parses a two-character algebraic square name such as "e4".
func MakeSquare(s string) (Square, error) {
	if len(s) != 2 {
		return SqNone, fmt.Errorf("invalid square %q: want 2 characters", s)
	}
	f := s[0]
	r := s[1]
	if f < 'a' || f > 'h' {
		return SqNone, fmt.Errorf("invalid square %q: file out of range", s)
	}
	if r < '1' || r > '8' {
		return SqNone, fmt.Errorf("invalid square %q: rank out of range", s)
	}
	return SquareOf(File(f-'a'), Rank(r-'1')), nil
}

// IsValid reports whether sq is on the board.
func (sq Square) IsValid() bool {
	return sq < SqLength
}

// File returns the column of sq.
func (sq Square) File() File {
	return File(sq & 7)
}

// Rank returns the row of sq.
func (sq Square) Rank() Rank {
	return Rank(sq >> 3)
}

// Bb returns the single-bit bitboard for sq.
func (sq Square) Bb() Bitboard {
	assert.Assert(sq.IsValid(), "Square.Bb on invalid square %d", sq)
	return Bitboard(1) << sq
}

// To steps one square in direction d, returning SqNone if that would wrap
// off the edge of the board.
func (sq Square) To(d Direction) Square {
	f := sq.File()
	r := sq.Rank()
	switch d {
	case North:
		if r == Rank8 {
			return SqNone
		}
	case South:
		if r == Rank1 {
			return SqNone
		}
	case East:
		if f == FileH {
			return SqNone
		}
	case West:
		if f == FileA {
			return SqNone
		}
	case Northeast:
		if r == Rank8 || f == FileH {
			return SqNone
		}
	case Northwest:
		if r == Rank8 || f == FileA {
			return SqNone
		}
	case Southeast:
		if r == Rank1 || f == FileH {
			return SqNone
		}
	case Southwest:
		if r == Rank1 || f == FileA {
			return SqNone
		}
	}
	return Square(int8(sq) + int8(d))
}

func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.File().String() + sq.Rank().String()
}
