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

package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/goperft/internal/board"
)

func TestBoardContainsGlyphsForEveryPiece(t *testing.T) {
	b := board.Start()
	out := Board(b)
	assert.Contains(t, out, "♔")
	assert.Contains(t, out, "♚")
	assert.Contains(t, out, "♙")
	assert.Contains(t, out, "♟")
}

func TestBoardASCIIUsesLetters(t *testing.T) {
	b := board.Start()
	out := BoardASCII(b)
	assert.NotContains(t, out, "♔")
	assert.Contains(t, out, "K")
	assert.Contains(t, out, "k")
}

func TestBoardHasEightRanksAndStatusFooter(t *testing.T) {
	b := board.Start()
	out := Board(b)
	assert.Equal(t, 8, strings.Count(out, "|\n"))
	assert.Contains(t, out, "side to move: w")
	assert.Contains(t, out, "castling: KQkq")
	assert.Contains(t, out, "en passant: -")
}
