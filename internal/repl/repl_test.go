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

package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runLines(t *testing.T, startFen string, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	r, err := New(strings.NewReader(strings.Join(lines, "\n")+"\n"), &out, startFen)
	require.NoError(t, err)
	r.Loop()
	return out.String()
}

func TestMovesCommandListsStartingMoves(t *testing.T) {
	out := runLines(t, "", "moves")
	assert.Equal(t, 20, strings.Count(out, "\n"))
}

func TestMoveCommandAppliesLegalMove(t *testing.T) {
	out := runLines(t, "", "move e2e4", "print")
	assert.Contains(t, out, "side to move: b")
	assert.Contains(t, out, "en passant: e3")
}

func TestMoveCommandRejectsIllegalMove(t *testing.T) {
	out := runLines(t, "", "move e2e5")
	assert.Contains(t, out, "illegal move")
}

func TestPositionCommandWithMoves(t *testing.T) {
	out := runLines(t, "", "position startpos moves e2e4 e7e5", "perft 1")
	assert.Contains(t, out, "29\n")
}

func TestPerftCommandStartingPosition(t *testing.T) {
	out := runLines(t, "", "perft 2")
	assert.Contains(t, out, "400\n")
}

func TestDivideCommandSumsToTotal(t *testing.T) {
	out := runLines(t, "", "divide 1")
	assert.Contains(t, out, "total: 20")
}

func TestQuitStopsTheLoop(t *testing.T) {
	out := runLines(t, "", "quit", "moves")
	assert.Empty(t, out)
}

func TestUnknownCommandReportsItself(t *testing.T) {
	out := runLines(t, "", "foobar")
	assert.Contains(t, out, "unknown command: foobar")
}
