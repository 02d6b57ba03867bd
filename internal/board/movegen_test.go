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
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/frankkopp/goperft/internal/types"
)

func TestGenerateMovesStartingPositionCount(t *testing.T) {
	b := Start()
	moves := b.GenerateMoves()
	assert.Len(t, moves, 20)
	assert.True(t, b.HasLegalMove())
}

func TestGenerateMovesNeverLeavesOwnKingInCheck(t *testing.T) {
	for _, f := range []string{kiwipete, position3, position5} {
		b := mustParseTestFen(t, f)
		us := b.ToMove
		for _, m := range b.GenerateMoves() {
			next := b.ApplyMove(m)
			assert.False(t, next.AttackedSquares(next.ToMove).Has(next.KingSquare(us)),
				"move %s leaves %s's own king in check", m, us)
		}
	}
}

// Pinned rook test: the white rook on d2 may only move along the d-file or
// capture the pinning queen on d8, never sideways, because moving off the
// file would expose the king on d1 to check.
func TestGenerateMovesRespectsPins(t *testing.T) {
	b := mustParseTestFen(t, "3q4/8/8/8/8/8/3R4/3K4 w - - 0 1")
	for _, m := range b.GenerateMoves() {
		if m.From() != SqD2 {
			continue
		}
		assert.Equal(t, FileD, m.To().File(), "pinned rook move %s leaves the d-file", m)
	}
}

func TestCastlingBlockedByOccupiedSquare(t *testing.T) {
	b := mustParseTestFen(t, "4k3/8/8/8/8/8/8/R3K1NR w KQ - 0 1")
	for _, m := range b.GenerateMoves() {
		if m.From() == SqE1 && m.To() == SqG1 {
			t.Fatalf("kingside castle generated despite the knight on g1")
		}
	}
}

func TestCastlingBlockedBySafetySquare(t *testing.T) {
	// Black rook on e8 attacks e1, the king's own square: no castle move
	// can ever move through check, but here it additionally cannot
	// castle at all since the king is already attacked.
	b := mustParseTestFen(t, "4r3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	for _, m := range b.GenerateMoves() {
		assert.False(t, m.From() == SqE1 && (m.To() == SqG1 || m.To() == SqC1))
	}
}

func TestCastlingAvailableWhenClear(t *testing.T) {
	b := mustParseTestFen(t, "4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	sawKingside, sawQueenside := false, false
	for _, m := range b.GenerateMoves() {
		if m.From() != SqE1 {
			continue
		}
		if m.To() == SqG1 {
			sawKingside = true
		}
		if m.To() == SqC1 {
			sawQueenside = true
		}
	}
	assert.True(t, sawKingside)
	assert.True(t, sawQueenside)
}

func TestEnPassantCaptureGenerated(t *testing.T) {
	b := mustParseTestFen(t, "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	found := false
	for _, m := range b.GenerateMoves() {
		if m.From() == SqE5 && m.To() == SqD6 {
			found = true
		}
	}
	assert.True(t, found, "en-passant capture e5xd6 should be generated")
}

func TestPromotionGeneratesAllFourPieceKinds(t *testing.T) {
	b := mustParseTestFen(t, "4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	kinds := map[PieceKind]bool{}
	for _, m := range b.GenerateMoves() {
		if m.From() == SqA7 && m.To() == SqA8 {
			kinds[m.Promotion()] = true
		}
	}
	assert.Len(t, kinds, 4)
	for _, pt := range []PieceKind{Queen, Rook, Bishop, Knight} {
		assert.True(t, kinds[pt], "missing promotion to %s", pt)
	}
}

func TestCheckmateHasNoLegalMoves(t *testing.T) {
	// Fool's mate: 1.f3 e5 2.g4 Qh4#.
	b := mustParseTestFen(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	assert.False(t, b.HasLegalMove())
	assert.True(t, b.InCheck(White))
}

func TestStalemateHasNoLegalMoves(t *testing.T) {
	b := mustParseTestFen(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	assert.False(t, b.HasLegalMove())
	assert.False(t, b.InCheck(Black))
}

// TestMirroredPositionHasSameMoveCount mirrors a board across the
// horizontal axis and swaps colors (white king+pawn on e1/e2 becomes black
// king+pawn on e8/e7, and vice versa); the legal move count must match.
func TestMirroredPositionHasSameMoveCount(t *testing.T) {
	original := mustParseTestFen(t, "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	mirrored := mustParseTestFen(t, "4k3/4p3/8/8/8/8/8/4K3 b - - 0 1")
	assert.Equal(t, len(original.GenerateMoves()), len(mirrored.GenerateMoves()))
}
