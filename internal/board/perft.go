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
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// out prints perft-divide output with thousands-grouped integers; a German
// printer groups by '.' rather than ',', which is simply the locale chosen
// here.
var out = message.NewPrinter(language.German)

// Perft counts the number of distinct leaf positions reachable from b after
// depth plies of legal moves - the standard move-generator correctness
// benchmark. Perft(0) is 1 by definition.
func (b Board) Perft(depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	for _, m := range b.GenerateMoves() {
		nodes += b.ApplyMove(m).Perft(depth - 1)
	}
	return nodes
}

// RootCount is one line of a perft-divide breakdown: the root move played
// and the leaf count reachable beneath it.
type RootCount struct {
	Move  Move
	Nodes uint64
}

// PerftDivide plays every legal root move once, sums Perft(depth-1) beneath
// each, and returns the per-root-move breakdown alongside the total.
func (b Board) PerftDivide(depth int) (uint64, []RootCount) {
	if depth <= 0 {
		return 1, nil
	}
	moves := b.GenerateMoves()
	counts := make([]RootCount, 0, len(moves))
	var total uint64
	for _, m := range moves {
		n := b.ApplyMove(m).Perft(depth - 1)
		counts = append(counts, RootCount{Move: m, Nodes: n})
		total += n
	}
	return total, counts
}

// PrintDivide runs PerftDivide and prints the "<uci-move>: <count>" lines
// plus the grand total to stdout.
func (b Board) PrintDivide(depth int) uint64 {
	total, counts := b.PerftDivide(depth)
	for _, rc := range counts {
		out.Printf("%s: %d\n", rc.Move.UCIName(), rc.Nodes)
	}
	out.Printf("\nNodes searched: %d\n", total)
	return total
}
