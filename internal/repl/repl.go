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

// Package repl is an interactive read-eval-print driver for exploring a
// position from the terminal: a small set of chess-study commands
// ("position", "move", "moves", "perft", "divide", "print", "quit"), read
// a line at a time and dispatched on the first token.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/frankkopp/goperft/internal/board"
	"github.com/frankkopp/goperft/internal/fen"
	myLogging "github.com/frankkopp/goperft/internal/logging"
	"github.com/frankkopp/goperft/internal/render"
)

var log = myLogging.GetLog("repl")

var regexWhiteSpace = regexp.MustCompile(`\s+`)

// Repl holds the session's current position and the io it reads from /
// writes to.
type Repl struct {
	in  *bufio.Scanner
	out io.Writer
	pos board.Board
}

// New creates a Repl reading from in and writing to out, starting at
// startFen (the standard starting position if startFen is empty).
func New(in io.Reader, out io.Writer, startFen string) (*Repl, error) {
	r := &Repl{in: bufio.NewScanner(in), out: out}
	if startFen == "" {
		r.pos = board.Start()
		return r, nil
	}
	p, err := fen.Parse(startFen)
	if err != nil {
		return nil, err
	}
	r.pos = p
	return r, nil
}

// Loop reads commands until "quit" or end of input.
func (r *Repl) Loop() {
	for r.in.Scan() {
		if r.dispatch(r.in.Text()) {
			return
		}
	}
}

// dispatch handles a single line; it returns true when the session should
// end.
func (r *Repl) dispatch(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	tokens := regexWhiteSpace.Split(line, -1)
	switch tokens[0] {
	case "quit", "exit":
		return true
	case "position":
		r.positionCommand(tokens)
	case "move":
		r.moveCommand(tokens)
	case "moves":
		r.movesCommand()
	case "perft":
		r.perftCommand(tokens)
	case "divide":
		r.divideCommand(tokens)
	case "print":
		fmt.Fprint(r.out, render.Board(r.pos))
	default:
		log.Warningf("unknown command: %s", line)
		fmt.Fprintf(r.out, "unknown command: %s\n", tokens[0])
	}
	return false
}

func (r *Repl) positionCommand(tokens []string) {
	if len(tokens) < 2 {
		fmt.Fprintln(r.out, "usage: position startpos|<fen> [moves <m1> <m2> ...]")
		return
	}
	rest := tokens[1:]
	var fenStr string
	if rest[0] == "startpos" {
		fenStr = board.StartFen
		rest = rest[1:]
	} else {
		movesIdx := indexOf(rest, "moves")
		if movesIdx == -1 {
			fenStr = strings.Join(rest, " ")
			rest = nil
		} else {
			fenStr = strings.Join(rest[:movesIdx], " ")
			rest = rest[movesIdx:]
		}
	}
	p, err := fen.Parse(fenStr)
	if err != nil {
		fmt.Fprintf(r.out, "error: %v\n", err)
		return
	}
	r.pos = p
	if len(rest) > 0 && rest[0] == "moves" {
		for _, name := range rest[1:] {
			if !r.applyNamed(name) {
				fmt.Fprintf(r.out, "error: illegal move %q\n", name)
				return
			}
		}
	}
}

func (r *Repl) moveCommand(tokens []string) {
	if len(tokens) < 2 {
		fmt.Fprintln(r.out, "usage: move <uci>")
		return
	}
	if !r.applyNamed(tokens[1]) {
		fmt.Fprintf(r.out, "error: illegal move %q\n", tokens[1])
	}
}

func (r *Repl) movesCommand() {
	for _, m := range r.pos.GenerateMoves() {
		fmt.Fprintln(r.out, m.UCIName())
	}
}

func (r *Repl) perftCommand(tokens []string) {
	depth := 1
	if len(tokens) >= 2 {
		if n, err := strconv.Atoi(tokens[1]); err == nil {
			depth = n
		}
	}
	fmt.Fprintf(r.out, "%d\n", r.pos.Perft(depth))
}

func (r *Repl) divideCommand(tokens []string) {
	depth := 1
	if len(tokens) >= 2 {
		if n, err := strconv.Atoi(tokens[1]); err == nil {
			depth = n
		}
	}
	total, counts := r.pos.PerftDivide(depth)
	for _, rc := range counts {
		fmt.Fprintf(r.out, "%s: %d\n", rc.Move.UCIName(), rc.Nodes)
	}
	fmt.Fprintf(r.out, "total: %d\n", total)
}

// applyNamed looks up name among the current position's legal moves and,
// if found, applies it. Matching against the generated list (rather than
// decoding the squares and trusting the caller) keeps an illegal or
// mistyped move from ever reaching ApplyMove, whose contract requires a
// move produced by GenerateMoves on this same Board.
func (r *Repl) applyNamed(name string) bool {
	for _, m := range r.pos.GenerateMoves() {
		if strings.EqualFold(m.UCIName(), name) || strings.EqualFold(m.Name(), name) {
			r.pos = r.pos.ApplyMove(m)
			return true
		}
	}
	return false
}

func indexOf(s []string, target string) int {
	for i, v := range s {
		if v == target {
			return i
		}
	}
	return -1
}
