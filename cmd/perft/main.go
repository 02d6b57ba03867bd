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

package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/goperft/internal/board"
	"github.com/frankkopp/goperft/internal/config"
	"github.com/frankkopp/goperft/internal/fen"
)

var out = message.NewPrinter(language.German)

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	fenStr := flag.String("fen", "", "fen of the position to run perft on\n(defaults to the standard starting position, or the config file's startup fen)")
	depth := flag.Int("depth", 0, "runs perft at every depth from 1 up to and including this one\n(defaults to the config file's perft.defaultDepth)")
	divide := flag.Bool("divide", false, "also print the per-root-move node count at the final depth")
	cpuProfile := flag.Bool("profile", false, "writes a CPU profile of the run to the working directory")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	config.ConfFile = *configFile
	config.Setup()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	startFen := *fenStr
	if startFen == "" {
		startFen = config.Settings.Perft.StartupFen
	}
	if startFen == "" {
		startFen = board.StartFen
	}
	maxDepth := *depth
	if maxDepth == 0 {
		maxDepth = config.Settings.Perft.DefaultDepth
	}
	if maxDepth <= 0 {
		maxDepth = 1
	}

	b, err := fen.Parse(startFen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid fen %q: %v\n", startFen, err)
		os.Exit(1)
	}

	for d := 1; d <= maxDepth; d++ {
		start := time.Now()
		var nodes uint64
		if *divide && d == maxDepth {
			nodes = b.PrintDivide(d)
		} else {
			nodes = b.Perft(d)
		}
		elapsed := time.Since(start)
		out.Printf("Perft depth %d: %d nodes in %s\n", d, nodes, elapsed)
	}
}

func printVersionInfo() {
	out.Println("goperft - chess move generator and perft engine")
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
