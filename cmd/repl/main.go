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

	"github.com/frankkopp/goperft/internal/config"
	"github.com/frankkopp/goperft/internal/repl"
)

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	fenStr := flag.String("fen", "", "starting position\n(defaults to the config file's perft.startupFen)")
	flag.Parse()

	config.ConfFile = *configFile
	config.Setup()

	startFen := *fenStr
	if startFen == "" {
		startFen = config.Settings.Perft.StartupFen
	}

	r, err := repl.New(os.Stdin, os.Stdout, startFen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid fen %q: %v\n", startFen, err)
		os.Exit(1)
	}
	r.Loop()
}
