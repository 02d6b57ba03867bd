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

package config

import (
	"fmt"
	"os"
	"path"
	"runtime"
	"testing"
)

// make tests run in the project's root directory so the default
// ConfFile path resolves the same way it would for a built binary.
func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}

func TestSetup(t *testing.T) {
	Setup()
	fmt.Printf("LogLevel: %v\n", LogLevel)
	fmt.Printf("Perft.DefaultDepth: %v\n", Settings.Perft.DefaultDepth)
	fmt.Printf("Perft.StartupFen: %v\n", Settings.Perft.StartupFen)
	if Settings.Perft.DefaultDepth <= 0 {
		t.Fatalf("expected a positive default depth, got %d", Settings.Perft.DefaultDepth)
	}
	if Settings.Perft.StartupFen == "" {
		t.Fatalf("expected a non-empty startup FEN")
	}
}

func TestSetupIdempotent(t *testing.T) {
	Setup()
	first := Settings.Perft.StartupFen
	Settings.Perft.StartupFen = "custom"
	Setup()
	if Settings.Perft.StartupFen != "custom" {
		t.Fatalf("Setup should be a no-op after first call, got %q want %q", Settings.Perft.StartupFen, "custom")
	}
	_ = first
}
