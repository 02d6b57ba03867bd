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

// Package config holds globally available configuration variables which
// are either set by defaults, read from a config file, or set by command
// line options. Limited to the settings a move generator and perft driver
// actually need: no search or evaluation configuration.
package config

import (
	"log"

	"github.com/BurntSushi/toml"
)

// globally available config values.
var (
	// ConfFile holds the path to the config file (relative to the working
	// directory). Overridable before calling Setup().
	ConfFile = "./config.toml"

	// LogLevel is the standard log level name, overridable by the config
	// file. The logging backend does not read it and stays at INFO.
	LogLevel = "info"

	// Settings is the global configuration read in from file.
	Settings conf

	initialized = false
)

// conf mirrors the layout of config.toml.
type conf struct {
	Log   logConfiguration
	Perft perftConfiguration
}

type logConfiguration struct {
	LogLvl string
}

type perftConfiguration struct {
	// DefaultDepth is used by cmd/perft when no -depth flag is given.
	DefaultDepth int
	// GroupDigits is read from the config file but not consulted: cmd/perft
	// and board.PrintDivide always print thousands-grouped counts via
	// golang.org/x/text/message.
	GroupDigits bool
	// StartupFen is the position the REPL loads when launched without
	// a "position" command.
	StartupFen string
}

// defaults applied when config.toml is absent or a field is unset.
const (
	defaultPerftDepth = 5
	defaultStartupFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
)

// Setup reads the configuration file and fills in defaults for anything
// the file does not set. Safe to call more than once; later calls are a
// no-op.
func Setup() {
	if initialized {
		return
	}
	if _, err := toml.DecodeFile(ConfFile, &Settings); err != nil {
		log.Println("config file not found, using defaults:", err)
	}
	if Settings.Log.LogLvl != "" {
		LogLevel = Settings.Log.LogLvl
	}
	if Settings.Perft.DefaultDepth <= 0 {
		Settings.Perft.DefaultDepth = defaultPerftDepth
	}
	if Settings.Perft.StartupFen == "" {
		Settings.Perft.StartupFen = defaultStartupFen
	}
	initialized = true
}
