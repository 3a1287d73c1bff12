// Package config loads isotopeboat's settings from a TOML file,
// falling back to compiled-in defaults for anything the file omits or
// when no file is present at all.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// LogLevel is the general log level, resolved from Settings.Log by
// Setup. Numeric values follow op-logging's own Level scale.
var LogLevel = 4 // INFO

// Settings is the global configuration, populated by Setup.
var Settings conf

var initialized = false

type conf struct {
	Search   searchConfiguration
	Log      logConfiguration
	TieBreak tieBreakConfiguration
}

type searchConfiguration struct {
	// DefaultAlgorithm is the algorithm the CLI falls back to until
	// its "algorithm" command has been used. One of: bfts, id-dfgs,
	// grbfgs, asgs.
	DefaultAlgorithm string
	// DefaultHeuristic names the heuristic the CLI falls back to
	// until its "heuristic" command has been used. One of: smart,
	// admissable, consistent.
	DefaultHeuristic string
	// IDDFGSDepthCap bounds iterative deepening; 0 means "use the
	// board's cell count", computed per puzzle at solve time.
	IDDFGSDepthCap int
}

type logConfiguration struct {
	Level string
}

type tieBreakConfiguration struct {
	// Seed drives the priority queue's randomised tiebreak draw.
	// Spec default is 0, for reproducible search runs.
	Seed uint64
}

// LogLevels maps config-file level names to op-logging numeric levels.
var LogLevels = map[string]int{
	"critical": 0,
	"error":    1,
	"warning":  2,
	"notice":   3,
	"info":     4,
	"debug":    5,
}

func init() {
	Settings.Search.DefaultAlgorithm = "asgs"
	Settings.Search.DefaultHeuristic = "consistent"
	Settings.Search.IDDFGSDepthCap = 0
	Settings.Log.Level = "info"
	Settings.TieBreak.Seed = 0
}

// Setup reads path into Settings, applying compiled-in defaults for
// anything the file doesn't set or if the file can't be read at all.
// Safe to call more than once; only the first call has effect.
func Setup(path string) {
	if initialized {
		return
	}
	if _, err := toml.DecodeFile(path, &Settings); err != nil {
		fmt.Println("config: using built-in defaults:", err)
	}
	if level, ok := LogLevels[Settings.Log.Level]; ok {
		LogLevel = level
	}
	initialized = true
}
