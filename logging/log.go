// Package logging is a thin wrapper over github.com/op/go-logging,
// giving each concern its own named logger over a shared formatter so
// call sites never touch backend configuration directly.
package logging

import (
	golog "log"
	"os"

	"github.com/op/go-logging"

	"github.com/vxm/isotopeboat/config"
)

var format = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{module:-10s} %{level:-7.7s} %{message}`,
)

var (
	solverLog *logging.Logger
	searchLog *logging.Logger
	parserLog *logging.Logger
	cliLog    *logging.Logger
)

func init() {
	solverLog = logging.MustGetLogger("solver")
	searchLog = logging.MustGetLogger("search")
	parserLog = logging.MustGetLogger("parser")
	cliLog = logging.MustGetLogger("cli")
}

func backend() logging.Backend {
	raw := logging.NewLogBackend(os.Stdout, "", golog.Lmsgprefix)
	formatted := logging.NewBackendFormatter(raw, format)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.Level(config.LogLevel), "")
	return leveled
}

// Solver returns the logger for solver-facade events.
func Solver() *logging.Logger {
	solverLog.SetBackend(backend())
	return solverLog
}

// Search returns the logger for search-algorithm events.
func Search() *logging.Logger {
	searchLog.SetBackend(backend())
	return searchLog
}

// Parser returns the logger for puzzleio parsing events.
func Parser() *logging.Logger {
	parserLog.SetBackend(backend())
	return parserLog
}

// CLI returns the logger for the interactive command loop.
func CLI() *logging.Logger {
	cliLog.SetBackend(backend())
	return cliLog
}
