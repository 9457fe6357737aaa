// Package logging is a thin wrapper around "github.com/op/go-logging"
// that reduces every other package's logging setup to one call.
// GetLog/GetSearchLog/GetTestLog return preconfigured *logging.Logger
// values whose level is driven by internal/config, exactly as the
// teacher's logging/log.go splits loggers by purpose.
package logging

import (
	"log"
	"os"

	"github.com/op/go-logging"

	"github.com/tkopp/makhos/internal/config"
)

var (
	standardLog *logging.Logger
	searchLog   *logging.Logger
	testLog     *logging.Logger

	standardFormat = logging.MustStringFormatter(
		`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`)
)

func init() {
	standardLog = logging.MustGetLogger("makhos")
	searchLog = logging.MustGetLogger("search")
	testLog = logging.MustGetLogger("test")
}

// GetLog returns the standard logger, backed by Stdout, level driven
// by config.LogLevel.
func GetLog() *logging.Logger {
	return configure(standardLog, config.LogLevel)
}

// GetSearchLog returns the search-trace logger used by
// internal/search to report root draws, finisher hits and one summary
// line per completed depth, level driven by config.SearchLogLevel.
func GetSearchLog() *logging.Logger {
	return configure(searchLog, config.SearchLogLevel)
}

// GetTestLog returns the logger for test output, level driven by
// config.TestLogLevel. No package test in this module calls it.
func GetTestLog() *logging.Logger {
	return configure(testLog, config.TestLogLevel)
}

func configure(l *logging.Logger, level int) *logging.Logger {
	backend := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	formatted := logging.NewBackendFormatter(backend, standardFormat)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.Level(level), "")
	l.SetBackend(leveled)
	return l
}
