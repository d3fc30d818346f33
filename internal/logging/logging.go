package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

var (
	Debug   *log.Logger
	Enabled bool
)

func init() {
	// Only enable logging if WEIGHTMAP_DEBUG is set; a TUI cannot share
	// its terminal with log output
	if os.Getenv("WEIGHTMAP_DEBUG") == "" {
		Debug = log.New(io.Discard)
		return
	}

	Enabled = true

	f, err := os.OpenFile("debug.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		Debug = newLogger(os.Stderr)
		return
	}
	Debug = newLogger(f)
}

func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           log.DebugLevel,
	})
}
