// Package logging builds the structured logger shared by storage, commands and the TUI.
// The TUI owns the terminal, so logs only ever go to a file.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Params holds parameters for New.
type Params struct {
	Path  string // log file; empty discards everything
	Debug bool
}

// New returns a logger writing to params.Path, and a closer for the file.
func New(params Params) (*log.Logger, io.Closer, error) {
	if params.Path == "" {
		return Discard(), nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(params.Path), 0755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(params.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, err
	}

	level := log.InfoLevel
	if params.Debug {
		level = log.DebugLevel
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "bmlite",
		Level:           level,
	})
	return logger, f, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
