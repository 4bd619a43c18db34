// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.

// Package logging wraps a package-level charmbracelet/log logger. While a
// Bubble Tea program owns the terminal, output is redirected to a file.
package logging

import (
	"fmt"
	"io"
	"os"

	clog "github.com/charmbracelet/log"
)

// L is the package-level logger. Callers should use the helper functions
// below rather than holding on to L.
var L = clog.New(os.Stderr)

// SetDebug switches the logger between debug and info level.
func SetDebug(enabled bool) {
	if enabled {
		L.SetLevel(clog.DebugLevel)
	} else {
		L.SetLevel(clog.InfoLevel)
	}
}

// Setup points the logger at path (appending) and returns a closer that
// restores the previous output. An empty path discards all log output.
func Setup(path string, debug bool) (io.Closer, error) {
	prev := L
	if path == "" {
		L = clog.New(io.Discard)
		SetDebug(debug)
		return restorer{prev: prev}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("could not open log file %s: %w", path, err)
	}
	L = clog.NewWithOptions(f, clog.Options{
		ReportTimestamp: true,
		Prefix:          "dashui",
	})
	SetDebug(debug)
	return restorer{prev: prev, file: f}, nil
}

type restorer struct {
	prev *clog.Logger
	file *os.File
}

func (r restorer) Close() error {
	L = r.prev
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}

// Debugf logs a debug-level formatted message.
func Debugf(format string, v ...any) {
	L.Debug(fmt.Sprintf(format, v...))
}

// Infof logs an info-level formatted message.
func Infof(format string, v ...any) {
	L.Info(fmt.Sprintf(format, v...))
}

// Warnf logs a warning-level formatted message.
func Warnf(format string, v ...any) {
	L.Warn(fmt.Sprintf(format, v...))
}

// Errorf logs an error-level formatted message.
func Errorf(format string, v ...any) {
	L.Error(fmt.Sprintf(format, v...))
}
