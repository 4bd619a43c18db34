// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.

package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	clog "github.com/charmbracelet/log"
)

// TestLoggingHelpers_WriteToBuffer verifies the package helper functions write
// formatted messages to the package-level logger `L`. The test swaps `L` with
// a buffer-backed logger and restores it afterwards.
func TestLoggingHelpers_WriteToBuffer(t *testing.T) {
	var buf bytes.Buffer
	prev := L
	L = clog.New(&buf)
	L.SetLevel(clog.DebugLevel)
	defer func() { L = prev }()

	Debugf("hello %s", "dbg")
	Infof("info %d", 1)
	Warnf("warn")
	Errorf("err %v", "E")

	out := buf.String()
	for _, want := range []string{"hello dbg", "info 1", "warn", "err E"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in output; got: %s", want, out)
		}
	}
}

func TestSetDebug_SuppressesDebugAtInfoLevel(t *testing.T) {
	var buf bytes.Buffer
	prev := L
	L = clog.New(&buf)
	defer func() { L = prev }()

	SetDebug(false)
	Debugf("hidden")
	if strings.Contains(buf.String(), "hidden") {
		t.Fatalf("debug message emitted at info level: %s", buf.String())
	}

	SetDebug(true)
	Debugf("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("debug message missing at debug level: %s", buf.String())
	}
}

func TestSetup_WritesToFileAndRestores(t *testing.T) {
	prev := L
	path := filepath.Join(t.TempDir(), "dashui.log")

	closer, err := Setup(path, false)
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	Infof("into the file")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if L != prev {
		t.Fatalf("expected logger to be restored after Close")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "into the file") {
		t.Fatalf("log file missing message; got: %s", data)
	}
}

func TestSetup_EmptyPathDiscards(t *testing.T) {
	prev := L
	closer, err := Setup("", true)
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	defer closer.Close()
	if L == prev {
		t.Fatalf("expected a replacement logger")
	}
	Infof("nowhere")
}
