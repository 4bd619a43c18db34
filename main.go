// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for dashui.
//
// Usage:
//
//	go run . [flags]
//	./dashui [command] [flags]
//
// Without a command the demo dashboard starts. See --help for options.
package main

import (
	"fmt"
	"os"

	"github.com/toeirei/dashui/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "dashui: %v\n", err)
		os.Exit(1)
	}
}
