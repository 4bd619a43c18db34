// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.

// Package buildvars contains variables injected at build time.
package buildvars

import (
	"runtime/debug"
)

const modulePath = "github.com/toeirei/dashui"

// Set at link time via `-ldflags -X github.com/toeirei/dashui/buildvars.Version=...`.
// They stay empty for local or development builds.
var (
	Version   string
	GitCommit string
	BuildDate string
)

// VersionOrDefault returns `Version` if set, otherwise returns the provided default.
func VersionOrDefault(def string) string {
	if len(Version) > 0 {
		return Version
	}
	return def
}

type Info struct {
	Version string
	Commit  string
	Date    string
}

// String renders the info as "version (commit) built: date", leaving out
// unknown parts.
func (i Info) String() string {
	s := i.Version
	if i.Commit != "" && i.Commit != "dev" {
		s += " (" + i.Commit + ")"
	}
	if i.Date != "" {
		s += " built: " + i.Date
	}
	return s
}

// Resolve computes the best available version, commit and build date. The
// linker values win, then the module build info, then the vcs settings. A
// nil info reads the build info of the running binary.
func Resolve(info *debug.BuildInfo) Info {
	out := Info{
		Version: VersionOrDefault("dev"),
		Commit:  GitCommit,
		Date:    BuildDate,
	}

	if info == nil {
		if local, ok := debug.ReadBuildInfo(); ok {
			info = local
		}
	}
	if info != nil {
		if out.Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			out.Version = info.Main.Version
		}
		// imported as a library the version sits in the deps
		if out.Version == "dev" {
			for _, dep := range info.Deps {
				if dep.Path == modulePath && dep.Version != "" {
					out.Version = dep.Version
					break
				}
			}
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if out.Commit == "" {
					out.Commit = s.Value
				}
			case "vcs.time":
				if out.Date == "" {
					out.Date = s.Value
				}
			}
		}
	}

	if out.Version == "dev" && out.Commit != "" {
		out.Version = out.Commit
	}
	return out
}
