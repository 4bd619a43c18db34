package buildvars

import (
	"runtime/debug"
	"testing"
)

func withVars(t *testing.T, version, commit, date string) {
	t.Helper()
	v, c, d := Version, GitCommit, BuildDate
	t.Cleanup(func() { Version, GitCommit, BuildDate = v, c, d })
	Version, GitCommit, BuildDate = version, commit, date
}

func TestVersionOrDefault(t *testing.T) {
	withVars(t, "", "", "")
	if got := VersionOrDefault("unknown"); got != "unknown" {
		t.Fatalf("got %q", got)
	}
	Version = "v1.0.0"
	if got := VersionOrDefault("unknown"); got != "v1.0.0" {
		t.Fatalf("got %q", got)
	}
}

func TestResolve_MainVersion(t *testing.T) {
	withVars(t, "", "", "")
	info := &debug.BuildInfo{Main: debug.Module{Path: modulePath, Version: "v1.2.3"}}
	if got := Resolve(info); got.Version != "v1.2.3" {
		t.Fatalf("expected v1.2.3 got %s", got.Version)
	}
}

func TestResolve_DependencyFallback(t *testing.T) {
	withVars(t, "", "", "")
	info := &debug.BuildInfo{
		Main: debug.Module{Path: "example.com/app", Version: "(devel)"},
		Deps: []*debug.Module{{Path: modulePath, Version: "v0.4.0"}},
	}
	if got := Resolve(info); got.Version != "v0.4.0" {
		t.Fatalf("expected dependency version got %s", got.Version)
	}
}

func TestResolve_VCSAndCommitFallback(t *testing.T) {
	withVars(t, "", "", "")
	info := &debug.BuildInfo{
		Main: debug.Module{Path: modulePath, Version: "(devel)"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "deadbeef"},
			{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
		},
	}
	got := Resolve(info)
	if got.Version != "deadbeef" || got.Commit != "deadbeef" || got.Date != "2026-01-02T03:04:05Z" {
		t.Fatalf("unexpected info %+v", got)
	}
	if s := got.String(); s != "deadbeef (deadbeef) built: 2026-01-02T03:04:05Z" {
		t.Fatalf("String() = %q", s)
	}
}

func TestResolve_LinkerWins(t *testing.T) {
	withVars(t, "v9.9.9", "abc", "")
	info := &debug.BuildInfo{Main: debug.Module{Path: modulePath, Version: "v1.2.3"}}
	if got := Resolve(info); got.Version != "v9.9.9" || got.Commit != "abc" {
		t.Fatalf("unexpected info %+v", got)
	}
}
