// Package buildinfo carries the version stamped in at link time:
//
//	go build -ldflags "-X lumen/internal/buildinfo.Version=v1.2.0"
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns a compact build identifier for the window title and logs.
// Without ldflags it falls back to the VCS revision recorded by the Go
// toolchain.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if c := commit(); c != "" {
		return c
	}
	return "dev"
}

// String describes the build in one line.
func String() string {
	return fmt.Sprintf("lumen %s (commit %s, built %s)", Version, orUnknown(commit()), Date)
}

func commit() string {
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 7 {
			return s.Value[:7]
		}
	}
	return ""
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
