package app

import (
	"fmt"
	"runtime/debug"
)

// Version, Commit, and BuildTime are set via ldflags at build time:
//
//	go build -ldflags "-X github.com/heartmarshall/timetracker-backend/internal/app.Version=1.0.0" ./cmd/server
//
// When they are left unset, module and VCS data embedded by the toolchain
// is used instead (go install, plain go build inside a checkout).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion returns a formatted version string for startup logs, the
// /health endpoint and trackctl --version.
func BuildVersion() string {
	version, commit, built := Version, Commit, BuildTime
	if info, ok := debug.ReadBuildInfo(); ok {
		version, commit, built = fromBuildInfo(info, version, commit, built)
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, built)
}

// fromBuildInfo fills in only the values that ldflags left at their defaults.
func fromBuildInfo(info *debug.BuildInfo, version, commit, built string) (string, string, string) {
	if version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if commit == "unknown" && s.Value != "" {
				commit = s.Value
				if len(commit) > 12 {
					commit = commit[:12]
				}
			}
		case "vcs.time":
			if built == "unknown" && s.Value != "" {
				built = s.Value
			}
		}
	}
	return version, commit, built
}
