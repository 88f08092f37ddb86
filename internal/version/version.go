// Package version reports the gridctl build version.
package version

import (
	"runtime/debug"
	"time"
)

// These variables can be set at build time via ldflags:
//
//	go build -ldflags="-X github.com/grindlemire/go-grid/internal/version.Version=v0.2.0 \
//	                   -X github.com/grindlemire/go-grid/internal/version.Commit=abc1234"
//
// Unset values are filled from the binary's build info, then fall back to
// "dev" and "unknown".
var (
	// Version is the semantic version of the binary
	Version = ""
	// Commit is the short git commit hash
	Commit = ""
)

func init() {
	if Version == "" || Commit == "" {
		if info, ok := debug.ReadBuildInfo(); ok {
			v, c := fromBuildInfo(info)
			if Version == "" {
				Version = v
			}
			if Commit == "" {
				Commit = c
			}
		}
	}

	if Version == "" {
		Version = "dev"
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

// fromBuildInfo derives a version and commit from build info. A module
// version (set by go install pkg@version) wins; otherwise the version is
// dev-<commit date>. Either result may be empty.
func fromBuildInfo(info *debug.BuildInfo) (version, commit string) {
	var revision, modified, vcsTime string
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			modified = setting.Value
		case "vcs.time":
			vcsTime = setting.Value
		}
	}

	if revision != "" {
		commit = revision
		if len(commit) > 7 {
			commit = commit[:7]
		}
		if modified == "true" {
			commit += "-dirty"
		}
	}

	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v, commit
	}
	if t, err := time.Parse(time.RFC3339, vcsTime); err == nil {
		version = "dev-" + t.Format("20060102")
	}
	return version, commit
}
