// Package buildinfo holds the build metadata of the lazystay binary. The
// linker injects values into cmd/lazystay; main calls Set to forward them.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

// Placeholders used when the linker injected nothing.
const (
	unknownVersion = "dev"
	unknownCommit  = "none"
	unknownDate    = "unknown"
	unknownBuilder = "unknown"
)

// Info describes one build.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	BuiltBy string `json:"built_by"`
}

var current = Info{
	Version: unknownVersion,
	Commit:  unknownCommit,
	Date:    unknownDate,
	BuiltBy: unknownBuilder,
}

// readBuildInfo is swapped in tests.
var readBuildInfo = debug.ReadBuildInfo

// Set stores linker-injected metadata. Empty values keep the placeholders.
func Set(version, commit, date, builtBy string) {
	if version != "" {
		current.Version = version
	}
	if commit != "" {
		current.Commit = commit
	}
	if date != "" {
		current.Date = date
	}
	if builtBy != "" {
		current.BuiltBy = builtBy
	}
}

// Version returns the build version string.
func Version() string { return current.Version }

// Get returns the metadata, filling a missing commit from the VCS revision
// and a missing builder from the Go version.
func Get() Info {
	info := current
	if info.Commit != unknownCommit && info.BuiltBy != unknownBuilder {
		return info
	}

	bi, ok := readBuildInfo()
	if !ok {
		return info
	}
	if info.Commit == unknownCommit {
		for _, setting := range bi.Settings {
			if setting.Key == "vcs.revision" && setting.Value != "" {
				info.Commit = setting.Value
			}
		}
	}
	if info.BuiltBy == unknownBuilder && bi.GoVersion != "" {
		info.BuiltBy = bi.GoVersion
	}
	return info
}

// String renders the metadata the way the version command prints it.
func (i Info) String() string {
	return fmt.Sprintf("lazystay version %s\ncommit: %s\nbuilt at: %s\nbuilt by: %s", i.Version, i.Commit, i.Date, i.BuiltBy)
}
