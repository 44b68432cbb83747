// Package meta exposes classdiff's own build/version information, for
// `classdiff version`.
package meta

import "runtime/debug"

// BuildInfo is a small, stable summary of the running binary's provenance.
type BuildInfo struct {
	Version   string // module version, "(devel)" for an unreleased build
	GoVersion string // toolchain version the binary was built with
	Revision  string // VCS revision, if embedded
	Dirty     bool   // true if the VCS tree had local modifications
}

// ReadBuildInfo reads the embedded build info via runtime/debug, falling
// back to a minimal BuildInfo when none is available (e.g. a `go run`
// invocation without a module-aware build). Version is "(unknown)" whenever
// no module version is recorded.
func ReadBuildInfo() BuildInfo {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return BuildInfo{Version: "(unknown)"}
	}
	info := BuildInfo{Version: bi.Main.Version, GoVersion: bi.GoVersion}
	if info.Version == "" {
		info.Version = "(unknown)"
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.Revision = s.Value
		case "vcs.modified":
			info.Dirty = s.Value == "true"
		}
	}
	return info
}
