// Package version reports which pairup build is running.
package version

import "runtime/debug"

// Set with -ldflags "-X github.com/cristianoliveira/pairup/internal/version.Version=...".
var (
	Version = "development"
	Commit  = "unknown"
)

var readBuildInfo = debug.ReadBuildInfo

// String returns Version, suffixed with +commit when a commit is known. Builds
// without ldflags fall back to the module version and VCS revision that the
// Go toolchain stamps into the binary.
func String() string {
	v, c := Version, Commit
	if v == "development" || c == "unknown" {
		bv, bc := fromBuildInfo()
		if v == "development" && bv != "" {
			v = bv
		}
		if c == "unknown" && bc != "" {
			c = bc
		}
	}
	if c == "unknown" {
		return v
	}
	return v + "+" + c
}

func fromBuildInfo() (ver, rev string) {
	info, ok := readBuildInfo()
	if !ok {
		return "", ""
	}
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		ver = info.Main.Version
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 7 {
			rev = s.Value[:7]
		}
	}
	return ver, rev
}
