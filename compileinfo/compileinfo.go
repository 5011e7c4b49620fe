// Package compileinfo reports the version control state that the Go toolchain
// stamps into the binaries it builds.
package compileinfo

import (
	"fmt"
	"os"
	"runtime/debug"
)

// CompileInfo identifies the source state a binary was built from.
type CompileInfo struct {
	Package    string
	GoVersion  string
	Commit     string
	CommitTime string
	Modified   bool
}

func (c CompileInfo) String() string {
	commit := c.Commit
	if commit == "" {
		commit = "an unknown commit"
	}
	if c.Modified {
		commit += " (locally modified)"
	}

	return fmt.Sprintf("%s built with %s from %s at %s", c.Package, c.GoVersion, commit, c.CommitTime)
}

// Get reads the build information stamped into the running binary. Binaries
// built outside of version control yield zero-valued fields.
func Get() CompileInfo {
	out := CompileInfo{}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return out
	}

	out.Package = bi.Path
	out.GoVersion = bi.GoVersion
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			out.Commit = s.Value
		case "vcs.time":
			out.CommitTime = s.Value
		case "vcs.modified":
			out.Modified = s.Value == "true"
		}
	}

	return out
}

func PrintToStdErr() {
	fmt.Fprintln(os.Stderr, Get())
}
