// Package compileinfoprint is blank-imported by binaries for the side effect
// of printing the build's compileinfo to stderr at startup.
package compileinfoprint

import "github.com/regbench/regbench/compileinfo"

func init() {
	compileinfo.PrintToStdErr()
}
