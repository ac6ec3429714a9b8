package app

import (
	"fmt"
	"io"
)

// BuildInfo describes the binary; fields are set by ldflags.
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// PrintBuildInfo writes the build version block to w.
func PrintBuildInfo(w io.Writer, info BuildInfo) {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Fprintf(w, tmpl, info.Version, info.Date, info.Commit)
}
