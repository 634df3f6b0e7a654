package main

import (
	"fmt"
	"io"
	"runtime/debug"

	"github.com/alecthomas/kong"
)

// _version is set at release time with -ldflags.
var _version = "dev"

var _debugReadBuildInfo = debug.ReadBuildInfo

type versionFlag bool

func (v versionFlag) BeforeReset(app *kong.Kong) error {
	writeVersion(app.Stdout)
	app.Exit(0)
	return nil
}

// writeVersion prints the release version,
// followed by the commit the binary was built from if it's known.
//
//	git-split-commit dev
//	commit 0123abcd4567 (modified), 2024-05-21T20:30:40Z
func writeVersion(w io.Writer) {
	fmt.Fprintf(w, "git-split-commit %s\n", _version)

	info, ok := _debugReadBuildInfo()
	if !ok {
		return
	}

	var commit, when string
	var modified bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			commit = s.Value
		case "vcs.time":
			when = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}
	if commit == "" {
		return
	}

	if len(commit) > 12 {
		commit = commit[:12]
	}
	fmt.Fprintf(w, "commit %s", commit)
	if modified {
		fmt.Fprint(w, " (modified)")
	}
	if when != "" {
		fmt.Fprintf(w, ", %s", when)
	}
	fmt.Fprintln(w)
}
