// Package buildinfo reports which build of segview is running.
package buildinfo

import "runtime/debug"

// Set at build time via -ldflags "-X segview/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Info is a resolved build identity.
type Info struct {
	Version  string
	Commit   string
	Date     string
	Modified bool
}

// Read returns the ldflags values, filling Commit, Date and Modified from the
// VCS stamp the Go toolchain embeds when ldflags left them unset.
func Read() Info {
	info := Info{Version: Version, Commit: Commit, Date: Date}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "" || info.Commit == "unknown" {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.Date == "" || info.Date == "unknown" {
				info.Date = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

// Short returns a compact identifier: the release version, else a short commit,
// else "dev".
func (i Info) Short() string {
	if i.Version != "" && i.Version != "dev" {
		return i.Version
	}
	if i.Commit != "" && i.Commit != "unknown" {
		c := i.Commit
		if len(c) > 12 {
			c = c[:12]
		}
		if i.Modified {
			c += "+dirty"
		}
		return c
	}
	return "dev"
}

func (i Info) String() string {
	return i.Short() + " (commit " + i.Commit + ", built " + i.Date + ")"
}

// Short is Read().Short().
func Short() string { return Read().Short() }

// String is Read().String().
func String() string { return Read().String() }
