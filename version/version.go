package version

import (
	"fmt"
	"runtime/debug"
)

// FromBuildInfo describes the running binary from its embedded build info.
func FromBuildInfo() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "version unavailable"
	}

	var revision, modified string

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			if setting.Value == "true" {
				modified = "+dirty"
			}
		}
	}

	return describe(info.Main.Version, revision, modified)
}

func describe(mainVersion, revision, modified string) string {
	if mainVersion == "" {
		mainVersion = "(devel)"
	}

	if revision == "" {
		return "version " + mainVersion
	}

	if len(revision) > 12 {
		revision = revision[:12]
	}

	return fmt.Sprintf("version %s, revision %s%s", mainVersion, revision, modified)
}
