package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

var (
	// These variables are set at build time using -ldflags
	Version   = "dev"
	GitCommit = ""
	BuildTime = ""
)

const zerologModule = "github.com/rs/zerolog"

// Info describes the running binary.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version"`
	Zerolog   string `json:"zerolog"`
	IsDirty   bool   `json:"is_dirty"`
}

// Get returns the build information, preferring -ldflags values over the
// embedded VCS stamp.
func Get() *Info {
	info := &Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildTime: BuildTime,
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		info.fill(bi)
	}
	return info
}

func (i *Info) fill(bi *debug.BuildInfo) {
	i.GoVersion = bi.GoVersion
	for _, dep := range bi.Deps {
		if dep.Path == zerologModule {
			i.Zerolog = dep.Version
		}
	}
	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			if i.GitCommit == "" {
				i.GitCommit = setting.Value
			}
		case "vcs.modified":
			i.IsDirty = setting.Value == "true"
		case "vcs.time":
			if i.BuildTime == "" {
				i.BuildTime = setting.Value
			}
		}
	}
	if len(i.GitCommit) > 7 {
		i.GitCommit = i.GitCommit[:7]
	}
}

// IsRelease reports whether the version was stamped by a release build.
func (i *Info) IsRelease() bool {
	return i.Version != "dev" && !i.IsDirty && !strings.Contains(i.Version, "dirty")
}

// Short returns version[-commit][-dirty].
func (i *Info) Short() string {
	parts := []string{i.Version}
	if i.GitCommit != "" {
		parts = append(parts, i.GitCommit)
	}
	if i.IsDirty {
		parts = append(parts, "dirty")
	}
	return strings.Join(parts, "-")
}

// String returns the short version followed by toolchain details.
func (i *Info) String() string {
	var details []string
	if i.GoVersion != "" {
		details = append(details, i.GoVersion)
	}
	if i.Zerolog != "" {
		details = append(details, "zerolog "+i.Zerolog)
	}
	if i.BuildTime != "" {
		details = append(details, "built "+i.BuildTime)
	}
	if len(details) == 0 {
		return i.Short()
	}
	return fmt.Sprintf("%s (%s)", i.Short(), strings.Join(details, ", "))
}
