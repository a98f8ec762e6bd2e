// Package build provides variables that are set at build-time
// with the -X ldflag. If the values are not given at build-time,
// they are read from [debug.BuildInfo].
package build

import (
	"regexp"
	"runtime/debug"
	"strings"
	"sync"
)

var (
	pkg       string
	version   string
	buildTime string
)

var once sync.Once

var semverRE = regexp.MustCompile(`v?\d+(\.\d+){0,2}`)

func semver(v string) string {
	loc := semverRE.FindStringIndex(v)
	if loc == nil {
		return v
	}
	return v[loc[0]:loc[1]]
}

// rfc3339 rewrites a trailing Z as an explicit +00:00 offset.
func rfc3339(t string) string {
	if s, ok := strings.CutSuffix(t, "Z"); ok {
		return s + "+00:00"
	}
	return t
}

func load() {
	defer func() {
		if version != "" {
			version += suffix
		}
	}()

	if pkg != "" && version != "" && buildTime != "" {
		version = semver(version)
		return
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	if pkg == "" {
		pkg = info.Main.Path
	}
	if version == "" {
		version = info.Main.Version
	}
	if buildTime == "" {
		for _, s := range info.Settings {
			if s.Key == "vcs.time" && s.Value != "" {
				buildTime = rfc3339(s.Value)
				break
			}
		}
	}
}

// Package returns the import path of the main module.
func Package() string {
	once.Do(load)
	return pkg
}

// Version returns the version of the main module, or "(devel)" if unknown.
func Version() string {
	once.Do(load)
	if version == "" {
		return "(devel)"
	}
	return version
}

func BuildTime() string {
	once.Do(load)
	return buildTime
}

// String returns the version line printed by the command line tool.
func String() string {
	s := "uomgrade " + Version()
	if buildTime != "" {
		s += " built " + buildTime
	}
	return s
}
