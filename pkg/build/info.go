// Copyright 2015 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package build

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
)

// TimeFormat is the reference format for build.Time. Make sure it stays in sync
// with the string passed to the linker.
const TimeFormat = "2006/01/02 15:04:05"

var (
	// These variables are initialized via the linker -X flag when compiling
	// release binaries.
	tag      = "unknown" // Tag of this build (git describe --tags w/ optional '-dirty' suffix)
	utcTime  string      // Build time in UTC (year/month/day hour:min:sec)
	rev      string      // SHA-1 of this build (git rev-parse)
	platform = fmt.Sprintf("%s %s", runtime.GOOS, runtime.GOARCH)
	typ      string // Type of this build: <empty>, "development", or "release"
	deps     string
)

// Info describes the binary.
type Info struct {
	GoVersion string
	Tag       string
	Time      string
	Revision  string
	Platform  string
	Type      string
	// Dependencies is a space-separated list of path:version pairs.
	Dependencies string
}

// IsRelease returns true if the binary was produced by a "release" build.
func IsRelease() bool {
	return typ == "release"
}

// VersionPrefix returns the version prefix of the current build.
func VersionPrefix() string {
	v, err := semver.NewVersion(tag)
	if err != nil {
		return "dev"
	}
	return fmt.Sprintf("v%d.%d", v.Major(), v.Minor())
}

func init() {
	// Allow tests to override the tag.
	if tagOverride := os.Getenv("STL_TESTING_VERSION_TAG"); tagOverride != "" {
		tag = tagOverride
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		fillFromBuildInfo(bi)
	}
}

// fillFromBuildInfo completes the fields that the linker did not set with
// the information the go command embeds in the binary.
func fillFromBuildInfo(bi *debug.BuildInfo) {
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if rev == "" {
				rev = s.Value
			}
		case "vcs.time":
			if utcTime == "" {
				if t, err := time.Parse(time.RFC3339, s.Value); err == nil {
					utcTime = t.UTC().Format(TimeFormat)
				}
			}
		}
	}
	if tag == "unknown" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		tag = bi.Main.Version
	}
	var buf strings.Builder
	for i, d := range bi.Deps {
		if i > 0 {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(&buf, "%s:%s", d.Path, d.Version)
	}
	deps = buf.String()
}

// Short returns a pretty printed build and version summary.
func (b Info) Short() string {
	return fmt.Sprintf("stl %s (%s, built %s, %s)",
		b.Tag, b.Platform, b.Time, b.GoVersion)
}

// GoTime parses the utcTime string and returns a time.Time.
func (b Info) GoTime() time.Time {
	val, err := time.Parse(TimeFormat, b.Time)
	if err != nil {
		return time.Time{}
	}
	return val
}

// GetInfo returns an Info struct populated with the build information.
func GetInfo() Info {
	return Info{
		GoVersion:    runtime.Version(),
		Tag:          tag,
		Time:         utcTime,
		Revision:     rev,
		Platform:     platform,
		Type:         typ,
		Dependencies: deps,
	}
}

// TestingOverrideTag allows tests to override the build tag.
func TestingOverrideTag(t string) func() {
	prev := tag
	tag = t
	return func() { tag = prev }
}
