// This file is part of tiasound.
//
// tiasound is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// tiasound is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with tiasound.  If not, see <https://www.gnu.org/licenses/>.

// Package version reports the version of tiasound. The version number is set
// at link time:
//
//	go build -ldflags "-X github.com/jetsetilly/tiasound/version.number=v0.1.0"
//
// Without a version number the version is "unreleased" if the build carries
// vcs information and "local" if it does not.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "tiasound"

var number string

// information found in the build info
type buildInfo struct {
	vcs      bool
	revision string
	modified bool
}

func readBuildInfo() buildInfo {
	var bi buildInfo

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return bi
	}

	for _, v := range info.Settings {
		switch v.Key {
		case "vcs":
			bi.vcs = true
		case "vcs.revision":
			bi.revision = v.Value
		case "vcs.modified":
			bi.modified = v.Value == "true"
		}
	}

	return bi
}

// Version returns the version string, the revision string and whether this is a
// numbered release.
func Version() (string, string, bool) {
	return describe(number, readBuildInfo())
}

func describe(number string, bi buildInfo) (string, string, bool) {
	revision := "no revision information"
	if bi.revision != "" {
		revision = bi.revision
		if bi.modified {
			revision = fmt.Sprintf("%s+dirty", revision)
		}
	}

	switch {
	case number != "":
		return number, revision, true
	case bi.vcs:
		return "unreleased", revision, false
	}
	return "local", revision, false
}

// String returns a single line suitable for printing.
func String() string {
	v, r, release := Version()
	if release {
		return fmt.Sprintf("%s %s", ApplicationName, v)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, v, r)
}
