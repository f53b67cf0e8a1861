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

package modalflag_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/tiasound/modalflag"
	"github.com/jetsetilly/tiasound/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"tune.txt"})

	p, err := md.Parse()
	test.DemandEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.GetArg(0), "tune.txt")
	test.ExpectEquality(t, md.GetArg(1), "")
}

func TestDefaultMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"tune.txt"})
	md.AddSubModes("play", "record", "info")

	p, _ := md.Parse()
	test.DemandEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "PLAY")
	test.ExpectEquality(t, md.GetArg(0), "tune.txt")
}

func TestSelectedModeAndFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-log", "record", "-out", "x.wav", "-frames", "120", "tune.txt"})
	log := md.AddBool("log", false, "echo log")
	md.AddSubModes("play", "record", "info")

	p, err := md.Parse()
	test.DemandEquality(t, p, modalflag.ParseContinue)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, *log)
	test.ExpectEquality(t, md.Mode(), "RECORD")

	md.NewMode()
	out := md.AddString("out", "out.wav", "output file")
	frames := md.AddInt("frames", 0, "frames")
	p, err = md.Parse()
	test.DemandEquality(t, p, modalflag.ParseContinue)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, *out, "x.wav")
	test.ExpectEquality(t, *frames, 120)
	test.ExpectEquality(t, md.Path(), "RECORD")
	test.ExpectEquality(t, len(md.RemainingArgs()), 1)
	test.ExpectEquality(t, md.GetArg(0), "tune.txt")
}

func TestHelp(t *testing.T) {
	var out strings.Builder
	md := modalflag.Modes{Output: &out}
	md.NewArgs([]string{"-help"})
	md.AddBool("log", false, "echo log")
	md.AddSubModes("play", "record")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(out.String(), "available sub-modes: PLAY, RECORD"))
	test.ExpectSuccess(t, strings.Contains(out.String(), "default: PLAY"))
	test.ExpectSuccess(t, strings.Contains(out.String(), "-log"))
}

func TestHelpWithNothing(t *testing.T) {
	var out strings.Builder
	md := modalflag.Modes{Output: &out}
	md.NewArgs([]string{"-help"})

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectEquality(t, out.String(), "No help available\n")
}

func TestParseError(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-unknown"})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
}
