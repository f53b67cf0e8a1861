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

package prefs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/tiasound/prefs"
	"github.com/jetsetilly/tiasound/test"
)

func TestCommandLineOverrides(t *testing.T) {
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	prefs.PushCommandLineStack("  sound.freq:: 48000 ")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 1)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "sound.freq::48000")

	// entries are sorted and invalid entries are dropped
	prefs.PushCommandLineStack("sound.volume::50;sound_bad; sound.freq::22050")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "sound.freq::22050; sound.volume::50")

	// a consumed entry no longer appears in the unused string
	prefs.PushCommandLineStack("sound.volume::50; sound.stereo::true")
	ok, v := prefs.GetCommandLinePref("sound.stereo")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, "true")
	ok, _ = prefs.GetCommandLinePref("sound.stereo")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "sound.volume::50")

	// only the top group is visible
	prefs.PushCommandLineStack("a::1")
	prefs.PushCommandLineStack("b::2")
	ok, _ = prefs.GetCommandLinePref("a")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "b::2")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "a::1")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}

func readFile(t *testing.T, fn string) string {
	t.Helper()
	b, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	return string(b)
}

func TestDiskSaveLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var enabled prefs.Bool
	var freq prefs.Int
	var clock prefs.Float
	var name prefs.String

	test.DemandSuccess(t, dsk.Add("sound.enabled", &enabled))
	test.DemandSuccess(t, dsk.Add("sound.freq", &freq))
	test.DemandSuccess(t, dsk.Add("sound.clock", &clock))
	test.DemandSuccess(t, dsk.Add("sound.device", &name))
	test.ExpectFailure(t, dsk.Add("sound.freq", &freq))
	test.ExpectFailure(t, dsk.Add("bad :: key", &freq))

	test.DemandSuccess(t, enabled.Set(true))
	test.DemandSuccess(t, freq.Set(44100))
	test.DemandSuccess(t, clock.Set(1193191.5))
	test.DemandSuccess(t, name.Set("sdl"))
	test.DemandSuccess(t, dsk.Save())

	test.ExpectEquality(t, readFile(t, fn), prefs.WarningBoilerPlate+"\n"+
		"sound.clock :: 1193191.5\n"+
		"sound.device :: sdl\n"+
		"sound.enabled :: true\n"+
		"sound.freq :: 44100\n")

	// a second disk instance with fewer keys preserves the unknown entries
	dsk2, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var freq2 prefs.Int
	test.DemandSuccess(t, dsk2.Add("sound.freq", &freq2))
	test.DemandSuccess(t, dsk2.Load())
	test.ExpectEquality(t, freq2.Get().(int), 44100)
	test.DemandSuccess(t, freq2.Set(48000))
	test.DemandSuccess(t, dsk2.Save())

	test.ExpectEquality(t, readFile(t, fn), prefs.WarningBoilerPlate+"\n"+
		"sound.clock :: 1193191.5\n"+
		"sound.device :: sdl\n"+
		"sound.enabled :: true\n"+
		"sound.freq :: 48000\n")

	// command line overrides are applied on load
	prefs.PushCommandLineStack("sound.enabled::false")
	defer prefs.PopCommandLineStack()
	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, enabled.Get().(bool), false)
	test.ExpectEquality(t, freq.Get().(int), 48000)
	test.ExpectEquality(t, name.String(), "sdl")
}

func TestDiskMissingFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "missing")
	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	test.DemandSuccess(t, v.Set(100))
	test.DemandSuccess(t, dsk.Add("sound.volume", &v))
	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, v.Get().(int), 100)
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	var post int

	v.SetHookPre(func(nv prefs.Value) error {
		if nv.(int) < 0 || nv.(int) > 100 {
			return os.ErrInvalid
		}
		return nil
	})
	v.SetHookPost(func(nv prefs.Value) error {
		post = nv.(int)
		return nil
	})

	test.ExpectSuccess(t, v.Set(50))
	test.ExpectEquality(t, post, 50)
	test.ExpectFailure(t, v.Set(101))
	test.ExpectEquality(t, v.Get().(int), 50)
	test.ExpectFailure(t, v.Set("not a number"))
	test.ExpectSuccess(t, v.Set("75"))
	test.ExpectEquality(t, post, 75)
}

func TestFloatAndBoolConversion(t *testing.T) {
	var f prefs.Float
	test.ExpectSuccess(t, f.Set("60.5"))
	test.ExpectApproximate(t, f.Get().(float64), 60.5, 0.0001)
	test.ExpectSuccess(t, f.Set(50))
	test.ExpectApproximate(t, f.Get().(float64), 50.0, 0.0001)
	test.ExpectEquality(t, f.String(), "50")

	var b prefs.Bool
	test.ExpectSuccess(t, b.Set("TRUE"))
	test.ExpectEquality(t, b.Get().(bool), true)
	test.ExpectSuccess(t, b.Set("yes"))
	test.ExpectEquality(t, b.Get().(bool), false)
	test.ExpectFailure(t, b.Set(1))
}
