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

package sound

import (
	"github.com/jetsetilly/tiasound/hardware/clocks"
	"github.com/jetsetilly/tiasound/prefs"
)

// Preferences for the sound engine.
type Preferences struct {
	dsk *prefs.Disk

	// sound is only produced if Enabled is true when Open() is called
	Enabled prefs.Bool

	// requested device frequency and fragment size. the device may choose
	// different values
	Freq     prefs.Int
	FragSize prefs.Int

	// percentage
	Volume prefs.Int

	// whether the two TIA channels should be output to separate hardware
	// channels
	Stereo prefs.Bool

	// speed of the CPU clock in Hz. used to convert cycle counts into real
	// time
	Clock prefs.Float
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. The path is the location of the preferences file. The
// values in the file are loaded, along with any command line overrides.
func NewPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("sound.enabled", &p.Enabled)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("sound.freq", &p.Freq)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("sound.fragsize", &p.FragSize)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("sound.volume", &p.Volume)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("sound.stereo", &p.Stereo)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("sound.clock", &p.Clock)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all sound settings to default values.
func (p *Preferences) SetDefaults() {
	p.Enabled.Set(true)
	p.Freq.Set(44100)
	p.FragSize.Set(512)
	p.Volume.Set(100)
	p.Stereo.Set(false)
	p.Clock.Set(clocks.CPU("NTSC"))
}

// Load sound preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current sound preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
