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

package tracker

import (
	"fmt"
	"math"

	"github.com/jetsetilly/tiasound/hardware/clocks"
	"github.com/jetsetilly/tiasound/hardware/tia/audio"
)

// LookupDistortion converts the control register value into a text
// description.
//
// Descriptions taken from Random Terrain's "The Atari 2600 Music and Sound
// Page"
//
// https://www.randomterrain.com/atari-2600-memories-music-and-sound.html
func LookupDistortion(reg audio.Registers) string {
	switch reg.Control {
	case 0, 11:
		return "-"
	case 1:
		return "Buzzy"
	case 2:
		return "Rumble"
	case 3:
		return "Flangy"
	case 4, 5:
		return "Pure"
	case 6, 10:
		return "Puzzy"
	case 7, 9:
		return "Reedy"
	case 8:
		return "White Noise"
	case 12, 13:
		return "Pure (low)"
	case 14, 15:
		return "Electronic"
	}

	return ""
}

// MusicalNote is the nearest note (C#4, A2, etc.) to the pitch of a TIA audio
// channel register group.
type MusicalNote string

// NoMusicalNote is used when the registers do not produce a pitched sound.
const NoMusicalNote = MusicalNote("-")

// the number of audio clocks in one period of the waveform produced by each
// control value. a value of zero means the control value does not produce a
// pitch
var waveformLength = [16]float64{
	0, 15, 465, 465, 2, 2, 31, 31, 511, 31, 31, 0, 6, 6, 93, 93,
}

// the TIA audio clock ticks twice per scanline. a scanline is 76 CPU cycles
const audioClockDivider = 38

// LookupPitch returns the frequency in Hz of the sound produced by the
// registers. The clock is the CPU clock in Hz. Returns zero if the registers do
// not produce a pitch or if the volume is zero.
func LookupPitch(clock float64, reg audio.Registers) float64 {
	if reg.Volume == 0 {
		return 0
	}
	l := waveformLength[reg.Control&0x0f]
	if l == 0 {
		return 0
	}
	return clock / audioClockDivider / l / float64(reg.Freq+1)
}

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// LookupMusicalNote converts the current register values for a channel into
// the nearest musical note. The clock is the CPU clock in Hz, which differs
// between NTSC and PAL consoles.
//
// Pitches outside the range of a piano keyboard are not considered to be
// musical.
func LookupMusicalNote(clock float64, reg audio.Registers) MusicalNote {
	f := LookupPitch(clock, reg)
	if f == 0 {
		return NoMusicalNote
	}

	// MIDI note number. A4 is 440Hz and note 69
	n := int(math.Round(69 + 12*math.Log2(f/440)))
	if n < 21 || n > 108 {
		return NoMusicalNote
	}

	return MusicalNote(fmt.Sprintf("%s%d", noteNames[n%12], n/12-1))
}

// DefaultClock is the clock used by LookupMusicalNote() when the TV
// specification is not known.
var DefaultClock = clocks.CPU("NTSC")
