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

package audio

import (
	"strings"

	"github.com/jetsetilly/tiasound/hardware/tia/audio/mix"
)

// SampleFreq is the frequency of the TIA sample clock. By definition the TIA
// takes two samples per scanline, so the real value is 31468.52 for NTSC and
// 31250 for PAL. TIASound.c uses 31400 for both.
const SampleFreq = 31400

// DefaultOutputFreq is the output frequency assumed until OutputFrequency() is
// called.
const DefaultOutputFreq = 44100

// Audio is the implementation of the TIA audio sub-system.
type Audio struct {
	// From the "Stella Programmer's Guide":
	//
	// "There are two audio circuits for generating sound. They are identical but
	// completely independent and can be operated simultaneously [...]"
	channel0 channel
	channel1 channel

	// the 10Khz clock is every third tick of the 30Khz clock
	div3 int

	outputFreq int

	// error counter used to step the 30Khz clock at the output frequency. on
	// every output sample SampleFreq is added and the clock is ticked for every
	// multiple of outputFreq in the counter
	clockErr int

	hwChannels int
	stereo     bool

	// volume as a percentage
	volume int
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	return &Audio{
		outputFreq: DefaultOutputFreq,
		hwChannels: 1,
		volume:     100,
	}
}

func (au *Audio) String() string {
	s := strings.Builder{}
	s.WriteString("ch0: ")
	s.WriteString(au.channel0.Registers.String())
	s.WriteString("  ch1: ")
	s.WriteString(au.channel1.Registers.String())
	return s.String()
}

// Registers returns the current register values for the channel.
func (au *Audio) Registers(channel int) Registers {
	if channel == 0 {
		return au.channel0.Registers
	}
	return au.channel1.Registers
}

func (au *Audio) channel(addr uint16) *channel {
	if Channel(addr) == 0 {
		return &au.channel0
	}
	return &au.channel1
}

// Set the register at addr. Addresses outside of the audio register range are
// ignored.
func (au *Audio) Set(addr uint16, value uint8) {
	if addr < AUDC0 || addr > AUDV1 {
		return
	}
	ch := au.channel(addr)
	ch.Write(addr, value)
	ch.react()
}

// Get the value of the register at addr. Addresses outside of the audio
// register range return zero.
func (au *Audio) Get(addr uint16) uint8 {
	if addr < AUDC0 || addr > AUDV1 {
		return 0
	}
	return au.channel(addr).Read(addr)
}

// OutputFrequency sets the frequency at which samples are generated by
// Process(). A value of zero or less is ignored.
func (au *Audio) OutputFrequency(hz int) {
	if hz <= 0 {
		return
	}
	au.outputFreq = hz
	au.clockErr = 0
}

// Channels sets the number of hardware channels in the output buffer and
// whether the two TIA channels should be mixed to separate hardware channels.
// Stereo mixing is only possible with two hardware channels. Returns a
// description of the mixing arrangement.
func (au *Audio) Channels(hw int, stereo bool) string {
	if hw < 1 {
		hw = 1
	} else if hw > 2 {
		hw = 2
	}
	au.hwChannels = hw
	au.stereo = stereo && hw == 2

	if au.stereo {
		return "Stereo"
	}
	if hw == 2 {
		return "Mono (stereo hardware)"
	}
	return "Mono"
}

// Volume sets the output volume as a percentage. Values outside the range 0 to
// 100 are clamped.
func (au *Audio) Volume(percent int) {
	au.volume = min(max(percent, 0), 100)
}

// Reset the registers and the internal counters of both channels.
func (au *Audio) Reset() {
	au.channel0.reset()
	au.channel1.reset()
	au.div3 = 0
	au.clockErr = 0
}

// step the 30Khz clock once.
func (au *Audio) step() {
	tenKhz := au.div3 == 0
	au.div3++
	if au.div3 >= 3 {
		au.div3 = 0
	}
	au.channel0.tick(tenKhz)
	au.channel1.tick(tenKhz)
}

// Process renders the number of samples frames into buf. Each frame is one
// sample wide for every hardware channel. The buffer must be long enough to
// hold all the frames.
func (au *Audio) Process(buf []int16, samples int) {
	idx := 0
	for i := 0; i < samples; i++ {
		au.clockErr += SampleFreq
		for au.clockErr >= au.outputFreq {
			au.clockErr -= au.outputFreq
			au.step()
		}

		v0 := au.channel0.actualVol
		v1 := au.channel1.actualVol

		switch {
		case au.stereo:
			l, r := mix.Stereo(v0, v1)
			buf[idx] = mix.Scale(l, au.volume)
			buf[idx+1] = mix.Scale(r, au.volume)
		case au.hwChannels == 2:
			m := mix.Scale(mix.Mono(v0, v1), au.volume)
			buf[idx] = m
			buf[idx+1] = m
		default:
			buf[idx] = mix.Scale(mix.Mono(v0, v1), au.volume)
		}

		idx += au.hwChannels
	}
}
