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

// Package mix is used to combine two distinct sound sources into either a mono
// or stereo signal.
//
// The mono mix is created according to the information in the document, "TIA
// Sounding Off In The Digital Domain", by Chris Brenner.
//
// https://atariage.com/forums/topic/249865-tia-sounding-off-in-the-digital-domain/
//
// The exact implementation here is an optimisation of that work, as found by
// Thomas Jentzsch (mentioned in the link above)
package mix

// maximum combined volume of both channels.
const maxVolume = 0x1e

var mono [maxVolume + 1]int16

func init() {
	for vol := range mono {
		mono[vol] = int16(0x7fff * float32(vol) / float32(maxVolume) * (30 + 1*float32(maxVolume)) / (30 + 1*float32(vol)))
	}
}

// Mono returns a single volume value for the two channel volumes. Each volume
// is in the range 0 to 15.
func Mono(channel0 uint8, channel1 uint8) int16 {
	return mono[(channel0&0x0f)+(channel1&0x0f)] >> 1
}

// Stereo returns a pair of volume values, one for each channel.
func Stereo(channel0 uint8, channel1 uint8) (int16, int16) {
	return Mono(channel0, 0), Mono(0, channel1)
}

// Scale a sample by volume, expressed as a percentage.
func Scale(sample int16, percent int) int16 {
	return int16(int32(sample) * int32(percent) / 100)
}
