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

// Package audio implements the audio generation of the TIA. The channel logic
// follows Ron Fries' TIA sound emulation, found in TIASound.c (easily
// searchable). The bit patterns are taken from there and the channels are
// mixed in the same way. TIASound.c is published under the GNU Library GPL
// v2.0
//
// The Audio type is a synthesizer in the sense used by the sound package. It
// holds the state of the six audio registers and renders PCM samples at the
// output frequency of the audio device, stepping the 31.4kHz TIA sample clock
// with an integer error counter so that no drift accumulates between the two
// rates.
//
// Samples are unsigned in the sense that silence is zero. The range is
// determined by the mix package.
package audio
