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

// Package otoaudio is an audio device for the sound engine using the oto
// library. Oto pulls samples by reading from an io.Reader, which is
// implemented by the Audio type.
//
// Oto allows only one context per process. The context is created on the
// first call to Open() and the sample rate and channel count of that first
// call apply to every subsequent Open().
package otoaudio
