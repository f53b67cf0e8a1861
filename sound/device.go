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

import "fmt"

// Format of samples in the device buffer.
type Format int

// List of valid Format values. Only signed 16bit samples are produced by the
// sound engine.
const (
	FormatS16 Format = iota
)

// Spec describes the audio stream requested from or provided by a device.
type Spec struct {
	// sample frames per second
	Freq int

	Format Format

	// number of hardware channels
	Channels int

	// number of sample frames in each callback fragment
	Samples int
}

func (s Spec) String() string {
	return fmt.Sprintf("%dHz %d channel(s) %d samples", s.Freq, s.Channels, s.Samples)
}

// Device is an audio output that pulls samples with a callback. The callback
// is given a byte buffer to fill with little-endian int16 samples, interleaved
// if there is more than one hardware channel. The callback may be called from
// any goroutine or thread.
type Device interface {
	// Open the device. The returned Spec is the actual specification of the
	// device, which may differ from the one requested. A device should start
	// in the paused state.
	Open(desired Spec, callback func(stream []byte)) (Spec, error)

	// Pause stops (true) or resumes (false) calls to the callback.
	Pause(pause bool)

	// Close the device. The callback will not be called after Close()
	// returns.
	Close()
}
