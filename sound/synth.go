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

// Synthesizer generates PCM samples from the state of the sound registers.
// The Sound type calls these functions from inside its critical section so an
// implementation does not need its own locking.
type Synthesizer interface {
	// Set the register at addr to value. Unknown addresses are ignored.
	Set(addr uint16, value uint8)

	// Get the current value of the register at addr.
	Get(addr uint16) uint8

	// Process renders samples frames into buf. The number of int16 values
	// written for each frame is the number of hardware channels given to
	// Channels().
	Process(buf []int16, samples int)

	// OutputFrequency sets the sample rate of the rendered frames.
	OutputFrequency(hz int)

	// Channels sets the number of hardware channels and whether the sound
	// should be stereo. Returns a description of the arrangement.
	Channels(hw int, stereo bool) string

	// Volume as a percentage.
	Volume(percent int)

	// Reset registers to their initial state.
	Reset()
}

// Tracker is notified of every register write passed to Set(). It is called
// outside of the critical section and on the producer's goroutine.
type Tracker interface {
	Track(addr uint16, value uint8, cycle int32)
}

// a Tracker that also implements cycleAdjuster is told about changes to the
// cycle counter made with AdjustCycleCounter().
type cycleAdjuster interface {
	AdjustCycleCounter(amount int32)
}
