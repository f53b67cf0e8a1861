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

// processFragment fills buf with samples frames, replaying queued register
// writes into the synthesizer at the correct point in the fragment. Must be
// called with the critical section held.
//
// The buffer must hold at least samples frames for the number of hardware
// channels in the device specification.
func (s *Sound) processFragment(buf []int16, samples int) {
	channels := max(s.spec.Channels, 1)
	freq := float64(s.spec.Freq)

	// if the emulation has run ahead of the audio device the queue will hold
	// more time than the device can use. apply writes without rendering them
	// until the backlog has been reduced
	if s.queue.Duration() > s.drainThreshold {
		var removed float64
		for removed < s.catchThreshold && s.queue.Size() > 0 {
			w := s.queue.Front()
			removed += w.Delta
			s.synth.Set(w.Addr, w.Value)
			s.queue.Dequeue()
		}
	}

	// position is a fractional frame count. the number of frames rendered so
	// far is always the integer part of position
	var position float64
	remaining := float64(samples)

	// render frames from the current integer position up to and including the
	// frame count
	render := func(count int) {
		start := int(position)
		count = min(count, samples-start)
		if count <= 0 {
			return
		}
		s.synth.Process(buf[start*channels:], count)
	}

	for remaining > 0 {
		if s.queue.Size() == 0 {
			// no more writes so the rest of the fragment uses the current
			// synthesizer state
			render(samples - int(position))

			// the emulation has not kept up with the audio device. the cycle
			// reference is reset and the time overrun is forgotten
			s.lastRegisterSetCycle = 0
			break // for loop
		}

		w := s.queue.Front()

		// time taken by the remaining frames in the fragment
		duration := remaining / freq

		if w.Delta <= duration {
			if w.Delta > 0 {
				// render up to the frame at which the write happens. the
				// fractional part of the position is carried forward so that
				// rounding errors do not accumulate
				frames := freq * w.Delta
				render(int(position+frames) - int(position))
				position += frames
				remaining -= frames
			}
			s.synth.Set(w.Addr, w.Value)
			s.queue.Dequeue()
		} else {
			// the write happens after the end of this fragment
			render(samples - int(position))
			w.Delta -= duration
			break // for loop
		}
	}
}
