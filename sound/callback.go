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

import "encoding/binary"

// Callback is given to the audio device when it is opened. The stream is
// filled with little-endian int16 samples. The stream is left untouched if the
// sound engine is not enabled.
func (s *Sound) Callback(stream []byte) {
	if !s.enabled.Load() {
		return
	}

	channels := max(s.spec.Channels, 1)
	n := len(stream) >> 1
	samples := n / channels
	if samples == 0 {
		return
	}

	s.crit.Lock()
	defer s.crit.Unlock()

	if cap(s.fragment) < n {
		s.fragment = make([]int16, n)
	}
	s.fragment = s.fragment[:n]

	s.processFragment(s.fragment, samples)

	for i, v := range s.fragment[:samples*channels] {
		binary.LittleEndian.PutUint16(stream[i*2:], uint16(v))
	}
}
