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

package sdlaudio

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/tiasound/sound"
	"github.com/jetsetilly/tiasound/test"
)

func TestRequestedSpec(t *testing.T) {
	spec := requestedSpec(sound.Spec{Freq: 44100, Format: sound.FormatS16, Channels: 2, Samples: 512})
	test.ExpectEquality(t, spec.Format, sdl.AudioFormat(sdl.AUDIO_S16LSB))
	test.ExpectEquality(t, spec.Freq, int32(44100))
	test.ExpectEquality(t, spec.Channels, uint8(2))
	test.ExpectEquality(t, spec.Samples, uint16(512))
}
