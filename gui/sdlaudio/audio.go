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
	"fmt"
	"sync/atomic"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/tiasound/logger"
	"github.com/jetsetilly/tiasound/sound"
)

// the callback of the open device. SDL calls the exported fillBuffer()
// function, which forwards to this callback.
var active atomic.Pointer[func([]byte)]

// Audio outputs sound using SDL. It implements the sound.Device interface.
type Audio struct {
	open bool
	spec sdl.AudioSpec
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	return &Audio{}
}

// the SDL audio specification for the desired sound specification. the sound
// engine always encodes samples as little endian, whatever the host
func requestedSpec(desired sound.Spec) sdl.AudioSpec {
	return sdl.AudioSpec{
		Freq:     int32(desired.Freq),
		Format:   sdl.AUDIO_S16LSB,
		Channels: uint8(desired.Channels),
		Samples:  uint16(desired.Samples),
	}
}

// Open implements the sound.Device interface.
func (aud *Audio) Open(desired sound.Spec, callback func([]byte)) (sound.Spec, error) {
	if aud.open {
		return sound.Spec{}, fmt.Errorf("sdlaudio: device already open")
	}
	if !active.CompareAndSwap(nil, &callback) {
		return sound.Spec{}, fmt.Errorf("sdlaudio: another device is already open")
	}

	if err := sdl.InitSubSystem(sdl.INIT_AUDIO); err != nil {
		active.Store(nil)
		return sound.Spec{}, fmt.Errorf("sdlaudio: %w", err)
	}

	spec := requestedSpec(desired)
	spec.Callback = callbackFunc()

	if err := sdl.OpenAudio(&spec, &aud.spec); err != nil {
		sdl.QuitSubSystem(sdl.INIT_AUDIO)
		active.Store(nil)
		return sound.Spec{}, fmt.Errorf("sdlaudio: %w", err)
	}

	// audio starts paused
	sdl.PauseAudio(true)
	aud.open = true

	actual := sound.Spec{
		Freq:     int(aud.spec.Freq),
		Format:   sound.FormatS16,
		Channels: int(aud.spec.Channels),
		Samples:  int(aud.spec.Samples),
	}
	logger.Logf(logger.Allow, "sdlaudio", "opened: %s", actual)

	return actual, nil
}

// Pause implements the sound.Device interface.
func (aud *Audio) Pause(pause bool) {
	if !aud.open {
		return
	}
	sdl.PauseAudio(pause)
}

// Close implements the sound.Device interface.
func (aud *Audio) Close() {
	if !aud.open {
		return
	}
	sdl.CloseAudio()
	sdl.QuitSubSystem(sdl.INIT_AUDIO)
	active.Store(nil)
	aud.open = false
	logger.Log(logger.Allow, "sdlaudio", "closed")
}
