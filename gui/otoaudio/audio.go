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

package otoaudio

import (
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/jetsetilly/tiasound/logger"
	"github.com/jetsetilly/tiasound/sound"
)

// the single oto context and the options it was created with
var context struct {
	once sync.Once
	ctx  *oto.Context
	opts oto.NewContextOptions
	err  error
}

// Audio outputs sound using oto. It implements the sound.Device interface.
type Audio struct {
	p    *oto.Player
	spec sound.Spec

	// the paused and callback fields are accessed by the Read() function via
	// oto, and by the sound engine which is in another goroutine. access is
	// therefore protected by a mutex
	crit     sync.Mutex
	paused   bool
	callback func([]byte)
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	return &Audio{
		paused: true,
	}
}

// Open implements the sound.Device interface.
func (a *Audio) Open(desired sound.Spec, callback func([]byte)) (sound.Spec, error) {
	if a.p != nil {
		return sound.Spec{}, fmt.Errorf("otoaudio: device already open")
	}

	channels := min(max(desired.Channels, 1), 2)

	context.once.Do(func() {
		context.opts = oto.NewContextOptions{
			SampleRate:   desired.Freq,
			ChannelCount: channels,
			Format:       oto.FormatSignedInt16LE,
			BufferSize:   time.Duration(desired.Samples) * time.Second / time.Duration(max(desired.Freq, 1)),
		}

		var ready chan struct{}
		context.ctx, ready, context.err = oto.NewContext(&context.opts)
		if context.err == nil {
			<-ready
		}
	})
	if context.err != nil {
		return sound.Spec{}, fmt.Errorf("otoaudio: %w", context.err)
	}

	a.spec = sound.Spec{
		Freq:     context.opts.SampleRate,
		Format:   sound.FormatS16,
		Channels: context.opts.ChannelCount,
		Samples:  desired.Samples,
	}

	a.crit.Lock()
	a.callback = callback
	a.paused = true
	a.crit.Unlock()

	a.p = context.ctx.NewPlayer(a)
	a.p.SetBufferSize(a.spec.Samples * a.spec.Channels * 2)

	logger.Logf(logger.Allow, "otoaudio", "opened: %s", a.spec)

	return a.spec, nil
}

// Pause implements the sound.Device interface.
func (a *Audio) Pause(pause bool) {
	a.crit.Lock()
	a.paused = pause
	a.crit.Unlock()

	if a.p == nil {
		return
	}

	// the player is not called while the mutex is held because oto may be
	// waiting on Read(). Read() provides silence until the player has paused
	if pause {
		a.p.Pause()
	} else {
		a.p.Play()
	}
}

// Close implements the sound.Device interface.
func (a *Audio) Close() {
	if a.p == nil {
		return
	}

	a.crit.Lock()
	a.paused = true
	a.callback = nil
	a.crit.Unlock()

	if err := a.p.Close(); err != nil {
		logger.Log(logger.Allow, "otoaudio", err)
	}
	a.p = nil
	logger.Log(logger.Allow, "otoaudio", "closed")
}

// Read implements the io.Reader interface. It is called by oto whenever it
// needs more samples.
func (a *Audio) Read(buf []uint8) (int, error) {
	a.crit.Lock()
	defer a.crit.Unlock()

	// only whole sample frames are given to the callback
	frame := a.spec.Channels * 2
	n := len(buf) / frame * frame
	if n == 0 {
		return 0, nil
	}
	buf = buf[:n]

	if a.paused || a.callback == nil {
		clear(buf)
		return n, nil
	}

	// the callback leaves the buffer untouched if the sound engine is not
	// enabled
	clear(buf)
	a.callback(buf)

	return n, nil
}
