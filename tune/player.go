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

package tune

import (
	"context"
	"sync/atomic"

	"github.com/jetsetilly/tiasound/hardware/clocks"
	"github.com/jetsetilly/tiasound/logger"
)

// Setter is the part of the sound engine driven by the Player.
type Setter interface {
	Set(addr uint16, value uint8, cycle int32)
	AdjustCycleCounter(amount int32)
}

// Player plays a tune into a Setter frame by frame. The cycle counter of the
// Setter is moved back by the length of a frame at the end of each frame, in
// the same way an emulation resets its own cycle count.
type Player struct {
	tune   *Tune
	setter Setter

	// Loop causes the tune to restart from the first frame when it ends
	Loop bool

	// FrameRate is the number of frames played per second. It has no effect
	// if Limit is false
	FrameRate float64

	// Limit paces the Player to FrameRate. If Limit is false the tune is
	// played as quickly as possible
	Limit bool

	// OnFrame is called at the end of every frame, if it is not nil. The
	// argument is the frame that has just been played
	OnFrame func(frame int)

	frame atomic.Int64

	// the limiter is created by Run() and may be read by MeasuredFPS() on
	// another goroutine
	lmtr atomic.Pointer[limiter]
}

// NewPlayer is the preferred method of initialisation for the Player type.
func NewPlayer(t *Tune, setter Setter) *Player {
	return &Player{
		tune:      t,
		setter:    setter,
		FrameRate: clocks.FrameRateNTSC,
		Limit:     true,
	}
}

// Frame returns the frame currently being played.
func (pl *Player) Frame() int {
	return int(pl.frame.Load())
}

// MeasuredFPS returns the measured frame rate of the Player.
func (pl *Player) MeasuredFPS() float64 {
	lmtr := pl.lmtr.Load()
	if lmtr == nil {
		return 0
	}
	return lmtr.measured.Load().(float64)
}

// Run plays the tune. It returns when the tune ends (never if Loop is true) or
// when the context is cancelled, in which case the context error is returned.
func (pl *Player) Run(ctx context.Context) error {
	lmtr := newLimiter(pl.FrameRate, pl.Limit && pl.FrameRate > 0)
	pl.lmtr.Store(lmtr)
	defer lmtr.stop()

	frames := pl.tune.Frames()
	if frames == 0 {
		logger.Log(logger.Allow, "tune", "nothing to play")
		return nil
	}

	for {
		idx := 0
		for f := 0; f < frames; f++ {
			pl.frame.Store(int64(f))

			for idx < len(pl.tune.Entries) && pl.tune.Entries[idx].Frame == f {
				e := pl.tune.Entries[idx]
				pl.setter.Set(e.Addr, e.Value, e.Cycle())
				idx++
			}

			pl.setter.AdjustCycleCounter(-CyclesPerFrame)

			if pl.OnFrame != nil {
				pl.OnFrame(f)
			}

			if !lmtr.checkFrame(ctx) {
				return ctx.Err()
			}
		}

		if !pl.Loop {
			return nil
		}
		logger.Log(logger.Allow, "tune", "looping")
	}
}
