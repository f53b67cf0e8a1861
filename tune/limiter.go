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
	"time"
)

// limiter paces the Player to a frame rate and measures the rate actually
// achieved.
type limiter struct {
	// whether to wait for the pulse each frame
	active bool

	pulse *time.Ticker

	// the measured FPS is the number of frames divided by the amount of
	// elapsed time since the previous measurement
	measureTime time.Time
	measureCt   int
	measured    atomic.Value // float64
}

// how often the frame rate is measured
const measurePeriod = time.Second

func newLimiter(fps float64, active bool) *limiter {
	lmtr := &limiter{
		active:      active,
		measureTime: time.Now(),
	}
	lmtr.measured.Store(0.0)
	if active {
		lmtr.pulse = time.NewTicker(time.Duration(float64(time.Second) / fps))
	}
	return lmtr
}

func (lmtr *limiter) stop() {
	if lmtr.pulse != nil {
		lmtr.pulse.Stop()
	}
}

// checkFrame should be called at the end of every frame. it waits for the
// next pulse if the limiter is active. returns false if the context was
// cancelled while waiting
func (lmtr *limiter) checkFrame(ctx context.Context) bool {
	lmtr.measureCt++
	if el := time.Since(lmtr.measureTime); el >= measurePeriod {
		lmtr.measured.Store(float64(lmtr.measureCt) / el.Seconds())
		lmtr.measureCt = 0
		lmtr.measureTime = time.Now()
	}

	if !lmtr.active {
		select {
		case <-ctx.Done():
			return false
		default:
			return true
		}
	}

	select {
	case <-ctx.Done():
		return false
	case <-lmtr.pulse.C:
		return true
	}
}
