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

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/tiasound/test"
)

// recordingSynth is a Synthesizer that records the calls made to it. The
// samples produced are the value of the watched register.
type recordingSynth struct {
	regs  map[uint16]uint8
	watch uint16

	// every call to Set() and Process() in order. a Set() is recorded as the
	// address and a Process() as -1
	events []int

	// the sample count of every call to Process()
	processed []int

	freq    int
	hw      int
	stereo  bool
	volume  int
	resets  int
	volumes int
}

func newRecordingSynth(watch uint16) *recordingSynth {
	return &recordingSynth{
		regs:  make(map[uint16]uint8),
		watch: watch,
		hw:    1,
	}
}

func (r *recordingSynth) Set(addr uint16, value uint8) {
	r.regs[addr] = value
	r.events = append(r.events, int(addr))
}

func (r *recordingSynth) Get(addr uint16) uint8 {
	return r.regs[addr]
}

func (r *recordingSynth) Process(buf []int16, samples int) {
	v := int16(r.regs[r.watch])
	for i := 0; i < samples*r.hw; i++ {
		buf[i] = v
	}
	r.processed = append(r.processed, samples)
	r.events = append(r.events, -1)
}

func (r *recordingSynth) OutputFrequency(hz int) {
	r.freq = hz
}

func (r *recordingSynth) Channels(hw int, stereo bool) string {
	r.hw = hw
	r.stereo = stereo
	return "recording"
}

func (r *recordingSynth) Volume(percent int) {
	r.volume = percent
	r.volumes++
}

func (r *recordingSynth) Reset() {
	r.regs = make(map[uint16]uint8)
	r.resets++
}

// total number of frames rendered
func (r *recordingSynth) total() int {
	var n int
	for _, p := range r.processed {
		n += p
	}
	return n
}

// fakeDevice is a Device that never calls the callback by itself.
type fakeDevice struct {
	// returned by Open(). if the Freq field is zero then the desired spec is
	// returned instead
	spec Spec
	err  error

	desired  Spec
	callback func([]byte)
	paused   bool
	closed   bool
}

func (d *fakeDevice) Open(desired Spec, callback func([]byte)) (Spec, error) {
	d.desired = desired
	if d.err != nil {
		return Spec{}, d.err
	}
	d.callback = callback
	d.paused = true
	if d.spec.Freq == 0 {
		return desired, nil
	}
	return d.spec, nil
}

func (d *fakeDevice) Pause(pause bool) {
	d.paused = pause
}

func (d *fakeDevice) Close() {
	d.closed = true
}

var errNoDevice = errors.New("no audio hardware")

func newTestPreferences(t *testing.T) *Preferences {
	t.Helper()
	p, err := NewPreferences(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	return p
}

// newTestSound creates an opened sound engine with a mono fake device. the CPU
// clock is set to clock Hz so that cycle counts are easy to reason about.
func newTestSound(t *testing.T, freq int, samples int, clock float64) (*Sound, *fakeDevice, *recordingSynth) {
	t.Helper()

	p := newTestPreferences(t)
	test.DemandSuccess(t, p.Clock.Set(clock))

	dev := &fakeDevice{
		spec: Spec{Freq: freq, Format: FormatS16, Channels: 1, Samples: samples},
	}
	synth := newRecordingSynth(1)

	s, err := NewSound(dev, synth, p)
	test.DemandSuccess(t, err)
	s.Open()
	test.DemandSuccess(t, s.IsEnabled())

	return s, dev, synth
}

// render a fragment through the internal function, holding the critical
// section as the device callback would
func render(s *Sound, samples int) []int16 {
	buf := make([]int16, samples*max(s.spec.Channels, 1))
	s.crit.Lock()
	s.processFragment(buf, samples)
	s.crit.Unlock()
	return buf
}

// fill returns a slice of n samples of value v
func fill(n int, v int16) []int16 {
	b := make([]int16, n)
	for i := range b {
		b[i] = v
	}
	return b
}
