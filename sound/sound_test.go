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
	"encoding/binary"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jetsetilly/tiasound/curated"
	"github.com/jetsetilly/tiasound/test"
)

func TestDeviceUnavailable(t *testing.T) {
	dev := &fakeDevice{err: errNoDevice}
	synth := newRecordingSynth(1)

	s, err := NewSound(dev, synth, newTestPreferences(t))
	test.DemandFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, DeviceUnavailable))
	if s == nil {
		t.Fatalf("sound engine should be returned even on error")
	}
	test.ExpectFailure(t, s.IsInitialised())

	// the engine is usable but silent
	s.Open()
	test.ExpectFailure(t, s.IsEnabled())
	s.SetVolume(50)
	test.ExpectEquality(t, s.Volume(), 100)
	s.Set(0x15, 1, 100)
	s.Reset()
	s.Close()
	s.Destroy()
	test.ExpectEquality(t, synth.volumes, 0)

	stream := []byte{0xaa, 0xaa, 0xaa, 0xaa}
	s.Callback(stream)
	test.ExpectEquality(t, string(stream), string([]byte{0xaa, 0xaa, 0xaa, 0xaa}))
}

func TestNonRealtimeDevice(t *testing.T) {
	dev := &fakeDevice{
		spec: Spec{Freq: 1000, Format: FormatS16, Channels: 1, Samples: 250},
	}

	s, err := NewSound(dev, newRecordingSynth(1), newTestPreferences(t))
	test.DemandFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, NonRealtimeDevice))
	test.ExpectFailure(t, s.IsInitialised())
	test.ExpectSuccess(t, dev.closed)

	// just under the limit
	dev = &fakeDevice{
		spec: Spec{Freq: 1000, Format: FormatS16, Channels: 1, Samples: 249},
	}
	s, err = NewSound(dev, newRecordingSynth(1), newTestPreferences(t))
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, s.IsInitialised())
}

func TestDesiredSpec(t *testing.T) {
	p := newTestPreferences(t)
	test.DemandSuccess(t, p.Freq.Set(22050))
	test.DemandSuccess(t, p.FragSize.Set(256))

	dev := &fakeDevice{}
	s, err := NewSound(dev, newRecordingSynth(1), p)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, dev.desired, Spec{Freq: 22050, Format: FormatS16, Channels: 2, Samples: 256})
	test.ExpectEquality(t, s.Spec(), dev.desired)

	// device starts paused and the engine starts muted
	test.ExpectSuccess(t, dev.paused)
	test.ExpectSuccess(t, s.IsMuted())
	test.ExpectFailure(t, s.IsEnabled())
}

func TestOpen(t *testing.T) {
	p := newTestPreferences(t)
	test.DemandSuccess(t, p.Volume.Set(40))
	test.DemandSuccess(t, p.Stereo.Set(true))

	dev := &fakeDevice{}
	synth := newRecordingSynth(1)
	s, err := NewSound(dev, synth, p)
	test.DemandSuccess(t, err)

	s.Open()
	test.ExpectSuccess(t, s.IsEnabled())
	test.ExpectFailure(t, s.IsMuted())
	test.ExpectFailure(t, dev.paused)
	test.ExpectEquality(t, synth.freq, 44100)
	test.ExpectEquality(t, synth.hw, 2)
	test.ExpectSuccess(t, synth.stereo)
	test.ExpectEquality(t, synth.volume, 40)
	test.ExpectEquality(t, s.Volume(), 40)
}

func TestOpenDisabledByPreference(t *testing.T) {
	p := newTestPreferences(t)
	dev := &fakeDevice{}
	s, err := NewSound(dev, newRecordingSynth(1), p)
	test.DemandSuccess(t, err)

	s.SetEnabled(false)
	test.ExpectEquality(t, p.Enabled.Get().(bool), false)

	s.Open()
	test.ExpectFailure(t, s.IsEnabled())
	test.ExpectSuccess(t, s.IsMuted())
	test.ExpectSuccess(t, dev.paused)

	s.SetEnabled(true)
	s.Open()
	test.ExpectSuccess(t, s.IsEnabled())
}

func TestCloseAndReset(t *testing.T) {
	s, dev, synth := newTestSound(t, 1000, 100, 1000)

	s.Set(1, 5, 10)
	s.Set(1, 6, 20)
	s.Reset()
	_, n := s.Backlog()
	test.ExpectEquality(t, n, 0)
	test.ExpectEquality(t, s.LastRegisterSetCycle(), 0)
	test.ExpectEquality(t, synth.resets, 1)
	test.ExpectSuccess(t, s.IsEnabled())

	// reset preserves the mute state
	test.ExpectFailure(t, dev.paused)
	s.Mute(true)
	s.Reset()
	test.ExpectSuccess(t, dev.paused)
	test.ExpectSuccess(t, s.IsMuted())
	s.Mute(false)
	test.ExpectFailure(t, dev.paused)

	s.Set(1, 5, 10)
	s.Close()
	_, n = s.Backlog()
	test.ExpectEquality(t, n, 0)
	test.ExpectEquality(t, s.LastRegisterSetCycle(), 0)
	test.ExpectEquality(t, synth.resets, 3)
	test.ExpectFailure(t, s.IsEnabled())
	test.ExpectSuccess(t, dev.paused)

	// closed but not destroyed
	test.ExpectFailure(t, dev.closed)
	s.Destroy()
	test.ExpectSuccess(t, dev.closed)
	test.ExpectFailure(t, s.IsInitialised())
}

func TestMuteDoesNotTouchQueue(t *testing.T) {
	s, dev, synth := newTestSound(t, 1000, 100, 1000)

	s.Set(1, 5, 10)
	s.Mute(true)
	test.ExpectSuccess(t, dev.paused)
	s.Mute(false)
	test.ExpectFailure(t, dev.paused)

	_, n := s.Backlog()
	test.ExpectEquality(t, n, 1)
	test.ExpectEquality(t, synth.resets, 0)
}

func TestVolume(t *testing.T) {
	s, _, synth := newTestSound(t, 1000, 100, 1000)

	s.SetVolume(50)
	test.ExpectEquality(t, s.Volume(), 50)
	test.ExpectEquality(t, synth.volume, 50)
	test.ExpectEquality(t, s.prefs.Volume.Get().(int), 50)

	// out of range values are ignored
	s.SetVolume(101)
	test.ExpectEquality(t, s.Volume(), 50)
	s.SetVolume(-1)
	test.ExpectEquality(t, s.Volume(), 50)
	test.ExpectEquality(t, synth.volume, 50)

	v, ok := s.AdjustVolume(1)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, 52)
	v, ok = s.AdjustVolume(-1)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, 50)
	v, ok = s.AdjustVolume(0)
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, v, 50)

	s.SetVolume(100)
	v, ok = s.AdjustVolume(1)
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, v, 100)

	s.SetVolume(1)
	v, ok = s.AdjustVolume(-1)
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, v, 1)

	s.SetVolume(0)
	test.ExpectEquality(t, s.Volume(), 0)
	test.ExpectEquality(t, synth.volume, 0)
}

func TestSetChannels(t *testing.T) {
	s, _, synth := newTestSound(t, 1000, 100, 1000)
	test.ExpectFailure(t, synth.stereo)

	s.SetChannels(3)
	s.SetChannels(0)
	s.Open()
	test.ExpectFailure(t, synth.stereo)

	s.SetChannels(2)
	s.Open()
	test.ExpectSuccess(t, synth.stereo)

	s.SetChannels(1)
	s.Open()
	test.ExpectFailure(t, synth.stereo)
}

func TestSetDelta(t *testing.T) {
	s, _, _ := newTestSound(t, 1000, 100, 1000)

	s.Set(1, 1, 250)
	s.AdjustCycleCounter(-200)
	test.ExpectEquality(t, s.LastRegisterSetCycle(), 50)
	s.Set(1, 2, 100)

	// a cycle before the reference counts as no time at all
	s.Set(1, 3, 0)

	s.crit.Lock()
	defer s.crit.Unlock()
	test.DemandEquality(t, s.queue.Size(), 3)
	test.ExpectApproximate(t, s.queue.Front().Delta, 0.25, 0.000001)
	s.queue.Dequeue()
	test.ExpectApproximate(t, s.queue.Front().Delta, 0.05, 0.000001)
	s.queue.Dequeue()
	test.ExpectEquality(t, s.queue.Front().Delta, 0.0)
}

type trackerRecord struct {
	addr  uint16
	value uint8
	cycle int32
}

type recordingTracker struct {
	records []trackerRecord
	adjust  int32
}

func (r *recordingTracker) AdjustCycleCounter(amount int32) {
	r.adjust += amount
}

func (r *recordingTracker) Track(addr uint16, value uint8, cycle int32) {
	r.records = append(r.records, trackerRecord{addr, value, cycle})
}

func TestTracker(t *testing.T) {
	s, _, _ := newTestSound(t, 1000, 100, 1000)
	trk := &recordingTracker{}
	s.SetTracker(trk)

	s.Set(0x15, 4, 10)
	s.Set(0x19, 15, 20)

	exp := []trackerRecord{{0x15, 4, 10}, {0x19, 15, 20}}
	if diff := cmp.Diff(exp, trk.records, cmp.AllowUnexported(trackerRecord{})); diff != "" {
		t.Errorf("unexpected tracker records (-want +got):\n%s", diff)
	}

	s.AdjustCycleCounter(-20)
	test.ExpectEquality(t, trk.adjust, int32(-20))
	test.ExpectEquality(t, s.LastRegisterSetCycle(), int32(0))
}

func TestCallback(t *testing.T) {
	s, dev, _ := newTestSound(t, 1000, 100, 1000)

	s.Set(1, 9, 0)
	s.Set(1, 0, 50)

	stream := make([]byte, 200)
	dev.callback(stream)

	got := make([]int16, 100)
	for i := range got {
		got[i] = int16(binary.LittleEndian.Uint16(stream[i*2:]))
	}
	exp := append(fill(50, 9), fill(50, 0)...)
	if diff := cmp.Diff(exp, got); diff != "" {
		t.Errorf("unexpected stream (-want +got):\n%s", diff)
	}

	// disabled engine leaves stream untouched
	s.Close()
	for i := range stream {
		stream[i] = 0x55
	}
	s.Set(1, 9, 0)
	dev.callback(stream)
	for i := range stream {
		if stream[i] != 0x55 {
			t.Fatalf("stream changed by closed engine at byte %d", i)
		}
	}
}

func TestCallbackStereoHardware(t *testing.T) {
	p := newTestPreferences(t)
	test.DemandSuccess(t, p.Clock.Set(1000.0))

	dev := &fakeDevice{
		spec: Spec{Freq: 1000, Format: FormatS16, Channels: 2, Samples: 100},
	}
	synth := newRecordingSynth(1)
	s, err := NewSound(dev, synth, p)
	test.DemandSuccess(t, err)
	s.Open()

	s.Set(1, 3, 0)

	// 400 bytes is 100 frames of two int16 samples
	stream := make([]byte, 400)
	dev.callback(stream)
	test.ExpectEquality(t, synth.total(), 100)
	for i := 0; i < 200; i++ {
		test.ExpectEquality(t, int16(binary.LittleEndian.Uint16(stream[i*2:])), 3, i)
	}
}
