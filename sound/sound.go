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
	"fmt"
	"math"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/jetsetilly/tiasound/curated"
	"github.com/jetsetilly/tiasound/hardware/clocks"
	"github.com/jetsetilly/tiasound/logger"
)

// devices with a fragment duration equal to or longer than this value (in
// seconds) cannot keep up with the emulation.
const maxFragmentDuration = 0.25

// the frame rate assumed until SetFrameRate() is called.
const defaultFrameRate = clocks.FrameRateNTSC

// Sound is the sound engine. It accepts register writes from the emulation
// and renders them with the synthesizer when the audio device asks for
// samples.
type Sound struct {
	dev   Device
	synth Synthesizer
	prefs *Preferences

	tracker Tracker

	// the device specification as returned by Device.Open()
	spec Spec

	// the device has been opened successfully. this never changes after
	// NewSound() returns, except for a call to Destroy()
	initialised bool

	// enabled is read by the device callback
	enabled atomic.Bool
	muted   atomic.Bool

	// everything below is guarded by crit
	crit sync.Mutex

	queue *RegWriteQueue

	// the cycle of the most recent call to Set()
	lastRegisterSetCycle int32

	// CPU clock in Hz
	clock float64

	volume   int
	channels int

	// log2 of the fragment size and the two backlog thresholds derived from
	// it. see processFragment()
	fragmentSizeLog2 float64
	drainThreshold   float64
	catchThreshold   float64

	// sample buffer used by Callback()
	fragment []int16
}

// NewSound is the preferred method of initialisation for the Sound type. The
// device is opened immediately with the frequency and fragment size given in
// the preferences.
//
// If the device cannot be opened, or is unsuitable, an error is returned
// along with a Sound instance that is usable but silent.
func NewSound(dev Device, synth Synthesizer, prefs *Preferences) (*Sound, error) {
	s := &Sound{
		dev:    dev,
		synth:  synth,
		prefs:  prefs,
		queue:  NewRegWriteQueue(DefaultQueueCapacity),
		volume: 100,
		clock:  prefs.Clock.Get().(float64),
	}
	s.muted.Store(true)

	if prefs.Stereo.Get().(bool) {
		s.channels = 2
	} else {
		s.channels = 1
	}

	err := s.initialise()
	if err != nil {
		logger.Log(logger.Allow, "sound", err)
		return s, err
	}

	return s, nil
}

func (s *Sound) initialise() error {
	if s.dev == nil {
		return curated.Errorf(DeviceUnavailable, "no device")
	}

	desired := Spec{
		Freq:     s.prefs.Freq.Get().(int),
		Format:   FormatS16,
		Channels: 2,
		Samples:  s.prefs.FragSize.Get().(int),
	}

	spec, err := s.dev.Open(desired, s.Callback)
	if err != nil {
		return curated.Errorf(DeviceUnavailable, err)
	}

	if spec.Freq <= 0 || spec.Samples <= 0 || spec.Channels <= 0 {
		s.dev.Close()
		return curated.Errorf(DeviceUnavailable, fmt.Sprintf("unusable specification (%s)", spec))
	}

	if float64(spec.Samples)/float64(spec.Freq) >= maxFragmentDuration {
		s.dev.Close()
		return curated.Errorf(NonRealtimeDevice, spec.Samples, spec.Freq)
	}

	s.spec = spec
	s.fragmentSizeLog2 = math.Log2(float64(spec.Samples))
	s.drainThreshold = s.fragmentSizeLog2 / defaultFrameRate
	s.catchThreshold = (s.fragmentSizeLog2 - 1) / defaultFrameRate
	s.initialised = true

	s.dev.Pause(true)
	logger.Logf(logger.Allow, "sound", "device initialised: %s", spec)

	return nil
}

// Destroy closes the audio device. The Sound instance should not be used after
// this function has been called.
func (s *Sound) Destroy() {
	if !s.initialised {
		return
	}
	s.enabled.Store(false)
	s.dev.Close()
	s.initialised = false
}

// SetTracker adds a Tracker implementation to the sound engine. A value of nil
// removes the current tracker.
func (s *Sound) SetTracker(tracker Tracker) {
	s.tracker = tracker
}

// SetEnabled changes the enabled preference. The change takes effect on the
// next call to Open().
func (s *Sound) SetEnabled(state bool) {
	if err := s.prefs.Enabled.Set(state); err != nil {
		logger.Log(logger.Allow, "sound", err)
		return
	}
	logger.Logf(logger.Allow, "sound", "enabled preference set to %v", state)
}

// Open starts sound output. The engine starts muted and disabled and remains
// so if the device is not initialised or the enabled preference is false.
func (s *Sound) Open() {
	s.enabled.Store(false)
	s.Mute(true)

	if !s.initialised || !s.prefs.Enabled.Get().(bool) {
		logger.Log(logger.Allow, "sound", "sound disabled")
		return
	}

	s.crit.Lock()
	s.clock = s.prefs.Clock.Get().(float64)
	s.lastRegisterSetCycle = 0
	s.synth.OutputFrequency(s.spec.Freq)
	desc := s.synth.Channels(s.spec.Channels, s.channels == 2)
	s.crit.Unlock()

	s.SetVolume(s.prefs.Volume.Get().(int))

	info := strings.Builder{}
	info.WriteString("sound enabled: ")
	info.WriteString(fmt.Sprintf("volume %d, ", s.Volume()))
	info.WriteString(fmt.Sprintf("frag size %d, ", s.spec.Samples))
	info.WriteString(fmt.Sprintf("frequency %d, ", s.spec.Freq))
	info.WriteString(fmt.Sprintf("channels %d (%s)", s.spec.Channels, desc))
	logger.Log(logger.Allow, "sound", info.String())

	s.enabled.Store(true)
	s.Mute(false)
}

// Close stops sound output. Pending register writes are discarded and the
// synthesizer is reset.
func (s *Sound) Close() {
	if !s.initialised {
		return
	}

	s.enabled.Store(false)
	s.dev.Pause(true)

	s.crit.Lock()
	defer s.crit.Unlock()
	s.lastRegisterSetCycle = 0
	s.synth.Reset()
	s.queue.Clear()
}

// Mute pauses (true) or resumes (false) the audio device. The queue and
// synthesizer are not affected.
func (s *Sound) Mute(state bool) {
	if !s.initialised {
		return
	}
	s.muted.Store(state)
	s.dev.Pause(state)
}

// Reset discards pending register writes and resets the synthesizer. The mute
// state is preserved.
func (s *Sound) Reset() {
	if !s.initialised {
		return
	}

	s.dev.Pause(true)

	s.crit.Lock()
	s.lastRegisterSetCycle = 0
	s.synth.Reset()
	s.queue.Clear()
	s.crit.Unlock()

	s.Mute(s.muted.Load())
}

// SetVolume sets the volume as a percentage. Values outside the range 0 to 100
// are ignored, as are all calls before the device is initialised.
func (s *Sound) SetVolume(percent int) {
	if !s.initialised || percent < 0 || percent > 100 {
		return
	}

	if err := s.prefs.Volume.Set(percent); err != nil {
		logger.Log(logger.Allow, "sound", err)
	}

	s.crit.Lock()
	defer s.crit.Unlock()
	s.volume = percent
	s.synth.Volume(percent)
}

// volume step used by AdjustVolume()
const volumeStep = 2

// AdjustVolume raises (direction > 0) or lowers (direction < 0) the volume by
// a fixed step. Returns the volume after the adjustment and whether it changed.
// The volume does not change if the step would take it out of range.
func (s *Sound) AdjustVolume(direction int) (int, bool) {
	percent := s.Volume()
	switch {
	case direction < 0:
		percent -= volumeStep
	case direction > 0:
		percent += volumeStep
	default:
		return percent, false
	}

	if !s.initialised || percent < 0 || percent > 100 {
		return s.Volume(), false
	}

	s.SetVolume(percent)
	return percent, true
}

// SetChannels sets the number of output channels. Only values of 1 or 2 are
// accepted. The change takes effect on the next call to Open().
func (s *Sound) SetChannels(channels int) {
	if channels != 1 && channels != 2 {
		return
	}
	s.crit.Lock()
	defer s.crit.Unlock()
	s.channels = channels
}

// SetFrameRate recalculates the backlog thresholds for the frame rate of the
// emulation. Queued writes are not changed. A frame rate of zero or less is
// ignored.
func (s *Sound) SetFrameRate(fps float64) {
	if fps <= 0 {
		return
	}
	s.crit.Lock()
	defer s.crit.Unlock()
	s.drainThreshold = s.fragmentSizeLog2 / fps
	s.catchThreshold = (s.fragmentSizeLog2 - 1) / fps
}

// AdjustCycleCounter changes the cycle reference used to time the next call to
// Set(). It should be called when the emulation resets its own cycle count.
func (s *Sound) AdjustCycleCounter(amount int32) {
	s.crit.Lock()
	s.lastRegisterSetCycle += amount
	s.crit.Unlock()

	if a, ok := s.tracker.(cycleAdjuster); ok {
		a.AdjustCycleCounter(amount)
	}
}

// Set queues a register write that happened on the CPU cycle. The write will
// be applied to the synthesizer at the point in the audio stream that
// corresponds to the time since the previous write.
func (s *Sound) Set(addr uint16, value uint8, cycle int32) {
	s.crit.Lock()

	// a cycle earlier than the reference is treated as no time at all
	delta := float64(cycle-s.lastRegisterSetCycle) / s.clock
	if delta < 0 || math.IsNaN(delta) || math.IsInf(delta, 0) {
		delta = 0
	}

	s.queue.Enqueue(RegWrite{
		Addr:  addr,
		Value: value,
		Delta: delta,
	})
	s.lastRegisterSetCycle = cycle

	s.crit.Unlock()

	if s.tracker != nil {
		s.tracker.Track(addr, value, cycle)
	}
}

// IsInitialised returns true if the audio device was opened successfully.
func (s *Sound) IsInitialised() bool {
	return s.initialised
}

// IsEnabled returns true if sound is being output.
func (s *Sound) IsEnabled() bool {
	return s.enabled.Load()
}

// IsMuted returns the current mute state.
func (s *Sound) IsMuted() bool {
	return s.muted.Load()
}

// Volume returns the current volume as a percentage.
func (s *Sound) Volume() int {
	s.crit.Lock()
	defer s.crit.Unlock()
	return s.volume
}

// Spec returns the specification of the audio device.
func (s *Sound) Spec() Spec {
	return s.spec
}

// Backlog returns the amount of time, in seconds, represented by the register
// writes waiting in the queue. The second value is the number of writes.
func (s *Sound) Backlog() (float64, int) {
	s.crit.Lock()
	defer s.crit.Unlock()
	return s.queue.Duration(), s.queue.Size()
}

// LastRegisterSetCycle returns the cycle reference used to time the next call
// to Set().
func (s *Sound) LastRegisterSetCycle() int32 {
	s.crit.Lock()
	defer s.crit.Unlock()
	return s.lastRegisterSetCycle
}
