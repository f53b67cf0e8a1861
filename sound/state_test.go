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
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jetsetilly/tiasound/hardware/tia/audio"
	"github.com/jetsetilly/tiasound/serializer"
	"github.com/jetsetilly/tiasound/test"
)

func TestSaveLayout(t *testing.T) {
	s, _, _ := newTestSound(t, 1000, 100, 1000)

	for i := uint16(0); i < numSavedRegisters; i++ {
		s.Set(0x15+i, uint8(i+1), 10)
	}
	_ = render(s, 100)
	s.Set(0x15, 0x0f, 77)

	data, err := s.SaveState()
	test.DemandSuccess(t, err)

	in := serializer.NewDeserializer(data)
	tag, err := in.GetString()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tag, StateTag)

	// the queued write to 0x15 has not been applied and is not saved
	for i := 0; i < numSavedRegisters; i++ {
		b, err := in.GetByte()
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, b, uint8(i+1), i)
	}

	cycle, err := in.GetInt()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cycle, 77)
	test.ExpectEquality(t, in.Remaining(), 0)
}

func TestSaveUninitialised(t *testing.T) {
	synth := newRecordingSynth(1)
	synth.Set(0x15, 9)

	s, err := NewSound(&fakeDevice{err: errNoDevice}, synth, newTestPreferences(t))
	test.DemandFailure(t, err)

	out := serializer.NewSerializer()
	test.ExpectSuccess(t, s.Save(out))

	in := serializer.NewDeserializer(out.Bytes())
	_, _ = in.GetString()
	b, _ := in.GetByte()
	test.ExpectEquality(t, b, 0)
}

func TestLoadRejection(t *testing.T) {
	s, _, synth := newTestSound(t, 1000, 100, 1000)
	s.Set(1, 3, 40)

	// wrong tag
	out := serializer.NewSerializer()
	test.DemandSuccess(t, out.PutString("Paddles"))
	for i := 0; i < numSavedRegisters; i++ {
		test.DemandSuccess(t, out.PutByte(0xff))
	}
	test.DemandSuccess(t, out.PutInt(1234))
	test.ExpectFailure(t, s.Load(serializer.NewDeserializer(out.Bytes())))

	// truncated
	good, err := s.SaveState()
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, s.LoadState(good[:len(good)-2]))

	// nothing has changed
	_, n := s.Backlog()
	test.ExpectEquality(t, n, 1)
	test.ExpectEquality(t, s.LastRegisterSetCycle(), 40)
	test.ExpectEquality(t, synth.Get(0x15), 0)
}

func TestLoadPausesDevice(t *testing.T) {
	s, dev, synth := newTestSound(t, 1000, 100, 1000)

	data, err := s.SaveState()
	test.DemandSuccess(t, err)

	s.Set(1, 1, 10)
	s.Mute(true)
	test.DemandSuccess(t, s.LoadState(data))
	test.ExpectSuccess(t, dev.paused)

	s.Mute(false)
	test.DemandSuccess(t, s.LoadState(data))
	test.ExpectFailure(t, dev.paused)

	_, n := s.Backlog()
	test.ExpectEquality(t, n, 0)
	test.ExpectEquality(t, synth.Get(0x1a), 0)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	a, _, synthA := newTestSound(t, 1000, 100, 1000)
	synthA.watch = 0x19

	a.Set(0x15, 0x04, 0)
	a.Set(0x19, 0x0c, 10)
	a.Set(0x1a, 0x03, 20)
	_ = render(a, 100)

	data, err := a.SaveState()
	test.DemandSuccess(t, err)

	b, _, synthB := newTestSound(t, 1000, 100, 1000)
	synthB.watch = 0x19
	test.DemandSuccess(t, b.LoadState(data))

	test.ExpectEquality(t, b.LastRegisterSetCycle(), a.LastRegisterSetCycle())

	fa := render(a, 100)
	fb := render(b, 100)
	if diff := cmp.Diff(fa, fb); diff != "" {
		t.Errorf("restored engine differs (-original +restored):\n%s", diff)
	}
	test.ExpectEquality(t, fb[0], 0x0c)
}

func TestSaveLoadRoundTripTIA(t *testing.T) {
	newEngine := func() *Sound {
		p := newTestPreferences(t)
		dev := &fakeDevice{
			spec: Spec{Freq: 44100, Format: FormatS16, Channels: 1, Samples: 512},
		}
		s, err := NewSound(dev, audio.NewAudio(), p)
		test.DemandSuccess(t, err)
		s.Open()
		return s
	}

	a := newEngine()
	a.Set(audio.AUDC0, 0x00, 0)
	a.Set(audio.AUDV0, 0x0a, 100)
	a.Set(audio.AUDV1, 0x04, 200)
	_ = render(a, 512)

	data, err := a.SaveState()
	test.DemandSuccess(t, err)

	b := newEngine()
	test.DemandSuccess(t, b.LoadState(data))

	fa := render(a, 512)
	fb := render(b, 512)
	if diff := cmp.Diff(fa, fb); diff != "" {
		t.Errorf("restored engine differs (-original +restored):\n%s", diff)
	}
}
