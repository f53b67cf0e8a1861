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

package tracker

import (
	"fmt"
	"sync"

	"github.com/jetsetilly/tiasound/hardware/tia/audio"
	"github.com/jetsetilly/tiasound/tune"
)

// MaxEntries is the number of entries kept by the Tracker. Older entries are
// forgotten.
const MaxEntries = 1024

// Entry is a change to the registers of one audio channel.
type Entry struct {
	// the cycle of the write, counted from the first cycle seen by the
	// tracker. unlike the cycle passed to Track() this never goes backwards
	// unless the cycle counter is adjusted by a positive amount
	Cycle int64

	Channel   int
	Addr      uint16
	Value     uint8
	Registers audio.Registers

	Distortion  string
	MusicalNote MusicalNote
}

func (e Entry) String() string {
	return fmt.Sprintf("%d: ch%d %s %s %s", e.Cycle, e.Channel, e.Registers, e.Distortion, e.MusicalNote)
}

// Tracker keeps a history of the audio registers over time. It implements the
// sound.Tracker interface.
type Tracker struct {
	crit sync.Mutex

	clock float64

	entries []Entry

	// the cycle counter of the sound engine is periodically moved backwards.
	// offset is added to every cycle passed to Track() to give an absolute
	// cycle count
	offset int64

	// current register values so we can compare to see whether a write has
	// changed anything and is thus worth recording
	regs [2]audio.Registers
}

// NewTracker is the preferred method of initialisation for the Tracker type.
// The clock is the CPU clock in Hz and is used to find the musical note of
// each entry.
func NewTracker(clock float64) *Tracker {
	if clock <= 0 {
		clock = DefaultClock
	}
	return &Tracker{
		clock:   clock,
		entries: make([]Entry, 0, MaxEntries),
	}
}

// Track implements the sound.Tracker interface.
func (tr *Tracker) Track(addr uint16, value uint8, cycle int32) {
	if _, ok := audio.RegisterName(addr); !ok {
		return
	}

	tr.crit.Lock()
	defer tr.crit.Unlock()

	ch := audio.Channel(addr)
	reg := tr.regs[ch]
	reg.Write(addr, value)
	if reg == tr.regs[ch] {
		return
	}
	tr.regs[ch] = reg

	if len(tr.entries) >= MaxEntries {
		copy(tr.entries, tr.entries[1:])
		tr.entries = tr.entries[:len(tr.entries)-1]
	}

	tr.entries = append(tr.entries, Entry{
		Cycle:       tr.offset + int64(cycle),
		Channel:     ch,
		Addr:        addr,
		Value:       reg.Read(addr),
		Registers:   reg,
		Distortion:  LookupDistortion(reg),
		MusicalNote: LookupMusicalNote(tr.clock, reg),
	})
}

// AdjustCycleCounter should be called whenever the cycle counter of the sound
// engine is adjusted. The sound engine does this automatically for a Tracker
// given to it with SetTracker().
func (tr *Tracker) AdjustCycleCounter(amount int32) {
	tr.crit.Lock()
	defer tr.crit.Unlock()
	tr.offset -= int64(amount)
}

// Reset forgets all entries and register values.
func (tr *Tracker) Reset() {
	tr.crit.Lock()
	defer tr.crit.Unlock()
	tr.entries = tr.entries[:0]
	tr.offset = 0
	tr.regs = [2]audio.Registers{}
}

// Copy makes a copy of the Tracker entries.
func (tr *Tracker) Copy() []Entry {
	tr.crit.Lock()
	defer tr.crit.Unlock()
	return append([]Entry(nil), tr.entries...)
}

// Recent returns a copy of the most recent n entries, oldest first.
func (tr *Tracker) Recent(n int) []Entry {
	tr.crit.Lock()
	defer tr.crit.Unlock()
	n = max(0, min(n, len(tr.entries)))
	return append([]Entry(nil), tr.entries[len(tr.entries)-n:]...)
}

// Registers returns the current register values of the channel.
func (tr *Tracker) Registers(channel int) audio.Registers {
	tr.crit.Lock()
	defer tr.crit.Unlock()
	return tr.regs[channel&0x01]
}

// Tune converts the tracked entries into a tune. The first frame of the tune is
// the frame of the oldest entry.
func (tr *Tracker) Tune() *tune.Tune {
	tr.crit.Lock()
	defer tr.crit.Unlock()

	t := &tune.Tune{}
	if len(tr.entries) == 0 {
		return t
	}

	start := tr.entries[0].Cycle / tune.CyclesPerFrame
	if tr.entries[0].Cycle < 0 && tr.entries[0].Cycle%tune.CyclesPerFrame != 0 {
		start--
	}

	for _, e := range tr.entries {
		c := e.Cycle - start*tune.CyclesPerFrame
		t.Add(tune.Entry{
			Frame:    int(c / tune.CyclesPerFrame),
			Scanline: int((c % tune.CyclesPerFrame) / tune.CyclesPerScanline),
			Addr:     e.Addr,
			Value:    e.Value,
		})
	}

	return t
}
