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

	"github.com/jetsetilly/tiasound/curated"
	"github.com/jetsetilly/tiasound/logger"
	"github.com/jetsetilly/tiasound/serializer"
)

// StateTag identifies sound engine state in a serialized stream.
const StateTag = "TIASound"

// the sound registers that are saved and restored. the addresses are
// contiguous
const (
	firstSavedRegister = 0x15
	numSavedRegisters  = 6
)

// Save the register values and the cycle reference to the stream. Register
// values are zero if the device has not been initialised. Queued writes are
// not saved.
//
// Returns false if the state could not be written.
func (s *Sound) Save(out *serializer.Serializer) bool {
	if err := s.save(out); err != nil {
		logger.Log(logger.Allow, "sound", err)
		return false
	}
	return true
}

func (s *Sound) save(out *serializer.Serializer) error {
	var regs [numSavedRegisters]uint8

	s.crit.Lock()
	if s.initialised {
		for i := range regs {
			regs[i] = s.synth.Get(firstSavedRegister + uint16(i))
		}
	}
	cycle := s.lastRegisterSetCycle
	s.crit.Unlock()

	if err := out.PutString(StateTag); err != nil {
		return curated.Errorf(PersistenceFormatError, err)
	}
	for _, r := range regs {
		if err := out.PutByte(r); err != nil {
			return curated.Errorf(PersistenceFormatError, err)
		}
	}
	if err := out.PutInt(cycle); err != nil {
		return curated.Errorf(PersistenceFormatError, err)
	}

	return nil
}

// Load register values and the cycle reference from the stream. Queued writes
// are discarded. Returns false if the stream does not start with sound engine
// state or if the state is incomplete, in which case the engine is unchanged.
func (s *Sound) Load(in *serializer.Serializer) bool {
	if err := s.load(in); err != nil {
		logger.Log(logger.Allow, "sound", err)
		return false
	}
	return true
}

func (s *Sound) load(in *serializer.Serializer) error {
	tag, err := in.GetString()
	if err != nil {
		return curated.Errorf(PersistenceFormatError, err)
	}
	if tag != StateTag {
		return curated.Errorf(PersistenceFormatError, fmt.Sprintf("unexpected tag %q", tag))
	}

	var regs [numSavedRegisters]uint8
	for i := range regs {
		regs[i], err = in.GetByte()
		if err != nil {
			return curated.Errorf(PersistenceFormatError, err)
		}
	}

	cycle, err := in.GetInt()
	if err != nil {
		return curated.Errorf(PersistenceFormatError, err)
	}

	if !s.initialised {
		s.crit.Lock()
		s.lastRegisterSetCycle = cycle
		s.crit.Unlock()
		return nil
	}

	s.dev.Pause(true)

	s.crit.Lock()
	s.lastRegisterSetCycle = cycle
	s.queue.Clear()
	for i, r := range regs {
		s.synth.Set(firstSavedRegister+uint16(i), r)
	}
	s.crit.Unlock()

	if !s.muted.Load() {
		s.dev.Pause(false)
	}

	return nil
}

// SaveState returns the sound engine state as a byte slice.
func (s *Sound) SaveState() ([]byte, error) {
	out := serializer.NewSerializer()
	if err := s.save(out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// LoadState restores sound engine state from data created by SaveState().
func (s *Sound) LoadState(data []byte) error {
	return s.load(serializer.NewDeserializer(data))
}
