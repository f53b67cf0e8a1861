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

package audio

import "fmt"

// Addresses of the TIA audio registers.
const (
	AUDC0 uint16 = 0x15
	AUDC1 uint16 = 0x16
	AUDF0 uint16 = 0x17
	AUDF1 uint16 = 0x18
	AUDV0 uint16 = 0x19
	AUDV1 uint16 = 0x1a
)

// NumRegisters is the number of audio registers. The registers are contiguous
// starting at AUDC0.
const NumRegisters = 6

var registerNames = [NumRegisters]string{"AUDC0", "AUDC1", "AUDF0", "AUDF1", "AUDV0", "AUDV1"}

// RegisterName returns the canonical name of the register at the address.
func RegisterName(addr uint16) (string, bool) {
	if addr < AUDC0 || addr > AUDV1 {
		return "", false
	}
	return registerNames[addr-AUDC0], true
}

// RegisterAddress returns the address of the named register. The name must be
// in the canonical form returned by RegisterName().
func RegisterAddress(name string) (uint16, bool) {
	for i, n := range registerNames {
		if n == name {
			return AUDC0 + uint16(i), true
		}
	}
	return 0, false
}

// Channel returns the channel number (0 or 1) that the register address
// affects.
func Channel(addr uint16) int {
	return int(addr-AUDC0) & 0x01
}

// Registers is the state of the three audio registers for a single channel.
type Registers struct {
	Control uint8
	Freq    uint8
	Volume  uint8
}

func (reg Registers) String() string {
	return fmt.Sprintf("%04b @ %05b ^ %04b", reg.Control, reg.Freq, reg.Volume)
}

// Write a value to the register at address, masking the value according to the
// width of the register. The channel number of the address is not checked.
func (reg *Registers) Write(addr uint16, value uint8) {
	switch addr {
	case AUDC0, AUDC1:
		reg.Control = value & 0x0f
	case AUDF0, AUDF1:
		reg.Freq = value & 0x1f
	case AUDV0, AUDV1:
		reg.Volume = value & 0x0f
	}
}

// Read the value of the register at address.
func (reg Registers) Read(addr uint16) uint8 {
	switch addr {
	case AUDC0, AUDC1:
		return reg.Control
	case AUDF0, AUDF1:
		return reg.Freq
	case AUDV0, AUDV1:
		return reg.Volume
	}
	return 0
}
