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

// Package clocks defines the speed of the main clock in the VCS console for
// each of the television specifications. The sound engine uses these values
// to convert CPU cycle counts into seconds.
//
// Values taken from:
// http://www.taswegian.com/WoodgrainWizard/tiki-index.php?page=Clock-Speeds
package clocks

// CPU clock speeds in MHz.
const (
	NTSC  = 1.193182
	PAL   = 1.182298
	PAL_M = 1.191870
	SECAM = 1.187500
)

// TIA colour clock speeds in MHz. The TIA runs three times faster than the CPU.
const (
	NTSC_TIA  = NTSC * 3
	PAL_TIA   = PAL * 3
	PAL_M_TIA = PAL_M * 3
	SECAM_TIA = SECAM * 3
)

// Hz converts a clock speed in MHz to Hz.
func Hz(mhz float64) float64 {
	return mhz * 1000000
}

// CPU clock speed in Hz for the named television specification. Unknown names
// return the NTSC value.
func CPU(spec string) float64 {
	switch spec {
	case "PAL":
		return Hz(PAL)
	case "PAL-M", "PAL_M":
		return Hz(PAL_M)
	case "SECAM":
		return Hz(SECAM)
	}
	return Hz(NTSC)
}

// Number of CPU cycles in a scanline and the number of scanlines in a frame
// for NTSC and PAL televisions.
const (
	CyclesPerScanline = 76
	ScanlinesNTSC     = 262
	ScanlinesPAL      = 312
)

// Frame rates of the television specifications.
const (
	FrameRateNTSC = 60.0
	FrameRatePAL  = 50.0
)
