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

// Package tune reads and writes register write scripts and plays them into a
// sound engine, standing in for the emulation loop of a full emulator.
//
// A tune file starts with a header line. Each following line is a register
// write at a frame and scanline:
//
//	tiasound tune
//	# frame scanline register value
//	0 0 AUDC0 0x04
//	0 0 AUDF0 0x1f
//	0 10 AUDV0 0x0f
//	30 0 AUDV0 0x00
//
// The register can be given by name or by hex address (eg. 0x19). Values can
// be decimal or hex. Blank lines and lines beginning with # are ignored.
//
// Frames and scanlines are NTSC: 262 scanlines of 76 CPU cycles each.
package tune
