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

// Package serializer implements a simple binary stream for saving and
// restoring emulation state. Values are written in order and must be read back
// in the same order.
//
// Integers are little-endian. Strings are prefixed with their length as a
// 32bit unsigned integer.
//
// A stream created with NewSerializer() is for writing. The result of the
// writes can be retrieved with Bytes(). A stream created with
// NewDeserializer() is for reading.
package serializer
