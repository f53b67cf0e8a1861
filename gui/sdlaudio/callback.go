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

package sdlaudio

// typedef unsigned char Uint8;
// void fillBuffer(void *userdata, Uint8 *stream, int len);
import "C"

import (
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
)

//export fillBuffer
func fillBuffer(_ unsafe.Pointer, stream *C.Uint8, length C.int) {
	cb := active.Load()
	if cb == nil {
		return
	}
	(*cb)(unsafe.Slice((*byte)(unsafe.Pointer(stream)), int(length)))
}

func callbackFunc() sdl.AudioCallback {
	return sdl.AudioCallback(C.fillBuffer)
}
