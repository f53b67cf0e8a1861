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

// Package sound is the audio timing core of the emulator. It sits between an
// emulation loop that writes to the TIA sound registers at its own pace and an
// audio device that pulls PCM samples on its own schedule.
//
// Every register write is stamped with the CPU cycle at which it happened. The
// Set() function converts the cycle count into the time since the previous
// write and queues the write. When the audio device asks for more samples, the
// queued writes are replayed into the synthesizer at the correct sample
// position within the requested fragment. Writes that fall beyond the end of
// the fragment stay queued, with the time already rendered subtracted.
//
// If the emulation runs ahead of the audio device the queue grows. When the
// queued time exceeds a threshold some writes are applied to the synthesizer
// immediately, without rendering, in order to catch up.
//
// All mutation of the queue, the cycle reference and the synthesizer happens
// in a single critical section. Device methods are never called from inside
// the critical section because a device may hold its own lock while the
// callback is running.
package sound
