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

// Package tracker keeps a history of changes to the TIA audio registers. Each
// entry records the channel, the new register values and a description of the
// sound those values make.
//
// A Tracker can be attached to the sound engine with sound.SetTracker(). The
// tracked history can be converted to a tune and saved, which is a convenient
// way of capturing the music of a running program.
package tracker
