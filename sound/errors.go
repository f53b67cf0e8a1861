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

// Error patterns returned by the sound package.
const (
	DeviceUnavailable      = "sound: device unavailable: %v"
	NonRealtimeDevice      = "sound: device does not support realtime audio (%d samples at %dHz)"
	PersistenceFormatError = "sound: state: %v"
)
