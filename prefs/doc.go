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

// Package prefs facilitates the storage of preferential values in the
// application. Preference values are typed (Bool, String, Int and Float) and
// are safe to read from any goroutine. This is important for the sound engine
// because the audio device reads preferences from its own callback thread.
//
// Values can be associated with a key on a Disk instance and saved to and
// loaded from a file. For example:
//
//	dsk, err := prefs.NewDisk(pth)
//	var volume prefs.Int
//	err = dsk.Add("sound.volume", &volume)
//	err = dsk.Load()
//
// Loading will also apply any values that have been pushed to the command
// line stack with PushCommandLineStack(). This allows a user to override a
// preference for the duration of a single session without saving the new
// value to disk.
//
// Each preference type can have a hook function that is called just before
// and just after the value is changed. The pre hook can reject a value by
// returning an error.
package prefs
