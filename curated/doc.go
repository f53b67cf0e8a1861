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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. Patterns should be stored as a const string, suitably
// named and commented. For example, the sound package declares:
//
//	const DeviceUnavailable = "sound: device unavailable: %v"
//
// and callers test for it with:
//
//	if curated.Is(err, sound.DeviceUnavailable) {
//		// continue without audio
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain. A curated error that is given another curated error as one
// of its values is said to wrap that error.
//
//	e := curated.Errorf(sound.DeviceUnavailable, "no audio driver")
//	f := curated.Errorf("tiasound: %v", e)
//
//	curated.Has(f, sound.DeviceUnavailable) // true
//	curated.Is(f, sound.DeviceUnavailable)  // false
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). We can think of the difference as being 'expected' and
// 'unexpected' errors depending on how we choose to handle the result.
//
// The Error() function normalises the error chain so that it does not contain
// duplicate adjacent parts. The following chain:
//
//	sound: sound: device unavailable: no audio driver
//
// is printed as:
//
//	sound: device unavailable: no audio driver
//
// Chains are composed of parts separated by the sub-string ': ' as suggested
// on p239 of "The Go Programming Language" (Donovan, Kernighan).
package curated
