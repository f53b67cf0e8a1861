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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// At its simplest it can be used as a replacement for the flag package, with
// some differences. Instead of flag.Parse() you use the Parse() function of
// the Modes type, which returns a ParseResult. ParseHelp is returned when the
// -help flag has been given and the help message has already been printed.
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("PLAY", "RECORD", "INFO")
//
//	switch p, err := md.Parse(); p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		fmt.Println(err)
//		return
//	}
//
//	switch md.Mode() {
//	case "RECORD":
//		md.NewMode()
//		out := md.AddString("out", "out.wav", "output file")
//		...
//	}
//
// The first sub-mode given to AddSubModes() is the default mode. It is
// selected when the first non-flag argument does not name any of the
// sub-modes. Sub-mode comparisons are case insensitive.
//
// Each call to NewMode() starts a fresh set of flags, parsed from the point in
// the argument list that the previous Parse() left off.
package modalflag
