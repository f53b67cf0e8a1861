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

// Package logger is the central logging facility for tiasound. Log entries are
// kept in memory, up to a maximum number of entries, and can be written to any
// io.Writer on demand. Entries can also be echoed as they arrive.
//
// Consecutive entries with the same tag and detail are collapsed into a single
// entry with a repeat count. This keeps the log readable when an event happens
// every audio fragment.
//
// Every log request is accompanied by a Permission. The Allow permission is
// always granted. Other implementations can be used to silence logging in
// specific contexts, for example when a secondary engine is running a replay.
package logger
