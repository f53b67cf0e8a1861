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

package tune

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/jetsetilly/tiasound/curated"
	"github.com/jetsetilly/tiasound/hardware/clocks"
	"github.com/jetsetilly/tiasound/hardware/tia/audio"
)

// Header is the first line of every tune file.
const Header = "tiasound tune"

// Error patterns.
const (
	FormatError = "tune: line %d: %v"
	WriteError  = "tune: %v"
)

// timing of a frame.
const (
	ScanlinesPerFrame = clocks.ScanlinesNTSC
	CyclesPerScanline = clocks.CyclesPerScanline
	CyclesPerFrame    = ScanlinesPerFrame * CyclesPerScanline
)

// Entry is a single register write in a tune.
type Entry struct {
	Frame    int
	Scanline int
	Addr     uint16
	Value    uint8
}

func (e Entry) String() string {
	name, ok := audio.RegisterName(e.Addr)
	if !ok {
		name = fmt.Sprintf("0x%02x", e.Addr)
	}
	return fmt.Sprintf("%d %d %s 0x%02x", e.Frame, e.Scanline, name, e.Value)
}

// Cycle returns the CPU cycle of the write, counting from the start of its
// frame.
func (e Entry) Cycle() int32 {
	return int32(e.Scanline * CyclesPerScanline)
}

// Tune is an ordered list of register writes.
type Tune struct {
	Entries []Entry
}

// Add a register write to the tune. Entries are kept in frame and scanline
// order. Writes at the same point keep the order they were added.
func (t *Tune) Add(e Entry) {
	i := sort.Search(len(t.Entries), func(i int) bool {
		c := t.Entries[i]
		return c.Frame > e.Frame || (c.Frame == e.Frame && c.Scanline > e.Scanline)
	})
	t.Entries = append(t.Entries, Entry{})
	copy(t.Entries[i+1:], t.Entries[i:])
	t.Entries[i] = e
}

// Frames returns the length of the tune in frames.
func (t *Tune) Frames() int {
	if len(t.Entries) == 0 {
		return 0
	}
	return t.Entries[len(t.Entries)-1].Frame + 1
}

// Read a tune from the reader.
func Read(r io.Reader) (*Tune, error) {
	t := &Tune{}

	scanner := bufio.NewScanner(r)
	ln := 0
	header := false

	for scanner.Scan() {
		ln++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !header {
			if line != Header {
				return nil, curated.Errorf(FormatError, ln, "missing header")
			}
			header = true
			continue
		}

		e, err := parseEntry(line)
		if err != nil {
			return nil, curated.Errorf(FormatError, ln, err)
		}
		t.Add(e)
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(FormatError, ln, err)
	}

	if !header {
		return nil, curated.Errorf(FormatError, ln, "missing header")
	}

	return t, nil
}

func parseEntry(line string) (Entry, error) {
	var e Entry

	f := strings.Fields(line)
	if len(f) != 4 {
		return e, fmt.Errorf("expected 4 fields but found %d", len(f))
	}

	var err error

	e.Frame, err = strconv.Atoi(f[0])
	if err != nil || e.Frame < 0 {
		return e, fmt.Errorf("bad frame number: %s", f[0])
	}

	e.Scanline, err = strconv.Atoi(f[1])
	if err != nil || e.Scanline < 0 || e.Scanline >= ScanlinesPerFrame {
		return e, fmt.Errorf("bad scanline number: %s", f[1])
	}

	var ok bool
	e.Addr, ok = audio.RegisterAddress(strings.ToUpper(f[2]))
	if !ok {
		a, err := strconv.ParseUint(f[2], 0, 16)
		if err != nil {
			return e, fmt.Errorf("unrecognised register: %s", f[2])
		}
		if _, ok := audio.RegisterName(uint16(a)); !ok {
			return e, fmt.Errorf("not an audio register: %s", f[2])
		}
		e.Addr = uint16(a)
	}

	v, err := strconv.ParseUint(f[3], 0, 8)
	if err != nil {
		return e, fmt.Errorf("bad value: %s", f[3])
	}
	e.Value = uint8(v)

	return e, nil
}

// Write the tune to the writer in the format accepted by Read().
func (t *Tune) Write(w io.Writer) error {
	b := bufio.NewWriter(w)
	fmt.Fprintln(b, Header)
	fmt.Fprintln(b, "# frame scanline register value")
	for _, e := range t.Entries {
		fmt.Fprintln(b, e.String())
	}
	if err := b.Flush(); err != nil {
		return curated.Errorf(WriteError, err)
	}
	return nil
}
