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

package tune_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jetsetilly/tiasound/curated"
	"github.com/jetsetilly/tiasound/hardware/tia/audio"
	"github.com/jetsetilly/tiasound/test"
	"github.com/jetsetilly/tiasound/tune"
)

const example = `tiasound tune
# frame scanline register value
0 0 AUDC0 0x04
0 0 AUDF0 31

1 100 0x19 0x0f
# comment in the middle
0 10 audv0 15
3 0 AUDV0 0
`

func TestRead(t *testing.T) {
	tn, err := tune.Read(strings.NewReader(example))
	test.DemandSuccess(t, err)

	exp := []tune.Entry{
		{Frame: 0, Scanline: 0, Addr: audio.AUDC0, Value: 0x04},
		{Frame: 0, Scanline: 0, Addr: audio.AUDF0, Value: 31},
		{Frame: 0, Scanline: 10, Addr: audio.AUDV0, Value: 15},
		{Frame: 1, Scanline: 100, Addr: audio.AUDV0, Value: 0x0f},
		{Frame: 3, Scanline: 0, Addr: audio.AUDV0, Value: 0},
	}
	if diff := cmp.Diff(exp, tn.Entries); diff != "" {
		t.Errorf("unexpected entries (-want +got):\n%s", diff)
	}

	test.ExpectEquality(t, tn.Frames(), 4)
	test.ExpectEquality(t, tn.Entries[2].Cycle(), int32(760))
	test.ExpectEquality(t, tn.Entries[2].String(), "0 10 AUDV0 0x0f")
}

func TestReadErrors(t *testing.T) {
	bad := []string{
		"",
		"0 0 AUDC0 0x04\n",
		"tiasound tune\n0 0 AUDC0\n",
		"tiasound tune\n-1 0 AUDC0 1\n",
		"tiasound tune\n0 262 AUDC0 1\n",
		"tiasound tune\n0 0 COLUP0 1\n",
		"tiasound tune\n0 0 0x06 1\n",
		"tiasound tune\n0 0 AUDC0 256\n",
	}

	for _, b := range bad {
		_, err := tune.Read(strings.NewReader(b))
		test.ExpectFailure(t, err, b)
		test.ExpectEquality(t, curated.Is(err, tune.FormatError), true, b)
	}
}

func TestWriteRead(t *testing.T) {
	tn, err := tune.Read(strings.NewReader(example))
	test.DemandSuccess(t, err)

	var b bytes.Buffer
	test.DemandSuccess(t, tn.Write(&b))
	test.ExpectEquality(t, strings.HasPrefix(b.String(), tune.Header+"\n"), true)

	rt, err := tune.Read(&b)
	test.DemandSuccess(t, err)
	if diff := cmp.Diff(tn, rt); diff != "" {
		t.Errorf("tune changed after write and read (-want +got):\n%s", diff)
	}
}

func TestAddOrder(t *testing.T) {
	var tn tune.Tune
	tn.Add(tune.Entry{Frame: 2, Addr: audio.AUDV0, Value: 1})
	tn.Add(tune.Entry{Frame: 0, Addr: audio.AUDV0, Value: 2})
	tn.Add(tune.Entry{Frame: 2, Addr: audio.AUDV0, Value: 3})
	tn.Add(tune.Entry{Frame: 1, Scanline: 5, Addr: audio.AUDV0, Value: 4})
	tn.Add(tune.Entry{Frame: 1, Scanline: 4, Addr: audio.AUDV0, Value: 5})

	var vals []uint8
	for _, e := range tn.Entries {
		vals = append(vals, e.Value)
	}
	if diff := cmp.Diff([]uint8{2, 5, 4, 1, 3}, vals); diff != "" {
		t.Errorf("unexpected order (-want +got):\n%s", diff)
	}

	var empty tune.Tune
	test.ExpectEquality(t, empty.Frames(), 0)
}
