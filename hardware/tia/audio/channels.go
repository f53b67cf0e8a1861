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

package audio

type channel struct {
	Registers

	// which bit of each polynomial counter to use next
	poly4ct int
	poly5ct int
	poly9ct int
	div3ct  uint8

	// the different musical notes available to the 2600 are achieved with a
	// frequency clock. the easiest way to think of this is to think of a
	// filter to the 30Khz clock signal.
	freqCt uint8

	// the current output volume. the different tones are achieved by toggling
	// this value between zero and the value in the volume register.
	actualVol uint8
}

func (ch *channel) reset() {
	*ch = channel{}
}

// useTenKhz is true if bits 2 and 3 of control register are set. from
// TIASound.c: "when bits D2 and D3 are set, the input source is switched to
// the 1.19MHz clock, so the '30KHz' source clock is reduced to approximately
// 10KHz."
func (ch *channel) useTenKhz() bool {
	return ch.Control&0x0c == 0x0c && ch.Control != 0x0f
}

// toggle the output volume between zero and the volume register.
func (ch *channel) toggle() {
	if ch.actualVol != 0 {
		ch.actualVol = 0
	} else {
		ch.actualVol = ch.Volume
	}
}

// changing the value of an audio register can have an immediate effect on the
// output volume.
func (ch *channel) react() {
	if ch.Control == 0x00 || ch.Control == 0x0b {
		ch.actualVol = ch.Volume
	}
}

// tick should be called at a frequency of 30Khz. tenKhz is true every third
// call.
func (ch *channel) tick(tenKhz bool) {
	// control values of 0x00 and 0x0b set the output to the volume register
	// permanently
	if ch.Control == 0x00 || ch.Control == 0x0b {
		ch.actualVol = ch.Volume
		return
	}

	if ch.useTenKhz() && !tenKhz {
		return
	}

	// tick main frequency clock. output only changes when the counter reaches
	// the frequency register value
	if ch.freqCt >= ch.Freq {
		ch.freqCt = 0
	} else {
		ch.freqCt++
		return
	}

	prevBit5 := poly5bit[ch.poly5ct]

	ch.poly5ct++
	if ch.poly5ct >= len(poly5bit) {
		ch.poly5ct = 0
	}

	// check for clock tick
	if !((ch.Control&0x02 == 0x0) ||
		((ch.Control&0x01 == 0x0) && div31[ch.poly5ct] != 0) ||
		((ch.Control&0x01 == 0x1) && poly5bit[ch.poly5ct] != 0) ||
		((ch.Control&0x0f == 0xf) && poly5bit[ch.poly5ct] != prevBit5)) {
		return
	}

	switch {
	case ch.Control&0x04 == 0x04:
		// pure clock
		if ch.Control&0x0f == 0x0f {
			// poly5/div3
			if poly5bit[ch.poly5ct] != prevBit5 {
				ch.div3ct++
				if ch.div3ct == 3 {
					ch.div3ct = 0
					ch.toggle()
				}
			}
		} else {
			ch.toggle()
		}

	case ch.Control&0x08 == 0x08:
		if ch.Control == 0x08 {
			// poly9
			ch.poly9ct++
			if ch.poly9ct >= len(poly9bit) {
				ch.poly9ct = 0
			}
			if poly9bit[ch.poly9ct] != 0 {
				ch.actualVol = ch.Volume
			} else {
				ch.actualVol = 0
			}
		} else if ch.Control&0x02 != 0 {
			if ch.actualVol != 0 || ch.Control&0x01 == 0x01 {
				ch.actualVol = 0
			} else {
				ch.actualVol = ch.Volume
			}
		} else {
			// poly5. the counter has already been advanced
			if poly5bit[ch.poly5ct] == 1 {
				ch.actualVol = ch.Volume
			} else {
				ch.actualVol = 0
			}
		}

	default:
		// poly4
		ch.poly4ct++
		if ch.poly4ct >= len(poly4bit) {
			ch.poly4ct = 0
		}
		if poly4bit[ch.poly4ct] == 1 {
			ch.actualVol = ch.Volume
		} else {
			ch.actualVol = 0
		}
	}
}
