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

package terminal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jetsetilly/tiasound/tracker"
)

// StatusInfo is the information shown by Status.
type StatusInfo struct {
	Enabled bool
	Muted   bool
	Volume  int

	// the queued register writes and the amount of sound they represent in
	// seconds
	Queued  int
	Backlog float64

	Frame int

	// most recent tracker entries. only the last entry for each channel is
	// shown
	Entries []tracker.Entry
}

// Status renders StatusInfo as a single line of text.
type Status struct {
	// maximum width of the rendered line. a value of zero means there is no
	// limit
	Width int

	label   lipgloss.Style
	value   lipgloss.Style
	muted   lipgloss.Style
	warning lipgloss.Style
	channel [2]lipgloss.Style
}

// a backlog longer than this is shown as a warning
const backlogWarning = 0.1

// NewStatus is the preferred method of initialisation for the Status type.
func NewStatus(width int) *Status {
	return &Status{
		Width:   width,
		label:   lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(8)),
		value:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)),
		muted:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(1)),
		warning: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(3)),
		channel: [2]lipgloss.Style{
			lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(6)),
			lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(5)),
		},
	}
}

// Render the status line.
func (st *Status) Render(info StatusInfo) string {
	var parts []string

	switch {
	case !info.Enabled:
		parts = append(parts, st.muted.Render("disabled"))
	case info.Muted:
		parts = append(parts, st.muted.Render("muted"))
	default:
		parts = append(parts, st.label.Render("vol")+" "+st.value.Render(fmt.Sprintf("%3d%%", info.Volume)))
	}

	backlog := fmt.Sprintf("%3d %5.1fms", info.Queued, info.Backlog*1000)
	if info.Backlog > backlogWarning {
		backlog = st.warning.Render(backlog)
	} else {
		backlog = st.value.Render(backlog)
	}
	parts = append(parts, st.label.Render("queue")+" "+backlog)

	parts = append(parts, st.label.Render("frame")+" "+st.value.Render(fmt.Sprintf("%d", info.Frame)))

	var last [2]*tracker.Entry
	for i := range info.Entries {
		e := &info.Entries[i]
		last[e.Channel&0x01] = e
	}
	for ch, e := range last {
		if e == nil {
			continue
		}
		parts = append(parts, st.channel[ch].Render(fmt.Sprintf("ch%d %s %s", ch, e.Distortion, e.MusicalNote)))
	}

	line := strings.Join(parts, "  ")
	if st.Width > 0 {
		line = lipgloss.NewStyle().MaxWidth(st.Width).Render(line)
	}
	return line
}
