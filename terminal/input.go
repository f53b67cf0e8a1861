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
	"os"
	"sync"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"

	"github.com/jetsetilly/tiasound/logger"
)

// Input reads single key presses from a terminal.
type Input struct {
	input *os.File

	canAttr    unix.Termios
	cbreakAttr unix.Termios

	keys chan rune

	restore sync.Once
}

// NewInput puts the terminal into cbreak mode and starts reading key presses
// from it. The file must be a terminal. Restore() should be called before the
// program ends.
func NewInput(inputFile *os.File) (*Input, error) {
	if inputFile == nil {
		return nil, fmt.Errorf("terminal: input requires a file")
	}

	in := &Input{
		input: inputFile,
		keys:  make(chan rune, 16),
	}

	if err := termios.Tcgetattr(in.input.Fd(), &in.canAttr); err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}
	in.cbreakAttr = in.canAttr
	termios.Cfmakecbreak(&in.cbreakAttr)

	if err := termios.Tcsetattr(in.input.Fd(), termios.TCIFLUSH, &in.cbreakAttr); err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}

	// the reading goroutine is not stopped by Restore(). it will end when the
	// file is closed or when the program exits
	go func() {
		defer close(in.keys)
		b := make([]byte, 1)
		for {
			n, err := in.input.Read(b)
			if err != nil {
				logger.Log(logger.Allow, "terminal", err)
				return
			}
			if n == 1 {
				in.keys <- rune(b[0])
			}
		}
	}()

	return in, nil
}

// Keys returns the channel on which key presses are delivered. The channel is
// closed if the terminal can no longer be read.
func (in *Input) Keys() <-chan rune {
	return in.keys
}

// Restore the terminal to the mode it was in when NewInput() was called. Safe
// to call more than once.
func (in *Input) Restore() {
	in.restore.Do(func() {
		if err := termios.Tcsetattr(in.input.Fd(), termios.TCIFLUSH, &in.canAttr); err != nil {
			logger.Log(logger.Allow, "terminal", err)
		}
	})
}
