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

package wavwriter

import (
	"encoding/binary"
	"os"
	"sync"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/jetsetilly/tiasound/curated"
	"github.com/jetsetilly/tiasound/logger"
	"github.com/jetsetilly/tiasound/sound"
)

// Writer implements the sound.Device interface.
type Writer struct {
	// Realtime should be set before the device is opened
	Realtime bool

	filename string

	f   *os.File
	enc *wav.Encoder

	spec     sound.Spec
	callback func([]byte)

	// the paused field and the encoder are accessed by the realtime goroutine
	// and by the sound engine
	crit   sync.Mutex
	paused bool

	// byte stream given to the callback and the decoded samples given to the
	// encoder
	stream []byte
	ibuf   *audio.IntBuffer

	// fractional sample frames not yet pulled by Advance()
	pending float64

	// number of sample frames written
	frames int

	// first error from the encoder
	err error

	quit chan struct{}
	wg   sync.WaitGroup
}

// NewWriter is the preferred method of initialisation for the Writer type.
func NewWriter(filename string) *Writer {
	return &Writer{
		filename: filename,
		paused:   true,
	}
}

// Open implements the sound.Device interface.
func (w *Writer) Open(desired sound.Spec, callback func([]byte)) (sound.Spec, error) {
	if w.f != nil {
		return sound.Spec{}, curated.Errorf("wavwriter: %v", "already open")
	}
	if desired.Freq <= 0 || desired.Samples <= 0 {
		return sound.Spec{}, curated.Errorf("wavwriter: %v", "bad parameters for wav encoding")
	}

	f, err := os.Create(w.filename)
	if err != nil {
		return sound.Spec{}, curated.Errorf("wavwriter: %v", err)
	}

	w.spec = desired
	w.spec.Format = sound.FormatS16
	w.spec.Channels = min(max(desired.Channels, 1), 2)

	w.f = f
	w.enc = wav.NewEncoder(f, w.spec.Freq, 16, w.spec.Channels, 1)
	w.callback = callback
	w.ibuf = &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: w.spec.Channels,
			SampleRate:  w.spec.Freq,
		},
		SourceBitDepth: 16,
	}

	if w.Realtime {
		w.quit = make(chan struct{})
		w.wg.Add(1)
		go w.realtime()
	}

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s (%s)", w.filename, w.spec)

	return w.spec, nil
}

// pull a fragment every fragment period
func (w *Writer) realtime() {
	defer w.wg.Done()

	period := time.Duration(w.spec.Samples) * time.Second / time.Duration(w.spec.Freq)
	tck := time.NewTicker(period)
	defer tck.Stop()

	for {
		select {
		case <-w.quit:
			return
		case <-tck.C:
			w.crit.Lock()
			w.pull(w.spec.Samples)
			w.crit.Unlock()
		}
	}
}

// Advance pulls enough sample frames from the sound engine to cover the
// duration. Only useful when the Writer is not in realtime mode.
func (w *Writer) Advance(seconds float64) {
	w.crit.Lock()
	defer w.crit.Unlock()

	if w.enc == nil {
		return
	}

	w.pending += seconds * float64(w.spec.Freq)
	n := int(w.pending)
	w.pending -= float64(n)

	for n > 0 {
		c := min(n, w.spec.Samples)
		w.pull(c)
		n -= c
	}
}

// pull the number of sample frames through the callback and encode them. must
// be called with the critical section held
func (w *Writer) pull(samples int) {
	if w.paused || w.err != nil || w.enc == nil {
		return
	}

	n := samples * w.spec.Channels
	if cap(w.stream) < n*2 {
		w.stream = make([]byte, n*2)
	}
	w.stream = w.stream[:n*2]
	clear(w.stream)

	w.callback(w.stream)

	if cap(w.ibuf.Data) < n {
		w.ibuf.Data = make([]int, n)
	}
	w.ibuf.Data = w.ibuf.Data[:n]
	for i := range w.ibuf.Data {
		w.ibuf.Data[i] = int(int16(binary.LittleEndian.Uint16(w.stream[i*2:])))
	}

	if err := w.enc.Write(w.ibuf); err != nil {
		w.err = curated.Errorf("wavwriter: %v", err)
		logger.Log(logger.Allow, "wavwriter", w.err)
		return
	}
	w.frames += samples
}

// Pause implements the sound.Device interface. No samples are written while
// the device is paused.
func (w *Writer) Pause(pause bool) {
	w.crit.Lock()
	defer w.crit.Unlock()
	w.paused = pause
}

// Close implements the sound.Device interface. The WAV file is finalised.
func (w *Writer) Close() {
	if w.quit != nil {
		close(w.quit)
		w.wg.Wait()
		w.quit = nil
	}

	w.crit.Lock()
	defer w.crit.Unlock()

	if w.enc == nil {
		return
	}

	if err := w.enc.Close(); err != nil && w.err == nil {
		w.err = curated.Errorf("wavwriter: %v", err)
	}
	if err := w.f.Close(); err != nil && w.err == nil {
		w.err = curated.Errorf("wavwriter: %v", err)
	}
	if w.err != nil {
		logger.Log(logger.Allow, "wavwriter", w.err)
	}

	logger.Logf(logger.Allow, "wavwriter", "%d sample frames written to %s", w.frames, w.filename)

	w.enc = nil
	w.f = nil
}

// Frames returns the number of sample frames written.
func (w *Writer) Frames() int {
	w.crit.Lock()
	defer w.crit.Unlock()
	return w.frames
}

// Err returns the first error encountered while writing.
func (w *Writer) Err() error {
	w.crit.Lock()
	defer w.crit.Unlock()
	return w.err
}
