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

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/jetsetilly/tiasound/gui/otoaudio"
	"github.com/jetsetilly/tiasound/gui/sdlaudio"
	"github.com/jetsetilly/tiasound/hardware/clocks"
	"github.com/jetsetilly/tiasound/hardware/tia/audio"
	"github.com/jetsetilly/tiasound/logger"
	"github.com/jetsetilly/tiasound/modalflag"
	"github.com/jetsetilly/tiasound/prefs"
	"github.com/jetsetilly/tiasound/resources"
	"github.com/jetsetilly/tiasound/sound"
	"github.com/jetsetilly/tiasound/statsview"
	"github.com/jetsetilly/tiasound/terminal"
	"github.com/jetsetilly/tiasound/tracker"
	"github.com/jetsetilly/tiasound/tune"
	"github.com/jetsetilly/tiasound/version"
	"github.com/jetsetilly/tiasound/wavwriter"
)

func main() {
	os.Exit(launch())
}

// launch returns the value to be used with os.Exit().
func launch() int {
	// #ctrlc cancels the context. each mode stops as soon as it can
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("PLAY", "RECORD", "INFO", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "PLAY":
		err = play(ctx, md)

	case "RECORD":
		err = record(ctx, md)

	case "INFO":
		err = info(md)

	case "VERSION":
		fmt.Println(version.String())
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

// the tune file is the single remaining argument of every mode.
func loadTune(md *modalflag.Modes) (*tune.Tune, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return nil, fmt.Errorf("tune file required for %s mode", md)
	case 1:
	default:
		return nil, fmt.Errorf("too many arguments for %s mode", md)
	}

	f, err := os.Open(md.GetArg(0))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return tune.Read(f)
}

// load preferences from disk. the tv specification is only used if it is not
// empty, in which case it overrides the clock preference.
func loadPreferences(overrides string, spec string) (*sound.Preferences, error) {
	if overrides != "" {
		prefs.PushCommandLineStack(overrides)
	}

	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	p, err := sound.NewPreferences(pth)
	if err != nil {
		return nil, err
	}

	if unused := prefs.PopCommandLineStack(); unused != "" {
		logger.Logf(logger.Allow, "tiasound", "unused preferences: %s", unused)
	}

	if spec != "" {
		if err := p.Clock.Set(clocks.CPU(strings.ToUpper(spec))); err != nil {
			return nil, err
		}
	}

	return p, nil
}

func frameRate(spec string) float64 {
	switch strings.ToUpper(spec) {
	case "PAL", "SECAM":
		return clocks.FrameRatePAL
	}
	return clocks.FrameRateNTSC
}

func play(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	device := md.AddString("device", "sdl", "audio device: sdl, oto")
	loop := md.AddBool("loop", false, "loop the tune")
	spec := md.AddString("tv", "", "television specification: NTSC, PAL (default from preferences)")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	overrides := md.AddString("prefs", "", "preference overrides (eg. \"sound.volume::50; sound.stereo::true\")")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if stats != nil && *stats {
		statsview.Launch(os.Stdout)
	}

	tn, err := loadTune(md)
	if err != nil {
		return err
	}

	pref, err := loadPreferences(*overrides, *spec)
	if err != nil {
		return err
	}

	var dev sound.Device
	switch strings.ToLower(*device) {
	case "sdl":
		dev = sdlaudio.NewAudio()
	case "oto":
		dev = otoaudio.NewAudio()
	default:
		return fmt.Errorf("unknown audio device: %s", *device)
	}

	snd, err := sound.NewSound(dev, audio.NewAudio(), pref)
	if err != nil {
		return err
	}
	defer snd.Destroy()

	clock := pref.Clock.Get().(float64)

	tr := tracker.NewTracker(clock)
	snd.SetTracker(tr)
	snd.Open()

	pl := tune.NewPlayer(tn, snd)
	pl.Loop = *loop
	pl.FrameRate = frameRate(*spec)
	snd.SetFrameRate(pl.FrameRate)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// keyboard control is not available if stdin is not a terminal
	var keys <-chan rune
	in, err := terminal.NewInput(os.Stdin)
	if err != nil {
		logger.Log(logger.Allow, "tiasound", err)
	} else {
		defer in.Restore()
		keys = in.Keys()
		fmt.Println("+/- volume, m mute, r reset, s save, l load, q quit")
	}

	status := terminal.NewStatus(terminal.Width(os.Stdout) - 1)
	pl.OnFrame = func(frame int) {
		if frame%10 != 0 {
			return
		}
		d, n := snd.Backlog()
		fmt.Printf("\r\033[K%s", status.Render(terminal.StatusInfo{
			Enabled: snd.IsEnabled(),
			Muted:   snd.IsMuted(),
			Volume:  snd.Volume(),
			Queued:  n,
			Backlog: d,
			Frame:   frame,
			Entries: tr.Recent(4),
		}))
	}

	done := make(chan error, 1)
	go func() {
		done <- pl.Run(ctx)
	}()

	var state []byte
	volumeChanged := false

	for {
		select {
		case err := <-done:
			fmt.Print("\r\n")
			// the volume preference is updated by the sound engine
			if volumeChanged {
				if err := pref.Save(); err != nil {
					logger.Log(logger.Allow, "tiasound", err)
				}
			}
			return err

		case k, ok := <-keys:
			if !ok {
				keys = nil
				continue
			}

			switch k {
			case '+', '=':
				if _, ok := snd.AdjustVolume(1); ok {
					volumeChanged = true
				}
			case '-', '_':
				if _, ok := snd.AdjustVolume(-1); ok {
					volumeChanged = true
				}
			case 'm':
				snd.Mute(!snd.IsMuted())
			case 'r':
				snd.Reset()
			case 's':
				state, err = snd.SaveState()
				if err != nil {
					logger.Log(logger.Allow, "tiasound", err)
				}
			case 'l':
				if state != nil {
					if err := snd.LoadState(state); err != nil {
						logger.Log(logger.Allow, "tiasound", err)
					}
				}
			case 'q':
				cancel()
			}
		}
	}
}

func record(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	wav := md.AddString("wav", "tiasound.wav", "wav file to write")
	realtime := md.AddBool("realtime", false, "record in real time")
	spec := md.AddString("tv", "", "television specification: NTSC, PAL (default from preferences)")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	overrides := md.AddString("prefs", "", "preference overrides (eg. \"sound.freq::22050\")")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	tn, err := loadTune(md)
	if err != nil {
		return err
	}

	pref, err := loadPreferences(*overrides, *spec)
	if err != nil {
		return err
	}

	// a recording is always made whatever the enabled preference says
	if err := pref.Enabled.Set(true); err != nil {
		return err
	}

	w := wavwriter.NewWriter(*wav)
	w.Realtime = *realtime

	snd, err := sound.NewSound(w, audio.NewAudio(), pref)
	if err != nil {
		return err
	}
	snd.Open()

	clock := pref.Clock.Get().(float64)

	pl := tune.NewPlayer(tn, snd)
	pl.FrameRate = frameRate(*spec)
	pl.Limit = *realtime
	snd.SetFrameRate(pl.FrameRate)

	if !*realtime {
		pl.OnFrame = func(_ int) {
			w.Advance(tune.CyclesPerFrame / clock)
		}
	}

	err = pl.Run(ctx)

	// closes the device and finalises the wav file
	snd.Destroy()

	if err != nil {
		return err
	}
	if err := w.Err(); err != nil {
		return err
	}

	fmt.Printf("%d sample frames written to %s\n", w.Frames(), *wav)

	return nil
}

func info(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	tn, err := loadTune(md)
	if err != nil {
		return err
	}

	pref, err := loadPreferences("", "")
	if err != nil {
		return err
	}

	fmt.Println("preferences")
	fmt.Println(pref.String())

	var counts [audio.NumRegisters]int
	for _, e := range tn.Entries {
		counts[e.Addr-audio.AUDC0]++
	}

	fmt.Println("tune")
	fmt.Printf("frames: %d (%.2fs)\n", tn.Frames(), float64(tn.Frames())/clocks.FrameRateNTSC)
	fmt.Printf("writes: %d\n", len(tn.Entries))
	for i, c := range counts {
		name, _ := audio.RegisterName(audio.AUDC0 + uint16(i))
		fmt.Printf("  %s: %d\n", name, c)
	}

	return nil
}
