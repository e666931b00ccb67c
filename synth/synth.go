package synth

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sinekeys/sinekeys/logger"
	"github.com/sinekeys/sinekeys/monitor"
	"github.com/sinekeys/sinekeys/ui"
	"github.com/sinekeys/sinekeys/version"
)

// Options are the debugging options of the synthesizer, resolved once at
// startup from the command line.
type Options struct {
	LogLevel   string
	AudioTrace bool
	PerfStats  bool
}

// Launch the synthesizer loop. The function does not return until the
// endSynth channel is signalled or an error is encountered.
func Launch(endSynth chan bool, u *ui.UI, args []string) error {
	var opts Options

	flgs := flag.NewFlagSet(version.ApplicationName, flag.ExitOnError)
	flgs.StringVar(&opts.LogLevel, "log", "quiet", "logging output: quiet or echo")
	flgs.BoolVar(&opts.AudioTrace, "trace", false, "log every audio buffer fill")
	flgs.BoolVar(&opts.PerfStats, "perf", false, "print periodic performance reports")
	err := flgs.Parse(args)
	if err != nil {
		return err
	}
	if len(flgs.Args()) > 0 {
		return fmt.Errorf("too many arguments")
	}

	switch strings.ToLower(opts.LogLevel) {
	case "quiet":
	case "echo":
		logger.SetEcho(os.Stdout, true)
	default:
		return fmt.Errorf("unrecognised log option: %s", opts.LogLevel)
	}

	osc := NewOscillator(Notes[0].Frequency)

	// the frontend owns creation of the audio device. wait for it to hand
	// over the sink before starting the loop
	var sink ui.AudioSink
	select {
	case sink = <-u.RegisterAudio:
	case <-endSynth:
		return nil
	}
	defer sink.Close()

	feeder := NewFeeder(osc, sink, opts.AudioTrace)
	lim := newLimiter(u.Nudge)

	var mon *monitor.Monitor
	if opts.PerfStats {
		mon = monitor.New()
	}

	// the note most recently played. the name field of the zero value is
	// empty, matching the display before any key has been pressed
	var current Note

	for {
		select {
		case <-endSynth:
			return nil
		default:
		}

		// observe pending key events. the last key-down wins and a key-up
		// silences the note regardless of which key was released
		drained := false
		for !drained {
			select {
			case inp := <-u.UserInput:
				if inp.Release {
					osc.SetNote(osc.Frequency(), false)
				} else if n, ok := LookupNote(inp.Action); ok {
					current = n
					osc.SetNote(n.Frequency, true)
				}
			default:
				drained = true
			}
		}

		feeder.Tick()

		select {
		case u.SetDisplay <- ui.Display{NoteOn: osc.Gated(), Name: current.Name}:
		default:
		}

		if mon != nil {
			s := feeder.Stats()
			mon.Tick(monitor.Sample{
				Ticks:        s.Ticks,
				Fills:        s.Fills,
				PushFailures: s.PushFailures,
				Underruns:    s.Underruns,
			})
		}

		lim.Wait()
	}
}
