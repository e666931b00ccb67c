package synth

import (
	"time"
)

// the ideal iteration rate of the synthesizer loop. key events are observed
// and the display updated at this rate
const loopHz = 60

type limiter struct {
	tick  *time.Ticker
	nudge chan bool

	// the payload function for the Wait() method
	wait func()
}

func newLimiter(nudge chan bool) *limiter {
	l := &limiter{
		nudge: nudge,
	}

	d := time.Second / time.Duration(loopHz)

	// the wait() function deliberately starts slow and then changes state
	// after a few nudges to normal operation
	//
	// this helps ensure that the audio and the loop synchronise after startup
	var ct int
	l.wait = func() {
		select {
		case <-time.After(time.Duration(float64(d) * 1.025)):
		case <-l.nudge:
			ct++
			if ct > 2 {
				l.tick = time.NewTicker(d)
				l.wait = func() {
					select {
					case <-l.tick.C:
					case <-l.nudge:
					}
				}
			}
		}
	}

	return l
}

func (l *limiter) Wait() {
	l.wait()
}
