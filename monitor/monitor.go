// Package monitor prints periodic performance reports for the synthesizer
// loop to the terminal.
package monitor

import (
	"fmt"
	"time"

	"github.com/sinekeys/sinekeys/version"
)

// how often a report is printed
const reportInterval = time.Second

// Sample is a snapshot of the counters the monitor reports on
type Sample struct {
	Ticks        uint64
	Fills        uint64
	PushFailures uint64
	Underruns    uint64
}

type Monitor struct {
	styles styles

	lastReport time.Time
	lastSample Sample
}

// New is the preferred method of initialisation for the Monitor type
func New() *Monitor {
	m := &Monitor{
		styles:     newStyles(),
		lastReport: time.Now(),
	}
	fmt.Println(m.styles.banner.Render(
		fmt.Sprintf("%s performance monitor", version.Title()),
	))
	return m
}

// Tick gives the monitor the chance to print a report. Reports are printed at
// most once per second regardless of how often Tick is called.
func (m *Monitor) Tick(s Sample) {
	now := time.Now()
	elapsed := now.Sub(m.lastReport)
	if elapsed < reportInterval {
		return
	}

	secs := elapsed.Seconds()
	ticks := float64(s.Ticks-m.lastSample.Ticks) / secs
	fills := float64(s.Fills-m.lastSample.Fills) / secs

	fmt.Println(m.styles.perf.Render(
		fmt.Sprintf("%.1f ticks/s  %.1f fills/s", ticks, fills),
	))

	if d := s.Underruns - m.lastSample.Underruns; d > 0 {
		fmt.Println(m.styles.err.Render(
			fmt.Sprintf("%d underruns (%d over lifetime)", d, s.Underruns),
		))
	}
	if d := s.PushFailures - m.lastSample.PushFailures; d > 0 {
		fmt.Println(m.styles.err.Render(
			fmt.Sprintf("%d push failures (%d over lifetime)", d, s.PushFailures),
		))
	}

	m.lastReport = now
	m.lastSample = s
}
