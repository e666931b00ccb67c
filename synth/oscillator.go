package synth

import (
	"fmt"
	"math"
)

// SampleRate of all generated audio, in samples per second
const SampleRate = 44100

// Amplitude is the peak value of a generated sample. It is deliberately
// lower than the ceiling of the int16 sample format
const Amplitude = 28000

// Oscillator generates a continuous sine wave at the selected frequency. The
// phase of the wave is carried across calls to Generate() and across changes
// of frequency, meaning that a change of note never causes a discontinuity in
// the output beyond the change of slope implied by the new frequency.
//
// The Oscillator is not safe for concurrent use. All functions must be called
// from the same goroutine.
type Oscillator struct {
	phase     float64
	frequency float64
	noteOn    bool
}

// NewOscillator is the preferred method of initialisation for the Oscillator
// type. The supplied frequency is the initial note frequency, gated off.
func NewOscillator(frequency float64) *Oscillator {
	return &Oscillator{
		frequency: frequency,
	}
}

// SetNote changes the frequency and the gate of the oscillator. The change
// takes effect from the next generated sample. The phase of the wave is
// never reset by SetNote()
func (osc *Oscillator) SetNote(frequency float64, on bool) {
	osc.frequency = frequency
	osc.noteOn = on
}

// Gated returns true if the oscillator is currently sounding
func (osc *Oscillator) Gated() bool {
	return osc.noteOn
}

// Frequency of the current note, whether gated on or not
func (osc *Oscillator) Frequency() float64 {
	return osc.frequency
}

// Phase returns the current phase of the oscillator. The value is always in
// the range [0, 2π)
func (osc *Oscillator) Phase() float64 {
	return osc.phase
}

func (osc *Oscillator) String() string {
	return fmt.Sprintf("%.02fhz gate=%v phase=%.04f", osc.frequency, osc.noteOn, osc.phase)
}

// Generate fills buf with the next len(buf) samples of the wave. While the
// gate is closed samples are zero and the phase does not advance, so that
// reopening the gate resumes the wave exactly where it left off.
func (osc *Oscillator) Generate(buf []int16) {
	for i := range buf {
		if !osc.noteOn {
			buf[i] = 0
			continue
		}

		buf[i] = int16(Amplitude * math.Sin(osc.phase))

		// the phase increment is recalculated every sample so that a SetNote()
		// between calls to Generate() is heard from the very next sample
		osc.phase += 2 * math.Pi * osc.frequency / SampleRate
		if osc.phase >= 2*math.Pi {
			osc.phase -= 2 * math.Pi
		}
	}
}
