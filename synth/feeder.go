package synth

import (
	"encoding/binary"

	"github.com/sinekeys/sinekeys/logger"
	"github.com/sinekeys/sinekeys/ui"
)

// number of bytes that should always be queued at the playback sink. when
// the queue falls below this mark the feeder generates another batch
const lowWaterBytes = 8192

// number of samples generated per batch. each sample is two bytes on the wire
const batchSize = 2048

// how often, in ticks, the feeder probes the sink for an underrun. the probe
// is deliberately decoupled from the fill policy
const probeInterval = 32

// Stats are the lifetime counters of a Feeder. All counters are monotonic.
type Stats struct {
	Ticks        uint64
	Fills        uint64
	PushFailures uint64
	Underruns    uint64
}

// Feeder keeps the playback sink's queue topped up with samples from the
// Oscillator. The policy is level triggered: every Tick() that finds the
// queue below the low-water mark generates and pushes one batch, and a tick
// that finds enough queued audio does nothing.
type Feeder struct {
	osc  *Oscillator
	sink ui.AudioSink

	// batch buffers are reused between ticks. the sink copies pushed bytes
	// onto its own queue
	samples []int16
	wire    []byte

	stats Stats
	trace bool
}

// NewFeeder is the preferred method of initialisation for the Feeder type.
// With trace enabled every fill is written to the central logger.
func NewFeeder(osc *Oscillator, sink ui.AudioSink, trace bool) *Feeder {
	return &Feeder{
		osc:     osc,
		sink:    sink,
		samples: make([]int16, batchSize),
		wire:    make([]byte, batchSize*2),
		trace:   trace,
	}
}

// Stats returns a copy of the feeder's lifetime counters
func (f *Feeder) Stats() Stats {
	return f.stats
}

// Tick runs the fill policy once. It should be called once per iteration of
// the synthesizer loop.
//
// A failed push is logged and the batch discarded. There is no retry within
// the tick; the depth check on the next tick retriggers generation naturally.
func (f *Feeder) Tick() {
	f.stats.Ticks++

	depth := f.sink.QueuedBytes()
	if depth < lowWaterBytes {
		f.osc.Generate(f.samples)
		for i, s := range f.samples {
			binary.LittleEndian.PutUint16(f.wire[i*2:], uint16(s))
		}

		if err := f.sink.Push(f.wire); err != nil {
			f.stats.PushFailures++
			logger.Logf(logger.Allow, "feeder", "push failed, batch dropped: %v", err)
		} else {
			f.stats.Fills++
			if f.trace {
				logger.Logf(logger.Allow, "feeder", "fill: depth %d < %d, pushed %d bytes", depth, lowWaterBytes, len(f.wire))
			}
		}
	}

	if f.stats.Ticks%probeInterval == 0 {
		if f.osc.Gated() && f.sink.QueuedBytes() == 0 {
			f.stats.Underruns++
			logger.Logf(logger.Allow, "feeder", "underrun while note sounding (%d over lifetime)", f.stats.Underruns)
		}
	}
}
