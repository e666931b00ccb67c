package synth

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/sinekeys/sinekeys/test"
)

// testSink records pushes and reports whatever depth the test sets
type testSink struct {
	depth    int
	pushed   [][]byte
	pushErr  error
	closed   bool
	autoFill bool
}

func (s *testSink) QueuedBytes() int {
	return s.depth
}

func (s *testSink) Push(data []byte) error {
	if s.pushErr != nil {
		return s.pushErr
	}
	s.pushed = append(s.pushed, append([]byte(nil), data...))
	if s.autoFill {
		s.depth += len(data)
	}
	return nil
}

func (s *testSink) Close() error {
	s.closed = true
	return nil
}

func TestFeederFillPolicy(t *testing.T) {
	osc := NewOscillator(440)
	snk := &testSink{autoFill: true}
	f := NewFeeder(osc, snk, false)

	// an empty queue triggers exactly one batch per tick
	f.Tick()
	test.ExpectEquality(t, len(snk.pushed), 1)
	test.ExpectEquality(t, len(snk.pushed[0]), batchSize*2)
	test.ExpectEquality(t, f.Stats().Fills, 1)

	// the policy is level triggered. the first batch leaves the queue below
	// the low-water mark so the next tick fires again
	f.Tick()
	test.ExpectEquality(t, len(snk.pushed), 2)

	// once the mark is reached a tick does nothing
	snk.depth = lowWaterBytes
	f.Tick()
	test.ExpectEquality(t, len(snk.pushed), 2)
	test.ExpectEquality(t, f.Stats().Fills, 2)
	test.ExpectEquality(t, f.Stats().Ticks, 3)
}

func TestFeederSilentFill(t *testing.T) {
	osc := NewOscillator(440)
	snk := &testSink{}
	f := NewFeeder(osc, snk, false)

	// the feeder fills regardless of the gate. with the gate closed the
	// batch is silence
	f.Tick()
	test.ExpectEquality(t, len(snk.pushed), 1)
	for i, b := range snk.pushed[0] {
		if b != 0 {
			t.Fatalf("non-zero byte %d at offset %d of a silent batch", b, i)
		}
	}
}

func TestFeederWireFormat(t *testing.T) {
	osc := NewOscillator(440)
	osc.SetNote(440, true)
	snk := &testSink{}
	f := NewFeeder(osc, snk, false)

	f.Tick()
	test.ExpectEquality(t, len(snk.pushed), 1)

	// pushed bytes are the oscillator's samples in 16bit little-endian order
	var phase float64
	for i := 0; i < batchSize; i++ {
		expected := int16(Amplitude * math.Sin(phase))
		got := int16(binary.LittleEndian.Uint16(snk.pushed[0][i*2:]))
		test.ExpectEquality(t, got, expected)
		phase += 2 * math.Pi * 440 / SampleRate
		if phase >= 2*math.Pi {
			phase -= 2 * math.Pi
		}
	}
}

func TestFeederPushFailure(t *testing.T) {
	osc := NewOscillator(440)
	snk := &testSink{pushErr: errors.New("device error")}
	f := NewFeeder(osc, snk, false)

	// the batch is discarded and the failure counted. no retry within
	// the tick
	f.Tick()
	test.ExpectEquality(t, f.Stats().PushFailures, 1)
	test.ExpectEquality(t, f.Stats().Fills, 0)
	test.ExpectEquality(t, len(snk.pushed), 0)

	// the depth check on the next tick retriggers generation
	snk.pushErr = nil
	f.Tick()
	test.ExpectEquality(t, f.Stats().PushFailures, 1)
	test.ExpectEquality(t, f.Stats().Fills, 1)
	test.ExpectEquality(t, len(snk.pushed), 1)
}

func TestFeederUnderrunProbe(t *testing.T) {
	osc := NewOscillator(440)
	osc.SetNote(440, true)

	// pushes fail so the queue stays empty, which is what the probe is
	// looking for while the note is sounding
	snk := &testSink{pushErr: errors.New("device error")}
	f := NewFeeder(osc, snk, false)

	// one underrun per probe, not one per tick or per sample
	for range probeInterval {
		f.Tick()
	}
	test.ExpectEquality(t, f.Stats().Underruns, 1)

	for range probeInterval {
		f.Tick()
	}
	test.ExpectEquality(t, f.Stats().Underruns, 2)

	// an empty queue with the gate closed is not an underrun
	osc.SetNote(440, false)
	for range probeInterval {
		f.Tick()
	}
	test.ExpectEquality(t, f.Stats().Underruns, 2)
}

func TestFeederUnderrunNeedsEmptyQueue(t *testing.T) {
	osc := NewOscillator(440)
	osc.SetNote(440, true)
	snk := &testSink{depth: lowWaterBytes}
	f := NewFeeder(osc, snk, false)

	for range probeInterval * 4 {
		f.Tick()
	}
	test.ExpectEquality(t, f.Stats().Underruns, 0)
}
