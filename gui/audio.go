package gui

import (
	"fmt"
	"sync"

	"github.com/ebitengine/oto/v3"

	"github.com/sinekeys/sinekeys/synth"
)

// when the playback device's own buffer falls below this point the
// synthesizer loop is nudged awake rather than waiting for its next tick
const prefetch = 2048

// sink is the playback side of the audio pipeline. bytes pushed by the
// stream feeder are queued here and drained by the device through the
// Read() function.
type sink struct {
	p *oto.Player

	nudge chan bool

	// the queue is filled by the synthesizer loop and drained by the audio
	// engine, which runs in another goroutine. access is protected by a mutex
	crit  sync.Mutex
	queue []byte
}

// createSink opens the playback device. the sample format is fixed: mono,
// 16bit signed little-endian at the oscillator sample rate.
func createSink(nudge chan bool) (*sink, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   synth.SampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, fmt.Errorf("audio: %w", err)
	}
	<-ready

	s := &sink{
		nudge: nudge,
	}
	s.p = ctx.NewPlayer(s)
	s.p.Play()

	return s, nil
}

// Read is called by the audio engine when it wants more sample data
func (s *sink) Read(buf []uint8) (int, error) {
	s.crit.Lock()
	defer s.crit.Unlock()

	if s.p != nil && s.p.BufferedSize() < prefetch {
		select {
		case s.nudge <- true:
		default:
		}
	}

	n := min(len(s.queue), len(buf))
	copy(buf, s.queue[:n])
	s.queue = s.queue[n:]

	return n, nil
}

// QueuedBytes implements the ui.AudioSink interface. the depth includes the
// bytes buffered inside the device as well as the queue held here, so the
// feeder's low-water check sees the true depth.
func (s *sink) QueuedBytes() int {
	s.crit.Lock()
	defer s.crit.Unlock()

	n := len(s.queue)
	if s.p != nil {
		n += s.p.BufferedSize()
	}
	return n
}

// Push implements the ui.AudioSink interface. the supplied bytes are copied
// so the caller is free to reuse the slice.
func (s *sink) Push(data []byte) error {
	s.crit.Lock()
	defer s.crit.Unlock()

	if s.p == nil {
		return fmt.Errorf("audio: device closed")
	}
	if err := s.p.Err(); err != nil {
		return fmt.Errorf("audio: %w", err)
	}

	s.queue = append(s.queue, data...)
	return nil
}

// Close implements the ui.AudioSink interface
func (s *sink) Close() error {
	s.crit.Lock()
	defer s.crit.Unlock()

	if s.p == nil {
		return nil
	}

	err := s.p.Close()
	s.p = nil
	if err != nil {
		return fmt.Errorf("audio: %w", err)
	}
	return nil
}
