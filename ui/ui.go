package ui

// AudioSink is the playback device as seen from the synthesizer loop. The
// frontend creates the concrete sink at startup and registers it over the
// RegisterAudio channel.
//
// Push copies the supplied bytes onto the sink's playback queue. QueuedBytes
// returns the number of bytes waiting to be consumed by the device, including
// any bytes buffered inside the device itself.
type AudioSink interface {
	QueuedBytes() int
	Push(data []byte) error
	Close() error
}

// Display is the "now playing" state sent to the frontend once per iteration
// of the synthesizer loop.
type Display struct {
	NoteOn bool
	Name   string
}

type UI struct {
	RegisterAudio chan AudioSink
	SetDisplay    chan Display
	UserInput     chan Input

	// the audio sink nudges the synthesizer loop through this channel when
	// the playback device is close to running dry
	Nudge chan bool
}

func NewUI() *UI {
	return &UI{
		RegisterAudio: make(chan AudioSink, 1),
		SetDisplay:    make(chan Display, 1),
		UserInput:     make(chan Input, 1),
		Nudge:         make(chan bool, 1),
	}
}
