package synth

import (
	"math"

	"github.com/sinekeys/sinekeys/ui"
)

// RootFrequency is the frequency of the lowest note on the keyboard. 440Hz
// is the standard tuning for the A above middle C
const RootFrequency = 440.0

// Note pairs a playable frequency with the name used for display
type Note struct {
	Key       ui.Action
	Name      string
	Frequency float64
}

// Notes is the keyboard of the synthesizer, ordered by semitone offset from
// the root. Each entry is a semitone above the previous one, using the equal
// tempered ratio of 2^(1/12)
var Notes = func() []Note {
	keys := []ui.Action{ui.KeyA, ui.KeyS, ui.KeyD, ui.KeyF}
	names := []string{"A", "A#", "B", "C"}

	notes := make([]Note, len(keys))
	for n := range notes {
		notes[n] = Note{
			Key:       keys[n],
			Name:      names[n],
			Frequency: RootFrequency * math.Pow(2, float64(n)/12),
		}
	}
	return notes
}()

// LookupNote returns the note triggered by the supplied key. The second
// return value is false if the key plays nothing.
func LookupNote(key ui.Action) (Note, bool) {
	for _, n := range Notes {
		if n.Key == key {
			return n, true
		}
	}
	return Note{}, false
}
