package synth_test

import (
	"testing"

	"github.com/sinekeys/sinekeys/synth"
	"github.com/sinekeys/sinekeys/test"
	"github.com/sinekeys/sinekeys/ui"
)

func TestNoteTable(t *testing.T) {
	test.ExpectEquality(t, len(synth.Notes), 4)

	// equal tempered frequencies from the 440hz root
	test.ExpectApproximate(t, synth.Notes[0].Frequency, 440.00, 0.0001)
	test.ExpectApproximate(t, synth.Notes[1].Frequency, 466.16, 0.0001)
	test.ExpectApproximate(t, synth.Notes[2].Frequency, 493.88, 0.0001)
	test.ExpectApproximate(t, synth.Notes[3].Frequency, 523.25, 0.0001)

	test.ExpectEquality(t, synth.Notes[0].Name, "A")
	test.ExpectEquality(t, synth.Notes[1].Name, "A#")
	test.ExpectEquality(t, synth.Notes[2].Name, "B")
	test.ExpectEquality(t, synth.Notes[3].Name, "C")

	// the table is ordered by ascending frequency
	for i := 1; i < len(synth.Notes); i++ {
		if synth.Notes[i].Frequency <= synth.Notes[i-1].Frequency {
			t.Fatalf("note table is not in ascending order at entry %d", i)
		}
	}
}

func TestLookupNote(t *testing.T) {
	for _, n := range synth.Notes {
		l, ok := synth.LookupNote(n.Key)
		test.ExpectEquality(t, ok, true)
		test.ExpectEquality(t, l, n)
	}

	_, ok := synth.LookupNote(ui.Nothing)
	test.ExpectEquality(t, ok, false)
}
