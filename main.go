package main

import (
	"fmt"
	"os"

	"github.com/sinekeys/sinekeys/gui"
	"github.com/sinekeys/sinekeys/synth"
	"github.com/sinekeys/sinekeys/ui"
)

func main() {
	// buffered channels. this means we don't have to worry about the gui
	// closing before the synthesizer loop and vice versa
	endGui := make(chan bool, 1)
	endSynth := make(chan bool, 1)

	// similarly, the result channels are buffered because we don't know the
	// order in which the gui and the synthesizer loop will end
	resultGui := make(chan error, 1)
	resultSynth := make(chan error, 1)

	u := ui.NewUI()

	go func() {
		resultGui <- gui.Launch(endGui, u)
		endSynth <- true
	}()

	go func() {
		resultSynth <- synth.Launch(endSynth, u, os.Args[1:])
		endGui <- true
	}()

	fail := false
	if err := <-resultGui; err != nil {
		fmt.Printf("*** %s\n", err)
		fail = true
	}
	if err := <-resultSynth; err != nil {
		fmt.Printf("*** %s\n", err)
		fail = true
	}

	if fail {
		os.Exit(-1)
	}
}
