package gui

import (
	input "github.com/quasilyte/ebitengine-input"

	"github.com/sinekeys/sinekeys/ui"
)

const (
	ActionNoteA  = input.Action(ui.KeyA)
	ActionNoteAs = input.Action(ui.KeyS)
	ActionNoteB  = input.Action(ui.KeyD)
	ActionNoteC  = input.Action(ui.KeyF)

	ActionQuit = input.Action(100)
)

// the note actions and the key events they translate to, in keyboard order
var noteActions = []struct {
	action input.Action
	key    ui.Action
}{
	{ActionNoteA, ui.KeyA},
	{ActionNoteAs, ui.KeyS},
	{ActionNoteB, ui.KeyD},
	{ActionNoteC, ui.KeyF},
}

// input translates key events into ui.Input values for the synthesizer loop.
// the return value is true if the user has asked to quit.
func (g *gui) input() bool {
	g.inputSystem.Update()

	if g.inputHandler.ActionIsJustPressed(ActionQuit) {
		return true
	}

	var inp ui.Input

	for _, n := range noteActions {
		if g.inputHandler.ActionIsJustPressed(n.action) {
			inp = ui.Input{Action: n.key}
		}
		if g.inputHandler.ActionIsJustReleased(n.action) {
			inp = ui.Input{Action: n.key, Release: true}
		}
	}

	if inp.Action != ui.Nothing {
		select {
		case g.u.UserInput <- inp:
		default:
		}
	}

	return false
}
