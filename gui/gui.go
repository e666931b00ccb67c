package gui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	input "github.com/quasilyte/ebitengine-input"

	"github.com/sinekeys/sinekeys/logger"
	"github.com/sinekeys/sinekeys/ui"
)

const (
	windowWidth  = 400
	windowHeight = 300
	windowTitle  = "(a-s-d-f keys) Sinusoidal Synthesizer"
)

// position and size of the note-name block, taken from the original layout
const (
	noteBlockX = 150
	noteBlockY = 120
	noteBlockW = 100
	noteBlockH = 50
)

type gui struct {
	started bool

	endGui chan bool
	u      *ui.UI

	// the most recent display state received from the synthesizer loop
	display ui.Display

	noteBlock *ebiten.Image

	inputHandler *input.Handler
	inputSystem  input.System
}

func (g *gui) initialise() {
	keymap := input.Keymap{
		ActionNoteA:  {input.KeyA},
		ActionNoteAs: {input.KeyS},
		ActionNoteB:  {input.KeyD},
		ActionNoteC:  {input.KeyF},
		ActionQuit:   {input.KeyEscape},
	}
	g.inputHandler = g.inputSystem.NewHandler(uint8(0), keymap)

	g.noteBlock = ebiten.NewImage(noteBlockW, noteBlockH)
	g.noteBlock.Fill(color.RGBA{R: 200, A: 255})

	g.started = true
}

func (g *gui) Update() error {
	if !g.started {
		g.initialise()
	}

	if g.input() {
		return ebiten.Termination
	}

	select {
	case <-g.endGui:
		return ebiten.Termination
	case d := <-g.u.SetDisplay:
		g.display = d
	default:
	}

	return nil
}

func (g *gui) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)

	if g.display.NoteOn {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(noteBlockX, noteBlockY)
		screen.DrawImage(g.noteBlock, op)
		ebitenutil.DebugPrintAt(screen, g.display.Name, noteBlockX+8, noteBlockY+8)
	}
}

func (g *gui) Layout(width, height int) (int, int) {
	return windowWidth, windowHeight
}

// Launch the window and the playback device. The audio sink is created
// before the window and handed to the synthesizer loop over the UI's
// RegisterAudio channel. The function does not return until the endGui
// channel is signalled or the user closes the window.
func Launch(endGui chan bool, u *ui.UI) error {
	snd, err := createSink(u.Nudge)
	if err != nil {
		return err
	}
	u.RegisterAudio <- snd

	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetVsyncEnabled(true)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowPosition(10, 10)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	err = onWindowOpen()
	if err != nil {
		logger.Log(logger.Allow, "gui", err)
	}
	defer func() {
		err := onWindowClose()
		if err != nil {
			logger.Log(logger.Allow, "gui", err)
		}
	}()

	g := &gui{
		endGui: endGui,
		u:      u,
	}

	g.inputSystem.Init(input.SystemConfig{
		DevicesEnabled: input.AnyDevice,
	})

	return ebiten.RunGame(g)
}
