package ui

type Action int

// Input describes a single key event delivered by the frontend. Release is
// true for key-up events.
type Input struct {
	Action  Action
	Release bool
}

const (
	Nothing Action = iota
	KeyA
	KeyS
	KeyD
	KeyF
)
