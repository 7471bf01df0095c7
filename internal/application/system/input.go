package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EventKind distinguishes polled input events
type EventKind int

const (
	EventQuit EventKind = iota
	EventKeyDown
)

// Event is one input event observed during a frame
type Event struct {
	Kind EventKind
	Key  ebiten.Key // Set for EventKeyDown
}

// Command is what the editor does in response to a key
type Command int

const (
	CommandNone Command = iota
	CommandQuit
	CommandSpawnBox
	CommandPanLeft
	CommandPanRight
	CommandPanUp
	CommandPanDown
)

// String returns the string representation of the command
func (c Command) String() string {
	switch c {
	case CommandQuit:
		return "Quit"
	case CommandSpawnBox:
		return "SpawnBox"
	case CommandPanLeft:
		return "PanLeft"
	case CommandPanRight:
		return "PanRight"
	case CommandPanUp:
		return "PanUp"
	case CommandPanDown:
		return "PanDown"
	default:
		return "None"
	}
}

// CommandForKey maps a pressed key to its editor command
func CommandForKey(k ebiten.Key) Command {
	switch k {
	case ebiten.KeyEscape:
		return CommandQuit
	case ebiten.KeyR:
		return CommandSpawnBox
	case ebiten.KeyA:
		return CommandPanLeft
	case ebiten.KeyD:
		return CommandPanRight
	case ebiten.KeyW:
		return CommandPanUp
	case ebiten.KeyS:
		return CommandPanDown
	default:
		return CommandNone
	}
}

// PanDelta returns the camera movement for a pan command, step world units
// per press. Other commands do not move the camera.
func (c Command) PanDelta(step float64) (dx, dy float64) {
	switch c {
	case CommandPanLeft:
		return -step, 0
	case CommandPanRight:
		return step, 0
	case CommandPanUp:
		return 0, step
	case CommandPanDown:
		return 0, -step
	default:
		return 0, 0
	}
}

// InputSystem turns ebiten's polled input state into discrete events
type InputSystem struct {
	keys   []ebiten.Key
	events []Event
}

// NewInputSystem creates a new input system.
// The window close button is reported as EventQuit instead of closing the
// window directly, so the scene can tear down first.
func NewInputSystem() *InputSystem {
	ebiten.SetWindowClosingHandled(true)
	return &InputSystem{}
}

// Poll returns the events of the current frame: a close request first, then
// one key-down per key pressed this frame. The slice is reused by the next call.
func (s *InputSystem) Poll() []Event {
	s.events = s.events[:0]
	if ebiten.IsWindowBeingClosed() {
		s.events = append(s.events, Event{Kind: EventQuit})
	}
	s.keys = inpututil.AppendJustPressedKeys(s.keys[:0])
	for _, k := range s.keys {
		s.events = append(s.events, Event{Kind: EventKeyDown, Key: k})
	}
	return s.events
}
