// Package scene defines the Scene interface for editor screens.
//
// Each screen implements the Scene interface to handle its own update logic
// and rendering.
package scene

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrQuit is returned from Update when the user asked to close the editor.
// The game loop tears the scene down and stops.
var ErrQuit = errors.New("scene: quit requested")

// Scene represents an editor screen.
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update updates the scene state.
	// dt is the delta time in seconds (typically 1/60).
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns ErrQuit to close the editor, any other error to abort it.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene, including when the editor
	// closes. Resources owned by the scene are released here.
	OnExit()
}
