// Package replay feeds scripted input to a scene, one frame per Poll.
// Scenario tests use it in place of the live keyboard.
package replay

import "github.com/hajimehoshi/ebiten/v2"

// Frame records the input observed during a single frame
type Frame struct {
	Quit bool         // Window close requested
	Keys []ebiten.Key // Keys pressed this frame, in order
}

// Script is a sequence of frames played back in order
type Script struct {
	Frames []Frame
}

// Keys returns a frame pressing the given keys
func Keys(keys ...ebiten.Key) Frame {
	return Frame{Keys: keys}
}

// Quit returns a frame carrying a window close request
func Quit() Frame {
	return Frame{Quit: true}
}

// Idle returns n frames without input
func Idle(n int) []Frame {
	return make([]Frame, n)
}

// Then appends frames to the script and returns it
func (s Script) Then(frames ...Frame) Script {
	s.Frames = append(s.Frames, frames...)
	return s
}
