package replay

import "github.com/younwookim/leveleditor/internal/application/system"

// Replayer plays a Script back as input events.
// Once the script is exhausted every Poll returns no events.
type Replayer struct {
	script Script
	frame  int
	events []system.Event
}

// NewReplayer creates a new replayer for script
func NewReplayer(script Script) *Replayer {
	return &Replayer{script: script}
}

// Poll returns the events of the current frame and advances
func (r *Replayer) Poll() []system.Event {
	r.events = r.events[:0]
	if r.frame >= len(r.script.Frames) {
		return r.events
	}

	f := r.script.Frames[r.frame]
	r.frame++

	if f.Quit {
		r.events = append(r.events, system.Event{Kind: system.EventQuit})
	}
	for _, k := range f.Keys {
		r.events = append(r.events, system.Event{Kind: system.EventKeyDown, Key: k})
	}
	return r.events
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.script.Frames)
}

// Done reports whether every frame has been played
func (r *Replayer) Done() bool {
	return r.frame >= len(r.script.Frames)
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}
