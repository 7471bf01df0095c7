package state

// RunState is the lifecycle of the editor loop
type RunState int

const (
	StateRunning RunState = iota
	StateClosing
	StateClosed
)

// String returns the string representation of the run state
func (s RunState) String() string {
	switch s {
	case StateRunning:
		return "Running"
	case StateClosing:
		return "Closing"
	case StateClosed:
		return "Closed"
	default:
		return "Unknown"
	}
}

// Open reports whether frames should still be processed
func (s RunState) Open() bool {
	return s == StateRunning
}
