package state

// GameState represents the current state of the range
type GameState int

const (
	StateLoading GameState = iota
	StateAiming
	StatePaused
	StateReplaying
	StateReplayFinished
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateLoading:
		return "Loading"
	case StateAiming:
		return "Aiming"
	case StatePaused:
		return "Paused"
	case StateReplaying:
		return "Replaying"
	case StateReplayFinished:
		return "ReplayFinished"
	default:
		return "Unknown"
	}
}

// AcceptsInput reports whether live player input drives the cannon
func (s GameState) AcceptsInput() bool {
	return s == StateAiming
}

// Simulating reports whether projectiles and effects advance
func (s GameState) Simulating() bool {
	return s == StateAiming || s == StateReplaying || s == StateReplayFinished
}
