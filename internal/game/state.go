package game

// State is the engine's position in the game lifecycle.
type State int

const (
	// StateInitializing is the freshly constructed engine, before the intro
	// has been shown.
	StateInitializing State = iota

	// StatePlaying is a normal round about to start.
	StatePlaying

	// StateBetNothing is entered when the player declined to bet; the next
	// round starts without re-displaying the balance.
	StateBetNothing

	// StateGameOver is terminal.
	StateGameOver
)

// String returns the state name for logging
func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StatePlaying:
		return "playing"
	case StateBetNothing:
		return "bet-nothing"
	case StateGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}
