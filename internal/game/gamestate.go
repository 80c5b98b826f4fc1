package game

type GameState int

const (
	StateLoading GameState = iota // assets still settling
	StateMenu
	StatePlaying
	StatePaused
	StateGameOver
)

// GameSession holds the coarse state gate and the running score. State
// changes are committed first, then announced through the event queue.
type GameSession struct {
	State   GameState
	Score   int
	HiScore int
	Lives   int
	Wave    int

	events *EventQueue
}

func NewGameSession(events *EventQueue) *GameSession {
	return &GameSession{
		State:  StateLoading,
		events: events,
	}
}

// SetState commits the new state and then notifies listeners.
func (s *GameSession) SetState(state GameState) {
	if state == s.State {
		return
	}
	s.State = state
	s.events.Emit(Event{Type: EventStateChanged, Data: int(state)})
}

// IsPlaying gates simulation: nothing moves outside the playing state.
func (s *GameSession) IsPlaying() bool {
	return s.State == StatePlaying
}

// AddScore bumps the score and tracks the session high score.
func (s *GameSession) AddScore(points int) {
	s.Score += points
	if s.Score > s.HiScore {
		s.HiScore = s.Score
	}
}
