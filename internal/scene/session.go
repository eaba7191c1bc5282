package scene

import "github.com/samdwyer/termquest/internal/progression"

// Session is the state carried across the whole process lifetime.
// The game loop owns it and passes it into every scene call.
type Session struct {
	ID          string // Correlates telemetry for one run
	Player      *progression.Player
	Requested   ID
	Transfer    Transfer
	Terminating bool
}

// NewSession creates a session starting at the given scene.
func NewSession(id string, player *progression.Player, start ID) *Session {
	return &Session{
		ID:        id,
		Player:    player,
		Requested: start,
	}
}

// Request asks the manager to switch to id, handing over t (which may be nil).
func (s *Session) Request(id ID, t Transfer) {
	s.Requested = id
	s.Transfer = t
}

// Terminate asks the host loop to stop.
func (s *Session) Terminate() {
	s.Terminating = true
}
