package crossing

import (
	"github.com/vovakirdan/gridlock/internal/config"
	"github.com/vovakirdan/gridlock/internal/core"
)

// SessionState is the phase of a play session.
type SessionState string

const (
	StatePlaying SessionState = "playing"
	StateClear   SessionState = "clear" // timer expired with the target met
	StateOver    SessionState = "over"  // timer expired below the target
)

// Session tracks score and the countdown, and decides the session outcome.
// Playing is the only state in which the simulation runs; once the session
// ends, nothing changes until an explicit Reset.
type Session struct {
	cfg      config.SessionConfig
	endless  bool
	score    int
	timeLeft int
	state    SessionState
}

// NewSession creates a session in the playing state. An endless session has
// no countdown and never leaves playing.
func NewSession(cfg config.SessionConfig, endless bool) *Session {
	s := &Session{cfg: cfg, endless: endless}
	s.Reset()
	return s
}

// Reset returns the session to its initial playing state with a zero score
// and a full timer, regardless of the prior state.
func (s *Session) Reset() {
	s.score = 0
	s.timeLeft = s.cfg.TimeLimit
	s.state = StatePlaying
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// TimeLeft returns the remaining whole seconds.
func (s *Session) TimeLeft() int {
	return s.timeLeft
}

// TargetScore returns the score needed to clear a timed session.
func (s *Session) TargetScore() int {
	return s.cfg.TargetScore
}

// State returns the current session state.
func (s *Session) State() SessionState {
	return s.state
}

// Playing reports whether the simulation should run.
func (s *Session) Playing() bool {
	return s.state == StatePlaying
}

// Endless reports whether this session ignores the countdown.
func (s *Session) Endless() bool {
	return s.endless
}

// AddCollision awards the fixed points for one collision and returns the new
// score. Ignored outside the playing state.
func (s *Session) AddCollision() int {
	if s.state == StatePlaying {
		s.score += s.cfg.CollisionPoints
	}
	return s.score
}

// TickSecond advances the countdown by one second. When it reaches zero the
// session transitions exactly once, to clear when the target score was met
// and to over otherwise; the outcome is returned alongside ended=true.
func (s *Session) TickSecond() (ended bool, outcome core.Outcome) {
	if s.state != StatePlaying || s.endless {
		return false, ""
	}
	s.timeLeft--
	if s.timeLeft > 0 {
		return false, ""
	}
	s.timeLeft = 0
	if s.score >= s.cfg.TargetScore {
		s.state = StateClear
		return true, core.OutcomeClear
	}
	s.state = StateOver
	return true, core.OutcomeOver
}
