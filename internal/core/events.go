package core

// Outcome is the terminal result of a timed session.
type Outcome string

const (
	OutcomeClear Outcome = "clear" // target score reached before time ran out
	OutcomeOver  Outcome = "over"  // time ran out below the target score
)

// Event is a notification emitted by a game during one Step. The platform
// consumes events to spawn visual effects and update UI text; games never
// depend on whether anyone is listening.
type Event interface {
	isEvent()
}

// CollisionEvent is emitted once per confirmed vehicle collision, carrying
// the world-space midpoint of the two vehicles and the points awarded.
type CollisionEvent struct {
	X, Z   float64
	Points int
}

// ScoreEvent is emitted whenever the score changes.
type ScoreEvent struct {
	Score int
}

// TimerEvent is emitted whenever the session countdown changes.
type TimerEvent struct {
	TimeLeft int // seconds remaining
}

// SessionEndEvent is emitted exactly once when a timed session ends.
type SessionEndEvent struct {
	Outcome    Outcome
	FinalScore int
}

func (CollisionEvent) isEvent()  {}
func (ScoreEvent) isEvent()      {}
func (TimerEvent) isEvent()      {}
func (SessionEndEvent) isEvent() {}
