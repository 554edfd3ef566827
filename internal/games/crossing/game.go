package crossing

import (
	"github.com/vovakirdan/gridlock/internal/config"
	"github.com/vovakirdan/gridlock/internal/core"
	"github.com/vovakirdan/gridlock/internal/registry"
)

// Mode selects the session shape.
type Mode string

const (
	ModeTimed   Mode = "timed"   // 60-second countdown, clear/over outcome
	ModeEndless Mode = "endless" // no countdown, play until quit
)

// Package-level settings applied before game creation (set from CLI flags,
// same pattern as the other platform commands expect).
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets a custom YAML config path for subsequent games.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset for subsequent games.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// Game wires the road network, lights, spawner, fleet and session into one
// registry.Game. All state lives on the single platform goroutine; Step is
// the only mutation point once the game is running.
type Game struct {
	mode       Mode
	cfg        core.RuntimeConfig
	tuning     config.CrossingConfig
	difficulty *config.DifficultyManager

	net     *Network
	lights  *LightSet
	spawner *Spawner
	traffic *Traffic
	session *Session

	spawnCadence *Cadence
	timerCadence *Cadence

	tick   uint64
	paused bool
	events []core.Event
}

// New creates the timed intersection game.
func New() *Game {
	return &Game{mode: ModeTimed}
}

// NewEndless creates the endless variant: no countdown, score until quit.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "crossing_endless"
	}
	return "crossing"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Gridlock (Endless)"
	}
	return "Gridlock"
}

// Reset initializes or restarts the game. Everything is rebuilt within one
// call so no vehicle, effect or cadence from the previous session survives
// into the next frame.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	if g.cfg.TickRate <= 0 {
		g.cfg.TickRate = 60
	}

	tuning, err := config.LoadCrossing(configPath)
	if err != nil {
		tuning = config.DefaultCrossingConfig()
	}
	if difficultyPreset != "" {
		config.ApplyCrossingPreset(&tuning, config.DifficultyPreset(difficultyPreset))
	}
	g.tuning = tuning
	g.difficulty = config.NewDifficultyManager(tuning.Difficulty)

	g.net = NewNetwork(tuning.Geometry)
	if g.lights == nil {
		g.lights = NewLightSet()
	} else {
		g.lights.Reset()
	}
	g.spawner = NewSpawner(cfg.Seed, g.net)
	g.traffic = NewTraffic(g.net, g.lights, tuning.Vehicles)
	g.session = NewSession(tuning.Session, g.mode == ModeEndless)

	g.spawnCadence = NewCadence(tuning.Vehicles.SpawnIntervalMS, g.cfg.TickRate)
	g.timerCadence = NewCadence(1000, g.cfg.TickRate)

	g.tick = 0
	g.paused = false
	g.events = nil
}

// Step advances the simulation by one tick. Frame order: pause input, the
// one-second timer, light toggles, spawn cadence, motion, collisions. The
// timer runs before any gameplay mutation so a session never half-finishes
// a frame it should not have started.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	if in.Has(core.ActionPause) && g.session.Playing() {
		g.paused = !g.paused
	}
	if g.paused || !g.session.Playing() {
		return g.result()
	}

	g.tick++

	if g.timerCadence.Tick() {
		ended, outcome := g.session.TickSecond()
		g.emit(core.TimerEvent{TimeLeft: g.session.TimeLeft()})
		if ended {
			g.emit(core.SessionEndEvent{Outcome: outcome, FinalScore: g.session.Score()})
			return g.result()
		}
	}

	// Player toggles only apply while playing.
	for i := 0; i < 4; i++ {
		if in.Has(core.ToggleLightAction(i)) {
			g.lights.Toggle(IntersectionID(i))
		}
	}

	g.spawnCadence.SetPeriod(g.difficulty.SpawnIntervalMS(
		g.tuning.Vehicles.SpawnIntervalMS, g.session.Score(), int(g.tick)))
	if g.spawnCadence.Tick() {
		if v := g.spawner.TrySpawn(g.traffic.Count(), g.tuning.Vehicles.MaxActive); v != nil {
			g.traffic.Add(v)
		}
	}

	g.traffic.Advance()

	for _, hit := range g.traffic.Resolve() {
		score := g.session.AddCollision()
		g.emit(core.CollisionEvent{X: hit.X, Z: hit.Z, Points: g.tuning.Session.CollisionPoints})
		g.emit(core.ScoreEvent{Score: score})
	}

	return g.result()
}

// State returns the current game state for the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: !g.session.Playing(),
		Paused:   g.paused,
	}
}

func (g *Game) emit(e core.Event) {
	g.events = append(g.events, e)
}

// result packages the state and this tick's events. The events slice is
// reused across ticks; consumers read it before the next Step.
func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

// Register both modes with the platform.
func init() {
	registry.Register("crossing", func() registry.Game {
		return New()
	})
	registry.Register("crossing_endless", func() registry.Game {
		return NewEndless()
	})
}
