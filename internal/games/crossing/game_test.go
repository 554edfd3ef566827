package crossing

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/gridlock/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		Seed:     seed,
		ScreenW:  100,
		ScreenH:  30,
		TickRate: 60,
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and inputs produce identical snapshots.
	cfg := testRuntime(12345)

	g1 := New()
	g1.Reset(cfg)
	g2 := New()
	g2.Reset(cfg)

	input := core.NewInputFrame()
	for i := 0; i < 600; i++ {
		input.Clear()
		if i == 50 {
			input.Set(core.ActionToggleLight0)
		}
		if i == 120 {
			input.Set(core.ActionToggleLight3)
		}
		g1.Step(input)
		g2.Step(input)
	}

	if !reflect.DeepEqual(g1.Snapshot(), g2.Snapshot()) {
		t.Errorf("snapshots diverged:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestResetClearsEverything(t *testing.T) {
	g := New()
	g.Reset(testRuntime(42))

	input := core.NewInputFrame()
	input.Set(core.ActionToggleLight1)
	for i := 0; i < 300; i++ {
		g.Step(input)
		input.Clear()
	}

	g.Reset(testRuntime(42))
	snap := g.Snapshot()
	if snap.Tick != 0 {
		t.Errorf("Tick = %d after Reset", snap.Tick)
	}
	if len(snap.Vehicles) != 0 {
		t.Errorf("%d vehicles survived Reset", len(snap.Vehicles))
	}
	if snap.State != StatePlaying {
		t.Errorf("State = %q after Reset", snap.State)
	}
	if snap.Lights != [4]bool{true, true, true, true} {
		t.Errorf("Lights = %v after Reset", snap.Lights)
	}
}

func TestResetIsReproducible(t *testing.T) {
	g := New()
	g.Reset(testRuntime(7))

	input := core.NewInputFrame()
	for i := 0; i < 300; i++ {
		g.Step(input)
	}
	first := g.Snapshot()

	g.Reset(testRuntime(7))
	for i := 0; i < 300; i++ {
		g.Step(input)
	}

	if !reflect.DeepEqual(first, g.Snapshot()) {
		t.Error("same seed after Reset produced a different run")
	}
}

func TestToggleInputFlipsLight(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	input := core.NewInputFrame()
	input.Set(core.ToggleLightAction(2))
	g.Step(input)

	if g.Snapshot().Lights != [4]bool{true, true, false, true} {
		t.Errorf("Lights = %v after toggling light 2", g.Snapshot().Lights)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	input := core.NewInputFrame()
	for i := 0; i < 10; i++ {
		g.Step(input)
	}
	before := g.Snapshot()

	input.Set(core.ActionPause)
	g.Step(input)
	if !g.State().Paused {
		t.Fatal("game did not pause")
	}

	// Nothing advances while paused, light toggles included.
	input.Clear()
	input.Set(core.ActionToggleLight0)
	for i := 0; i < 50; i++ {
		g.Step(input)
		input.Clear()
	}
	during := g.Snapshot()
	if during.Tick != before.Tick {
		t.Errorf("tick advanced from %d to %d while paused", before.Tick, during.Tick)
	}
	if during.Lights != before.Lights {
		t.Error("light toggled while paused")
	}

	input.Set(core.ActionPause)
	g.Step(input)
	if g.State().Paused {
		t.Error("game did not unpause")
	}
}

func TestTimerEventCadence(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	input := core.NewInputFrame()
	for i := 0; i < 59; i++ {
		res := g.Step(input)
		for _, e := range res.Events {
			if _, ok := e.(core.TimerEvent); ok {
				t.Fatalf("timer event on tick %d of 60", i+1)
			}
		}
	}

	res := g.Step(input)
	found := false
	for _, e := range res.Events {
		if te, ok := e.(core.TimerEvent); ok {
			found = true
			if te.TimeLeft != 59 {
				t.Errorf("TimeLeft = %d after one second, want 59", te.TimeLeft)
			}
		}
	}
	if !found {
		t.Error("no timer event after one full second of ticks")
	}
}

func TestSessionEndsWhenTimerExpires(t *testing.T) {
	// Tick rate 1 makes every Step one full second.
	cfg := testRuntime(1)
	cfg.TickRate = 1

	g := New()
	g.Reset(cfg)

	input := core.NewInputFrame()
	var endEvent *core.SessionEndEvent
	for i := 0; i < 60; i++ {
		res := g.Step(input)
		for _, e := range res.Events {
			if se, ok := e.(core.SessionEndEvent); ok {
				ee := se
				endEvent = &ee
			}
		}
	}

	if endEvent == nil {
		t.Fatal("no session end event after the time limit")
	}
	if !g.State().GameOver {
		t.Error("GameOver not set after the session ended")
	}
	snap := g.Snapshot()
	if snap.TimeLeft != 0 {
		t.Errorf("TimeLeft = %d at session end", snap.TimeLeft)
	}
	if endEvent.FinalScore != snap.Score {
		t.Errorf("FinalScore = %d, session score %d", endEvent.FinalScore, snap.Score)
	}

	// A finished session is inert until Reset.
	before := snap.Tick
	for i := 0; i < 10; i++ {
		g.Step(input)
	}
	if g.Snapshot().Tick != before {
		t.Error("simulation kept running after the session ended")
	}
}

func TestEndlessModeIgnoresCountdown(t *testing.T) {
	cfg := testRuntime(1)
	cfg.TickRate = 1

	g := NewEndless()
	g.Reset(cfg)

	input := core.NewInputFrame()
	for i := 0; i < 200; i++ {
		g.Step(input)
	}

	if g.State().GameOver {
		t.Error("endless session ended")
	}
	if g.Snapshot().State != StatePlaying {
		t.Errorf("endless State = %q", g.Snapshot().State)
	}
}

func TestGameIDs(t *testing.T) {
	if got := New().ID(); got != "crossing" {
		t.Errorf("timed ID = %q", got)
	}
	if got := NewEndless().ID(); got != "crossing_endless" {
		t.Errorf("endless ID = %q", got)
	}
}

func TestLightAtHitsEverySignal(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	vp := g.viewport(100, 30)
	for _, it := range g.net.Intersections() {
		sx, sy := vp.toScreen(it.X, it.Z)
		idx, ok := g.LightAt(sx, sy)
		if !ok || idx != int(it.ID) {
			t.Errorf("LightAt(%d, %d) = (%d, %v), want light %d", sx, sy, idx, ok, it.ID)
		}
	}

	if _, ok := g.LightAt(0, 0); ok {
		t.Error("LightAt hit a signal in the screen corner")
	}
}

func TestRenderSmoke(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	input := core.NewInputFrame()
	for i := 0; i < 120; i++ {
		g.Step(input)
	}

	screen := core.NewScreen(100, 30)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Score:") {
		t.Errorf("HUD row missing score: %q", screen.Row(0))
	}
	if !strings.ContainsRune(screen.String(), RoadChar) {
		t.Error("no road drawn")
	}
}
