package crossing

import (
	"math"
	"testing"

	"github.com/vovakirdan/gridlock/internal/config"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func newTestTraffic() (*Traffic, *LightSet) {
	cfg := config.DefaultCrossingConfig()
	lights := NewLightSet()
	return NewTraffic(NewNetwork(cfg.Geometry), lights, cfg.Vehicles), lights
}

// Northbound vehicle on the western road, approaching intersection 0.
func northbound(pos float64) *Vehicle {
	return &Vehicle{
		ID:   1,
		Axis: AxisZ,
		Dir:  1,
		Pos:  pos,
		Lane: -18,
		Route: []RouteCrossing{
			{Light: 0, StopLine: -23, Center: -16},
			{Light: 2, StopLine: 9, Center: 16},
		},
	}
}

func TestRedLightStopsWithinWindow(t *testing.T) {
	// North-south traffic faces red by default. The stop window is two
	// speed units before the stop line at -23.
	tr, _ := newTestTraffic()
	v := northbound(-23.3)
	tr.Add(v)

	for i := 0; i < 10; i++ {
		tr.Advance()
	}
	if v.Pos != -23.3 {
		t.Errorf("vehicle in stop window moved to %v", v.Pos)
	}
}

func TestRedLightIgnoredOutsideWindow(t *testing.T) {
	tr, _ := newTestTraffic()
	v := northbound(-23.5)
	tr.Add(v)

	tr.Advance()
	if !approx(v.Pos, -23.3) {
		t.Errorf("vehicle outside stop window at %v, want -23.3", v.Pos)
	}

	// Now inside the window: the next tick must hold.
	tr.Advance()
	if !approx(v.Pos, -23.3) {
		t.Errorf("vehicle entered the window and still moved to %v", v.Pos)
	}
}

func TestGreenLightProceeds(t *testing.T) {
	tr, lights := newTestTraffic()
	lights.Toggle(0) // north-south green at intersection 0
	v := northbound(-23.3)
	tr.Add(v)

	tr.Advance()
	if !approx(v.Pos, -23.1) {
		t.Errorf("vehicle held at green light, pos %v", v.Pos)
	}
}

func TestVehiclePastStopLineKeepsMoving(t *testing.T) {
	// A red flipped while the vehicle is already past the stop line must not
	// freeze it inside the intersection.
	tr, _ := newTestTraffic()
	v := northbound(-22)
	tr.Add(v)

	tr.Advance()
	if !approx(v.Pos, -21.8) {
		t.Errorf("vehicle past the stop line stopped at %v", v.Pos)
	}
}

func TestCrossingClearedIsPermanent(t *testing.T) {
	tr, _ := newTestTraffic()
	v := northbound(-15.9) // past the first intersection center
	tr.Add(v)

	tr.Advance()
	if v.Passed != 1 {
		t.Fatalf("Passed = %d after clearing the first crossing", v.Passed)
	}
	if !approx(v.Pos, -15.7) {
		t.Errorf("vehicle clearing a crossing stopped at %v", v.Pos)
	}

	// Passed never exceeds the route length.
	for i := 0; i < 2000; i++ {
		tr.Advance()
		if tr.Count() == 0 {
			break
		}
	}
	if v.Passed > len(v.Route) {
		t.Errorf("Passed = %d, route has %d crossings", v.Passed, len(v.Route))
	}
}

func TestCarFollowingHoldsGap(t *testing.T) {
	tr, _ := newTestTraffic()
	leader := &Vehicle{ID: 1, Axis: AxisZ, Dir: 1, Pos: 4, Lane: -18}
	trailer := &Vehicle{ID: 2, Axis: AxisZ, Dir: 1, Pos: 0, Lane: -18}
	tr.Add(leader)
	tr.Add(trailer)

	// Gap 4 is inside body length plus safety gap (5): trailer holds.
	tr.Advance()
	if !approx(leader.Pos, 4.2) {
		t.Errorf("leader pos %v, want 4.2", leader.Pos)
	}
	if trailer.Pos != 0 {
		t.Errorf("trailer moved to %v inside the safety gap", trailer.Pos)
	}

	// Over many ticks the trailer catches up to the safety gap and follows.
	// The bodies must never overlap.
	minGap := tr.cfg.BodyLength + tr.cfg.SafetyGap
	for i := 0; i < 200; i++ {
		tr.Advance()
		gap := leader.Pos - trailer.Pos
		if gap < tr.cfg.BodyLength {
			t.Fatalf("tick %d: following vehicles overlap, gap %v", i, gap)
		}
	}
	if gap := leader.Pos - trailer.Pos; math.Abs(gap-minGap) > 0.3 {
		t.Errorf("steady-state gap %v, want about %v", gap, minGap)
	}
}

func TestOncomingTrafficDoesNotBlock(t *testing.T) {
	tr, _ := newTestTraffic()
	v := &Vehicle{ID: 1, Axis: AxisZ, Dir: 1, Pos: 0, Lane: -18}
	w := &Vehicle{ID: 2, Axis: AxisZ, Dir: -1, Pos: 3, Lane: -18}
	tr.Add(v)
	tr.Add(w)

	tr.Advance()
	if !approx(v.Pos, 0.2) || !approx(w.Pos, 2.8) {
		t.Errorf("oncoming vehicles held each other: %v, %v", v.Pos, w.Pos)
	}
}

func TestAdjacentLaneDoesNotBlock(t *testing.T) {
	tr, _ := newTestTraffic()
	v := &Vehicle{ID: 1, Axis: AxisZ, Dir: 1, Pos: 0, Lane: -18}
	w := &Vehicle{ID: 2, Axis: AxisZ, Dir: 1, Pos: 3, Lane: -14}
	tr.Add(v)
	tr.Add(w)

	tr.Advance()
	if !approx(v.Pos, 0.2) {
		t.Errorf("vehicle blocked by traffic in another lane, pos %v", v.Pos)
	}
}

func TestDespawnBeyondLimit(t *testing.T) {
	tr, _ := newTestTraffic()
	limit := tr.net.Limit()
	tr.Add(&Vehicle{ID: 1, Axis: AxisZ, Dir: 1, Pos: limit - 0.1, Lane: -18})
	tr.Add(&Vehicle{ID: 2, Axis: AxisX, Dir: -1, Pos: -(limit - 0.1), Lane: 14})

	tr.Advance()
	if tr.Count() != 0 {
		t.Errorf("%d vehicles alive beyond the despawn limit", tr.Count())
	}
}

func TestDecisionsUsePreMovePositions(t *testing.T) {
	// The trailer's gap is measured before the leader moves, so adding the
	// vehicles in the opposite order must not change the outcome.
	for _, reversed := range []bool{false, true} {
		tr, _ := newTestTraffic()
		leader := &Vehicle{ID: 1, Axis: AxisZ, Dir: 1, Pos: 4.9, Lane: -18}
		trailer := &Vehicle{ID: 2, Axis: AxisZ, Dir: 1, Pos: 0, Lane: -18}
		if reversed {
			tr.Add(trailer)
			tr.Add(leader)
		} else {
			tr.Add(leader)
			tr.Add(trailer)
		}

		tr.Advance()
		if trailer.Pos != 0 {
			t.Errorf("reversed=%v: trailer moved to %v on a 4.9 gap", reversed, trailer.Pos)
		}
	}
}
