package crossing

import "testing"

func TestCrossingPathCollision(t *testing.T) {
	tr, _ := newTestTraffic()
	// Both vehicles occupy the world point (5, 16).
	ew := &Vehicle{ID: 1, Axis: AxisX, Dir: 1, Pos: 5, Lane: 16}
	ns := &Vehicle{ID: 2, Axis: AxisZ, Dir: 1, Pos: 16, Lane: 5}
	tr.Add(ew)
	tr.Add(ns)

	hits := tr.Resolve()
	if len(hits) != 1 {
		t.Fatalf("Resolve() returned %d collisions, want 1", len(hits))
	}
	if !approx(hits[0].X, 5) || !approx(hits[0].Z, 16) {
		t.Errorf("collision at (%v, %v), want (5, 16)", hits[0].X, hits[0].Z)
	}
	if tr.Count() != 0 {
		t.Errorf("%d vehicles left after a pair collision", tr.Count())
	}
}

func TestCollisionMidpoint(t *testing.T) {
	tr, _ := newTestTraffic()
	// Head-on overlap in the same lane: midpoint halfway between centers.
	tr.Add(&Vehicle{ID: 1, Axis: AxisX, Dir: 1, Pos: 0, Lane: 14})
	tr.Add(&Vehicle{ID: 2, Axis: AxisX, Dir: -1, Pos: 3, Lane: 14})

	hits := tr.Resolve()
	if len(hits) != 1 {
		t.Fatalf("Resolve() returned %d collisions, want 1", len(hits))
	}
	if !approx(hits[0].X, 1.5) || !approx(hits[0].Z, 14) {
		t.Errorf("collision at (%v, %v), want (1.5, 14)", hits[0].X, hits[0].Z)
	}
}

func TestTouchingEdgesDoNotCollide(t *testing.T) {
	tr, _ := newTestTraffic()
	// Boxes share the edge z = 17 exactly.
	tr.Add(&Vehicle{ID: 1, Axis: AxisX, Dir: 1, Pos: 5, Lane: 16})
	tr.Add(&Vehicle{ID: 2, Axis: AxisZ, Dir: 1, Pos: 19, Lane: 5})

	if hits := tr.Resolve(); hits != nil {
		t.Errorf("touching boxes reported %d collisions", len(hits))
	}
	if tr.Count() != 2 {
		t.Errorf("Resolve removed vehicles without a collision")
	}
}

func TestTripleOverlapRemovesNewestPair(t *testing.T) {
	tr, _ := newTestTraffic()
	// Three vehicles stacked on one point: the newest pairs with the next
	// newest, the oldest survives.
	a := &Vehicle{ID: 1, Axis: AxisX, Dir: 1, Pos: 5, Lane: 16}
	b := &Vehicle{ID: 2, Axis: AxisZ, Dir: 1, Pos: 16, Lane: 5}
	c := &Vehicle{ID: 3, Axis: AxisX, Dir: -1, Pos: 5, Lane: 16}
	tr.Add(a)
	tr.Add(b)
	tr.Add(c)

	hits := tr.Resolve()
	if len(hits) != 1 {
		t.Fatalf("Resolve() returned %d collisions, want 1", len(hits))
	}
	if tr.Count() != 1 || tr.Vehicles()[0].ID != a.ID {
		t.Errorf("oldest vehicle should survive a triple overlap")
	}
}

func TestResolveEmptyAndSingle(t *testing.T) {
	tr, _ := newTestTraffic()
	if hits := tr.Resolve(); hits != nil {
		t.Errorf("empty fleet produced collisions")
	}
	tr.Add(&Vehicle{ID: 1, Axis: AxisX, Dir: 1, Pos: 5, Lane: 16})
	if hits := tr.Resolve(); hits != nil {
		t.Errorf("single vehicle produced collisions")
	}
}
