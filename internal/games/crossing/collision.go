package crossing

import "github.com/vovakirdan/gridlock/internal/core"

// Collision is one confirmed crash, located at the midpoint of the two
// vehicles involved.
type Collision struct {
	X, Z float64
}

// Resolve detects overlapping vehicle pairs after a motion pass and removes
// both members of every colliding pair. The most recently spawned vehicle is
// checked first against all earlier ones; a vehicle knocked out of the fleet
// takes part in no further pairs this tick, so each crash involves exactly
// two vehicles and yields exactly one Collision.
func (t *Traffic) Resolve() []Collision {
	n := len(t.vehicles)
	if n < 2 {
		return nil
	}

	boxes := make([]core.Box, n)
	for i, v := range t.vehicles {
		boxes[i] = v.Bounds(t.cfg.BodyLength, t.cfg.BodyWidth)
	}

	alive := make([]bool, n)
	for i := range alive {
		alive[i] = true
	}

	var hits []Collision
	for i := n - 1; i >= 1; i-- {
		if !alive[i] {
			continue
		}
		for j := i - 1; j >= 0; j-- {
			if !alive[j] || !boxes[i].Intersects(boxes[j]) {
				continue
			}
			hits = append(hits, Collision{
				X: (t.vehicles[i].X() + t.vehicles[j].X()) / 2,
				Z: (t.vehicles[i].Z() + t.vehicles[j].Z()) / 2,
			})
			alive[i] = false
			alive[j] = false
			break
		}
	}

	if len(hits) == 0 {
		return nil
	}
	kept := t.vehicles[:0]
	for i, v := range t.vehicles {
		if alive[i] {
			kept = append(kept, v)
		}
	}
	t.vehicles = kept
	return hits
}
