package crossing

import "math"

// Advance runs one motion tick over the whole fleet. Decisions are made in a
// first pass against pre-move positions only, then applied in a second pass,
// so the order vehicles are visited in never changes the outcome and the
// collision pass sees a fully moved world.
func (t *Traffic) Advance() {
	moves := make([]bool, len(t.vehicles))
	for i, v := range t.vehicles {
		moves[i] = t.decide(v)
	}

	limit := t.net.Limit()
	kept := t.vehicles[:0]
	for i, v := range t.vehicles {
		if moves[i] {
			v.Pos += t.cfg.Speed * v.Dir
		}
		// Out-of-bounds vehicles despawn silently.
		if math.Abs(v.Pos) > limit {
			continue
		}
		kept = append(kept, v)
	}
	t.vehicles = kept
}

// decide returns whether the vehicle advances this tick. A vehicle stops for
// a red light it is about to reach, or for a same-lane vehicle too close
// ahead; otherwise it drives.
func (t *Traffic) decide(v *Vehicle) bool {
	if c, ok := v.NextCrossing(); ok {
		if v.Pos*v.Dir > c.Center*v.Dir {
			// The intersection center is behind us now: this crossing is
			// cleared and its light no longer applies, from this tick on.
			v.Passed++
		} else {
			toStop := (c.StopLine - v.Pos) * v.Dir
			if !t.lights.GreenFor(c.Light, v.Axis) && toStop > 0 && toStop < 2*t.cfg.Speed {
				return false
			}
		}
	}

	// Car-following: stop if the nearest vehicle ahead in the same lane is
	// closer than one body length plus the safety gap. Deliberately a
	// bounded-lookahead rule, not collision-proof: crossing-path crashes are
	// the whole point of the game.
	minGap := t.cfg.BodyLength + t.cfg.SafetyGap
	for _, w := range t.vehicles {
		if w == v || w.Axis != v.Axis || w.Dir != v.Dir {
			continue
		}
		if math.Abs(w.Lane-v.Lane) >= t.cfg.LaneTolerance {
			continue
		}
		gap := (w.Pos - v.Pos) * v.Dir
		if gap > 0 && gap < minGap {
			return false
		}
	}
	return true
}
