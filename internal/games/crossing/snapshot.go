package crossing

// VehicleSnapshot is one vehicle's full pose for determinism checks.
type VehicleSnapshot struct {
	ID     int
	Axis   Axis
	Dir    float64
	Pos    float64
	Lane   float64
	Passed int
}

// Snapshot captures the complete simulation state for determinism testing
// and replay.
type Snapshot struct {
	Tick     uint64
	Mode     Mode
	Score    int
	TimeLeft int
	State    SessionState
	Lights   [4]bool
	Vehicles []VehicleSnapshot
}

// Snapshot returns the current simulation snapshot.
func (g *Game) Snapshot() Snapshot {
	vehicles := make([]VehicleSnapshot, 0, g.traffic.Count())
	for _, v := range g.traffic.Vehicles() {
		vehicles = append(vehicles, VehicleSnapshot{
			ID:     v.ID,
			Axis:   v.Axis,
			Dir:    v.Dir,
			Pos:    v.Pos,
			Lane:   v.Lane,
			Passed: v.Passed,
		})
	}

	return Snapshot{
		Tick:     g.tick,
		Mode:     g.mode,
		Score:    g.session.Score(),
		TimeLeft: g.session.TimeLeft(),
		State:    g.session.State(),
		Lights:   g.lights.States(),
		Vehicles: vehicles,
	}
}
