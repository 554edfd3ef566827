package crossing

import "github.com/vovakirdan/gridlock/internal/config"

// Traffic owns the set of active vehicles. The slice is never handed out for
// mutation; callers add through Add and everything else happens inside the
// motion and collision passes.
type Traffic struct {
	vehicles []*Vehicle
	net      *Network
	lights   *LightSet
	cfg      config.VehiclesConfig
}

// NewTraffic creates an empty fleet over the given network and light set.
func NewTraffic(net *Network, lights *LightSet, cfg config.VehiclesConfig) *Traffic {
	return &Traffic{
		vehicles: make([]*Vehicle, 0, cfg.MaxActive),
		net:      net,
		lights:   lights,
		cfg:      cfg,
	}
}

// Reset removes all vehicles.
func (t *Traffic) Reset() {
	t.vehicles = t.vehicles[:0]
}

// Add inserts a newly spawned vehicle at the end of the fleet.
func (t *Traffic) Add(v *Vehicle) {
	t.vehicles = append(t.vehicles, v)
}

// Count returns the number of active vehicles.
func (t *Traffic) Count() int {
	return len(t.vehicles)
}

// Vehicles returns the active vehicles in spawn order, oldest first.
// Read-only: callers must not mutate the slice or the vehicles.
func (t *Traffic) Vehicles() []*Vehicle {
	return t.vehicles
}
