package crossing

import (
	"math/rand"
)

// entryPoint is one of the eight fixed points vehicles appear at: each of the
// four roads has one entry per direction. The route through both crossings is
// precomputed at construction; vehicles share these read-only route slices.
type entryPoint struct {
	axis  Axis
	dir   float64
	lane  float64
	start float64
	route []RouteCrossing
}

// Spawner creates vehicles at random entry points, driven by a seeded RNG so
// sessions are reproducible.
type Spawner struct {
	rng     *rand.Rand
	entries [8]entryPoint
	nextID  int
}

// NewSpawner builds the entry table from the network geometry and seeds the
// RNG.
func NewSpawner(seed int64, net *Network) *Spawner {
	s := &Spawner{}
	s.buildEntries(net)
	s.Reset(seed)
	return s
}

// Reset reseeds the RNG and restarts vehicle ID assignment.
func (s *Spawner) Reset(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
	s.nextID = 0
}

// TrySpawn creates one vehicle at a uniformly random entry point, or returns
// nil if the fleet is already at capacity. The cap makes a full board a
// no-op, not an error.
func (s *Spawner) TrySpawn(active, max int) *Vehicle {
	if active >= max {
		return nil
	}
	e := s.entries[s.rng.Intn(len(s.entries))]
	v := &Vehicle{
		ID:    s.nextID,
		Axis:  e.axis,
		Dir:   e.dir,
		Pos:   e.start,
		Lane:  e.lane,
		Route: e.route,
	}
	s.nextID++
	return v
}

// buildEntries computes the eight entry points. Lane offsets keep opposing
// directions on separate halves of the road (a quarter of the road width off
// the centerline). Every route crossing resolves its light by intersection
// ID at this point; nothing is looked up by coordinate later.
func (s *Spawner) buildEntries(net *Network) {
	i := 0
	for _, roadSign := range []int{-1, 1} {
		for _, dir := range []float64{1, -1} {
			// Vertical road at x = roadSign*spacing, travel along z.
			s.entries[i] = makeEntry(net, AxisZ, roadSign, dir)
			i++
			// Horizontal road at z = roadSign*spacing, travel along x.
			s.entries[i] = makeEntry(net, AxisX, roadSign, dir)
			i++
		}
	}
}

// makeEntry builds one entry point on the road identified by roadSign, for
// travel in the given direction.
func makeEntry(net *Network, axis Axis, roadSign int, dir float64) entryPoint {
	roadCenter := float64(roadSign) * net.Spacing
	quarter := net.RoadHalfWidth(axis) / 2

	e := entryPoint{
		axis:  axis,
		dir:   dir,
		lane:  roadCenter - dir*quarter,
		start: -dir * net.SpawnDistance,
	}

	// Two crossings in travel order: the near-side perpendicular road first.
	stopOffset := net.CrossHalfWidth(axis) + net.StopLineBuffer
	for _, crossSign := range []float64{-dir, dir} {
		center := crossSign * net.Spacing
		var lit Intersection
		if axis == AxisZ {
			lit = net.IntersectionAt(roadSign, signOf(center))
		} else {
			lit = net.IntersectionAt(signOf(center), roadSign)
		}
		e.route = append(e.route, RouteCrossing{
			Light:    lit.ID,
			StopLine: center - dir*stopOffset,
			Center:   center,
		})
	}
	return e
}

// signOf returns -1 or +1 for a nonzero coordinate. Zero never occurs for
// intersection centers; treat it as a geometry bug.
func signOf(f float64) int {
	switch {
	case f < 0:
		return -1
	case f > 0:
		return 1
	default:
		panic("crossing: intersection center at origin")
	}
}
