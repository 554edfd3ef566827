// Package crossing implements the traffic-intersection arcade game.
// Vehicles spawn at the edges of a cross-shaped road network and drive
// straight through; the player toggles the four traffic lights to cause
// collisions and score points before the timer runs out.
package crossing

import (
	"fmt"

	"github.com/vovakirdan/gridlock/internal/config"
)

// Axis is the coordinate a vehicle travels along. The orthogonal coordinate
// is its fixed lane offset.
type Axis int

const (
	AxisX Axis = iota // east-west travel on a horizontal road
	AxisZ             // north-south travel on a vertical road
)

// String returns a short name for the axis.
func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "z"
}

// IntersectionID identifies one of the four intersections. IDs are assigned
// at construction time and used for all light lookups; nothing is ever
// re-derived from coordinates.
type IntersectionID int

// Intersection is one crossing of a horizontal and a vertical road.
type Intersection struct {
	ID   IntersectionID
	X, Z float64 // center position
}

// Network is the static road geometry: two horizontal roads at z = ±Spacing,
// two vertical roads at x = ±Spacing, four intersections at the corners.
// Immutable after construction.
type Network struct {
	Spacing             float64
	HorizontalHalfWidth float64
	VerticalHalfWidth   float64
	SpawnDistance       float64
	StopLineBuffer      float64
	DespawnMargin       float64

	intersections [4]Intersection
}

// NewNetwork builds the road network from geometry configuration.
func NewNetwork(g config.GeometryConfig) *Network {
	n := &Network{
		Spacing:             g.Spacing,
		HorizontalHalfWidth: g.HorizontalHalfWidth,
		VerticalHalfWidth:   g.VerticalHalfWidth,
		SpawnDistance:       g.SpawnDistance,
		StopLineBuffer:      g.StopLineBuffer,
		DespawnMargin:       g.DespawnMargin,
	}
	for _, zSign := range []int{-1, 1} {
		for _, xSign := range []int{-1, 1} {
			id := intersectionIndex(xSign, zSign)
			n.intersections[id] = Intersection{
				ID: id,
				X:  float64(xSign) * g.Spacing,
				Z:  float64(zSign) * g.Spacing,
			}
		}
	}
	return n
}

// intersectionIndex maps a sign pair to a stable ID:
// (-,-)=0 (+,-)=1 (-,+)=2 (+,+)=3. Panics on anything but ±1; the geometry
// is fixed and an unknown sign means the caller is broken, not the data.
func intersectionIndex(xSign, zSign int) IntersectionID {
	if (xSign != -1 && xSign != 1) || (zSign != -1 && zSign != 1) {
		panic(fmt.Sprintf("crossing: invalid intersection signs (%d, %d)", xSign, zSign))
	}
	xi := (xSign + 1) / 2
	zi := (zSign + 1) / 2
	return IntersectionID(zi*2 + xi)
}

// IntersectionAt returns the intersection in the quadrant given by the two
// signs. Panics on invalid signs.
func (n *Network) IntersectionAt(xSign, zSign int) Intersection {
	return n.intersections[intersectionIndex(xSign, zSign)]
}

// Intersections returns all four intersections in ID order.
func (n *Network) Intersections() [4]Intersection {
	return n.intersections
}

// CrossHalfWidth returns the half-width of the road crossing a vehicle's
// path: a vehicle traveling along z crosses the horizontal roads and vice
// versa. Stop lines are offset by this plus the stop-line buffer.
func (n *Network) CrossHalfWidth(axis Axis) float64 {
	if axis == AxisZ {
		return n.HorizontalHalfWidth
	}
	return n.VerticalHalfWidth
}

// RoadHalfWidth returns the half-width of the road a vehicle travels on.
func (n *Network) RoadHalfWidth(axis Axis) float64 {
	if axis == AxisZ {
		return n.VerticalHalfWidth
	}
	return n.HorizontalHalfWidth
}

// Limit is the absolute travel-axis position beyond which vehicles despawn.
func (n *Network) Limit() float64 {
	return n.SpawnDistance + n.DespawnMargin
}
