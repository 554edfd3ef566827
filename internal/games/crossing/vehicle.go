package crossing

import "github.com/vovakirdan/gridlock/internal/core"

// RouteCrossing is one intersection a vehicle will traverse, paired with its
// governing light and the stop line before it. Positions are along the
// vehicle's travel axis.
type RouteCrossing struct {
	Light    IntersectionID
	StopLine float64 // halt here when the light is red for the travel axis
	Center   float64 // intersection center; passing it clears the crossing
}

// Vehicle is a single car on the road. Position is a scalar along the travel
// axis; Lane is the fixed orthogonal offset. Route lists the crossings ahead
// in travel order and never changes after spawn; Passed counts how many are
// already behind.
type Vehicle struct {
	ID     int
	Axis   Axis
	Dir    float64 // +1 or -1 along the travel axis
	Pos    float64
	Lane   float64
	Route  []RouteCrossing
	Passed int
}

// NextCrossing returns the first crossing still ahead of the vehicle, if any.
func (v *Vehicle) NextCrossing() (RouteCrossing, bool) {
	if v.Passed >= len(v.Route) {
		return RouteCrossing{}, false
	}
	return v.Route[v.Passed], true
}

// X returns the vehicle's world x coordinate.
func (v *Vehicle) X() float64 {
	if v.Axis == AxisX {
		return v.Pos
	}
	return v.Lane
}

// Z returns the vehicle's world z coordinate.
func (v *Vehicle) Z() float64 {
	if v.Axis == AxisZ {
		return v.Pos
	}
	return v.Lane
}

// Bounds returns the vehicle's footprint on the ground plane. The body is
// length long along the travel axis and width across it.
func (v *Vehicle) Bounds(length, width float64) core.Box {
	if v.Axis == AxisX {
		return core.NewBoxCentered(v.X(), v.Z(), length, width)
	}
	return core.NewBoxCentered(v.X(), v.Z(), width, length)
}
