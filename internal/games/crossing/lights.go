package crossing

import "fmt"

// LightSet holds the four traffic lights, one per intersection. Each light is
// a single boolean: horizontal-green means east-west traffic may proceed and
// north-south traffic must stop, and vice versa. Lights change only on
// explicit player toggles or a reset; there is no automatic cycling.
type LightSet struct {
	horizontalGreen [4]bool
}

// NewLightSet creates the four lights in their default horizontal-green state.
func NewLightSet() *LightSet {
	s := &LightSet{}
	s.Reset()
	return s
}

// Reset returns every light to horizontal-green.
func (s *LightSet) Reset() {
	for i := range s.horizontalGreen {
		s.horizontalGreen[i] = true
	}
}

// Toggle flips the light at the given intersection.
func (s *LightSet) Toggle(id IntersectionID) {
	s.check(id)
	s.horizontalGreen[id] = !s.horizontalGreen[id]
}

// HorizontalGreen reports whether east-west traffic flows at the intersection.
func (s *LightSet) HorizontalGreen(id IntersectionID) bool {
	s.check(id)
	return s.horizontalGreen[id]
}

// GreenFor reports whether traffic on the given axis may proceed through the
// intersection.
func (s *LightSet) GreenFor(id IntersectionID, axis Axis) bool {
	s.check(id)
	if axis == AxisX {
		return s.horizontalGreen[id]
	}
	return !s.horizontalGreen[id]
}

// States returns the horizontal-green flag of every light in ID order.
func (s *LightSet) States() [4]bool {
	return s.horizontalGreen
}

// check panics on an unknown intersection ID. A vehicle whose crossing
// resolved to no real light would simply never stop, so this fails loudly
// instead.
func (s *LightSet) check(id IntersectionID) {
	if id < 0 || int(id) >= len(s.horizontalGreen) {
		panic(fmt.Sprintf("crossing: unknown traffic light %d", id))
	}
}
