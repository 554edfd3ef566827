package crossing

import "testing"

func TestLightsDefaultHorizontalGreen(t *testing.T) {
	s := NewLightSet()
	for id := IntersectionID(0); id < 4; id++ {
		if !s.HorizontalGreen(id) {
			t.Errorf("light %d: expected horizontal green by default", id)
		}
		if !s.GreenFor(id, AxisX) {
			t.Errorf("light %d: east-west traffic should flow by default", id)
		}
		if s.GreenFor(id, AxisZ) {
			t.Errorf("light %d: north-south traffic should be stopped by default", id)
		}
	}
}

func TestLightToggleIsLocal(t *testing.T) {
	s := NewLightSet()
	s.Toggle(2)

	if s.GreenFor(2, AxisX) {
		t.Error("toggled light should stop east-west traffic")
	}
	if !s.GreenFor(2, AxisZ) {
		t.Error("toggled light should let north-south traffic flow")
	}
	for _, id := range []IntersectionID{0, 1, 3} {
		if !s.HorizontalGreen(id) {
			t.Errorf("light %d changed by a toggle of light 2", id)
		}
	}

	// Toggling twice restores the original state.
	s.Toggle(2)
	if !s.HorizontalGreen(2) {
		t.Error("double toggle should restore horizontal green")
	}
}

func TestLightResetRestoresDefaults(t *testing.T) {
	s := NewLightSet()
	s.Toggle(0)
	s.Toggle(3)
	s.Reset()

	if s.States() != [4]bool{true, true, true, true} {
		t.Errorf("after Reset, States() = %v", s.States())
	}
}

func TestUnknownLightPanics(t *testing.T) {
	s := NewLightSet()
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown light ID")
		}
	}()
	s.Toggle(7)
}
