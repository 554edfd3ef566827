package crossing

import (
	"testing"

	"github.com/vovakirdan/gridlock/internal/config"
)

func testNetwork() *Network {
	return NewNetwork(config.DefaultCrossingConfig().Geometry)
}

func TestIntersectionLayout(t *testing.T) {
	net := testNetwork()

	// (-,-)=0 (+,-)=1 (-,+)=2 (+,+)=3
	cases := []struct {
		xSign, zSign int
		id           IntersectionID
	}{
		{-1, -1, 0},
		{1, -1, 1},
		{-1, 1, 2},
		{1, 1, 3},
	}

	for _, c := range cases {
		it := net.IntersectionAt(c.xSign, c.zSign)
		if it.ID != c.id {
			t.Errorf("IntersectionAt(%d, %d): ID = %d, want %d", c.xSign, c.zSign, it.ID, c.id)
		}
		wantX := float64(c.xSign) * net.Spacing
		wantZ := float64(c.zSign) * net.Spacing
		if it.X != wantX || it.Z != wantZ {
			t.Errorf("intersection %d at (%v, %v), want (%v, %v)", it.ID, it.X, it.Z, wantX, wantZ)
		}
	}

	for i, it := range net.Intersections() {
		if int(it.ID) != i {
			t.Errorf("Intersections()[%d].ID = %d", i, it.ID)
		}
	}
}

func TestIntersectionAtPanicsOnInvalidSign(t *testing.T) {
	net := testNetwork()
	defer func() {
		if recover() == nil {
			t.Error("expected panic for sign 0")
		}
	}()
	net.IntersectionAt(0, 1)
}

func TestCrossHalfWidth(t *testing.T) {
	net := testNetwork()

	// North-south traffic crosses the horizontal roads and vice versa.
	if got := net.CrossHalfWidth(AxisZ); got != net.HorizontalHalfWidth {
		t.Errorf("CrossHalfWidth(AxisZ) = %v, want %v", got, net.HorizontalHalfWidth)
	}
	if got := net.CrossHalfWidth(AxisX); got != net.VerticalHalfWidth {
		t.Errorf("CrossHalfWidth(AxisX) = %v, want %v", got, net.VerticalHalfWidth)
	}
}

func TestLimit(t *testing.T) {
	net := testNetwork()
	want := net.SpawnDistance + net.DespawnMargin
	if got := net.Limit(); got != want {
		t.Errorf("Limit() = %v, want %v", got, want)
	}
}
