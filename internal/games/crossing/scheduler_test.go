package crossing

import "testing"

func TestCadenceFiresOnPeriod(t *testing.T) {
	c := NewCadence(1000, 60)
	for i := 0; i < 59; i++ {
		if c.Tick() {
			t.Fatalf("cadence fired on tick %d of 60", i+1)
		}
	}
	if !c.Tick() {
		t.Error("cadence did not fire on tick 60")
	}
	// The next period starts over.
	if c.Tick() {
		t.Error("cadence fired immediately after a period")
	}
}

func TestCadenceMinimumOneTick(t *testing.T) {
	c := NewCadence(5, 60) // would round to zero ticks
	if !c.Tick() {
		t.Error("sub-tick period should fire every tick")
	}
}

func TestCadenceShortenedPeriodApplies(t *testing.T) {
	c := NewCadence(1000, 60)
	c.Tick()
	c.SetPeriod(100) // 6 ticks at 60 fps

	fired := -1
	for i := 0; i < 10; i++ {
		if c.Tick() {
			fired = i + 1
			break
		}
	}
	if fired != 6 {
		t.Errorf("shortened cadence fired after %d ticks, want 6", fired)
	}
}

func TestCadenceUnchangedPeriodKeepsCountdown(t *testing.T) {
	c := NewCadence(1000, 60)
	for i := 0; i < 30; i++ {
		c.Tick()
		c.SetPeriod(1000) // same period every tick must not reset the countdown
	}
	for i := 0; i < 29; i++ {
		if c.Tick() {
			t.Fatalf("cadence fired early on tick %d", 30+i+1)
		}
	}
	if !c.Tick() {
		t.Error("cadence did not fire on tick 60")
	}
}
