package runner

import "testing"

func TestActorRestsOnGround(t *testing.T) {
	a := NewActor(120, 48, 36, 240)

	if a.Y != 204 {
		t.Errorf("rest Y = %v, expected 204", a.Y)
	}
	if !a.Grounded || a.VY != 0 {
		t.Errorf("new actor should be grounded and still, got %+v", a)
	}
}

func TestActorSingleJumpPerAirbornePeriod(t *testing.T) {
	a := NewActor(120, 48, 36, 240)

	if !a.Jump(-12.5) {
		t.Fatal("grounded actor should jump")
	}
	if a.Jump(-12.5) {
		t.Error("second jump while airborne should be ignored")
	}
	if a.VY != -12.5 {
		t.Errorf("VY = %v, expected a single impulse of -12.5", a.VY)
	}
	if a.Grounded {
		t.Error("actor should be airborne after jumping")
	}
}

func TestActorLandsAndClamps(t *testing.T) {
	a := NewActor(120, 48, 36, 240)
	a.Jump(-12.5)

	landed := false
	for i := 0; i < 200; i++ {
		a.ApplyGravity(0.6)
		a.IntegratePosition()
		a.ClampToGround(240)

		if a.Y > 204 {
			t.Fatalf("tick %d: actor sank below ground, Y = %v", i, a.Y)
		}
		if a.Grounded {
			landed = true
			break
		}
	}

	if !landed {
		t.Fatal("actor never landed")
	}
	if a.Y != 204 || a.VY != 0 {
		t.Errorf("landed actor should be at rest, got Y=%v VY=%v", a.Y, a.VY)
	}
	if !a.Jump(-12.5) {
		t.Error("actor should be able to jump again after landing")
	}
}

func TestActorGravityPullsDown(t *testing.T) {
	a := NewActor(120, 48, 36, 240)
	a.Y = 100
	a.Grounded = false

	a.ApplyGravity(0.6)
	a.IntegratePosition()
	a.ClampToGround(240)

	if !approx(a.VY, 0.6) || !approx(a.Y, 100.6) {
		t.Errorf("after one gravity step got Y=%v VY=%v, expected 100.6 and 0.6", a.Y, a.VY)
	}
	if a.Grounded {
		t.Error("actor above ground should stay airborne")
	}
}
